package orderRepo

import "broheal/models"

// OrderRepository defines persistence for payment orders.
type OrderRepository interface {
	Create(o *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetByBookingID(bookingID string) (*models.Order, error)
	SetStatus(id, status, failureReason string) error
	SetPaymentIntent(id, paymentIntentID string) error
}
