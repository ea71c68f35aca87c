package models

import "time"

// Order statuses.
const (
	OrderStatusCreated = "created"
	OrderStatusPaid    = "paid"
	OrderStatusFailed  = "failed"
	OrderStatusExpired = "expired"
)

// Order is a payment order attached to a booking.
type Order struct {
	ID              string    `bson:"id" json:"id"`
	BookingID       string    `bson:"booking_id" json:"bookingId"`
	UserID          string    `bson:"user_id" json:"userId"`
	Amount          float64   `bson:"amount" json:"amount"`
	Currency        string    `bson:"currency" json:"currency"`
	Status          string    `bson:"status" json:"status"`
	PaymentIntentID string    `bson:"payment_intent_id,omitempty" json:"paymentIntentId,omitempty"`
	FailureReason   string    `bson:"failure_reason,omitempty" json:"failureReason,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}

// PaymentCallback is the gateway's server-to-server callback payload.
type PaymentCallback struct {
	OrderID         string `json:"orderId"`
	PaymentIntentID string `json:"paymentIntentId"`
	Status          string `json:"status"` // "succeeded" or "failed"
	FailureReason   string `json:"failureReason,omitempty"`
}
