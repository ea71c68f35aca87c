package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	bookingRepo "broheal/database/repository/booking"
	conversationRepo "broheal/database/repository/conversation"
	orderRepo "broheal/database/repository/order"
	scheduleRepo "broheal/database/repository/schedule"
	therapistRepo "broheal/database/repository/therapist"
	"broheal/models"
	"broheal/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

var (
	// ErrOrderNotFound is returned for lookups of unknown or foreign orders.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderClosed blocks intents against orders no longer payable.
	ErrOrderClosed = errors.New("order is no longer payable")
)

// Notifier is the slice of the notification service the payment flow needs.
type Notifier interface {
	Notify(ctx context.Context, userID, role, ntype, title, body string, data map[string]string) error
}

// TaskScheduler schedules the pre-appointment reminder once payment clears.
type TaskScheduler interface {
	ScheduleReminder(bookingID string, at time.Time) error
}

// PaymentService creates payment intents and settles gateway callbacks.
type PaymentService interface {
	CreateIntent(ctx context.Context, userID, orderID string) (*models.Order, string, error)
	HandleCallback(ctx context.Context, cb models.PaymentCallback) error
	GetOrder(ctx context.Context, userID, orderID string) (*models.Order, error)
}

// DefaultPaymentService is the production implementation backed by Stripe.
type DefaultPaymentService struct {
	OrderRepo        orderRepo.OrderRepository
	BookingRepo      bookingRepo.BookingRepository
	ScheduleRepo     scheduleRepo.ScheduleRepository
	TherapistRepo    therapistRepo.TherapistRepository
	ConversationRepo conversationRepo.ConversationRepository
	Notifier         Notifier
	Tasks            TaskScheduler

	// ReminderLead is how long before the appointment the reminder fires.
	ReminderLead time.Duration
}

// CreateIntent creates (or reuses) a Stripe PaymentIntent for the order and
// returns its client secret for the client-side confirmation.
func (s *DefaultPaymentService) CreateIntent(ctx context.Context, userID, orderID string) (*models.Order, string, error) {
	order, err := s.OrderRepo.GetByID(orderID)
	if err != nil {
		return nil, "", err
	}
	if order == nil || order.UserID != userID {
		return nil, "", ErrOrderNotFound
	}
	if order.Status != models.OrderStatusCreated {
		return nil, "", ErrOrderClosed
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(order.Amount * 100)),
		Currency: stripe.String(strings.ToLower(order.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("order_id", order.ID)
	params.AddMetadata("booking_id", order.BookingID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	if err := s.OrderRepo.SetPaymentIntent(order.ID, intent.ID); err != nil {
		return nil, "", err
	}
	order.PaymentIntentID = intent.ID
	return order, intent.ClientSecret, nil
}

// HandleCallback settles the gateway's result: success confirms the booking,
// opens its chat thread and schedules the reminder; failure cancels the
// booking and frees the slot. Replayed callbacks for settled orders are
// ignored.
func (s *DefaultPaymentService) HandleCallback(ctx context.Context, cb models.PaymentCallback) error {
	order, err := s.OrderRepo.GetByID(cb.OrderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	if order.Status != models.OrderStatusCreated {
		return nil
	}

	booking, err := s.BookingRepo.GetByID(order.BookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return fmt.Errorf("order %s references missing booking %s", order.ID, order.BookingID)
	}

	if cb.Status == "succeeded" {
		return s.settleSuccess(ctx, order, booking)
	}
	return s.settleFailure(ctx, order, booking, cb.FailureReason)
}

func (s *DefaultPaymentService) settleSuccess(ctx context.Context, order *models.Order, booking *models.Booking) error {
	if err := s.OrderRepo.SetStatus(order.ID, models.OrderStatusPaid, ""); err != nil {
		return err
	}
	if err := s.BookingRepo.UpdateStatus(booking.ID, models.BookingStatusConfirmed); err != nil {
		return err
	}

	s.openConversation(booking)

	if s.Tasks != nil {
		at := booking.BookingDateTime.Add(-s.ReminderLead)
		if at.After(time.Now()) {
			if err := s.Tasks.ScheduleReminder(booking.ID, at); err != nil {
				utils.GetLogger().Warn("failed to schedule reminder",
					zap.String("booking_id", booking.ID), zap.Error(err))
			}
		}
	}

	s.notify(ctx, booking.UserID, models.RoleUser, models.NotificationBookingConfirmed,
		"Booking confirmed",
		fmt.Sprintf("Payment received. Your booking on %s at %s is confirmed.", booking.Date, booking.SlotTime),
		map[string]string{"bookingId": booking.ID})
	if t, err := s.TherapistRepo.GetByID(booking.TherapistID); err == nil && t != nil {
		s.notify(ctx, t.UserID, models.RoleTherapist, models.NotificationBookingConfirmed,
			"Booking confirmed",
			fmt.Sprintf("The booking on %s at %s is confirmed.", booking.Date, booking.SlotTime),
			map[string]string{"bookingId": booking.ID})
	}
	return nil
}

func (s *DefaultPaymentService) settleFailure(ctx context.Context, order *models.Order, booking *models.Booking, reason string) error {
	if reason == "" {
		reason = "payment failed"
	}
	if err := s.OrderRepo.SetStatus(order.ID, models.OrderStatusFailed, reason); err != nil {
		return err
	}
	if err := s.BookingRepo.UpdateStatus(booking.ID, models.BookingStatusCancelled); err != nil {
		return err
	}
	if err := s.ScheduleRepo.ReleaseSlot(booking.TherapistID, booking.Date, booking.SlotTime); err != nil {
		utils.GetLogger().Warn("failed to release slot after payment failure",
			zap.String("booking_id", booking.ID), zap.Error(err))
	}

	s.notify(ctx, booking.UserID, models.RoleUser, models.NotificationPayment,
		"Payment failed",
		"Your payment did not go through and the booking was cancelled. Please book again.",
		map[string]string{"bookingId": booking.ID, "reason": reason})
	return nil
}

// openConversation creates the chat thread between the booking parties. It is
// idempotent: a thread already open for the booking is left as is.
func (s *DefaultPaymentService) openConversation(booking *models.Booking) {
	existing, err := s.ConversationRepo.GetByBookingID(booking.ID)
	if err != nil || existing != nil {
		return
	}
	t, err := s.TherapistRepo.GetByID(booking.TherapistID)
	if err != nil || t == nil || t.UserID == "" {
		// A thread with a missing participant can never be read by the
		// therapist; leave it unopened so a later settlement retry succeeds.
		utils.GetLogger().Warn("skipping conversation open, therapist unresolved",
			zap.String("booking_id", booking.ID),
			zap.String("therapist_id", booking.TherapistID), zap.Error(err))
		return
	}
	conv := &models.Conversation{
		ID:           uuid.New().String(),
		BookingID:    booking.ID,
		Participants: []string{booking.UserID, t.UserID},
	}
	if err := s.ConversationRepo.Create(conv); err != nil {
		utils.GetLogger().Warn("failed to open conversation",
			zap.String("booking_id", booking.ID), zap.Error(err))
	}
}

// GetOrder returns an order visible to the caller. Admins pass an empty
// userID and see everything.
func (s *DefaultPaymentService) GetOrder(ctx context.Context, userID, orderID string) (*models.Order, error) {
	order, err := s.OrderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if userID != "" && order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *DefaultPaymentService) notify(ctx context.Context, userID, role, ntype, title, body string, data map[string]string) {
	if s.Notifier == nil || userID == "" {
		return
	}
	if err := s.Notifier.Notify(ctx, userID, role, ntype, title, body, data); err != nil {
		utils.GetLogger().Warn("failed to send notification",
			zap.String("user_id", userID), zap.String("type", ntype), zap.Error(err))
	}
}
