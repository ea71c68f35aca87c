package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	scheduleRepo "broheal/database/repository/schedule"
	"broheal/models"
	"broheal/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetAvailableSlots returns the bookable slots for a therapist on a date.
// Slots come from the therapist's weekday template when one exists, else from
// the default grid; the "any" pseudo-therapist gets the wider hourly grid.
// Times already booked on that date are filtered out.
func (s *DefaultBookingService) GetAvailableSlots(ctx context.Context, therapistID, date string) ([]models.Slot, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	if therapistID == AnyTherapist {
		return NormalizeSlots(slotsFromTimes(anyTherapistSlotTimes)), nil
	}
	if !utils.IsValidObjectID(therapistID) {
		return nil, ErrInvalidTherapistID
	}

	raw := slotsFromTimes(defaultSlotTimes)
	schedule, err := s.ScheduleRepo.GetScheduleByTherapist(therapistID)
	if err != nil {
		return nil, err
	}
	if schedule != nil {
		weekday := int(day.Weekday())
		for _, tpl := range schedule.Templates {
			if tpl.Weekday == weekday && len(tpl.Slots) > 0 {
				raw = tpl.Slots
				break
			}
		}
	}

	slots := NormalizeSlots(raw)
	booked, err := s.ScheduleRepo.GetBookedTimes(therapistID, date)
	if err != nil {
		return nil, err
	}
	return FilterAvailable(applyBooked(slots, booked)), nil
}

// HoldSlot reserves a slot for the user ahead of booking submission. The hold
// is rejected when the slot already carries a booking, so users cannot sit on
// taken slots.
func (s *DefaultBookingService) HoldSlot(ctx context.Context, userID, therapistID, date, slotTime string) (*models.SlotHold, error) {
	if !utils.IsValidObjectID(therapistID) {
		return nil, ErrInvalidTherapistID
	}
	if _, ok := parseClock(slotTime); !ok {
		return nil, fmt.Errorf("slot time %q is not a valid HH:MM clock", slotTime)
	}

	booked, err := s.ScheduleRepo.GetBookedTimes(therapistID, date)
	if err != nil {
		return nil, err
	}
	if booked[slotTime] {
		return nil, ErrSlotUnavailable
	}
	return s.Holds.Acquire(ctx, userID, therapistID, date, slotTime)
}

// CreateBooking runs the full submission pipeline: platform open check, step
// validation, catalogue resolution, hold confirmation, the transactional slot
// claim, order creation and notification fan-out. The booking starts in
// pending_payment and is confirmed by the payment callback.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, userID string, req *models.BookingRequest) (*models.Booking, error) {
	settings, err := s.SettingsRepo.GetSettings()
	if err != nil {
		return nil, err
	}
	if !settings.BookingOpen {
		return nil, ErrBookingClosed
	}

	if err := NewBookingWizard().Complete(req); err != nil {
		return nil, err
	}

	svc, err := s.CatalogRepo.GetServiceByID(req.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil || !svc.Active {
		return nil, ErrInvalidServiceID
	}
	therapist, err := s.TherapistRepo.GetByID(req.TherapistID)
	if err != nil {
		return nil, err
	}
	if therapist == nil {
		return nil, ErrInvalidTherapistID
	}

	addons, err := s.resolveAddons(req.ServiceID, req.Addons)
	if err != nil {
		return nil, err
	}
	price, duration := ComputeTotals(svc, addons)

	when, err := time.Parse("2006-01-02 15:04", req.Date+" "+req.SlotTime)
	if err != nil {
		return nil, fmt.Errorf("invalid booking time: %w", err)
	}

	// A live hold from slot selection is consumed here; without one the slot
	// is claimed directly and the transaction below still arbitrates races.
	if err := s.Holds.Confirm(ctx, userID, req.TherapistID, req.Date, req.SlotTime); err != nil {
		if errors.Is(err, ErrHoldNotOwned) {
			return nil, err
		}
		if !errors.Is(err, ErrHoldExpired) {
			return nil, err
		}
	}

	now := time.Now()
	booking := &models.Booking{
		ID:              uuid.New().String(),
		UserID:          userID,
		TherapistID:     req.TherapistID,
		ServiceID:       req.ServiceID,
		BookingDateTime: when,
		Date:            req.Date,
		SlotTime:        req.SlotTime,
		Addons:          addons,
		Address:         req.Address,
		TotalPrice:      price,
		TotalDuration:   duration,
		Status:          models.BookingStatusPendingPayment,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.ScheduleRepo.BookSlotTransactionally(ctx, booking); err != nil {
		if errors.Is(err, scheduleRepo.ErrSlotTaken) {
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}

	order := &models.Order{
		ID:        uuid.New().String(),
		BookingID: booking.ID,
		UserID:    userID,
		Amount:    price,
		Currency:  settings.Currency,
		Status:    models.OrderStatusCreated,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.OrderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create payment order: %w", err)
	}
	booking.OrderID = order.ID
	if err := s.BookingRepo.UpdateWithDocument(booking.ID, bson.M{"$set": bson.M{"order_id": order.ID}}); err != nil {
		utils.GetLogger().Warn("failed to link order to booking",
			zap.String("booking_id", booking.ID), zap.Error(err))
	}

	if s.Tasks != nil {
		deadline := now.Add(s.PaymentDeadline)
		if err := s.Tasks.SchedulePaymentExpiry(booking.ID, deadline); err != nil {
			utils.GetLogger().Warn("failed to schedule payment expiry",
				zap.String("booking_id", booking.ID), zap.Error(err))
		}
	}

	s.notify(ctx, userID, models.RoleUser, models.NotificationBookingCreated,
		"Booking created",
		fmt.Sprintf("Your booking for %s on %s at %s is awaiting payment.", svc.Name, req.Date, req.SlotTime),
		map[string]string{"bookingId": booking.ID, "orderId": order.ID})
	s.notify(ctx, therapist.UserID, models.RoleTherapist, models.NotificationBookingCreated,
		"New booking",
		fmt.Sprintf("A %s booking was placed for %s at %s.", svc.Name, req.Date, req.SlotTime),
		map[string]string{"bookingId": booking.ID})

	return booking, nil
}

// resolveAddons dedupes the selection and replaces client-supplied prices
// with the catalogue's, so tampered payloads cannot change totals.
func (s *DefaultBookingService) resolveAddons(serviceID string, selected []models.SelectedAddon) ([]models.SelectedAddon, error) {
	deduped := DedupeAddons(selected)
	out := make([]models.SelectedAddon, 0, len(deduped))
	for _, sel := range deduped {
		addon, err := s.CatalogRepo.GetAddonByID(sel.AddonID)
		if err != nil {
			return nil, err
		}
		if addon == nil || !addon.Active || addon.ServiceID != serviceID {
			return nil, fmt.Errorf("addon %s is not available for this service", sel.AddonID)
		}
		out = append(out, models.SelectedAddon{
			AddonID:  addon.ID,
			Title:    addon.Name,
			Price:    addon.Price,
			Duration: addon.Duration,
		})
	}
	return out, nil
}

// GetBooking returns a booking visible to the caller. Admins pass an empty
// userID and see everything.
func (s *DefaultBookingService) GetBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	if userID != "" && b.UserID != userID && b.TherapistID != userID {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.BookingRepo.ListByUser(userID)
}

func (s *DefaultBookingService) ListTherapistBookings(ctx context.Context, therapistID string) ([]models.Booking, error) {
	return s.BookingRepo.ListByTherapist(therapistID)
}

// CancelBooking cancels the caller's booking and frees its slot. Completed
// bookings cannot be cancelled.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, userID, bookingID string) error {
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if b == nil || b.UserID != userID {
		return ErrNotFound
	}
	if b.Status == models.BookingStatusCompleted || b.Status == models.BookingStatusCancelled {
		return fmt.Errorf("booking is already %s", b.Status)
	}

	if err := s.BookingRepo.UpdateStatus(bookingID, models.BookingStatusCancelled); err != nil {
		return err
	}
	if err := s.ScheduleRepo.ReleaseSlot(b.TherapistID, b.Date, b.SlotTime); err != nil {
		utils.GetLogger().Warn("failed to release slot on cancel",
			zap.String("booking_id", bookingID), zap.Error(err))
	}

	if t, err := s.TherapistRepo.GetByID(b.TherapistID); err == nil && t != nil {
		s.notify(ctx, t.UserID, models.RoleTherapist, models.NotificationBookingCancelled,
			"Booking cancelled",
			fmt.Sprintf("The booking on %s at %s was cancelled.", b.Date, b.SlotTime),
			map[string]string{"bookingId": bookingID})
	}
	return nil
}

// UpdateStatus transitions a booking without ownership checks. It backs the
// therapist complete action and admin overrides; handlers gate access.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, bookingID, status string) error {
	switch status {
	case models.BookingStatusConfirmed, models.BookingStatusCompleted, models.BookingStatusCancelled:
	default:
		return fmt.Errorf("unsupported booking status %q", status)
	}
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrNotFound
	}
	if err := s.BookingRepo.UpdateStatus(bookingID, status); err != nil {
		return err
	}
	if status == models.BookingStatusCancelled {
		if err := s.ScheduleRepo.ReleaseSlot(b.TherapistID, b.Date, b.SlotTime); err != nil {
			utils.GetLogger().Warn("failed to release slot",
				zap.String("booking_id", bookingID), zap.Error(err))
		}
	}
	return nil
}

// ExpireUnpaid cancels a booking still awaiting payment after its deadline.
// Bookings that got paid in the meantime are left alone.
func (s *DefaultBookingService) ExpireUnpaid(ctx context.Context, bookingID string) error {
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if b == nil || b.Status != models.BookingStatusPendingPayment {
		return nil
	}

	if err := s.BookingRepo.UpdateStatus(bookingID, models.BookingStatusCancelled); err != nil {
		return err
	}
	if err := s.ScheduleRepo.ReleaseSlot(b.TherapistID, b.Date, b.SlotTime); err != nil {
		utils.GetLogger().Warn("failed to release slot on expiry",
			zap.String("booking_id", bookingID), zap.Error(err))
	}
	if b.OrderID != "" {
		if err := s.OrderRepo.SetStatus(b.OrderID, models.OrderStatusExpired, "payment deadline lapsed"); err != nil {
			utils.GetLogger().Warn("failed to expire order",
				zap.String("order_id", b.OrderID), zap.Error(err))
		}
	}

	s.notify(ctx, b.UserID, models.RoleUser, models.NotificationBookingCancelled,
		"Booking expired",
		"Your booking was cancelled because payment was not completed in time.",
		map[string]string{"bookingId": bookingID})
	return nil
}

func (s *DefaultBookingService) notify(ctx context.Context, userID, role, ntype, title, body string, data map[string]string) {
	if s.Notifier == nil || userID == "" {
		return
	}
	if err := s.Notifier.Notify(ctx, userID, role, ntype, title, body, data); err != nil {
		utils.GetLogger().Warn("failed to send notification",
			zap.String("user_id", userID), zap.String("type", ntype), zap.Error(err))
	}
}
