package booking

import (
	"context"
	"time"

	bookingRepo "broheal/database/repository/booking"
	catalogRepo "broheal/database/repository/catalog"
	orderRepo "broheal/database/repository/order"
	scheduleRepo "broheal/database/repository/schedule"
	settingsRepo "broheal/database/repository/settings"
	therapistRepo "broheal/database/repository/therapist"
	"broheal/models"
)

// AnyTherapist is the pseudo-identifier the client sends when the user lets
// the platform pick a therapist.
const AnyTherapist = "any"

// BookingService drives the booking flow: slot discovery, holds, submission
// and lifecycle updates.
type BookingService interface {
	GetAvailableSlots(ctx context.Context, therapistID, date string) ([]models.Slot, error)
	HoldSlot(ctx context.Context, userID, therapistID, date, slotTime string) (*models.SlotHold, error)
	CreateBooking(ctx context.Context, userID string, req *models.BookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	ListTherapistBookings(ctx context.Context, therapistID string) ([]models.Booking, error)
	CancelBooking(ctx context.Context, userID, bookingID string) error
	UpdateStatus(ctx context.Context, bookingID, status string) error
	// ExpireUnpaid cancels a booking whose payment deadline lapsed and frees
	// its slot. Invoked from the background worker.
	ExpireUnpaid(ctx context.Context, bookingID string) error
}

// Notifier is the slice of the notification service the booking flow needs.
type Notifier interface {
	Notify(ctx context.Context, userID, role, ntype, title, body string, data map[string]string) error
}

// TaskScheduler enqueues deferred booking work (reminders, payment expiry).
type TaskScheduler interface {
	SchedulePaymentExpiry(bookingID string, at time.Time) error
	ScheduleReminder(bookingID string, at time.Time) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	ScheduleRepo  scheduleRepo.ScheduleRepository
	BookingRepo   bookingRepo.BookingRepository
	CatalogRepo   catalogRepo.CatalogRepository
	TherapistRepo therapistRepo.TherapistRepository
	SettingsRepo  settingsRepo.SettingsRepository
	OrderRepo     orderRepo.OrderRepository
	Holds         *HoldManager
	Notifier      Notifier
	Tasks         TaskScheduler

	// PaymentDeadline bounds how long an unpaid booking keeps its slot.
	PaymentDeadline time.Duration
}
