package booking

import "errors"

var (
	// ErrInvalidTherapistID rejects submissions whose therapist reference is
	// not a 24-character hex identifier.
	ErrInvalidTherapistID = errors.New("therapistId is not a valid identifier")
	// ErrInvalidServiceID rejects submissions whose service reference is not
	// a 24-character hex identifier.
	ErrInvalidServiceID = errors.New("serviceId is not a valid identifier")
	// ErrSlotUnavailable signals that another booking won the slot.
	ErrSlotUnavailable = errors.New("selected slot is no longer available")
	// ErrHoldExpired signals that the short-TTL reservation lapsed or was
	// never taken.
	ErrHoldExpired = errors.New("slot hold expired, reselect the slot")
	// ErrHoldNotOwned signals a confirm attempt against someone else's hold.
	ErrHoldNotOwned = errors.New("slot is held by another user")
	// ErrBookingClosed signals that the platform is not accepting bookings.
	ErrBookingClosed = errors.New("booking is currently closed")
	// ErrNotFound is returned for lookups of unknown bookings.
	ErrNotFound = errors.New("booking not found")
)
