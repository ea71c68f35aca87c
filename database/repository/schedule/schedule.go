package scheduleRepo

import (
	"context"
	"errors"

	"broheal/models"
)

// ErrSlotTaken is returned when a booking targets a slot another booking
// already took.
var ErrSlotTaken = errors.New("slot already booked")

// ScheduleRepository defines persistence for therapist schedules and the
// booked-slot marks that arbitrate slot contention.
type ScheduleRepository interface {
	UpsertSchedule(schedule *models.TherapistSchedule) error
	GetScheduleByTherapist(therapistID string) (*models.TherapistSchedule, error)
	GetBookedTimes(therapistID, date string) (map[string]bool, error)

	// BookSlotTransactionally inserts the booking and marks its slot booked in
	// one Mongo transaction. It returns ErrSlotTaken when the mark already
	// exists.
	BookSlotTransactionally(ctx context.Context, booking *models.Booking) error
	ReleaseSlot(therapistID, date, slotTime string) error
}
