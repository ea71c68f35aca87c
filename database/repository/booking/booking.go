package bookingRepo

import (
	"broheal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository defines read/update access to booking records. Inserts go
// through the schedule repository so they stay transactional with the
// booked-slot mark.
type BookingRepository interface {
	GetByID(id string) (*models.Booking, error)
	ListByUser(userID string) ([]models.Booking, error)
	ListByTherapist(therapistID string) ([]models.Booking, error)
	ListAll() ([]models.Booking, error)
	UpdateStatus(id, status string) error
	UpdateWithDocument(id string, update bson.M) error
	ListByStatus(status string) ([]models.Booking, error)
}
