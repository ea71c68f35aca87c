package therapistRepo

import (
	"broheal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// TherapistRepository defines persistence operations for therapist profiles.
type TherapistRepository interface {
	Create(t *models.Therapist) error
	GetByID(id string) (*models.Therapist, error)
	GetByUserID(userID string) (*models.Therapist, error)
	UpdateWithDocument(id string, update bson.M) error
	ListVerified() ([]models.Therapist, error)
	ListAll() ([]models.Therapist, error)
	ApplyRating(id string, rating int) error
}
