package userRepo

import (
	"broheal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines persistence operations for platform accounts.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	GetByPhoneAndRole(phone, role string) (*models.User, error)
	GetByEmailAndRole(email, role string) (*models.User, error)
	UpdateWithDocument(id string, update bson.M) error
	Delete(id string) error
	ListByRole(role string) ([]models.User, error)
}
