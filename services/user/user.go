package user

import (
	"context"
	"errors"
	"time"

	userRepo "broheal/database/repository/user"
	"broheal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrUserNotFound is returned for lookups of unknown accounts.
var ErrUserNotFound = errors.New("user not found")

// UserService handles account profile reads and updates.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.User, error)
	DeleteAccount(ctx context.Context, userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	UserRepo userRepo.UserRepository
}

// GetProfile returns the account without sensitive fields.
func (s *DefaultUserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.UserRepo.GetByIDWithProjection(userID, bson.M{"password_hash": 0})
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// UpdateProfile applies the non-empty fields of the update and returns the
// fresh profile.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.User, error) {
	doc := bson.M{"updated_at": time.Now()}
	if update.Name != "" {
		doc["name"] = update.Name
	}
	if update.Email != "" {
		doc["email"] = update.Email
	}
	if update.ProfileImage != "" {
		doc["profile_image"] = update.ProfileImage
	}
	if update.FCMToken != "" {
		doc["fcm_token"] = update.FCMToken
	}
	if err := s.UserRepo.UpdateWithDocument(userID, bson.M{"$set": doc}); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

// DeleteAccount removes the account record.
func (s *DefaultUserService) DeleteAccount(ctx context.Context, userID string) error {
	return s.UserRepo.Delete(userID)
}
