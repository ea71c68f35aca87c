package therapist

import (
	"context"
	"errors"
	"fmt"
	"time"

	scheduleRepo "broheal/database/repository/schedule"
	therapistRepo "broheal/database/repository/therapist"
	"broheal/models"
	"broheal/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrTherapistNotFound is returned for lookups of unknown profiles.
var ErrTherapistNotFound = errors.New("therapist not found")

// TherapistService handles provider profiles and weekly schedules.
type TherapistService interface {
	GetByUserID(ctx context.Context, userID string) (*models.Therapist, error)
	GetByID(ctx context.Context, id string) (*models.Therapist, error)
	UpdateProfile(ctx context.Context, userID string, update models.TherapistUpdate) (*models.Therapist, error)
	ListVerified(ctx context.Context) ([]models.Therapist, error)
	SetSchedule(ctx context.Context, userID string, templates []models.SlotTemplate) (*models.TherapistSchedule, error)
	GetSchedule(ctx context.Context, userID string) (*models.TherapistSchedule, error)
}

// DefaultTherapistService is the production implementation.
type DefaultTherapistService struct {
	TherapistRepo therapistRepo.TherapistRepository
	ScheduleRepo  scheduleRepo.ScheduleRepository
}

func (s *DefaultTherapistService) GetByUserID(ctx context.Context, userID string) (*models.Therapist, error) {
	t, err := s.TherapistRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTherapistNotFound
	}
	return t, nil
}

func (s *DefaultTherapistService) GetByID(ctx context.Context, id string) (*models.Therapist, error) {
	t, err := s.TherapistRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTherapistNotFound
	}
	return t, nil
}

// UpdateProfile applies the non-empty fields of the update.
func (s *DefaultTherapistService) UpdateProfile(ctx context.Context, userID string, update models.TherapistUpdate) (*models.Therapist, error) {
	t, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	doc := bson.M{"updated_at": time.Now()}
	if update.DisplayName != "" {
		doc["display_name"] = update.DisplayName
	}
	if update.Bio != "" {
		doc["bio"] = update.Bio
	}
	if update.City != "" {
		doc["city"] = update.City
	}
	if len(update.ServiceIDs) > 0 {
		for _, id := range update.ServiceIDs {
			if !utils.IsValidObjectID(id) {
				return nil, fmt.Errorf("service id %q is not a valid identifier", id)
			}
		}
		doc["service_ids"] = update.ServiceIDs
	}
	if err := s.TherapistRepo.UpdateWithDocument(t.ID, bson.M{"$set": doc}); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, t.ID)
}

// ListVerified returns the therapists shown to users during booking.
func (s *DefaultTherapistService) ListVerified(ctx context.Context) ([]models.Therapist, error) {
	return s.TherapistRepo.ListVerified()
}

// SetSchedule replaces the therapist's weekly templates. Slots are stored in
// the shape the client sent; normalization happens on read at the API
// boundary, so older clients keep working.
func (s *DefaultTherapistService) SetSchedule(ctx context.Context, userID string, templates []models.SlotTemplate) (*models.TherapistSchedule, error) {
	t, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(templates))
	for _, tpl := range templates {
		if tpl.Weekday < 0 || tpl.Weekday > 6 {
			return nil, fmt.Errorf("weekday %d is out of range", tpl.Weekday)
		}
		if seen[tpl.Weekday] {
			return nil, fmt.Errorf("weekday %d appears more than once", tpl.Weekday)
		}
		seen[tpl.Weekday] = true
	}

	schedule := &models.TherapistSchedule{
		ID:          utils.NewHexID(),
		TherapistID: t.ID,
		Templates:   templates,
		UpdatedAt:   time.Now(),
	}
	if existing, err := s.ScheduleRepo.GetScheduleByTherapist(t.ID); err == nil && existing != nil {
		schedule.ID = existing.ID
	}
	if err := s.ScheduleRepo.UpsertSchedule(schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// GetSchedule returns the therapist's stored weekly templates.
func (s *DefaultTherapistService) GetSchedule(ctx context.Context, userID string) (*models.TherapistSchedule, error) {
	t, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.ScheduleRepo.GetScheduleByTherapist(t.ID)
}
