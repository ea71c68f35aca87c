package kyc

import (
	"context"
	"errors"
	"fmt"
	"time"

	kycRepo "broheal/database/repository/kyc"
	therapistRepo "broheal/database/repository/therapist"
	"broheal/models"
	"broheal/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

var (
	// ErrAlreadyApproved blocks resubmission after approval.
	ErrAlreadyApproved = errors.New("kyc is already approved")
	// ErrPendingReview blocks resubmission while a review is in flight.
	ErrPendingReview = errors.New("kyc submission is pending review")
	// ErrNoSubmission is returned when a therapist has never submitted.
	ErrNoSubmission = errors.New("no kyc submission found")
)

// Notifier is the slice of the notification service the KYC flow needs.
type Notifier interface {
	Notify(ctx context.Context, userID, role, ntype, title, body string, data map[string]string) error
}

// KYCService handles therapist verification submissions and admin review.
type KYCService interface {
	Submit(ctx context.Context, therapistID string, sub *models.KYCSubmission) (*models.KYCSubmission, error)
	GetStatus(ctx context.Context, therapistID string) (*models.KYCSubmission, error)
	ListPending(ctx context.Context) ([]models.KYCSubmission, error)
	Review(ctx context.Context, submissionID, reviewerID string, review models.KYCReview) error
}

// DefaultKYCService is the production implementation.
type DefaultKYCService struct {
	KYCRepo       kycRepo.KYCRepository
	TherapistRepo therapistRepo.TherapistRepository
	Notifier      Notifier
}

// Submit validates the full submission and stores it as pending. A rejected
// therapist may resubmit; pending and approved ones may not.
func (s *DefaultKYCService) Submit(ctx context.Context, therapistID string, sub *models.KYCSubmission) (*models.KYCSubmission, error) {
	latest, err := s.KYCRepo.GetLatestByTherapist(therapistID)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		switch latest.Status {
		case models.KYCStatusApproved:
			return nil, ErrAlreadyApproved
		case models.KYCStatusPending:
			return nil, ErrPendingReview
		}
	}

	sub.ID = uuid.New().String()
	sub.TherapistID = therapistID
	sub.Status = models.KYCStatusPending
	sub.ReviewNote = ""
	sub.ReviewedBy = ""
	sub.ReviewedAt = nil

	if err := NewKYCWizard().Complete(sub); err != nil {
		return nil, err
	}

	if err := s.KYCRepo.Create(sub); err != nil {
		return nil, err
	}
	if err := s.TherapistRepo.UpdateWithDocument(therapistID, bson.M{"$set": bson.M{
		"kyc_status": models.KYCStatusPending,
		"updated_at": time.Now(),
	}}); err != nil {
		utils.GetLogger().Warn("failed to mark therapist kyc pending",
			zap.String("therapist_id", therapistID), zap.Error(err))
	}
	return sub, nil
}

// GetStatus returns the therapist's latest submission.
func (s *DefaultKYCService) GetStatus(ctx context.Context, therapistID string) (*models.KYCSubmission, error) {
	sub, err := s.KYCRepo.GetLatestByTherapist(therapistID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrNoSubmission
	}
	return sub, nil
}

// ListPending returns submissions awaiting admin review, oldest first.
func (s *DefaultKYCService) ListPending(ctx context.Context) ([]models.KYCSubmission, error) {
	return s.KYCRepo.ListPending()
}

// Review records the admin decision and mirrors it onto the therapist
// profile: approval verifies the therapist, rejection clears verification so
// they can fix and resubmit.
func (s *DefaultKYCService) Review(ctx context.Context, submissionID, reviewerID string, review models.KYCReview) error {
	sub, err := s.KYCRepo.GetByID(submissionID)
	if err != nil {
		return err
	}
	if sub == nil {
		return ErrNoSubmission
	}
	if sub.Status != models.KYCStatusPending {
		return fmt.Errorf("submission is already %s", sub.Status)
	}

	status := models.KYCStatusRejected
	if review.Approve {
		status = models.KYCStatusApproved
	}
	if err := s.KYCRepo.SetReview(submissionID, status, review.Note, reviewerID); err != nil {
		return err
	}
	if err := s.TherapistRepo.UpdateWithDocument(sub.TherapistID, bson.M{"$set": bson.M{
		"kyc_status": status,
		"verified":   review.Approve,
		"updated_at": time.Now(),
	}}); err != nil {
		return fmt.Errorf("failed to update therapist verification: %w", err)
	}

	if s.Notifier != nil {
		title, body := "Verification approved", "Your profile is now verified. You can start accepting bookings."
		if !review.Approve {
			title, body = "Verification rejected", "Your verification was rejected. Please review the note and resubmit."
		}
		therapist, err := s.TherapistRepo.GetByID(sub.TherapistID)
		if err == nil && therapist != nil {
			if err := s.Notifier.Notify(ctx, therapist.UserID, models.RoleTherapist,
				models.NotificationKYCReviewed, title, body,
				map[string]string{"submissionId": submissionID, "status": status, "note": review.Note}); err != nil {
				utils.GetLogger().Warn("failed to notify kyc decision",
					zap.String("therapist_id", sub.TherapistID), zap.Error(err))
			}
		}
	}
	return nil
}
