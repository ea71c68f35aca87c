package kycRepo

import "broheal/models"

// KYCRepository defines persistence for therapist KYC submissions.
type KYCRepository interface {
	Create(sub *models.KYCSubmission) error
	GetByID(id string) (*models.KYCSubmission, error)
	GetLatestByTherapist(therapistID string) (*models.KYCSubmission, error)
	ListPending() ([]models.KYCSubmission, error)
	SetReview(id, status, note, reviewerID string) error
}
