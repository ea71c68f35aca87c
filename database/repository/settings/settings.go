package settingsRepo

import "broheal/models"

// SettingsRepository defines persistence for platform settings and reviews.
type SettingsRepository interface {
	GetSettings() (*models.Settings, error)
	UpdateSettings(s *models.Settings) error

	CreateReview(rev *models.Review) error
	ListApprovedReviews() ([]models.Review, error)
	ListAllReviews() ([]models.Review, error)
	ApproveReview(id string) (*models.Review, error)
}
