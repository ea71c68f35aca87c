package notificationRepo

import "broheal/models"

// NotificationRepository defines persistence for per-recipient notifications.
type NotificationRepository interface {
	Create(n *models.Notification) error
	ListByRecipient(userID, role string) ([]models.Notification, error)
	MarkRead(userID, notificationID string) error
	// MarkAllRead flips every unread notification for the recipient in one
	// update, so a batch can never partially fail.
	MarkAllRead(userID, role string) (int64, error)
}
