package notification

import (
	"context"

	notificationRepo "broheal/database/repository/notification"
	userRepo "broheal/database/repository/user"
	"broheal/models"
	"broheal/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationService persists and pushes per-recipient notifications.
type NotificationService interface {
	Notify(ctx context.Context, userID, role, ntype, title, body string, data map[string]string) error
	List(ctx context.Context, userID, role string) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	MarkAllRead(ctx context.Context, userID, role string) (int64, error)
}

// DefaultNotificationService stores notifications in Mongo and pushes a copy
// via FCM when the recipient has a registered device token. Push failures are
// logged and swallowed; the stored notification is the source of truth.
type DefaultNotificationService struct {
	NotificationRepo notificationRepo.NotificationRepository
	UserRepo         userRepo.UserRepository
}

// Notify persists the notification and attempts a push.
func (s *DefaultNotificationService) Notify(ctx context.Context, userID, role, ntype, title, body string, data map[string]string) error {
	n := &models.Notification{
		ID:     uuid.New().String(),
		UserID: userID,
		Role:   role,
		Type:   ntype,
		Title:  title,
		Body:   body,
		Data:   data,
	}
	if err := s.NotificationRepo.Create(n); err != nil {
		return err
	}
	s.push(ctx, n)
	return nil
}

func (s *DefaultNotificationService) push(ctx context.Context, n *models.Notification) {
	if utils.FCMClient == nil {
		return
	}
	user, err := s.UserRepo.GetByID(n.UserID)
	if err != nil || user == nil || user.FCMToken == "" {
		return
	}

	msg := &messaging.Message{
		Token: user.FCMToken,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: n.Data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		utils.GetLogger().Warn("fcm push failed",
			zap.String("user_id", n.UserID), zap.String("type", n.Type), zap.Error(err))
	}
}

// List returns the recipient's recent notifications, newest first.
func (s *DefaultNotificationService) List(ctx context.Context, userID, role string) ([]models.Notification, error) {
	return s.NotificationRepo.ListByRecipient(userID, role)
}

// MarkRead flips one notification owned by the caller.
func (s *DefaultNotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	return s.NotificationRepo.MarkRead(userID, notificationID)
}

// MarkAllRead flips every unread notification for the caller in one update
// and returns how many changed.
func (s *DefaultNotificationService) MarkAllRead(ctx context.Context, userID, role string) (int64, error) {
	return s.NotificationRepo.MarkAllRead(userID, role)
}
