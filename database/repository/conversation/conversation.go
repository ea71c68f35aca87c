package conversationRepo

import "broheal/models"

// ConversationRepository defines persistence for booking chat threads.
type ConversationRepository interface {
	Create(c *models.Conversation) error
	GetByBookingID(bookingID string) (*models.Conversation, error)
	ListByParticipant(userID string) ([]models.Conversation, error)
	AppendMessage(m *models.Message) error
	ListMessages(conversationID string, limit int64) ([]models.Message, error)
}
