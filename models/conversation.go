package models

import "time"

// Conversation links the two booking parties for chat. It is created when a
// booking becomes chat-eligible (confirmed) and touched on every message.
type Conversation struct {
	ID           string    `bson:"id" json:"id"`
	BookingID    string    `bson:"booking_id" json:"bookingId"`
	Participants []string  `bson:"participants" json:"participants"` // ordered: user, therapist
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// Message is a single chat message inside a conversation.
type Message struct {
	ID             string    `bson:"id" json:"id"`
	ConversationID string    `bson:"conversation_id" json:"conversationId"`
	SenderID       string    `bson:"sender_id" json:"senderId"`
	Body           string    `bson:"body" json:"body"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}
