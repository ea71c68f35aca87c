package conversationRepo

import (
	"context"
	"fmt"
	"time"

	"broheal/database"
	"broheal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConversationRepo implements ConversationRepository using MongoDB.
type MongoConversationRepo struct {
	conversations *mongo.Collection
	messages      *mongo.Collection
}

// NewMongoConversationRepo creates a new instance of ConversationRepository using MongoDB.
func NewMongoConversationRepo() ConversationRepository {
	db := database.DB()
	repo := &MongoConversationRepo{
		conversations: db.Collection("conversations"),
		messages:      db.Collection("messages"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoConversationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.conversations.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "participants", Value: 1}, {Key: "updated_at", Value: -1}}},
	}); err != nil {
		return fmt.Errorf("failed to create conversation indexes: %w", err)
	}
	if _, err := r.messages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "conversation_id", Value: 1}, {Key: "created_at", Value: -1}},
	}); err != nil {
		return fmt.Errorf("failed to create message indexes: %w", err)
	}
	return nil
}

// Create inserts a conversation; updatedAt defaults to creation time.
func (r *MongoConversationRepo) Create(c *models.Conversation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	if _, err := r.conversations.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("failed to create conversation: %w", err)
	}
	return nil
}

// GetByBookingID returns the conversation attached to a booking, if any.
func (r *MongoConversationRepo) GetByBookingID(bookingID string) (*models.Conversation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var c models.Conversation
	err := r.conversations.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch conversation for booking %s: %w", bookingID, err)
	}
	return &c, nil
}

// ListByParticipant returns a participant's conversations, most recent first.
func (r *MongoConversationRepo) ListByParticipant(userID string) ([]models.Conversation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cursor, err := r.conversations.Find(ctx, bson.M{"participants": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Conversation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode conversations: %w", err)
	}
	return out, nil
}

// AppendMessage inserts a message and touches the parent conversation.
func (r *MongoConversationRepo) AppendMessage(m *models.Message) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	m.CreatedAt = time.Now()
	if _, err := r.messages.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	if _, err := r.conversations.UpdateOne(ctx,
		bson.M{"id": m.ConversationID},
		bson.M{"$set": bson.M{"updated_at": m.CreatedAt}},
	); err != nil {
		return fmt.Errorf("failed to touch conversation %s: %w", m.ConversationID, err)
	}
	return nil
}

// ListMessages returns a conversation's messages, newest first.
func (r *MongoConversationRepo) ListMessages(conversationID string, limit int64) ([]models.Message, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cursor, err := r.messages.Find(ctx, bson.M{"conversation_id": conversationID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Message
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return out, nil
}
