package orderRepo

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

// MongoOrderRepo implements OrderRepository using MongoDB.
type MongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo creates a new instance of OrderRepository using MongoDB.
func NewMongoOrderRepo() OrderRepository {
	coll := database.DB().Collection("orders")
	repo := &MongoOrderRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoOrderRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a payment order.
func (r *MongoOrderRepo) Create(o *models.Order) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID retrieves an order.
func (r *MongoOrderRepo) GetByID(id string) (*models.Order, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByBookingID retrieves the order attached to a booking.
func (r *MongoOrderRepo) GetByBookingID(bookingID string) (*models.Order, error) {
	return r.findOne(bson.M{"booking_id": bookingID})
}

func (r *MongoOrderRepo) findOne(filter bson.M) (*models.Order, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var o models.Order
	err := r.coll.FindOne(ctx, filter).Decode(&o)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return &o, nil
}

// SetStatus records the order outcome.
func (r *MongoOrderRepo) SetStatus(id, status, failureReason string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"status": status, "updated_at": time.Now()}
	if failureReason != "" {
		set["failure_reason"] = failureReason
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to set order status for %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("order %s not found", id)
	}
	return nil
}

// SetPaymentIntent attaches the gateway PaymentIntent to the order.
func (r *MongoOrderRepo) SetPaymentIntent(id, paymentIntentID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"payment_intent_id": paymentIntentID, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to set payment intent for order %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("order %s not found", id)
	}
	return nil
}
