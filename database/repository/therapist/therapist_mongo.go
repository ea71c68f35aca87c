package therapistRepo

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

// MongoTherapistRepo implements TherapistRepository using MongoDB.
type MongoTherapistRepo struct {
	coll *mongo.Collection
}

// NewMongoTherapistRepo creates a new instance of TherapistRepository using MongoDB.
func NewMongoTherapistRepo() TherapistRepository {
	coll := database.DB().Collection("therapists")
	repo := &MongoTherapistRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTherapistRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "verified", Value: 1}, {Key: "city", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new therapist profile.
func (r *MongoTherapistRepo) Create(t *models.Therapist) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("failed to create therapist: %w", err)
	}
	return nil
}

// GetByID retrieves a therapist by its unique ID.
func (r *MongoTherapistRepo) GetByID(id string) (*models.Therapist, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var t models.Therapist
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&t)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch therapist with id %s: %w", id, err)
	}
	return &t, nil
}

// GetByUserID retrieves the therapist profile attached to an account.
func (r *MongoTherapistRepo) GetByUserID(userID string) (*models.Therapist, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var t models.Therapist
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&t)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch therapist for user %s: %w", userID, err)
	}
	return &t, nil
}

// UpdateWithDocument applies a raw update document to a therapist.
func (r *MongoTherapistRepo) UpdateWithDocument(id string, update bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update therapist with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("therapist with id %s not found", id)
	}
	return nil
}

// ListVerified returns all KYC-approved therapists.
func (r *MongoTherapistRepo) ListVerified() ([]models.Therapist, error) {
	return r.list(bson.M{"verified": true})
}

// ListAll returns every therapist profile.
func (r *MongoTherapistRepo) ListAll() ([]models.Therapist, error) {
	return r.list(bson.M{})
}

func (r *MongoTherapistRepo) list(filter bson.M) ([]models.Therapist, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list therapists: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Therapist
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode therapists: %w", err)
	}
	return out, nil
}

// ApplyRating folds a new review rating into the running average.
func (r *MongoTherapistRepo) ApplyRating(id string, rating int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	t, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return fmt.Errorf("therapist with id %s not found", id)
	}

	newCount := t.RatingCount + 1
	newRating := (t.Rating*float64(t.RatingCount) + float64(rating)) / float64(newCount)

	update := bson.M{"$set": bson.M{
		"rating":       newRating,
		"rating_count": newCount,
		"updated_at":   time.Now(),
	}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("failed to apply rating for therapist %s: %w", id, err)
	}
	return nil
}
