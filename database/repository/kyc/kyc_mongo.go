package kycRepo

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

// MongoKYCRepo implements KYCRepository using MongoDB.
type MongoKYCRepo struct {
	coll *mongo.Collection
}

// NewMongoKYCRepo creates a new instance of KYCRepository using MongoDB.
func NewMongoKYCRepo() KYCRepository {
	coll := database.DB().Collection("kyc_submissions")
	repo := &MongoKYCRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoKYCRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "therapist_id", Value: 1}, {Key: "submitted_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a KYC submission.
func (r *MongoKYCRepo) Create(sub *models.KYCSubmission) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	sub.SubmittedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, sub); err != nil {
		return fmt.Errorf("failed to create KYC submission: %w", err)
	}
	return nil
}

// GetByID retrieves one submission.
func (r *MongoKYCRepo) GetByID(id string) (*models.KYCSubmission, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var sub models.KYCSubmission
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&sub)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch KYC submission %s: %w", id, err)
	}
	return &sub, nil
}

// GetLatestByTherapist returns the therapist's most recent submission.
func (r *MongoKYCRepo) GetLatestByTherapist(therapistID string) (*models.KYCSubmission, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "submitted_at", Value: -1}})
	var sub models.KYCSubmission
	err := r.coll.FindOne(ctx, bson.M{"therapist_id": therapistID}, opts).Decode(&sub)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch KYC for therapist %s: %w", therapistID, err)
	}
	return &sub, nil
}

// ListPending returns submissions awaiting review.
func (r *MongoKYCRepo) ListPending() ([]models.KYCSubmission, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"status": models.KYCStatusPending}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending KYC submissions: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.KYCSubmission
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode KYC submissions: %w", err)
	}
	return out, nil
}

// SetReview records the admin decision.
func (r *MongoKYCRepo) SetReview(id, status, note, reviewerID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{
			"status":      status,
			"review_note": note,
			"reviewed_by": reviewerID,
			"reviewed_at": now,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to record KYC review for %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("KYC submission %s not found", id)
	}
	return nil
}
