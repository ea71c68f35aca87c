package settingsRepo

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

// settingsDocID pins the single settings document.
const settingsDocID = "platform"

// MongoSettingsRepo implements SettingsRepository using MongoDB.
type MongoSettingsRepo struct {
	settings *mongo.Collection
	reviews  *mongo.Collection
}

// NewMongoSettingsRepo creates a new instance of SettingsRepository using MongoDB.
func NewMongoSettingsRepo() SettingsRepository {
	db := database.DB()
	repo := &MongoSettingsRepo{
		settings: db.Collection("settings"),
		reviews:  db.Collection("reviews"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSettingsRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.reviews.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "approved", Value: 1}, {Key: "created_at", Value: -1}}},
	}); err != nil {
		return fmt.Errorf("failed to create review indexes: %w", err)
	}
	return nil
}

// GetSettings returns the platform settings document, falling back to
// defaults when none was ever saved.
func (r *MongoSettingsRepo) GetSettings() (*models.Settings, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var s models.Settings
	err := r.settings.FindOne(ctx, bson.M{"id": settingsDocID}).Decode(&s)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return &models.Settings{
				ID:          settingsDocID,
				SiteName:    "BroHeal",
				BookingOpen: true,
				Currency:    "INR",
			}, nil
		}
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}
	return &s, nil
}

// UpdateSettings replaces the platform settings document.
func (r *MongoSettingsRepo) UpdateSettings(s *models.Settings) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	s.ID = settingsDocID
	s.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	if _, err := r.settings.ReplaceOne(ctx, bson.M{"id": settingsDocID}, s, opts); err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}

// CreateReview inserts a review pending admin approval.
func (r *MongoSettingsRepo) CreateReview(rev *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	rev.CreatedAt = time.Now()
	if _, err := r.reviews.InsertOne(ctx, rev); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// ListApprovedReviews returns reviews served on the public site.
func (r *MongoSettingsRepo) ListApprovedReviews() ([]models.Review, error) {
	return r.listReviews(bson.M{"approved": true})
}

// ListAllReviews returns every review for admin moderation.
func (r *MongoSettingsRepo) ListAllReviews() ([]models.Review, error) {
	return r.listReviews(bson.M{})
}

func (r *MongoSettingsRepo) listReviews(filter bson.M) ([]models.Review, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(100)
	cursor, err := r.reviews.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Review
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return out, nil
}

// ApproveReview marks a review approved and returns the updated document.
func (r *MongoSettingsRepo) ApproveReview(id string) (*models.Review, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var rev models.Review
	err := r.reviews.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"approved": true}},
		opts,
	).Decode(&rev)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("review %s not found", id)
		}
		return nil, fmt.Errorf("failed to approve review %s: %w", id, err)
	}
	return &rev, nil
}
