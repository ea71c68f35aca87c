package catalogRepo

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

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	services *mongo.Collection
	addons   *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	repo := &MongoCatalogRepo{
		services: db.Collection("services"),
		addons:   db.Collection("addons"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.services.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}
	if _, err := r.addons.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "service_id", Value: 1}, {Key: "active", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create addon indexes: %w", err)
	}
	return nil
}

// ListActiveServices returns the active service catalogue.
func (r *MongoCatalogRepo) ListActiveServices() ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.services.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Service
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return out, nil
}

// GetServiceByID retrieves one service.
func (r *MongoCatalogRepo) GetServiceByID(id string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.Service
	err := r.services.FindOne(ctx, bson.M{"id": id}).Decode(&svc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &svc, nil
}

// UpsertService creates or replaces a catalogue service.
func (r *MongoCatalogRepo) UpsertService(svc *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.services.ReplaceOne(ctx, bson.M{"id": svc.ID}, svc, opts); err != nil {
		return fmt.Errorf("failed to upsert service %s: %w", svc.ID, err)
	}
	return nil
}

// ListAddonsByService returns the active addons for one service.
func (r *MongoCatalogRepo) ListAddonsByService(serviceID string) ([]models.Addon, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.addons.Find(ctx, bson.M{"service_id": serviceID, "active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list addons for service %s: %w", serviceID, err)
	}
	defer cursor.Close(ctx)

	var out []models.Addon
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode addons: %w", err)
	}
	return out, nil
}

// GetAddonByID retrieves one addon.
func (r *MongoCatalogRepo) GetAddonByID(id string) (*models.Addon, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var addon models.Addon
	err := r.addons.FindOne(ctx, bson.M{"id": id}).Decode(&addon)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch addon with id %s: %w", id, err)
	}
	return &addon, nil
}

// UpsertAddon creates or replaces an addon.
func (r *MongoCatalogRepo) UpsertAddon(addon *models.Addon) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.addons.ReplaceOne(ctx, bson.M{"id": addon.ID}, addon, opts); err != nil {
		return fmt.Errorf("failed to upsert addon %s: %w", addon.ID, err)
	}
	return nil
}
