package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/salad-karo/storefront/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SaladRepository interface {
	CreateMany(ctx context.Context, salads []*models.Salad) error
	ListActive(ctx context.Context) ([]*models.Salad, error)
	Count(ctx context.Context) (int64, error)
}

type saladRepo struct {
	collection *mongo.Collection
}

func NewSaladRepository(db *DB) SaladRepository {
	return &saladRepo{
		collection: db.Database.Collection("salads"),
	}
}

func (r *saladRepo) CreateMany(ctx context.Context, salads []*models.Salad) error {
	now := time.Now()
	docs := make([]any, 0, len(salads))
	for _, s := range salads {
		s.ID = primitive.NewObjectID()
		s.CreatedAt = now
		s.UpdatedAt = now
		docs = append(docs, s)
	}

	_, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("failed to create salads: %w", err)
	}
	return nil
}

func (r *saladRepo) ListActive(ctx context.Context) ([]*models.Salad, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list salads: %w", err)
	}
	defer cursor.Close(ctx)

	var salads []*models.Salad
	for cursor.Next(ctx) {
		var salad models.Salad
		if err := cursor.Decode(&salad); err != nil {
			return nil, fmt.Errorf("failed to decode salad: %w", err)
		}
		salads = append(salads, &salad)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return salads, nil
}

func (r *saladRepo) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count salads: %w", err)
	}
	return count, nil
}
