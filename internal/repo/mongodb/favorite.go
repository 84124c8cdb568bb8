package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FavoriteRepository records mirrored like toggles as a set keyed by
// product id. Add is an upsert and remove tolerates absent ids, matching
// the idempotent toggle on the client side.
type FavoriteRepository interface {
	Add(ctx context.Context, productID string) error
	Remove(ctx context.Context, productID string) error
}

type favoriteRepo struct {
	collection *mongo.Collection
}

func NewFavoriteRepository(db *DB) FavoriteRepository {
	return &favoriteRepo{
		collection: db.Database.Collection("favorites"),
	}
}

func (r *favoriteRepo) Add(ctx context.Context, productID string) error {
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"product_id": productID,
			"created_at": time.Now(),
		},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"product_id": productID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (r *favoriteRepo) Remove(ctx context.Context, productID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"product_id": productID})
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}
