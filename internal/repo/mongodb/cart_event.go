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

// CartEventRepository records mirrored cart deltas, one document per
// product id. Deletes of unknown ids succeed: a mirror notification for a
// state the server never saw is not an error.
type CartEventRepository interface {
	Upsert(ctx context.Context, productID string, quantity int) error
	Delete(ctx context.Context, productID string) error
}

type cartEventRepo struct {
	collection *mongo.Collection
}

func NewCartEventRepository(db *DB) CartEventRepository {
	return &cartEventRepo{
		collection: db.Database.Collection("cart_events"),
	}
}

func (r *cartEventRepo) Upsert(ctx context.Context, productID string, quantity int) error {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"quantity":   quantity,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"product_id": productID,
		},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"product_id": productID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert cart event: %w", err)
	}
	return nil
}

func (r *cartEventRepo) Delete(ctx context.Context, productID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"product_id": productID})
	if err != nil {
		return fmt.Errorf("failed to delete cart event: %w", err)
	}
	return nil
}
