package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/salad-karo/storefront/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
}

type orderRepo struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *DB) OrderRepository {
	return &orderRepo{
		collection: db.Database.Collection("orders"),
	}
}

func (r *orderRepo) Create(ctx context.Context, order *models.Order) error {
	order.ID = primitive.NewObjectID()
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}
