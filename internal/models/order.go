package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const OrderStatusReceived = "received"

// Order is the record behind POST /api/orders/public. The public route is a
// permissive passthrough: no field besides basic types is validated, the
// server only stamps status and timestamps.
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Items        []CartLineItem     `bson:"items" json:"items"`
	Total        float64            `bson:"total" json:"total"`
	CustomerName string             `bson:"customer_name" json:"customerName"`
	Phone        string             `bson:"phone" json:"phone"`
	Email        string             `bson:"email" json:"email"`
	Address      string             `bson:"address" json:"address"`
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
