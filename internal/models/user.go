package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the record behind POST /api/users/register. Email doubles as the
// identity key that scopes the likes store.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email" validate:"omitempty,email"`
	Phone     string             `bson:"phone" json:"phone"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
