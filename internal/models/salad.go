package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Salad is the document-store record behind GET /api/salads/public.
// ProductID is the canonical string identifier shared with the catalog;
// the mongo ObjectID is an implementation detail of the collection.
type Salad struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ProductID     string             `bson:"product_id" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Price         float64            `bson:"price" json:"price"`
	OriginalPrice float64            `bson:"original_price,omitempty" json:"originalPrice,omitempty"`
	Image         string             `bson:"image" json:"image"`
	Rating        float64            `bson:"rating" json:"rating"`
	Reviews       int                `bson:"reviews" json:"reviews"`
	Badge         string             `bson:"badge,omitempty" json:"badge,omitempty"`
	IsActive      bool               `bson:"is_active" json:"is_active"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// Product converts the stored document back into the catalog shape the
// cart consumes.
func (s *Salad) Product() Product {
	return Product{
		ID:            s.ProductID,
		Name:          s.Name,
		Description:   s.Description,
		Price:         s.Price,
		OriginalPrice: s.OriginalPrice,
		Image:         s.Image,
		Rating:        s.Rating,
		Reviews:       s.Reviews,
		Badge:         s.Badge,
	}
}
