package models

// Product is the read-only catalog record the storefront renders and the
// cart consumes. Identifiers are normalized to strings at the ingestion
// boundary; the stores never see numeric ids.
type Product struct {
	ID            string  `bson:"product_id" json:"id"`
	Name          string  `bson:"name" json:"name"`
	Description   string  `bson:"description" json:"description"`
	Price         float64 `bson:"price" json:"price"`
	OriginalPrice float64 `bson:"original_price,omitempty" json:"originalPrice,omitempty"`
	Image         string  `bson:"image" json:"image"`
	Rating        float64 `bson:"rating" json:"rating"`
	Reviews       int     `bson:"reviews" json:"reviews"`
	Badge         string  `bson:"badge,omitempty" json:"badge,omitempty"`
}
