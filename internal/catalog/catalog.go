// Package catalog is the leaf product source: a static list of salads plus
// the identifier normalization applied at the ingestion boundary before any
// product reaches the cart or likes stores.
package catalog

import (
	"encoding/json"
	"strconv"

	"github.com/salad-karo/storefront/internal/models"
)

var products = []models.Product{
	{
		ID:            "1",
		Name:          "Classic Garden Salad",
		Description:   "Crisp lettuce, cucumber, tomato and house vinaigrette",
		Price:         199,
		OriginalPrice: 249,
		Image:         "/images/classic-garden.jpg",
		Rating:        4.6,
		Reviews:       182,
		Badge:         "Bestseller",
	},
	{
		ID:          "2",
		Name:        "Protein Power Bowl",
		Description: "Grilled paneer, chickpeas, quinoa and lemon dressing",
		Price:       249,
		Image:       "/images/protein-power.jpg",
		Rating:      4.8,
		Reviews:     143,
		Badge:       "High Protein",
	},
	{
		ID:          "3",
		Name:        "Mediterranean Feta",
		Description: "Olives, feta, bell peppers and oregano drizzle",
		Price:       229,
		Image:       "/images/mediterranean-feta.jpg",
		Rating:      4.5,
		Reviews:     97,
	},
	{
		ID:            "4",
		Name:          "Fruit & Nut Crunch",
		Description:   "Seasonal fruit, roasted seeds and honey yogurt",
		Price:         179,
		OriginalPrice: 199,
		Image:         "/images/fruit-nut.jpg",
		Rating:        4.4,
		Reviews:       76,
	},
	{
		ID:          "5",
		Name:        "Sprout Detox Mix",
		Description: "Moong sprouts, pomegranate, mint and lime",
		Price:       159,
		Image:       "/images/sprout-detox.jpg",
		Rating:      4.3,
		Reviews:     64,
		Badge:       "New",
	},
	{
		ID:          "6",
		Name:        "Caesar Supreme",
		Description: "Romaine, garlic croutons, parmesan and caesar dressing",
		Price:       269,
		Image:       "/images/caesar-supreme.jpg",
		Rating:      4.7,
		Reviews:     121,
	},
}

// Products returns a copy of the static catalog.
func Products() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// Lookup finds a product by its canonical id.
func Lookup(id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// NormalizeID canonicalizes identifiers that arrive as numbers from the
// document store or as strings from route params. Floats that carry an
// integral value lose their fraction marker, so "12" and 12 and 12.0 all
// map to "12".
func NormalizeID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case json.Number:
		return id.String()
	case int:
		return strconv.Itoa(id)
	case int32:
		return strconv.FormatInt(int64(id), 10)
	case int64:
		return strconv.FormatInt(id, 10)
	case float64:
		if id == float64(int64(id)) {
			return strconv.FormatInt(int64(id), 10)
		}
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return ""
	}
}
