package models

// CartMirrorRequest is the body of POST /api/cart and DELETE /api/cart.
// ProductID is `any` because ids arrive both as strings and as numbers;
// the server normalizes before touching a collection. Quantity is ignored
// on delete.
type CartMirrorRequest struct {
	ProductID any `json:"productId" validate:"required"`
	Quantity  int `json:"quantity"`
}

// FavoriteMirrorRequest is the body of POST/DELETE /api/favorites.
type FavoriteMirrorRequest struct {
	ProductID any `json:"productId" validate:"required"`
}
