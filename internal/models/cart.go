package models

// CartLineItem is one row of the cart: a product plus its quantity.
// Quantity is always >= 1 while the line item exists; a quantity reaching
// zero deletes the row instead of persisting it.
type CartLineItem struct {
	Product
	Quantity int `bson:"quantity" json:"quantity"`
}

// Subtotal is the line item's contribution to the cart total.
func (li CartLineItem) Subtotal() float64 {
	return li.Price * float64(li.Quantity)
}

// CartSnapshot is the full cart state as written to the local snapshot
// store after every mutation. Items keep first-added order.
type CartSnapshot struct {
	Items []CartLineItem `json:"items"`
	Total float64        `json:"total"`
}
