package models

const PatternOrderCreated = "order.created"

// OrderEvent is the envelope published to the order topic.
type OrderEvent struct {
	Pattern string `json:"pattern"`
	Data    *Order `json:"data"`
}
