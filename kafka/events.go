package kafka

import "time"

// Event types
const (
	EventTypeCatalogRefreshed = "catalog.refreshed"
	EventTypeCartUpdated      = "cart.updated"
)

// Kafka topics
const (
	TopicCatalogRefreshed = "catalog-refreshed"
	TopicCartUpdated      = "cart-updated"
)

// Cart actions carried on CartUpdatedEvent.
const (
	CartActionAdd    = "add"
	CartActionRemove = "remove"
	CartActionUpdate = "update"
)

// CatalogRefreshedEvent signals that the catalog was replaced with a fresh
// gateway fetch.
type CatalogRefreshedEvent struct {
	EventID         string    `json:"event_id"`
	EventType       string    `json:"event_type"`
	ProductCount    int       `json:"product_count"`
	CollectionCount int       `json:"collection_count"`
	Timestamp       time.Time `json:"timestamp"`
}

// CartUpdatedEvent signals a cart mutation mirrored from the gateway.
type CartUpdatedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	CartID    string    `json:"cart_id"`
	Action    string    `json:"action"`
	VariantID string    `json:"variant_id,omitempty"`
	LineID    string    `json:"line_id,omitempty"`
	Quantity  int       `json:"quantity,omitempty"`
	LineCount int       `json:"line_count"`
	Timestamp time.Time `json:"timestamp"`
}
