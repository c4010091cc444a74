package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the inventory context.
const (
	// TopicItemCreated is published when a new item is persisted.
	TopicItemCreated = "inventory.item.created"

	// TopicLowStock is published when a successful mutation leaves an item's
	// quantity at or below its reorder threshold.
	TopicLowStock = "inventory.low_stock"

	// TopicReplenishmentRequested is published by the replenishment workflow
	// once it decides an order is needed.
	TopicReplenishmentRequested = "inventory.replenishment.requested"
)

// ItemCreatedEvent is published after a new Item is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemCreated).
type ItemCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     uuid.UUID `json:"item_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Quantity   float64   `json:"quantity"`
	CreatedBy  string    `json:"created_by"`
	OccurredAt time.Time `json:"occurred_at"`
}

// LowStockEvent signals that an item needs reordering. Emission is
// best-effort: a failed publish never fails the mutation that triggered it.
type LowStockEvent struct {
	EventID          uuid.UUID `json:"event_id"`
	Version          int       `json:"version"`
	ItemID           uuid.UUID `json:"item_id"`
	Name             string    `json:"name"`
	Unit             string    `json:"unit"`
	Quantity         float64   `json:"quantity"`
	ReorderThreshold float64   `json:"reorder_threshold"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// ReplenishmentRequestedEvent is emitted when the replenishment workflow has
// confirmed an item is still low and computed the quantity to order.
type ReplenishmentRequestedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     uuid.UUID `json:"item_id"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	Quantity   float64   `json:"quantity"`
	OccurredAt time.Time `json:"occurred_at"`
}
