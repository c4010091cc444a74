package workflows

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/logger"
	invdomain "github.com/ghuser/stockroom/services/inventory/domain"
	domainevents "github.com/ghuser/stockroom/services/inventory/domain/events"
	"github.com/ghuser/stockroom/services/inventory/domain/repositories"
)

// StockStatus is the CheckStock activity result.
type StockStatus struct {
	Exists           bool
	Low              bool
	Name             string
	Unit             string
	Quantity         float64
	ReorderThreshold float64
}

// ReplenishmentOrder is the SubmitOrder activity input.
type ReplenishmentOrder struct {
	ItemID   uuid.UUID
	Name     string
	Unit     string
	Quantity float64
}

// EventPublisher is the slice of the event bus the activities need.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// Activities bundles the side-effecting steps of the replenishment workflow.
// Registered on the worker under their method names.
type Activities struct {
	items repositories.ItemRepository
	bus   EventPublisher
	log   logger.Logger
}

// NewActivities wires the replenishment activities.
func NewActivities(items repositories.ItemRepository, bus EventPublisher, log logger.Logger) *Activities {
	return &Activities{items: items, bus: bus, log: log}
}

// CheckStock reads the live item state. A deleted item yields Exists=false
// rather than an error so the workflow can complete cleanly.
func (a *Activities) CheckStock(ctx context.Context, itemID uuid.UUID) (StockStatus, error) {
	item, err := a.items.GetByID(ctx, itemID)
	if errors.Is(err, invdomain.ErrItemNotFound) {
		return StockStatus{}, nil
	}
	if err != nil {
		return StockStatus{}, fmt.Errorf("check stock: %w", err)
	}
	return StockStatus{
		Exists:           true,
		Low:              item.LowStock(),
		Name:             item.Name,
		Unit:             item.Unit,
		Quantity:         item.Quantity,
		ReorderThreshold: item.ReorderThreshold,
	}, nil
}

// SubmitOrder publishes a replenishment-requested event for downstream
// purchasing systems to consume.
func (a *Activities) SubmitOrder(ctx context.Context, order ReplenishmentOrder) error {
	event := domainevents.ReplenishmentRequestedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     order.ItemID,
		Name:       order.Name,
		Unit:       order.Unit,
		Quantity:   order.Quantity,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal replenishment event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	if err := a.bus.Publish(ctx, domainevents.TopicReplenishmentRequested, msg); err != nil {
		return fmt.Errorf("publish replenishment event: %w", err)
	}

	a.log.InfoContext(ctx, "replenishment order submitted",
		"item_id", order.ItemID, "name", order.Name, "quantity", order.Quantity, "unit", order.Unit)
	return nil
}
