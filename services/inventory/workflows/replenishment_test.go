package workflows

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stockroom/pkg/config"
	"github.com/ghuser/stockroom/pkg/logger"
	domainevents "github.com/ghuser/stockroom/services/inventory/domain/events"
	"github.com/ghuser/stockroom/services/inventory/domain/models"
	"github.com/ghuser/stockroom/services/inventory/infrastructure/persistence/memory"
)

type recordingBus struct {
	published map[string][]*message.Message
}

func (b *recordingBus) Publish(_ context.Context, topic string, msgs ...*message.Message) error {
	if b.published == nil {
		b.published = make(map[string][]*message.Message)
	}
	b.published[topic] = append(b.published[topic], msgs...)
	return nil
}

func TestOrderQuantity(t *testing.T) {
	tests := []struct {
		name      string
		quantity  float64
		threshold float64
		want      float64
	}{
		{"restock to double threshold", 2, 5, 8},
		{"at threshold", 5, 5, 5},
		{"zero threshold floors at one", 0, 0, 1},
		{"quantity above double threshold", 12, 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := orderQuantity(tt.quantity, tt.threshold); got != tt.want {
				t.Fatalf("orderQuantity(%v, %v) = %v, want %v", tt.quantity, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestCheckStock(t *testing.T) {
	items := memory.NewItemRepository()
	log := logger.New(&config.Config{LogLevel: "error"})
	acts := NewActivities(items, &recordingBus{}, log)
	ctx := context.Background()

	item := &models.Item{
		ID:               uuid.New(),
		Name:             "Cheddar",
		Category:         "Dairy",
		Unit:             "kg",
		Quantity:         1,
		ReorderThreshold: 5,
		CostPrice:        decimal.NewFromFloat(4.5),
		CreatedBy:        "user_2abc",
	}
	if err := items.Create(ctx, item); err != nil {
		t.Fatalf("seed: %v", err)
	}

	status, err := acts.CheckStock(ctx, item.ID)
	if err != nil {
		t.Fatalf("check stock: %v", err)
	}
	if !status.Exists || !status.Low || status.Quantity != 1 {
		t.Fatalf("unexpected status: %+v", status)
	}

	// Deleted items resolve to Exists=false, not an error.
	status, err = acts.CheckStock(ctx, uuid.New())
	if err != nil {
		t.Fatalf("check missing: %v", err)
	}
	if status.Exists {
		t.Fatalf("expected Exists=false, got %+v", status)
	}
}

func TestSubmitOrder(t *testing.T) {
	bus := &recordingBus{}
	log := logger.New(&config.Config{LogLevel: "error"})
	acts := NewActivities(memory.NewItemRepository(), bus, log)

	order := ReplenishmentOrder{ItemID: uuid.New(), Name: "Cheddar", Unit: "kg", Quantity: 8}
	if err := acts.SubmitOrder(context.Background(), order); err != nil {
		t.Fatalf("submit order: %v", err)
	}

	msgs := bus.published[domainevents.TopicReplenishmentRequested]
	if len(msgs) != 1 {
		t.Fatalf("expected 1 published message, got %d", len(msgs))
	}
	var evt domainevents.ReplenishmentRequestedEvent
	if err := json.Unmarshal(msgs[0].Payload, &evt); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if evt.ItemID != order.ItemID || evt.Quantity != 8 {
		t.Fatalf("unexpected event: %+v", evt)
	}
}
