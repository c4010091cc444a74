package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	invdomain "github.com/ghuser/stockroom/services/inventory/domain"
	"github.com/ghuser/stockroom/services/inventory/domain/models"
	"github.com/ghuser/stockroom/services/inventory/domain/repositories"
)

func newItem(name, category string, quantity float64) *models.Item {
	now := time.Now().UTC()
	return &models.Item{
		ID:        uuid.New(),
		Name:      name,
		Category:  category,
		Unit:      "kg",
		Quantity:  quantity,
		CostPrice: decimal.NewFromFloat(1),
		CreatedBy: "user_2abc",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestItemRepository_UniqueName(t *testing.T) {
	r := NewItemRepository()
	ctx := context.Background()

	if err := r.Create(ctx, newItem("Cheddar", "Dairy", 1)); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := r.Create(ctx, newItem("Cheddar", "Dairy", 1))
	if !errors.Is(err, invdomain.ErrDuplicateItemName) {
		t.Fatalf("expected ErrDuplicateItemName, got %v", err)
	}

	// Case-sensitive: "cheddar" is a different name.
	if err := r.Create(ctx, newItem("cheddar", "Dairy", 1)); err != nil {
		t.Fatalf("lowercase variant: %v", err)
	}
}

func TestItemRepository_NameExists(t *testing.T) {
	r := NewItemRepository()
	ctx := context.Background()

	item := newItem("Cheddar", "Dairy", 1)
	if err := r.Create(ctx, item); err != nil {
		t.Fatalf("create: %v", err)
	}

	taken, err := r.NameExists(ctx, "Cheddar", uuid.Nil)
	if err != nil || !taken {
		t.Fatalf("expected taken=true, got %v, %v", taken, err)
	}

	// Excluding the item itself: its own name is free.
	taken, err = r.NameExists(ctx, "Cheddar", item.ID)
	if err != nil || taken {
		t.Fatalf("expected taken=false when excluding self, got %v, %v", taken, err)
	}
}

func TestItemRepository_AdjustQuantity(t *testing.T) {
	r := NewItemRepository()
	ctx := context.Background()

	item := newItem("Cheddar", "Dairy", 10)
	if err := r.Create(ctx, item); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := r.AdjustQuantity(ctx, item.ID, -15)
	if !errors.Is(err, invdomain.ErrNegativeQuantity) {
		t.Fatalf("expected ErrNegativeQuantity, got %v", err)
	}
	got, err := r.GetByID(ctx, item.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Quantity != 10 {
		t.Fatalf("refused adjustment must not mutate, got %v", got.Quantity)
	}

	adjusted, err := r.AdjustQuantity(ctx, item.ID, -10)
	if err != nil {
		t.Fatalf("adjust to zero: %v", err)
	}
	if adjusted.Quantity != 0 {
		t.Fatalf("expected quantity 0, got %v", adjusted.Quantity)
	}

	_, err = r.AdjustQuantity(ctx, uuid.New(), 1)
	if !errors.Is(err, invdomain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestItemRepository_List(t *testing.T) {
	r := NewItemRepository()
	ctx := context.Background()

	seed := []*models.Item{
		newItem("Cheddar Cheese", "Dairy", 12),
		newItem("Cream Cheese", "Dairy", 3),
		newItem("Tomatoes", "Produce", 40),
	}
	for _, item := range seed {
		if err := r.Create(ctx, item); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	t.Run("search is case-insensitive substring", func(t *testing.T) {
		items, total, err := r.List(ctx, repositories.ListQuery{
			Search: "CHEESE", SortField: repositories.SortByName,
			SortOrder: repositories.SortAsc, Limit: 10,
		})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if total != 2 || len(items) != 2 {
			t.Fatalf("expected 2 matches, got total=%d len=%d", total, len(items))
		}
		if items[0].Name != "Cheddar Cheese" {
			t.Fatalf("expected name sort, got %q first", items[0].Name)
		}
	})

	t.Run("offset past end yields empty page with full total", func(t *testing.T) {
		items, total, err := r.List(ctx, repositories.ListQuery{
			SortField: repositories.SortByName, SortOrder: repositories.SortAsc,
			Offset: 10, Limit: 10,
		})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if total != 3 || len(items) != 0 {
			t.Fatalf("expected total=3 len=0, got total=%d len=%d", total, len(items))
		}
	})

	t.Run("quantity sort descending", func(t *testing.T) {
		items, _, err := r.List(ctx, repositories.ListQuery{
			SortField: repositories.SortByQuantity, SortOrder: repositories.SortDesc, Limit: 10,
		})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if items[0].Quantity != 40 {
			t.Fatalf("expected highest quantity first, got %v", items[0].Quantity)
		}
	})

	t.Run("unknown sort field", func(t *testing.T) {
		_, _, err := r.List(ctx, repositories.ListQuery{SortField: "bogus", Limit: 10})
		if !errors.Is(err, invdomain.ErrInvalidSortField) {
			t.Fatalf("expected ErrInvalidSortField, got %v", err)
		}
	})
}

func TestItemRepository_Categories(t *testing.T) {
	r := NewItemRepository()
	ctx := context.Background()

	for _, item := range []*models.Item{
		newItem("Tomatoes", "Produce", 1),
		newItem("Milk", "Dairy", 1),
		newItem("Basil", "Produce", 1),
	} {
		if err := r.Create(ctx, item); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := r.Categories(ctx)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	want := []string{"Dairy", "Produce"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAuditRepository_NewestFirstAndLimit(t *testing.T) {
	r := NewAuditRepository()
	ctx := context.Background()
	itemID := uuid.New()

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		entry := models.NewAuditEntry(itemID, "Cheddar", "user_2abc", models.AdjustChanges{
			OldQuantity: float64(i), NewQuantity: float64(i + 1), Delta: 1,
		})
		entry.Timestamp = base.Add(time.Duration(i) * time.Second)
		if err := r.Append(ctx, entry); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	entries, err := r.ListByItem(ctx, itemID, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp.After(entries[i-1].Timestamp) {
			t.Fatal("entries not newest first")
		}
	}

	other, err := r.ListByItem(ctx, uuid.New(), 10)
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected no entries for unknown item, got %d", len(other))
	}
}
