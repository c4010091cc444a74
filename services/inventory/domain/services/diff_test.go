package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ghuser/stockroom/services/inventory/domain/models"
)

func baseItem() *models.Item {
	return &models.Item{
		Name:             "Cheddar",
		Category:         "Dairy",
		Unit:             "kg",
		Quantity:         10,
		ReorderThreshold: 2,
		CostPrice:        decimal.NewFromFloat(4.5),
	}
}

func TestDiffItems_NoChanges(t *testing.T) {
	a, b := baseItem(), baseItem()
	if changes := DiffItems(a, b); len(changes) != 0 {
		t.Fatalf("expected no changes, got %+v", changes)
	}
}

func TestDiffItems_QuantityExcluded(t *testing.T) {
	a, b := baseItem(), baseItem()
	b.Quantity = 99
	if changes := DiffItems(a, b); len(changes) != 0 {
		t.Fatalf("quantity must not appear in field diff, got %+v", changes)
	}
}

func TestDiffItems_AllFields(t *testing.T) {
	a := baseItem()
	b := baseItem()
	b.Name = "Gouda"
	b.Category = "Cheese"
	b.Unit = "piece"
	b.CostPrice = decimal.NewFromFloat(6)
	b.ReorderThreshold = 3.5

	changes := DiffItems(a, b)
	want := []models.FieldChange{
		{Field: "name", OldValue: "Cheddar", NewValue: "Gouda"},
		{Field: "category", OldValue: "Dairy", NewValue: "Cheese"},
		{Field: "unit", OldValue: "kg", NewValue: "piece"},
		{Field: "cost", OldValue: "$4.5", NewValue: "$6"},
		{Field: "threshold", OldValue: "2", NewValue: "3.5"},
	}
	if len(changes) != len(want) {
		t.Fatalf("expected %d changes, got %d: %+v", len(want), len(changes), changes)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Fatalf("change %d: expected %+v, got %+v", i, want[i], changes[i])
		}
	}
}

func TestDiffItems_CostEqualityIsNumeric(t *testing.T) {
	a, b := baseItem(), baseItem()
	a.CostPrice = decimal.RequireFromString("4.50")
	b.CostPrice = decimal.RequireFromString("4.5")
	if changes := DiffItems(a, b); len(changes) != 0 {
		t.Fatalf("4.50 and 4.5 must compare equal, got %+v", changes)
	}
}
