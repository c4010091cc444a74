package services

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ghuser/stockroom/services/inventory/domain/models"
)

func validInput() models.ItemInput {
	return models.ItemInput{
		Name:             "Cheddar",
		Category:         "Dairy",
		Unit:             "kg",
		Quantity:         10,
		ReorderThreshold: 2,
		CostPrice:        decimal.NewFromFloat(4.5),
	}
}

func TestNormalizeInput(t *testing.T) {
	in := validInput()
	in.Name = "  Cheddar  "
	in.Category = " Dairy"
	in.Unit = "kg "
	NormalizeInput(&in)
	if in.Name != "Cheddar" || in.Category != "Dairy" || in.Unit != "kg" {
		t.Fatalf("not trimmed: %+v", in)
	}
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.ItemInput)
		wantErr bool
	}{
		{"valid", func(in *models.ItemInput) {}, false},
		{"empty name", func(in *models.ItemInput) { in.Name = "" }, true},
		{"name too long", func(in *models.ItemInput) { in.Name = strings.Repeat("a", 101) }, true},
		{"name at limit", func(in *models.ItemInput) { in.Name = strings.Repeat("a", 100) }, false},
		{"control character in name", func(in *models.ItemInput) { in.Name = "Ched\x00dar" }, true},
		{"empty category", func(in *models.ItemInput) { in.Category = "" }, true},
		{"category too long", func(in *models.ItemInput) { in.Category = strings.Repeat("c", 51) }, true},
		{"empty unit", func(in *models.ItemInput) { in.Unit = "" }, true},
		{"unit too long", func(in *models.ItemInput) { in.Unit = strings.Repeat("u", 21) }, true},
		{"negative quantity", func(in *models.ItemInput) { in.Quantity = -0.1 }, true},
		{"zero quantity", func(in *models.ItemInput) { in.Quantity = 0 }, false},
		{"negative threshold", func(in *models.ItemInput) { in.ReorderThreshold = -1 }, true},
		{"negative cost", func(in *models.ItemInput) { in.CostPrice = decimal.NewFromInt(-1) }, true},
		{"zero cost", func(in *models.ItemInput) { in.CostPrice = decimal.Zero }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			err := ValidateInput(in)
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateReason(t *testing.T) {
	if err := ValidateReason(""); err != nil {
		t.Fatalf("empty reason must be allowed: %v", err)
	}
	if err := ValidateReason(strings.Repeat("r", 200)); err != nil {
		t.Fatalf("reason at limit must be allowed: %v", err)
	}
	if err := ValidateReason(strings.Repeat("r", 201)); err == nil {
		t.Fatal("expected error for oversized reason")
	}
}
