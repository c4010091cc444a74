package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is the core aggregate for this bounded context: one stock-keeping
// unit tracked by the kitchen, with its on-hand quantity, reorder threshold
// and unit cost.
type Item struct {
	ID               uuid.UUID
	Name             string // unique among live items, case-sensitive
	Category         string
	Unit             string // free-text measurement unit (kg, liter, piece, ...)
	Quantity         float64
	ReorderThreshold float64
	CostPrice        decimal.Decimal
	CreatedBy        string // opaque authenticated actor id — immutable
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ItemInput carries the caller-supplied attributes for create and full update.
// Identity, ownership and timestamps are always server-assigned.
type ItemInput struct {
	Name             string
	Category         string
	Unit             string
	Quantity         float64
	ReorderThreshold float64
	CostPrice        decimal.Decimal
}

// NewItem constructs a valid Item aggregate with generated ID, the creating
// actor and current timestamps. Input must already be validated.
func NewItem(in ItemInput, createdBy string) *Item {
	now := time.Now().UTC()
	return &Item{
		ID:               uuid.New(),
		Name:             in.Name,
		Category:         in.Category,
		Unit:             in.Unit,
		Quantity:         in.Quantity,
		ReorderThreshold: in.ReorderThreshold,
		CostPrice:        in.CostPrice,
		CreatedBy:        createdBy,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// ApplyInput replaces the caller-editable attributes with the given input and
// bumps UpdatedAt. ID, CreatedBy and CreatedAt never change.
func (i *Item) ApplyInput(in ItemInput) {
	i.Name = in.Name
	i.Category = in.Category
	i.Unit = in.Unit
	i.Quantity = in.Quantity
	i.ReorderThreshold = in.ReorderThreshold
	i.CostPrice = in.CostPrice
	i.UpdatedAt = time.Now().UTC()
}

// LowStock reports whether the item is at or below its reorder threshold.
// This is a read-time computation, never a stored flag.
func (i *Item) LowStock() bool {
	return i.Quantity <= i.ReorderThreshold
}
