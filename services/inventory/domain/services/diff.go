package services

import (
	"strconv"

	"github.com/ghuser/stockroom/services/inventory/domain/models"
)

// DiffItems compares an old item snapshot against a newly committed one and
// returns the structured field-level changes, in a fixed field order. Each
// field is compared by value equality, independently. Quantity is excluded
// from this diff: full update means "set to new values" for the descriptive
// fields, while relative quantity changes go through the adjustment path,
// which records a delta instead of a field diff.
func DiffItems(oldItem, newItem *models.Item) []models.FieldChange {
	var changes []models.FieldChange

	if oldItem.Name != newItem.Name {
		changes = append(changes, models.FieldChange{
			Field: "name", OldValue: oldItem.Name, NewValue: newItem.Name,
		})
	}
	if oldItem.Category != newItem.Category {
		changes = append(changes, models.FieldChange{
			Field: "category", OldValue: oldItem.Category, NewValue: newItem.Category,
		})
	}
	if oldItem.Unit != newItem.Unit {
		changes = append(changes, models.FieldChange{
			Field: "unit", OldValue: oldItem.Unit, NewValue: newItem.Unit,
		})
	}
	if !oldItem.CostPrice.Equal(newItem.CostPrice) {
		changes = append(changes, models.FieldChange{
			Field:    "cost",
			OldValue: "$" + oldItem.CostPrice.String(),
			NewValue: "$" + newItem.CostPrice.String(),
		})
	}
	if oldItem.ReorderThreshold != newItem.ReorderThreshold {
		changes = append(changes, models.FieldChange{
			Field:    "threshold",
			OldValue: formatQuantity(oldItem.ReorderThreshold),
			NewValue: formatQuantity(newItem.ReorderThreshold),
		})
	}
	return changes
}

func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
