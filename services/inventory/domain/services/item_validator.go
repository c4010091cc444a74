// Package services contains stateless domain services for the inventory
// bounded context. Domain services enforce business rules that operate purely
// on domain types and have zero external dependencies beyond stdlib and the
// domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/ghuser/stockroom/services/inventory/domain/models"
)

// Attribute length limits, enforced at every mutation point.
const (
	maxNameLength     = 100
	maxCategoryLength = 50
	maxUnitLength     = 20
	maxReasonLength   = 200
)

// NormalizeInput trims the text attributes in place. Runs before validation
// so " Cheddar " and "Cheddar" are the same name for uniqueness purposes.
func NormalizeInput(in *models.ItemInput) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Unit = strings.TrimSpace(in.Unit)
}

// ValidateInput checks an ItemInput against the item schema constraints:
// non-empty bounded text fields, no control characters in the name, and
// non-negative numeric fields.
func ValidateInput(in models.ItemInput) error {
	if err := validateText("name", in.Name, maxNameLength); err != nil {
		return err
	}
	for _, r := range in.Name {
		if unicode.IsControl(r) {
			return fmt.Errorf("name must not contain control characters")
		}
	}
	if err := validateText("category", in.Category, maxCategoryLength); err != nil {
		return err
	}
	if err := validateText("unit", in.Unit, maxUnitLength); err != nil {
		return err
	}
	if in.Quantity < 0 {
		return fmt.Errorf("quantity must be 0 or greater")
	}
	if in.ReorderThreshold < 0 {
		return fmt.Errorf("reorder threshold must be 0 or greater")
	}
	if in.CostPrice.LessThan(decimal.Zero) {
		return fmt.Errorf("cost price must be 0 or greater")
	}
	return nil
}

// ValidateReason checks the optional free-text reason on a quantity adjustment.
func ValidateReason(reason string) error {
	if len(reason) > maxReasonLength {
		return fmt.Errorf("reason must not exceed %d characters", maxReasonLength)
	}
	return nil
}

func validateText(field, value string, maxLen int) error {
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	if len(value) > maxLen {
		return fmt.Errorf("%s must not exceed %d characters", field, maxLen)
	}
	return nil
}
