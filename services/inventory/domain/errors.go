package domain

import "errors"

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrDuplicateItemName indicates another live item already has this name.
	ErrDuplicateItemName = errors.New("an item with this name already exists")

	// ErrInvalidInput indicates the input violates item schema constraints.
	ErrInvalidInput = errors.New("invalid input")

	// ErrZeroDelta indicates a quantity adjustment of zero, which carries no
	// information and is rejected before any read or write.
	ErrZeroDelta = errors.New("adjustment delta must not be zero")

	// ErrNegativeQuantity indicates an adjustment that would drive the
	// on-hand quantity below zero. The write never happens in this case.
	ErrNegativeQuantity = errors.New("adjustment would result in negative quantity")

	// ErrInvalidSortField indicates a list request named a sort field outside
	// the supported set.
	ErrInvalidSortField = errors.New("unsupported sort field")
)
