package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/inventory/domain/models"
)

// SortField enumerates the columns a list query may sort by. Anything else
// is rejected before the store is touched.
type SortField string

const (
	SortByName      SortField = "name"
	SortByQuantity  SortField = "quantity"
	SortByUpdatedAt SortField = "updatedAt"
	SortByCostPrice SortField = "costPrice"
)

// SortOrder is the direction of a list query sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ListQuery contains the filter, sort and pagination parameters for item
// listing. Search matches name OR category as a case-insensitive substring;
// Category is an exact-match conjunction.
type ListQuery struct {
	Search    string
	Category  string
	SortField SortField
	SortOrder SortOrder
	Offset    int
	Limit     int
}

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Implementations must map store-level unique violations on the item name to
// domain.ErrDuplicateItemName — the store's constraint is the authoritative
// uniqueness signal, the NameExists pre-check is only a fast path.
type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)

	// Update persists a full replacement of the caller-editable attributes.
	Update(ctx context.Context, item *models.Item) error

	// Delete hard-deletes the item. Returns domain.ErrItemNotFound when no
	// row matched; there is no tombstone.
	Delete(ctx context.Context, id uuid.UUID) error

	// NameExists reports whether a live item other than excludeID carries
	// the given name (case-sensitive exact match). Pass uuid.Nil on create.
	NameExists(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)

	// AdjustQuantity atomically applies a signed delta to the item's quantity
	// and bumps UpdatedAt, refusing to let the quantity go negative. Returns
	// the updated item, domain.ErrItemNotFound, or domain.ErrNegativeQuantity.
	// The refused case performs no write at all.
	AdjustQuantity(ctx context.Context, id uuid.UUID, delta float64) (*models.Item, error)

	// List retrieves a filtered, sorted, paginated slice of items and the
	// filtered-but-unpaginated total count. Ties within a sort key break in
	// store-defined order.
	List(ctx context.Context, q ListQuery) ([]*models.Item, int, error)

	// Categories returns the distinct category values across live items,
	// sorted ascending.
	Categories(ctx context.Context) ([]string, error)
}
