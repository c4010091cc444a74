// Package memory provides in-memory implementations of the inventory
// repositories. Used by service tests and local development without Postgres;
// semantics (uniqueness, atomic adjustment, filtering, sorting, pagination)
// mirror the postgres implementations.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	invdomain "github.com/ghuser/stockroom/services/inventory/domain"
	"github.com/ghuser/stockroom/services/inventory/domain/models"
	"github.com/ghuser/stockroom/services/inventory/domain/repositories"
)

// ItemRepository is a mutex-guarded map-backed item store.
type ItemRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]models.Item
}

// NewItemRepository returns an empty in-memory item repository.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{items: make(map[uuid.UUID]models.Item)}
}

// Create stores a copy of the item. Enforces name uniqueness the way the
// postgres unique index does.
func (r *ItemRepository) Create(ctx context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.nameTaken(item.Name, item.ID) {
		return invdomain.ErrDuplicateItemName
	}
	r.items[item.ID] = *item
	return nil
}

// GetByID returns a copy of the stored item or domain.ErrItemNotFound.
func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, invdomain.ErrItemNotFound
	}
	return &item, nil
}

// Update replaces a stored item, enforcing uniqueness against other items.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return invdomain.ErrItemNotFound
	}
	if r.nameTaken(item.Name, item.ID) {
		return invdomain.ErrDuplicateItemName
	}
	r.items[item.ID] = *item
	return nil
}

// Delete removes the item.
func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return invdomain.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

// NameExists reports whether another item carries the given name.
func (r *ItemRepository) NameExists(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nameTaken(name, excludeID), nil
}

// AdjustQuantity applies the delta under the write lock, refusing negative
// results without mutating anything.
func (r *ItemRepository) AdjustQuantity(ctx context.Context, id uuid.UUID, delta float64) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, invdomain.ErrItemNotFound
	}
	if item.Quantity+delta < 0 {
		return nil, invdomain.ErrNegativeQuantity
	}
	item.Quantity += delta
	item.UpdatedAt = time.Now().UTC()
	r.items[id] = item
	return &item, nil
}

// List filters, sorts and paginates over the stored items.
func (r *ItemRepository) List(ctx context.Context, q repositories.ListQuery) ([]*models.Item, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(q.Search)
	var matched []models.Item
	for _, item := range r.items {
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.Category), search) {
			continue
		}
		if q.Category != "" && item.Category != q.Category {
			continue
		}
		matched = append(matched, item)
	}

	if err := sortItems(matched, q.SortField, q.SortOrder); err != nil {
		return nil, 0, err
	}

	total := len(matched)
	start := q.Offset
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}

	page := make([]*models.Item, 0, end-start)
	for i := start; i < end; i++ {
		item := matched[i]
		page = append(page, &item)
	}
	return page, total, nil
}

// Categories returns the distinct categories, sorted ascending.
func (r *ItemRepository) Categories(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{})
	var categories []string
	for _, item := range r.items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		categories = append(categories, item.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

func (r *ItemRepository) nameTaken(name string, excludeID uuid.UUID) bool {
	for id, item := range r.items {
		if id != excludeID && item.Name == name {
			return true
		}
	}
	return false
}

func sortItems(items []models.Item, field repositories.SortField, order repositories.SortOrder) error {
	var less func(a, b models.Item) bool
	switch field {
	case repositories.SortByName:
		less = func(a, b models.Item) bool { return a.Name < b.Name }
	case repositories.SortByQuantity:
		less = func(a, b models.Item) bool { return a.Quantity < b.Quantity }
	case repositories.SortByUpdatedAt:
		less = func(a, b models.Item) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	case repositories.SortByCostPrice:
		less = func(a, b models.Item) bool { return a.CostPrice.LessThan(b.CostPrice) }
	default:
		return invdomain.ErrInvalidSortField
	}
	sort.Slice(items, func(i, j int) bool {
		if order == repositories.SortDesc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
	return nil
}
