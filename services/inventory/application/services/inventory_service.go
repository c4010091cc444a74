package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	pkgcache "github.com/ghuser/stockroom/pkg/cache"
	"github.com/ghuser/stockroom/pkg/logger"
	invdomain "github.com/ghuser/stockroom/services/inventory/domain"
	domainevents "github.com/ghuser/stockroom/services/inventory/domain/events"
	"github.com/ghuser/stockroom/services/inventory/domain/models"
	"github.com/ghuser/stockroom/services/inventory/domain/repositories"
	domainsvcs "github.com/ghuser/stockroom/services/inventory/domain/services"
)

// Pagination bounds for item listing.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	maxAuditLimit   = 200
)

// EventPublisher is the slice of the event bus the service needs.
// *events.EventBus satisfies it; tests use a recording fake.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// ListParams are the raw, caller-supplied listing parameters. Zero values
// fall back to the defaults (sort by updatedAt descending, page 1, 20 rows).
type ListParams struct {
	Search    string
	Category  string
	SortField string
	SortOrder string
	Page      int
	PageSize  int
}

// Adjustment is the result of a quantity adjustment: the committed item plus
// the before/after quantities the audit trail and the caller both need.
type Adjustment struct {
	Item        *models.Item
	OldQuantity float64
	NewQuantity float64
	Delta       float64
}

// InventoryService orchestrates every item mutation and read. Each mutation
// follows the same shape: validate, guard, write to the item store, then
// append to the audit log — the append happens only after the item write
// commits, so a crash in between leaves stock correct and history short,
// never the reverse.
type InventoryService struct {
	items      repositories.ItemRepository
	audit      repositories.AuditRepository
	categories *pkgcache.CategoryCache // nil when Redis is unavailable
	bus        EventPublisher          // nil disables low-stock events
	log        logger.Logger
}

// NewInventoryService wires the service with its repositories and optional
// category cache and event publisher.
func NewInventoryService(
	items repositories.ItemRepository,
	audit repositories.AuditRepository,
	categories *pkgcache.CategoryCache,
	bus EventPublisher,
	log logger.Logger,
) *InventoryService {
	return &InventoryService{
		items:      items,
		audit:      audit,
		categories: categories,
		bus:        bus,
		log:        log,
	}
}

// Create validates the input, guards name uniqueness, persists the item and
// appends a create audit entry. The actor becomes the immutable creator.
func (s *InventoryService) Create(ctx context.Context, actorID string, in models.ItemInput) (*models.Item, error) {
	domainsvcs.NormalizeInput(&in)
	if err := domainsvcs.ValidateInput(in); err != nil {
		return nil, fmt.Errorf("%w: %s", invdomain.ErrInvalidInput, err)
	}

	// Fast-path pre-check; the store's unique index is the source of truth
	// under concurrent creates.
	taken, err := s.items.NameExists(ctx, in.Name, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("check name: %w", err)
	}
	if taken {
		return nil, invdomain.ErrDuplicateItemName
	}

	item := models.NewItem(in, actorID)
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}

	entry := models.NewAuditEntry(item.ID, item.Name, actorID, models.CreateChanges{
		Summary: fmt.Sprintf("Created with quantity: %s", formatQuantity(item.Quantity)),
	})
	if err := s.audit.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("append create audit entry: %w", err)
	}

	s.invalidateCategories(ctx)
	s.maybePublishLowStock(ctx, item)
	return item, nil
}

// Get returns the item or domain.ErrItemNotFound.
func (s *InventoryService) Get(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	return s.items.GetByID(ctx, id)
}

// Update replaces the caller-editable attributes of an item, guards name
// uniqueness excluding the item itself, and appends an update audit entry
// carrying the structured field diff — but only when something changed.
func (s *InventoryService) Update(ctx context.Context, actorID string, id uuid.UUID, in models.ItemInput) (*models.Item, error) {
	domainsvcs.NormalizeInput(&in)
	if err := domainsvcs.ValidateInput(in); err != nil {
		return nil, fmt.Errorf("%w: %s", invdomain.ErrInvalidInput, err)
	}

	oldItem, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.items.NameExists(ctx, in.Name, id)
	if err != nil {
		return nil, fmt.Errorf("check name: %w", err)
	}
	if taken {
		return nil, invdomain.ErrDuplicateItemName
	}

	newItem := *oldItem
	newItem.ApplyInput(in)
	if err := s.items.Update(ctx, &newItem); err != nil {
		return nil, err
	}

	// An update that changes nothing produces no history.
	if fields := domainsvcs.DiffItems(oldItem, &newItem); len(fields) > 0 {
		entry := models.NewAuditEntry(newItem.ID, newItem.Name, actorID, models.UpdateChanges{
			Fields: fields,
		})
		if err := s.audit.Append(ctx, entry); err != nil {
			return nil, fmt.Errorf("append update audit entry: %w", err)
		}
	}

	s.invalidateCategories(ctx)
	s.maybePublishLowStock(ctx, &newItem)
	return &newItem, nil
}

// Delete hard-deletes the item and appends a delete audit entry capturing its
// last state. The entry's item id dangles from then on, by design.
func (s *InventoryService) Delete(ctx context.Context, actorID string, id uuid.UUID) error {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}

	entry := models.NewAuditEntry(item.ID, item.Name, actorID, models.DeleteChanges{
		Summary: fmt.Sprintf("Deleted item with quantity: %s", formatQuantity(item.Quantity)),
	})
	if err := s.audit.Append(ctx, entry); err != nil {
		return fmt.Errorf("append delete audit entry: %w", err)
	}

	s.invalidateCategories(ctx)
	return nil
}

// AdjustQuantity applies a signed delta to the item's on-hand quantity.
// Zero deltas are rejected before any read or write; adjustments that would
// drive the quantity negative are refused without writing. On success the
// quantity_adjust audit entry is appended after the write commits.
func (s *InventoryService) AdjustQuantity(ctx context.Context, actorID string, id uuid.UUID, delta float64, reason string) (*Adjustment, error) {
	if delta == 0 {
		return nil, invdomain.ErrZeroDelta
	}
	if err := domainsvcs.ValidateReason(reason); err != nil {
		return nil, fmt.Errorf("%w: %s", invdomain.ErrInvalidInput, err)
	}

	item, err := s.items.AdjustQuantity(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	oldQuantity := item.Quantity - delta

	entry := models.NewAuditEntry(item.ID, item.Name, actorID, models.AdjustChanges{
		OldQuantity: oldQuantity,
		NewQuantity: item.Quantity,
		Delta:       delta,
		Reason:      reason,
	})
	if err := s.audit.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("append adjust audit entry: %w", err)
	}

	s.maybePublishLowStock(ctx, item)
	return &Adjustment{
		Item:        item,
		OldQuantity: oldQuantity,
		NewQuantity: item.Quantity,
		Delta:       delta,
	}, nil
}

// List validates the listing parameters against the sort whitelist and
// pagination bounds, then queries the store. Returns the page plus the
// filtered-but-unpaginated total.
func (s *InventoryService) List(ctx context.Context, p ListParams) ([]*models.Item, int, error) {
	q, err := buildListQuery(p)
	if err != nil {
		return nil, 0, err
	}
	items, total, err := s.items.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	return items, total, nil
}

// Categories returns the distinct sorted category listing, read through the
// cache when one is configured. Cache failures fall through to the store.
func (s *InventoryService) Categories(ctx context.Context) ([]string, error) {
	if s.categories != nil {
		if cached, err := s.categories.Get(ctx); err == nil {
			return cached, nil
		}
	}

	categories, err := s.items.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	if s.categories != nil {
		if err := s.categories.Set(ctx, categories); err != nil {
			s.log.WarnContext(ctx, "category cache set failed", "error", err)
		}
	}
	return categories, nil
}

// AuditLog returns the item's audit entries, newest first. Works for deleted
// items: the log outlives the item. A non-positive limit falls back to the
// default; the cap bounds worst-case response size.
func (s *InventoryService) AuditLog(ctx context.Context, itemID uuid.UUID, limit int) ([]*models.AuditEntry, error) {
	if limit <= 0 {
		limit = repositories.DefaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}
	entries, err := s.audit.ListByItem(ctx, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit log: %w", err)
	}
	return entries, nil
}

func buildListQuery(p ListParams) (repositories.ListQuery, error) {
	sortField := repositories.SortByUpdatedAt
	if p.SortField != "" {
		switch repositories.SortField(p.SortField) {
		case repositories.SortByName, repositories.SortByQuantity,
			repositories.SortByUpdatedAt, repositories.SortByCostPrice:
			sortField = repositories.SortField(p.SortField)
		default:
			return repositories.ListQuery{}, fmt.Errorf("%w: %q", invdomain.ErrInvalidSortField, p.SortField)
		}
	}

	sortOrder := repositories.SortDesc
	switch p.SortOrder {
	case "", string(repositories.SortDesc):
	case string(repositories.SortAsc):
		sortOrder = repositories.SortAsc
	default:
		return repositories.ListQuery{}, fmt.Errorf("%w: sort order must be asc or desc", invdomain.ErrInvalidInput)
	}

	page := p.Page
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return repositories.ListQuery{}, fmt.Errorf("%w: page must be 1 or greater", invdomain.ErrInvalidInput)
	}
	pageSize := p.PageSize
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return repositories.ListQuery{}, fmt.Errorf("%w: page size must be between 1 and %d", invdomain.ErrInvalidInput, MaxPageSize)
	}

	return repositories.ListQuery{
		Search:    p.Search,
		Category:  p.Category,
		SortField: sortField,
		SortOrder: sortOrder,
		Offset:    (page - 1) * pageSize,
		Limit:     pageSize,
	}, nil
}

// maybePublishLowStock emits a low-stock event when the item sits at or below
// its reorder threshold. Best-effort: a publish failure is logged, never
// returned — event delivery must not fail a committed mutation.
func (s *InventoryService) maybePublishLowStock(ctx context.Context, item *models.Item) {
	if s.bus == nil || !item.LowStock() {
		return
	}
	event := domainevents.LowStockEvent{
		EventID:          uuid.New(),
		Version:          1,
		ItemID:           item.ID,
		Name:             item.Name,
		Unit:             item.Unit,
		Quantity:         item.Quantity,
		ReorderThreshold: item.ReorderThreshold,
		OccurredAt:       time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.ErrorContext(ctx, "marshal low stock event", "error", err, "item_id", item.ID)
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	if err := s.bus.Publish(ctx, domainevents.TopicLowStock, msg); err != nil {
		s.log.WarnContext(ctx, "publish low stock event failed", "error", err, "item_id", item.ID)
	}
}

func (s *InventoryService) invalidateCategories(ctx context.Context) {
	if s.categories == nil {
		return
	}
	if err := s.categories.Invalidate(ctx); err != nil {
		s.log.WarnContext(ctx, "category cache invalidate failed", "error", err)
	}
}

// formatQuantity renders 5 as "5" and 2.5 as "2.5" for audit summaries.
func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
