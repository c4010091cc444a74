package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/inventory/domain/models"
	"github.com/ghuser/stockroom/services/inventory/domain/repositories"
)

// AuditRepository is a mutex-guarded append-only slice of audit entries.
type AuditRepository struct {
	mu      sync.RWMutex
	entries []models.AuditEntry
}

// NewAuditRepository returns an empty in-memory audit repository.
func NewAuditRepository() *AuditRepository {
	return &AuditRepository{}
}

// Append stores a copy of the entry.
func (r *AuditRepository) Append(ctx context.Context, entry *models.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

// ListByItem returns up to limit entries for the item, newest first.
func (r *AuditRepository) ListByItem(ctx context.Context, itemID uuid.UUID, limit int) ([]*models.AuditEntry, error) {
	if limit <= 0 {
		limit = repositories.DefaultAuditLimit
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.AuditEntry
	for _, e := range r.entries {
		if e.ItemID == itemID {
			matched = append(matched, e)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}

	out := make([]*models.AuditEntry, len(matched))
	for i := range matched {
		e := matched[i]
		out[i] = &e
	}
	return out, nil
}

// All returns every stored entry in append order. Test helper.
func (r *AuditRepository) All() []models.AuditEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.AuditEntry, len(r.entries))
	copy(out, r.entries)
	return out
}
