package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/inventory/domain/models"
)

// DefaultAuditLimit caps audit listings when the caller does not override it.
const DefaultAuditLimit = 50

// AuditRepository is the persistence interface for the append-only audit log.
// Entries are appended exactly once per mutating operation and never updated
// or deleted; there are intentionally no mutation methods here.
type AuditRepository interface {
	// Append persists one audit entry. Called strictly after the item write
	// commits (write-then-log): a crash in between leaves quantity correct
	// and the log momentarily one entry short, never the reverse.
	Append(ctx context.Context, entry *models.AuditEntry) error

	// ListByItem returns up to limit entries for the item, newest first.
	// Entries whose item has since been deleted remain listable.
	ListByItem(ctx context.Context, itemID uuid.UUID, limit int) ([]*models.AuditEntry, error)
}
