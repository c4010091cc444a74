package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/database"
	"github.com/ghuser/stockroom/services/inventory/domain/models"
	"github.com/ghuser/stockroom/services/inventory/domain/repositories"
)

// AuditRepository implements repositories.AuditRepository against PostgreSQL.
// The table is append-only: this type deliberately exposes no update or
// delete statements.
type AuditRepository struct {
	db *database.Database
}

// NewAuditRepository returns an AuditRepository backed by the given pool.
func NewAuditRepository(db *database.Database) *AuditRepository {
	return &AuditRepository{db: db}
}

// Append persists one audit entry. The changes payload is stored as JSONB
// next to the action discriminator.
func (r *AuditRepository) Append(ctx context.Context, entry *models.AuditEntry) error {
	changes, err := models.EncodeChanges(entry.Changes)
	if err != nil {
		return err
	}
	_, err = r.db.DB().ExecContext(ctx,
		`INSERT INTO audit_log (id, item_id, item_name, action, actor_id, changes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.ItemID, entry.ItemName, string(entry.Action),
		entry.ActorID, changes, entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// ListByItem returns up to limit entries for the item, newest first. Works
// for deleted items too — item_id is a plain column, not a foreign key.
func (r *AuditRepository) ListByItem(ctx context.Context, itemID uuid.UUID, limit int) ([]*models.AuditEntry, error) {
	if limit <= 0 {
		limit = repositories.DefaultAuditLimit
	}
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, item_id, item_name, action, actor_id, changes, created_at
		 FROM audit_log
		 WHERE item_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		itemID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer rows.Close()

	var entries []*models.AuditEntry
	for rows.Next() {
		var (
			entry  models.AuditEntry
			action string
			raw    []byte
		)
		if err := rows.Scan(
			&entry.ID, &entry.ItemID, &entry.ItemName, &action,
			&entry.ActorID, &raw, &entry.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entry.Action = models.Action(action)
		changes, err := models.DecodeChanges(entry.Action, raw)
		if err != nil {
			return nil, err
		}
		entry.Changes = changes
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit log: %w", err)
	}
	return entries, nil
}
