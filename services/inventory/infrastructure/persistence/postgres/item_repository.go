package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/stockroom/pkg/database"
	"github.com/ghuser/stockroom/pkg/events"
	invdomain "github.com/ghuser/stockroom/services/inventory/domain"
	domainevents "github.com/ghuser/stockroom/services/inventory/domain/events"
	"github.com/ghuser/stockroom/services/inventory/domain/models"
	"github.com/ghuser/stockroom/services/inventory/domain/repositories"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// sortColumns maps the API sort-field enumeration to real column names.
// Never interpolate caller input into ORDER BY directly.
var sortColumns = map[repositories.SortField]string{
	repositories.SortByName:      "name",
	repositories.SortByQuantity:  "quantity",
	repositories.SortByUpdatedAt: "updated_at",
	repositories.SortByCostPrice: "cost_price",
}

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
// The unique index on items.name is the authoritative uniqueness signal;
// unique violations surface as domain.ErrDuplicateItemName regardless of
// whether the in-process pre-check passed.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection
// pool and event bus. The bus is used to publish ItemCreatedEvents within the
// same transaction as the insert (outbox pattern); pass nil to disable.
func NewItemRepository(db *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

const itemColumns = `id, name, category, unit, quantity, reorder_threshold, cost_price, created_by, created_at, updated_at`

// Create persists a new Item and publishes an ItemCreatedEvent within the
// same transaction. Returns domain.ErrDuplicateItemName on a name collision.
func (r *ItemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO items (`+itemColumns+`)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			item.ID, item.Name, item.Category, item.Unit,
			item.Quantity, item.ReorderThreshold, item.CostPrice,
			item.CreatedBy, item.CreatedAt, item.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return invdomain.ErrDuplicateItemName
			}
			return fmt.Errorf("insert item: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, item); err != nil {
				return fmt.Errorf("publish item created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves an Item by id. Returns domain.ErrItemNotFound if absent.
func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return item, nil
}

// Update replaces the caller-editable attributes of an existing item.
// Returns domain.ErrItemNotFound when no row matched and
// domain.ErrDuplicateItemName when the new name collides.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	res, err := r.db.DB().ExecContext(ctx,
		`UPDATE items
		 SET name = $2, category = $3, unit = $4, quantity = $5,
		     reorder_threshold = $6, cost_price = $7, updated_at = $8
		 WHERE id = $1`,
		item.ID, item.Name, item.Category, item.Unit,
		item.Quantity, item.ReorderThreshold, item.CostPrice, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return invdomain.ErrDuplicateItemName
		}
		return fmt.Errorf("update item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update item rows: %w", err)
	}
	if n == 0 {
		return invdomain.ErrItemNotFound
	}
	return nil
}

// Delete hard-deletes an item. Returns domain.ErrItemNotFound when no row matched.
func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete item rows: %w", err)
	}
	if n == 0 {
		return invdomain.ErrItemNotFound
	}
	return nil
}

// NameExists reports whether a live item other than excludeID carries the
// given name. This is the fast-path pre-check; the unique index remains the
// source of truth under concurrent writers.
func (r *ItemRepository) NameExists(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM items WHERE name = $1 AND id <> $2)`,
		name, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check item name: %w", err)
	}
	return exists, nil
}

// AdjustQuantity applies a signed delta with a single conditional UPDATE so
// the read-modify-write is atomic at the row level. The guard clause refuses
// negative results without writing anything; a missing row is then
// disambiguated into not-found vs would-go-negative by re-reading.
func (r *ItemRepository) AdjustQuantity(ctx context.Context, id uuid.UUID, delta float64) (*models.Item, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`UPDATE items
		 SET quantity = quantity + $2, updated_at = $3
		 WHERE id = $1 AND quantity + $2 >= 0
		 RETURNING `+itemColumns,
		id, delta, time.Now().UTC(),
	)
	item, err := scanItem(row)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("adjust quantity: %w", err)
	}

	// No row updated: either the item is gone or the delta would go negative.
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return nil, invdomain.ErrNegativeQuantity
}

// List retrieves a filtered, sorted page of items plus the unpaginated count.
func (r *ItemRepository) List(ctx context.Context, q repositories.ListQuery) ([]*models.Item, int, error) {
	column, ok := sortColumns[q.SortField]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", invdomain.ErrInvalidSortField, q.SortField)
	}
	direction := "ASC"
	if q.SortOrder == repositories.SortDesc {
		direction = "DESC"
	}

	where, args := buildItemFilter(q)

	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items`+where+
			` ORDER BY `+column+` `+direction+
			` LIMIT $`+strconv.Itoa(len(args)+1)+` OFFSET $`+strconv.Itoa(len(args)+2),
		append(args, q.Limit, q.Offset)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate items: %w", err)
	}

	var total int
	if err := r.db.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM items`+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	return items, total, nil
}

// Categories returns the distinct category values across live items, sorted.
func (r *ItemRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT DISTINCT category FROM items ORDER BY category ASC`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// buildItemFilter assembles the WHERE clause for List. Search matches name OR
// category case-insensitively as a substring; Category narrows exactly.
func buildItemFilter(q repositories.ListQuery) (string, []any) {
	var (
		clauses []string
		args    []any
	)
	if q.Search != "" {
		args = append(args, "%"+escapeLike(q.Search)+"%")
		p := strconv.Itoa(len(args))
		clauses = append(clauses, "(name ILIKE $"+p+" OR category ILIKE $"+p+")")
	}
	if q.Category != "" {
		args = append(args, q.Category)
		clauses = append(clauses, "category = $"+strconv.Itoa(len(args)))
	}
	if len(clauses) == 0 {
		return "", nil
	}
	where := " WHERE " + clauses[0]
	for _, c := range clauses[1:] {
		where += " AND " + c
	}
	return where, args
}

// likeEscaper neutralizes the LIKE pattern metacharacters so a search term
// like "50%" or "a_b" matches as a literal substring.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *ItemRepository) publishCreated(tx *sql.Tx, item *models.Item) error {
	event := domainevents.ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		Name:       item.Name,
		Category:   item.Category,
		Quantity:   item.Quantity,
		CreatedBy:  item.CreatedBy,
		OccurredAt: item.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicItemCreated, msg)
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (*models.Item, error) {
	var item models.Item
	err := s.Scan(
		&item.ID, &item.Name, &item.Category, &item.Unit,
		&item.Quantity, &item.ReorderThreshold, &item.CostPrice,
		&item.CreatedBy, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
