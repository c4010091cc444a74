package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Action identifies the kind of mutation an audit entry records.
type Action string

const (
	ActionCreate         Action = "create"
	ActionUpdate         Action = "update"
	ActionDelete         Action = "delete"
	ActionQuantityAdjust Action = "quantity_adjust"
)

// AuditEntry is one immutable historical fact about an item. Entries are
// appended after the corresponding item write commits and are never mutated
// or deleted. ItemID may dangle after the item is hard-deleted; entries stay
// queryable by item id regardless.
type AuditEntry struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	ItemName  string // name snapshot at event time, survives rename and delete
	Action    Action
	ActorID   string
	Changes   ChangeSet
	Timestamp time.Time
}

// ChangeSet is the per-action payload of an audit entry. It is a closed set:
// each Action has exactly one concrete payload type, so required fields are
// enforced by the type system rather than a bag of optional fields.
type ChangeSet interface {
	Action() Action
}

// CreateChanges is the payload for ActionCreate.
type CreateChanges struct {
	Summary string `json:"newValue"`
}

// DeleteChanges is the payload for ActionDelete. Summary captures the item
// state (including last known quantity) before it is lost.
type DeleteChanges struct {
	Summary string `json:"oldValue"`
}

// AdjustChanges is the payload for ActionQuantityAdjust.
type AdjustChanges struct {
	OldQuantity float64 `json:"oldValue"`
	NewQuantity float64 `json:"newValue"`
	Delta       float64 `json:"delta"`
	Reason      string  `json:"reason,omitempty"`
}

// FieldChange records one changed attribute on a full update, preserving the
// field name and both values as structured data. Human-readable rendering is
// a presentation concern; storage keeps the structure.
type FieldChange struct {
	Field    string `json:"field"`
	OldValue string `json:"oldValue"`
	NewValue string `json:"newValue"`
}

// UpdateChanges is the payload for ActionUpdate. Fields is never empty: an
// update that changes nothing produces no audit entry at all.
type UpdateChanges struct {
	Fields []FieldChange `json:"fields"`
}

func (CreateChanges) Action() Action { return ActionCreate }
func (UpdateChanges) Action() Action { return ActionUpdate }
func (DeleteChanges) Action() Action { return ActionDelete }
func (AdjustChanges) Action() Action { return ActionQuantityAdjust }

// Render joins the field changes into a single "field: old → new" summary line.
func (c UpdateChanges) Render() string {
	parts := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		parts[i] = fmt.Sprintf("%s: %s → %s", f.Field, f.OldValue, f.NewValue)
	}
	return strings.Join(parts, ", ")
}

// NewAuditEntry builds an entry for the given item snapshot with a generated
// id and server-assigned timestamp. The action is derived from the payload
// type, so entry and payload can never disagree.
func NewAuditEntry(itemID uuid.UUID, itemName string, actorID string, changes ChangeSet) *AuditEntry {
	return &AuditEntry{
		ID:        uuid.New(),
		ItemID:    itemID,
		ItemName:  itemName,
		Action:    changes.Action(),
		ActorID:   actorID,
		Changes:   changes,
		Timestamp: time.Now().UTC(),
	}
}

// EncodeChanges serializes a ChangeSet payload for storage. The action
// discriminator is stored alongside, not inside, the payload.
func EncodeChanges(cs ChangeSet) ([]byte, error) {
	b, err := json.Marshal(cs)
	if err != nil {
		return nil, fmt.Errorf("encode %s changes: %w", cs.Action(), err)
	}
	return b, nil
}

// DecodeChanges deserializes a stored payload, dispatching on the action
// discriminator column.
func DecodeChanges(action Action, raw []byte) (ChangeSet, error) {
	var (
		cs  ChangeSet
		err error
	)
	switch action {
	case ActionCreate:
		var c CreateChanges
		err = json.Unmarshal(raw, &c)
		cs = c
	case ActionUpdate:
		var c UpdateChanges
		err = json.Unmarshal(raw, &c)
		cs = c
	case ActionDelete:
		var c DeleteChanges
		err = json.Unmarshal(raw, &c)
		cs = c
	case ActionQuantityAdjust:
		var c AdjustChanges
		err = json.Unmarshal(raw, &c)
		cs = c
	default:
		return nil, fmt.Errorf("unknown audit action %q", action)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s changes: %w", action, err)
	}
	return cs, nil
}
