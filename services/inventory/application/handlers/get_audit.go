package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/inventory/application/services"
	"github.com/ghuser/stockroom/services/inventory/domain/models"
)

// AuditEntryResponse is the JSON shape of one audit log entry. Changes keeps
// the per-action payload shape; update entries additionally carry a rendered
// one-line summary next to the structured field list.
type AuditEntryResponse struct {
	ID        uuid.UUID `json:"id" example:"123e4567-e89b-12d3-a456-426614174000"`
	ItemID    uuid.UUID `json:"itemId" example:"550e8400-e29b-41d4-a716-446655440000"`
	ItemName  string    `json:"itemName" example:"Cheddar Cheese"`
	Action    string    `json:"action" example:"quantity_adjust"`
	ActorID   string    `json:"actorId" example:"user_2abc"`
	Changes   any       `json:"changes"`
	Timestamp time.Time `json:"timestamp" example:"2024-01-15T10:30:00Z"`
} // @name AuditEntryResponse

// AuditLogResponse is the response body for GET /items/{id}/audit.
type AuditLogResponse struct {
	Logs []AuditEntryResponse `json:"logs"`
} // @name AuditLogResponse

// GetAuditHandler handles GET /items/{id}/audit requests.
type GetAuditHandler struct {
	svc *appsvcs.Services
}

// NewGetAuditHandler returns a GetAuditHandler backed by the given services.
func NewGetAuditHandler(svc *appsvcs.Services) *GetAuditHandler {
	return &GetAuditHandler{svc: svc}
}

// Execute returns the audit log for an item, newest first. Works for deleted
// items as well; the trail outlives the item.
//
//	@Summary		Get audit log
//	@Description	Returns the item's audit entries, newest first; default limit 50
//	@Tags			items
//	@Produce		json
//	@Param			id		path		string	true	"Item id"
//	@Param			limit	query		int		false	"Max entries, default 50, cap 200"
//	@Success		200		{object}	AuditLogResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/items/{id}/audit [get]
func (h *GetAuditHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	limit, err := intQueryParam(r.URL.Query().Get("limit"), "limit")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	entries, err := h.svc.Inventory.AuditLog(r.Context(), id, limit)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := AuditLogResponse{Logs: make([]AuditEntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Logs = append(resp.Logs, auditEntryResponse(e))
	}
	httpx.JSON(w, http.StatusOK, resp)
}

func auditEntryResponse(e *models.AuditEntry) AuditEntryResponse {
	return AuditEntryResponse{
		ID:        e.ID,
		ItemID:    e.ItemID,
		ItemName:  e.ItemName,
		Action:    string(e.Action),
		ActorID:   e.ActorID,
		Changes:   changesPayload(e.Changes),
		Timestamp: e.Timestamp,
	}
}

// changesPayload maps a stored ChangeSet to its wire shape. Update entries
// gain a rendered newValue line alongside the structured fields.
func changesPayload(cs models.ChangeSet) any {
	if u, ok := cs.(models.UpdateChanges); ok {
		return struct {
			NewValue string               `json:"newValue"`
			Fields   []models.FieldChange `json:"fields"`
		}{NewValue: u.Render(), Fields: u.Fields}
	}
	return cs
}
