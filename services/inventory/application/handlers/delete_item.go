package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/auth"
	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/inventory/application/services"
)

// DeleteItemResponse is returned on successful deletion.
type DeleteItemResponse struct {
	Message string    `json:"message" example:"item deleted"`
	ID      uuid.UUID `json:"id" example:"123e4567-e89b-12d3-a456-426614174000"`
} // @name DeleteItemResponse

// DeleteItemHandler handles DELETE /items/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute hard-deletes an inventory item. Its audit trail remains queryable.
//
//	@Summary		Delete item
//	@Description	Hard-deletes an inventory item and records the deletion in the audit log
//	@Tags			items
//	@Produce		json
//	@Param			id	path		string	true	"Item id"
//	@Success		200	{object}	DeleteItemResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actorID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Inventory.Delete(r.Context(), actorID, id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, DeleteItemResponse{Message: "item deleted", ID: id})
}
