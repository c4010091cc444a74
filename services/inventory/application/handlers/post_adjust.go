package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/auth"
	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockroom/pkg/validator"
	appsvcs "github.com/ghuser/stockroom/services/inventory/application/services"
)

// AdjustQuantityRequest is the request body for POST /items/{id}/adjust.
// Delta carries no validate tag: zero is rejected by the service with a
// dedicated error, not by schema validation.
type AdjustQuantityRequest struct {
	Delta  float64 `json:"delta" example:"-2.5"`
	Reason string  `json:"reason" validate:"omitempty,max=200" example:"spoilage"`
} // @name AdjustQuantityRequest

// AdjustmentResponse describes the before/after state of an adjustment.
type AdjustmentResponse struct {
	OldQuantity float64 `json:"oldQuantity" example:"10"`
	NewQuantity float64 `json:"newQuantity" example:"7.5"`
	Delta       float64 `json:"delta" example:"-2.5"`
} // @name AdjustmentResponse

// AdjustQuantityResponse is the response body for POST /items/{id}/adjust.
type AdjustQuantityResponse struct {
	Item       ItemResponse       `json:"item"`
	Adjustment AdjustmentResponse `json:"adjustment"`
} // @name AdjustQuantityResponse

// PostAdjustHandler handles POST /items/{id}/adjust requests.
type PostAdjustHandler struct {
	svc *appsvcs.Services
}

// NewPostAdjustHandler returns a PostAdjustHandler backed by the given services.
func NewPostAdjustHandler(svc *appsvcs.Services) *PostAdjustHandler {
	return &PostAdjustHandler{svc: svc}
}

// Execute applies a signed quantity delta to an item.
//
//	@Summary		Adjust quantity
//	@Description	Applies a signed delta to the item's on-hand quantity; the quantity never goes negative
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Item id"
//	@Param			request	body		AdjustQuantityRequest	true	"Adjustment"
//	@Success		200		{object}	AdjustQuantityResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/items/{id}/adjust [post]
func (h *PostAdjustHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actorID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[AdjustQuantityRequest](w, r)
	if !ok {
		return
	}

	adj, err := h.svc.Inventory.AdjustQuantity(r.Context(), actorID, id, req.Delta, req.Reason)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, AdjustQuantityResponse{
		Item: itemResponse(adj.Item),
		Adjustment: AdjustmentResponse{
			OldQuantity: adj.OldQuantity,
			NewQuantity: adj.NewQuantity,
			Delta:       adj.Delta,
		},
	})
}
