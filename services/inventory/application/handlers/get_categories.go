package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/inventory/application/services"
)

// CategoriesResponse is the response body for GET /categories.
type CategoriesResponse struct {
	Categories []string `json:"categories" example:"Dairy,Produce"`
} // @name CategoriesResponse

// GetCategoriesHandler handles GET /categories requests.
type GetCategoriesHandler struct {
	svc *appsvcs.Services
}

// NewGetCategoriesHandler returns a GetCategoriesHandler backed by the given services.
func NewGetCategoriesHandler(svc *appsvcs.Services) *GetCategoriesHandler {
	return &GetCategoriesHandler{svc: svc}
}

// Execute returns the distinct categories of all live items, sorted.
//
//	@Summary		List categories
//	@Description	Returns the distinct, sorted categories across all items
//	@Tags			categories
//	@Produce		json
//	@Success		200	{object}	CategoriesResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/categories [get]
func (h *GetCategoriesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Inventory.Categories(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	httpx.JSON(w, http.StatusOK, CategoriesResponse{Categories: categories})
}
