package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/inventory/application/services"
	invdomain "github.com/ghuser/stockroom/services/inventory/domain"
)

// ListItemsResponse is the response body for GET /items.
type ListItemsResponse struct {
	Items      []ItemResponse     `json:"items"`
	Pagination PaginationResponse `json:"pagination"`
} // @name ListItemsResponse

// GetItemsHandler handles GET /items requests.
type GetItemsHandler struct {
	svc *appsvcs.Services
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services) *GetItemsHandler {
	return &GetItemsHandler{svc: svc}
}

// Execute lists inventory items with search, filtering, sorting and pagination.
//
//	@Summary		List items
//	@Description	Lists inventory items; search matches name or category, case-insensitively
//	@Tags			items
//	@Produce		json
//	@Param			search		query		string	false	"Substring match on name or category"
//	@Param			category	query		string	false	"Exact category filter"
//	@Param			sortBy		query		string	false	"name | quantity | updatedAt | costPrice"
//	@Param			sortOrder	query		string	false	"asc | desc"
//	@Param			page		query		int		false	"Page number, 1-based"
//	@Param			limit		query		int		false	"Page size, max 100"
//	@Success		200			{object}	ListItemsResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Router			/items [get]
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := intQueryParam(q.Get("page"), "page")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	limit, err := intQueryParam(q.Get("limit"), "limit")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	params := appsvcs.ListParams{
		Search:    q.Get("search"),
		Category:  q.Get("category"),
		SortField: q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
		Page:      page,
		PageSize:  limit,
	}

	items, total, err := h.svc.Inventory.List(r.Context(), params)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ListItemsResponse{
		Items:      make([]ItemResponse, 0, len(items)),
		Pagination: paginationResponse(page, limit, total),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, itemResponse(item))
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// intQueryParam parses an optional integer query parameter. Empty means unset.
func intQueryParam(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", invdomain.ErrInvalidInput, name)
	}
	return v, nil
}
