package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stockroom/pkg/httpx"
	"github.com/ghuser/stockroom/services/inventory/application/services"
	"github.com/ghuser/stockroom/services/inventory/domain/models"
)

// ItemRequest is the request body for POST /items and PUT /items/{id}.
// Handler tags reject malformed shapes early; canonical business rules
// (trimming, control characters) live in the domain validator.
type ItemRequest struct {
	Name             string  `json:"name" validate:"required,max=100" example:"Cheddar Cheese"`
	Category         string  `json:"category" validate:"required,max=50" example:"Dairy"`
	Unit             string  `json:"unit" validate:"required,max=20" example:"kg"`
	Quantity         float64 `json:"quantity" validate:"gte=0" example:"12.5"`
	ReorderThreshold float64 `json:"reorderThreshold" validate:"gte=0" example:"5"`
	CostPrice        float64 `json:"costPrice" validate:"gte=0" example:"8.99"`
} // @name ItemRequest

// ItemResponse is the JSON shape of a single inventory item.
type ItemResponse struct {
	ID               uuid.UUID `json:"id" example:"123e4567-e89b-12d3-a456-426614174000"`
	Name             string    `json:"name" example:"Cheddar Cheese"`
	Category         string    `json:"category" example:"Dairy"`
	Unit             string    `json:"unit" example:"kg"`
	Quantity         float64   `json:"quantity" example:"12.5"`
	ReorderThreshold float64   `json:"reorderThreshold" example:"5"`
	CostPrice        float64   `json:"costPrice" example:"8.99"`
	LowStock         bool      `json:"lowStock" example:"false"`
	CreatedBy        string    `json:"createdBy" example:"user_2abc"`
	CreatedAt        time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	UpdatedAt        time.Time `json:"updatedAt" example:"2024-01-15T10:30:00Z"`
} // @name ItemResponse

// PaginationResponse describes the page window of a listing response.
type PaginationResponse struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"20"`
	Total      int `json:"total" example:"42"`
	TotalPages int `json:"totalPages" example:"3"`
} // @name PaginationResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

func (r ItemRequest) toInput() models.ItemInput {
	return models.ItemInput{
		Name:             r.Name,
		Category:         r.Category,
		Unit:             r.Unit,
		Quantity:         r.Quantity,
		ReorderThreshold: r.ReorderThreshold,
		CostPrice:        decimal.NewFromFloat(r.CostPrice),
	}
}

func itemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:               item.ID,
		Name:             item.Name,
		Category:         item.Category,
		Unit:             item.Unit,
		Quantity:         item.Quantity,
		ReorderThreshold: item.ReorderThreshold,
		CostPrice:        item.CostPrice.InexactFloat64(),
		LowStock:         item.LowStock(),
		CreatedBy:        item.CreatedBy,
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
}

func paginationResponse(page, limit, total int) PaginationResponse {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = services.DefaultPageSize
	}
	totalPages := (total + limit - 1) / limit
	return PaginationResponse{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// parseItemID extracts and parses the {id} path parameter. On a malformed
// id it writes a 400 and returns ok=false.
func parseItemID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid item id"})
		return uuid.Nil, false
	}
	return id, true
}
