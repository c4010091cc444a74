// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"context"
	"errors"
	"net/http"

	"github.com/ghuser/stockroom/pkg/httpx"
	invdomain "github.com/ghuser/stockroom/services/inventory/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, invdomain.ErrItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, invdomain.ErrDuplicateItemName):
		return http.StatusConflict // 409
	case errors.Is(err, invdomain.ErrInvalidInput),
		errors.Is(err, invdomain.ErrZeroDelta),
		errors.Is(err, invdomain.ErrNegativeQuantity),
		errors.Is(err, invdomain.ErrInvalidSortField):
		return http.StatusBadRequest // 400
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout // 504
	default:
		return http.StatusInternalServerError // 500
	}
}
