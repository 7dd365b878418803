package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"fastfeet/internal/pkg/errs"
)

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// successResponse acknowledges operations that return no entity, such as
// cancellations and deletions.
type successResponse struct {
	Success string `json:"success"`
}

// writeError maps a failure to its HTTP status. Authentication failures
// are 401, missing references 404, duplicate submissions 409, and every
// other business rule violation 400. Anything unclassified is a 500
// with the detail withheld.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrAuth):
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrInvalidWindow),
		errors.Is(err, errs.ErrCapacityExceeded),
		errors.Is(err, errs.ErrOrdering):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
