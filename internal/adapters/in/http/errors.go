package http

import (
	"errors"
	"net/http"
	"time"

	"purchasing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps domain error kinds to HTTP status codes and writes the
// standard error payload. Unclassified errors become 500 without leaking
// their message.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrDuplicateInvoiceNumber):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrInvalidStateTransition),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
		message = err.Error()
	}

	return ctx.JSON(status, ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Message:   message,
	})
}

// writeBadRequest writes a 400 payload with per-field details.
func writeBadRequest(ctx echo.Context, message string, fieldErrors map[string]string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    http.StatusBadRequest,
		Message:   message,
		Errors:    fieldErrors,
	})
}
