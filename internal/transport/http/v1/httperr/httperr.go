package httperr

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/feastline/storefront/internal/service/errs"
	"github.com/feastline/storefront/internal/service/models/menuitem"
)

type errorResponse struct {
	Error string `json:"error"`
}

// StatusCode maps a service error to its HTTP status class: validation and
// reference-to-line errors are client errors, authorization failures are 403,
// missing entities are 404, everything else is a server error.
func StatusCode(err error) int {
	var (
		lineNotFound      *errs.LineItemNotFoundError
		invalidQuantity   *errs.InvalidQuantityError
		invalidTransition *errs.InvalidTransitionError
		invalidMenuItem   *errs.InvalidMenuItemError
	)

	switch {
	case errors.Is(err, errs.ErrEmptyOrder),
		errors.Is(err, errs.ErrInvalidStatus),
		errors.Is(err, menuitem.ErrInvalidCategory),
		errors.As(err, &lineNotFound),
		errors.As(err, &invalidQuantity),
		errors.As(err, &invalidMenuItem):
		return http.StatusBadRequest
	case errors.As(err, &invalidTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrOrderNotFound),
		errors.Is(err, errs.ErrMenuItemNotFound),
		errors.Is(err, errs.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Write sends the error as a JSON body with the mapped status code.
// Server-error details are not leaked to the client.
func Write(w http.ResponseWriter, err error) {
	code := StatusCode(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal server error"
		slog.Error("request failed", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if encodeErr := json.NewEncoder(w).Encode(errorResponse{Error: message}); encodeErr != nil {
		slog.Error("Error writing error response", "error", encodeErr)
	}
}
