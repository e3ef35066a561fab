package getorder

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/feastline/storefront/internal/service/models/auth"
	"github.com/feastline/storefront/internal/service/models/order"
	"github.com/feastline/storefront/internal/transport/http/v1/httperr"
)

// service is an interface for the service layer.
type service interface {
	GetOrder(ctx context.Context, principal auth.Principal, orderID int64) (*order.Order, error)
}

// GetOrder handles the single order fetch request.
func GetOrder(w http.ResponseWriter, r *http.Request, service service) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)

		return
	}

	orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid order id", http.StatusBadRequest)

		return
	}

	o, err := service.GetOrder(r.Context(), principal, orderID)
	if err != nil {
		httperr.Write(w, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(o); err != nil {
		slog.Error("Error writing response for get order", "error", err)
	}
}
