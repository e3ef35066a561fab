package createorder

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/feastline/storefront/internal/service/models/auth"
	"github.com/feastline/storefront/internal/service/models/order"
	"github.com/feastline/storefront/internal/transport/http/v1/converters"
	"github.com/feastline/storefront/internal/transport/http/v1/httperr"
)

// service is an interface for the service layer.
type service interface {
	BuildOrder(ctx context.Context, principal auth.Principal, build order.BuildOrderModel) (*order.Order, error)
}

// CreateOrder handles the build-order request.
func CreateOrder(w http.ResponseWriter, r *http.Request, service service) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)

		return
	}

	var req converters.CreateOrderRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		slog.Error("Error decoding request body for create order", "error", err)

		return
	}

	created, err := service.BuildOrder(r.Context(), principal, converters.BuildOrderModelFromRequest(&req))
	if err != nil {
		httperr.Write(w, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(created); err != nil {
		slog.Error("Error writing response for create order", "error", err)
	}
}
