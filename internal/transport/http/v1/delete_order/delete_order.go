package deleteorder

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/feastline/storefront/internal/service/models/auth"
	"github.com/feastline/storefront/internal/transport/http/v1/httperr"
)

// service is an interface for the service layer.
type service interface {
	DeleteOrder(ctx context.Context, principal auth.Principal, orderID int64) error
}

// DeleteOrder handles the order deletion request.
func DeleteOrder(w http.ResponseWriter, r *http.Request, service service) {
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

	if err := service.DeleteOrder(r.Context(), principal, orderID); err != nil {
		httperr.Write(w, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"message": "Order deleted successfully"}); err != nil {
		slog.Error("Error writing response for delete order", "error", err)
	}
}
