package listorders

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/feastline/storefront/internal/service/models/auth"
	"github.com/feastline/storefront/internal/service/models/order"
	"github.com/feastline/storefront/internal/transport/http/v1/converters"
	"github.com/feastline/storefront/internal/transport/http/v1/httperr"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// service is an interface for the service layer.
type service interface {
	GetOrders(ctx context.Context, principal auth.Principal, filter order.QueryOrdersModel) ([]order.Order, int64, error)
}

// ListOrders handles the paginated order listing request.
func ListOrders(w http.ResponseWriter, r *http.Request, service service) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)

		return
	}

	query := r.URL.Query()

	page := defaultPage
	if pageStr := query.Get("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed > 0 {
			page = parsed
		}
	}

	limit := defaultLimit
	if limitStr := query.Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	filter := order.QueryOrdersModel{
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	if statusStr := query.Get("status"); statusStr != "" {
		status, err := order.ParseStatus(statusStr)
		if err != nil {
			httperr.Write(w, err)

			return
		}
		filter.Statuses = []order.Status{status}
	}

	orders, total, err := service.GetOrders(r.Context(), principal, filter)
	if err != nil {
		httperr.Write(w, err)

		return
	}

	response := converters.NewListOrdersResponse(orders, total, page, limit)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Error("Error writing response for list orders", "error", err)
	}
}
