package menu

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/feastline/storefront/internal/service/models/auth"
	"github.com/feastline/storefront/internal/service/models/menuitem"
	"github.com/feastline/storefront/internal/service/services/menusvc"
	"github.com/feastline/storefront/internal/transport/http/v1/converters"
	"github.com/feastline/storefront/internal/transport/http/v1/httperr"
)

// service is an interface for the service layer.
type service interface {
	Create(ctx context.Context, principal auth.Principal, mi menuitem.MenuItem) (*menuitem.MenuItem, error)
	List(ctx context.Context, principal auth.Principal, filter menuitem.QueryMenuItemsModel) ([]menuitem.MenuItem, error)
	Get(ctx context.Context, id int64) (*menuitem.MenuItem, error)
	Update(ctx context.Context, principal auth.Principal, id int64, patch menusvc.UpdateMenuItemModel) (*menuitem.MenuItem, error)
	Delete(ctx context.Context, principal auth.Principal, id int64) error
}

// CreateMenuItem handles the catalog entry creation request.
func CreateMenuItem(w http.ResponseWriter, r *http.Request, service service) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)

		return
	}

	var req converters.CreateMenuItemRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		slog.Error("Error decoding request body for create menu item", "error", err)

		return
	}

	created, err := service.Create(r.Context(), principal, converters.MenuItemFromCreateRequest(&req))
	if err != nil {
		httperr.Write(w, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, created, "create menu item")
}

// ListMenuItems handles the catalog listing request.
func ListMenuItems(w http.ResponseWriter, r *http.Request, service service) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)

		return
	}

	filter := menuitem.QueryMenuItemsModel{}
	if categoryStr := r.URL.Query().Get("category"); categoryStr != "" {
		category, err := menuitem.ParseCategory(categoryStr)
		if err != nil {
			httperr.Write(w, err)

			return
		}
		filter.Categories = []menuitem.Category{category}
	}

	items, err := service.List(r.Context(), principal, filter)
	if err != nil {
		httperr.Write(w, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, items, "list menu items")
}

// GetMenuItem handles the single catalog entry fetch request.
func GetMenuItem(w http.ResponseWriter, r *http.Request, service service) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid menu item id", http.StatusBadRequest)

		return
	}

	mi, err := service.Get(r.Context(), id)
	if err != nil {
		httperr.Write(w, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, mi, "get menu item")
}

// UpdateMenuItem handles the partial catalog entry update request.
func UpdateMenuItem(w http.ResponseWriter, r *http.Request, service service) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)

		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid menu item id", http.StatusBadRequest)

		return
	}

	var req converters.UpdateMenuItemRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		slog.Error("Error decoding request body for update menu item", "error", err)

		return
	}

	updated, err := service.Update(r.Context(), principal, id, req)
	if err != nil {
		httperr.Write(w, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, updated, "update menu item")
}

// DeleteMenuItem handles the catalog entry deletion request.
func DeleteMenuItem(w http.ResponseWriter, r *http.Request, service service) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)

		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid menu item id", http.StatusBadRequest)

		return
	}

	if err := service.Delete(r.Context(), principal, id); err != nil {
		httperr.Write(w, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, map[string]string{"message": "Menu item deleted successfully"}, "delete menu item")
}

func writeJSON(w http.ResponseWriter, v any, op string) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error writing response for "+op, "error", err)
	}
}
