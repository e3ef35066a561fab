package converters

import (
	"github.com/feastline/storefront/internal/service/models/menuitem"
	"github.com/feastline/storefront/internal/service/models/order"
	"github.com/feastline/storefront/internal/service/services/menusvc"
)

// CreateOrderRequest is the wire shape of a build request. Items is required;
// delivery and contact fields are optional collaborator-owned metadata.
type CreateOrderRequest struct {
	Items           []LineRequestDTO `json:"items"`
	DeliveryAddress string           `json:"deliveryAddress,omitempty"`
	ContactNumber   string           `json:"contactNumber,omitempty"`
}

// LineRequestDTO is one (menu item id, quantity) pair. Quantity defaults to 1
// when omitted.
type LineRequestDTO struct {
	MenuItemID int64 `json:"menuItemId"`
	Quantity   int   `json:"quantity,omitempty"`
}

// BuildOrderModelFromRequest converts the wire request to the service input.
func BuildOrderModelFromRequest(req *CreateOrderRequest) order.BuildOrderModel {
	lines := make([]order.LineRequest, len(req.Items))
	for i, item := range req.Items {
		lines[i] = order.LineRequest{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		}
	}

	return order.BuildOrderModel{
		Lines:           lines,
		DeliveryAddress: req.DeliveryAddress,
		ContactNumber:   req.ContactNumber,
	}
}

// UpdateStatusRequest is the wire shape of a status transition request.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Pagination describes the page of a list response.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int64 `json:"pages"`
}

// ListOrdersResponse wraps a page of orders.
type ListOrdersResponse struct {
	Orders     []order.Order `json:"orders"`
	Pagination Pagination    `json:"pagination"`
}

// NewListOrdersResponse assembles the page envelope. A non-positive limit is
// clamped to 1.
func NewListOrdersResponse(orders []order.Order, total int64, page, limit int) ListOrdersResponse {
	if limit < 1 {
		limit = 1
	}

	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}

	return ListOrdersResponse{
		Orders: orders,
		Pagination: Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: pages,
		},
	}
}

// CreateMenuItemRequest is the wire shape of a new catalog entry.
type CreateMenuItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"priceCents"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl,omitempty"`
	IsAvailable *bool  `json:"isAvailable,omitempty"`
}

// MenuItemFromCreateRequest converts the wire request to the catalog model.
// Category validation is left to the service.
func MenuItemFromCreateRequest(req *CreateMenuItemRequest) menuitem.MenuItem {
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	return menuitem.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Category:    menuitem.Category(req.Category),
		ImageURL:    req.ImageURL,
		IsAvailable: available,
	}
}

// UpdateMenuItemRequest is the wire shape of a partial catalog update.
type UpdateMenuItemRequest = menusvc.UpdateMenuItemModel
