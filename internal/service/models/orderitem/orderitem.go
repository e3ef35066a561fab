package orderitem

import (
	"time"

	"github.com/feastline/storefront/internal/service/models/currency"
)

// OrderItem is a single line of an order. Price and name are snapshots taken
// from the menu item at order time and never follow later catalog edits.
type OrderItem struct {
	ID            int64             `json:"id"`
	OrderID       int64             `json:"orderId"`
	MenuItemID    int64             `json:"menuItemId"`
	MenuItemName  string            `json:"menuItemName"`
	Quantity      int               `json:"quantity"`
	PriceCents    int64             `json:"priceCents"`
	PriceCurrency currency.Currency `json:"priceCurrency"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// SubtotalCents is the line contribution to the order total.
func (oi OrderItem) SubtotalCents() int64 {
	return oi.PriceCents * int64(oi.Quantity)
}
