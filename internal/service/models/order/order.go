package order

import (
	"time"

	"github.com/feastline/storefront/internal/service/models/currency"
	"github.com/feastline/storefront/internal/service/models/orderitem"
	"github.com/feastline/storefront/internal/service/models/user"
)

// Order represents a placed order. The total is computed once at creation from
// the item snapshots; the only field mutated afterwards is Status.
type Order struct {
	ID                 int64                 `json:"id"`
	CustomerID         int64                 `json:"customerId"`
	Status             Status                `json:"status"`
	TotalPriceCents    int64                 `json:"totalPriceCents"`
	TotalPriceCurrency currency.Currency     `json:"totalPriceCurrency"`
	DeliveryAddress    string                `json:"deliveryAddress,omitempty"`
	ContactNumber      string                `json:"contactNumber,omitempty"`
	CreatedAt          time.Time             `json:"createdAt"`
	UpdatedAt          time.Time             `json:"updatedAt"`
	OrderItems         []orderitem.OrderItem `json:"orderItems"`
	User               *user.Summary         `json:"user,omitempty"`
}

// LineRequest is a client-submitted (menu item id, quantity) pair.
// A zero quantity means the field was omitted and defaults to 1.
type LineRequest struct {
	MenuItemID int64 `json:"menuItemId"`
	Quantity   int   `json:"quantity,omitempty"`
}

// BuildOrderModel carries the validated input of a build request. Delivery and
// contact fields are optional pass-through metadata; they take no part in the
// computed core.
type BuildOrderModel struct {
	Lines           []LineRequest `json:"items"`
	DeliveryAddress string        `json:"deliveryAddress,omitempty"`
	ContactNumber   string        `json:"contactNumber,omitempty"`
}
