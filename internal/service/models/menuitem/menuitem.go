package menuitem

import (
	"errors"
	"time"

	"github.com/feastline/storefront/internal/service/models/currency"
)

// Category classifies a menu item.
type Category string

const (
	CategoryDrink   Category = "DRINK"
	CategoryFood    Category = "FOOD"
	CategoryDessert Category = "DESSERT"
	CategorySnack   Category = "SNACK"
)

var ErrInvalidCategory = errors.New("invalid category")

func (c Category) String() string {
	return string(c)
}

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryDrink, CategoryFood, CategoryDessert, CategorySnack:
		return Category(s), nil
	default:
		return "", ErrInvalidCategory
	}
}

// MenuItem is a catalog entry. Its price is the current price only; orders
// snapshot it at build time.
type MenuItem struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description,omitempty"`
	PriceCents    int64             `json:"priceCents"`
	PriceCurrency currency.Currency `json:"priceCurrency"`
	Category      Category          `json:"category"`
	ImageURL      string            `json:"imageUrl,omitempty"`
	IsAvailable   bool              `json:"isAvailable"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}
