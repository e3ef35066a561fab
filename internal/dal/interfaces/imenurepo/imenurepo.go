package imenurepo

import (
	"context"

	"github.com/feastline/storefront/internal/service/models/menuitem"
)

// IMenuItemRepository is an interface for the menu item postgres repository.
type IMenuItemRepository interface {
	Insert(ctx context.Context, mi menuitem.MenuItem) (*menuitem.MenuItem, error)
	Query(ctx context.Context, filter *menuitem.QueryMenuItemsModel) ([]menuitem.MenuItem, error)
	Update(ctx context.Context, mi menuitem.MenuItem) (*menuitem.MenuItem, error)
	Delete(ctx context.Context, id int64) error
}
