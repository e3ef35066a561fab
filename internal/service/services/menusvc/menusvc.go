package menusvc

import (
	"context"
	"time"

	"github.com/feastline/storefront/internal/dal/interfaces/imenurepo"
	"github.com/feastline/storefront/internal/dal/postgres"
	menurepo "github.com/feastline/storefront/internal/dal/repositories/menuitem/postgres"
	"github.com/feastline/storefront/internal/service/errs"
	"github.com/feastline/storefront/internal/service/models/auth"
	"github.com/feastline/storefront/internal/service/models/currency"
	"github.com/feastline/storefront/internal/service/models/menuitem"
)

// MenuService manages the catalog. Writes are administrative; reads by
// non-administrators only see available items.
type MenuService struct {
	menuRepo imenurepo.IMenuItemRepository
}

// option is a function that configures the MenuService.
type option func(*MenuService)

// MustNewMenuService creates a new MenuService.
func MustNewMenuService(opts ...option) *MenuService {
	s := &MenuService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithPostgresClient sets the Postgres-backed catalog repository.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *MenuService) {
		s.menuRepo = menurepo.NewPostgresMenuItemRepository(pgClient.Pool())
	}
}

// WithMenuItemRepository overrides the catalog repository.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithMenuItemRepository(repo imenurepo.IMenuItemRepository) option {
	return func(s *MenuService) {
		s.menuRepo = repo
	}
}

// Create adds a menu item to the catalog.
func (s *MenuService) Create(
	ctx context.Context,
	principal auth.Principal,
	mi menuitem.MenuItem,
) (*menuitem.MenuItem, error) {
	if !principal.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	if err := validate(mi); err != nil {
		return nil, err
	}

	if mi.PriceCurrency == "" {
		mi.PriceCurrency = currency.Default
	}

	now := time.Now()
	mi.CreatedAt = now
	mi.UpdatedAt = now

	return s.menuRepo.Insert(ctx, mi)
}

// List retrieves menu items. Non-administrators only see available items.
func (s *MenuService) List(
	ctx context.Context,
	principal auth.Principal,
	filter menuitem.QueryMenuItemsModel,
) ([]menuitem.MenuItem, error) {
	if !principal.IsAdmin() {
		filter.AvailableOnly = true
	}

	items, err := s.menuRepo.Query(ctx, &filter)
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []menuitem.MenuItem{}
	}

	return items, nil
}

// Get retrieves a single menu item.
func (s *MenuService) Get(ctx context.Context, id int64) (*menuitem.MenuItem, error) {
	items, err := s.menuRepo.Query(ctx, &menuitem.QueryMenuItemsModel{Ids: []int64{id}})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.ErrMenuItemNotFound
	}

	return &items[0], nil
}

// UpdateMenuItemModel carries the optional fields of a partial update.
type UpdateMenuItemModel struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	PriceCents  *int64  `json:"priceCents,omitempty"`
	Category    *string `json:"category,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

// Update applies a partial update to an existing menu item.
func (s *MenuService) Update(
	ctx context.Context,
	principal auth.Principal,
	id int64,
	patch UpdateMenuItemModel,
) (*menuitem.MenuItem, error) {
	if !principal.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	mi := *current
	if patch.Name != nil {
		mi.Name = *patch.Name
	}
	if patch.Description != nil {
		mi.Description = *patch.Description
	}
	if patch.PriceCents != nil {
		mi.PriceCents = *patch.PriceCents
	}
	if patch.Category != nil {
		category, err := menuitem.ParseCategory(*patch.Category)
		if err != nil {
			return nil, &errs.InvalidMenuItemError{Field: "category", Message: err.Error()}
		}
		mi.Category = category
	}
	if patch.ImageURL != nil {
		mi.ImageURL = *patch.ImageURL
	}
	if patch.IsAvailable != nil {
		mi.IsAvailable = *patch.IsAvailable
	}

	if err := validate(mi); err != nil {
		return nil, err
	}

	return s.menuRepo.Update(ctx, mi)
}

// Delete removes a menu item from the catalog.
func (s *MenuService) Delete(ctx context.Context, principal auth.Principal, id int64) error {
	if !principal.IsAdmin() {
		return errs.ErrForbidden
	}

	return s.menuRepo.Delete(ctx, id)
}

func validate(mi menuitem.MenuItem) error {
	if mi.Name == "" {
		return &errs.InvalidMenuItemError{Field: "name", Message: "name is required"}
	}

	if mi.PriceCents < 0 {
		return &errs.InvalidMenuItemError{Field: "priceCents", Message: "price must not be negative"}
	}

	if _, err := menuitem.ParseCategory(mi.Category.String()); err != nil {
		return &errs.InvalidMenuItemError{Field: "category", Message: "category is required"}
	}

	return nil
}
