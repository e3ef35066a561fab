package menusvc

import (
	"context"
	"errors"
	"testing"

	"github.com/feastline/storefront/internal/service/errs"
	"github.com/feastline/storefront/internal/service/models/auth"
	"github.com/feastline/storefront/internal/service/models/currency"
	"github.com/feastline/storefront/internal/service/models/menuitem"
)

type memMenuRepo struct {
	items  map[int64]menuitem.MenuItem
	nextID int64
}

func newMemMenuRepo() *memMenuRepo {
	return &memMenuRepo{items: make(map[int64]menuitem.MenuItem)}
}

func (r *memMenuRepo) Insert(_ context.Context, mi menuitem.MenuItem) (*menuitem.MenuItem, error) {
	r.nextID++
	mi.ID = r.nextID
	r.items[mi.ID] = mi

	return &mi, nil
}

func (r *memMenuRepo) Query(_ context.Context, filter *menuitem.QueryMenuItemsModel) ([]menuitem.MenuItem, error) {
	var out []menuitem.MenuItem
	for id := int64(1); id <= r.nextID; id++ {
		mi, ok := r.items[id]
		if !ok {
			continue
		}
		if filter.AvailableOnly && !mi.IsAvailable {
			continue
		}
		if len(filter.Ids) > 0 {
			found := false
			for _, want := range filter.Ids {
				if want == mi.ID {
					found = true

					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, mi)
	}

	return out, nil
}

func (r *memMenuRepo) Update(_ context.Context, mi menuitem.MenuItem) (*menuitem.MenuItem, error) {
	if _, ok := r.items[mi.ID]; !ok {
		return nil, errs.ErrMenuItemNotFound
	}
	r.items[mi.ID] = mi

	return &mi, nil
}

func (r *memMenuRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return errs.ErrMenuItemNotFound
	}
	delete(r.items, id)

	return nil
}

var (
	customer = auth.Principal{UserID: 7, Role: auth.RoleUser}
	admin    = auth.Principal{UserID: 42, Role: auth.RoleAdmin}
)

func seedItem(t *testing.T, svc *MenuService, mi menuitem.MenuItem) *menuitem.MenuItem {
	t.Helper()

	created, err := svc.Create(context.Background(), admin, mi)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	return created
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name      string
		principal auth.Principal
		item      menuitem.MenuItem
		wantErr   error
	}{
		{
			name:      "valid item",
			principal: admin,
			item: menuitem.MenuItem{
				Name:       "Espresso",
				PriceCents: 300,
				Category:   menuitem.CategoryDrink,
			},
		},
		{
			name:      "non-admin forbidden",
			principal: customer,
			item: menuitem.MenuItem{
				Name:       "Espresso",
				PriceCents: 300,
				Category:   menuitem.CategoryDrink,
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name:      "missing name",
			principal: admin,
			item:      menuitem.MenuItem{PriceCents: 300, Category: menuitem.CategoryDrink},
			wantErr:   &errs.InvalidMenuItemError{Field: "name", Message: "name is required"},
		},
		{
			name:      "negative price",
			principal: admin,
			item: menuitem.MenuItem{
				Name:       "Espresso",
				PriceCents: -1,
				Category:   menuitem.CategoryDrink,
			},
			wantErr: &errs.InvalidMenuItemError{Field: "priceCents", Message: "price must not be negative"},
		},
		{
			name:      "missing category",
			principal: admin,
			item:      menuitem.MenuItem{Name: "Espresso", PriceCents: 300},
			wantErr:   &errs.InvalidMenuItemError{Field: "category", Message: "category is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := MustNewMenuService(WithMenuItemRepository(newMemMenuRepo()))

			created, err := svc.Create(context.Background(), tt.principal, tt.item)
			if tt.wantErr != nil {
				if err == nil || err.Error() != tt.wantErr.Error() {
					t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if created.ID == 0 {
				t.Error("created item has no id")
			}
			if created.PriceCurrency != currency.Default {
				t.Errorf("PriceCurrency = %q, want default %q", created.PriceCurrency, currency.Default)
			}
		})
	}
}

func TestListHidesUnavailableFromNonAdmins(t *testing.T) {
	svc := MustNewMenuService(WithMenuItemRepository(newMemMenuRepo()))
	seedItem(t, svc, menuitem.MenuItem{
		Name: "Latte", PriceCents: 450, Category: menuitem.CategoryDrink, IsAvailable: true,
	})
	seedItem(t, svc, menuitem.MenuItem{
		Name: "Seasonal Pie", PriceCents: 600, Category: menuitem.CategoryDessert, IsAvailable: false,
	})

	items, err := svc.List(context.Background(), customer, menuitem.QueryMenuItemsModel{})
	if err != nil {
		t.Fatalf("List(customer) error = %v", err)
	}
	if len(items) != 1 || items[0].Name != "Latte" {
		t.Errorf("customer list = %+v, want only Latte", items)
	}

	items, err = svc.List(context.Background(), admin, menuitem.QueryMenuItemsModel{})
	if err != nil {
		t.Fatalf("List(admin) error = %v", err)
	}
	if len(items) != 2 {
		t.Errorf("admin list has %d items, want 2", len(items))
	}
}

func TestGet(t *testing.T) {
	svc := MustNewMenuService(WithMenuItemRepository(newMemMenuRepo()))
	created := seedItem(t, svc, menuitem.MenuItem{
		Name: "Latte", PriceCents: 450, Category: menuitem.CategoryDrink,
	})

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != "Latte" {
		t.Errorf("Name = %q, want Latte", got.Name)
	}

	if _, err := svc.Get(context.Background(), 999); !errors.Is(err, errs.ErrMenuItemNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrMenuItemNotFound", err)
	}
}

func TestUpdateAppliesPartialPatch(t *testing.T) {
	svc := MustNewMenuService(WithMenuItemRepository(newMemMenuRepo()))
	created := seedItem(t, svc, menuitem.MenuItem{
		Name: "Latte", PriceCents: 450, Category: menuitem.CategoryDrink, IsAvailable: true,
	})

	newPrice := int64(500)
	unavailable := false
	updated, err := svc.Update(context.Background(), admin, created.ID, UpdateMenuItemModel{
		PriceCents:  &newPrice,
		IsAvailable: &unavailable,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.PriceCents != 500 {
		t.Errorf("PriceCents = %d, want 500", updated.PriceCents)
	}
	if updated.IsAvailable {
		t.Error("IsAvailable = true, want false")
	}
	if updated.Name != "Latte" {
		t.Errorf("untouched Name = %q, want Latte", updated.Name)
	}

	if _, err := svc.Update(context.Background(), customer, created.ID, UpdateMenuItemModel{}); !errors.Is(err, errs.ErrForbidden) {
		t.Errorf("non-admin Update() error = %v, want ErrForbidden", err)
	}

	badCategory := "PIZZA"
	if _, err := svc.Update(context.Background(), admin, created.ID, UpdateMenuItemModel{
		Category: &badCategory,
	}); err == nil {
		t.Error("Update() with unknown category succeeded, want error")
	}

	if _, err := svc.Update(context.Background(), admin, 999, UpdateMenuItemModel{}); !errors.Is(err, errs.ErrMenuItemNotFound) {
		t.Errorf("Update(missing) error = %v, want ErrMenuItemNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	repo := newMemMenuRepo()
	svc := MustNewMenuService(WithMenuItemRepository(repo))
	created := seedItem(t, svc, menuitem.MenuItem{
		Name: "Latte", PriceCents: 450, Category: menuitem.CategoryDrink,
	})

	if err := svc.Delete(context.Background(), customer, created.ID); !errors.Is(err, errs.ErrForbidden) {
		t.Errorf("non-admin Delete() error = %v, want ErrForbidden", err)
	}

	if err := svc.Delete(context.Background(), admin, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(repo.items) != 0 {
		t.Errorf("items remaining = %d, want 0", len(repo.items))
	}
}
