package postgresrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/feastline/storefront/internal/dal/postgres"
	"github.com/feastline/storefront/internal/service/errs"
	"github.com/feastline/storefront/internal/service/models/currency"
	"github.com/feastline/storefront/internal/service/models/menuitem"
)

// MenuItemDal represents the menu item data access layer model.
type MenuItemDal struct {
	Id            int64     `db:"id"`
	Name          string    `db:"name"`
	Description   string    `db:"description"`
	PriceCents    int64     `db:"price_cents"`
	PriceCurrency string    `db:"price_currency"`
	Category      string    `db:"category"`
	ImageUrl      string    `db:"image_url"`
	IsAvailable   bool      `db:"is_available"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// ToModel converts MenuItemDal to the service layer MenuItem model.
func (m *MenuItemDal) ToModel() (*menuitem.MenuItem, error) {
	cur, err := currency.ParseCurrency(m.PriceCurrency)
	if err != nil {
		return nil, err
	}

	category, err := menuitem.ParseCategory(m.Category)
	if err != nil {
		return nil, err
	}

	return &menuitem.MenuItem{
		ID:            m.Id,
		Name:          m.Name,
		Description:   m.Description,
		PriceCents:    m.PriceCents,
		PriceCurrency: cur,
		Category:      category,
		ImageURL:      m.ImageUrl,
		IsAvailable:   m.IsAvailable,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}

// PostgresMenuItemRepository represents a Postgres menu item repository.
type PostgresMenuItemRepository struct {
	conn postgres.Conn
	sb   sq.StatementBuilderType
}

// NewPostgresMenuItemRepository creates a new Postgres menu item repository.
func NewPostgresMenuItemRepository(conn postgres.Conn) *PostgresMenuItemRepository {
	return &PostgresMenuItemRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var menuItemColumns = []string{
	"id",
	"name",
	"description",
	"price_cents",
	"price_currency",
	"category",
	"image_url",
	"is_available",
	"created_at",
	"updated_at",
}

// Insert persists a new menu item and returns it with the generated id.
func (r *PostgresMenuItemRepository) Insert(
	ctx context.Context,
	mi menuitem.MenuItem,
) (*menuitem.MenuItem, error) {
	sql, args, err := r.sb.
		Insert("menu_items").
		Columns(
			"name",
			"description",
			"price_cents",
			"price_currency",
			"category",
			"image_url",
			"is_available",
			"created_at",
			"updated_at",
		).
		Values(
			mi.Name,
			mi.Description,
			mi.PriceCents,
			mi.PriceCurrency.String(),
			mi.Category.String(),
			mi.ImageURL,
			mi.IsAvailable,
			mi.CreatedAt,
			mi.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(menuItemColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert query: %w", err)
	}

	dal, err := scanMenuItemRow(r.conn.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to insert menu item: %w", err)
	}

	model, err := dal.ToModel()
	if err != nil {
		return nil, fmt.Errorf("failed to convert menu item dal to model: %w", err)
	}

	return model, nil
}

// Query retrieves menu items based on filter criteria.
func (r *PostgresMenuItemRepository) Query(
	ctx context.Context,
	filter *menuitem.QueryMenuItemsModel,
) ([]menuitem.MenuItem, error) {
	query := r.sb.
		Select(menuItemColumns...).
		From("menu_items").
		OrderBy("id ASC")

	if len(filter.Ids) > 0 {
		query = query.Where(sq.Eq{"id": filter.Ids})
	}

	if len(filter.Categories) > 0 {
		categories := make([]string, len(filter.Categories))
		for i, c := range filter.Categories {
			categories[i] = c.String()
		}
		query = query.Where(sq.Eq{"category": categories})
	}

	if filter.AvailableOnly {
		query = query.Where(sq.Eq{"is_available": true})
	}

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var result []menuitem.MenuItem
	for rows.Next() {
		dal, err := scanMenuItemRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}

		model, err := dal.ToModel()
		if err != nil {
			return nil, fmt.Errorf("failed to convert menu item dal to model: %w", err)
		}
		result = append(result, *model)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Update overwrites the mutable fields of a menu item.
func (r *PostgresMenuItemRepository) Update(
	ctx context.Context,
	mi menuitem.MenuItem,
) (*menuitem.MenuItem, error) {
	sql, args, err := r.sb.
		Update("menu_items").
		Set("name", mi.Name).
		Set("description", mi.Description).
		Set("price_cents", mi.PriceCents).
		Set("price_currency", mi.PriceCurrency.String()).
		Set("category", mi.Category.String()).
		Set("image_url", mi.ImageURL).
		Set("is_available", mi.IsAvailable).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": mi.ID}).
		Suffix("RETURNING " + strings.Join(menuItemColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update query: %w", err)
	}

	dal, err := scanMenuItemRow(r.conn.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, errs.ErrMenuItemNotFound) {
			return nil, errs.ErrMenuItemNotFound
		}

		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}

	model, err := dal.ToModel()
	if err != nil {
		return nil, fmt.Errorf("failed to convert menu item dal to model: %w", err)
	}

	return model, nil
}

// Delete removes a menu item from the catalog.
func (r *PostgresMenuItemRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.
		Delete("menu_items").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	tag, err := r.conn.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return errs.ErrMenuItemNotFound
	}

	return nil
}

func scanMenuItemRow(row pgx.Row) (*MenuItemDal, error) {
	var dal MenuItemDal
	var createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(
		&dal.Id,
		&dal.Name,
		&dal.Description,
		&dal.PriceCents,
		&dal.PriceCurrency,
		&dal.Category,
		&dal.ImageUrl,
		&dal.IsAvailable,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrMenuItemNotFound
		}

		return nil, err
	}

	dal.CreatedAt = createdAt.Time
	dal.UpdatedAt = updatedAt.Time

	return &dal, nil
}
