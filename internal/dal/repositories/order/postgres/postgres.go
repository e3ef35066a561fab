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
	"github.com/feastline/storefront/internal/service/models/order"
	"github.com/feastline/storefront/internal/service/models/orderitem"
)

// OrderDal represents the order data access layer model.
type OrderDal struct {
	Id                 int64     `db:"id"`
	CustomerId         int64     `db:"customer_id"`
	Status             string    `db:"status"`
	TotalPriceCents    int64     `db:"total_price_cents"`
	TotalPriceCurrency string    `db:"total_price_currency"`
	DeliveryAddress    string    `db:"delivery_address"`
	ContactNumber      string    `db:"contact_number"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

// ToModel converts OrderDal to the service layer Order model.
func (o *OrderDal) ToModel() (*order.Order, error) {
	cur, err := currency.ParseCurrency(o.TotalPriceCurrency)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(o.Status)
	if err != nil {
		return nil, err
	}

	return &order.Order{
		ID:                 o.Id,
		CustomerID:         o.CustomerId,
		Status:             status,
		TotalPriceCents:    o.TotalPriceCents,
		TotalPriceCurrency: cur,
		DeliveryAddress:    o.DeliveryAddress,
		ContactNumber:      o.ContactNumber,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
		OrderItems:         []orderitem.OrderItem{}, // populated separately
	}, nil
}

// PostgresOrderRepository represents a Postgres order repository.
type PostgresOrderRepository struct {
	conn postgres.Conn
	sb   sq.StatementBuilderType
}

// NewPostgresOrderRepository creates a new Postgres order repository.
func NewPostgresOrderRepository(conn postgres.Conn) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var orderColumns = []string{
	"id",
	"customer_id",
	"status",
	"total_price_cents",
	"total_price_currency",
	"delivery_address",
	"contact_number",
	"created_at",
	"updated_at",
}

// Insert persists a single order and returns it with the generated id.
func (r *PostgresOrderRepository) Insert(ctx context.Context, o order.Order) (*order.Order, error) {
	sql, args, err := r.sb.
		Insert("orders").
		Columns(
			"customer_id",
			"status",
			"total_price_cents",
			"total_price_currency",
			"delivery_address",
			"contact_number",
			"created_at",
			"updated_at",
		).
		Values(
			o.CustomerID,
			o.Status.String(),
			o.TotalPriceCents,
			o.TotalPriceCurrency.String(),
			o.DeliveryAddress,
			o.ContactNumber,
			o.CreatedAt,
			o.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(orderColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert query: %w", err)
	}

	dal, err := scanOrderRow(r.conn.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	model, err := dal.ToModel()
	if err != nil {
		return nil, fmt.Errorf("failed to convert order dal to model: %w", err)
	}
	model.OrderItems = append(model.OrderItems, o.OrderItems...)

	return model, nil
}

// Query retrieves orders based on filter criteria, newest first.
func (r *PostgresOrderRepository) Query(
	ctx context.Context,
	filter *order.QueryOrdersModel,
) ([]order.Order, error) {
	query := r.sb.
		Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC")

	query = applyOrderFilter(query, filter)

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
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var result []order.Order
	for rows.Next() {
		dal, err := scanOrderRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}

		model, err := dal.ToModel()
		if err != nil {
			return nil, fmt.Errorf("failed to convert order dal to model: %w", err)
		}
		result = append(result, *model)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Count returns the number of orders matching the filter, for pagination.
func (r *PostgresOrderRepository) Count(
	ctx context.Context,
	filter *order.QueryOrdersModel,
) (int64, error) {
	query := applyOrderFilter(r.sb.Select("count(*)").From("orders"), filter)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}

	return count, nil
}

// UpdateStatus persists a new status for the order.
func (r *PostgresOrderRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status order.Status,
) error {
	sql, args, err := r.sb.
		Update("orders").
		Set("status", status.String()).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	tag, err := r.conn.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return errs.ErrOrderNotFound
	}

	return nil
}

// Delete removes an order. Its items must be deleted first.
func (r *PostgresOrderRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.
		Delete("orders").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	tag, err := r.conn.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return errs.ErrOrderNotFound
	}

	return nil
}

func applyOrderFilter(query sq.SelectBuilder, filter *order.QueryOrdersModel) sq.SelectBuilder {
	if len(filter.Ids) > 0 {
		query = query.Where(sq.Eq{"id": filter.Ids})
	}

	if len(filter.CustomerIds) > 0 {
		query = query.Where(sq.Eq{"customer_id": filter.CustomerIds})
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = s.String()
		}
		query = query.Where(sq.Eq{"status": statuses})
	}

	return query
}

func scanOrderRow(row pgx.Row) (*OrderDal, error) {
	var dal OrderDal
	var createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(
		&dal.Id,
		&dal.CustomerId,
		&dal.Status,
		&dal.TotalPriceCents,
		&dal.TotalPriceCurrency,
		&dal.DeliveryAddress,
		&dal.ContactNumber,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrOrderNotFound
		}

		return nil, err
	}

	dal.CreatedAt = createdAt.Time
	dal.UpdatedAt = updatedAt.Time

	return &dal, nil
}
