package postgresrepo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/feastline/storefront/internal/dal/postgres"
	"github.com/feastline/storefront/internal/service/models/auditlog"
)

// PostgresAuditRepository writes order audit log entries. It runs on the same
// connection as the order mutation so the entry lands in the same transaction.
type PostgresAuditRepository struct {
	conn postgres.Conn
	sb   sq.StatementBuilderType
}

// NewPostgresAuditRepository creates a new Postgres audit repository.
func NewPostgresAuditRepository(conn postgres.Conn) *PostgresAuditRepository {
	return &PostgresAuditRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Insert records an order lifecycle event.
func (r *PostgresAuditRepository) Insert(ctx context.Context, entry auditlog.Entry) error {
	sql, args, err := r.sb.
		Insert("order_audit_log").
		Columns(
			"order_id",
			"customer_id",
			"order_status",
			"changed_by",
			"created_at",
		).
		Values(
			entry.OrderID,
			entry.CustomerID,
			entry.OrderStatus,
			entry.ChangedBy,
			entry.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}

	return nil
}
