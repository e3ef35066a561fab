package postgresrepo

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/feastline/storefront/internal/dal/postgres"
	"github.com/feastline/storefront/internal/service/errs"
	"github.com/feastline/storefront/internal/service/models/user"
)

// PostgresUserRepository reads user summaries for embedding in order
// responses. User accounts are written by the identity collaborator, not here.
type PostgresUserRepository struct {
	conn postgres.Conn
	sb   sq.StatementBuilderType
}

// NewPostgresUserRepository creates a new Postgres user repository.
func NewPostgresUserRepository(conn postgres.Conn) *PostgresUserRepository {
	return &PostgresUserRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GetByID returns the summary of a single user.
func (r *PostgresUserRepository) GetByID(ctx context.Context, id int64) (*user.Summary, error) {
	sql, args, err := r.sb.
		Select("id", "name", "email").
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var summary user.Summary
	err = r.conn.QueryRow(ctx, sql, args...).Scan(&summary.ID, &summary.Name, &summary.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &summary, nil
}
