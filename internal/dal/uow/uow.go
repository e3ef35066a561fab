package uow

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/feastline/storefront/internal/dal/interfaces/iauditrepo"
	"github.com/feastline/storefront/internal/dal/interfaces/iorderitemrepo"
	"github.com/feastline/storefront/internal/dal/interfaces/iorderrepo"
	"github.com/feastline/storefront/internal/dal/interfaces/ioutboxrepo"
	"github.com/feastline/storefront/internal/dal/postgres"
	auditrepo "github.com/feastline/storefront/internal/dal/repositories/audit/postgres"
	orderrepo "github.com/feastline/storefront/internal/dal/repositories/order/postgres"
	orderitemrepo "github.com/feastline/storefront/internal/dal/repositories/orderitem/postgres"
	outboxrepo "github.com/feastline/storefront/internal/dal/repositories/outbox/postgres"
)

// unitOfWork groups the repositories touched by a single order mutation on one
// pgx transaction, so the order, its items, the outbox message and the audit
// entry commit or roll back as one unit.
type unitOfWork struct {
	client *postgres.Client
	tx     pgx.Tx

	orderRepo     iorderrepo.IOrderRepository
	orderItemRepo iorderitemrepo.IOrderItemRepository
	outboxRepo    ioutboxrepo.IOutboxRepository
	auditRepo     iauditrepo.IAuditRepository
}

func NewUnitOfWork(client *postgres.Client) *unitOfWork {
	return &unitOfWork{
		client:        client,
		orderRepo:     orderrepo.NewPostgresOrderRepository(client.Pool()),
		orderItemRepo: orderitemrepo.NewPostgresOrderItemRepository(client.Pool()),
		outboxRepo:    outboxrepo.NewPostgresOutboxRepository(client.Pool()),
		auditRepo:     auditrepo.NewPostgresAuditRepository(client.Pool()),
	}
}

func (u *unitOfWork) OrderRepository() iorderrepo.IOrderRepository {
	return u.orderRepo
}

func (u *unitOfWork) OrderItemRepository() iorderitemrepo.IOrderItemRepository {
	return u.orderItemRepo
}

func (u *unitOfWork) OutboxRepository() ioutboxrepo.IOutboxRepository {
	return u.outboxRepo
}

func (u *unitOfWork) AuditRepository() iauditrepo.IAuditRepository {
	return u.auditRepo
}

func (u *unitOfWork) Begin(ctx context.Context) error {
	tx, err := u.client.Pool().Begin(ctx)
	if err != nil {
		return err
	}

	u.tx = tx
	u.orderRepo = orderrepo.NewPostgresOrderRepository(tx)
	u.orderItemRepo = orderitemrepo.NewPostgresOrderItemRepository(tx)
	u.outboxRepo = outboxrepo.NewPostgresOutboxRepository(tx)
	u.auditRepo = auditrepo.NewPostgresAuditRepository(tx)

	return nil
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}

	return u.tx.Commit(ctx)
}

func (u *unitOfWork) Rollback(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}

	return u.tx.Rollback(ctx)
}
