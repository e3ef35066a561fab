package iorderrepo

import (
	"context"

	"github.com/feastline/storefront/internal/service/models/order"
)

// IOrderRepository is an interface for the order postgres repository.
type IOrderRepository interface {
	Insert(ctx context.Context, o order.Order) (*order.Order, error)
	Query(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error)
	Count(ctx context.Context, filter *order.QueryOrdersModel) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status order.Status) error
	Delete(ctx context.Context, id int64) error
}
