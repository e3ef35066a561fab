package ordersvc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/feastline/storefront/internal/dal/interfaces/iauditrepo"
	"github.com/feastline/storefront/internal/dal/interfaces/imenurepo"
	"github.com/feastline/storefront/internal/dal/interfaces/iorderitemrepo"
	"github.com/feastline/storefront/internal/dal/interfaces/iorderrepo"
	"github.com/feastline/storefront/internal/dal/interfaces/ioutboxrepo"
	"github.com/feastline/storefront/internal/dal/interfaces/iuserrepo"
	"github.com/feastline/storefront/internal/dal/postgres"
	menurepo "github.com/feastline/storefront/internal/dal/repositories/menuitem/postgres"
	userrepo "github.com/feastline/storefront/internal/dal/repositories/user/postgres"
	"github.com/feastline/storefront/internal/dal/uow"
	"github.com/feastline/storefront/internal/service/errs"
	"github.com/feastline/storefront/internal/service/models/auditlog"
	"github.com/feastline/storefront/internal/service/models/auth"
	"github.com/feastline/storefront/internal/service/models/currency"
	"github.com/feastline/storefront/internal/service/models/menuitem"
	"github.com/feastline/storefront/internal/service/models/order"
	"github.com/feastline/storefront/internal/service/models/orderitem"
	"github.com/feastline/storefront/internal/service/models/outbox"
)

const (
	eventOrderCreated       = "order.created"
	eventOrderStatusChanged = "order.status_changed"

	defaultEventQueue = "storefront.order.events"
	eventMaxRetries   = 5
)

// OrderService builds orders from the catalog and drives their status
// lifecycle. Caller identity is always passed in explicitly.
type OrderService struct {
	pgClient   *postgres.Client
	menuRepo   imenurepo.IMenuItemRepository
	userRepo   iuserrepo.IUserRepository
	uowFactory func() unitOfWork
	eventQueue string
}

type unitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() iorderrepo.IOrderRepository
	OrderItemRepository() iorderitemrepo.IOrderItemRepository
	OutboxRepository() ioutboxrepo.IOutboxRepository
	AuditRepository() iauditrepo.IAuditRepository
}

func (s *OrderService) newUOW() unitOfWork {
	return s.uowFactory()
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{
		eventQueue: defaultEventQueue,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithPostgresClient sets the Postgres client and the default repositories.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *OrderService) {
		s.pgClient = pgClient
		s.menuRepo = menurepo.NewPostgresMenuItemRepository(pgClient.Pool())
		s.userRepo = userrepo.NewPostgresUserRepository(pgClient.Pool())
		s.uowFactory = func() unitOfWork {
			return uow.NewUnitOfWork(pgClient)
		}
	}
}

// WithMenuItemRepository overrides the catalog repository.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithMenuItemRepository(repo imenurepo.IMenuItemRepository) option {
	return func(s *OrderService) {
		s.menuRepo = repo
	}
}

// WithUserRepository overrides the user repository.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithUserRepository(repo iuserrepo.IUserRepository) option {
	return func(s *OrderService) {
		s.userRepo = repo
	}
}

// WithUnitOfWorkFactory overrides the unit of work factory.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithUnitOfWorkFactory(factory func() unitOfWork) option {
	return func(s *OrderService) {
		s.uowFactory = factory
	}
}

// WithEventQueue sets the queue order events are staged for.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithEventQueue(queue string) option {
	return func(s *OrderService) {
		if queue != "" {
			s.eventQueue = queue
		}
	}
}

// BuildOrder resolves current catalog prices for the requested lines, computes
// the snapshot items and total in one pass, and persists the order, its items,
// the audit entry and the outbox event as a single transaction. The returned
// order carries its items and the owning user's summary.
func (s *OrderService) BuildOrder(
	ctx context.Context,
	principal auth.Principal,
	build order.BuildOrderModel,
) (*order.Order, error) {
	ctx, span := otel.Tracer("ordersvc").Start(ctx, "BuildOrder")
	defer span.End()

	lines, err := normalizeLines(build.Lines)
	if err != nil {
		return nil, err
	}

	resolved, err := s.resolveMenuItems(ctx, lines)
	if err != nil {
		return nil, err
	}

	owner, err := s.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	items := make([]orderitem.OrderItem, 0, len(lines))
	var totalCents int64
	for _, line := range lines {
		mi := resolved[line.MenuItemID]
		items = append(items, orderitem.OrderItem{
			MenuItemID:    mi.ID,
			MenuItemName:  mi.Name,
			Quantity:      line.Quantity,
			PriceCents:    mi.PriceCents,
			PriceCurrency: mi.PriceCurrency,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		totalCents += mi.PriceCents * int64(line.Quantity)
	}

	o := order.Order{
		CustomerID:         principal.UserID,
		Status:             order.StatusPending,
		TotalPriceCents:    totalCents,
		TotalPriceCurrency: currency.Default,
		DeliveryAddress:    build.DeliveryAddress,
		ContactNumber:      build.ContactNumber,
		CreatedAt:          now,
		UpdatedAt:          now,
		OrderItems:         items,
	}

	work := s.newUOW()
	if err := work.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = work.Rollback(ctx) }()

	created, err := work.OrderRepository().Insert(ctx, o)
	if err != nil {
		return nil, err
	}

	for i := range items {
		items[i].OrderID = created.ID
	}
	insertedItems, err := work.OrderItemRepository().BulkInsert(ctx, items)
	if err != nil {
		return nil, err
	}
	created.OrderItems = insertedItems

	if err := work.AuditRepository().Insert(ctx, auditlog.Entry{
		OrderID:     created.ID,
		CustomerID:  created.CustomerID,
		OrderStatus: created.Status.String(),
		ChangedBy:   principal.UserID,
		CreatedAt:   now,
	}); err != nil {
		return nil, err
	}

	if err := s.stageEvent(ctx, work, eventOrderCreated, created); err != nil {
		return nil, err
	}

	if err := work.Commit(ctx); err != nil {
		return nil, err
	}

	created.User = owner

	return created, nil
}

// SetStatus transitions an existing order to the requested status. Only
// administrators may transition; terminal orders never move.
func (s *OrderService) SetStatus(
	ctx context.Context,
	principal auth.Principal,
	orderID int64,
	requested string,
) (*order.Order, error) {
	ctx, span := otel.Tracer("ordersvc").Start(ctx, "SetStatus")
	defer span.End()

	if !principal.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	target, err := order.ParseStatus(requested)
	if err != nil {
		return nil, err
	}

	current, err := s.getOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransitionTo(target) {
		return nil, &errs.InvalidTransitionError{
			From: current.Status.String(),
			To:   target.String(),
		}
	}

	work := s.newUOW()
	if err := work.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = work.Rollback(ctx) }()

	if err := work.OrderRepository().UpdateStatus(ctx, orderID, target); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := work.AuditRepository().Insert(ctx, auditlog.Entry{
		OrderID:     current.ID,
		CustomerID:  current.CustomerID,
		OrderStatus: target.String(),
		ChangedBy:   principal.UserID,
		CreatedAt:   now,
	}); err != nil {
		return nil, err
	}

	current.Status = target
	current.UpdatedAt = now

	if err := s.stageEvent(ctx, work, eventOrderStatusChanged, current); err != nil {
		return nil, err
	}

	if err := work.Commit(ctx); err != nil {
		return nil, err
	}

	if owner, err := s.userRepo.GetByID(ctx, current.CustomerID); err == nil {
		current.User = owner
	} else {
		slog.Warn("Failed to load order owner summary",
			"order_id", current.ID, "customer_id", current.CustomerID, "error", err)
	}

	return current, nil
}

// GetOrders retrieves orders with their items. Non-administrative callers only
// ever see their own orders regardless of the requested filter.
func (s *OrderService) GetOrders(
	ctx context.Context,
	principal auth.Principal,
	filter order.QueryOrdersModel,
) ([]order.Order, int64, error) {
	if !principal.IsAdmin() {
		filter.CustomerIds = []int64{principal.UserID}
	}

	work := s.newUOW()

	orders, err := work.OrderRepository().Query(ctx, &filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := work.OrderRepository().Count(ctx, &filter)
	if err != nil {
		return nil, 0, err
	}

	if len(orders) == 0 {
		return []order.Order{}, total, nil
	}

	itemFilter := &orderitem.QueryOrderItemsModel{}
	for _, o := range orders {
		itemFilter.OrderIds = append(itemFilter.OrderIds, o.ID)
	}
	items, err := work.OrderItemRepository().Query(ctx, itemFilter)
	if err != nil {
		return nil, 0, err
	}

	for i := range orders {
		for _, item := range items {
			if item.OrderID == orders[i].ID {
				orders[i].OrderItems = append(orders[i].OrderItems, item)
			}
		}
	}

	return orders, total, nil
}

// GetOrder retrieves a single order with items and user summary. Reads are
// permitted to the owning user and to administrators.
func (s *OrderService) GetOrder(
	ctx context.Context,
	principal auth.Principal,
	orderID int64,
) (*order.Order, error) {
	o, err := s.getOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if o.CustomerID != principal.UserID && !principal.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	if owner, err := s.userRepo.GetByID(ctx, o.CustomerID); err == nil {
		o.User = owner
	} else {
		slog.Warn("Failed to load order owner summary",
			"order_id", o.ID, "customer_id", o.CustomerID, "error", err)
	}

	return o, nil
}

// DeleteOrder removes an order and its items. Administrators only.
func (s *OrderService) DeleteOrder(
	ctx context.Context,
	principal auth.Principal,
	orderID int64,
) error {
	if !principal.IsAdmin() {
		return errs.ErrForbidden
	}

	if _, err := s.getOrderByID(ctx, orderID); err != nil {
		return err
	}

	work := s.newUOW()
	if err := work.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = work.Rollback(ctx) }()

	if err := work.OrderItemRepository().DeleteByOrderID(ctx, orderID); err != nil {
		return err
	}

	if err := work.OrderRepository().Delete(ctx, orderID); err != nil {
		return err
	}

	return work.Commit(ctx)
}

// getOrderByID loads one order with its items, without access checks.
func (s *OrderService) getOrderByID(ctx context.Context, orderID int64) (*order.Order, error) {
	work := s.newUOW()

	orders, err := work.OrderRepository().Query(ctx, &order.QueryOrdersModel{Ids: []int64{orderID}})
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, errs.ErrOrderNotFound
	}

	o := orders[0]
	items, err := work.OrderItemRepository().Query(ctx, &orderitem.QueryOrderItemsModel{
		OrderIds: []int64{o.ID},
	})
	if err != nil {
		return nil, err
	}
	o.OrderItems = items

	return &o, nil
}

// normalizeLines validates the line requests and applies the default quantity.
func normalizeLines(lines []order.LineRequest) ([]order.LineRequest, error) {
	if len(lines) == 0 {
		return nil, errs.ErrEmptyOrder
	}

	out := make([]order.LineRequest, len(lines))
	for i, line := range lines {
		quantity := line.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if quantity < 1 {
			return nil, &errs.InvalidQuantityError{Index: i, Quantity: line.Quantity}
		}
		out[i] = order.LineRequest{MenuItemID: line.MenuItemID, Quantity: quantity}
	}

	return out, nil
}

// resolveMenuItems looks up every distinct referenced menu item. A single
// unknown id fails the whole build before anything is written.
func (s *OrderService) resolveMenuItems(
	ctx context.Context,
	lines []order.LineRequest,
) (map[int64]menuitem.MenuItem, error) {
	ids := make([]int64, 0, len(lines))
	seen := make(map[int64]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.MenuItemID]; ok {
			continue
		}
		seen[line.MenuItemID] = struct{}{}
		ids = append(ids, line.MenuItemID)
	}

	found, err := s.menuRepo.Query(ctx, &menuitem.QueryMenuItemsModel{Ids: ids})
	if err != nil {
		return nil, err
	}

	resolved := make(map[int64]menuitem.MenuItem, len(found))
	for _, mi := range found {
		resolved[mi.ID] = mi
	}

	for _, id := range ids {
		if _, ok := resolved[id]; !ok {
			return nil, &errs.LineItemNotFoundError{MenuItemID: id}
		}
	}

	return resolved, nil
}

// stageEvent serializes the order into the outbox within the open transaction.
func (s *OrderService) stageEvent(
	ctx context.Context,
	work unitOfWork,
	eventType string,
	o *order.Order,
) error {
	payload, err := json.Marshal(struct {
		Type  string      `json:"type"`
		Order order.Order `json:"order"`
	}{
		Type:  eventType,
		Order: *o,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}

	now := time.Now()

	return work.OutboxRepository().Insert(ctx, outbox.Message{
		QueueName:   s.eventQueue,
		RoutingKey:  s.eventQueue,
		Payload:     payload,
		ContentType: "application/json",
		MaxRetries:  eventMaxRetries,
		CreatedAt:   now,
		UpdatedAt:   now,
		NextRetryAt: now,
	})
}
