package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"

	"github.com/feastline/storefront/internal/service/models/auth"
	"github.com/feastline/storefront/internal/service/models/menuitem"
	"github.com/feastline/storefront/internal/service/models/order"
	"github.com/feastline/storefront/internal/service/services/menusvc"
	createorder "github.com/feastline/storefront/internal/transport/http/v1/create_order"
	deleteorder "github.com/feastline/storefront/internal/transport/http/v1/delete_order"
	getorder "github.com/feastline/storefront/internal/transport/http/v1/get_order"
	listorders "github.com/feastline/storefront/internal/transport/http/v1/list_orders"
	menuhandlers "github.com/feastline/storefront/internal/transport/http/v1/menu"
	updatestatus "github.com/feastline/storefront/internal/transport/http/v1/update_status"
	"github.com/feastline/storefront/pkg/http/middleware/identity"
	"github.com/feastline/storefront/pkg/http/middleware/trace"
	"github.com/feastline/storefront/pkg/logger"
)

type orderService interface {
	BuildOrder(ctx context.Context, principal auth.Principal, build order.BuildOrderModel) (*order.Order, error)
	SetStatus(ctx context.Context, principal auth.Principal, orderID int64, requested string) (*order.Order, error)
	GetOrders(ctx context.Context, principal auth.Principal, filter order.QueryOrdersModel) ([]order.Order, int64, error)
	GetOrder(ctx context.Context, principal auth.Principal, orderID int64) (*order.Order, error)
	DeleteOrder(ctx context.Context, principal auth.Principal, orderID int64) error
}

type menuService interface {
	Create(ctx context.Context, principal auth.Principal, mi menuitem.MenuItem) (*menuitem.MenuItem, error)
	List(ctx context.Context, principal auth.Principal, filter menuitem.QueryMenuItemsModel) ([]menuitem.MenuItem, error)
	Get(ctx context.Context, id int64) (*menuitem.MenuItem, error)
	Update(ctx context.Context, principal auth.Principal, id int64, patch menusvc.UpdateMenuItemModel) (*menuitem.MenuItem, error)
	Delete(ctx context.Context, principal auth.Principal, id int64) error
}

type HTTPTransport struct {
	server   *http.Server
	router   *chi.Mux
	orderSvc orderService
	menuSvc  menuService
}

func NewHTTPTransport(orderSvc orderService, menuSvc menuService) *HTTPTransport {
	router := newRouter()
	server := newServer(router)

	return &HTTPTransport{
		server:   server,
		router:   router,
		orderSvc: orderSvc,
		menuSvc:  menuSvc,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Route("/api/v1", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.createOrder)
			r.Get("/", h.listOrders)
			r.Get("/{id}", h.getOrder)
			r.Put("/{id}/status", h.updateStatus)
			r.Delete("/{id}", h.deleteOrder)
		})

		r.Route("/menu", func(r chi.Router) {
			r.Get("/", h.listMenuItems)
			r.Post("/", h.createMenuItem)
			r.Get("/{id}", h.getMenuItem)
			r.Put("/{id}", h.updateMenuItem)
			r.Delete("/{id}", h.deleteMenuItem)
		})
	})
}

func (h *HTTPTransport) createOrder(w http.ResponseWriter, r *http.Request) {
	createorder.CreateOrder(w, r, h.orderSvc)
}

func (h *HTTPTransport) listOrders(w http.ResponseWriter, r *http.Request) {
	listorders.ListOrders(w, r, h.orderSvc)
}

func (h *HTTPTransport) getOrder(w http.ResponseWriter, r *http.Request) {
	getorder.GetOrder(w, r, h.orderSvc)
}

func (h *HTTPTransport) updateStatus(w http.ResponseWriter, r *http.Request) {
	updatestatus.UpdateStatus(w, r, h.orderSvc)
}

func (h *HTTPTransport) deleteOrder(w http.ResponseWriter, r *http.Request) {
	deleteorder.DeleteOrder(w, r, h.orderSvc)
}

func (h *HTTPTransport) createMenuItem(w http.ResponseWriter, r *http.Request) {
	menuhandlers.CreateMenuItem(w, r, h.menuSvc)
}

func (h *HTTPTransport) listMenuItems(w http.ResponseWriter, r *http.Request) {
	menuhandlers.ListMenuItems(w, r, h.menuSvc)
}

func (h *HTTPTransport) getMenuItem(w http.ResponseWriter, r *http.Request) {
	menuhandlers.GetMenuItem(w, r, h.menuSvc)
}

func (h *HTTPTransport) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	menuhandlers.UpdateMenuItem(w, r, h.menuSvc)
}

func (h *HTTPTransport) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	menuhandlers.DeleteMenuItem(w, r, h.menuSvc)
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	// CORS must answer preflight requests before the identity check: a
	// browser preflight never carries the identity headers.
	router.Use(c.Handler)

	router.Use(trace.NewTraceMiddleware)
	router.Use(identity.NewIdentityMiddleware)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
