// internal/router/router.go
package router

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pizza-nz/backoffice-service/internal/api"
	"github.com/pizza-nz/backoffice-service/internal/api/handler"
	"github.com/pizza-nz/backoffice-service/internal/middleware"
	"github.com/pizza-nz/backoffice-service/internal/service"
	"github.com/pizza-nz/backoffice-service/internal/websockets"
)

// HealthChecker reports whether the backing store is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Services bundles the domain services the routes expose
type Services struct {
	Menu         *service.MenuService
	Reservations *service.ReservationService
	Orders       *service.OrderService
	Staff        *service.StaffService
	Dashboard    *service.DashboardService
	Auth         *service.AuthService
}

// Router handles HTTP routing
type Router struct {
	mux      *http.ServeMux
	handler  http.Handler
	services Services
	hub      *websockets.Hub
	health   HealthChecker
	upgrader *websocket.Upgrader
}

// New creates a new router
func New(services Services, hub *websockets.Hub, health HealthChecker, upgrader *websocket.Upgrader) *Router {
	r := &Router{
		mux:      http.NewServeMux(),
		services: services,
		hub:      hub,
		health:   health,
		upgrader: upgrader,
	}

	// Set up routes
	r.setupRoutes()
	r.handler = middleware.Metrics(middleware.Logger(r.mux))

	return r
}

// ServeHTTP implements the http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

// setupRoutes sets up the routes for the router
func (r *Router) setupRoutes() {
	users := handler.NewUserHandler(r.services.Auth)

	// Public routes
	r.mux.HandleFunc("/api/auth/register", users.Register)
	r.mux.HandleFunc("/api/auth/login", users.Login)
	r.mux.Handle("/ws", handler.NewWebSocketHandler(r.hub, r.services.Auth, r.upgrader))
	r.mux.HandleFunc("/healthz", r.handleHealth)
	r.mux.Handle("/metrics", promhttp.Handler())

	// Protected routes
	menu := handler.NewMenuHandler(r.services.Menu, r.hub)
	reservations := handler.NewReservationHandler(r.services.Reservations, r.hub)
	orders := handler.NewOrderHandler(r.services.Orders, r.hub)
	staff := handler.NewStaffHandler(r.services.Staff, r.hub)

	apiHandler := http.NewServeMux()
	apiHandler.HandleFunc("/auth/logout", users.Logout)
	apiHandler.HandleFunc("/auth/session", users.Session)
	apiHandler.HandleFunc("/auth/password", users.ChangePassword)
	apiHandler.HandleFunc("/users", users.HandleUsers)
	apiHandler.HandleFunc("/users/", users.HandleUsers)
	apiHandler.HandleFunc("/menu/items", menu.HandleMenuItems)
	apiHandler.HandleFunc("/menu/items/", menu.HandleMenuItems)
	apiHandler.HandleFunc("/reservations", reservations.HandleReservations)
	apiHandler.HandleFunc("/reservations/", reservations.HandleReservations)
	apiHandler.HandleFunc("/orders", orders.HandleOrders)
	apiHandler.HandleFunc("/orders/", orders.HandleOrders)
	apiHandler.HandleFunc("/staff", staff.HandleStaff)
	apiHandler.HandleFunc("/staff/", staff.HandleStaff)
	apiHandler.Handle("/dashboard", handler.NewDashboardHandler(r.services.Dashboard))
	apiHandler.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		api.NotFound(w)
	})

	// Apply middleware to protected routes
	apiChain := middleware.Auth(r.services.Auth)(apiHandler)

	r.mux.Handle("/api/", http.StripPrefix("/api", apiChain))
}

// HealthResponse reports store reachability and live change-feed clients
type HealthResponse struct {
	Status           string `json:"status"`
	WebsocketClients int    `json:"websocket_clients"`
}

// handleHealth pings the store
func (r *Router) handleHealth(w http.ResponseWriter, req *http.Request) {
	resp := HealthResponse{Status: "ok", WebsocketClients: r.hub.Clients(req.Context())}
	if err := r.health.HealthCheck(req.Context()); err != nil {
		resp.Status = "unavailable"
		api.RespondJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	api.RespondJSON(w, http.StatusOK, resp)
}
