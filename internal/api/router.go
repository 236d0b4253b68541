package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"rostershop/internal/api/handler"
	"rostershop/internal/api/middleware"
	"rostershop/internal/metrics"
	"rostershop/internal/services/account"
	"rostershop/internal/services/roster"
	"rostershop/internal/services/shop"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	Metrics          *metrics.Metrics
	RosterController *roster.Controller
	ShopService      *shop.Service
	AccountService   *account.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.RosterController)
	shopHandler := handler.NewShopHandler(cfg.ShopService)
	accountHandler := handler.NewAccountHandler(cfg.AccountService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	metricsMiddleware := middleware.Metrics(cfg.Metrics)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)
	api.Use(metricsMiddleware)

	// Roster routes
	api.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players", playerHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/players/filter/{country}", playerHandler.FilterByCountry).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Delete).Methods(http.MethodDelete)

	// Shop routes
	api.HandleFunc("/products", shopHandler.AddProduct).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}", shopHandler.GetProduct).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}/price", shopHandler.GetPrice).Methods(http.MethodGet)
	api.HandleFunc("/orders", shopHandler.Order).Methods(http.MethodPost)

	// Account routes
	api.HandleFunc("/users/register", accountHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/login", accountHandler.Login).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Prometheus scrape endpoint, outside the API middleware chain
	r.Handle("/metrics", cfg.Metrics.Handler()).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
