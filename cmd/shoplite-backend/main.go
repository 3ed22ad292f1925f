package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shoplite/shoplite-backend/internal/api/handlers"
	"github.com/shoplite/shoplite-backend/internal/api/middleware"
	"github.com/shoplite/shoplite-backend/internal/cache"
	"github.com/shoplite/shoplite-backend/internal/config"
	"github.com/shoplite/shoplite-backend/internal/health"
	"github.com/shoplite/shoplite-backend/internal/metrics"
	repository "github.com/shoplite/shoplite-backend/internal/repositories"
	"github.com/shoplite/shoplite-backend/internal/scan"
	service "github.com/shoplite/shoplite-backend/internal/services"
	"github.com/shoplite/shoplite-backend/internal/telemetry"
	"github.com/shoplite/shoplite-backend/pkg/upi"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing (no-op without an endpoint)
	shutdownTracing, err := telemetry.Setup(context.Background(), cfg)
	if err != nil {
		slog.Error("Error setting up tracing", "error", err.Error())
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	sessionCache := cache.NewRedisCache(redisClient, cfg.Session.TTL)
	sessions := cache.NewSessionStore(sessionCache, cfg.Session.TTL)
	rateLimiter := repository.NewRateLimitRepo(redisClient, cfg)
	deduper := scan.NewDeduper(cfg.Scan.DedupeWindow)
	payee := upi.NewPayee(cfg.UPI.PayeeVPA, cfg.UPI.PayeeName)

	sessionService := service.NewSessionService(repos.Shop, repos.Product, sessions)
	shopService := service.NewShopService(repos.Shop)
	productService := service.NewProductService(repos.Product)
	cartService := service.NewCartService(repos.Product, sessions)
	orderService := service.NewOrderService(repos.Order, sessions, payee)
	adminService := service.NewAdminService(rateLimiter, &cfg.Admin)

	sessionHandler := handlers.NewSessionHandler(sessionService, deduper)
	catalogHandler := handlers.NewCatalogHandler(productService, shopService)
	cartHandler := handlers.NewCartHandler(cartService)
	scanHandler := handlers.NewScanHandler(cartService, deduper)
	orderHandler := handlers.NewOrderHandler(orderService)
	adminHandler := handlers.NewAdminHandler(adminService, orderService, productService)

	sessionMiddleware := middleware.NewSessionMiddleware(sessions)
	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Admin.JWTKey))

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Error setting up health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/sessions", sessionHandler.Login())
	routerMux.HandleFunc("DELETE /api/v1/sessions", sessionMiddleware.Resolve(sessionHandler.Logout()))
	routerMux.HandleFunc("GET /api/v1/sessions/current", sessionMiddleware.Resolve(sessionHandler.Current()))
	routerMux.HandleFunc("GET /api/v1/shops", catalogHandler.ListShops())
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("POST /api/v1/scan", sessionMiddleware.Resolve(scanHandler.Scan()))
	routerMux.HandleFunc("GET /api/v1/cart", sessionMiddleware.Resolve(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/v1/cart/items", sessionMiddleware.Resolve(cartHandler.AddItem()))
	routerMux.HandleFunc("PUT /api/v1/cart/items", sessionMiddleware.Resolve(cartHandler.UpdateQuantity()))
	routerMux.HandleFunc("POST /api/v1/checkout", sessionMiddleware.Resolve(orderHandler.Checkout()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}", sessionMiddleware.Resolve(orderHandler.GetOrder()))
	routerMux.HandleFunc("POST /api/v1/orders/{id}/payment-confirmation", sessionMiddleware.Resolve(orderHandler.ConfirmPayment()))

	routerMux.HandleFunc("POST /api/v1/admin/login", adminHandler.Login())
	routerMux.HandleFunc("GET /api/v1/admin/orders", authMiddleware.Authenticate(adminHandler.ListOrders()))
	routerMux.HandleFunc("PATCH /api/v1/admin/orders/{id}/status", authMiddleware.Authenticate(adminHandler.UpdateOrderStatus()))
	routerMux.HandleFunc("PATCH /api/v1/admin/products/{id}", authMiddleware.Authenticate(adminHandler.UpdateProduct()))
	routerMux.HandleFunc("POST /api/v1/admin/products/{id}/toggle", authMiddleware.Authenticate(adminHandler.ToggleProduct()))
	routerMux.HandleFunc("GET /api/v1/admin/analytics", authMiddleware.Authenticate(adminHandler.Analytics()))

	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)
	handler = otelhttp.NewHandler(handler, "shoplite-backend")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed.")
	}

	if shutdownTracing != nil {
		if err := shutdownTracing(shutdownCtx); err != nil {
			slog.Error("Tracer shutdown encountered an issue", slog.String("error", err.Error()))
		}
	}

}
