package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/shopdarven/storefront/internal/api/handlers"
	"github.com/shopdarven/storefront/internal/api/middleware"
	"github.com/shopdarven/storefront/internal/cache"
	"github.com/shopdarven/storefront/internal/cart"
	"github.com/shopdarven/storefront/internal/config"
	"github.com/shopdarven/storefront/internal/health"
	"github.com/shopdarven/storefront/internal/metrics"
	"github.com/shopdarven/storefront/internal/pricing"
	repository "github.com/shopdarven/storefront/internal/repositories"
	service "github.com/shopdarven/storefront/internal/services"
	"github.com/shopdarven/storefront/internal/tracing"
	"github.com/shopdarven/storefront/internal/utils"
	"github.com/shopdarven/storefront/pkg/sendgrid"
	"github.com/shopdarven/storefront/pkg/shopapi"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	shutdownTracing, err := tracing.Init(ctx, cfg.Otel, cfg.Env)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Cart, catalog cache, checkout locks and login throttling share one store
	var store cache.Cache
	var limiter repository.RateLimitRepository

	useRedis := cfg.Cart.Backend == "redis"

	if useRedis {
		redisClient, err := repository.NewRedisClient(cfg)
		if err != nil {
			slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
			os.Exit(1)
		}

		store = cache.NewRedisCache(redisClient, &cfg.Cache)
		limiter = repository.NewRateLimitRepo(redisClient, cfg.RateConfig)
	} else {
		slog.Warn("Using in-memory cart storage, carts are lost on restart")
		store = cache.NewMemoryCache(cfg.Cache.DefaultTTL)
	}

	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("⚠️ Error closing cart storage", slog.String("error", err.Error()))
		}
	}()

	// Receipts are best effort, the storefront runs without the database
	var receipts service.ReceiptRepository

	repos, err := repository.New(ctx, cfg)
	if err != nil {
		slog.Warn("⚠️ Database unavailable, receipts will not be recorded", slog.String("error", err.Error()))
	} else {
		receipts = repos.Receipt

		defer func() {
			if err := repos.Close(); err != nil {
				slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
			} else {
				slog.Info("✅ Database connection closed")
			}
		}()
	}

	var mailer sendgrid.EmailService
	if cfg.SendGrid.APIKey != "" {
		mailer = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	} else {
		slog.Warn("SendGrid is not configured, order notices and contact messages are disabled")
	}

	shopClient := shopapi.NewClient(cfg.ShopAPI.BaseURL, cfg.ShopAPI.Timeout)
	composer := pricing.NewComposer(cfg.Pricing)
	persister := cart.NewPersister(store, cfg.Cart.TTL)
	secureCookies := !cfg.Security.InsecureCookies

	catalogService := service.NewCatalogService(shopClient, store, cfg.Cache.DefaultTTL, shopClient.BaseURL())
	cartService := service.NewCartService(persister, catalogService, composer, utils.NewValidator(), cfg.Pricing.MeterStep)
	checkoutService := service.NewCheckoutService(persister, store, shopClient, receipts, mailer, composer, service.CheckoutConfig{
		RedirectAfter: cfg.Checkout.RedirectAfter,
		LockTTL:       cfg.Checkout.LockTTL,
		ShopInbox:     cfg.SendGrid.ShopInbox,
	})
	contactService := service.NewContactService(mailer, cfg.SendGrid.ShopInbox)
	adminService := service.NewAdminService(shopClient, catalogService, limiter)

	cartHandler := handlers.NewCartHandler(cartService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	contactHandler := handlers.NewContactHandler(contactService)
	adminHandler := handlers.NewAdminHandler(adminService, secureCookies)

	adminAuth := middleware.NewAdminAuth([]byte(cfg.Security.AdminJWTKey), secureCookies)
	cartSession := middleware.NewCartSession(cfg.Cart.TTL, secureCookies)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{ShopAPI: shopClient, UseRedis: useRedis})
	if err != nil {
		slog.Error("❌ Error setting up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("cartBackend", cfg.Cart.Backend))

	// Setup router
	routerMux := http.NewServeMux()

	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart())
	routerMux.HandleFunc("POST /api/v1/cart/items/ready-made", cartHandler.AddReadyMade())
	routerMux.HandleFunc("POST /api/v1/cart/items/fabric", cartHandler.AddFabric())
	routerMux.HandleFunc("POST /api/v1/cart/items/custom", cartHandler.AddCustom())
	routerMux.HandleFunc("PATCH /api/v1/cart/items/{id}", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("POST /api/v1/checkout", checkoutHandler.Checkout())

	routerMux.HandleFunc("GET /api/v1/catalog/ready-made", catalogHandler.ListReadyMade())
	routerMux.HandleFunc("GET /api/v1/catalog/ready-made/{id}", catalogHandler.GetReadyMade())
	routerMux.HandleFunc("GET /api/v1/catalog/ready-made/{id}/related", catalogHandler.RelatedReadyMade())
	routerMux.HandleFunc("GET /api/v1/catalog/fabrics", catalogHandler.ListFabrics())
	routerMux.HandleFunc("GET /api/v1/catalog/fabrics/{id}", catalogHandler.GetFabric())
	routerMux.HandleFunc("GET /api/v1/catalog/custom-fabrics", catalogHandler.ListCustomFabrics())
	routerMux.HandleFunc("GET /api/v1/catalog/custom-fabrics/{id}", catalogHandler.GetCustomFabric())
	routerMux.HandleFunc("GET /api/v1/catalog/landing-images", catalogHandler.ListLandingImages())

	routerMux.HandleFunc("POST /api/v1/contact", contactHandler.Submit())

	routerMux.HandleFunc("POST /api/v1/admin/login", adminHandler.Login())
	routerMux.HandleFunc("POST /api/v1/admin/logout", adminHandler.Logout())
	routerMux.HandleFunc("GET /api/v1/admin/verify", adminAuth.Authenticate(adminHandler.Verify()))
	routerMux.HandleFunc("GET /api/v1/admin/revenue", adminAuth.Authenticate(adminHandler.Revenue()))
	routerMux.HandleFunc("GET /api/v1/admin/orders", adminAuth.Authenticate(adminHandler.ListOrders()))
	routerMux.HandleFunc("GET /api/v1/admin/orders/{id}", adminAuth.Authenticate(adminHandler.GetOrder()))
	routerMux.HandleFunc("PATCH /api/v1/admin/orders/{id}", adminAuth.Authenticate(adminHandler.UpdateOrderStatus()))
	routerMux.HandleFunc("DELETE /api/v1/admin/orders/{id}", adminAuth.Authenticate(adminHandler.DeleteOrder()))
	routerMux.HandleFunc("POST /api/v1/admin/ready-made", adminAuth.Authenticate(adminHandler.CreateReadyMade()))
	routerMux.HandleFunc("PUT /api/v1/admin/ready-made/{id}", adminAuth.Authenticate(adminHandler.UpdateReadyMade()))
	routerMux.HandleFunc("DELETE /api/v1/admin/ready-made/{id}", adminAuth.Authenticate(adminHandler.DeleteReadyMade()))
	routerMux.HandleFunc("POST /api/v1/admin/fabrics", adminAuth.Authenticate(adminHandler.CreateFabric()))
	routerMux.HandleFunc("PUT /api/v1/admin/fabrics/{id}", adminAuth.Authenticate(adminHandler.UpdateFabric()))
	routerMux.HandleFunc("DELETE /api/v1/admin/fabrics/{id}", adminAuth.Authenticate(adminHandler.DeleteFabric()))
	routerMux.HandleFunc("POST /api/v1/admin/custom-fabrics", adminAuth.Authenticate(adminHandler.CreateCustomFabric()))
	routerMux.HandleFunc("PUT /api/v1/admin/custom-fabrics/{id}", adminAuth.Authenticate(adminHandler.UpdateCustomFabric()))
	routerMux.HandleFunc("DELETE /api/v1/admin/custom-fabrics/{id}", adminAuth.Authenticate(adminHandler.DeleteCustomFabric()))
	routerMux.HandleFunc("POST /api/v1/admin/landing-images/{category}", adminAuth.Authenticate(adminHandler.UpdateLandingImage()))
	routerMux.HandleFunc("POST /api/v1/admin/landing-images/{category}/portrait/{id}", adminAuth.Authenticate(adminHandler.UpdateLandingPortrait()))
	routerMux.HandleFunc("DELETE /api/v1/admin/landing-images/{id}", adminAuth.Authenticate(adminHandler.DeleteLandingImage()))

	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining, outermost last
	var handler http.Handler = metrics.Middleware(routerMux)
	handler = cartSession.Handle(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "storefront")

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
			done <- syscall.SIGTERM
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
