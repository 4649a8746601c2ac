package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	appbeneficiary "github.com/givehope/backend/internal/application/beneficiary"
	appcart "github.com/givehope/backend/internal/application/cart"
	appdonation "github.com/givehope/backend/internal/application/donation"
	"github.com/givehope/backend/internal/infrastructure/auth"
	"github.com/givehope/backend/internal/infrastructure/config"
	"github.com/givehope/backend/internal/infrastructure/logger"
	"github.com/givehope/backend/internal/infrastructure/payment"
	"github.com/givehope/backend/internal/infrastructure/persistence"
	"github.com/givehope/backend/internal/infrastructure/session"
	"github.com/givehope/backend/internal/interfaces/http/handler"
	"github.com/givehope/backend/internal/interfaces/http/middleware"
	"github.com/givehope/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting GiveHope Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Guest cart session store in redis
	cartStore, err := session.NewRedisCartStore(cfg.Redis, cfg.Session)
	if err != nil {
		log.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer func() {
		if err := cartStore.Close(); err != nil {
			log.Error("Error closing redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected successfully")

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	orphanRepo := persistence.NewGormOrphanRepository(db.DB)
	orphanageRepo := persistence.NewGormOrphanageRepository(db.DB)
	_ = orphanageRepo
	campaignRepo := persistence.NewGormCampaignRepository(db.DB)
	donationRepo := persistence.NewGormDonationRepository(db.DB)
	recipientReader := persistence.NewGormRecipientReader(db.DB)

	// Payment provider
	checkoutProvider, err := payment.NewStripeCheckoutProvider(cfg.Stripe, log)
	if err != nil {
		log.Fatal("Failed to configure payment provider", zap.Error(err))
	}

	// Initialize application services
	cartService := appcart.NewService(userRepo, cartStore, recipientReader, cfg.Cart.MaxLines, log)
	checkoutService := appdonation.NewCheckoutService(cartService, checkoutProvider, log)
	reconciliationService := appdonation.NewReconciliationService(
		donationRepo, campaignRepo, checkoutProvider, userRepo, cartStore, log)
	donationQueries := appdonation.NewQueryService(donationRepo)
	campaignService := appbeneficiary.NewCampaignService(campaignRepo)
	orphanService := appbeneficiary.NewOrphanService(orphanRepo)

	// Token verification (tokens are issued by the identity provider, not here)
	verifier := auth.NewJWTVerifier(cfg.JWT)

	// Initialize handlers
	cartHandler := handler.NewCartHandler(cartService)
	donationHandler := handler.NewDonationHandler(checkoutService, reconciliationService, donationQueries)
	campaignHandler := handler.NewCampaignHandler(campaignService)
	orphanHandler := handler.NewOrphanHandler(orphanService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. Session - Guest cart session cookie
	// 8. RateLimit - Apply rate limiting (if enabled)
	// 9. Optional JWT - Resolve user identity when a token is present
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	engine.Use(middleware.SessionMiddleware(cfg.Session))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	engine.Use(middleware.OptionalJWTAuthMiddleware(verifier))

	// Health check endpoint (outside the API group)
	engine.GET("/health", healthHandler(db, log))

	// Setup API routes
	r := router.NewRouter(engine)

	cartRoutes := router.NewDomainGroup("cart", "/cart")
	cartRoutes.GET("", cartHandler.Get)
	cartRoutes.POST("", cartHandler.AddItem)
	cartRoutes.PATCH("/amount", cartHandler.UpdateAmount)
	cartRoutes.DELETE("/:id", cartHandler.RemoveItem)
	cartRoutes.DELETE("", cartHandler.Clear)

	donationRoutes := router.NewDomainGroup("donations", "/donations")
	donationRoutes.POST("/checkout", donationHandler.CreateCheckout)
	donationRoutes.GET("/success", donationHandler.ConfirmCheckout)
	donationRoutes.GET("", donationHandler.List)
	donationRoutes.GET("/user/:id", donationHandler.ListByDonor)
	donationRoutes.GET("/orphanages", donationHandler.OrphanageSummary)
	donationRoutes.GET("/orphanage/:id", donationHandler.ListByOrphanage)

	campaignRoutes := router.NewDomainGroup("campaigns", "/campaigns")
	campaignRoutes.GET("", campaignHandler.List)
	campaignRoutes.GET("/:id", campaignHandler.Get)

	orphanRoutes := router.NewDomainGroup("orphans", "/orphans")
	orphanRoutes.GET("", orphanHandler.List)
	orphanRoutes.GET("/:id", orphanHandler.Get)

	r.Register(cartRoutes).
		Register(donationRoutes).
		Register(campaignRoutes).
		Register(orphanRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
