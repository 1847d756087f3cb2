package main

import (
	"storefront-service/internal/handler"
	mid "storefront-service/internal/middleware"
	"storefront-service/internal/model"
	"storefront-service/pkg/config"
	"storefront-service/pkg/database"
	"storefront-service/pkg/jwtutil"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	appConfig, err := config.Load("storefront-service")
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting storefront-service", appConfig.LogConfig()...)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if _, err := database.InitDB(&appConfig.DB); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	if err := database.MigrateModels(
		&model.Store{},
		&model.Product{},
		&model.Order{},
		&model.Integration{},
		&model.FeedPost{},
		&model.Like{},
	); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database migrations completed")

	// Initialize JWT utility
	jwtUtil := jwtutil.NewJWTUtil(&appConfig.JWT)

	handler.Configure(appConfig)
	handler.SetRecentOrderWindow(appConfig.Dashboard.RecentOrderWindow)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.Health)

	auth := mid.JWTAuthMiddleware(jwtUtil)

	// Store API routes
	storeAPI := e.Group("/api/stores", auth)
	storeAPI.POST("", handler.CreateStore)
	storeAPI.GET("/me", handler.GetMyStore)
	storeAPI.PUT("/me", handler.UpdateMyStore)

	// Product API routes
	productAPI := e.Group("/api/products", auth)
	productAPI.GET("", handler.ListProducts)
	productAPI.GET("/:id", handler.GetProduct)
	productAPI.POST("", handler.CreateProduct)
	productAPI.PUT("/:id", handler.UpdateProduct)
	productAPI.DELETE("/:id", handler.DeleteProduct)
	productAPI.POST("/:id/publish", handler.PublishProduct)
	productAPI.GET("/:id/share", handler.ShareProduct)

	// Order API routes
	orderAPI := e.Group("/api/orders", auth)
	orderAPI.GET("", handler.ListOrders)
	orderAPI.POST("", handler.CreateOrder)
	orderAPI.PUT("/:id/status", handler.UpdateOrderStatus)

	// Integration API routes
	integrationAPI := e.Group("/api/integrations", auth)
	integrationAPI.GET("", handler.ListIntegrations)
	integrationAPI.POST("", handler.CreateIntegration)
	integrationAPI.DELETE("/:id", handler.DeleteIntegration)
	integrationAPI.POST("/:id/sync", handler.SyncIntegration)
	integrationAPI.POST("/:id/toggle", handler.ToggleIntegration)

	// Dashboard
	e.GET("/api/dashboard", handler.GetDashboard, auth)

	// Public sales feed and marketplace
	e.GET("/api/feed", handler.ListFeed)
	e.POST("/api/feed/:id/view", handler.BumpFeedView)
	e.POST("/api/feed/:id/share", handler.BumpFeedShare)
	e.POST("/api/feed/:id/like", handler.ToggleFeedLike, auth)
	e.GET("/api/marketplace/products", handler.ListMarketplaceProducts)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
