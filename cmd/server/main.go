package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	diningapp "github.com/dinehub/backend/internal/application/dining"
	inventoryapp "github.com/dinehub/backend/internal/application/inventory"
	partnerapp "github.com/dinehub/backend/internal/application/partner"
	purchasingapp "github.com/dinehub/backend/internal/application/purchasing"
	"github.com/dinehub/backend/internal/infrastructure/auth"
	"github.com/dinehub/backend/internal/infrastructure/config"
	"github.com/dinehub/backend/internal/infrastructure/event"
	"github.com/dinehub/backend/internal/infrastructure/logger"
	"github.com/dinehub/backend/internal/infrastructure/persistence"
	"github.com/dinehub/backend/internal/interfaces/http/handler"
	"github.com/dinehub/backend/internal/interfaces/http/middleware"
	"github.com/dinehub/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
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
	defer func() { _ = logger.Sync(log) }()

	log.Info("Starting dinehub backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database with a zap-backed gorm logger
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	if err := persistence.AutoMigrate(db.DB); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database migrations applied")

	// Domain event bus with the low-stock subscriber
	eventBus := event.NewInMemoryEventBus(log)
	lowStockHandler := inventoryapp.NewLowStockAlertHandler(log)
	eventBus.Subscribe(lowStockHandler)

	// Repositories
	itemRepo := persistence.NewGormItemRepository(db.DB)
	batchRepo := persistence.NewGormStockBatchRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	purchaseRepo := persistence.NewGormPurchaseRepository(db.DB)
	sectionRepo := persistence.NewGormSectionRepository(db.DB)
	tableRepo := persistence.NewGormTableRepository(db.DB)
	menuItemRepo := persistence.NewGormMenuItemRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)

	// Transaction scopes for multi-repository mutations
	inventoryScope := persistence.NewGormInventoryTransactionScope(db.DB)
	purchasingScope := persistence.NewGormPurchasingTransactionScope(db.DB)
	diningScope := persistence.NewGormDiningTransactionScope(db.DB)

	// Application services
	itemService := inventoryapp.NewItemService(itemRepo, batchRepo)
	itemService.SetEventPublisher(eventBus)

	consumptionService := inventoryapp.NewConsumptionService(inventoryScope)
	consumptionService.SetEventPublisher(eventBus)

	purchaseService := purchasingapp.NewPurchaseService(purchasingScope, purchaseRepo, supplierRepo)
	purchaseService.SetEventPublisher(eventBus)

	supplierService := partnerapp.NewSupplierService(supplierRepo)
	sectionService := diningapp.NewSectionService(sectionRepo, tableRepo, menuItemRepo)
	tableService := diningapp.NewTableService(tableRepo, sectionRepo)
	menuService := diningapp.NewMenuService(menuItemRepo, sectionRepo, itemRepo)

	orderService := diningapp.NewOrderService(diningScope, orderRepo, sectionRepo)
	orderService.SetEventPublisher(eventBus)

	// Auth
	jwtService := auth.NewJWTService(cfg.JWT)

	// Handlers
	authHandler := handler.NewAuthHandler(jwtService, cfg.JWT)
	inventoryHandler := handler.NewInventoryHandler(itemService, consumptionService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	sectionHandler := handler.NewSectionHandler(sectionService)
	tableHandler := handler.NewTableHandler(tableService)
	menuHandler := handler.NewMenuHandler(menuService)
	orderHandler := handler.NewOrderHandler(orderService)
	systemHandler := handler.NewSystemHandler(db)

	// HTTP engine and global middleware
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
	}

	engine.GET("/healthz", systemHandler.Health)

	// API routes
	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.Logger = log

	r := router.NewRouter(engine, router.WithAPIVersion("v1")).
		Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	adminOnly := middleware.RequireRoles(auth.RoleAdmin)
	kitchenRoles := middleware.RequireRoles(auth.RoleAdmin, auth.RoleStaff, auth.RoleOperation)
	orderRoles := middleware.RequireRoles(auth.RoleAdmin, auth.RoleWaiter, auth.RoleCustomer)

	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/token", authHandler.IssueToken)
	authRoutes.POST("/refresh", authHandler.Refresh)

	inventoryRoutes := router.NewDomainGroup("inventory", "/inventory")
	inventoryRoutes.POST("", adminOnly, inventoryHandler.Create)
	inventoryRoutes.GET("", inventoryHandler.List)
	inventoryRoutes.GET("/items", inventoryHandler.Search)
	inventoryRoutes.GET("/batches/:id", inventoryHandler.BatchHistory)
	inventoryRoutes.POST("/consume", kitchenRoles, inventoryHandler.Consume)
	inventoryRoutes.GET("/:id", inventoryHandler.GetByID)
	inventoryRoutes.PUT("/:id", adminOnly, inventoryHandler.Update)
	inventoryRoutes.DELETE("/:id", adminOnly, inventoryHandler.Delete)

	purchaseRoutes := router.NewDomainGroup("purchase", "/purchase")
	purchaseRoutes.POST("", adminOnly, purchaseHandler.Create)
	purchaseRoutes.PUT("/export/:id", adminOnly, purchaseHandler.Export)
	purchaseRoutes.GET("/supplier/:id", purchaseHandler.GetBySupplier)
	purchaseRoutes.GET("/:id", purchaseHandler.GetByID)
	purchaseRoutes.PUT("/:id", adminOnly, purchaseHandler.Update)
	purchaseRoutes.DELETE("/:id", adminOnly, purchaseHandler.Delete)

	supplierRoutes := router.NewDomainGroup("suppliers", "/suppliers")
	supplierRoutes.POST("", adminOnly, supplierHandler.Create)
	supplierRoutes.GET("", supplierHandler.List)
	supplierRoutes.GET("/:id", supplierHandler.GetByID)
	supplierRoutes.PUT("/:id", adminOnly, supplierHandler.Update)
	supplierRoutes.PATCH("/:id/status", adminOnly, supplierHandler.SetStatus)
	supplierRoutes.DELETE("/:id", adminOnly, supplierHandler.Delete)

	sectionRoutes := router.NewDomainGroup("sections", "/sections")
	sectionRoutes.POST("", adminOnly, sectionHandler.Create)
	sectionRoutes.GET("", sectionHandler.List)
	sectionRoutes.GET("/:id", sectionHandler.GetByID)
	sectionRoutes.PUT("/:id", adminOnly, sectionHandler.Update)
	sectionRoutes.DELETE("/:id", adminOnly, sectionHandler.Delete)

	tableRoutes := router.NewDomainGroup("tables", "/tables")
	tableRoutes.POST("", adminOnly, tableHandler.Create)
	tableRoutes.GET("", tableHandler.List)
	tableRoutes.GET("/:id", tableHandler.GetByID)
	tableRoutes.PUT("/:id", adminOnly, tableHandler.Update)
	tableRoutes.PATCH("/:id/status", tableHandler.SetStatus)
	tableRoutes.DELETE("/:id", adminOnly, tableHandler.Delete)

	menuRoutes := router.NewDomainGroup("menu", "/menu")
	menuRoutes.POST("", adminOnly, menuHandler.Create)
	menuRoutes.GET("", menuHandler.List)
	menuRoutes.GET("/:id", menuHandler.GetByID)
	menuRoutes.PUT("/:id", adminOnly, menuHandler.Update)
	menuRoutes.DELETE("/:id", adminOnly, menuHandler.Delete)

	orderRoutes := router.NewDomainGroup("orders", "/orders")
	orderRoutes.POST("", orderRoles, orderHandler.Create)
	orderRoutes.GET("", orderHandler.List)
	orderRoutes.GET("/kitchen/:id", kitchenRoles, orderHandler.KitchenView)
	orderRoutes.POST("/merge", orderRoles, orderHandler.Merge)
	orderRoutes.GET("/:id", orderHandler.GetByID)
	orderRoutes.PUT("/:id/items/:itemID/status", kitchenRoles, orderHandler.SetItemStatus)
	orderRoutes.POST("/:id/fulfill", kitchenRoles, orderHandler.Fulfill)
	orderRoutes.PUT("/:id/checkout", orderRoles, orderHandler.Checkout)
	orderRoutes.PUT("/:id/cancel", orderRoles, orderHandler.Cancel)

	r.Register(authRoutes).
		Register(inventoryRoutes).
		Register(purchaseRoutes).
		Register(supplierRoutes).
		Register(sectionRoutes).
		Register(tableRoutes).
		Register(menuRoutes).
		Register(orderRoutes)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}
