package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sellerledger/backend/internal/application/catalogapp"
	"github.com/sellerledger/backend/internal/application/ingest"
	"github.com/sellerledger/backend/internal/application/ledgerapp"
	"github.com/sellerledger/backend/internal/application/marketapp"
	"github.com/sellerledger/backend/internal/application/report"
	"github.com/sellerledger/backend/internal/infrastructure/config"
	"github.com/sellerledger/backend/internal/infrastructure/logger"
	"github.com/sellerledger/backend/internal/infrastructure/persistence"
	"github.com/sellerledger/backend/internal/interfaces/http/handler"
	"github.com/sellerledger/backend/internal/interfaces/http/middleware"
	"github.com/sellerledger/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting seller ledger backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	marketplaceRepo := persistence.NewGormMarketplaceRepository(db.DB)
	mappingRepo := persistence.NewGormColumnMappingRepository(db.DB)
	transactionRepo := persistence.NewGormTransactionRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	scope := persistence.NewGormTransactionScope(db.DB)

	// Application services
	ledgerService := ledgerapp.NewLedgerService(marketplaceRepo, scope)
	basketCoordinator := ledgerapp.NewBasketSaleCoordinator(marketplaceRepo, ledgerService, scope)
	expenseService := ledgerapp.NewExpenseService(expenseRepo)
	pipeline := ingest.NewPipeline(marketplaceRepo, ingest.NewMappingResolver(mappingRepo), ledgerService, scope)
	productService := catalogapp.NewProductService(productRepo)
	marketplaceService := marketapp.NewMarketplaceService(marketplaceRepo)
	mappingService := marketapp.NewMappingService(marketplaceRepo, mappingRepo)
	dashboardService := report.NewDashboardService(transactionRepo, expenseRepo)

	// Handlers
	productHandler := handler.NewProductHandler(productService)
	marketplaceHandler := handler.NewMarketplaceHandler(marketplaceService)
	mappingHandler := handler.NewMappingHandler(mappingService)
	transactionHandler := handler.NewTransactionHandler(ledgerService, transactionRepo)
	basketHandler := handler.NewBasketHandler(basketCoordinator)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	uploadHandler := handler.NewUploadHandler(pipeline, cfg.Upload.MaxFileSize, rune(cfg.Upload.Delimiter[0]))

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.RequestID())
	engine.Use(logger.RequestLogger(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// multipart framing adds overhead on top of the file itself
	engine.Use(middleware.BodyLimit(cfg.Upload.MaxFileSize + 1<<20))

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.GET("/health", healthHandler(db))

	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.GET("/products", productHandler.List)
	catalogRoutes.POST("/products", productHandler.Create)
	catalogRoutes.GET("/products/:id", productHandler.GetByID)
	catalogRoutes.GET("/products/sku/:sku", productHandler.GetBySKU)
	catalogRoutes.PUT("/products/:id", productHandler.Update)
	catalogRoutes.DELETE("/products/:id", productHandler.Delete)

	marketRoutes := router.NewDomainGroup("market", "/market")
	marketRoutes.GET("/marketplaces", marketplaceHandler.List)
	marketRoutes.POST("/marketplaces", marketplaceHandler.Create)
	marketRoutes.GET("/marketplaces/:id", marketplaceHandler.GetByID)
	marketRoutes.POST("/marketplaces/:id/deactivate", marketplaceHandler.Deactivate)
	marketRoutes.GET("/marketplaces/:id/mappings", mappingHandler.ListByMarketplace)
	marketRoutes.POST("/mappings", mappingHandler.Create)
	marketRoutes.PUT("/mappings/:id", mappingHandler.Update)
	marketRoutes.DELETE("/mappings/:id", mappingHandler.Delete)

	ledgerRoutes := router.NewDomainGroup("ledger", "/ledger")
	ledgerRoutes.GET("/transactions", transactionHandler.List)
	ledgerRoutes.POST("/transactions", transactionHandler.Create)
	ledgerRoutes.GET("/transactions/:id", transactionHandler.GetByID)
	ledgerRoutes.POST("/transactions/bulk-delete", transactionHandler.BulkDelete)
	ledgerRoutes.POST("/baskets", basketHandler.Create)
	ledgerRoutes.POST("/uploads", uploadHandler.Upload)

	financeRoutes := router.NewDomainGroup("finance", "/finance")
	financeRoutes.GET("/expenses", expenseHandler.List)
	financeRoutes.POST("/expenses", expenseHandler.Create)
	financeRoutes.GET("/expenses/:id", expenseHandler.GetByID)
	financeRoutes.DELETE("/expenses/:id", expenseHandler.Delete)
	financeRoutes.GET("/dashboard", dashboardHandler.Stats)

	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(catalogRoutes).
		Register(marketRoutes).
		Register(ledgerRoutes).
		Register(financeRoutes).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

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

func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
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
