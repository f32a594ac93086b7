package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "pulseauto/api/swagger" // swagger docs
	"pulseauto/internal/config"
	"pulseauto/internal/database"
	"pulseauto/internal/handler"
	"pulseauto/internal/logger"
	"pulseauto/internal/middleware"
	"pulseauto/internal/repository"
	"pulseauto/internal/service"
	"pulseauto/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           PULSE Auto Market API
// @version         1.0
// @description     Dealership inventory, leads, customers, deal desking and lender approvals.
// @host            localhost:8080
// @BasePath        /
func main() {
	cfg, err := config.Load("configs/.env")
	if err != nil {
		// logger is not up yet
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.GinMode)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("Server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewConnection(ctx, cfg.DSN(), cfg.DBConnectRetries, log)
	if err != nil {
		return err
	}
	log.Info("Connected to PostgreSQL", zap.String("host", cfg.DBHost), zap.String("database", cfg.DBName))

	cache := newCache(ctx, cfg, log)

	// Set up WebSocket Hub
	wsHub := websocket.NewHub(cfg.CORSAllowedOrigins, log.Named("ws"))
	go wsHub.Run(ctx)

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	dealRepo := repository.NewDealRepository(db)
	repairShopRepo := repository.NewRepairShopRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	statsRepo := repository.NewStatisticsRepository(db)

	deskingService := service.NewDeskingService(log.Named("desking"))
	vehicleService := service.NewVehicleService(vehicleRepo, auditRepo, txManager, wsHub)
	leadService := service.NewLeadService(leadRepo, auditRepo, txManager, wsHub)
	customerService := service.NewCustomerService(customerRepo, auditRepo, txManager)
	dealService := service.NewDealService(dealRepo, customerRepo, vehicleRepo, auditRepo, txManager, wsHub, log.Named("deals"))
	repairShopService := service.NewRepairShopService(repairShopRepo, auditRepo, txManager)
	statisticsService := service.NewStatisticsService(statsRepo, cache, cfg.StatsCacheTTL, log.Named("stats"))
	auditService := service.NewAuditService(auditRepo)

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(log), middleware.Recovery(log))
	router.Use(cors.New(corsConfig(cfg)))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// WebSocket endpoint
	router.GET("/ws", wsHub.ServeWs)

	api := router.Group("")
	handler.NewHealthHandler(func(ctx context.Context) error { return database.Ping(ctx, db) }).RegisterRoutes(api)
	handler.NewDeskingHandler(deskingService).RegisterRoutes(api)
	handler.NewVehicleHandler(vehicleService).RegisterRoutes(api)
	handler.NewLeadHandler(leadService).RegisterRoutes(api)
	handler.NewCustomerHandler(customerService).RegisterRoutes(api)
	handler.NewDealHandler(dealService).RegisterRoutes(api)
	handler.NewRepairShopHandler(repairShopService).RegisterRoutes(api)
	handler.NewStatisticsHandler(statisticsService).RegisterRoutes(api)
	handler.NewAuditHandler(auditService).RegisterRoutes(api)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if closer, ok := cache.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	log.Info("Server stopped")
	return nil
}

// newCache uses redis when configured and reachable, otherwise an in-process cache
func newCache(ctx context.Context, cfg *config.Config, log *zap.Logger) repository.CacheRepository {
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR not set, using in-memory stats cache")
		return repository.NewMemoryCache()
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		log.Warn("Redis unreachable, using in-memory stats cache", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		_ = redisCache.Close()
		return repository.NewMemoryCache()
	}
	log.Info("Connected to Redis", zap.String("addr", cfg.RedisAddr))
	return redisCache
}

func corsConfig(cfg *config.Config) cors.Config {
	corsConfig := cors.DefaultConfig()
	if cfg.AllowAllOrigins() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Actor", "X-Request-ID"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	return corsConfig
}
