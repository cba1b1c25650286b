package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	auctionUseCase "github.com/rsvtravel/booking-engine/internal/domain/usecase/auction"
	bookingUseCase "github.com/rsvtravel/booking-engine/internal/domain/usecase/booking"

	"github.com/rsvtravel/booking-engine/internal/infrastructure/adapter/api/handler"
	"github.com/rsvtravel/booking-engine/internal/infrastructure/adapter/api/routes"
	"github.com/rsvtravel/booking-engine/internal/infrastructure/adapter/cache"
	"github.com/rsvtravel/booking-engine/internal/infrastructure/adapter/database"
	"github.com/rsvtravel/booking-engine/internal/infrastructure/adapter/database/migration"
	"github.com/rsvtravel/booking-engine/internal/infrastructure/adapter/logger"
	"github.com/rsvtravel/booking-engine/internal/infrastructure/adapter/metrics"
	"github.com/rsvtravel/booking-engine/internal/infrastructure/adapter/notification"
	"github.com/rsvtravel/booking-engine/internal/infrastructure/adapter/repository"
	timeProvider "github.com/rsvtravel/booking-engine/internal/infrastructure/adapter/time"
	"github.com/rsvtravel/booking-engine/internal/infrastructure/config"
	"github.com/rsvtravel/booking-engine/internal/infrastructure/jobs"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          "postgres",
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   3,
		RetryDelay:      5,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	migrationMgr := migration.NewMigrationManagerWithTimeProvider(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Connect to Redis for the availability cache and period lock
	store, err := cache.NewRedisStore(context.Background(), &cfg.Redis, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to Redis", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer store.Close()

	// Repositories used outside transactions
	reservationRepo := repository.NewReservationRepository(dbManager.DB(), tp, appLogger)
	propertyRepo := repository.NewPropertyRepository(dbManager.DB(), appLogger)

	// Unit of work (transaction manager)
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger, tp)

	// Booking wiring
	validator := bookingUseCase.NewBookingValidator(tp, cfg.Booking.MinStayNights, cfg.Booking.MaxStayNights)
	oracle := bookingUseCase.NewAvailabilityOracle(store, reservationRepo, appLogger, cfg.Booking.CacheTTL)
	periodLock := bookingUseCase.NewPeriodLock(store, appLogger, cfg.Booking.LockTTL)
	bookingMetrics := metrics.NewAtomicSink()
	dispatcher := notification.NewLogDispatcher(appLogger)

	bookingManager := bookingUseCase.NewBookingManager(
		uow,
		propertyRepo,
		oracle,
		periodLock,
		validator,
		bookingMetrics,
		dispatcher,
		tp,
		appLogger,
		cfg.Booking.MaxRetries,
		time.Duration(cfg.Booking.RetryBaseDelayMs)*time.Millisecond,
	)
	bookingService := bookingUseCase.NewBookingService(bookingManager, oracle, validator, bookingMetrics, appLogger)

	// Auction wiring
	auctionEngine := auctionUseCase.NewEngine(
		uow,
		dispatcher,
		tp,
		appLogger,
		cfg.Auction.PaymentWindow,
		cfg.Auction.ExtendWindow,
	)
	auctionService := auctionUseCase.NewAuctionService(auctionEngine, appLogger)

	// Auction lifecycle sweeper
	sweeper := jobs.NewAuctionSweeper(auctionEngine, appLogger, cfg.Auction.SweepSpec)
	sweeper.RunOnce(context.Background())
	if err := sweeper.Start(); err != nil {
		appLogger.Error("Failed to start auction sweeper", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize API handlers
	bookingHandler := handler.NewBookingHandler(bookingService, appLogger)
	auctionHandler := handler.NewAuctionHandler(auctionService, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, bookingHandler, auctionHandler, store)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop the sweeper before the server so no lifecycle writes race shutdown
	sweeper.Stop()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or BK_DB_HOST environment variable)")
	}
	if cfg.Database.Port == "" {
		missingConfigs = append(missingConfigs, "database.port (or BK_DB_PORT environment variable)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or BK_DB_USERNAME environment variable)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or BK_DB_NAME environment variable)")
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Redis.Host == "" {
		missingConfigs = append(missingConfigs, "redis.host (or BK_REDIS_HOST environment variable)")
	}
	if cfg.Redis.Port == "" {
		missingConfigs = append(missingConfigs, "redis.port (or BK_REDIS_PORT environment variable)")
	}

	if cfg.Booking.MaxRetries == 0 {
		missingConfigs = append(missingConfigs, "booking.maxRetries")
	}
	if cfg.Booking.RetryBaseDelayMs == 0 {
		missingConfigs = append(missingConfigs, "booking.retryBaseDelayMs")
	}
	if cfg.Booking.CacheTTL == 0 {
		missingConfigs = append(missingConfigs, "booking.cacheTTL")
	}
	if cfg.Booking.LockTTL == 0 {
		missingConfigs = append(missingConfigs, "booking.lockTTL")
	}

	if cfg.Auction.PaymentWindow == 0 {
		missingConfigs = append(missingConfigs, "auction.paymentWindow")
	}
	if cfg.Auction.SweepSpec == "" {
		missingConfigs = append(missingConfigs, "auction.sweepSpec")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
