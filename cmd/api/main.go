package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	adminUseCase "github.com/fuelgrid/cng-marketplace/internal/domain/usecase/admin"
	bookingUseCase "github.com/fuelgrid/cng-marketplace/internal/domain/usecase/booking"
	stationUseCase "github.com/fuelgrid/cng-marketplace/internal/domain/usecase/station"
	userUseCase "github.com/fuelgrid/cng-marketplace/internal/domain/usecase/user"

	"github.com/fuelgrid/cng-marketplace/internal/domain/port/gateway"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/api/handler"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/api/routes"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/auth"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/database"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/logger"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/repository"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/sms"
	timeProvider "github.com/fuelgrid/cng-marketplace/internal/infrastructure/adapter/time"
	"github.com/fuelgrid/cng-marketplace/internal/infrastructure/config"

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
	defer func() {
		_ = appLogger.Flush()
	}()

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
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
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
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
	defer func() {
		_ = dbManager.Close()
	}()

	// Run migrations (schema + seeded booking slots)
	if err := dbManager.Migrate(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)
	walletRepo := repository.NewWalletRepository(dbManager.DB(), tp, appLogger)
	vehicleRepo := repository.NewVehicleRepository(dbManager.DB(), appLogger)
	stationRepo := repository.NewStationRepository(dbManager.DB(), appLogger)
	workerRepo := repository.NewWorkerRepository(dbManager.DB(), appLogger)
	bookingRepo := repository.NewBookingRepository(dbManager.DB(), appLogger)
	slotRepo := repository.NewBookingSlotRepository(dbManager.DB(), appLogger)
	adminRepo := repository.NewAdminRepository(dbManager.DB(), appLogger)

	// Unit of work (transaction manager)
	uow := dbManager.CreateUnitOfWork()

	// OTP delivery gateway
	var otpSender gateway.OTPSender
	if cfg.SMS.Enabled {
		otpSender = sms.NewHTTPSender(cfg.SMS.BaseURL, cfg.SMS.APIKey, cfg.SMS.Timeout, appLogger)
	} else {
		otpSender = sms.NewNoopSender(appLogger)
	}

	// Token service and password hasher
	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL, tp)
	hasher := auth.NewBcryptHasher()

	// Initialize use cases
	userUC := userUseCase.NewUseCase(uow, userRepo, walletRepo, vehicleRepo, otpSender, tp, appLogger)
	stationUC := stationUseCase.NewUseCase(stationRepo, workerRepo, appLogger)
	bookingSvc := bookingUseCase.NewService(uow, bookingRepo, slotRepo, tp, appLogger)
	adminUC := adminUseCase.NewUseCase(adminRepo, stationRepo, hasher, tp, appLogger)

	// Initialize API handlers
	userHandler := handler.NewUserHandler(userUC, tokens, appLogger)
	stationHandler := handler.NewStationHandler(stationUC, tokens, appLogger)
	orderHandler := handler.NewOrderHandler(bookingSvc, appLogger)
	adminHandler := handler.NewAdminHandler(adminUC, tokens, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, tokens, userHandler, stationHandler, orderHandler, adminHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
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

	// Validate server configuration
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

	// Validate database configuration
	if cfg.Database.Host == "" {
		if cfg.Environment == config.Production && os.Getenv("CNG_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or CNG_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}

	if cfg.Database.Username == "" {
		if cfg.Environment == config.Production && os.Getenv("CNG_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or CNG_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}

	if cfg.Database.Password == "" {
		if cfg.Environment == config.Production && os.Getenv("CNG_DB_PASSWORD") == "" {
			missingConfigs = append(missingConfigs, "database.password (or CNG_DB_PASSWORD environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.password")
		}
	}

	if cfg.Database.Database == "" {
		if cfg.Environment == config.Production && os.Getenv("CNG_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or CNG_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Auth configuration
	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or CNG_JWT_SECRET environment variable)")
	}

	if cfg.Auth.TokenTTL == 0 {
		missingConfigs = append(missingConfigs, "auth.tokenTTL")
	}

	// SMS gateway must carry credentials when enabled
	if cfg.SMS.Enabled && cfg.SMS.APIKey == "" {
		missingConfigs = append(missingConfigs, "sms.apiKey (or CNG_SMS_API_KEY environment variable)")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		if strings.ToLower(cfg.Database.SSLMode) == "disable" {
			warnings = append(warnings, "database.sslMode should not be 'disable' in production")
		}

		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
