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

	"github.com/brunovale/mock-payment-gateway/internal/domain/usecase/payment"
	"github.com/brunovale/mock-payment-gateway/internal/infrastructure/adapter/api/handler"
	"github.com/brunovale/mock-payment-gateway/internal/infrastructure/adapter/api/routes"
	"github.com/brunovale/mock-payment-gateway/internal/infrastructure/adapter/logger"
	"github.com/brunovale/mock-payment-gateway/internal/infrastructure/adapter/random"
	"github.com/brunovale/mock-payment-gateway/internal/infrastructure/adapter/store"
	timeProvider "github.com/brunovale/mock-payment-gateway/internal/infrastructure/adapter/time"
	"github.com/brunovale/mock-payment-gateway/internal/infrastructure/config"

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
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == "production")

	// Resolve the payment variant this instance serves
	variant, ok := payment.VariantByName(cfg.Gateway.Variant)
	if !ok {
		appLogger.Error("Unknown gateway variant", map[string]any{
			"variant": cfg.Gateway.Variant,
		})
		os.Exit(1)
	}

	// Initialize simulation dependencies
	tp := timeProvider.NewRealTimeProvider()
	randomSource := random.NewMathRandomSource()
	transactionStore := store.NewMemoryStore()

	simulationCfg := payment.Config{
		CreateLatencyMin:       cfg.Gateway.CreateLatencyMin,
		CreateLatencyMax:       cfg.Gateway.CreateLatencyMax,
		StatusLatencyMin:       cfg.Gateway.StatusLatencyMin,
		StatusLatencyMax:       cfg.Gateway.StatusLatencyMax,
		CreationFailureRate:    cfg.Gateway.CreationFailureRate,
		StatusCheckFailureRate: cfg.Gateway.StatusCheckFailureRate,
		GhostNotFoundRate:      cfg.Gateway.GhostNotFoundRate,
		ProgressRate:           cfg.Gateway.ProgressRate,
		CompletionRate:         cfg.Gateway.CompletionRate,
	}

	paymentService := payment.NewService(variant, simulationCfg, transactionStore, tp, randomSource, appLogger)

	// Initialize API handlers
	paymentHandler := handler.NewPaymentHandler(paymentService, appLogger)
	healthHandler := handler.NewHealthHandler(paymentService)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, paymentHandler, healthHandler)

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
		appLogger.Info("Starting mock payment gateway", map[string]any{
			"host":    cfg.Server.Host,
			"port":    cfg.Server.Port,
			"variant": variant.PaymentSystem,
			"env":     cfg.Environment,
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

	// Validate gateway configuration
	if cfg.Gateway.Variant == "" {
		missingConfigs = append(missingConfigs, "gateway.variant")
	}

	if _, ok := payment.VariantByName(cfg.Gateway.Variant); cfg.Gateway.Variant != "" && !ok {
		return fmt.Errorf("invalid gateway.variant value: %s, must be one of: pix, card", cfg.Gateway.Variant)
	}

	if cfg.Gateway.CreateLatencyMax < cfg.Gateway.CreateLatencyMin {
		return fmt.Errorf("gateway.createLatencyMaxMs must not be below gateway.createLatencyMinMs")
	}

	if cfg.Gateway.StatusLatencyMax < cfg.Gateway.StatusLatencyMin {
		return fmt.Errorf("gateway.statusLatencyMaxMs must not be below gateway.statusLatencyMinMs")
	}

	for name, rate := range map[string]float64{
		"gateway.creationFailureRate":    cfg.Gateway.CreationFailureRate,
		"gateway.statusCheckFailureRate": cfg.Gateway.StatusCheckFailureRate,
		"gateway.ghostNotFoundRate":      cfg.Gateway.GhostNotFoundRate,
		"gateway.progressRate":           cfg.Gateway.ProgressRate,
		"gateway.completionRate":         cfg.Gateway.CompletionRate,
	} {
		if rate < 0 || rate > 1 {
			return fmt.Errorf("%s must be a probability between 0 and 1, got %v", name, rate)
		}
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

	// Warn when creation timeouts cannot cover the simulated latency ceiling
	if cfg.Server.WriteTimeout > 0 && cfg.Server.WriteTimeout < cfg.Gateway.CreateLatencyMax+time.Second {
		log.Printf("Warning: server.writeTimeout (%v) is close to the creation latency ceiling (%v); slow simulated requests may be cut off",
			cfg.Server.WriteTimeout, cfg.Gateway.CreateLatencyMax)
	}

	return nil
}
