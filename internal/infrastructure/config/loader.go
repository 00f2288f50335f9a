package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// Default ports per variant, matching the gateway deployment being mocked
const (
	defaultPixPort  = 4242
	defaultCardPort = 4243
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./.env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		// Don't return error, just log it or continue
		fmt.Println("Warning: Could not load .env file:", err)
	}

	// Get environment
	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	// Add config paths
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	// Set default values for non-critical settings
	setDefaults(v)

	// Read the config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Set environment variables to override config
	v.SetEnvPrefix("MPG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Process environment variable overrides
	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Set the environment in the config
	config.Environment = env

	// Convert time.Duration fields from their raw values
	processDurations(&config)

	// A card instance selected via env falls back to the adjacent port so
	// both variants can run side by side from the same config file
	if os.Getenv("MPG_SERVER_PORT") == "" &&
		config.Server.Port == defaultPixPort &&
		strings.ToLower(config.Gateway.Variant) != "pix" {
		config.Server.Port = defaultCardPort
	}

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil // Successfully loaded .env file
			} else {
				lastError = err
			}
		}
	}

	// Return the last error encountered if no .env file was successfully loaded
	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	// Non-critical server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 4242)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	// Gateway simulation defaults, matching the gateway being mocked
	v.SetDefault("gateway.variant", "pix")
	v.SetDefault("gateway.createLatencyMinMs", 200)
	v.SetDefault("gateway.createLatencyMaxMs", 1500)
	v.SetDefault("gateway.statusLatencyMinMs", 50)
	v.SetDefault("gateway.statusLatencyMaxMs", 500)
	v.SetDefault("gateway.creationFailureRate", 0.0)
	v.SetDefault("gateway.statusCheckFailureRate", 0.15)
	v.SetDefault("gateway.ghostNotFoundRate", 0.5)
	v.SetDefault("gateway.progressRate", 0.3)
	v.SetDefault("gateway.completionRate", 0.8)
}

// getEnvironment determines the environment to use based on MPG_ENV environment variable
func getEnvironment() string {
	env := os.Getenv("MPG_ENV")
	if env == "" {
		// Default to development if not specified
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	// Server settings
	if serverHost := os.Getenv("MPG_SERVER_HOST"); serverHost != "" {
		v.Set("server.host", serverHost)
	}
	if serverPort := os.Getenv("MPG_SERVER_PORT"); serverPort != "" {
		v.Set("server.port", serverPort)
	}

	// Logger settings
	if logLevel := os.Getenv("MPG_LOGGER_LEVEL"); logLevel != "" {
		v.Set("logger.level", logLevel)
	}

	// Gateway settings; running two processes with different MPG_GATEWAY_VARIANT
	// values gives one instance per payment method
	if variant := os.Getenv("MPG_GATEWAY_VARIANT"); variant != "" {
		v.Set("gateway.variant", variant)
	}
	if rate := getEnvFloat("MPG_GATEWAY_CREATION_FAILURE_RATE", -1); rate >= 0 {
		v.Set("gateway.creationFailureRate", rate)
	}
	if rate := getEnvFloat("MPG_GATEWAY_STATUS_CHECK_FAILURE_RATE", -1); rate >= 0 {
		v.Set("gateway.statusCheckFailureRate", rate)
	}
	if ms := getEnvInt("MPG_GATEWAY_CREATE_LATENCY_MIN_MS", -1); ms >= 0 {
		v.Set("gateway.createLatencyMinMs", ms)
	}
	if ms := getEnvInt("MPG_GATEWAY_CREATE_LATENCY_MAX_MS", -1); ms >= 0 {
		v.Set("gateway.createLatencyMaxMs", ms)
	}
	if ms := getEnvInt("MPG_GATEWAY_STATUS_LATENCY_MIN_MS", -1); ms >= 0 {
		v.Set("gateway.statusLatencyMinMs", ms)
	}
	if ms := getEnvInt("MPG_GATEWAY_STATUS_LATENCY_MAX_MS", -1); ms >= 0 {
		v.Set("gateway.statusLatencyMaxMs", ms)
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// Helper function to get environment variable as float
func getEnvFloat(name string, defaultVal float64) float64 {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	// Convert seconds to time.Duration
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	// Convert milliseconds to time.Duration
	config.Gateway.CreateLatencyMin = time.Duration(config.Gateway.CreateLatencyMin) * time.Millisecond
	config.Gateway.CreateLatencyMax = time.Duration(config.Gateway.CreateLatencyMax) * time.Millisecond
	config.Gateway.StatusLatencyMin = time.Duration(config.Gateway.StatusLatencyMin) * time.Millisecond
	config.Gateway.StatusLatencyMax = time.Duration(config.Gateway.StatusLatencyMax) * time.Millisecond
}
