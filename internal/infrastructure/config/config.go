package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string        `mapstructure:"environment"`
	Server      ServerConfig  `mapstructure:"server"`
	Logger      LoggerConfig  `mapstructure:"logger"`
	Gateway     GatewayConfig `mapstructure:"gateway"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// GatewayConfig contains the payment simulation settings
type GatewayConfig struct {
	// Variant selects the payment method this instance serves: pix or card
	Variant string `mapstructure:"variant"`

	CreateLatencyMin time.Duration `mapstructure:"createLatencyMinMs"` // milliseconds
	CreateLatencyMax time.Duration `mapstructure:"createLatencyMaxMs"` // milliseconds
	StatusLatencyMin time.Duration `mapstructure:"statusLatencyMinMs"` // milliseconds
	StatusLatencyMax time.Duration `mapstructure:"statusLatencyMaxMs"` // milliseconds

	CreationFailureRate    float64 `mapstructure:"creationFailureRate"`
	StatusCheckFailureRate float64 `mapstructure:"statusCheckFailureRate"`
	GhostNotFoundRate      float64 `mapstructure:"ghostNotFoundRate"`
	ProgressRate           float64 `mapstructure:"progressRate"`
	CompletionRate         float64 `mapstructure:"completionRate"`
}
