package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Remote collaboration API
	API APIConfig

	// Per-client state
	Session   SessionConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type APIConfig struct {
	BaseURL     string
	AccessToken string // used when the caller sends no bearer token
	Timeout     time.Duration
	RatePerSec  float64 // 0 disables outbound throttling
	Burst       int
}

type SessionConfig struct {
	TTL        time.Duration
	MaxEntries int
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Remote API
	cfg.API.BaseURL = strings.TrimRight(viper.GetString("api.base_url"), "/")
	cfg.API.AccessToken = viper.GetString("api.access_token")
	if token := viper.GetString("api_token"); token != "" {
		cfg.API.AccessToken = token
	}
	cfg.API.Timeout = viper.GetDuration("api.timeout")
	cfg.API.RatePerSec = viper.GetFloat64("api.rate_per_sec")
	cfg.API.Burst = viper.GetInt("api.burst")

	// Sessions & ingress throttling
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxEntries = viper.GetInt("session.max_entries")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if cfg.Session.MaxEntries <= 0 {
		return fmt.Errorf("session.max_entries must be positive")
	}
	if cfg.RateLimit.PerMin < 0 {
		return fmt.Errorf("rate_limit.per_min must not be negative")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("api.base_url", "http://localhost:8081/api")
	viper.SetDefault("api.timeout", "15s")
	viper.SetDefault("api.rate_per_sec", 20)
	viper.SetDefault("api.burst", 10)

	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("session.max_entries", 1000)
	viper.SetDefault("rate_limit.per_min", 120)
}
