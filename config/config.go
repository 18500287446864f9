package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Cache     CacheConfig
	Matching  MatchingConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DBConfig holds PostgreSQL connection configuration
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN builds the PostgreSQL connection string.
func (c *DBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// CacheConfig holds catalog cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// MatchingConfig holds tuning knobs for the extraction engine
type MatchingConfig struct {
	MinMatchScore       float64 `mapstructure:"min_match_score"`
	SuggestionThreshold float64 `mapstructure:"suggestion_threshold"`
	MaxSuggestions      int     `mapstructure:"max_suggestions"`
	VoiceMinScore       float64 `mapstructure:"voice_min_score"`
	AutoSaveConfidence  float64 `mapstructure:"auto_save_confidence"`
	EnableDebugLogging  bool    `mapstructure:"enable_debug_logging"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute per client IP
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/kiranabill/")

	v.SetEnvPrefix("KIRANABILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults are enough.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})

	// Database defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "kiranabill")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "kiranabill")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 10)
	v.SetDefault("db.max_idle", 5)

	// Catalog cache defaults
	v.SetDefault("cache.ttl", "30s")

	// Matching defaults mirror the tuned engine thresholds
	v.SetDefault("matching.min_match_score", 0.65)
	v.SetDefault("matching.suggestion_threshold", 0.5)
	v.SetDefault("matching.max_suggestions", 3)
	v.SetDefault("matching.voice_min_score", 0.5)
	v.SetDefault("matching.auto_save_confidence", 0.7)
	v.SetDefault("matching.enable_debug_logging", false)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 120)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.DB.Name == "" {
		return fmt.Errorf("database name is required (set KIRANABILL_DB_NAME)")
	}

	if config.Matching.MinMatchScore <= 0 || config.Matching.MinMatchScore >= 1 {
		return fmt.Errorf("matching.min_match_score must be in (0,1), got: %v", config.Matching.MinMatchScore)
	}

	if config.Matching.AutoSaveConfidence < 0 || config.Matching.AutoSaveConfidence > 1 {
		return fmt.Errorf("matching.auto_save_confidence must be in [0,1], got: %v", config.Matching.AutoSaveConfidence)
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("ratelimit.per_ip must be positive, got: %d", config.RateLimit.PerIP)
	}

	return nil
}
