package config

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every setting the API server reads from the environment
type Config struct {
	Port            string        `mapstructure:"port"`
	GinMode         string        `mapstructure:"gin_mode"`
	LogLevel        string        `mapstructure:"log_level"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	DBHost           string `mapstructure:"db_host"`
	DBPort           string `mapstructure:"db_port"`
	DBUser           string `mapstructure:"db_user"`
	DBPassword       string `mapstructure:"db_password"`
	DBName           string `mapstructure:"db_name"`
	DBSSLMode        string `mapstructure:"db_sslmode"`
	DBConnectRetries int    `mapstructure:"db_connect_retries"`

	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	StatsCacheTTL time.Duration `mapstructure:"stats_cache_ttl"`

	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

const (
	DefaultPort             = "8080"
	DefaultLogLevel         = "info"
	DefaultDBConnectRetries = 5
	DefaultStatsCacheTTL    = 30 * time.Second
	DefaultShutdownTimeout  = 10 * time.Second
)

// keys lists every setting so AutomaticEnv picks them up during Unmarshal.
var keys = []string{
	"port", "gin_mode", "log_level", "shutdown_timeout",
	"db_host", "db_port", "db_user", "db_password", "db_name", "db_sslmode", "db_connect_retries",
	"redis_addr", "redis_password", "redis_db", "stats_cache_ttl",
	"cors_allowed_origins",
}

// Load reads envFile (if it exists) into the process environment and builds a Config from it
func Load(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("No %s file found or error loading it", envFile)
	}

	v := viper.New()
	v.AutomaticEnv()

	defaults := map[string]interface{}{
		"port":                 DefaultPort,
		"gin_mode":             "debug",
		"log_level":            DefaultLogLevel,
		"shutdown_timeout":     DefaultShutdownTimeout,
		"db_host":              "localhost",
		"db_port":              "5432",
		"db_user":              "postgres",
		"db_password":          "postgres",
		"db_name":              "pulse_auto_market",
		"db_sslmode":           "disable",
		"db_connect_retries":   DefaultDBConnectRetries,
		"redis_db":             0,
		"stats_cache_ttl":      DefaultStatsCacheTTL,
		"cors_allowed_origins": "*",
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for _, key := range keys {
		if err := v.BindEnv(key, strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.CORSAllowedOrigins = splitList(v.GetString("cors_allowed_origins"))

	return &cfg, cfg.Validate()
}

// Validate rejects settings the server cannot start with
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid gin_mode %q", c.GinMode)
	}
	if c.DBConnectRetries < 1 {
		return errors.New("db_connect_retries must be at least 1")
	}
	if c.StatsCacheTTL < 0 {
		return errors.New("stats_cache_ttl must not be negative")
	}
	if c.ShutdownTimeout < 0 {
		return errors.New("shutdown_timeout must not be negative")
	}
	if len(c.CORSAllowedOrigins) == 0 {
		return errors.New("cors_allowed_origins is empty")
	}
	return nil
}

// DSN builds the postgres connection string
func (c *Config) DSN() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName + "?sslmode=" + c.DBSSLMode
}

// AllowAllOrigins reports whether CORS and websocket origin checks are open
func (c *Config) AllowAllOrigins() bool {
	for _, o := range c.CORSAllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
