package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Black-And-White-Club/golf-trip/internal/observability"
)

// Config struct to hold the configuration settings
type Config struct {
	Postgres      PostgresConfig      `yaml:"postgres"`
	Redis         RedisConfig         `yaml:"redis"`
	HTTP          HTTPConfig          `yaml:"http"`
	Observability ObservabilityConfig `yaml:"observability"`
	Scoring       ScoringConfig       `yaml:"scoring"`
	Import        ImportConfig        `yaml:"import"`
}

// PostgresConfig holds Postgres configuration. An empty DSN keeps trips in
// memory.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// RedisConfig holds Redis configuration. It is used for trips when no Postgres
// DSN is set.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TripTTL  time.Duration `yaml:"trip_ttl"`
}

// HTTPConfig holds the API listener configuration.
type HTTPConfig struct {
	Address        string   `yaml:"address"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	RateLimit      float64  `yaml:"rate_limit"` // requests per second per IP
	RateBurst      int      `yaml:"rate_burst"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	Environment    string `yaml:"environment"`
	LogLevel       string `yaml:"log_level"`
	MetricsAddress string `yaml:"metrics_address"` // empty serves /metrics on the API listener
	ServiceName    string `yaml:"service_name"`
}

// ScoringConfig holds defaults for new rounds.
type ScoringConfig struct {
	DefaultHoles int `yaml:"default_holes"`
	DefaultPar   int `yaml:"default_par"`
}

// ImportConfig controls scorecard imports from links. Links are refused
// unless their host is listed.
type ImportConfig struct {
	AllowedHosts []string `yaml:"allowed_hosts"`
}

const (
	defaultHTTPAddress = ":8080"
	defaultRateLimit   = 20
	defaultRateBurst   = 40
	defaultService     = "golf-trip"
	defaultHoles       = 18
	defaultPar         = 72
)

// LoadConfig loads the configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Try reading configuration from the file first
	data, err := os.ReadFile(filename)
	if err != nil {
		// If the file is not found, try loading from environment variables
		return loadConfigFromEnv()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadConfigFromEnv loads the configuration from environment variables.
func loadConfigFromEnv() (*Config, error) {
	var cfg Config
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("REDIS_TRIP_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_TRIP_TTL value: %v", err)
		}
		cfg.Redis.TripTTL = d
	}
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("IMPORT_ALLOWED_HOSTS"); v != "" {
		cfg.Import.AllowedHosts = splitList(v)
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT value: %v", err)
		}
		cfg.HTTP.RateLimit = f
	}
	if v := os.Getenv("RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_BURST value: %v", err)
		}
		cfg.HTTP.RateBurst = n
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
	if v := os.Getenv("METRICS_ADDRESS"); v != "" {
		cfg.Observability.MetricsAddress = v
	}
	if v := os.Getenv("DEFAULT_HOLES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DEFAULT_HOLES value: %v", err)
		}
		cfg.Scoring.DefaultHoles = n
	}
	if v := os.Getenv("DEFAULT_PAR"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DEFAULT_PAR value: %v", err)
		}
		cfg.Scoring.DefaultPar = n
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = defaultHTTPAddress
	}
	if cfg.HTTP.RateLimit <= 0 {
		cfg.HTTP.RateLimit = defaultRateLimit
	}
	if cfg.HTTP.RateBurst <= 0 {
		cfg.HTTP.RateBurst = defaultRateBurst
	}
	if cfg.Observability.ServiceName == "" {
		cfg.Observability.ServiceName = defaultService
	}
	if cfg.Observability.Environment == "" {
		cfg.Observability.Environment = "production"
	}
	if cfg.Scoring.DefaultHoles == 0 {
		cfg.Scoring.DefaultHoles = defaultHoles
	}
	if cfg.Scoring.DefaultPar == 0 {
		cfg.Scoring.DefaultPar = defaultPar
	}
}

// Validate rejects settings the services cannot run with.
func (c *Config) Validate() error {
	if c.Scoring.DefaultHoles != 9 && c.Scoring.DefaultHoles != 18 {
		return fmt.Errorf("scoring.default_holes must be 9 or 18, got %d", c.Scoring.DefaultHoles)
	}
	if c.Redis.TripTTL < 0 {
		return fmt.Errorf("redis.trip_ttl must not be negative, got %s", c.Redis.TripTTL)
	}
	if c.Scoring.DefaultPar < 0 {
		return fmt.Errorf("scoring.default_par must not be negative, got %d", c.Scoring.DefaultPar)
	}
	return nil
}

// ToLoggerConfig maps the observability section onto the logger settings.
func ToLoggerConfig(appCfg *Config) observability.LoggerConfig {
	return observability.LoggerConfig{
		Environment: appCfg.Observability.Environment,
		Level:       appCfg.Observability.LogLevel,
		ServiceName: appCfg.Observability.ServiceName,
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
