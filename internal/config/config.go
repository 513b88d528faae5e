package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Server holds all configuration for the nav route service.
type Server struct {
	// Network
	BindAddress string `yaml:"bind_address"`
	Port        int    `yaml:"port"`

	// Grid data
	NavGridPath string `yaml:"navgrid_path"`

	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Search
	Search SearchConfig `yaml:"search"`

	// Benchmark endpoint
	Bench BenchConfig `yaml:"bench"`

	// Route cache
	Cache CacheConfig `yaml:"cache"`

	// Query journal
	Database DatabaseConfig `yaml:"database"`
}

// SearchConfig tunes the serving search path.
type SearchConfig struct {
	Frontier      string `yaml:"frontier"`       // bucket or heap
	MaxConcurrent int    `yaml:"max_concurrent"` // simultaneous searches
	MaxVisited    int    `yaml:"max_visited"`    // per-query extraction cap, 0 = unbounded
}

// BenchConfig controls the POST /bench endpoint.
type BenchConfig struct {
	Enabled       bool `yaml:"enabled"`
	MaxIterations int  `yaml:"max_iterations"`
}

// CacheConfig holds Redis route cache settings.
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Endpoint   string `yaml:"endpoint"`
	TTLSeconds int    `yaml:"ttl_seconds"`
	KeyPrefix  string `yaml:"key_prefix"`
}

// TTL returns the cache entry lifetime.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// DatabaseConfig holds PostgreSQL connection parameters for the query
// journal plus its write batching knobs.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`

	QueueSize     int `yaml:"queue_size"`
	FlushBatch    int `yaml:"flush_batch"`
	FlushInterval int `yaml:"flush_interval"` // seconds
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Default returns Server config with sensible defaults.
func Default() Server {
	return Server{
		BindAddress: "0.0.0.0",
		Port:        8080,
		NavGridPath: "data/world.navgrid",
		LogLevel:    "info",
		Search: SearchConfig{
			Frontier:      "bucket",
			MaxConcurrent: 16,
			MaxVisited:    0,
		},
		Bench: BenchConfig{
			Enabled:       false,
			MaxIterations: 1000,
		},
		Cache: CacheConfig{
			Enabled:    false,
			Endpoint:   "127.0.0.1:6379",
			TTLSeconds: 300,
			KeyPrefix:  "navroute",
		},
		Database: DatabaseConfig{
			Enabled:       false,
			Host:          "127.0.0.1",
			Port:          5432,
			User:          "navserver",
			Password:      "navserver",
			DBName:        "navserver",
			SSLMode:       "disable",
			QueueSize:     1024,
			FlushBatch:    128,
			FlushInterval: 5,
		},
	}
}

// Load loads server config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Server, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail deep inside startup.
func (s Server) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("port %d out of range", s.Port)
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", s.LogLevel)
	}
	switch s.Search.Frontier {
	case "bucket", "heap":
	default:
		return fmt.Errorf("unknown frontier strategy %q", s.Search.Frontier)
	}
	if s.Search.MaxConcurrent < 1 {
		return fmt.Errorf("search.max_concurrent must be positive, got %d", s.Search.MaxConcurrent)
	}
	if s.Search.MaxVisited < 0 {
		return fmt.Errorf("search.max_visited must not be negative, got %d", s.Search.MaxVisited)
	}
	if s.Bench.Enabled && s.Bench.MaxIterations < 1 {
		return fmt.Errorf("bench.max_iterations must be positive, got %d", s.Bench.MaxIterations)
	}
	if s.Cache.Enabled && s.Cache.Endpoint == "" {
		return fmt.Errorf("cache enabled without an endpoint")
	}
	if s.Database.Enabled {
		if s.Database.QueueSize < 1 {
			return fmt.Errorf("database.queue_size must be positive, got %d", s.Database.QueueSize)
		}
		if s.Database.FlushBatch < 1 {
			return fmt.Errorf("database.flush_batch must be positive, got %d", s.Database.FlushBatch)
		}
	}
	return nil
}
