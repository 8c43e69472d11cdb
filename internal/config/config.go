package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress          string
	DatabaseURI         string
	OrderServiceAddress string
	JWTSecret           string
	SessionTTL          time.Duration
	UpstreamTimeout     time.Duration
	QueryStaleTime      time.Duration
	QueryCacheTime      time.Duration
	QueryWait           time.Duration
	RefreshInterval     time.Duration
	WorkerPoolSize      int
	ShutdownTimeout     time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultJWTSecret       = "change-me-in-production"
	defaultSessionTTL      = 24 * time.Hour
	defaultUpstreamTimeout = 10 * time.Second
	defaultQueryStaleTime  = 30 * time.Second
	defaultQueryCacheTime  = 5 * time.Minute
	defaultQueryWait       = 2 * time.Second
	defaultRefreshInterval = 15 * time.Second
	defaultWorkerPoolSize  = 2
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from an optional .env file, environment variables and flags.
func Load() (*Config, error) {
	// A missing .env file is not an error: production injects the environment directly.
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		OrderServiceAddress: getString(lookup, "ORDER_SERVICE_ADDRESS", ""),
		JWTSecret:           getString(lookup, "JWT_SECRET", defaultJWTSecret),
		SessionTTL:          getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		UpstreamTimeout:     getDuration(lookup, "UPSTREAM_TIMEOUT", defaultUpstreamTimeout),
		QueryStaleTime:      getDuration(lookup, "QUERY_STALE_TIME", defaultQueryStaleTime),
		QueryCacheTime:      getDuration(lookup, "QUERY_CACHE_TIME", defaultQueryCacheTime),
		QueryWait:           getDuration(lookup, "QUERY_WAIT", defaultQueryWait),
		RefreshInterval:     getDuration(lookup, "REFRESH_INTERVAL", defaultRefreshInterval),
		WorkerPoolSize:      getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("orderboard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		staleTimeStr       = cfg.QueryStaleTime.String()
		cacheTimeStr       = cfg.QueryCacheTime.String()
		refreshIntervalStr = cfg.RefreshInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		sessionTTLStr      = cfg.SessionTTL.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.OrderServiceAddress, "o", cfg.OrderServiceAddress, "Order service base URL")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent refresh workers")
	fs.StringVar(&staleTimeStr, "stale-time", staleTimeStr, "Age after which cached orders are revalidated")
	fs.StringVar(&cacheTimeStr, "cache-time", cacheTimeStr, "Idle time after which cached orders are dropped")
	fs.StringVar(&refreshIntervalStr, "refresh-interval", refreshIntervalStr, "Interval between background cache sweeps")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Lifetime of admin session tokens")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.QueryStaleTime, err = time.ParseDuration(staleTimeStr); err != nil {
		return nil, fmt.Errorf("invalid stale time: %w", err)
	}

	if cfg.QueryCacheTime, err = time.ParseDuration(cacheTimeStr); err != nil {
		return nil, fmt.Errorf("invalid cache time: %w", err)
	}

	if cfg.RefreshInterval, err = time.ParseDuration(refreshIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid refresh interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.UpstreamTimeout <= 0 {
		cfg.UpstreamTimeout = defaultUpstreamTimeout
	}

	if cfg.QueryStaleTime < 0 {
		cfg.QueryStaleTime = defaultQueryStaleTime
	}

	if cfg.QueryCacheTime <= 0 {
		cfg.QueryCacheTime = defaultQueryCacheTime
	}

	if cfg.QueryWait < 0 {
		cfg.QueryWait = defaultQueryWait
	}

	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = defaultRefreshInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.OrderServiceAddress == "" {
		return nil, fmt.Errorf("order service address must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
