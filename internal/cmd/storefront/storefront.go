// Package storefront parses storefront service configuration and launches
// the server.
package storefront

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/storefront/internal/platform/cmd"
	"github.com/louisbranch/storefront/internal/platform/logging"
	server "github.com/louisbranch/storefront/internal/services/storefront"
)

// Config holds the storefront command configuration.
type Config struct {
	HTTPAddr            string        `env:"STOREFRONT_HTTP_ADDR" envDefault:"localhost:3000"`
	OpsAddr             string        `env:"STOREFRONT_OPS_ADDR" envDefault:"localhost:9090"`
	BackendBaseURL      string        `env:"STOREFRONT_BACKEND_BASE_URL" envDefault:"http://localhost:8080"`
	CatalogBaseURL      string        `env:"STOREFRONT_CATALOG_BASE_URL" envDefault:"http://localhost:9000"`
	BackendTimeout      time.Duration `env:"STOREFRONT_BACKEND_TIMEOUT" envDefault:"10s"`
	DBPath              string        `env:"STOREFRONT_DB_PATH" envDefault:"data/storefront.db"`
	RedisAddr           string        `env:"STOREFRONT_REDIS_ADDR"`
	CatalogCacheTTL     time.Duration `env:"STOREFRONT_CATALOG_CACHE_TTL" envDefault:"60s"`
	SessionTTL          time.Duration `env:"STOREFRONT_SESSION_TTL" envDefault:"24h"`
	JWTSecret           string        `env:"STOREFRONT_JWT_SECRET"`
	TrustForwardedProto bool          `env:"STOREFRONT_TRUST_FORWARDED_PROTO" envDefault:"false"`
	Currency            string        `env:"STOREFRONT_CURRENCY" envDefault:"USD"`
	LogLevel            string        `env:"STOREFRONT_LOG_LEVEL" envDefault:"info"`
}

// ParseConfig reads the environment and then flags. Flags win.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args, bindFlags); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.OpsAddr, "ops-addr", cfg.OpsAddr, "Metrics and probe listen address (empty disables)")
	fs.StringVar(&cfg.BackendBaseURL, "backend-base-url", cfg.BackendBaseURL, "Backend API base URL")
	fs.StringVar(&cfg.CatalogBaseURL, "catalog-base-url", cfg.CatalogBaseURL, "Catalog listing base URL")
	fs.DurationVar(&cfg.BackendTimeout, "backend-timeout", cfg.BackendTimeout, "Per-call backend timeout")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis address for the catalog cache")
	fs.DurationVar(&cfg.CatalogCacheTTL, "catalog-cache-ttl", cfg.CatalogCacheTTL, "Catalog cache lifetime")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Session lifetime")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto")
	fs.StringVar(&cfg.Currency, "currency", cfg.Currency, "ISO 4217 display currency")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
}

// Run starts the storefront server and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	logger := logging.New(entrypoint.ServiceStorefront, cfg.LogLevel)
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceStorefront, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		srv, err := server.NewServer(ctx, server.Config{
			HTTPAddr:            cfg.HTTPAddr,
			OpsAddr:             cfg.OpsAddr,
			BackendBaseURL:      cfg.BackendBaseURL,
			CatalogBaseURL:      cfg.CatalogBaseURL,
			BackendTimeout:      cfg.BackendTimeout,
			DBPath:              cfg.DBPath,
			RedisAddr:           cfg.RedisAddr,
			CatalogCacheTTL:     cfg.CatalogCacheTTL,
			SessionTTL:          cfg.SessionTTL,
			JWTSecret:           cfg.JWTSecret,
			TrustForwardedProto: cfg.TrustForwardedProto,
			Currency:            cfg.Currency,
			Logger:              logger,
		})
		if err != nil {
			return fmt.Errorf("init storefront server: %w", err)
		}
		defer srv.Close()

		if err := srv.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve storefront: %w", err)
		}
		return nil
	})
}
