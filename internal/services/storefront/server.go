// Package storefront hosts the browser-facing storefront server.
//
// The server renders every page itself and talks to the backend REST API
// through per-module gateways. Browsers only ever hold an opaque session
// cookie.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/storefront/internal/platform/timeouts"
	"github.com/louisbranch/storefront/internal/services/storefront/app"
	"github.com/louisbranch/storefront/internal/services/storefront/catalogcache"
	"github.com/louisbranch/storefront/internal/services/storefront/identity"
	"github.com/louisbranch/storefront/internal/services/storefront/integration/backendapi"
	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	"github.com/louisbranch/storefront/internal/services/storefront/modules"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/httpx"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/metrics"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/modulehandler"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/observability"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/requestmeta"
	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
	"github.com/louisbranch/storefront/internal/services/storefront/sessions"
	"github.com/louisbranch/storefront/internal/services/storefront/storage"
	"github.com/louisbranch/storefront/internal/services/storefront/storage/rediscache"
	"github.com/louisbranch/storefront/internal/services/storefront/storage/sqlite"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"
)

// Config defines the inputs for the storefront server.
type Config struct {
	HTTPAddr string
	// OpsAddr serves metrics and probes. Empty disables the listener.
	OpsAddr             string
	BackendBaseURL      string
	CatalogBaseURL      string
	BackendTimeout      time.Duration
	DBPath              string
	RedisAddr           string
	CatalogCacheTTL     time.Duration
	SessionTTL          time.Duration
	JWTSecret           string
	TrustForwardedProto bool
	Currency            string
	Logger              zerolog.Logger
}

// HandlerConfig wires the page handler. Nil services leave the dependent
// modules in degraded mode.
type HandlerConfig struct {
	Services     modules.Services
	Currency     string
	SchemePolicy requestmeta.SchemePolicy
	Logger       zerolog.Logger
}

// Server hosts the storefront HTTP and ops listeners.
type Server struct {
	httpServer *http.Server
	opsServer  *http.Server
	store      *sqlite.Store
	cache      *rediscache.Cache
	sessions   *sessions.Manager
	logger     zerolog.Logger
}

// NewHandler builds the page handler and returns the mounted modules so
// callers can report their health.
func NewHandler(cfg HandlerConfig) (http.Handler, []module.Module, error) {
	resolver := newPrincipalResolver(cfg.Services.Sessions, cfg.Logger)
	deps := module.Dependencies{
		ResolveViewer:       resolver.resolveViewer,
		ResolvePrincipal:    resolver.resolvePrincipal,
		EndSession:          resolver.endSession,
		RequestSchemePolicy: cfg.SchemePolicy,
		Currency:            cfg.Currency,
		Logger:              cfg.Logger,
	}
	publicModules := modules.DefaultPublicModules(deps, cfg.Services)
	protectedModules := modules.DefaultProtectedModules(deps, cfg.Services)

	root := http.NewServeMux()
	staticFS, err := subStaticFS()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve static assets: %w", err)
	}
	root.Handle(routepath.Static, http.StripPrefix(routepath.Static, http.FileServer(http.FS(staticFS))))

	base := modulehandler.NewBase(deps)
	if err := app.ComposeInto(root, app.ComposeInput{
		AuthRequired:        resolver.authRequired,
		ResolveRole:         resolver.resolveRole,
		Forbidden:           http.HandlerFunc(base.WriteForbidden),
		PublicModules:       publicModules,
		ProtectedModules:    protectedModules,
		RequestSchemePolicy: cfg.SchemePolicy,
	}); err != nil {
		return nil, nil, fmt.Errorf("compose modules: %w", err)
	}

	handler := httpx.Chain(
		metrics.Middleware(root),
		httpx.RecoverPanic(cfg.Logger),
		httpx.RequestID(),
		observability.RequestLogger(cfg.Logger),
		withRequestPrincipalState,
	)
	handler = otelhttp.NewHandler(handler, "storefront")
	return handler, append(publicModules, protectedModules...), nil
}

// NewServer opens storage, connects the backend client and builds both
// listeners.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	logger := cfg.Logger

	store, err := openStore(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	client, err := backendapi.New(backendapi.Config{
		BaseURL:        cfg.BackendBaseURL,
		CatalogBaseURL: cfg.CatalogBaseURL,
		Timeout:        cfg.BackendTimeout,
		Logger:         logger,
	})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("init backend client: %w", err)
	}

	cache := connectRedis(ctx, cfg.RedisAddr, logger)
	var cacheStore storage.CacheStore = store
	cacheBackend := "sqlite"
	if cache != nil {
		cacheStore = cache
		cacheBackend = "redis"
	}
	catalog, err := catalogcache.New(catalogcache.Config{
		Source:  client,
		Store:   cacheStore,
		Backend: cacheBackend,
		TTL:     cfg.CatalogCacheTTL,
		Logger:  logger,
	})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("init catalog cache: %w", err)
	}

	manager := sessions.NewManager(store, cfg.SessionTTL, logger)
	tokens := identity.NewTokenInspector(cfg.JWTSecret)
	if !tokens.Verifies() {
		logger.Warn().Msg("jwt secret not set; token roles are read without signature verification")
	}

	handler, mounted, err := NewHandler(HandlerConfig{
		Services: modules.Services{
			Backend:       client,
			Catalog:       catalog,
			Sessions:      manager,
			StoreSettings: store,
			Tokens:        tokens,
		},
		Currency:     cfg.Currency,
		SchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
		Logger:       logger,
	})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("build handler: %w", err)
	}

	server := &Server{
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		store:    store,
		cache:    cache,
		sessions: manager,
		logger:   logger,
	}
	if opsAddr := strings.TrimSpace(cfg.OpsAddr); opsAddr != "" {
		checks := map[string]ReadinessCheck{"sqlite": store.Ping}
		if cache != nil {
			checks["redis"] = cache.Ping
		}
		server.opsServer = &http.Server{
			Addr:              opsAddr,
			Handler:           NewOpsHandler(OpsConfig{Modules: mounted, Checks: checks}),
			ReadHeaderTimeout: timeouts.ReadHeader,
		}
	}
	return server, nil
}

func openStore(path string) (*sqlite.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("database path is required")
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	store, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	return store, nil
}

// connectRedis returns nil when Redis is not configured or unreachable; the
// catalog cache then falls back to SQLite.
func connectRedis(ctx context.Context, addr string, logger zerolog.Logger) *rediscache.Cache {
	if strings.TrimSpace(addr) == "" {
		return nil
	}
	cache, err := rediscache.New(addr)
	if err != nil {
		logger.Warn().Err(err).Msg("redis cache disabled")
		return nil
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeouts.CacheRequest)
	defer cancel()
	if err := cache.Ping(pingCtx); err != nil {
		logger.Warn().Err(err).Str("addr", addr).Msg("redis unreachable; using sqlite catalog cache")
		_ = cache.Close()
		return nil
	}
	return cache
}

// ListenAndServe runs the listeners and the session sweeper until ctx ends,
// then drains in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("storefront server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	group, groupCtx := errgroup.WithContext(ctx)
	servers := []*http.Server{s.httpServer}
	if s.opsServer != nil {
		servers = append(servers, s.opsServer)
	}
	for _, srv := range servers {
		srv := srv
		group.Go(func() error {
			s.logger.Info().Str("addr", srv.Addr).Msg("listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve %s: %w", srv.Addr, err)
			}
			return nil
		})
	}
	group.Go(func() error {
		s.sessions.RunSweeper(groupCtx, timeouts.SessionSweep)
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("shutdown %s: %w", srv.Addr, err))
			}
		}
		return errors.Join(errs...)
	})
	return group.Wait()
}

// Close releases storage handles.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("close redis cache")
		}
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("close sqlite store")
		}
	}
}
