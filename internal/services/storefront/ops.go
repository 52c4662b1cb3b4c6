package storefront

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	module "github.com/louisbranch/storefront/internal/services/storefront/module"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/httpx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const readinessTimeout = 2 * time.Second

// ReadinessCheck probes one dependency.
type ReadinessCheck func(context.Context) error

// OpsConfig wires the operations listener.
type OpsConfig struct {
	Modules []module.Module
	Checks  map[string]ReadinessCheck
}

type healthReport struct {
	Status  string          `json:"status"`
	Modules map[string]bool `json:"modules"`
}

type readinessReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// NewOpsHandler serves /metrics, /healthz and /readyz.
func NewOpsHandler(cfg OpsConfig) http.Handler {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_ = httpx.WriteJSON(w, http.StatusOK, moduleHealth(cfg.Modules))
	})
	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		report := runChecks(req.Context(), cfg.Checks)
		status := http.StatusOK
		if report.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		_ = httpx.WriteJSON(w, status, report)
	})
	return r
}

// moduleHealth reports every module that implements HealthReporter. A
// degraded module does not fail liveness.
func moduleHealth(modules []module.Module) healthReport {
	report := healthReport{Status: "ok", Modules: map[string]bool{}}
	for _, feature := range modules {
		if feature == nil {
			continue
		}
		reporter, ok := feature.(module.HealthReporter)
		if !ok {
			continue
		}
		healthy := reporter.Healthy()
		report.Modules[feature.ID()] = healthy
		if !healthy {
			report.Status = "degraded"
		}
	}
	return report
}

func runChecks(ctx context.Context, checks map[string]ReadinessCheck) readinessReport {
	report := readinessReport{Status: "ok", Checks: map[string]string{}}
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		check := checks[name]
		if check == nil {
			continue
		}
		checkCtx, cancel := context.WithTimeout(ctx, readinessTimeout)
		err := check(checkCtx)
		cancel()
		if err != nil {
			report.Status = "unavailable"
			report.Checks[name] = err.Error()
			continue
		}
		report.Checks[name] = "ok"
	}
	return report
}
