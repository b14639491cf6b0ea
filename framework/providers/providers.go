package providers

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/km-arc/microioc/framework/config"
	"github.com/km-arc/microioc/framework/container"
	gohttp "github.com/km-arc/microioc/framework/http"
	"github.com/km-arc/microioc/framework/inspect"
	"github.com/km-arc/microioc/framework/logging"
	"github.com/km-arc/microioc/framework/metrics"
	"github.com/km-arc/microioc/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the configuration from .env and the environment.
//
// Registers:
//   - *config.Config (instance)
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(c *container.IocContainer) error {
	return container.Register(c, config.Load(p.EnvFiles...))
}

// ── LoggingServiceProvider ────────────────────────────────────────────────────

// LoggingServiceProvider builds the structured logger from *config.Config and
// installs it as the slog default.
//
// Registers (during Boot, once config is resolvable):
//   - *slog.Logger (instance)
type LoggingServiceProvider struct{}

func (p *LoggingServiceProvider) Register(_ *container.IocContainer) error { return nil }

func (p *LoggingServiceProvider) Boot(c *container.IocContainer) error {
	cfg, err := container.Get[*config.Config](c)
	if err != nil {
		return err
	}
	level := "info"
	name, version := "microioc", "dev"
	if cfg != nil {
		level, name, version = cfg.Log.Level, cfg.App.Name, cfg.App.Version
	}
	logger := logging.NewStructuredLogger(name, version, level)
	slog.SetDefault(logger)
	return container.Register(c, logger)
}

// ── MetricsServiceProvider ────────────────────────────────────────────────────

// MetricsServiceProvider creates a Prometheus registry collecting the
// container's own state.
//
// Registers:
//   - *prometheus.Registry (instance)
type MetricsServiceProvider struct {
	container.BaseProvider
}

func (p *MetricsServiceProvider) Register(c *container.IocContainer) error {
	return container.Register(c, metrics.NewRegistry(c))
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the diagnostics router and, on Boot,
// mounts the inspect endpoints, /metrics and /healthz.
//
// Registers:
//   - *routing.Router (instance)
type RoutingServiceProvider struct {
	// Prefix of the inspect endpoints, default "/ioc".
	Prefix string
}

func (p *RoutingServiceProvider) Register(c *container.IocContainer) error {
	return container.Register(c, routing.New())
}

func (p *RoutingServiceProvider) Boot(c *container.IocContainer) error {
	router, err := container.Get[*routing.Router](c)
	if err != nil || router == nil {
		return err
	}

	prefix := p.Prefix
	if prefix == "" {
		prefix = "/ioc"
	}
	inspect.NewController(c).Routes(router, prefix)

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		gohttp.NewResponse(w).Success(map[string]string{"status": "ok"})
	})

	reg, err := container.Get[*prometheus.Registry](c)
	if err != nil {
		return err
	}
	if reg != nil {
		router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}
	return nil
}
