package providers_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/microioc/framework/config"
	"github.com/km-arc/microioc/framework/container"
	"github.com/km-arc/microioc/framework/providers"
	"github.com/km-arc/microioc/framework/routing"
)

func boot(t *testing.T, ps ...container.ServiceProvider) *container.IocContainer {
	t.Helper()
	c := container.New()
	reg := container.NewProviderRegistry(c)
	for _, p := range ps {
		require.NoError(t, reg.Register(p))
	}
	require.NoError(t, reg.Boot())
	return c
}

func TestConfigServiceProvider(t *testing.T) {
	t.Setenv("APP_NAME", "providers-test")
	c := boot(t, &providers.ConfigServiceProvider{EnvFiles: []string{"testdata/none.env"}})

	cfg := container.MustGet[*config.Config](c)
	require.NotNil(t, cfg)
	assert.Equal(t, "providers-test", cfg.App.Name)
	assert.Same(t, cfg, container.MustGet[*config.Config](c))
}

func TestLoggingServiceProvider(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	t.Setenv("LOG_LEVEL", "error")

	c := boot(t,
		&providers.ConfigServiceProvider{EnvFiles: []string{"testdata/none.env"}},
		&providers.LoggingServiceProvider{},
	)

	logger := container.MustGet[*slog.Logger](c)
	require.NotNil(t, logger)
	assert.Same(t, logger, slog.Default())
	assert.False(t, logger.Enabled(t.Context(), slog.LevelWarn))
}

func TestLoggingServiceProvider_WithoutConfig(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	c := boot(t, &providers.LoggingServiceProvider{})
	assert.NotNil(t, container.MustGet[*slog.Logger](c))
}

func TestRoutingServiceProvider_MountsEndpoints(t *testing.T) {
	c := boot(t,
		&providers.MetricsServiceProvider{},
		&providers.RoutingServiceProvider{Prefix: "/debug/ioc"},
	)
	require.NotNil(t, container.MustGet[*prometheus.Registry](c))
	router := container.MustGet[*routing.Router](c)

	for _, path := range []string{"/debug/ioc/entries", "/debug/ioc/status", "/metrics", "/healthz"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rr.Code, path)
	}
}

func TestRoutingServiceProvider_NoMetricsRegistry(t *testing.T) {
	c := boot(t, &providers.RoutingServiceProvider{})
	router := container.MustGet[*routing.Router](c)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ioc/entries", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
