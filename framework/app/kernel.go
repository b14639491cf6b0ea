package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/km-arc/microioc/framework/config"
	"github.com/km-arc/microioc/framework/container"
	"github.com/km-arc/microioc/framework/logging"
	"github.com/km-arc/microioc/framework/providers"
	"github.com/km-arc/microioc/framework/routing"
)

// ErrNoDebugAddr is returned by Serve when no listen address is configured.
var ErrNoDebugAddr = errors.New("app: IOC_DEBUG_ADDR is not set")

// Application is the top-level container.
// It embeds the IocContainer and a ProviderRegistry so user code can call
// app.Register(provider) and container.Get[T](app.IocContainer) directly.
type Application struct {
	*container.IocContainer
	Providers *container.ProviderRegistry
}

// New creates an application around a fresh container and registers the
// framework providers.
func New(envFiles ...string) (*Application, error) {
	return NewWithContainer(container.New(), envFiles...)
}

// NewWithContainer is like New but uses c, e.g. container.Default().
func NewWithContainer(c *container.IocContainer, envFiles ...string) (*Application, error) {
	a := &Application{
		IocContainer: c,
		Providers:    container.NewProviderRegistry(c),
	}

	// Register framework core providers (config first, everything else reads it)
	for _, p := range []container.ServiceProvider{
		&providers.ConfigServiceProvider{EnvFiles: envFiles},
		&providers.LoggingServiceProvider{},
		&providers.MetricsServiceProvider{},
		&providers.RoutingServiceProvider{},
	} {
		if err := a.Register(p); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) error {
	return a.Providers.Register(provider)
}

// Boot runs the Boot phase on all providers and, if IOC_LOCKDOWN is set,
// locks the container.
func (a *Application) Boot() error {
	if err := a.Providers.Boot(); err != nil {
		return err
	}
	if a.Config().IoC.Lockdown {
		a.Lockdown()
	}
	slog.Info("application booted",
		slog.Int("entries", a.Len()),
		slog.Bool("locked", a.Locked()))
	return nil
}

// Config resolves *config.Config from the container.
func (a *Application) Config() *config.Config {
	return container.MustGet[*config.Config](a.IocContainer)
}

// Router resolves *routing.Router from the container.
func (a *Application) Router() *routing.Router {
	return container.MustGet[*routing.Router](a.IocContainer)
}

// ── Serve ─────────────────────────────────────────────────────────────────────

// Serve boots the application if needed and runs the diagnostics server on
// IOC_DEBUG_ADDR until ctx is done.
func (a *Application) Serve(ctx context.Context) error {
	addr := a.Config().IoC.DebugAddr
	if addr == "" {
		return ErrNoDebugAddr
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return a.ServeListener(ctx, ln)
}

// ServeListener is like Serve but accepts connections on ln.
func (a *Application) ServeListener(ctx context.Context, ln net.Listener) error {
	if !a.Providers.Booted() {
		if err := a.Boot(); err != nil {
			ln.Close()
			return err
		}
	}
	cfg := a.Config()

	srv := &http.Server{
		Handler:           a.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          logging.NewLogLogger(slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("diagnostics server listening",
			slog.String("address", ln.Addr().String()),
			slog.String("app", cfg.App.Name),
			slog.String("env", cfg.App.Env))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.IoC.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	slog.Info("diagnostics server stopped gracefully")
	return nil
}

// Run serves until SIGINT or SIGTERM.
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.Serve(ctx)
}
