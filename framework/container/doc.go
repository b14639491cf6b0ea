// Package container provides a small inversion-of-control container.
//
// # Overview
//
// An IocContainer maps a Key (a Go type, or an explicit name) to an Entry.
// An entry is one of two things:
//
//   - Instance: a pre-built value, returned as is by every Get (singleton)
//   - Factory: a func called by every Get (transient)
//
// There is no auto-wiring and no scoping. Factories that need other services
// resolve them from the container themselves.
//
// # Container Lifecycle
//
//  1. Create: c := container.New(), or container.Default() for the process-wide one
//  2. Register entries, directly or through ServiceProviders
//  3. Lock: c.Lockdown()            // Register, Purge and Import become no-ops
//  4. Resolve with Get for the rest of the process
//
// # Registering
//
//	// Singleton: the same *Logger on every Get
//	container.Register(c, logger)
//
//	// Transient: a new *Conn on every Get
//	container.RegisterFactory(c, func() (*Conn, error) { return dial(addr) })
//
//	// Default-constructed: stores new(Metrics)
//	container.RegisterNew[*Metrics](c)
//
//	// Named key, for two services sharing a type
//	c.Register(container.Named("db.replica"), replica)
//
// Registering a key twice fails with a *DuplicateRegistrationError. Purge the
// key first to replace it.
//
// # Resolving
//
//	logger, err := container.Get[*Logger](c)
//	conn := container.MustGet[*Conn](c)
//
// Get on an unregistered key returns the zero value and a nil error.
//
// # Composing
//
//	infra := container.New()
//	services := container.New()
//	// ...
//	app, err := container.NewFrom(infra, services)
//
// Import stops at the first key collision and keeps what it already copied.
//
// # Service Providers
//
//	type AppServiceProvider struct{ container.BaseProvider }
//
//	func (p *AppServiceProvider) Register(c *container.IocContainer) error {
//	    return container.RegisterFactory(c, func() (*Mailer, error) {
//	        cfg := container.MustGet[*config.Config](c)
//	        return NewMailer(cfg)
//	    })
//	}
//
//	registry := container.NewProviderRegistry(c)
//	_ = registry.Register(&AppServiceProvider{})
//	_ = registry.Boot()
//	c.Lockdown()
package container
