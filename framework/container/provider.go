package container

import (
	"fmt"
	"log/slog"
	"reflect"
	"sync"
)

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider groups the registrations of one subsystem.
//
// Register is called as soon as the provider is added to a ProviderRegistry.
// Boot is called after every provider has registered, so it may resolve
// entries registered by other providers.
//
//	type CacheProvider struct{ container.BaseProvider }
//
//	func (p *CacheProvider) Register(c *container.IocContainer) error {
//	    return container.RegisterFactory(c, func() (*Cache, error) {
//	        return NewCache(container.MustGet[*Config](c))
//	    })
//	}
type ServiceProvider interface {
	Register(c *IocContainer) error
	Boot(c *IocContainer) error
}

// BaseProvider is an embeddable no-op Boot.
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *IocContainer) error { return nil }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry registers and boots ServiceProviders against one container.
//
// The registry lock is never held while provider code runs, so a provider may
// add further providers from its own Register or Boot.
type ProviderRegistry struct {
	mu         sync.Mutex
	c          *IocContainer
	providers  []ServiceProvider
	registered map[ServiceProvider]bool
	booting    bool
	booted     bool
}

// NewProviderRegistry creates a registry bound to c.
func NewProviderRegistry(c *IocContainer) *ProviderRegistry {
	return &ProviderRegistry{
		c:          c,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register calls p.Register. Adding the same provider twice is a no-op.
// Providers added after Boot are booted immediately; providers added while
// Boot is running are booted by that run.
func (r *ProviderRegistry) Register(p ServiceProvider) error {
	r.mu.Lock()
	if r.registered[p] {
		r.mu.Unlock()
		return nil
	}
	r.registered[p] = true
	r.mu.Unlock()

	name := providerName(p)
	if err := p.Register(r.c); err != nil {
		r.mu.Lock()
		delete(r.registered, p)
		r.mu.Unlock()
		return fmt.Errorf("provider %s: register: %w", name, err)
	}

	r.mu.Lock()
	r.providers = append(r.providers, p)
	booted := r.booted
	r.mu.Unlock()
	slog.Debug("service provider registered", "provider", name)

	if booted {
		if err := p.Boot(r.c); err != nil {
			return fmt.Errorf("provider %s: boot: %w", name, err)
		}
	}
	return nil
}

// Boot calls Boot on every registered provider in registration order,
// including providers registered by an earlier provider's Boot.
// Only the first successful call has any effect.
func (r *ProviderRegistry) Boot() error {
	r.mu.Lock()
	if r.booted || r.booting {
		r.mu.Unlock()
		return nil
	}
	r.booting = true
	r.mu.Unlock()

	for i := 0; ; i++ {
		r.mu.Lock()
		if i == len(r.providers) {
			r.booting = false
			r.booted = true
			n := len(r.providers)
			r.mu.Unlock()
			slog.Debug("service providers booted", "count", n)
			return nil
		}
		p := r.providers[i]
		r.mu.Unlock()

		if err := p.Boot(r.c); err != nil {
			r.mu.Lock()
			r.booting = false
			r.mu.Unlock()
			return fmt.Errorf("provider %s: boot: %w", providerName(p), err)
		}
	}
}

// Booted reports whether Boot has completed.
func (r *ProviderRegistry) Booted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.booted
}

// Providers returns the registered providers in registration order.
func (r *ProviderRegistry) Providers() []ServiceProvider {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ServiceProvider, len(r.providers))
	copy(out, r.providers)
	return out
}

func providerName(p ServiceProvider) string {
	return reflect.TypeOf(p).String()
}
