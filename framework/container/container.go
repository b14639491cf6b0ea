package container

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"sync"

	"github.com/km-arc/microioc/framework/pair"
)

// ── Container ─────────────────────────────────────────────────────────────────

// IocContainer maps keys to entries.
//
// An entry is either an Instance (singleton, same value on every Get) or a
// Factory (transient, called on every Get). The lifetime is chosen once, at
// registration. After Lockdown the registry is frozen: Register, Purge and
// Import become silent no-ops while Get keeps working.
//
// All methods are safe for concurrent use.
type IocContainer struct {
	mu sync.Mutex

	// key → entry
	entries map[Key]Entry

	// registration order, used by All and Import
	order []Key

	locked bool
}

// New creates an empty container.
func New() *IocContainer {
	return &IocContainer{
		entries: make(map[Key]Entry),
	}
}

// NewFrom creates a container pre-seeded with the entries of others,
// imported in the order given. A key collision fails construction.
//
//	app, err := container.NewFrom(infra, services)
func NewFrom(others ...*IocContainer) (*IocContainer, error) {
	c := New()
	for i, other := range others {
		if err := c.Import(other); err != nil {
			return nil, fmt.Errorf("container: import #%d: %w", i, err)
		}
	}
	return c, nil
}

// ── Registration ──────────────────────────────────────────────────────────────

// Register stores a pre-built value under key.
//
//	c.Register(container.KeyOf[*Logger](), logger)
func (c *IocContainer) Register(key Key, value any) error {
	return c.RegisterEntry(key, Instance{Value: value})
}

// RegisterFactory stores a factory under key. The factory is not called now;
// it runs once per Get.
//
//	c.RegisterFactory(container.KeyOf[*Conn](), func() (any, error) {
//	    return dial(addr)
//	})
func (c *IocContainer) RegisterFactory(key Key, f Factory) error {
	return c.RegisterEntry(key, f)
}

// RegisterEntry stores e under key.
//
// A locked container ignores the call and returns nil, whatever e is.
// Otherwise a nil value or factory yields ErrMalformedEntry, and a key that
// already has an entry yields a *DuplicateRegistrationError and the existing
// entry is kept.
func (c *IocContainer) RegisterEntry(key Key, e Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.add(key, e)
}

// add is the strict-insert helper (must hold mu).
func (c *IocContainer) add(key Key, e Entry) error {
	if c.locked {
		slog.Debug("ioc register ignored, container locked", "key", key.String())
		return nil
	}
	if !valid(e) {
		return fmt.Errorf("register [%s]: %w", key, ErrMalformedEntry)
	}
	if _, exists := c.entries[key]; exists {
		return &DuplicateRegistrationError{Key: key}
	}
	c.entries[key] = e
	c.order = append(c.order, key)
	slog.Debug("ioc entry registered", "key", key.String(), "kind", e.Kind())
	return nil
}

// MustRegister is like Register but panics on error and returns c for chaining.
//
//	container.New().
//	    MustRegister(container.KeyOf[*Config](), cfg).
//	    MustRegisterFactory(container.KeyOf[*Conn](), dial).
//	    Lockdown()
func (c *IocContainer) MustRegister(key Key, value any) *IocContainer {
	if err := c.Register(key, value); err != nil {
		panic(err)
	}
	return c
}

// MustRegisterFactory is like RegisterFactory but panics on error.
func (c *IocContainer) MustRegisterFactory(key Key, f Factory) *IocContainer {
	if err := c.RegisterFactory(key, f); err != nil {
		panic(err)
	}
	return c
}

// Purge removes the entry for key. Absent keys and locked containers are no-ops.
func (c *IocContainer) Purge(key Key) *IocContainer {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.locked {
		slog.Debug("ioc purge ignored, container locked", "key", key.String())
		return c
	}
	if _, ok := c.entries[key]; !ok {
		return c
	}
	delete(c.entries, key)
	c.order = slices.DeleteFunc(c.order, func(k Key) bool { return k == key })
	slog.Debug("ioc entry purged", "key", key.String())
	return c
}

// PurgeAll empties the registry. No-op on a locked container.
func (c *IocContainer) PurgeAll() *IocContainer {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.locked {
		slog.Debug("ioc purge ignored, container locked")
		return c
	}
	c.entries = make(map[Key]Entry)
	c.order = nil
	slog.Debug("ioc registry purged")
	return c
}

// Lockdown freezes the registry for the rest of the container's lifetime.
// Calling it again has no further effect.
func (c *IocContainer) Lockdown() *IocContainer {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.locked {
		c.locked = true
		slog.Debug("ioc container locked", "entries", len(c.entries))
	}
	return c
}

// Locked reports whether Lockdown has been called.
func (c *IocContainer) Locked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.locked
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Get resolves key.
//
// An unregistered key yields (nil, nil). An Instance yields its value; a
// Factory is called with the container lock released, so it may resolve
// other keys, and its error is returned as is.
func (c *IocContainer) Get(key Key) (any, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	c.mu.Unlock()

	if !ok {
		return nil, nil
	}
	if e == nil {
		return nil, fmt.Errorf("resolve [%s]: %w", key, ErrMalformedEntry)
	}
	return e.resolve()
}

// Has reports whether key has an entry.
func (c *IocContainer) Has(key Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// Len returns the number of entries.
func (c *IocContainer) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// ── Composition ───────────────────────────────────────────────────────────────

// Import copies every entry of other into c, in other's registration order.
//
// The first key already present in c stops the import with a
// *DuplicateRegistrationError; entries copied before it stay in c.
// A locked c ignores the call.
func (c *IocContainer) Import(other *IocContainer) error {
	if other == nil {
		return nil
	}
	snapshot := other.Entries()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.locked {
		slog.Debug("ioc import ignored, container locked")
		return nil
	}
	for _, p := range snapshot {
		if err := c.add(p.First, p.Second); err != nil {
			return fmt.Errorf("import: %w", err)
		}
	}
	slog.Debug("ioc container imported", "entries", len(snapshot))
	return nil
}

// Entries returns a snapshot of the registry as (key, entry) pairs in
// registration order.
func (c *IocContainer) Entries() []pair.Pair[Key, Entry] {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]pair.Pair[Key, Entry], 0, len(c.order))
	for _, k := range c.order {
		out = append(out, pair.Of(k, c.entries[k]))
	}
	return out
}

// All iterates over a snapshot of the registry in registration order.
//
//	for key, entry := range c.All() {
//	    fmt.Println(key, entry.Kind())
//	}
func (c *IocContainer) All() iter.Seq2[Key, Entry] {
	snapshot := c.Entries()
	return func(yield func(Key, Entry) bool) {
		for _, p := range snapshot {
			if !yield(p.First, p.Second) {
				return
			}
		}
	}
}

// Keys returns the registered keys in registration order.
func (c *IocContainer) Keys() []Key {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.order)
}
