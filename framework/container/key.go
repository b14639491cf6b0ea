package container

import "reflect"

// Key identifies one logical service in the registry.
//
// Keys are comparable and safe to use as map keys. A type key is built with
// KeyOf and is the same value for every call site naming the same Go type;
// a named key is built with Named and is useful when several services share
// one Go type.
//
//	c.Register(container.KeyOf[*Logger](), logger)
//	c.Register(container.Named("db.primary"), primary)
type Key struct {
	typ  reflect.Type
	name string
}

// KeyOf returns the canonical key for type T.
//
//	key := container.KeyOf[Logger]()      // interface type
//	key := container.KeyOf[*sql.DB]()     // pointer type
func KeyOf[T any]() Key {
	return Key{typ: reflect.TypeFor[T]()}
}

// Named returns an explicit string-tagged key.
func Named(name string) Key {
	return Key{name: name}
}

// Type returns the Go type behind a type key, or nil for named keys.
func (k Key) Type() reflect.Type { return k.typ }

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool { return k.typ == nil && k.name == "" }

// String renders the key for logs and diagnostics.
func (k Key) String() string {
	if k.typ != nil {
		return k.typ.String()
	}
	return k.name
}
