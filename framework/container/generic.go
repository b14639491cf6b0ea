package container

import (
	"fmt"
	"reflect"
)

// ── Generics helpers ──────────────────────────────────────────────────────────

// Register stores v under KeyOf[T].
//
//	container.Register[Logger](c, zapLogger)   // keyed by the interface
func Register[T any](c *IocContainer, v T) error {
	return c.Register(KeyOf[T](), v)
}

// RegisterFactory stores f under KeyOf[T].
//
//	container.RegisterFactory(c, func() (*Conn, error) { return dial(addr) })
func RegisterFactory[T any](c *IocContainer, f func() (T, error)) error {
	if f == nil {
		return c.RegisterFactory(KeyOf[T](), nil)
	}
	return c.RegisterFactory(KeyOf[T](), func() (any, error) {
		return f()
	})
}

// RegisterNew default-constructs a T and stores it as an instance.
//
// Pointer types get a pointer to a zero element, maps an empty map, and
// value types their zero value. Interface, func, chan and unsafe pointer
// types fail with ErrNotConstructible. A locked container ignores the call.
func RegisterNew[T any](c *IocContainer) error {
	if c.Locked() {
		return nil
	}
	v, err := construct[T]()
	if err != nil {
		return err
	}
	return c.Register(KeyOf[T](), v)
}

func construct[T any]() (any, error) {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Pointer:
		return reflect.New(t.Elem()).Interface(), nil
	case reflect.Map:
		return reflect.MakeMap(t).Interface(), nil
	case reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return nil, fmt.Errorf("%w: %s", ErrNotConstructible, t)
	default:
		var zero T
		return zero, nil
	}
}

// Get resolves KeyOf[T] and asserts the result.
// An unregistered T yields the zero value and a nil error.
//
//	logger, err := container.Get[Logger](c)
func Get[T any](c *IocContainer) (T, error) {
	return GetKey[T](c, KeyOf[T]())
}

// GetKey resolves an arbitrary key, typically a Named one, as a T.
func GetKey[T any](c *IocContainer, key Key) (T, error) {
	var zero T
	v, err := c.Get(key)
	if err != nil || v == nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: [%s] resolved to %T, want %T", ErrTypeMismatch, key, v, zero)
	}
	return typed, nil
}

// MustGet is like Get but panics on error.
func MustGet[T any](c *IocContainer) T {
	v, err := Get[T](c)
	if err != nil {
		panic(err)
	}
	return v
}

// Purge removes the entry for KeyOf[T].
func Purge[T any](c *IocContainer) *IocContainer {
	return c.Purge(KeyOf[T]())
}
