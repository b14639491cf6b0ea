package container

// ── Entry ─────────────────────────────────────────────────────────────────────

// Kind names the lifetime policy of an Entry.
type Kind string

const (
	// KindInstance entries return the same value on every Get.
	KindInstance Kind = "instance"
	// KindFactory entries call their factory on every Get.
	KindFactory Kind = "factory"
)

// Entry is a registry slot. It is sealed: the only implementations are
// Instance and Factory.
type Entry interface {
	Kind() Kind
	resolve() (any, error)
}

// Instance is a pre-built value returned unchanged on every resolution.
type Instance struct {
	Value any
}

// Kind implements Entry.
func (Instance) Kind() Kind { return KindInstance }

func (e Instance) resolve() (any, error) {
	if e.Value == nil {
		return nil, ErrMalformedEntry
	}
	return e.Value, nil
}

// Factory builds a fresh value on every resolution.
// Errors it returns reach the caller of Get unmodified.
type Factory func() (any, error)

// Kind implements Entry.
func (Factory) Kind() Kind { return KindFactory }

func (f Factory) resolve() (any, error) {
	if f == nil {
		return nil, ErrMalformedEntry
	}
	return f()
}

// valid reports whether e carries a usable value or callable.
func valid(e Entry) bool {
	switch v := e.(type) {
	case Instance:
		return v.Value != nil
	case Factory:
		return v != nil
	default:
		return false
	}
}
