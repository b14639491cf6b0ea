package container

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateRegistration is matched by every *DuplicateRegistrationError.
	ErrDuplicateRegistration = errors.New("container: key already registered")

	// ErrMalformedEntry is returned for an entry holding neither a value nor a factory.
	ErrMalformedEntry = errors.New("container: malformed entry")

	// ErrNotConstructible is returned by RegisterNew for types without a usable default value.
	ErrNotConstructible = errors.New("container: type cannot be default-constructed")

	// ErrTypeMismatch is returned by Get[T] when the resolved value is not a T.
	ErrTypeMismatch = errors.New("container: resolved value has unexpected type")
)

// DuplicateRegistrationError reports a Register or Import on a key that
// already has an entry.
type DuplicateRegistrationError struct {
	Key Key
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("container: [%s] is already registered", e.Key)
}

// Is makes errors.Is(err, ErrDuplicateRegistration) hold.
func (e *DuplicateRegistrationError) Is(target error) bool {
	return target == ErrDuplicateRegistration
}
