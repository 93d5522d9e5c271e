// Package guard provides a small helper for enforcing constructor usage
// on value objects, commands and queries.
//
// Go cannot prevent direct struct instantiation, so domain types embed a
// ConstructorGuard and check it in their Validate method. A zero-value
// struct carries a zero-value guard and fails validation, which means every
// instance that passes validation went through its factory function.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does not
// supply its own "not constructed" error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through a
// constructor. The zero value is invalid; only NewConstructorGuard produces
// a valid guard.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard in the "properly constructed" state.
// Constructors store the result in their object so later Validate calls pass.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate reports whether the owning object was built via its constructor.
// Returns nil for a constructed guard. For a zero-value guard it returns
// notConstructedErr, or ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}

	if notConstructedErr != nil {
		return notConstructedErr
	}

	return ErrDefaultConstructorGuard
}
