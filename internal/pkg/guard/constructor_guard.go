// Package guard implements the constructor guard pattern used by domain
// value objects and entities. Embedding a ConstructorGuard lets a type detect
// whether it was built through its designated constructor or left as a zero
// value, so validation can reject improperly constructed instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether the embedding object went through its
// constructor. The zero value is "not constructed" and fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the object as properly
// constructed. Call it from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
