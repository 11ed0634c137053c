// Package guard provides ConstructorGuard, a marker embedded into value objects,
// entities and commands to tell constructor-built values apart from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value went through its constructor.
// The zero value is "not constructed".
//
// Example:
//
//	type StreetAddress struct {
//	    street string
//	    guard  guard.ConstructorGuard
//	}
//
//	func (a StreetAddress) Validate() error {
//	    return a.guard.Validate(ErrStreetAddressIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the owner was not built by its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
