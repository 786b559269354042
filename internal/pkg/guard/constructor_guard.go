// Package guard provides the constructor guard pattern used by domain
// objects, commands, and queries to ensure they are only created through
// their designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when a
// nil validation error is passed. Validation of a zero-value object always
// fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was created through its
// constructor or left as a zero value. Embedding a guard in a command, query,
// or value object lets Validate reject instances that bypassed construction
// and therefore skipped invariant checks.
//
// Example:
//
//	type ChangeOrderStatusCommand struct {
//	    orderID int64
//	    target  order.Status
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewChangeOrderStatusCommand(orderID int64, target order.Status) (ChangeOrderStatusCommand, error) {
//	    // ... validation ...
//	    return ChangeOrderStatusCommand{orderID: orderID, target: target, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ChangeOrderStatusCommand) Validate() error {
//	    return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly
// constructed. Call it in the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its
// constructor. For zero-value objects it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
