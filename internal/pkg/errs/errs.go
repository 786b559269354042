package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors used for classification with errors.Is.
var (
	ErrObjectNotFound         = errors.New("object not found")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrValueIsRequired        = errors.New("value is required")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrDuplicateInvoiceNumber = errors.New("duplicate invoice number")
)

// ObjectNotFoundError reports that a looked-up object does not exist.
// ParamName identifies what was looked up (for example "order" or
// "line item"), ID holds the identifier that missed.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping the
// underlying cause, typically a persistence-layer error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports that a named value failed a constraint check.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
	}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the
// underlying cause describing which constraint was violated.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError reports that a required value is missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
	}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping
// the underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidStateTransitionError reports an illegal order status change, or a
// mutation gated by the current status. Target is empty when the error comes
// from a status gate rather than an explicit transition attempt.
type InvalidStateTransitionError struct {
	Current string
	Target  string
	Cause   error
}

// NewInvalidStateTransitionError creates an error for an illegal transition
// from Current to Target.
func NewInvalidStateTransitionError(current, target string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{
		Current: current,
		Target:  target,
	}
}

// NewInvalidStateTransitionErrorWithCause creates an InvalidStateTransitionError
// wrapping a cause that describes the violated gate. Pass an empty target when
// the order status blocked a mutation instead of a transition.
func NewInvalidStateTransitionErrorWithCause(current, target string, cause error) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{
		Current: current,
		Target:  target,
		Cause:   cause,
	}
}

func (e *InvalidStateTransitionError) Error() string {
	msg := fmt.Sprintf("%s: order is %s", ErrInvalidStateTransition, e.Current)
	if e.Target != "" {
		msg = fmt.Sprintf("%s: %s -> %s", ErrInvalidStateTransition, e.Current, e.Target)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// DuplicateInvoiceNumberError reports a uniqueness violation on the order
// invoice number.
type DuplicateInvoiceNumberError struct {
	InvoiceNumber string
	Cause         error
}

// NewDuplicateInvoiceNumberError creates a DuplicateInvoiceNumberError
// without a cause.
func NewDuplicateInvoiceNumberError(invoiceNumber string) *DuplicateInvoiceNumberError {
	return &DuplicateInvoiceNumberError{
		InvoiceNumber: invoiceNumber,
	}
}

// NewDuplicateInvoiceNumberErrorWithCause creates a DuplicateInvoiceNumberError
// wrapping the underlying cause, typically a unique-constraint violation.
func NewDuplicateInvoiceNumberErrorWithCause(invoiceNumber string, cause error) *DuplicateInvoiceNumberError {
	return &DuplicateInvoiceNumberError{
		InvoiceNumber: invoiceNumber,
		Cause:         cause,
	}
}

func (e *DuplicateInvoiceNumberError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrDuplicateInvoiceNumber, e.InvoiceNumber, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrDuplicateInvoiceNumber, e.InvoiceNumber)
}

func (e *DuplicateInvoiceNumberError) Unwrap() error {
	return ErrDuplicateInvoiceNumber
}
