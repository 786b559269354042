// Package errs provides standardized error types for the purchasing service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the failure kinds the service reports:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value violates a field-level constraint
//   - ObjectNotFoundError: an order or line item cannot be found
//   - InvalidStateTransitionError: an illegal status change or a mutation
//     blocked by the current order status
//   - DuplicateInvoiceNumberError: invoice number uniqueness violation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify the kind
//
// The HTTP adapter relies on the sentinels to map failures to status codes:
// not-found to 404, invalid transitions and validation failures to 400, and
// duplicate invoice numbers to 409.
package errs
