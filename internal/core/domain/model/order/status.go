package order

import (
	"fmt"

	"purchasing/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct procurement workflow.
//
// State transitions:
//
//	PENDING ────> IN_PROGRESS ────> COMPLETED
//	   │               │
//	   └──> CANCELLED <┘
//
// COMPLETED and CANCELLED are terminal: no outgoing transitions exist and
// orders in those states are immutable with respect to both status and
// line items.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Line items may be added, edited, or removed only in this status,
	// and only Pending orders may be deleted.
	Pending

	// InProgress indicates the order has been sent to the supplier and is
	// being fulfilled. The header remains editable but line items are frozen.
	InProgress

	// Completed indicates the order has been fully received.
	// This is a terminal state.
	Completed

	// Cancelled indicates the order was aborted before completion.
	// This is a terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire names.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

// StatusFromName converts a wire name ("PENDING", "IN_PROGRESS", ...) to its
// Status value. Returns a ValueIsInvalidError for unrecognized names.
func StatusFromName(name string) (Status, error) {
	for status, statusName := range getValidStatusStrings() {
		if statusName == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status name", name),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, InProgress, Completed, and Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status: "PENDING", "IN_PROGRESS",
// "COMPLETED", or "CANCELLED" for valid statuses, "UNKNOWN" otherwise.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo is a pure lookup against the transition table.
//
// Allowed transitions:
//   - Pending -> InProgress | Cancelled
//   - InProgress -> Completed | Cancelled
//
// Every other pair, including transitions out of the terminal states and
// self-transitions, returns false.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case Pending:
		return target == InProgress || target == Cancelled
	case InProgress:
		return target == Completed || target == Cancelled
	case Completed, Cancelled:
		return false
	}
	return false
}

// TransitionTo validates and performs a status transition.
//
// Returns the target status when the transition is listed in the table, or
// an InvalidStateTransitionError when it is not. The target must itself be a
// valid status.
//
// Example:
//
//	newStatus, err := currentStatus.TransitionTo(order.InProgress)
//	if err != nil {
//	    // Handle invalid transition
//	}
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidStateTransitionError(s.String(), target.String())
	}

	return target, nil
}
