package order

import (
	"fmt"

	"canteen/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow the
// back-office workflow.
//
// State transitions:
//
//	PENDING ──> ACCEPTED ──> COMPLETED
//	   │
//	   └──> CANCELLED
//
// COMPLETED and CANCELLED are archival states: reaching either removes the
// order from the active queue. They are terminal for the machine itself; the
// only way out is the aggregate's explicit restore, which resets to PENDING.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status of every order. Pending orders wait in
	// the active queue for an admin to accept or cancel them.
	Pending

	// Accepted indicates the kitchen is working on the order. Accepted
	// orders can no longer be edited or deleted.
	Accepted

	// Completed indicates the order was fulfilled. Archival state.
	Completed

	// Cancelled indicates the order was called off before acceptance.
	// Archival state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		Pending:       "PENDING",
		Accepted:      "ACCEPTED",
		Completed:     "COMPLETED",
		Cancelled:     "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Accepted:  "ACCEPTED",
		Completed: "COMPLETED",
		Cancelled: "CANCELLED",
	}
}

// StatusFromString parses the wire representation of a status.
// Accepted values are "PENDING", "ACCEPTED", "COMPLETED" and "CANCELLED".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that the Status value is one of the defined lifecycle
// states. StatusUnknown and any other value are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status ("PENDING", ...) or
// "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsArchival reports whether the status removes the order from the active
// queue. COMPLETED and CANCELLED are archival.
func (s Status) IsArchival() bool {
	return s == Completed || s == Cancelled
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted
//
// Returns (0, InvalidTransitionError) from any other status.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError(s.String(), Accepted.String())
	}
	return Accepted, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Accepted -> Completed
//
// Returns (0, InvalidTransitionError) from any other status.
func (s Status) Complete() (Status, error) {
	if s != Accepted {
		return 0, errs.NewInvalidTransitionError(s.String(), Completed.String())
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//
// Accepted orders are already in the kitchen and completed orders are
// history; neither can be cancelled. Returns (0, InvalidTransitionError)
// from any status but Pending.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError(s.String(), Cancelled.String())
	}
	return Cancelled, nil
}

// TransitionTo applies the legal-transition table for an arbitrary target
// status. Used by the admin status-change operation, where the target comes
// off the wire. PENDING is not a valid target: returning to PENDING is the
// restore operation, not a plain transition.
func (s Status) TransitionTo(target Status) (Status, error) {
	switch target {
	case Accepted:
		return s.Accept()
	case Completed:
		return s.Complete()
	case Cancelled:
		return s.Cancel()
	default:
		return 0, errs.NewInvalidTransitionError(s.String(), target.String())
	}
}
