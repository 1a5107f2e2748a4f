package parcel

import (
	"errors"
	"fmt"

	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a status change violates the parcel
// lifecycle. It is the unwrap target for all transition rejections, so
// callers can classify them with errors.Is.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of a parcel.
//
// State transitions:
//
//	pending ──> picked_up ──> in_transit ──> delivered
//	   │            │             │
//	   └────────────┴─────────────┴───────> cancelled
//
// Forward moves may skip intermediate states (an admin can mark a pending
// parcel delivered directly). delivered and cancelled are terminal: no
// outgoing transitions are permitted from either.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every created parcel, waiting for
	// courier pickup.
	Pending

	// PickedUp indicates a courier has collected the parcel.
	PickedUp

	// InTransit indicates the parcel is on its way to the destination.
	InTransit

	// Delivered is the terminal success status.
	Delivered

	// Cancelled is the terminal status for parcels cancelled by the owner
	// or an admin. Reachable from any non-terminal status.
	Cancelled
)

// getStatusStrings returns the wire-format names for all statuses.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns only the statuses valid for a parcel.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a wire-format status name.
// Returns an error for unrecognized names, including "unknown".
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the five parcel statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-format name of the status.
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Transition validates a status change and returns the new status.
//
// Rules:
//   - terminal statuses (delivered, cancelled) have no outgoing transitions
//   - cancelled and delivered are reachable from any non-terminal status
//   - picked_up and in_transit are only reachable moving forward along the
//     chain; backward moves and self-transitions are rejected
//   - pending is never a transition target
//
// Returns ErrInvalidTransition (wrapped with details) when the move is not
// allowed; the receiver is unchanged.
func (s Status) Transition(to Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := to.Validate(); err != nil {
		return Unknown, err
	}

	if s.IsTerminal() {
		return Unknown, fmt.Errorf("%w: cannot change status of %s parcels", ErrInvalidTransition, s)
	}

	switch to {
	case Delivered, Cancelled:
		return to, nil
	case PickedUp, InTransit:
		if to <= s {
			return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, to)
		}
		return to, nil
	default:
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, to)
	}
}
