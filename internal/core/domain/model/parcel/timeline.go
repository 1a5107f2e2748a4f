package parcel

import (
	"time"

	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/errs"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/guard"
)

// ErrTimelineEntryIsNotConstructed is returned when validating a zero-value TimelineEntry.
var ErrTimelineEntryIsNotConstructed = errs.NewValueIsRequiredError(
	"timeline entry must be created via NewTimelineEntry")

// TimelineEntry is one event in a parcel's append-only history: the status
// at that moment, when it was recorded, and a human-readable location label
// describing where or by whom ("123 Main St", "Status updated by admin").
type TimelineEntry struct {
	status   Status
	occurred time.Time
	location string

	guard guard.ConstructorGuard
}

// NewTimelineEntry creates a validated timeline entry.
func NewTimelineEntry(status Status, occurred time.Time, location string) (TimelineEntry, error) {
	if err := status.Validate(); err != nil {
		return TimelineEntry{}, err
	}
	if occurred.IsZero() {
		return TimelineEntry{}, errs.NewValueIsRequiredError("timestamp")
	}
	if location == "" {
		return TimelineEntry{}, errs.NewValueIsRequiredError("location")
	}

	return TimelineEntry{
		status:   status,
		occurred: occurred,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Status returns the parcel status recorded in this entry.
func (e TimelineEntry) Status() Status {
	return e.status
}

// Timestamp returns when the entry was recorded.
func (e TimelineEntry) Timestamp() time.Time {
	return e.occurred
}

// Location returns the location label of the entry.
func (e TimelineEntry) Location() string {
	return e.location
}

// Validate checks that the entry was built through NewTimelineEntry.
func (e TimelineEntry) Validate() error {
	return e.guard.Validate(ErrTimelineEntryIsNotConstructed)
}
