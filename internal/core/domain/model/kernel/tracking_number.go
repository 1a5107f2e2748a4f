package kernel

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"

	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/errs"
)

// trackingNumberPrefix prefixes every tracking number issued by the system.
const trackingNumberPrefix = "DEL"

// suffixAlphabet is the base36 uppercase alphabet used for the random suffix.
const suffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// trackingNumberPattern accepts the canonical format: prefix, six digits
// derived from the creation timestamp, and an optional three-character
// random suffix. Earlier seed data carried no suffix, so it stays optional.
var trackingNumberPattern = regexp.MustCompile(`^DEL\d{6}[0-9A-Z]{0,3}$`)

// ErrTrackingNumberIsNotConstructed is returned when validating a zero-value TrackingNumber.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking number must be created via NewTrackingNumber or TrackingNumberFromString")

// TrackingNumber is the public, human-readable identifier of a parcel,
// e.g. "DEL482913KQ7". It is what customers use for the public tracking
// lookup, independent of the internal UUID.
type TrackingNumber struct {
	value string
}

// NewTrackingNumber issues a tracking number for a parcel created at the
// given time: the last six digits of the unix-millisecond timestamp plus a
// three-character random suffix to disambiguate same-millisecond creations.
func NewTrackingNumber(createdAt time.Time) TrackingNumber {
	millis := createdAt.UnixMilli() % 1_000_000

	suffix := make([]byte, 3)
	for i := range suffix {
		suffix[i] = suffixAlphabet[rand.IntN(len(suffixAlphabet))] //nolint:gosec // not security sensitive
	}

	return TrackingNumber{
		value: fmt.Sprintf("%s%06d%s", trackingNumberPrefix, millis, suffix),
	}
}

// TrackingNumberFromString parses a tracking number received from a client
// or restored from persistence.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if s == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("tracking number")
	}
	if !trackingNumberPattern.MatchString(s) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause("tracking number",
			fmt.Errorf("%q does not match the DEL format", s))
	}
	return TrackingNumber{value: s}, nil
}

// String returns the tracking number text.
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual reports whether two tracking numbers are identical.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate returns ErrTrackingNumberIsNotConstructed for the zero value.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return ErrTrackingNumberIsNotConstructed
	}
	return nil
}
