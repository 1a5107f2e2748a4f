// Package kernel contains the shared value objects of the domain model:
// identifiers, geographic points, tracking numbers, and the validated
// primitives used by parcel and courier aggregates.
//
// All types in this package are immutable value objects constructed through
// factory functions that enforce their invariants. Zero values are invalid
// and fail Validate; this is enforced with the constructor guard pattern
// from internal/pkg/guard.
package kernel
