package ports

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by TrackingCache.Get when no snapshot is
// stored for the tracking number.
var ErrCacheMiss = errors.New("tracking cache miss")

// TrackingCache stores serialized tracking snapshots keyed by tracking
// number. It shields the database from repeated public tracking lookups.
// Entries are invalidated whenever the parcel changes.
type TrackingCache interface {
	// Get returns the cached snapshot for trackingNumber.
	// Returns ErrCacheMiss when nothing is cached.
	Get(ctx context.Context, trackingNumber string) ([]byte, error)

	// Set stores snapshot under trackingNumber for at most ttl.
	Set(ctx context.Context, trackingNumber string, snapshot []byte, ttl time.Duration) error

	// Invalidate removes the snapshot for trackingNumber, if any.
	Invalidate(ctx context.Context, trackingNumber string) error
}
