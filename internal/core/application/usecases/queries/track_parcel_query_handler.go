package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/ports"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackParcelQueryHandler serves the public tracking endpoint.
// Reads go through the tracking cache first; on a miss the snapshot is
// built from the database and stored with a TTL. Cache failures degrade to
// plain database reads.
type TrackParcelQueryHandler struct {
	db    *gorm.DB
	cache ports.TrackingCache
	ttl   time.Duration
}

// NewTrackParcelQueryHandler creates a handler for public tracking lookups.
func NewTrackParcelQueryHandler(db *gorm.DB, cache ports.TrackingCache, ttl time.Duration) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{
		db:    db,
		cache: cache,
		ttl:   ttl,
	}
}

// Handle executes the tracking lookup.
// Returns errs.ErrObjectNotFound (wrapped) when no parcel carries the
// tracking number.
func (h TrackParcelQueryHandler) Handle(
	ctx context.Context,
	query TrackParcelQuery,
) (TrackParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	key := query.TrackingNumber().String()

	cached, err := h.cache.Get(ctx, key)
	if err == nil {
		var resp TrackParcelQueryResponse
		if unmarshalErr := json.Unmarshal(cached, &resp); unmarshalErr == nil {
			return resp, nil
		}
		// snapshot is unreadable, fall through to the database
	} else if !errors.Is(err, ports.ErrCacheMiss) {
		slog.WarnContext(ctx, "tracking cache read failed", "trackingNumber", key, "error", err)
	}

	resp, err := h.loadSnapshot(ctx, query.TrackingNumber())
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
		if cacheErr := h.cache.Set(ctx, key, payload, h.ttl); cacheErr != nil {
			slog.WarnContext(ctx, "tracking cache write failed", "trackingNumber", key, "error", cacheErr)
		}
	}

	return resp, nil
}

func (h TrackParcelQueryHandler) loadSnapshot(
	ctx context.Context,
	trackingNumber kernel.TrackingNumber,
) (TrackParcelQueryResponse, error) {
	sqlRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			status,
			pickup_address,
			destination_address,
			current_lat,
			current_lng,
			delivery_deadline
		FROM parcels
		WHERE tracking_number = ?
	`, trackingNumber.String()).Rows()
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}
	defer sqlRows.Close()

	if !sqlRows.Next() {
		if err = sqlRows.Err(); err != nil {
			return TrackParcelQueryResponse{}, err
		}
		return TrackParcelQueryResponse{},
			errs.NewObjectNotFoundErrorWithCause("parcel", trackingNumber.String(), sql.ErrNoRows)
	}

	var resp TrackParcelQueryResponse
	var id uuid.UUID

	err = sqlRows.Scan(
		&id,
		&resp.TrackingNumber,
		&resp.Status,
		&resp.PickupAddress,
		&resp.DestinationAddress,
		&resp.CurrentLat,
		&resp.CurrentLng,
		&resp.DeliveryDeadline,
	)
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}
	_ = sqlRows.Close()

	parcelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	entries, err := loadTimeline(ctx, h.db, parcelID)
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	resp.Timeline = make([]TimelineEntryView, 0, len(entries))
	for _, e := range entries {
		resp.Timeline = append(resp.Timeline, TimelineEntryView{
			Status:    e.Status,
			Timestamp: e.Timestamp,
			Location:  e.Location,
		})
	}

	return resp, nil
}
