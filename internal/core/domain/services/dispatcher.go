package services

import (
	"errors"
	"math"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/courier"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/parcel"
)

// ErrCourierNotFound is returned when no suitable courier is available for
// a parcel. This occurs when either no couriers are provided or none of
// them is currently available.
var ErrCourierNotFound = errors.New("courier not found")

// ParcelDispatcher is a domain service responsible for finding and assigning
// the best courier for a pending parcel.
//
// Business rules:
//   - Parcels must be valid and not in a terminal status
//   - Only available couriers are considered
//   - When the parcel has pickup coordinates and couriers report a location,
//     the courier closest to the pickup point wins
//   - Without geography the first available courier is taken
//   - Assignment marks the courier busy and records it on the parcel
//
// Example usage:
//
//	dispatcher := NewParcelDispatcher()
//	assigned, err := dispatcher.Dispatch(parcel, couriers)
//	if errors.Is(err, ErrCourierNotFound) {
//	    // all couriers are busy
//	    return
//	}
type ParcelDispatcher struct{}

// NewParcelDispatcher creates a new ParcelDispatcher instance.
func NewParcelDispatcher() ParcelDispatcher {
	return ParcelDispatcher{}
}

// Dispatch finds the best courier for the parcel and executes the
// assignment: the courier is marked busy and a reference to it is attached
// to the parcel. Returns ErrCourierNotFound when no courier is available.
func (d ParcelDispatcher) Dispatch(aggregate *parcel.Parcel, couriers []*courier.Courier) (*courier.Courier, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	best, err := d.findBestCourier(aggregate, couriers)
	if err != nil {
		return nil, err
	}

	ref, err := parcel.NewCourierRef(best.ID(), best.Name(), best.Phone().String())
	if err != nil {
		return nil, err
	}

	if err = aggregate.AssignCourier(ref); err != nil {
		return nil, err
	}

	best.MarkBusy()
	return best, nil
}

// findBestCourier evaluates the candidates and picks the available courier
// with the shortest distance to the parcel's pickup point. Couriers without
// a known location are treated as farther away than any located courier but
// still eligible.
func (d ParcelDispatcher) findBestCourier(aggregate *parcel.Parcel, couriers []*courier.Courier) (*courier.Courier, error) {
	var (
		bestCourier  *courier.Courier
		bestDistance = math.MaxFloat64
	)

	pickup := aggregate.PickupCoords()

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if !c.IsAvailable() {
			continue
		}

		distance := math.MaxFloat64 / 2
		if pickup != nil && c.Location() != nil {
			var err error
			distance, err = c.Location().DistanceTo(*pickup)
			if err != nil {
				return nil, err
			}
		}

		if distance < bestDistance {
			bestDistance = distance
			bestCourier = c
		}
	}

	if bestCourier == nil {
		return nil, ErrCourierNotFound
	}

	return bestCourier, nil
}
