package kernel

import (
	"fmt"
	"math"

	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/errs"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/guard"
)

const (
	// GeoLatMin and GeoLatMax bound the valid latitude range in degrees.
	GeoLatMin = -90.0
	GeoLatMax = 90.0
	// GeoLngMin and GeoLngMax bound the valid longitude range in degrees.
	GeoLngMin = -180.0
	GeoLngMax = 180.0

	// earthRadiusKm is the mean Earth radius used for distance calculations.
	earthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when validating a zero-value GeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint")

// GeoPoint is an immutable WGS84 coordinate pair. It is used for pickup and
// destination coordinates of parcels and for courier positions.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(40.7128, -74.0060)
//	if err != nil {
//	    // Handle validation error
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from latitude and longitude in degrees.
// Both values must be finite and within the WGS84 bounds.
func NewGeoPoint(lat float64, lng float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := p.setLat(lat); err != nil {
		return GeoPoint{}, err
	}
	if err := p.setLng(lng); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate checks that the GeoPoint was built through NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// IsEqual reports whether two points have identical coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lng == other.lng
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.lat, p.lng)
}

// DistanceTo returns the great-circle distance to another point in
// kilometers, computed with the haversine formula.
func (p GeoPoint) DistanceTo(other GeoPoint) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if err := other.Validate(); err != nil {
		return 0, err
	}

	dLat := (other.lat - p.lat) * math.Pi / 180
	dLng := (other.lng - p.lng) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(p.lat*math.Pi/180)*math.Cos(other.lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c, nil
}

func (p *GeoPoint) setLat(lat float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) {
		return errs.NewValueIsInvalidError("latitude")
	}
	if lat < GeoLatMin || lat > GeoLatMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, GeoLatMin, GeoLatMax)
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLng(lng float64) error {
	if math.IsNaN(lng) || math.IsInf(lng, 0) {
		return errs.NewValueIsInvalidError("longitude")
	}
	if lng < GeoLngMin || lng > GeoLngMax {
		return errs.NewValueIsOutOfRangeError("longitude", lng, GeoLngMin, GeoLngMax)
	}
	p.lng = lng
	return nil
}
