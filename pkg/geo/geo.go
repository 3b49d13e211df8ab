// Package geo provides great-circle distance and flight cost estimation.
//
// Distances are computed with the Haversine formula over a spherical Earth
// model (mean radius 6371 km). Coordinates are expressed in decimal degrees
// and validated before use: latitudes outside [-90, 90] or longitudes
// outside [-180, 180] fail fast with [ErrInvalidCoordinate] instead of
// silently producing nonsensical distances.
//
// Fuel and travel-time estimators are thin derivations on top of distance:
// fuel efficiency is expressed as kilometres per fuel unit, and travel time
// scales nominal flight time by a congestion-dependent delay multiplier.
package geo

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// EarthRadiusKm is the mean Earth radius used by the Haversine formula.
const EarthRadiusKm = 6371.0

var (
	// ErrInvalidCoordinate is returned by [Distance] when a latitude is
	// outside [-90, 90] or a longitude is outside [-180, 180].
	ErrInvalidCoordinate = errors.New("coordinate out of range")

	// ErrInvalidEfficiency is returned by [EstimateFuel] when the fuel
	// efficiency is zero or negative. Efficiency is km per fuel unit and
	// must be positive for the division to be meaningful.
	ErrInvalidEfficiency = errors.New("fuel efficiency must be positive")

	// ErrInvalidSpeed is returned by [EstimateTravelTime] when the cruise
	// speed is zero or negative.
	ErrInvalidSpeed = errors.New("cruise speed must be positive")
)

// Coordinate is a geographic position in decimal degrees.
//
// The zero value is a valid coordinate (0°N 0°E, in the Gulf of Guinea),
// so constructors that read external data should call [Coordinate.Validate]
// rather than relying on zero checks.
type Coordinate struct {
	Lat float64 // degrees, positive north
	Lon float64 // degrees, positive east
}

// Validate reports whether the coordinate lies within the geographic range.
// Returns ErrInvalidCoordinate wrapped with the offending values otherwise.
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 || c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: (%.4f, %.4f)", ErrInvalidCoordinate, c.Lat, c.Lon)
	}
	return nil
}

// Distance returns the great-circle distance between a and b in kilometres
// using the Haversine formula. The result is symmetric and zero iff the
// coordinates are equal. Returns ErrInvalidCoordinate if either input is
// out of range.
func Distance(a, b Coordinate) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}

	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h)), nil
}

// EstimateFuel returns the fuel required to cover distanceKm at the given
// efficiency (kilometres per fuel unit). Returns ErrInvalidEfficiency if
// efficiency is not positive.
func EstimateFuel(distanceKm, efficiency float64) (float64, error) {
	if efficiency <= 0 {
		return 0, fmt.Errorf("%w: %.2f", ErrInvalidEfficiency, efficiency)
	}
	return distanceKm / efficiency, nil
}

// EstimateTravelTime returns the expected flight time for distanceKm at
// cruiseSpeedKmh, inflated by a congestion delay multiplier. Congestion is
// graded 0-10; each grade adds 10% to the nominal time, so a fully
// congested segment takes twice as long as a clear one.
func EstimateTravelTime(distanceKm, cruiseSpeedKmh float64, congestionLevel int) (time.Duration, error) {
	if cruiseSpeedKmh <= 0 {
		return 0, fmt.Errorf("%w: %.2f", ErrInvalidSpeed, cruiseSpeedKmh)
	}
	factor := DelayFactor(congestionLevel)
	hours := distanceKm / cruiseSpeedKmh * factor
	return time.Duration(hours * float64(time.Hour)), nil
}

// DelayFactor returns the congestion delay multiplier for a 0-10 congestion
// grade. Values outside the grade range are clamped.
func DelayFactor(congestionLevel int) float64 {
	if congestionLevel < 0 {
		congestionLevel = 0
	}
	if congestionLevel > 10 {
		congestionLevel = 10
	}
	return 1.0 + float64(congestionLevel)/10.0
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
