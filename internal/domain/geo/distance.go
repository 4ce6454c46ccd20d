// Package geo provides the great-circle math used for geofence containment.
package geo

import (
	"math"

	"tracenfind/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// DistanceMeters returns the haversine distance between a and b on a sphere
// of orb.EarthRadius. Non-finite input yields NaN, which callers must treat
// as "cannot evaluate".
func DistanceMeters(a, b entity.Coordinate) float64 {
	if !finite(a) || !finite(b) {
		return math.NaN()
	}

	return orbgeo.DistanceHaversine(toPoint(a), toPoint(b))
}

// Within reports whether p lies inside or on the circle of radius meters
// around center. ok is false when the distance cannot be evaluated.
func Within(p, center entity.Coordinate, radiusMeters float64) (inside, ok bool) {
	d := DistanceMeters(p, center)
	if math.IsNaN(d) || math.IsNaN(radiusMeters) {
		return false, false
	}

	return d <= radiusMeters, true
}

func toPoint(c entity.Coordinate) orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

func finite(c entity.Coordinate) bool {
	return !math.IsNaN(c.Lat) && !math.IsNaN(c.Lng) && !math.IsInf(c.Lat, 0) && !math.IsInf(c.Lng, 0)
}
