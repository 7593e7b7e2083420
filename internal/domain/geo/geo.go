// Package geo holds the coordinate type and great-circle distance helpers used
// to rank drop points by travel distance.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point converts the coordinate to an orb point (lng, lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// FromPoint builds a Coordinate from an orb point.
func FromPoint(p orb.Point) Coordinate {
	return Coordinate{Lat: p.Lat(), Lng: p.Lon()}
}

// Haversine returns the great-circle distance between a and b in kilometers.
func Haversine(a, b Coordinate) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	deltaLat := toRadians(b.Lat - a.Lat)
	deltaLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// boundPadding widens the box since orb measures with a larger Earth radius.
const boundPadding = 1.01

// BoundingBox returns the lat/lng box enclosing a circle of radiusKm around center.
// It is a pre-filter only; callers still check the exact Haversine distance.
func BoundingBox(center Coordinate, radiusKm float64) (minC, maxC Coordinate) {
	bound := orbgeo.NewBoundAroundPoint(center.Point(), radiusKm*1000*boundPadding)

	return FromPoint(bound.Min), FromPoint(bound.Max)
}

// RoundKm rounds a distance to two decimal places.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

// IsValid reports whether the coordinate lies within Earth bounds.
func (c Coordinate) IsValid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) ||
		math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return false
	}

	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
