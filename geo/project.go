// Package geo carries the coordinate helpers shared by the importer:
// mercator projection, extent tracking and s2 coverage.
package geo

import (
	"math"

	geo "github.com/paulmach/go.geo"
)

// Geographic reports whether x/y look like lon/lat degrees.
func Geographic(x, y float64) bool {
	return x >= -180 && x <= 180 && y >= -180 && y <= 180
}

// To4326 converts a coordinate to EPSG:4326. Values already in degree range
// pass through unchanged.
func To4326(x, y float64) (float64, float64) {
	if Geographic(x, y) {
		return x, y
	}

	mercPoint := geo.NewPoint(x, y)
	geo.Mercator.Inverse(mercPoint)
	x = math.Round(mercPoint[0]*10000) / 10000
	y = math.Round(mercPoint[1]*10000) / 10000
	return x, y
}

// To3857 converts a coordinate to EPSG:3857. Values outside degree range are
// assumed to be mercator already and pass through unchanged.
func To3857(x, y float64) (float64, float64) {
	if !Geographic(x, y) {
		return x, y
	}

	mercPoint := geo.NewPoint(x, y)
	geo.Mercator.Project(mercPoint)

	// trim decimals to the cm
	x = math.Round(mercPoint[0]*100) / 100
	y = math.Round(mercPoint[1]*100) / 100
	return x, y
}
