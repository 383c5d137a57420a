package shpimport

import (
	geojson "github.com/paulmach/go.geojson"

	"github.com/godeepar/shpimport/geo"
)

// vertex normalizes one coordinate tuple to 3D (zero-filled Z), optionally
// reprojects it to web mercator, and applies the global scale factor.
func (imp *Importer) vertex(coord []float64) []float64 {
	var x, y, z float64
	switch len(coord) {
	case 0:
	case 1:
		x = coord[0]
	case 2:
		x, y = coord[0], coord[1]
	default:
		x, y, z = coord[0], coord[1], coord[2]
	}

	if imp.Options.Mercator {
		x, y = geo.To3857(x, y)
	}

	s := imp.Options.Scale
	return []float64{x * s, y * s, z * s}
}

func (imp *Importer) vertices(points [][]float64) [][]float64 {
	out := make([][]float64, len(points))
	for i, point := range points {
		out[i] = imp.vertex(point)
	}
	return out
}

// extendGeometry grows the extent with every coordinate of g.
func extendGeometry(e *geo.Extent, g *geojson.Geometry) {
	if g == nil {
		return
	}

	switch g.Type {
	case geojson.GeometryPoint:
		extendCoord(e, g.Point)
	case geojson.GeometryMultiPoint:
		extendCoords(e, g.MultiPoint)
	case geojson.GeometryLineString:
		extendCoords(e, g.LineString)
	case geojson.GeometryMultiLineString:
		for _, line := range g.MultiLineString {
			extendCoords(e, line)
		}
	case geojson.GeometryPolygon:
		for _, ring := range g.Polygon {
			extendCoords(e, ring)
		}
	case geojson.GeometryMultiPolygon:
		for _, polygon := range g.MultiPolygon {
			for _, ring := range polygon {
				extendCoords(e, ring)
			}
		}
	case geojson.GeometryCollection:
		for _, sub := range g.Geometries {
			extendGeometry(e, sub)
		}
	}
}

func extendCoord(e *geo.Extent, coord []float64) {
	if len(coord) >= 2 {
		e.Extend(coord[0], coord[1])
	}
}

func extendCoords(e *geo.Extent, coords [][]float64) {
	for _, coord := range coords {
		extendCoord(e, coord)
	}
}
