package shapefile

import (
	shp "github.com/jonas-p/go-shp"
	geojson "github.com/paulmach/go.geojson"
)

// shapeGeometry converts one decoded shape record to a GeoJSON geometry.
// All rings of a polygon record become one Polygon (outer boundary plus
// holes); ring winding is not inspected. Returns nil for shape types the
// importer does not support.
func shapeGeometry(shape shp.Shape) *geojson.Geometry {
	switch s := shape.(type) {
	case *shp.Point:
		return geojson.NewPointGeometry([]float64{s.X, s.Y})

	case *shp.PointM:
		return geojson.NewPointGeometry([]float64{s.X, s.Y})

	case *shp.PointZ:
		return geojson.NewPointGeometry([]float64{s.X, s.Y, s.Z})

	case *shp.MultiPoint:
		return geojson.NewMultiPointGeometry(coords(s.Points, nil)...)

	case *shp.MultiPointM:
		return geojson.NewMultiPointGeometry(coords(s.Points, nil)...)

	case *shp.MultiPointZ:
		return geojson.NewMultiPointGeometry(coords(s.Points, s.ZArray)...)

	case *shp.PolyLine:
		return lineGeometry(parts(s.Parts, s.Points, nil))

	case *shp.PolyLineM:
		return lineGeometry(parts(s.Parts, s.Points, nil))

	case *shp.PolyLineZ:
		return lineGeometry(parts(s.Parts, s.Points, s.ZArray))

	case *shp.Polygon:
		return geojson.NewPolygonGeometry(parts(s.Parts, s.Points, nil))

	case *shp.PolygonM:
		return geojson.NewPolygonGeometry(parts(s.Parts, s.Points, nil))

	case *shp.PolygonZ:
		return geojson.NewPolygonGeometry(parts(s.Parts, s.Points, s.ZArray))

	default:
		return nil
	}
}

// lineGeometry keeps single-part records as a LineString so the two-vertex
// segment rule applies downstream.
func lineGeometry(lines [][][]float64) *geojson.Geometry {
	if len(lines) == 1 {
		return geojson.NewLineStringGeometry(lines[0])
	}
	return geojson.NewMultiLineStringGeometry(lines...)
}

// coords flattens points, attaching per-vertex Z where the record carries it.
func coords(points []shp.Point, z []float64) [][]float64 {
	out := make([][]float64, len(points))
	for i, p := range points {
		if i < len(z) {
			out[i] = []float64{p.X, p.Y, z[i]}
		} else {
			out[i] = []float64{p.X, p.Y}
		}
	}
	return out
}

// parts splits a record's flat point array at its part offsets.
func parts(offsets []int32, points []shp.Point, z []float64) [][][]float64 {
	if len(offsets) == 0 {
		return [][][]float64{coords(points, z)}
	}

	out := make([][][]float64, 0, len(offsets))
	for i, start := range offsets {
		end := int32(len(points))
		if i+1 < len(offsets) {
			end = offsets[i+1]
		}
		if start < 0 || int(end) > len(points) || start > end {
			continue
		}
		var zpart []float64
		if z != nil {
			zpart = z[start:end]
		}
		out = append(out, coords(points[start:end], zpart))
	}
	return out
}
