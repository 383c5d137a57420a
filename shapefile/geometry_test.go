package shapefile

import (
	"testing"

	shp "github.com/jonas-p/go-shp"
	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeGeometryPoints(t *testing.T) {
	geom := shapeGeometry(&shp.Point{X: 1, Y: 2})
	require.NotNil(t, geom)
	assert.Equal(t, geojson.GeometryPoint, geom.Type)
	assert.Equal(t, []float64{1, 2}, geom.Point)

	geom = shapeGeometry(&shp.PointZ{X: 1, Y: 2, Z: 3})
	require.NotNil(t, geom)
	assert.Equal(t, []float64{1, 2, 3}, geom.Point)
}

func TestShapeGeometrySinglePartPolylineIsLineString(t *testing.T) {
	geom := shapeGeometry(&shp.PolyLine{
		NumParts:  1,
		NumPoints: 2,
		Parts:     []int32{0},
		Points:    []shp.Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
	})

	require.NotNil(t, geom)
	assert.Equal(t, geojson.GeometryLineString, geom.Type)
	assert.Equal(t, [][]float64{{0, 0}, {1, 1}}, geom.LineString)
}

func TestShapeGeometryMultiPartPolylineIsMultiLineString(t *testing.T) {
	geom := shapeGeometry(&shp.PolyLine{
		NumParts:  2,
		NumPoints: 5,
		Parts:     []int32{0, 2},
		Points: []shp.Point{
			{X: 0, Y: 0}, {X: 1, Y: 1},
			{X: 5, Y: 5}, {X: 6, Y: 6}, {X: 7, Y: 7},
		},
	})

	require.NotNil(t, geom)
	assert.Equal(t, geojson.GeometryMultiLineString, geom.Type)
	require.Len(t, geom.MultiLineString, 2)
	assert.Len(t, geom.MultiLineString[0], 2)
	assert.Len(t, geom.MultiLineString[1], 3)
}

func TestShapeGeometryPolygonKeepsAllRings(t *testing.T) {
	geom := shapeGeometry(&shp.Polygon{
		NumParts:  2,
		NumPoints: 8,
		Parts:     []int32{0, 4},
		Points: []shp.Point{
			{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 0},
			{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 4}, {X: 2, Y: 2},
		},
	})

	require.NotNil(t, geom)
	assert.Equal(t, geojson.GeometryPolygon, geom.Type)
	require.Len(t, geom.Polygon, 2)
	assert.Len(t, geom.Polygon[0], 4)
	assert.Len(t, geom.Polygon[1], 4)
}

func TestShapeGeometryPolyLineZCarriesVertexElevation(t *testing.T) {
	geom := shapeGeometry(&shp.PolyLineZ{
		NumParts:  1,
		NumPoints: 2,
		Parts:     []int32{0},
		Points:    []shp.Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
		ZArray:    []float64{7, 8},
	})

	require.NotNil(t, geom)
	assert.Equal(t, [][]float64{{0, 0, 7}, {1, 1, 8}}, geom.LineString)
}

func TestShapeGeometryMultiPoint(t *testing.T) {
	geom := shapeGeometry(&shp.MultiPoint{
		NumPoints: 2,
		Points:    []shp.Point{{X: 1, Y: 1}, {X: 2, Y: 2}},
	})

	require.NotNil(t, geom)
	assert.Equal(t, geojson.GeometryMultiPoint, geom.Type)
	assert.Equal(t, [][]float64{{1, 1}, {2, 2}}, geom.MultiPoint)
}

func TestShapeGeometryUnsupportedShape(t *testing.T) {
	assert.Nil(t, shapeGeometry(&shp.MultiPatch{}))
	assert.Nil(t, shapeGeometry(&shp.Null{}))
}
