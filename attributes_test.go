package shpimport

import (
	"testing"
	"time"

	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godeepar/shpimport/drawing"
)

func TestAttributeFieldClassification(t *testing.T) {
	t.Run("integral numbers become int fields", func(t *testing.T) {
		field := attributeField("count", 42.0)
		assert.Equal(t, drawing.KindInt, field.Kind)
		assert.Equal(t, int64(42), field.Int)

		field = attributeField("count", int64(7))
		assert.Equal(t, drawing.KindInt, field.Kind)
		assert.Equal(t, int64(7), field.Int)
	})

	t.Run("fractional numbers become float fields", func(t *testing.T) {
		field := attributeField("depth", 3.25)
		assert.Equal(t, drawing.KindFloat, field.Kind)
		assert.Equal(t, 3.25, field.Number)
	})

	t.Run("strings and booleans map directly", func(t *testing.T) {
		field := attributeField("owner", "smith")
		assert.Equal(t, drawing.KindString, field.Kind)
		assert.Equal(t, "smith", field.Text)

		field = attributeField("paved", true)
		assert.Equal(t, drawing.KindBool, field.Kind)
		assert.True(t, field.Bool)
	})

	t.Run("dates are stringified", func(t *testing.T) {
		field := attributeField("surveyed", time.Date(2021, 6, 30, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, drawing.KindString, field.Kind)
		assert.Equal(t, "2021-06-30", field.Text)
	})

	t.Run("everything else falls back to raw", func(t *testing.T) {
		value := []int{1, 2, 3}
		field := attributeField("odd", value)
		assert.Equal(t, drawing.KindRaw, field.Kind)
		assert.Equal(t, value, field.Raw)
	})
}

func TestFeatureRecordFieldsAreSortedByKey(t *testing.T) {
	rec := featureRecord("f", map[string]interface{}{
		"zone": "R1", "area": 10.0, "name": "lot"})

	require.Len(t, rec.Fields, 3)
	assert.Equal(t, "area", rec.Fields[0].Key)
	assert.Equal(t, "name", rec.Fields[1].Key)
	assert.Equal(t, "zone", rec.Fields[2].Key)
}

func TestFeatureName(t *testing.T) {
	assert.Equal(t, "lot 7", featureName("parcels", 0, map[string]interface{}{"name": "lot 7"}))
	assert.Equal(t, "123", featureName("parcels", 0, map[string]interface{}{"fid": 123}))
	assert.Equal(t, "parcels-4", featureName("parcels", 4, map[string]interface{}{"area": 1.0}))
}

func TestGroupRecordCarriesExtentAndTokens(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	fc.AddFeature(geojson.NewFeature(geojson.NewPointGeometry([]float64{10, 20})))
	fc.AddFeature(geojson.NewFeature(geojson.NewPointGeometry([]float64{12, 24})))

	rec := groupRecord("parcels", fc)
	assert.Equal(t, "parcels", rec.Name)

	fields := map[string]drawing.Field{}
	for _, field := range rec.Fields {
		fields[field.Key] = field
	}

	require.Contains(t, fields, "center_x")
	require.Contains(t, fields, "center_y")
	assert.Equal(t, 11.0, fields["center_x"].Number)
	assert.Equal(t, 22.0, fields["center_y"].Number)

	require.Contains(t, fields, "s2")
	assert.NotEmpty(t, fields["s2"].Text)
}

func TestGroupRecordEmptyCollection(t *testing.T) {
	rec := groupRecord("empty", geojson.NewFeatureCollection())
	assert.Empty(t, rec.Fields)
}
