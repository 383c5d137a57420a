package shpimport

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	geojson "github.com/paulmach/go.geojson"
	"github.com/rs/zerolog/log"

	"github.com/godeepar/shpimport/drawing"
	"github.com/godeepar/shpimport/geo"
)

// Layer attributes derived per group, alongside the dataset name.
const (
	attrCenterX = "center_x"
	attrCenterY = "center_y"
	attrS2      = "s2"
)

const dateLayout = "2006-01-02"

// groupRecord builds the top-level layer record: the group name plus the
// extent center and, for geographic data, the s2 cell tokens covering it.
func groupRecord(name string, fc *geojson.FeatureCollection) drawing.Record {
	rec := drawing.Record{Name: name}

	var extent geo.Extent
	for _, feature := range fc.Features {
		if feature != nil {
			extendGeometry(&extent, feature.Geometry)
		}
	}
	if extent.Empty() {
		return rec
	}

	cx, cy := extent.Center()
	rec.Fields = append(rec.Fields,
		drawing.Field{Key: attrCenterX, Kind: drawing.KindFloat, Number: cx},
		drawing.Field{Key: attrCenterY, Kind: drawing.KindFloat, Number: cy},
	)

	if tokens := extent.S2Tokens(); len(tokens) > 0 {
		rec.Fields = append(rec.Fields, drawing.Field{Key: attrS2, Kind: drawing.KindString, Text: strings.Join(tokens, ",")})
	}

	return rec
}

// featureName picks a child layer name from the well-known identifying
// properties, falling back to the group name plus the feature index.
func featureName(group string, index int, props map[string]interface{}) string {
	if name, ok := props["name"].(string); ok && name != "" {
		return name
	}
	for _, key := range []string{"id", "fid", "osm_id", "uid", "uuid"} {
		if v, ok := props[key]; ok && v != nil {
			return fmt.Sprintf("%v", v)
		}
	}
	return fmt.Sprintf("%s-%d", group, index)
}

// featureRecord classifies every property value into a typed field: numbers
// become int or float depending on integrality, strings and booleans map
// directly, dates are formatted to text, and anything else is kept raw with
// a diagnostic.
func featureRecord(name string, props map[string]interface{}) drawing.Record {
	rec := drawing.Record{Name: name, Fields: make([]drawing.Field, 0, len(props))}

	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		rec.Fields = append(rec.Fields, attributeField(key, props[key]))
	}
	return rec
}

func attributeField(key string, value interface{}) drawing.Field {
	switch v := value.(type) {
	case int:
		return drawing.Field{Key: key, Kind: drawing.KindInt, Int: int64(v)}
	case int32:
		return drawing.Field{Key: key, Kind: drawing.KindInt, Int: int64(v)}
	case int64:
		return drawing.Field{Key: key, Kind: drawing.KindInt, Int: v}
	case float64:
		if integral(v) {
			return drawing.Field{Key: key, Kind: drawing.KindInt, Int: int64(v)}
		}
		return drawing.Field{Key: key, Kind: drawing.KindFloat, Number: v}
	case float32:
		return attributeField(key, float64(v))
	case string:
		return drawing.Field{Key: key, Kind: drawing.KindString, Text: v}
	case bool:
		return drawing.Field{Key: key, Kind: drawing.KindBool, Bool: v}
	case time.Time:
		return drawing.Field{Key: key, Kind: drawing.KindString, Text: v.Format(dateLayout)}
	default:
		log.Warn().Str("key", key).Type("type", value).Msg("Unconvertible property value, keeping raw")
		return drawing.Field{Key: key, Kind: drawing.KindRaw, Raw: value}
	}
}

// integral reports whether f holds an exact integer value within int64
// range.
func integral(f float64) bool {
	return f == math.Trunc(f) && math.Abs(f) < math.MaxInt64
}
