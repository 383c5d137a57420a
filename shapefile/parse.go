// Package shapefile is the parser boundary: it takes the raw buffers of one
// shapefile group and returns a standard GeoJSON feature collection.
// Geometry decoding is delegated to go-shp; nothing here reads the binary
// format directly.
package shapefile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	shp "github.com/jonas-p/go-shp"
	geojson "github.com/paulmach/go.geojson"
	"github.com/rs/zerolog/log"

	"github.com/godeepar/shpimport/collect"
)

// ErrNoGeometry is returned for groups missing the mandatory .shp buffer.
var ErrNoGeometry = errors.New("shapefile group has no geometry part")

// Parse converts one shapefile group into a feature collection. The group's
// buffers are staged to a scratch directory so the reader can resolve the
// sibling parts (.dbf, .shx, ...) by base name; missing optional parts are
// tolerated. Malformed input fails the whole group.
func Parse(ctx context.Context, group collect.Group) (*geojson.FeatureCollection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !group.HasGeometry() {
		return nil, ErrNoGeometry
	}

	dir, err := os.MkdirTemp("", "shpimport-")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			log.Error().Err(err).Str("dir", dir).Msg("Failed to clean up scratch dir")
		}
	}()

	for ext, data := range group {
		if err := os.WriteFile(filepath.Join(dir, "data."+ext), data, 0o600); err != nil {
			return nil, err
		}
	}

	reader, err := shp.Open(filepath.Join(dir, "data.shp"))
	if err != nil {
		return nil, fmt.Errorf("opening shapefile: %w", err)
	}
	defer reader.Close()

	_, hasAttrs := group[collect.PartAttributes]

	var fields []shp.Field
	var decode textDecoder
	if hasAttrs {
		fields = reader.Fields()
		decode = decoderFor(group[collect.PartEncoding])
	}

	fc := geojson.NewFeatureCollection()

	for reader.Next() {
		row, shape := reader.Shape()

		geom := shapeGeometry(shape)
		if geom == nil {
			log.Warn().Int("record", row).Msg("Unsupported shape record, skipping")
			continue
		}

		feature := geojson.NewFeature(geom)
		for col, field := range fields {
			value := fieldValue(field, reader.ReadAttribute(row, col), decode)
			if value == nil {
				continue
			}
			feature.Properties[field.String()] = value
		}

		fc.AddFeature(feature)
	}

	if err := reader.Err(); err != nil {
		return nil, fmt.Errorf("reading shapefile: %w", err)
	}

	return fc, nil
}
