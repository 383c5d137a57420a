// Package shpimport imports shapefile datasets found in a workspace tree
// into a host drawing: one disabled layer per dataset, one disabled child
// layer per feature, and circle/line/polyline primitives per geometry part.
package shpimport

import (
	"context"
	"fmt"

	geojson "github.com/paulmach/go.geojson"
	"github.com/rs/zerolog/log"

	"github.com/godeepar/shpimport/collect"
	"github.com/godeepar/shpimport/config"
	"github.com/godeepar/shpimport/drawing"
	"github.com/godeepar/shpimport/shapefile"
	"github.com/godeepar/shpimport/workspace"
)

// ParseFunc is the opaque parser boundary: one call per shapefile group.
type ParseFunc func(ctx context.Context, group collect.Group) (*geojson.FeatureCollection, error)

// Progress exposes the indeterminate busy flag and status string of a
// running import. Granular per-shape progress is deliberately not reported.
type Progress interface {
	Busy(status string)
	End()
}

// NopProgress discards progress updates.
type NopProgress struct{}

func (NopProgress) Busy(string) {}
func (NopProgress) End()        {}

// Importer converts collected shapefile groups into drawing entities.
type Importer struct {
	Options *config.Options

	// Parse may be replaced with a test double.
	Parse ParseFunc

	Progress Progress
}

// New returns an importer wired to the real shapefile parser.
func New(opts *config.Options) *Importer {
	if opts == nil {
		opts = config.Default()
	}
	return &Importer{
		Options:  opts,
		Parse:    shapefile.Parse,
		Progress: NopProgress{},
	}
}

// Import is the single entry point: it collects shapefile groups under root
// and materializes every feature into dwg. A drawing without a usable
// default layout is a silent no-op. The edit session is released on every
// exit path; unexpected failures are reported once here and abort the
// remainder of the import, leaving already created entities in place.
func (imp *Importer) Import(ctx context.Context, root workspace.Item, dwg drawing.Drawing) (err error) {
	if dwg == nil || !dwg.HasDefaultLayout() {
		return nil
	}

	defer func() {
		if err != nil {
			log.Error().Err(err).Msg("Import aborted")
		}
	}()

	imp.Progress.Busy("Reading shapefiles")
	defer imp.Progress.End()

	groups, err := collect.Collect(ctx, []workspace.Item{root})
	if err != nil {
		return err
	}

	editor, err := dwg.Edit(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if endErr := editor.End(); endErr != nil && err == nil {
			err = endErr
		}
	}()

	return imp.run(ctx, editor, groups)
}

func (imp *Importer) run(ctx context.Context, editor drawing.Editor, groups map[string]collect.Group) error {
	for name, group := range groups {
		fc, err := imp.Parse(ctx, group)
		if err != nil {
			return fmt.Errorf("parsing group %q: %w", name, err)
		}

		// no partial import for an unrecognized top-level shape
		if fc == nil || fc.Type != "FeatureCollection" {
			topType := "<nil>"
			if fc != nil {
				topType = fc.Type
			}
			log.Warn().Str("group", name).Str("type", topType).Msg("Parser returned an unsupported top-level shape, skipping group")
			continue
		}

		log.Info().Str("group", name).Int("features", len(fc.Features)).Msg("Importing shapefile group")

		if err := imp.importGroup(ctx, editor, name, fc); err != nil {
			return err
		}
	}
	return nil
}

func (imp *Importer) importGroup(ctx context.Context, editor drawing.Editor, name string, fc *geojson.FeatureCollection) error {
	top, err := editor.CreateLayer(ctx, groupRecord(name, fc))
	if err != nil {
		return err
	}
	top.SetDisabled(true)

	for i, feature := range fc.Features {
		if feature == nil || feature.Type != "Feature" {
			log.Warn().Str("group", name).Int("index", i).Msg("Not a feature, skipping")
			continue
		}

		rec := featureRecord(featureName(name, i, feature.Properties), feature.Properties)
		child, err := editor.CreateLayer(ctx, rec)
		if err != nil {
			return err
		}
		child.SetDisabled(true)

		if err := imp.drawGeometry(ctx, editor, child, feature.Geometry); err != nil {
			return err
		}

		child.SetLayerRef(top)
	}
	return nil
}

// drawGeometry dispatches on the geometry variant and creates the drawing
// primitives, tagging each with its owning layer immediately after creation.
// Unsupported variants are logged and skipped, leaving the layer empty.
func (imp *Importer) drawGeometry(ctx context.Context, editor drawing.Editor, layer drawing.Layer, g *geojson.Geometry) error {
	if g == nil {
		log.Warn().Str("layer", layer.ID()).Msg("Feature has no geometry, skipping")
		return nil
	}

	switch g.Type {
	case geojson.GeometryPoint:
		return imp.circle(ctx, editor, layer, g.Point)

	case geojson.GeometryMultiPoint:
		for _, point := range g.MultiPoint {
			if err := imp.circle(ctx, editor, layer, point); err != nil {
				return err
			}
		}

	case geojson.GeometryLineString:
		return imp.path(ctx, editor, layer, g.LineString)

	case geojson.GeometryMultiLineString:
		for _, line := range g.MultiLineString {
			if err := imp.path(ctx, editor, layer, line); err != nil {
				return err
			}
		}

	case geojson.GeometryPolygon:
		return imp.rings(ctx, editor, layer, g.Polygon)

	case geojson.GeometryMultiPolygon:
		for _, polygon := range g.MultiPolygon {
			if err := imp.rings(ctx, editor, layer, polygon); err != nil {
				return err
			}
		}

	default:
		log.Warn().Str("geometry", string(g.Type)).Msg("Unsupported geometry type, skipping")
	}
	return nil
}

func (imp *Importer) circle(ctx context.Context, editor drawing.Editor, layer drawing.Layer, point []float64) error {
	entity, err := editor.CreateCircle(ctx, imp.vertex(point), imp.Options.PointRadius)
	if err != nil {
		return err
	}
	entity.SetLayerRef(layer)
	return nil
}

// path draws a line string: exactly two vertices become a straight segment,
// anything else an open 3D polyline through all points in order.
func (imp *Importer) path(ctx context.Context, editor drawing.Editor, layer drawing.Layer, points [][]float64) error {
	vertices := imp.vertices(points)

	var entity drawing.Entity
	var err error
	if len(vertices) == 2 {
		entity, err = editor.CreateLine(ctx, vertices[0], vertices[1])
	} else {
		entity, err = editor.CreatePolyline(ctx, vertices, false)
	}
	if err != nil {
		return err
	}
	entity.SetLayerRef(layer)
	return nil
}

// rings draws one open polyline per polygon ring, outer boundary and holes
// alike. No closing, no meshing, no fill semantics.
func (imp *Importer) rings(ctx context.Context, editor drawing.Editor, layer drawing.Layer, polygon [][][]float64) error {
	for _, ring := range polygon {
		entity, err := editor.CreatePolyline(ctx, imp.vertices(ring), false)
		if err != nil {
			return err
		}
		entity.SetLayerRef(layer)
	}
	return nil
}
