// Package collect walks a workspace tree and groups loose shapefile parts
// by their shared base name.
package collect

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/godeepar/shpimport/workspace"
)

// The six shapefile part suffixes the collector recognizes. Everything else
// is dropped with a diagnostic.
const (
	PartGeometry     = "shp"
	PartAttributes   = "dbf"
	PartProjection   = "prj"
	PartEncoding     = "cpg"
	PartSpatialIndex = "qix"
	PartShapeIndex   = "shx"
)

// Group holds the raw buffers of one shapefile dataset, keyed by part
// suffix. A group is usable by the parser once the geometry buffer is
// present; the other parts are optional.
type Group map[string][]byte

// HasGeometry reports whether the group carries the mandatory .shp buffer.
func (g Group) HasGeometry() bool {
	_, ok := g[PartGeometry]
	return ok
}

func recognized(ext string) bool {
	switch ext {
	case PartGeometry, PartAttributes, PartProjection, PartEncoding, PartSpatialIndex, PartShapeIndex:
		return true
	}
	return false
}

// Collect recurses through items and accumulates shapefile groups by base
// name. Unknown suffixes and MIME types are logged and skipped; duplicate
// name+suffix pairs are last-write-wins. A failed byte fetch or listing
// aborts the whole collection.
func Collect(ctx context.Context, items []workspace.Item) (map[string]Group, error) {
	groups := make(map[string]Group)
	if err := walk(ctx, items, groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func walk(ctx context.Context, items []workspace.Item, groups map[string]Group) error {
	for _, item := range items {
		switch item.MimeType() {
		case workspace.MimeFolder:
			children, err := item.Children(ctx)
			if err != nil {
				return fmt.Errorf("listing folder %q: %w", item.Title(), err)
			}
			if err := walk(ctx, children, groups); err != nil {
				return err
			}

		case workspace.MimeBinary:
			title := item.Title()
			if len(title) < 4 {
				log.Warn().Str("file", title).Msg("File name too short for a shapefile part, skipping")
				continue
			}

			// "parcels.shp" -> name "parcels", ext "shp". Case kept
			// as supplied.
			name := title[:len(title)-4]
			ext := title[len(title)-3:]

			if !recognized(ext) {
				log.Info().Str("file", title).Str("ext", ext).Msg("Not a shapefile part, skipping")
				continue
			}

			data, err := item.Content(ctx)
			if err != nil {
				return fmt.Errorf("reading %q: %w", title, err)
			}

			if groups[name] == nil {
				groups[name] = make(Group)
			}
			groups[name][ext] = data

		default:
			log.Info().Str("file", item.Title()).Str("mime", item.MimeType()).Msg("Unsupported item type, skipping")
		}
	}
	return nil
}
