// Package drawing defines the capability interfaces the importer needs from
// the host editor, so the host API can be substituted with a test double.
package drawing

import "context"

// FieldKind discriminates the typed attribute field variants.
type FieldKind int

const (
	KindInt FieldKind = iota
	KindFloat
	KindString
	KindBool

	// KindRaw is the lossy fallback for values the importer could not
	// classify. Raw carries the original value untouched.
	KindRaw
)

// Field is one typed attribute on a layer record. Exactly one of the value
// slots is meaningful, selected by Kind.
type Field struct {
	Key    string
	Kind   FieldKind
	Int    int64
	Number float64
	Text   string
	Bool   bool
	Raw    interface{}
}

// Record describes a layer to be created: a name plus its attribute fields.
type Record struct {
	Name   string
	Fields []Field
}

// Handle is the common surface of every host-owned object the importer
// creates. SetLayerRef tags the object with its owning layer.
type Handle interface {
	ID() string
	SetLayerRef(Layer)
}

// Layer is a host container entity grouping primitives and metadata.
type Layer interface {
	Handle
	SetDisabled(bool)
}

// Entity is a drawable primitive placed into the drawing.
type Entity interface {
	Handle
}

// Editor is one edit session on a drawing. Every creation call mutates the
// live drawing immediately; End releases the session. Coordinates are
// 3-element []float64 values.
type Editor interface {
	CreateLayer(ctx context.Context, rec Record) (Layer, error)
	CreateCircle(ctx context.Context, center []float64, radius float64) (Entity, error)
	CreateLine(ctx context.Context, from, to []float64) (Entity, error)
	CreatePolyline(ctx context.Context, vertices [][]float64, closed bool) (Entity, error)
	End() error
}

// Drawing is the import target. A drawing without a usable default layout
// cannot accept entities.
type Drawing interface {
	HasDefaultLayout() bool
	Edit(ctx context.Context) (Editor, error)
}
