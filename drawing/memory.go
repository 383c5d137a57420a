package drawing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Memory is an in-memory Drawing used by tests and the CLI harness. It
// records every mutation in order so callers can assert on creation and
// tagging sequences.
type Memory struct {
	// NoLayout simulates a drawing without a usable default layout.
	NoLayout bool

	Layers   []*MemLayer
	Entities []*MemEntity

	// Ops is the mutation journal: "layer:<id>", "circle:<id>",
	// "line:<id>", "polyline:<id>", "ref:<id>-><layer id>".
	Ops []string

	editing bool
}

// MemLayer is a recorded layer creation.
type MemLayer struct {
	Ident    string
	Record   Record
	Disabled bool
	Parent   *MemLayer

	mem *Memory
}

func (l *MemLayer) ID() string { return l.Ident }

func (l *MemLayer) SetDisabled(disabled bool) { l.Disabled = disabled }

func (l *MemLayer) SetLayerRef(ref Layer) {
	l.Parent = ref.(*MemLayer)
	l.mem.Ops = append(l.mem.Ops, fmt.Sprintf("ref:%s->%s", l.Ident, ref.ID()))
}

// MemEntity is a recorded primitive creation.
type MemEntity struct {
	Ident    string
	Kind     string // "circle", "line", "polyline"
	Center   []float64
	Radius   float64
	Vertices [][]float64
	Closed   bool
	Layer    *MemLayer

	mem *Memory
}

func (e *MemEntity) ID() string { return e.Ident }

func (e *MemEntity) SetLayerRef(ref Layer) {
	e.Layer = ref.(*MemLayer)
	e.mem.Ops = append(e.mem.Ops, fmt.Sprintf("ref:%s->%s", e.Ident, ref.ID()))
}

func (m *Memory) HasDefaultLayout() bool { return !m.NoLayout }

func (m *Memory) Edit(ctx context.Context) (Editor, error) {
	if m.editing {
		return nil, errors.New("edit session already open")
	}
	m.editing = true
	return &memEditor{mem: m}, nil
}

// LayerByName returns the first layer created with the given record name.
func (m *Memory) LayerByName(name string) *MemLayer {
	for _, l := range m.Layers {
		if l.Record.Name == name {
			return l
		}
	}
	return nil
}

// EntitiesOn returns the entities tagged to the given layer.
func (m *Memory) EntitiesOn(layer *MemLayer) []*MemEntity {
	var out []*MemEntity
	for _, e := range m.Entities {
		if e.Layer == layer {
			out = append(out, e)
		}
	}
	return out
}

type memEditor struct {
	mem *Memory
}

func (ed *memEditor) CreateLayer(ctx context.Context, rec Record) (Layer, error) {
	if err := ed.check(ctx); err != nil {
		return nil, err
	}
	l := &MemLayer{Ident: uuid.NewString(), Record: rec, mem: ed.mem}
	ed.mem.Layers = append(ed.mem.Layers, l)
	ed.mem.Ops = append(ed.mem.Ops, "layer:"+l.Ident)
	return l, nil
}

func (ed *memEditor) CreateCircle(ctx context.Context, center []float64, radius float64) (Entity, error) {
	if err := ed.check(ctx); err != nil {
		return nil, err
	}
	e := &MemEntity{Ident: uuid.NewString(), Kind: "circle", Center: center, Radius: radius, mem: ed.mem}
	ed.mem.Entities = append(ed.mem.Entities, e)
	ed.mem.Ops = append(ed.mem.Ops, "circle:"+e.Ident)
	return e, nil
}

func (ed *memEditor) CreateLine(ctx context.Context, from, to []float64) (Entity, error) {
	if err := ed.check(ctx); err != nil {
		return nil, err
	}
	e := &MemEntity{Ident: uuid.NewString(), Kind: "line", Vertices: [][]float64{from, to}, mem: ed.mem}
	ed.mem.Entities = append(ed.mem.Entities, e)
	ed.mem.Ops = append(ed.mem.Ops, "line:"+e.Ident)
	return e, nil
}

func (ed *memEditor) CreatePolyline(ctx context.Context, vertices [][]float64, closed bool) (Entity, error) {
	if err := ed.check(ctx); err != nil {
		return nil, err
	}
	e := &MemEntity{Ident: uuid.NewString(), Kind: "polyline", Vertices: vertices, Closed: closed, mem: ed.mem}
	ed.mem.Entities = append(ed.mem.Entities, e)
	ed.mem.Ops = append(ed.mem.Ops, "polyline:"+e.Ident)
	return e, nil
}

func (ed *memEditor) End() error {
	if !ed.mem.editing {
		return errors.New("edit session already closed")
	}
	ed.mem.editing = false
	return nil
}

func (ed *memEditor) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !ed.mem.editing {
		return errors.New("edit session closed")
	}
	return nil
}
