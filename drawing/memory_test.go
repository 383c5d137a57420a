package drawing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryEditSessionIsExclusive(t *testing.T) {
	mem := &Memory{}
	ctx := context.Background()

	editor, err := mem.Edit(ctx)
	require.NoError(t, err)

	_, err = mem.Edit(ctx)
	assert.Error(t, err, "a second concurrent session must be refused")

	require.NoError(t, editor.End())
	assert.Error(t, editor.End(), "closing twice must fail")

	// creations after End are rejected
	_, err = editor.CreateLayer(ctx, Record{Name: "late"})
	assert.Error(t, err)

	// a fresh session can be opened once the first is released
	editor, err = mem.Edit(ctx)
	require.NoError(t, err)
	require.NoError(t, editor.End())
}

func TestMemoryJournalsMutations(t *testing.T) {
	mem := &Memory{}
	ctx := context.Background()

	editor, err := mem.Edit(ctx)
	require.NoError(t, err)

	layer, err := editor.CreateLayer(ctx, Record{Name: "roads"})
	require.NoError(t, err)
	line, err := editor.CreateLine(ctx, []float64{0, 0, 0}, []float64{1, 1, 0})
	require.NoError(t, err)
	line.SetLayerRef(layer)
	require.NoError(t, editor.End())

	require.Len(t, mem.Ops, 3)
	assert.Equal(t, "layer:"+layer.ID(), mem.Ops[0])
	assert.Equal(t, "line:"+line.ID(), mem.Ops[1])
	assert.Equal(t, "ref:"+line.ID()+"->"+layer.ID(), mem.Ops[2])

	assert.Same(t, mem.Layers[0], mem.LayerByName("roads"))
	require.Len(t, mem.EntitiesOn(mem.Layers[0]), 1)
}
