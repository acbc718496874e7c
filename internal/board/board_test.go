package board

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink collects emitted actions for assertions.
type recordingSink struct {
	actions []Action
}

func (r *recordingSink) Emit(action Action) {
	r.actions = append(r.actions, action)
}

func TestBoard_StrokeLifecycleEmitsActions(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	b := New(200, 100, sink)
	b.SetBrush("#3b82f6", 4)

	b.Start(10, 10)
	b.Move(50, 10)
	b.Move(50, 40)
	b.End()

	assert.Equal(t, []Action{
		{Type: ActionStart, X: 10, Y: 10, Color: "#3b82f6", Width: 4},
		{Type: ActionDraw, X: 50, Y: 10},
		{Type: ActionDraw, X: 50, Y: 40},
		{Type: ActionEnd},
	}, sink.actions)
	assert.Len(t, b.Journal(), 4)
}

func TestBoard_GestureGuard(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	b := New(200, 100, sink)

	// No start in this gesture: both must be ignored.
	b.Move(50, 10)
	b.End()

	assert.Empty(t, sink.actions)
	assert.Empty(t, b.Journal())
}

func TestBoard_ReadOnlyIgnoresInput(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	b := New(200, 100, sink)
	b.SetReadOnly(true)

	b.Start(10, 10)
	b.Move(50, 10)
	b.End()
	b.Clear()

	assert.True(t, b.ReadOnly())
	assert.Empty(t, sink.actions)
	assert.Empty(t, b.Journal())
}

func TestBoard_OriginMapsViewportToLocal(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	b := New(200, 100, sink)
	b.SetOrigin(300, 120)

	b.Start(310, 130)
	b.Move(340, 150)

	require.Len(t, sink.actions, 2)
	assert.Equal(t, 10.0, sink.actions[0].X)
	assert.Equal(t, 10.0, sink.actions[0].Y)
	assert.Equal(t, 40.0, sink.actions[1].X)
	assert.Equal(t, 30.0, sink.actions[1].Y)
}

func TestBoard_SegmentRendersAtSupersampledScale(t *testing.T) {
	t.Parallel()

	b := New(200, 100, nil)
	b.SetBrush("#ef4444", 6)
	b.Start(10, 20)
	b.Move(60, 20)
	b.End()

	img := b.Image()
	// Midpoint of the segment in raster space.
	r, g, bl, _ := img.At(35*Supersample, 20*Supersample).RGBA()
	c := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8), 255}
	assert.Greater(t, int(c.R), 200, "stroke midpoint should be red")
	assert.Less(t, int(c.G), 120)
	assert.Less(t, int(c.B), 120)

	// A far corner stays white.
	r, g, bl, _ = img.At(190*Supersample, 90*Supersample).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), bl)
}

func TestBoard_LiveBrushChangeAppliesToNextSegment(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	b := New(200, 100, sink)
	b.SetBrush("#ef4444", 6)

	b.Start(10, 50)
	b.Move(50, 50)
	b.SetBrush("#10b981", 6)
	b.Move(90, 50)
	b.End()

	img := b.Image()
	r, g, _, _ := img.At(30*Supersample, 50*Supersample).RGBA()
	assert.Greater(t, r, g, "first segment keeps the old color")
	r, g, _, _ = img.At(70*Supersample, 50*Supersample).RGBA()
	assert.Greater(t, g, r, "second segment uses the new color")
}

func TestBoard_ClearWipesRasterAndJournal(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	b := New(200, 100, sink)
	b.Start(10, 20)
	b.Move(60, 20)
	b.End()

	b.Clear()

	img := b.Image()
	r, g, bl, _ := img.At(35*Supersample, 20*Supersample).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), bl)

	// Journal holds only the clear itself; the emitted log has everything.
	assert.Equal(t, []Action{{Type: ActionClear}}, b.Journal())
	assert.Equal(t, ActionClear, sink.actions[len(sink.actions)-1].Type)
}

func TestBoard_ApplyPlaysBackRemoteActions(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	b := New(200, 100, sink)
	b.SetReadOnly(true)

	b.Apply(Action{Type: ActionStart, X: 10, Y: 20, Color: "#8b5cf6", Width: 8})
	b.Apply(Action{Type: ActionDraw, X: 60, Y: 20})
	b.Apply(Action{Type: ActionEnd})

	img := b.Image()
	r, _, bl, _ := img.At(35*Supersample, 20*Supersample).RGBA()
	assert.NotEqual(t, uint32(0xffff), r)
	assert.NotEqual(t, uint32(0xffff), bl)

	// Playback never echoes into the sink.
	assert.Empty(t, sink.actions)
	assert.Len(t, b.Journal(), 3)
}

func TestBoard_ApplyGuardsOrphanActions(t *testing.T) {
	t.Parallel()

	b := New(200, 100, nil)

	b.Apply(Action{Type: ActionDraw, X: 60, Y: 20})
	b.Apply(Action{Type: ActionEnd})

	assert.Empty(t, b.Journal())
	img := b.Image()
	r, _, _, _ := img.At(60*Supersample, 20*Supersample).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestBoard_ResetClearsWithoutEmitting(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	b := New(200, 100, sink)
	b.Start(10, 20)
	b.Move(60, 20)
	emitted := len(sink.actions)

	b.Reset()

	assert.Empty(t, b.Journal())
	assert.Len(t, sink.actions, emitted)

	// A draw after Reset belongs to no gesture and must be ignored.
	b.Move(80, 20)
	assert.Len(t, sink.actions, emitted)
}

func TestBoard_EncodePNG(t *testing.T) {
	t.Parallel()

	b := New(64, 32, nil)
	var buf bytes.Buffer
	require.NoError(t, b.EncodePNG(&buf))
	assert.NotZero(t, buf.Len())
}
