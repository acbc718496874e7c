package board

import (
	"image"
	"io"
	"sync"

	"github.com/fogleman/gg"
)

// Supersample is the raster scale factor. The surface renders at twice the
// logical size for crisper output on high-density displays; stroke
// coordinates stay in logical space.
const Supersample = 2

const (
	DefaultBrushColor = "#ef4444"
	DefaultBrushWidth = 5
)

// Board captures pointer input into stroke actions and renders them to a
// raster surface. In read-only mode all input methods are no-ops and only
// Apply (playback of externally supplied actions) touches the raster.
type Board struct {
	locker sync.Mutex

	dc     *gg.Context
	width  int
	height int

	originX float64
	originY float64

	readOnly bool
	drawing  bool
	lastX    float64
	lastY    float64

	brushColor string
	brushWidth float64

	// Style captured at gesture start; draw actions in playback carry no
	// style of their own.
	gestureColor string
	gestureWidth float64

	sink    ActionSink
	journal []Action
}

// New creates a white board of the given logical size. sink may be nil.
func New(width, height int, sink ActionSink) *Board {
	b := &Board{
		width:      width,
		height:     height,
		brushColor: DefaultBrushColor,
		brushWidth: DefaultBrushWidth,
		sink:       sink,
	}
	b.dc = gg.NewContext(width*Supersample, height*Supersample)
	b.dc.SetLineCap(gg.LineCapRound)
	b.dc.SetLineJoin(gg.LineJoinRound)
	b.wipe()
	return b
}

func (b *Board) SetReadOnly(readOnly bool) {
	b.locker.Lock()
	defer b.locker.Unlock()
	b.readOnly = readOnly
}

func (b *Board) ReadOnly() bool {
	b.locker.Lock()
	defer b.locker.Unlock()
	return b.readOnly
}

// SetOrigin records the surface's bounding-box origin in viewport space.
// Input coordinates are translated into surface-local space against it.
func (b *Board) SetOrigin(x, y float64) {
	b.locker.Lock()
	defer b.locker.Unlock()
	b.originX = x
	b.originY = y
}

// SetBrush updates the live style. It applies to the next stroke segment
// drawn; already-rendered strokes keep their color and width.
func (b *Board) SetBrush(color string, width float64) {
	b.locker.Lock()
	defer b.locker.Unlock()
	if color != "" {
		b.brushColor = color
	}
	if width > 0 {
		b.brushWidth = width
	}
}

// Start begins a new gesture at the given viewport coordinate.
func (b *Board) Start(x, y float64) {
	b.locker.Lock()
	defer b.locker.Unlock()
	if b.readOnly {
		return
	}
	lx, ly := x-b.originX, y-b.originY
	b.drawing = true
	b.lastX, b.lastY = lx, ly
	b.gestureColor = b.brushColor
	b.gestureWidth = b.brushWidth
	b.record(Action{Type: ActionStart, X: lx, Y: ly, Color: b.brushColor, Width: b.brushWidth})
}

// Move extends the current gesture and strokes the segment immediately.
// Ignored when no gesture is active.
func (b *Board) Move(x, y float64) {
	b.locker.Lock()
	defer b.locker.Unlock()
	if b.readOnly || !b.drawing {
		return
	}
	lx, ly := x-b.originX, y-b.originY
	b.segment(lx, ly, b.brushColor, b.brushWidth)
	b.record(Action{Type: ActionDraw, X: lx, Y: ly})
}

// End closes the current gesture. Ignored when no gesture is active.
func (b *Board) End() {
	b.locker.Lock()
	defer b.locker.Unlock()
	if b.readOnly || !b.drawing {
		return
	}
	b.drawing = false
	b.record(Action{Type: ActionEnd})
}

// Clear wipes the raster and the journal.
func (b *Board) Clear() {
	b.locker.Lock()
	defer b.locker.Unlock()
	if b.readOnly {
		return
	}
	b.drawing = false
	b.wipe()
	b.journal = nil
	b.record(Action{Type: ActionClear})
}

// Reset wipes the board without emitting anything. Called by the round
// controller side when a new turn begins.
func (b *Board) Reset() {
	b.locker.Lock()
	defer b.locker.Unlock()
	b.drawing = false
	b.wipe()
	b.journal = nil
}

// Apply replays an externally supplied action. This is the render-only
// playback path, so it works regardless of the read-only mode and never
// emits to the sink.
func (b *Board) Apply(action Action) {
	b.locker.Lock()
	defer b.locker.Unlock()
	switch action.Type {
	case ActionStart:
		b.drawing = true
		b.lastX, b.lastY = action.X, action.Y
		b.gestureColor = action.Color
		if b.gestureColor == "" {
			b.gestureColor = b.brushColor
		}
		b.gestureWidth = action.Width
		if b.gestureWidth <= 0 {
			b.gestureWidth = b.brushWidth
		}
	case ActionDraw:
		if !b.drawing {
			return
		}
		b.segment(action.X, action.Y, b.gestureColor, b.gestureWidth)
	case ActionEnd:
		if !b.drawing {
			return
		}
		b.drawing = false
	case ActionClear:
		b.drawing = false
		b.wipe()
		b.journal = nil
	default:
		return
	}
	b.journal = append(b.journal, action)
}

// Journal returns the applied actions of the current turn, oldest first.
func (b *Board) Journal() []Action {
	b.locker.Lock()
	defer b.locker.Unlock()
	out := make([]Action, len(b.journal))
	copy(out, b.journal)
	return out
}

func (b *Board) Image() image.Image {
	b.locker.Lock()
	defer b.locker.Unlock()
	return b.dc.Image()
}

func (b *Board) EncodePNG(w io.Writer) error {
	b.locker.Lock()
	defer b.locker.Unlock()
	return b.dc.EncodePNG(w)
}

// segment strokes one line from the last point to (x, y) in logical space.
func (b *Board) segment(x, y float64, color string, width float64) {
	b.dc.SetHexColor(color)
	b.dc.SetLineWidth(width * Supersample)
	b.dc.MoveTo(b.lastX*Supersample, b.lastY*Supersample)
	b.dc.LineTo(x*Supersample, y*Supersample)
	b.dc.Stroke()
	b.lastX, b.lastY = x, y
}

func (b *Board) wipe() {
	b.dc.SetRGB(1, 1, 1)
	b.dc.Clear()
}

func (b *Board) record(action Action) {
	b.journal = append(b.journal, action)
	if b.sink != nil {
		b.sink.Emit(action)
	}
}
