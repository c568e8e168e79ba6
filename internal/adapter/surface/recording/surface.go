package recording

import (
	"fmt"
	"image/color"
	"sync"

	"evoview/internal/domain/scene"
)

type OpKind string

const (
	OpClear    OpKind = "clear"
	OpCircle   OpKind = "circle"
	OpTriangle OpKind = "triangle"
)

// Op is one draw call in logical units.
type Op struct {
	Kind      OpKind          `json:"kind"`
	Rect      *[4]float64     `json:"rect,omitempty"`
	Circle    *scene.Circle   `json:"circle,omitempty"`
	Triangle  *scene.Triangle `json:"triangle,omitempty"`
	Fill      string          `json:"fill,omitempty"`
	Stroke    string          `json:"stroke,omitempty"`
	LineWidth float64         `json:"line_width,omitempty"`
}

// Frame is what was on the surface when Present was last called.
type Frame struct {
	BackingWidth  int     `json:"backing_width"`
	BackingHeight int     `json:"backing_height"`
	DisplayWidth  float64 `json:"display_width"`
	DisplayHeight float64 `json:"display_height"`
	Scale         float64 `json:"scale"`
	Ops           []Op    `json:"ops"`
}

// Surface keeps draw calls in memory instead of rasterizing them. Draw calls
// land in a pending list; Present publishes it for readers on other
// goroutines.
type Surface struct {
	mu        sync.Mutex
	width     float64
	height    float64
	ratio     float64
	backingW  int
	backingH  int
	displayW  float64
	displayH  float64
	scale     float64
	pending   []Op
	presented Frame
}

func NewSurface(width, height, ratio float64) *Surface {
	return &Surface{width: width, height: height, ratio: ratio, scale: 1}
}

// Resize changes the logical size reported to the render loop.
func (s *Surface) Resize(width, height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = width, height
}

func (s *Surface) LogicalSize() (float64, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

func (s *Surface) PixelRatio() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ratio
}

func (s *Surface) SetBackingSize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.backingW, s.backingH = width, height
	// resizing a backing store discards its pixels
	s.pending = nil
	s.scale = 1
}

func (s *Surface) SetDisplaySize(width, height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.displayW, s.displayH = width, height
}

func (s *Surface) SetScale(sx, _ float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scale = sx
}

func (s *Surface) ClearRect(x, y, width, height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if x <= 0 && y <= 0 && x+width >= s.displayW && y+height >= s.displayH {
		s.pending = s.pending[:0]
	}
	s.pending = append(s.pending, Op{Kind: OpClear, Rect: &[4]float64{x, y, width, height}})
}

func (s *Surface) FillCircle(c scene.Circle, fill color.RGBA) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, Op{Kind: OpCircle, Circle: &c, Fill: CSSColor(fill)})
}

func (s *Surface) FillStrokeTriangle(t scene.Triangle, fill, stroke color.RGBA, lineWidth float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, Op{
		Kind:      OpTriangle,
		Triangle:  &t,
		Fill:      CSSColor(fill),
		Stroke:    CSSColor(stroke),
		LineWidth: lineWidth,
	})
}

// Present publishes the pending draw list.
func (s *Surface) Present() {
	s.mu.Lock()
	defer s.mu.Unlock()
	ops := make([]Op, len(s.pending))
	copy(ops, s.pending)
	s.presented = Frame{
		BackingWidth:  s.backingW,
		BackingHeight: s.backingH,
		DisplayWidth:  s.displayW,
		DisplayHeight: s.displayH,
		Scale:         s.scale,
		Ops:           ops,
	}
}

func (s *Surface) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.presented
	out.Ops = append([]Op(nil), s.presented.Ops...)
	return out
}

func CSSColor(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, float64(c.A)/255)
}
