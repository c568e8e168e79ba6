package ebitensurface

import (
	"image"
	"image/color"
	"math"

	"evoview/internal/domain/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Surface rasterizes draw calls into an offscreen backing image. The host
// blits Image onto the screen every frame, so the last drawn frame stays
// visible after the render loop stops.
type Surface struct {
	width    float64
	height   float64
	ratio    float64
	displayW float64
	displayH float64
	sx, sy   float64
	backing  *ebiten.Image
}

func New(width, height, ratio float64) *Surface {
	return &Surface{width: width, height: height, ratio: ratio, sx: 1, sy: 1}
}

// Resize records the window's current logical size.
func (s *Surface) Resize(width, height float64) {
	s.width, s.height = width, height
}

func (s *Surface) LogicalSize() (float64, float64) { return s.width, s.height }
func (s *Surface) PixelRatio() float64             { return s.ratio }

func (s *Surface) SetBackingSize(width, height int) {
	if s.backing != nil {
		s.backing.Deallocate()
	}
	s.backing = ebiten.NewImage(max(width, 1), max(height, 1))
	s.sx, s.sy = 1, 1
}

func (s *Surface) SetDisplaySize(width, height float64) {
	s.displayW, s.displayH = width, height
}

func (s *Surface) SetScale(sx, sy float64) {
	s.sx, s.sy = sx, sy
}

// BackingSize reports the backing image size, or the scaled logical size
// before the first SetBackingSize.
func (s *Surface) BackingSize() (int, int) {
	if s.backing == nil {
		return int(s.width * s.ratio), int(s.height * s.ratio)
	}
	b := s.backing.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) Image() *ebiten.Image {
	return s.backing
}

func (s *Surface) ClearRect(x, y, width, height float64) {
	if s.backing == nil {
		return
	}
	r := image.Rect(
		int(math.Floor(x*s.sx)), int(math.Floor(y*s.sy)),
		int(math.Ceil((x+width)*s.sx)), int(math.Ceil((y+height)*s.sy)),
	)
	bounds := s.backing.Bounds()
	if r.Intersect(bounds) == bounds {
		s.backing.Clear()
		return
	}
	s.backing.SubImage(r).(*ebiten.Image).Clear()
}

func (s *Surface) FillCircle(c scene.Circle, fill color.RGBA) {
	if s.backing == nil {
		return
	}
	vector.DrawFilledCircle(s.backing,
		float32(c.Center.X*s.sx), float32(c.Center.Y*s.sy), float32(c.Radius*s.sx),
		fill, true)
}

func (s *Surface) FillStrokeTriangle(t scene.Triangle, fill, stroke color.RGBA, lineWidth float64) {
	if s.backing == nil {
		return
	}
	var path vector.Path
	path.MoveTo(float32(t.Nose.X*s.sx), float32(t.Nose.Y*s.sy))
	path.LineTo(float32(t.TailA.X*s.sx), float32(t.TailA.Y*s.sy))
	path.LineTo(float32(t.TailB.X*s.sx), float32(t.TailB.Y*s.sy))
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	s.drawTriangles(vs, is, fill)

	vs, is = path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    float32(lineWidth * s.sx),
		LineJoin: vector.LineJoinMiter,
	})
	s.drawTriangles(vs, is, stroke)
}

func (s *Surface) drawTriangles(vs []ebiten.Vertex, is []uint16, c color.RGBA) {
	r := float32(c.R) / 0xff
	g := float32(c.G) / 0xff
	b := float32(c.B) / 0xff
	a := float32(c.A) / 0xff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	s.backing.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
