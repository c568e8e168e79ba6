package recording

import (
	"bytes"
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"
)

// svgUnit is the number of SVG user units per logical unit. svgo takes
// integer coordinates, so the viewBox is scaled up to keep sub-pixel
// positions.
const svgUnit = 1000

// SVG renders a presented frame. The document is sized to the display size
// and its viewBox covers the logical drawing area, so it scales like the
// backing store.
func (f Frame) SVG() []byte {
	var b bytes.Buffer
	canvas := svg.New(&b)
	canvas.Startview(int(math.Round(f.DisplayWidth)), int(math.Round(f.DisplayHeight)),
		0, 0, units(f.DisplayWidth), units(f.DisplayHeight))
	for _, op := range f.Ops {
		switch op.Kind {
		case OpCircle:
			c := op.Circle
			canvas.Circle(units(c.Center.X), units(c.Center.Y), units(c.Radius), attr("fill", op.Fill))
		case OpTriangle:
			t := op.Triangle
			canvas.Polygon(
				[]int{units(t.Nose.X), units(t.TailA.X), units(t.TailB.X)},
				[]int{units(t.Nose.Y), units(t.TailA.Y), units(t.TailB.Y)},
				attr("fill", op.Fill), attr("stroke", op.Stroke), attr("stroke-width", units(op.LineWidth)))
		}
	}
	canvas.End()
	return b.Bytes()
}

func units(v float64) int {
	return int(math.Round(v * svgUnit))
}

func attr(name string, value any) string {
	return fmt.Sprintf(`%s="%v"`, name, value)
}
