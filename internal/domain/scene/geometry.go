package scene

import (
	"math"

	"evoview/internal/domain/world"
)

const (
	// AnimalSizeFactor scales viewport width into triangle size.
	AnimalSizeFactor = 0.01
	// FoodRadiusFactor scales viewport width into food radius.
	FoodRadiusFactor = AnimalSizeFactor / 2.0
	// NoseFactor stretches the heading vertex past the tail vertices.
	NoseFactor = 1.5
)

// Viewport is the logical drawing area, before the pixel ratio is applied.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Circle struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
}

// Triangle is an isosceles triangle. The path runs Nose, TailA, TailB and
// back to Nose.
type Triangle struct {
	Nose  Point `json:"nose"`
	TailA Point `json:"tail_a"`
	TailB Point `json:"tail_b"`
}

func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// ToPixel maps a normalized coordinate onto the viewport.
func (v Viewport) ToPixel(x, y float64) Point {
	return Point{X: x * v.Width, Y: y * v.Height}
}

func (v Viewport) FoodRadius() float64 {
	return FoodRadiusFactor * v.Width
}

func (v Viewport) AnimalSize() float64 {
	return AnimalSizeFactor * v.Width
}

func FoodCircle(v Viewport, f world.FoodPose) Circle {
	return Circle{Center: v.ToPixel(f.X, f.Y), Radius: v.FoodRadius()}
}

func AnimalTriangle(v Viewport, a world.AnimalPose) Triangle {
	return NewTriangle(v.ToPixel(a.X, a.Y), v.AnimalSize(), a.Rotation)
}

// NewTriangle builds the heading triangle around center. Rotation 0 points
// the nose towards +Y.
func NewTriangle(center Point, size, rotation float64) Triangle {
	return Triangle{
		Nose:  vertex(center, size*NoseFactor, rotation),
		TailA: vertex(center, size, rotation+2.0/3.0*math.Pi),
		TailB: vertex(center, size, rotation+4.0/3.0*math.Pi),
	}
}

func vertex(center Point, dist, angle float64) Point {
	return Point{
		X: center.X - math.Sin(angle)*dist,
		Y: center.Y + math.Cos(angle)*dist,
	}
}
