package scene

import "evoview/internal/domain/world"

// Frame is the draw list for one snapshot, in logical units.
type Frame struct {
	Viewport  Viewport   `json:"viewport"`
	Circles   []Circle   `json:"circles"`
	Triangles []Triangle `json:"triangles"`
}

// Compose scales every pose in s by the given viewport. Order follows the
// snapshot: foods first, then animals.
func Compose(v Viewport, s world.Snapshot) Frame {
	f := Frame{
		Viewport:  v,
		Circles:   make([]Circle, 0, len(s.Foods)),
		Triangles: make([]Triangle, 0, len(s.Animals)),
	}
	for _, food := range s.Foods {
		f.Circles = append(f.Circles, FoodCircle(v, food))
	}
	for _, animal := range s.Animals {
		f.Triangles = append(f.Triangles, AnimalTriangle(v, animal))
	}
	return f
}
