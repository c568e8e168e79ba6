package world

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidSnapshot = errors.New("invalid world snapshot")

// Snapshot is one read of the simulation. Positions are normalized to [0,1].
type Snapshot struct {
	Foods   []FoodPose   `json:"foods"`
	Animals []AnimalPose `json:"animals"`
}

type FoodPose struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type AnimalPose struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"` // radians, heading
}

func (s Snapshot) Validate() error {
	for i, f := range s.Foods {
		if !normalized(f.X) || !normalized(f.Y) {
			return fmt.Errorf("%w: food %d at (%v, %v)", ErrInvalidSnapshot, i, f.X, f.Y)
		}
	}
	for i, a := range s.Animals {
		if !normalized(a.X) || !normalized(a.Y) {
			return fmt.Errorf("%w: animal %d at (%v, %v)", ErrInvalidSnapshot, i, a.X, a.Y)
		}
		if math.IsNaN(a.Rotation) || math.IsInf(a.Rotation, 0) {
			return fmt.Errorf("%w: animal %d rotation %v", ErrInvalidSnapshot, i, a.Rotation)
		}
	}
	return nil
}

func normalized(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}
