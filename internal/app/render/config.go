package render

import "image/color"

type FailurePolicy string

const (
	// FailureHalt stops scheduling after a failed frame.
	FailureHalt FailurePolicy = "halt"
	// FailureSkip drops the failed frame and schedules the next one.
	FailureSkip FailurePolicy = "skip"
)

type Style struct {
	Food         color.RGBA
	AnimalFill   color.RGBA
	AnimalStroke color.RGBA
	LineWidth    float64
}

type Config struct {
	Style         Style
	FailurePolicy FailurePolicy
	// RereadViewport re-reads the surface's logical size on every frame.
	RereadViewport bool
}

func DefaultStyle() Style {
	return Style{
		Food:         color.RGBA{R: 0, G: 255, B: 128, A: 255},
		AnimalFill:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		AnimalStroke: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		LineWidth:    1,
	}
}

func DefaultConfig() Config {
	return Config{
		Style:         DefaultStyle(),
		FailurePolicy: FailureHalt,
	}
}

func ParseFailurePolicy(raw string) (FailurePolicy, bool) {
	switch FailurePolicy(raw) {
	case FailureHalt:
		return FailureHalt, true
	case FailureSkip:
		return FailureSkip, true
	default:
		return "", false
	}
}
