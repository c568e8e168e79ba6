package ports

import (
	"image/color"

	"evoview/internal/domain/scene"
)

// Surface is a drawing target with a logical (display) size and a backing
// store that may be larger by the device pixel ratio.
type Surface interface {
	LogicalSize() (width, height float64)
	PixelRatio() float64
	SetBackingSize(width, height int)
	SetDisplaySize(width, height float64)
	// SetScale replaces the current transform with a uniform scale.
	SetScale(sx, sy float64)
	ClearRect(x, y, width, height float64)
	FillCircle(c scene.Circle, fill color.RGBA)
	FillStrokeTriangle(t scene.Triangle, fill, stroke color.RGBA, lineWidth float64)
}

// FrameScheduler runs fn on the next display refresh. fn runs at most once.
type FrameScheduler interface {
	RequestFrame(fn func())
}
