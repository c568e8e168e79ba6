package render

import (
	"context"
	"fmt"
	"image/color"

	"evoview/internal/domain/scene"
	"evoview/internal/domain/world"
)

type fakeProvider struct {
	snapshot world.Snapshot
	stepErr  error
	worldErr error
	steps    int
	worlds   int
}

func (p *fakeProvider) Step(_ context.Context) error {
	p.steps++
	return p.stepErr
}

func (p *fakeProvider) Train(_ context.Context) (string, error) {
	return "", nil
}

func (p *fakeProvider) World(_ context.Context) (world.Snapshot, error) {
	p.worlds++
	if p.worldErr != nil {
		return world.Snapshot{}, p.worldErr
	}
	return p.snapshot, nil
}

type fakeSurface struct {
	width, height float64
	ratio         float64

	backingW, backingH int
	displayW, displayH float64
	scaleX, scaleY     float64
	ops                []string
	circles            []scene.Circle
	triangles          []scene.Triangle
}

func (s *fakeSurface) LogicalSize() (float64, float64) { return s.width, s.height }
func (s *fakeSurface) PixelRatio() float64             { return s.ratio }

func (s *fakeSurface) SetBackingSize(w, h int) {
	s.backingW, s.backingH = w, h
	s.ops = append(s.ops, fmt.Sprintf("backing %dx%d", w, h))
}

func (s *fakeSurface) SetDisplaySize(w, h float64) {
	s.displayW, s.displayH = w, h
	s.ops = append(s.ops, fmt.Sprintf("display %vx%v", w, h))
}

func (s *fakeSurface) SetScale(sx, sy float64) {
	s.scaleX, s.scaleY = sx, sy
	s.ops = append(s.ops, fmt.Sprintf("scale %v,%v", sx, sy))
}

func (s *fakeSurface) ClearRect(x, y, w, h float64) {
	s.ops = append(s.ops, fmt.Sprintf("clear %v,%v,%v,%v", x, y, w, h))
	s.circles = nil
	s.triangles = nil
}

func (s *fakeSurface) FillCircle(c scene.Circle, _ color.RGBA) {
	s.ops = append(s.ops, "circle")
	s.circles = append(s.circles, c)
}

func (s *fakeSurface) FillStrokeTriangle(t scene.Triangle, _, _ color.RGBA, _ float64) {
	s.ops = append(s.ops, "triangle")
	s.triangles = append(s.triangles, t)
}

type fakeScheduler struct {
	queue []func()
}

func (s *fakeScheduler) RequestFrame(fn func()) {
	s.queue = append(s.queue, fn)
}

// runNext pops and runs the oldest queued frame. It reports false when the
// queue is empty.
func (s *fakeScheduler) runNext() bool {
	if len(s.queue) == 0 {
		return false
	}
	fn := s.queue[0]
	s.queue = s.queue[1:]
	fn()
	return true
}

type fakeMetrics struct {
	frames, failures, halts int
}

func (m *fakeMetrics) RecordFrame()        { m.frames++ }
func (m *fakeMetrics) RecordFrameFailure() { m.failures++ }
func (m *fakeMetrics) RecordHalt()         { m.halts++ }
