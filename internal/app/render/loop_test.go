package render

import (
	"context"
	"errors"
	"math"
	"testing"

	"evoview/internal/app/ports"
	"evoview/internal/domain/scene"
	"evoview/internal/domain/world"
)

func newTestLoop(p *fakeProvider, s *fakeSurface, sched *fakeScheduler, cfg Config) (*Loop, *fakeMetrics) {
	m := &fakeMetrics{}
	return NewLoop(Deps{Provider: p, Surface: s, Scheduler: sched, Metrics: m}, cfg), m
}

func TestInitialize_SizesBackingStoreByPixelRatio(t *testing.T) {
	s := &fakeSurface{width: 800, height: 600, ratio: 2}
	l, _ := newTestLoop(&fakeProvider{}, s, &fakeScheduler{}, DefaultConfig())

	if err := l.Initialize(); err != nil {
		t.Fatalf("Initialize error: %v", err)
	}
	if s.backingW != 1600 || s.backingH != 1200 {
		t.Fatalf("expected backing 1600x1200, got %dx%d", s.backingW, s.backingH)
	}
	if s.displayW != 800 || s.displayH != 600 {
		t.Fatalf("expected display 800x600, got %vx%v", s.displayW, s.displayH)
	}
	if s.scaleX != 2 || s.scaleY != 2 {
		t.Fatalf("expected scale 2, got %v,%v", s.scaleX, s.scaleY)
	}
	if st := l.Status(); st.State != StateIdle || st.PixelRatio != 2 {
		t.Fatalf("unexpected status after init: %+v", st)
	}
}

func TestInitialize_OnlyOnce(t *testing.T) {
	s := &fakeSurface{width: 800, height: 600, ratio: 2}
	l, _ := newTestLoop(&fakeProvider{}, s, &fakeScheduler{}, DefaultConfig())
	if err := l.Initialize(); err != nil {
		t.Fatalf("Initialize error: %v", err)
	}
	if err := l.Initialize(); !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("expected ErrAlreadyInitialized, got %v", err)
	}
	if s.backingW != 1600 {
		t.Fatalf("second Initialize must not resize, got %d", s.backingW)
	}
}

func TestInitialize_DefaultsPixelRatio(t *testing.T) {
	s := &fakeSurface{width: 300, height: 200}
	l, _ := newTestLoop(&fakeProvider{}, s, &fakeScheduler{}, DefaultConfig())
	if err := l.Initialize(); err != nil {
		t.Fatalf("Initialize error: %v", err)
	}
	if s.backingW != 300 || s.backingH != 200 || s.scaleX != 1 {
		t.Fatalf("expected ratio 1 fallback, got backing %dx%d scale %v", s.backingW, s.backingH, s.scaleX)
	}
}

func TestInitialize_NonFinitePixelRatioFallsBack(t *testing.T) {
	for _, ratio := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		s := &fakeSurface{width: 800, height: 600, ratio: ratio}
		l, _ := newTestLoop(&fakeProvider{}, s, &fakeScheduler{}, DefaultConfig())
		if err := l.Initialize(); err != nil {
			t.Fatalf("Initialize error: %v", err)
		}
		if s.backingW != 800 || s.backingH != 600 || s.scaleX != 1 {
			t.Fatalf("ratio %v: got backing %dx%d scale %v, want 800x600 scale 1", ratio, s.backingW, s.backingH, s.scaleX)
		}
		if st := l.Status(); st.PixelRatio != 1 {
			t.Fatalf("ratio %v: status pixel ratio %v", ratio, st.PixelRatio)
		}
	}
}

func TestRenderFrame_RequiresInitialize(t *testing.T) {
	l, _ := newTestLoop(&fakeProvider{}, &fakeSurface{width: 1, height: 1}, &fakeScheduler{}, DefaultConfig())
	if err := l.RenderFrame(context.Background()); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestRenderFrame_DrawsSnapshotAndSchedules(t *testing.T) {
	p := &fakeProvider{snapshot: world.Snapshot{
		Foods:   []world.FoodPose{{X: 0.5, Y: 0.5}},
		Animals: []world.AnimalPose{{X: 0.25, Y: 0.25, Rotation: 0}},
	}}
	s := &fakeSurface{width: 800, height: 600, ratio: 2}
	sched := &fakeScheduler{}
	l, m := newTestLoop(p, s, sched, DefaultConfig())

	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if p.steps != 1 || p.worlds != 1 {
		t.Fatalf("expected one step and one world call, got %d/%d", p.steps, p.worlds)
	}
	if len(s.circles) != 1 || s.circles[0].Center != (scene.Point{X: 400, Y: 300}) || s.circles[0].Radius != 4 {
		t.Fatalf("unexpected circles: %+v", s.circles)
	}
	if len(s.triangles) != 1 {
		t.Fatalf("expected one triangle, got %d", len(s.triangles))
	}
	if nose := s.triangles[0].Nose; nose.X != 200 || nose.Y != 162 {
		t.Fatalf("unexpected nose: %+v", nose)
	}
	if len(sched.queue) != 1 {
		t.Fatalf("expected one scheduled frame, got %d", len(sched.queue))
	}
	if st := l.Status(); st.State != StateScheduled || st.Frames != 1 {
		t.Fatalf("unexpected status: %+v", st)
	}
	if m.frames != 1 {
		t.Fatalf("expected one recorded frame, got %d", m.frames)
	}
}

func TestRenderFrame_ClearsBeforeDrawing(t *testing.T) {
	p := &fakeProvider{snapshot: world.Snapshot{Foods: []world.FoodPose{{X: 0.1, Y: 0.1}}}}
	s := &fakeSurface{width: 800, height: 600, ratio: 2}
	l, _ := newTestLoop(p, s, &fakeScheduler{}, DefaultConfig())
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	got := s.ops[len(s.ops)-2:]
	if got[0] != "clear 0,0,800,600" || got[1] != "circle" {
		t.Fatalf("expected logical clear then circle, got %v", got)
	}
}

func TestRenderFrame_OneFramePerSchedulerTick(t *testing.T) {
	p := &fakeProvider{}
	sched := &fakeScheduler{}
	l, _ := newTestLoop(p, &fakeSurface{width: 10, height: 10, ratio: 1}, sched, DefaultConfig())
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	for i := 0; i < 4; i++ {
		if !sched.runNext() {
			t.Fatalf("tick %d: nothing scheduled", i)
		}
	}
	if p.steps != 5 {
		t.Fatalf("expected 5 steps, got %d", p.steps)
	}
	if len(sched.queue) != 1 {
		t.Fatalf("expected exactly one pending frame, got %d", len(sched.queue))
	}
}

func TestRenderFrame_WorldFailureHalts(t *testing.T) {
	p := &fakeProvider{}
	sched := &fakeScheduler{}
	l, m := newTestLoop(p, &fakeSurface{width: 10, height: 10, ratio: 1}, sched, DefaultConfig())
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	p.worldErr = errors.New("world exploded")
	if !sched.runNext() {
		t.Fatalf("expected scheduled frame")
	}
	if len(sched.queue) != 0 {
		t.Fatalf("expected no further frame after failure, got %d", len(sched.queue))
	}
	st := l.Status()
	if st.State != StateHalted || st.Failures != 1 || st.LastError == "" {
		t.Fatalf("unexpected status: %+v", st)
	}
	if m.halts != 1 || m.failures != 1 {
		t.Fatalf("expected halt recorded, got %+v", m)
	}

	err := l.RenderFrame(context.Background())
	if !errors.Is(err, ErrHalted) {
		t.Fatalf("expected ErrHalted, got %v", err)
	}
}

func TestRenderFrame_StepFailureWrapsSimulationError(t *testing.T) {
	cause := errors.New("no step for you")
	p := &fakeProvider{stepErr: cause}
	sched := &fakeScheduler{}
	l, _ := newTestLoop(p, &fakeSurface{width: 10, height: 10, ratio: 1}, sched, DefaultConfig())

	err := l.Run(context.Background())
	if !errors.Is(err, ports.ErrSimulation) || !errors.Is(err, cause) {
		t.Fatalf("expected wrapped simulation error, got %v", err)
	}
	if p.worlds != 0 {
		t.Fatalf("world must not be read after a failed step")
	}
	if len(sched.queue) != 0 {
		t.Fatalf("expected nothing scheduled")
	}
}

func TestRenderFrame_SkipPolicyKeepsScheduling(t *testing.T) {
	p := &fakeProvider{worldErr: errors.New("flaky")}
	sched := &fakeScheduler{}
	cfg := DefaultConfig()
	cfg.FailurePolicy = FailureSkip
	l, m := newTestLoop(p, &fakeSurface{width: 10, height: 10, ratio: 1}, sched, cfg)

	if err := l.Run(context.Background()); err == nil {
		t.Fatalf("expected frame error")
	}
	if len(sched.queue) != 1 {
		t.Fatalf("expected next frame scheduled, got %d", len(sched.queue))
	}
	p.worldErr = nil
	sched.runNext()
	st := l.Status()
	if st.State != StateScheduled || st.Frames != 1 || st.Failures != 1 {
		t.Fatalf("unexpected status: %+v", st)
	}
	if m.halts != 0 {
		t.Fatalf("skip policy must not halt")
	}
}

func TestRenderFrame_RereadViewportResizes(t *testing.T) {
	p := &fakeProvider{snapshot: world.Snapshot{Foods: []world.FoodPose{{X: 1, Y: 1}}}}
	s := &fakeSurface{width: 800, height: 600, ratio: 2}
	sched := &fakeScheduler{}
	cfg := DefaultConfig()
	cfg.RereadViewport = true
	l, _ := newTestLoop(p, s, sched, cfg)
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	s.width, s.height = 400, 300
	sched.runNext()
	if s.backingW != 800 || s.backingH != 600 {
		t.Fatalf("expected backing 800x600 after resize, got %dx%d", s.backingW, s.backingH)
	}
	if c := s.circles[0]; c.Center != (scene.Point{X: 400, Y: 300}) || c.Radius != 2 {
		t.Fatalf("expected circle scaled by new viewport, got %+v", c)
	}
}

func TestRenderFrame_IgnoresResizeByDefault(t *testing.T) {
	p := &fakeProvider{snapshot: world.Snapshot{Foods: []world.FoodPose{{X: 1, Y: 1}}}}
	s := &fakeSurface{width: 800, height: 600, ratio: 2}
	sched := &fakeScheduler{}
	l, _ := newTestLoop(p, s, sched, DefaultConfig())
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	s.width, s.height = 400, 300
	sched.runNext()
	if s.backingW != 1600 {
		t.Fatalf("backing must keep initial size, got %d", s.backingW)
	}
	if c := s.circles[0]; c.Center != (scene.Point{X: 800, Y: 600}) {
		t.Fatalf("expected initial viewport, got %+v", c)
	}
}

func TestRenderFrame_CancelledContextStopsQuietly(t *testing.T) {
	p := &fakeProvider{}
	sched := &fakeScheduler{}
	l, _ := newTestLoop(p, &fakeSurface{width: 10, height: 10, ratio: 1}, sched, DefaultConfig())
	if err := l.Initialize(); err != nil {
		t.Fatalf("Initialize error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.RenderFrame(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if p.steps != 0 || len(sched.queue) != 0 {
		t.Fatalf("cancelled frame must not step or schedule")
	}
	if st := l.Status(); st.State != StateIdle {
		t.Fatalf("expected idle, got %s", st.State)
	}
}

func TestRenderFrame_NotifiesObserver(t *testing.T) {
	p := &fakeProvider{snapshot: world.Snapshot{Animals: []world.AnimalPose{{X: 0.5, Y: 0.5}}}}
	var got []scene.Frame
	l := NewLoop(Deps{
		Provider:  p,
		Surface:   &fakeSurface{width: 100, height: 100, ratio: 1},
		Scheduler: &fakeScheduler{},
		OnFrame:   func(f scene.Frame) { got = append(got, f) },
	}, Config{})
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(got) != 1 || len(got[0].Triangles) != 1 {
		t.Fatalf("unexpected observed frames: %+v", got)
	}
	if got[0].Viewport != (scene.Viewport{Width: 100, Height: 100}) {
		t.Fatalf("unexpected viewport: %+v", got[0].Viewport)
	}
}

func TestParseFailurePolicy(t *testing.T) {
	if p, ok := ParseFailurePolicy("skip"); !ok || p != FailureSkip {
		t.Fatalf("expected skip, got %q %v", p, ok)
	}
	if _, ok := ParseFailurePolicy("retry"); ok {
		t.Fatalf("expected unknown policy to be rejected")
	}
}
