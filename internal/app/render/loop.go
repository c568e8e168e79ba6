package render

import (
	"context"
	"errors"
	"math"
	"sync"

	"evoview/internal/app/ports"
	"evoview/internal/domain/scene"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var (
	ErrNotInitialized     = errors.New("render loop not initialized")
	ErrAlreadyInitialized = errors.New("render loop already initialized")
	ErrHalted             = errors.New("render loop halted")
	ErrFrameInProgress    = errors.New("frame already in progress")
)

type State string

const (
	StateIdle      State = "idle"
	StateRendering State = "rendering"
	StateScheduled State = "scheduled"
	StateHalted    State = "halted"
)

type Deps struct {
	Provider  ports.SimulationProvider
	Surface   ports.Surface
	Scheduler ports.FrameScheduler
	Metrics   ports.RenderMetrics
	// OnFrame, if set, receives every frame after it was drawn.
	OnFrame func(scene.Frame)
}

type Status struct {
	State      State          `json:"state"`
	Frames     uint64         `json:"frames"`
	Failures   uint64         `json:"failures"`
	LastError  string         `json:"last_error,omitempty"`
	Viewport   scene.Viewport `json:"viewport"`
	PixelRatio float64        `json:"pixel_ratio"`
}

// Loop advances the simulation and redraws the surface once per display
// refresh. Frames never overlap; a frame is only started by Run or by the
// scheduler callback registered at the end of the previous frame.
type Loop struct {
	deps Deps
	cfg  Config

	mu          sync.Mutex
	state       State
	initialized bool
	viewport    scene.Viewport
	ratio       float64
	frames      uint64
	failures    uint64
	lastErr     error
}

func NewLoop(deps Deps, cfg Config) *Loop {
	def := DefaultConfig()
	if cfg.Style == (Style{}) {
		cfg.Style = def.Style
	}
	if cfg.Style.LineWidth <= 0 {
		cfg.Style.LineWidth = def.Style.LineWidth
	}
	if cfg.FailurePolicy == "" {
		cfg.FailurePolicy = def.FailurePolicy
	}
	if deps.Metrics == nil {
		deps.Metrics = nopMetrics{}
	}
	return &Loop{deps: deps, cfg: cfg, state: StateIdle}
}

// Initialize sizes the backing store to logical size times pixel ratio and
// scales the surface so later draw calls use logical units.
func (l *Loop) Initialize() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.initialized {
		return ErrAlreadyInitialized
	}
	w, h := l.deps.Surface.LogicalSize()
	l.applyViewport(w, h)
	l.initialized = true
	return nil
}

// Run initializes the surface and draws the first frame.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.Initialize(); err != nil {
		return err
	}
	return l.RenderFrame(ctx)
}

func (l *Loop) RenderFrame(ctx context.Context) error {
	v, err := l.begin(ctx)
	if err != nil {
		return err
	}

	l.deps.Surface.ClearRect(0, 0, v.Width, v.Height)

	if err := l.deps.Provider.Step(ctx); err != nil {
		return l.fail(ctx, ports.SimulationError("step", err))
	}
	snapshot, err := l.deps.Provider.World(ctx)
	if err != nil {
		return l.fail(ctx, ports.SimulationError("world", err))
	}

	frame := scene.Compose(v, snapshot)
	l.draw(frame)

	l.mu.Lock()
	l.frames++
	l.state = StateScheduled
	l.mu.Unlock()

	l.deps.Metrics.RecordFrame()
	if l.deps.OnFrame != nil {
		l.deps.OnFrame(frame)
	}
	l.schedule(ctx)
	return nil
}

func (l *Loop) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := Status{
		State:      l.state,
		Frames:     l.frames,
		Failures:   l.failures,
		Viewport:   l.viewport,
		PixelRatio: l.ratio,
	}
	if l.lastErr != nil {
		out.LastError = l.lastErr.Error()
	}
	return out
}

func (l *Loop) begin(ctx context.Context) (scene.Viewport, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.initialized {
		return scene.Viewport{}, ErrNotInitialized
	}
	switch l.state {
	case StateHalted:
		return scene.Viewport{}, ErrHalted
	case StateRendering:
		return scene.Viewport{}, ErrFrameInProgress
	}
	if err := ctx.Err(); err != nil {
		l.state = StateIdle
		return scene.Viewport{}, err
	}
	if l.cfg.RereadViewport {
		w, h := l.deps.Surface.LogicalSize()
		if w != l.viewport.Width || h != l.viewport.Height {
			l.applyViewport(w, h)
		}
	}
	l.state = StateRendering
	return l.viewport, nil
}

// applyViewport must be called with l.mu held.
func (l *Loop) applyViewport(w, h float64) {
	ratio := l.deps.Surface.PixelRatio()
	if ratio <= 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		ratio = 1
	}
	l.deps.Surface.SetBackingSize(int(w*ratio), int(h*ratio))
	l.deps.Surface.SetDisplaySize(w, h)
	l.deps.Surface.SetScale(ratio, ratio)
	l.viewport = scene.Viewport{Width: w, Height: h}
	l.ratio = ratio
}

func (l *Loop) draw(frame scene.Frame) {
	style := l.cfg.Style
	for _, c := range frame.Circles {
		l.deps.Surface.FillCircle(c, style.Food)
	}
	for _, t := range frame.Triangles {
		l.deps.Surface.FillStrokeTriangle(t, style.AnimalFill, style.AnimalStroke, style.LineWidth)
	}
}

func (l *Loop) fail(ctx context.Context, err error) error {
	halt := l.cfg.FailurePolicy != FailureSkip

	l.mu.Lock()
	l.failures++
	l.lastErr = err
	if halt {
		l.state = StateHalted
	} else {
		l.state = StateScheduled
	}
	l.mu.Unlock()

	l.deps.Metrics.RecordFrameFailure()
	if halt {
		hlog.CtxErrorf(ctx, "render loop halted: %v", err)
		l.deps.Metrics.RecordHalt()
		return err
	}
	hlog.CtxWarnf(ctx, "frame skipped: %v", err)
	l.schedule(ctx)
	return err
}

func (l *Loop) schedule(ctx context.Context) {
	l.deps.Scheduler.RequestFrame(func() {
		_ = l.RenderFrame(ctx)
	})
}

type nopMetrics struct{}

func (nopMetrics) RecordFrame()        {}
func (nopMetrics) RecordFrameFailure() {}
func (nopMetrics) RecordHalt()         {}
