package desktop

import (
	"context"

	"evoview/internal/app/render"
)

type frameLoop interface {
	Run(ctx context.Context) error
	Status() render.Status
}

// refresh drives a render loop from a display refresh callback. The first
// refresh starts the loop; every later one runs the frame the previous frame
// requested, if any.
type refresh struct {
	loop    frameLoop
	log     *LogPanel
	started bool
	pending func()
}

func (r *refresh) RequestFrame(fn func()) {
	r.pending = fn
}

// tick runs at most one frame and reports whether one ran.
func (r *refresh) tick(ctx context.Context) bool {
	if r.loop == nil {
		return false
	}
	if !r.started {
		r.started = true
		if err := r.loop.Run(ctx); err != nil {
			r.log.Add(err.Error())
		}
		return true
	}
	fn := r.pending
	if fn == nil {
		return false
	}
	r.pending = nil
	fn()
	if st := r.loop.Status(); st.State == render.StateHalted && r.pending == nil {
		r.log.Add("render loop halted: " + st.LastError)
	}
	return true
}
