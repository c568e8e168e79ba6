package inmemory

import "sync"

type Snapshot struct {
	FramesRendered uint64 `json:"frames_rendered"`
	FrameFailures  uint64 `json:"frame_failures"`
	LoopHalts      uint64 `json:"loop_halts"`
	TrainTotal     uint64 `json:"train_total"`
	TrainSuccess   uint64 `json:"train_success"`
	TrainFailure   uint64 `json:"train_failure"`
}

type Recorder struct {
	mu           sync.Mutex
	frames       uint64
	frameFailure uint64
	halts        uint64
	trainSuccess uint64
	trainFailure uint64
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RecordFrame() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames++
}

func (r *Recorder) RecordFrameFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frameFailure++
}

func (r *Recorder) RecordHalt() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.halts++
}

func (r *Recorder) RecordTrainSuccess() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trainSuccess++
}

func (r *Recorder) RecordTrainFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trainFailure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Snapshot{
		FramesRendered: r.frames,
		FrameFailures:  r.frameFailure,
		LoopHalts:      r.halts,
		TrainTotal:     r.trainSuccess + r.trainFailure,
		TrainSuccess:   r.trainSuccess,
		TrainFailure:   r.trainFailure,
	}
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
