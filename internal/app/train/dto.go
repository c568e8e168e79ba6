package train

import "time"

type Request struct {
	Control string
}

type Response struct {
	RunID      string    `json:"run_id"`
	Control    string    `json:"control"`
	Summary    string    `json:"summary"`
	RecordedAt time.Time `json:"recorded_at"`
}
