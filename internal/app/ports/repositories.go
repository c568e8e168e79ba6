package ports

import (
	"context"
	"time"
)

type TrainingRun struct {
	RunID      string
	Summary    string
	Control    string
	RecordedAt time.Time
}

type TrainingJournal interface {
	Append(ctx context.Context, run TrainingRun) error
	// List returns runs newest first; limit <= 0 means all.
	List(ctx context.Context, limit int) ([]TrainingRun, error)
}
