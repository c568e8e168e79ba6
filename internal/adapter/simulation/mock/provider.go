package mock

import (
	"context"
	"sync"

	"evoview/internal/domain/world"
)

// Provider replays Snapshots in order, repeating the last one. Errors set on
// the struct are returned by the matching call.
type Provider struct {
	Snapshots []world.Snapshot
	Summaries []string
	StepErr   error
	TrainErr  error
	WorldErr  error

	mu     sync.Mutex
	steps  int
	trains int
	worlds int
}

func (p *Provider) Step(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.StepErr != nil {
		return p.StepErr
	}
	p.steps++
	return nil
}

func (p *Provider) Train(_ context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.TrainErr != nil {
		return "", p.TrainErr
	}
	p.trains++
	if len(p.Summaries) == 0 {
		return "", nil
	}
	return p.Summaries[min(p.trains, len(p.Summaries))-1], nil
}

func (p *Provider) World(_ context.Context) (world.Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.WorldErr != nil {
		return world.Snapshot{}, p.WorldErr
	}
	p.worlds++
	if len(p.Snapshots) == 0 {
		return world.Snapshot{}, nil
	}
	idx := min(p.steps, len(p.Snapshots)) - 1
	if idx < 0 {
		idx = 0
	}
	return p.Snapshots[idx], nil
}

// Calls returns how many successful Step, Train and World calls were made.
func (p *Provider) Calls() (steps, trains, worlds int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.steps, p.trains, p.worlds
}
