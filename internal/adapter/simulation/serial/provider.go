package serial

import (
	"context"
	"sync"

	"evoview/internal/app/ports"
	"evoview/internal/domain/world"
)

// Provider serializes calls into a provider so a Train issued by one
// goroutine never interleaves with a Step or World issued by another.
type Provider struct {
	mu    sync.Mutex
	inner ports.SimulationProvider
}

func NewProvider(inner ports.SimulationProvider) *Provider {
	return &Provider{inner: inner}
}

func (p *Provider) Step(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inner.Step(ctx)
}

func (p *Provider) Train(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inner.Train(ctx)
}

func (p *Provider) World(ctx context.Context) (world.Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inner.World(ctx)
}
