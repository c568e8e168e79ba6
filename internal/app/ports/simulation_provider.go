package ports

import (
	"context"

	"evoview/internal/domain/world"
)

// SimulationProvider is the external simulation engine. Step advances one
// tick, Train runs one training generation and returns a readable summary,
// World returns a fresh snapshot.
type SimulationProvider interface {
	Step(ctx context.Context) error
	Train(ctx context.Context) (string, error)
	World(ctx context.Context) (world.Snapshot, error)
}
