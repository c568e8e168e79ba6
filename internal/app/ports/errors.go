package ports

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrSimulation wraps every failure reported by a SimulationProvider.
	ErrSimulation = errors.New("simulation error")
)

// SimulationError tags err with ErrSimulation unless it already carries it.
func SimulationError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrSimulation) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrSimulation, err)
}
