package memory

import (
	"context"

	"evoview/internal/app/ports"
)

type JournalRepo struct {
	store *Store
}

func NewJournalRepo(store *Store) JournalRepo {
	return JournalRepo{store: store}
}

func (r JournalRepo) Append(_ context.Context, run ports.TrainingRun) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.runs = append(r.store.runs, run)
	return nil
}

func (r JournalRepo) List(_ context.Context, limit int) ([]ports.TrainingRun, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if len(r.store.runs) == 0 {
		return nil, ports.ErrNotFound
	}
	n := len(r.store.runs)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]ports.TrainingRun, 0, n)
	for i := len(r.store.runs) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, r.store.runs[i])
	}
	return out, nil
}
