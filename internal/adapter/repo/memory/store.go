package memory

import (
	"sync"

	"evoview/internal/app/ports"
)

type Store struct {
	mu   sync.RWMutex
	runs []ports.TrainingRun
}

func NewStore() *Store {
	return &Store{}
}
