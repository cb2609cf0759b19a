package memory

import (
	"sync"

	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/app/ports"
)

// Store keeps the single environment record in process memory. Nothing is
// written to disk; the record lives as long as the process.
type Store struct {
	mu     sync.Mutex
	record *ports.EnvironmentRecord
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) SeedEnvironment(rec ports.EnvironmentRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = &rec
}
