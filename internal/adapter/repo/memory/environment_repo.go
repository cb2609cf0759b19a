package memory

import (
	"context"

	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/app/ports"
)

// EnvironmentRepo reads and writes the store without locking; callers go
// through TxManager, which holds the store mutex for the whole use case.
type EnvironmentRepo struct {
	store *Store
}

func NewEnvironmentRepo(store *Store) EnvironmentRepo {
	return EnvironmentRepo{store: store}
}

func (r EnvironmentRepo) Get(_ context.Context) (ports.EnvironmentRecord, error) {
	if r.store.record == nil {
		return ports.EnvironmentRecord{}, ports.ErrNotFound
	}
	return *r.store.record, nil
}

func (r EnvironmentRepo) SaveWithVersion(_ context.Context, rec ports.EnvironmentRecord, expectedVersion int64) error {
	current := r.store.record
	if current == nil {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.record = &rec
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.record = &rec
	return nil
}
