package ports

import (
	"context"
	"time"

	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/domain/hydroponics"
)

// EnvironmentRecord is the single long-lived environment owned by the control
// loop. Version increases on every save; Tick counts completed ticks.
type EnvironmentRecord struct {
	RunID           string
	State           hydroponics.State
	LastAdjustments hydroponics.AdjustmentSet
	Tick            int64
	Version         int64
	UpdatedAt       time.Time
}

type EnvironmentRepository interface {
	Get(ctx context.Context) (EnvironmentRecord, error)
	SaveWithVersion(ctx context.Context, record EnvironmentRecord, expectedVersion int64) error
}

// TxManager serialises use cases so that at most one tick or dose touches the
// environment at a time.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
