package tick

import (
	"context"
	"errors"
	"time"

	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/app/ports"
	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/domain/hydroponics"
)

const MaxTicksPerRequest = 100

var ErrInvalidRequest = errors.New("invalid tick request")

type UseCase struct {
	TxManager ports.TxManager
	Repo      ports.EnvironmentRepository
	Engine    *hydroponics.Engine
	Metrics   ports.TickMetrics
	Now       func() time.Time
}

// Execute runs req.Count ticks (one when zero) against the stored environment
// and returns the outcome of the last one.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 0 || count > MaxTicksPerRequest {
		return Response{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var (
		out  Response
		sets []hydroponics.AdjustmentSet
	)
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		rec, err := u.Repo.Get(txCtx)
		if err != nil {
			return err
		}
		expected := rec.Version

		sets = make([]hydroponics.AdjustmentSet, 0, count)
		for i := 0; i < count; i++ {
			_, set := u.Engine.Tick(&rec.State)
			rec.Tick++
			rec.LastAdjustments = set
			sets = append(sets, set)
		}
		rec.Version++
		rec.UpdatedAt = nowFn()

		if err := u.Repo.SaveWithVersion(txCtx, rec, expected); err != nil {
			return err
		}
		out = Response{
			RunID:       rec.RunID,
			Tick:        rec.Tick,
			State:       rec.State,
			Adjustments: rec.LastAdjustments,
			Stable:      rec.LastAdjustments.Empty(),
			UpdatedAt:   rec.UpdatedAt,
		}
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordFailure()
		}
		return Response{}, err
	}

	if u.Metrics != nil {
		for _, set := range sets {
			u.Metrics.RecordTick(set)
		}
	}
	return out, nil
}
