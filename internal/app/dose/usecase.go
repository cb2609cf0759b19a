package dose

import (
	"context"
	"errors"
	"math"
	"slices"
	"time"

	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/app/ports"
	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/domain/hydroponics"
)

var ErrInvalidRequest = errors.New("invalid dose request")

// UseCase applies operator-supplied actions directly, outside the tick
// cycle. Keys the applier does not know are reported back as ignored.
type UseCase struct {
	TxManager ports.TxManager
	Repo      ports.EnvironmentRepository
	Engine    *hydroponics.Engine
	Metrics   ports.TickMetrics
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if len(req.Actions) == 0 {
		return Response{}, ErrInvalidRequest
	}
	keys := make([]string, 0, len(req.Actions))
	for k, v := range req.Actions {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return Response{}, ErrInvalidRequest
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	applied := make([]hydroponics.Adjustment, 0, len(keys))
	out := Response{Applied: []string{}, Ignored: []string{}}
	for _, k := range keys {
		adj, ok := hydroponics.ParseAdjustment(k, req.Actions[k])
		if !ok {
			out.Ignored = append(out.Ignored, k)
			continue
		}
		applied = append(applied, adj)
		out.Applied = append(out.Applied, k)
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		rec, err := u.Repo.Get(txCtx)
		if err != nil {
			return err
		}
		out.RunID = rec.RunID
		if len(applied) == 0 {
			out.State = rec.State
			return nil
		}
		expected := rec.Version
		u.Engine.Apply(&rec.State, applied)
		rec.Version++
		rec.UpdatedAt = nowFn()
		if err := u.Repo.SaveWithVersion(txCtx, rec, expected); err != nil {
			return err
		}
		out.State = rec.State
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordFailure()
		}
		return Response{}, err
	}
	if u.Metrics != nil && len(applied) > 0 {
		u.Metrics.RecordDose(applied)
	}
	return out, nil
}
