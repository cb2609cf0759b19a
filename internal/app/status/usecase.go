package status

import (
	"context"

	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/app/ports"
	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/domain/hydroponics"
)

type UseCase struct {
	TxManager ports.TxManager
	Repo      ports.EnvironmentRepository
	Profile   hydroponics.Profile
}

func (u UseCase) Execute(ctx context.Context, _ Request) (Response, error) {
	var rec ports.EnvironmentRecord
	load := func(ctx context.Context) error {
		var err error
		rec, err = u.Repo.Get(ctx)
		return err
	}
	var err error
	if u.TxManager != nil {
		err = u.TxManager.RunInTx(ctx, load)
	} else {
		err = load(ctx)
	}
	if err != nil {
		return Response{}, err
	}
	return Response{
		RunID:           rec.RunID,
		Tick:            rec.Tick,
		State:           rec.State,
		LastAdjustments: rec.LastAdjustments,
		Stable:          u.Profile.Stable(rec.State),
		Bands:           rec.State.Bands(u.Profile),
		Profile:         u.Profile,
		UpdatedAt:       rec.UpdatedAt,
	}, nil
}
