package scheduler

import (
	"context"
	"time"

	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/app/tick"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const DefaultInterval = 3 * time.Second

type tickExecutor interface {
	Execute(ctx context.Context, req tick.Request) (tick.Response, error)
}

// Runner drives the control loop at a fixed cadence. A failed tick is
// logged and the loop carries on with the next one.
type Runner struct {
	Tick     tickExecutor
	Interval time.Duration
}

// Run blocks until ctx is cancelled and returns how many ticks succeeded.
func (r Runner) Run(ctx context.Context) int {
	interval := r.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	done := 0
	if ctx.Err() != nil {
		return done
	}
	// first tick runs at startup, not one interval in
	if r.step(ctx) {
		done++
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
		if ctx.Err() != nil {
			hlog.Infof("scheduler stopped after %d ticks", done)
			return done
		}
		if r.step(ctx) {
			done++
		}
	}
}

func (r Runner) step(ctx context.Context) bool {
	resp, err := r.Tick.Execute(ctx, tick.Request{Count: 1})
	if err != nil {
		if ctx.Err() == nil {
			hlog.Errorf("scheduled tick failed: %v", err)
		}
		return false
	}
	hlog.Debugf("tick %d state=%+v", resp.Tick, resp.State)
	if !resp.Stable {
		hlog.Infof("tick %d adjustments=%v", resp.Tick, resp.Adjustments.Map())
	}
	return true
}
