package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/app/tick"
)

var _ tickExecutor = tick.UseCase{}

type fakeTicker struct {
	mu     sync.Mutex
	calls  int
	fail   bool
	stopAt int
	cancel context.CancelFunc
}

func (f *fakeTicker) Execute(_ context.Context, req tick.Request) (tick.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if req.Count != 1 {
		return tick.Response{}, errors.New("scheduler must tick one at a time")
	}
	f.calls++
	if f.calls >= f.stopAt && f.cancel != nil {
		f.cancel()
	}
	if f.fail {
		return tick.Response{}, errors.New("boom")
	}
	return tick.Response{Tick: int64(f.calls), Stable: f.calls%2 == 0}, nil
}

func TestRunner_TicksUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fake := &fakeTicker{stopAt: 3, cancel: cancel}

	done := Runner{Tick: fake, Interval: time.Millisecond}.Run(ctx)

	if done != 3 {
		t.Fatalf("done = %d, want 3", done)
	}
	if fake.calls != 3 {
		t.Fatalf("calls = %d, want 3", fake.calls)
	}
}

func TestRunner_FirstTickDoesNotWaitForInterval(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fake := &fakeTicker{stopAt: 1, cancel: cancel}

	finished := make(chan int, 1)
	go func() { finished <- Runner{Tick: fake, Interval: time.Hour}.Run(ctx) }()

	select {
	case n := <-finished:
		if n != 1 || fake.calls != 1 {
			t.Fatalf("expected one startup tick, got done=%d calls=%d", n, fake.calls)
		}
	case <-time.After(time.Second):
		t.Fatalf("first tick waited for the interval")
	}
}

func TestRunner_KeepsGoingAfterFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fake := &fakeTicker{stopAt: 2, cancel: cancel, fail: true}

	done := Runner{Tick: fake, Interval: time.Millisecond}.Run(ctx)

	if done != 0 {
		t.Fatalf("done = %d, want 0", done)
	}
	if fake.calls != 2 {
		t.Fatalf("calls = %d, want 2 (loop should survive a failed tick)", fake.calls)
	}
}

func TestRunner_StopsImmediatelyOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fake := &fakeTicker{}

	finished := make(chan int, 1)
	go func() { finished <- Runner{Tick: fake, Interval: time.Hour}.Run(ctx) }()

	select {
	case n := <-finished:
		if n != 0 || fake.calls != 0 {
			t.Fatalf("expected no ticks, got done=%d calls=%d", n, fake.calls)
		}
	case <-time.After(time.Second):
		t.Fatalf("runner did not stop on cancelled context")
	}
}
