package inmemory

import (
	"sync"

	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/domain/hydroponics"
)

type Snapshot struct {
	TickTotal   uint64             `json:"tick_total"`
	TickStable  uint64             `json:"tick_stable"`
	DoseTotal   uint64             `json:"dose_total"`
	Failures    uint64             `json:"failures"`
	ByAction    map[string]uint64  `json:"by_action"`
	DosedAmount map[string]float64 `json:"dosed_amount"`
}

type Recorder struct {
	mu       sync.Mutex
	ticks    uint64
	stable   uint64
	doses    uint64
	failures uint64
	byAction map[string]uint64
	amounts  map[string]float64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byAction: map[string]uint64{},
		amounts:  map[string]float64{},
	}
}

func (r *Recorder) RecordTick(set hydroponics.AdjustmentSet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks++
	if set.Empty() {
		r.stable++
	}
	r.addLocked(set.List())
}

func (r *Recorder) RecordDose(applied []hydroponics.Adjustment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doses++
	r.addLocked(applied)
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures++
}

func (r *Recorder) addLocked(actions []hydroponics.Adjustment) {
	for _, a := range actions {
		r.byAction[a.Key()]++
		r.amounts[a.Key()] += a.Amount
	}
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		TickTotal:   r.ticks,
		TickStable:  r.stable,
		DoseTotal:   r.doses,
		Failures:    r.failures,
		ByAction:    make(map[string]uint64, len(r.byAction)),
		DosedAmount: make(map[string]float64, len(r.amounts)),
	}
	for k, v := range r.byAction {
		out.ByAction[k] = v
	}
	for k, v := range r.amounts {
		out.DosedAmount[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
