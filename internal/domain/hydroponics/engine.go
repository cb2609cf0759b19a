package hydroponics

import "errors"

var ErrNilSource = errors.New("random source is required")

// Engine runs one control tick at a time over a caller-owned State. It holds
// no locks; callers must not tick the same State concurrently.
type Engine struct {
	profile Profile
	planner Planner
	applier Applier
	drift   DriftModel
}

func NewEngine(profile Profile, rnd Source) (*Engine, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if rnd == nil {
		return nil, ErrNilSource
	}
	return &Engine{
		profile: profile.Clone(),
		drift:   DriftModel{Rand: rnd},
	}, nil
}

func (e *Engine) Profile() Profile {
	return e.profile.Clone()
}

// Tick plans corrections, applies them, then drifts the state. It returns the
// drifted state and the adjustments planned for this tick.
func (e *Engine) Tick(state *State) (State, AdjustmentSet) {
	set := e.planner.Plan(*state, e.profile)
	e.applier.Apply(state, set)
	e.drift.Advance(state)
	return *state, set
}

// Apply runs actions outside the tick cycle, without planning or drift.
func (e *Engine) Apply(state *State, actions []Adjustment) {
	e.applier.ApplyAll(state, actions)
}
