package hydroponics

import "math"

// DriftModel emulates uncontrolled change between control actions: pH and
// EC wander, water evaporates and the crop takes up nutrients.
type DriftModel struct {
	Rand Source
}

// Advance perturbs state in place and clamps every channel to its physical
// limits. Draws happen in a fixed order so a seeded Source reproduces a run.
func (d DriftModel) Advance(state *State) {
	state.PH += d.Rand.Uniform(-PHDriftMax, PHDriftMax)
	state.EC += d.Rand.Uniform(-ECDriftMax, ECDriftMax)
	state.WaterLevel -= d.Rand.Uniform(WaterLossMin, WaterLossMax)
	for _, n := range Nutrients {
		b := uptakeBounds[n]
		state.AddNutrient(n, -d.Rand.Uniform(b.Lo, b.Hi))
	}

	state.PH = PHLimits().Clamp(state.PH)
	state.EC = ECLimits().Clamp(state.EC)
	state.WaterLevel = math.Max(0, state.WaterLevel)
	// Nutrients only have a floor.
	for _, n := range Nutrients {
		state.SetNutrient(n, math.Max(0, state.Nutrient(n)))
	}
}
