package hydroponics

type Applier struct{}

// Apply carries out every action in the set. It does not clamp; the next
// drift step brings channels back inside their limits.
func (a Applier) Apply(state *State, set AdjustmentSet) {
	a.ApplyAll(state, set.List())
}

// ApplyAll applies each action independently. Actions of an unknown kind
// are ignored.
func (Applier) ApplyAll(state *State, actions []Adjustment) {
	for _, adj := range actions {
		switch adj.Kind {
		case ActionWater:
			state.WaterLevel += adj.Amount
		case ActionAddBase:
			state.PH += adj.Amount * PHShiftPerMl
		case ActionAddAcid:
			state.PH -= adj.Amount * PHShiftPerMl
		case ActionAddNutrients:
			state.EC += adj.Amount * ECShiftPerNutrientMl
		case ActionDiluteWater:
			state.WaterLevel += adj.Amount
			state.EC -= adj.Amount * ECDropPerDilutionL
		case ActionAddNutrientMass:
			state.AddNutrient(adj.Nutrient, adj.Amount)
		}
	}
}
