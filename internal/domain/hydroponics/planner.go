package hydroponics

type Planner struct{}

// Plan computes the correction for every channel outside its target band.
// It never mutates state; an empty set means the environment is stable.
func (Planner) Plan(state State, profile Profile) AdjustmentSet {
	var set AdjustmentSet

	if state.WaterLevel < profile.MinWaterLevel {
		a := AddWater(roundAmount(profile.MinWaterLevel - state.WaterLevel))
		set.Water = &a
	}

	if state.PH < profile.PH.Lo {
		a := AddBase(roundAmount((profile.PH.Lo - state.PH) * BaseMlPerPH))
		set.PH = &a
	} else if state.PH > profile.PH.Hi {
		a := AddAcid(roundAmount((state.PH - profile.PH.Hi) * AcidMlPerPH))
		set.PH = &a
	}

	if state.EC < profile.EC.Lo {
		a := AddNutrients(roundAmount((profile.EC.Lo - state.EC) * NutrientsMlPerEC))
		set.EC = &a
	} else if state.EC > profile.EC.Hi {
		a := DiluteWater(roundAmount((state.EC - profile.EC.Hi) * DilutionLitersPerEC))
		set.EC = &a
	}

	for _, n := range Nutrients {
		actual := state.Nutrient(n)
		if profile.deficient(n, actual) {
			set.setNutrient(AddNutrientMass(n, roundAmount(profile.Ideal(n)-actual)))
		}
	}

	return set
}
