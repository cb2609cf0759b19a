package hydroponics

func (s State) Nutrient(n Nutrient) float64 {
	switch n {
	case Nitrogen:
		return s.Nitrogen
	case Phosphorus:
		return s.Phosphorus
	case Potassium:
		return s.Potassium
	}
	return 0
}

func (s *State) SetNutrient(n Nutrient, v float64) {
	switch n {
	case Nitrogen:
		s.Nitrogen = v
	case Phosphorus:
		s.Phosphorus = v
	case Potassium:
		s.Potassium = v
	}
}

func (s *State) AddNutrient(n Nutrient, delta float64) {
	s.SetNutrient(n, s.Nutrient(n)+delta)
}

// Bands reports where each channel sits relative to the profile. Keys are
// the channel names used in the JSON encoding of State.
func (s State) Bands(p Profile) map[string]Band {
	out := map[string]Band{
		"pH":          rangeBand(p.PH, s.PH),
		"EC":          rangeBand(p.EC, s.EC),
		"water_level": BandOK,
	}
	if s.WaterLevel < p.MinWaterLevel {
		out["water_level"] = BandLow
	}
	for _, n := range Nutrients {
		out[string(n)] = BandOK
		if p.deficient(n, s.Nutrient(n)) {
			out[string(n)] = BandDeficient
		}
	}
	return out
}

func rangeBand(r Range, v float64) Band {
	switch {
	case v < r.Lo:
		return BandBelow
	case v > r.Hi:
		return BandAbove
	default:
		return BandOK
	}
}
