package hydroponics

import "testing"

func TestApplier_BaseRoundTrip(t *testing.T) {
	s := stableState()
	s.PH = 5.0
	set := Planner{}.Plan(s, LettuceProfile())
	Applier{}.Apply(&s, set)
	if !almostEqual(s.PH, 5.05) {
		t.Fatalf("pH = %v, want 5.05", s.PH)
	}
}

func TestApplier_DilutionHasTwoEffects(t *testing.T) {
	s := stableState()
	s.EC = 2.5
	set := Planner{}.Plan(s, LettuceProfile())
	Applier{}.Apply(&s, set)
	if !almostEqual(s.WaterLevel, 1.75) {
		t.Fatalf("water_level = %v, want 1.75", s.WaterLevel)
	}
	if !almostEqual(s.EC, 2.4875) {
		t.Fatalf("EC = %v, want 2.4875", s.EC)
	}
}

func TestApplier_EachAction(t *testing.T) {
	cases := []struct {
		name  string
		adj   Adjustment
		check func(State) bool
	}{
		{"water", AddWater(0.3), func(s State) bool { return almostEqual(s.WaterLevel, 1.8) }},
		{"acid", AddAcid(10), func(s State) bool { return almostEqual(s.PH, 5.9) }},
		{"nutrients", AddNutrients(20), func(s State) bool { return almostEqual(s.EC, 1.8) }},
		{"potassium", AddNutrientMass(Potassium, 12.5), func(s State) bool { return almostEqual(s.Potassium, 212.5) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := stableState()
			Applier{}.ApplyAll(&s, []Adjustment{tc.adj})
			if !tc.check(s) {
				t.Fatalf("unexpected state after %s: %+v", tc.adj.Key(), s)
			}
		})
	}
}

func TestApplier_DoesNotClamp(t *testing.T) {
	s := stableState()
	s.PH = 7.95
	Applier{}.ApplyAll(&s, []Adjustment{AddBase(50)})
	if !almostEqual(s.PH, 8.45) {
		t.Fatalf("pH = %v, want 8.45 (no clamp)", s.PH)
	}
}

func TestApplier_IgnoresUnknownKinds(t *testing.T) {
	s := stableState()
	before := s
	Applier{}.ApplyAll(&s, []Adjustment{{Kind: "add_magic_ml", Amount: 3}})
	if s != before {
		t.Fatalf("unknown action changed state: %+v", s)
	}
}

func TestApplier_EmptySetIsNoop(t *testing.T) {
	s := stableState()
	before := s
	Applier{}.Apply(&s, AdjustmentSet{})
	if s != before {
		t.Fatalf("empty set changed state: %+v", s)
	}
}
