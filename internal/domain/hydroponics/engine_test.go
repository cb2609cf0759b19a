package hydroponics

import (
	"errors"
	"testing"
)

func lowerBoundSource() Source {
	return SourceFunc(func(lo, _ float64) float64 { return lo })
}

func TestNewEngine_RejectsInvalidProfile(t *testing.T) {
	p := LettuceProfile()
	p.PH = Range{Lo: 7, Hi: 6}
	if _, err := NewEngine(p, lowerBoundSource()); !errors.Is(err, ErrInvalidProfile) {
		t.Fatalf("expected ErrInvalidProfile, got %v", err)
	}
}

func TestNewEngine_RejectsNilSource(t *testing.T) {
	if _, err := NewEngine(LettuceProfile(), nil); !errors.Is(err, ErrNilSource) {
		t.Fatalf("expected ErrNilSource, got %v", err)
	}
}

func TestEngine_TickPlansAppliesThenDrifts(t *testing.T) {
	e, err := NewEngine(LettuceProfile(), lowerBoundSource())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	s := InitialState()
	got, set := e.Tick(&s)

	if _, ok := set.Get("add_base_ml"); !ok {
		t.Fatalf("expected add_base_ml in %v", set.Map())
	}
	// plan on the pre-tick state, apply, then drift with lower-bound draws
	want := State{
		PH:         5.0 + 0.05 - 0.05,
		EC:         1.0 + 0.1 - 0.05,
		WaterLevel: 0.8 + 0.2 - 0.01,
		Nitrogen:   120 + 30 - 1,
		Phosphorus: 40 + 10 - 0.5,
		Potassium:  180 - 1,
	}
	pairs := [][2]float64{
		{got.PH, want.PH},
		{got.EC, want.EC},
		{got.WaterLevel, want.WaterLevel},
		{got.Nitrogen, want.Nitrogen},
		{got.Phosphorus, want.Phosphorus},
		{got.Potassium, want.Potassium},
	}
	for i, p := range pairs {
		if !almostEqual(p[0], p[1]) {
			t.Fatalf("channel %d = %v, want %v", i, p[0], p[1])
		}
	}
	if got != s {
		t.Fatalf("returned state %+v differs from in-place state %+v", got, s)
	}
}

func TestEngine_SeededRunsAreReproducible(t *testing.T) {
	run := func() State {
		e, err := NewEngine(LettuceProfile(), NewSeededSource(99))
		if err != nil {
			t.Fatalf("NewEngine: %v", err)
		}
		s := InitialState()
		for i := 0; i < 25; i++ {
			e.Tick(&s)
		}
		return s
	}
	if a, b := run(), run(); a != b {
		t.Fatalf("seeded runs diverged: %+v vs %+v", a, b)
	}
}

func TestEngine_ConvergesTowardProfile(t *testing.T) {
	e, err := NewEngine(LettuceProfile(), NewSeededSource(1))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	s := InitialState()
	for i := 0; i < 200; i++ {
		e.Tick(&s)
	}
	if s.WaterLevel < 0.9 {
		t.Fatalf("water level did not recover: %v", s.WaterLevel)
	}
	if s.Nitrogen < 120 || s.Phosphorus < 40 || s.Potassium < 170 {
		t.Fatalf("nutrients not maintained: %+v", s)
	}
}

func TestEngine_ProfileIsCopied(t *testing.T) {
	p := LettuceProfile()
	e, err := NewEngine(p, lowerBoundSource())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	p.Nutrients[Nitrogen] = 1
	got := e.Profile()
	if got.Ideal(Nitrogen) != LettuceNitrogen {
		t.Fatalf("engine profile shares caller map: nitrogen ideal %v", got.Ideal(Nitrogen))
	}
	got.Nutrients[Nitrogen] = 2
	if e.Profile().Ideal(Nitrogen) != LettuceNitrogen {
		t.Fatalf("Profile() exposes engine map")
	}
}

func TestEngine_ApplyManualActions(t *testing.T) {
	e, err := NewEngine(LettuceProfile(), lowerBoundSource())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	s := stableState()
	e.Apply(&s, []Adjustment{AddAcid(5), AddBase(5), DiluteWater(1)})
	if !almostEqual(s.PH, 6.0) {
		t.Fatalf("pH = %v, want 6.0", s.PH)
	}
	if !almostEqual(s.WaterLevel, 2.5) || !almostEqual(s.EC, 1.55) {
		t.Fatalf("dilution not applied: %+v", s)
	}
}
