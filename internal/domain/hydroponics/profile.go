package hydroponics

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidProfile = errors.New("invalid target profile")

// Validate rejects profiles the planner cannot act on sensibly. It is run
// once when the engine is built; the profile is never mutated afterwards.
func (p Profile) Validate() error {
	if err := validateRange("pH", p.PH); err != nil {
		return err
	}
	if err := validateRange("EC", p.EC); err != nil {
		return err
	}
	if !finite(p.MinWaterLevel) || p.MinWaterLevel < 0 {
		return fmt.Errorf("%w: water_level_min %v must be >= 0", ErrInvalidProfile, p.MinWaterLevel)
	}
	if !(p.DeficiencyRatio > 0 && p.DeficiencyRatio <= 1) {
		return fmt.Errorf("%w: deficiency_ratio %v must be in (0,1]", ErrInvalidProfile, p.DeficiencyRatio)
	}
	for _, n := range Nutrients {
		ideal, ok := p.Nutrients[n]
		if !ok {
			return fmt.Errorf("%w: missing ideal for %s", ErrInvalidProfile, n)
		}
		if !finite(ideal) || ideal <= 0 {
			return fmt.Errorf("%w: ideal %s %v must be > 0", ErrInvalidProfile, n, ideal)
		}
	}
	return nil
}

func (p Profile) Ideal(n Nutrient) float64 {
	return p.Nutrients[n]
}

func (p Profile) deficient(n Nutrient, actual float64) bool {
	return actual < p.Ideal(n)*p.DeficiencyRatio
}

// Clone returns a copy whose nutrient map is not shared with p.
func (p Profile) Clone() Profile {
	out := p
	out.Nutrients = make(map[Nutrient]float64, len(p.Nutrients))
	for k, v := range p.Nutrients {
		out.Nutrients[k] = v
	}
	return out
}

func validateRange(name string, r Range) error {
	if !finite(r.Lo) || !finite(r.Hi) {
		return fmt.Errorf("%w: %s range must be finite", ErrInvalidProfile, name)
	}
	if r.Lo > r.Hi {
		return fmt.Errorf("%w: %s range lo %v > hi %v", ErrInvalidProfile, name, r.Lo, r.Hi)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Stable reports whether the planner would leave s untouched.
func (p Profile) Stable(s State) bool {
	return Planner{}.Plan(s, p).Empty()
}
