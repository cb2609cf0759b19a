package hydroponics

import (
	"encoding/json"
	"strconv"
	"strings"
)

type ActionKind string

const (
	ActionWater           ActionKind = "water"
	ActionAddBase         ActionKind = "add_base_ml"
	ActionAddAcid         ActionKind = "add_acid_ml"
	ActionAddNutrients    ActionKind = "add_nutrients_ml"
	ActionDiluteWater     ActionKind = "dilute_water_l"
	ActionAddNutrientMass ActionKind = "add_nutrient_mass"
)

const (
	nutrientKeyPrefix = "add_"
	nutrientKeySuffix = "_mg_per_l"
)

// Adjustment is one quantified corrective action. Nutrient is only set for
// ActionAddNutrientMass.
type Adjustment struct {
	Kind     ActionKind `json:"kind"`
	Nutrient Nutrient   `json:"nutrient,omitempty"`
	Amount   float64    `json:"amount"`
}

func AddWater(liters float64) Adjustment {
	return Adjustment{Kind: ActionWater, Amount: liters}
}

func AddBase(ml float64) Adjustment {
	return Adjustment{Kind: ActionAddBase, Amount: ml}
}

func AddAcid(ml float64) Adjustment {
	return Adjustment{Kind: ActionAddAcid, Amount: ml}
}

func AddNutrients(ml float64) Adjustment {
	return Adjustment{Kind: ActionAddNutrients, Amount: ml}
}

func DiluteWater(liters float64) Adjustment {
	return Adjustment{Kind: ActionDiluteWater, Amount: liters}
}

func AddNutrientMass(n Nutrient, mgPerL float64) Adjustment {
	return Adjustment{Kind: ActionAddNutrientMass, Nutrient: n, Amount: mgPerL}
}

// Key returns the action name operators see, e.g. "add_base_ml" or
// "add_Nitrogen_mg_per_l".
func (a Adjustment) Key() string {
	if a.Kind == ActionAddNutrientMass {
		return nutrientKeyPrefix + string(a.Nutrient) + nutrientKeySuffix
	}
	return string(a.Kind)
}

// ParseAdjustment maps an action name back to its typed form. Unknown names
// report false.
func ParseAdjustment(key string, amount float64) (Adjustment, bool) {
	switch ActionKind(key) {
	case ActionWater, ActionAddBase, ActionAddAcid, ActionAddNutrients, ActionDiluteWater:
		return Adjustment{Kind: ActionKind(key), Amount: amount}, true
	}
	if strings.HasPrefix(key, nutrientKeyPrefix) && strings.HasSuffix(key, nutrientKeySuffix) {
		name := strings.TrimSuffix(strings.TrimPrefix(key, nutrientKeyPrefix), nutrientKeySuffix)
		for _, n := range Nutrients {
			if string(n) == name {
				return AddNutrientMass(n, amount), true
			}
		}
	}
	return Adjustment{}, false
}

// AdjustmentSet holds at most one action per slot. pH and EC each have a
// single slot, so base and acid (or nutrients and dilution) can never be
// planned together.
type AdjustmentSet struct {
	Water     *Adjustment
	PH        *Adjustment
	EC        *Adjustment
	Nutrients map[Nutrient]Adjustment
}

func (s AdjustmentSet) Empty() bool {
	return s.Len() == 0
}

func (s AdjustmentSet) Len() int {
	n := len(s.Nutrients)
	for _, a := range []*Adjustment{s.Water, s.PH, s.EC} {
		if a != nil {
			n++
		}
	}
	return n
}

// List returns the actions in display order: water, pH, EC, then nutrients.
func (s AdjustmentSet) List() []Adjustment {
	out := make([]Adjustment, 0, s.Len())
	for _, a := range []*Adjustment{s.Water, s.PH, s.EC} {
		if a != nil {
			out = append(out, *a)
		}
	}
	for _, n := range Nutrients {
		if a, ok := s.Nutrients[n]; ok {
			out = append(out, a)
		}
	}
	return out
}

func (s AdjustmentSet) Get(key string) (float64, bool) {
	for _, a := range s.List() {
		if a.Key() == key {
			return a.Amount, true
		}
	}
	return 0, false
}

func (s AdjustmentSet) Map() map[string]float64 {
	out := make(map[string]float64, s.Len())
	for _, a := range s.List() {
		out[a.Key()] = a.Amount
	}
	return out
}

func (s AdjustmentSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Map())
}

func (s *AdjustmentSet) setNutrient(a Adjustment) {
	if s.Nutrients == nil {
		s.Nutrients = map[Nutrient]Adjustment{}
	}
	s.Nutrients[a.Nutrient] = a
}

// roundAmount rounds the exact binary value to AdjustmentDecimals places,
// ties to even.
func roundAmount(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', AdjustmentDecimals, 64), 64)
	if err != nil {
		return v
	}
	return r
}
