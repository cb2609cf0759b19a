package hydroponics

type Nutrient string

const (
	Nitrogen   Nutrient = "Nitrogen"
	Phosphorus Nutrient = "Phosphorus"
	Potassium  Nutrient = "Potassium"
)

// Nutrients lists the nutrient channels in the order they are drifted,
// planned and rendered.
var Nutrients = []Nutrient{Nitrogen, Phosphorus, Potassium}

type State struct {
	PH         float64 `json:"pH"`
	EC         float64 `json:"EC"`
	WaterLevel float64 `json:"water_level"`
	Nitrogen   float64 `json:"Nitrogen"`
	Phosphorus float64 `json:"Phosphorus"`
	Potassium  float64 `json:"Potassium"`
}

type Range struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

func (r Range) Contains(v float64) bool {
	return v >= r.Lo && v <= r.Hi
}

func (r Range) Clamp(v float64) float64 {
	if v < r.Lo {
		return r.Lo
	}
	if v > r.Hi {
		return r.Hi
	}
	return v
}

type Profile struct {
	Name            string               `json:"name"`
	PH              Range                `json:"pH"`
	EC              Range                `json:"EC"`
	MinWaterLevel   float64              `json:"water_level_min"`
	Nutrients       map[Nutrient]float64 `json:"nutrients"`
	DeficiencyRatio float64              `json:"deficiency_ratio"`
}

type Band string

const (
	BandOK        Band = "ok"
	BandBelow     Band = "below"
	BandAbove     Band = "above"
	BandLow       Band = "low"
	BandDeficient Band = "deficient"
)
