package hydroponics

const (
	InitialPH         = 5.0
	InitialEC         = 1.0
	InitialWaterLevel = 0.8
	InitialNitrogen   = 120
	InitialPhosphorus = 40
	InitialPotassium  = 180

	LettucePHLo          = 5.5
	LettucePHHi          = 6.5
	LettuceECLo          = 1.2
	LettuceECHi          = 2.0
	LettuceMinWaterLevel = 1.0
	LettuceNitrogen      = 150
	LettucePhosphorus    = 50
	LettucePotassium     = 200

	DefaultDeficiencyRatio = 0.9

	PHClampLo = 4.0
	PHClampHi = 8.0
	ECClampLo = 0.5
	ECClampHi = 3.0

	PHDriftMax          = 0.05
	ECDriftMax          = 0.05
	WaterLossMin        = 0.01
	WaterLossMax        = 0.03
	NitrogenUptakeMin   = 1.0
	NitrogenUptakeMax   = 3.0
	PhosphorusUptakeMin = 0.5
	PhosphorusUptakeMax = 2.0
	PotassiumUptakeMin  = 1.0
	PotassiumUptakeMax  = 4.0

	// Planner dose factors per unit of deviation.
	BaseMlPerPH         = 10
	AcidMlPerPH         = 10
	NutrientsMlPerEC    = 50
	DilutionLitersPerEC = 0.5

	// Applier response per unit of dose.
	PHShiftPerMl         = 0.01
	ECShiftPerNutrientMl = 0.01
	ECDropPerDilutionL   = 0.05

	AdjustmentDecimals = 2
)

var uptakeBounds = map[Nutrient]Range{
	Nitrogen:   {Lo: NitrogenUptakeMin, Hi: NitrogenUptakeMax},
	Phosphorus: {Lo: PhosphorusUptakeMin, Hi: PhosphorusUptakeMax},
	Potassium:  {Lo: PotassiumUptakeMin, Hi: PotassiumUptakeMax},
}

func InitialState() State {
	return State{
		PH:         InitialPH,
		EC:         InitialEC,
		WaterLevel: InitialWaterLevel,
		Nitrogen:   InitialNitrogen,
		Phosphorus: InitialPhosphorus,
		Potassium:  InitialPotassium,
	}
}

func LettuceProfile() Profile {
	return Profile{
		Name:          "lettuce",
		PH:            Range{Lo: LettucePHLo, Hi: LettucePHHi},
		EC:            Range{Lo: LettuceECLo, Hi: LettuceECHi},
		MinWaterLevel: LettuceMinWaterLevel,
		Nutrients: map[Nutrient]float64{
			Nitrogen:   LettuceNitrogen,
			Phosphorus: LettucePhosphorus,
			Potassium:  LettucePotassium,
		},
		DeficiencyRatio: DefaultDeficiencyRatio,
	}
}

func PHLimits() Range { return Range{Lo: PHClampLo, Hi: PHClampHi} }

func ECLimits() Range { return Range{Lo: ECClampLo, Hi: ECClampHi} }
