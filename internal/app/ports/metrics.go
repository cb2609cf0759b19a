package ports

import "github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/domain/hydroponics"

type TickMetrics interface {
	RecordTick(set hydroponics.AdjustmentSet)
	RecordDose(applied []hydroponics.Adjustment)
	RecordFailure()
}
