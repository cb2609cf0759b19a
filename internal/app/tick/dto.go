package tick

import (
	"time"

	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/domain/hydroponics"
)

type Request struct {
	Count int
}

type Response struct {
	RunID       string                    `json:"run_id"`
	Tick        int64                     `json:"tick"`
	State       hydroponics.State         `json:"state"`
	Adjustments hydroponics.AdjustmentSet `json:"adjustments"`
	Stable      bool                      `json:"stable"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}
