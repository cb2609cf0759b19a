package status

import (
	"time"

	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/domain/hydroponics"
)

type Request struct{}

type Response struct {
	RunID           string                      `json:"run_id"`
	Tick            int64                       `json:"tick"`
	State           hydroponics.State           `json:"state"`
	LastAdjustments hydroponics.AdjustmentSet   `json:"last_adjustments"`
	Stable          bool                        `json:"stable"`
	Bands           map[string]hydroponics.Band `json:"bands"`
	Profile         hydroponics.Profile         `json:"profile"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}
