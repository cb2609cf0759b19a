package dose

import "github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/domain/hydroponics"

type Request struct {
	Actions map[string]float64
}

type Response struct {
	RunID   string            `json:"run_id"`
	Applied []string          `json:"applied"`
	Ignored []string          `json:"ignored"`
	State   hydroponics.State `json:"state"`
}
