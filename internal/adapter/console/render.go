package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/domain/hydroponics"
)

const stableMessage = "No adjustments needed. Environment is stable."

// Render writes one tick's readings followed by the adjustments planned
// for them.
func Render(w io.Writer, state hydroponics.State, set hydroponics.AdjustmentSet) error {
	readings := []struct {
		label string
		value float64
	}{
		{"pH", state.PH},
		{"EC", state.EC},
		{"Water Level (L)", state.WaterLevel},
		{"Nitrogen (mg/L)", state.Nitrogen},
		{"Phosphorus (mg/L)", state.Phosphorus},
		{"Potassium (mg/L)", state.Potassium},
	}
	for _, r := range readings {
		if _, err := fmt.Fprintf(w, "%s: %.2f\n", r.label, r.value); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "Adjustments Needed:\n"); err != nil {
		return err
	}
	if set.Empty() {
		_, err := fmt.Fprintln(w, stableMessage)
		return err
	}
	for _, a := range set.List() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", a.Key(), formatAmount(a.Amount)); err != nil {
			return err
		}
	}
	return nil
}

// formatAmount prints the shortest form of v, keeping a ".0" on whole
// numbers so 5 reads as 5.0.
func formatAmount(v float64) string {
	out := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}

// RenderProfile writes the target ranges and nutrient ideals.
func RenderProfile(w io.Writer, p hydroponics.Profile) error {
	lines := []string{
		fmt.Sprintf("Profile: %s", p.Name),
		fmt.Sprintf("pH: %.2f - %.2f", p.PH.Lo, p.PH.Hi),
		fmt.Sprintf("EC: %.2f - %.2f", p.EC.Lo, p.EC.Hi),
		fmt.Sprintf("Water Level (L): >= %.2f", p.MinWaterLevel),
	}
	for _, n := range hydroponics.Nutrients {
		lines = append(lines, fmt.Sprintf("%s (mg/L): %.2f (deficient below %.2f)", n, p.Ideal(n), p.Ideal(n)*p.DeficiencyRatio))
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
