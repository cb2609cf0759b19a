package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/SaucysFlyer/hydroponic-nutrient-sensor/internal/domain/hydroponics"
)

func TestRender_InitialStateWithAdjustments(t *testing.T) {
	s := hydroponics.InitialState()
	set := hydroponics.Planner{}.Plan(s, hydroponics.LettuceProfile())

	var buf bytes.Buffer
	if err := Render(&buf, s, set); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := strings.Join([]string{
		"pH: 5.00",
		"EC: 1.00",
		"Water Level (L): 0.80",
		"Nitrogen (mg/L): 120.00",
		"Phosphorus (mg/L): 40.00",
		"Potassium (mg/L): 180.00",
		"Adjustments Needed:",
		"water: 0.2",
		"add_base_ml: 5.0",
		"add_nutrients_ml: 10.0",
		"add_Nitrogen_mg_per_l: 30.0",
		"add_Phosphorus_mg_per_l: 10.0",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("render mismatch:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_Stable(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, hydroponics.InitialState(), hydroponics.AdjustmentSet{}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "Adjustments Needed:\n"+stableMessage+"\n") {
		t.Fatalf("expected stable message, got:\n%s", buf.String())
	}
}

func TestRenderProfile(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderProfile(&buf, hydroponics.LettuceProfile()); err != nil {
		t.Fatalf("RenderProfile: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"pH: 5.50 - 6.50", "EC: 1.20 - 2.00", "Nitrogen (mg/L): 150.00 (deficient below 135.00)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[float64]string{
		5:     "5.0",
		16:    "16.0",
		0.2:   "0.2",
		0.12:  "0.12",
		39.5:  "39.5",
		0.025: "0.025",
	}
	for in, want := range cases {
		if got := formatAmount(in); got != want {
			t.Fatalf("formatAmount(%v) = %q, want %q", in, got, want)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRender_PropagatesWriteError(t *testing.T) {
	if err := Render(failingWriter{}, hydroponics.InitialState(), hydroponics.AdjustmentSet{}); err == nil {
		t.Fatalf("expected write error")
	}
}
