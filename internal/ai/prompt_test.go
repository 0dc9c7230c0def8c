package ai

import (
	"strings"
	"testing"

	"github.com/shinyyama/astro-edit-backend/internal/model"
)

func paramsFor(preset model.Preset) model.EditParameters {
	def := model.DefaultsFor(preset)
	return model.EditParameters{
		Preset:             preset,
		AspectRatio:        model.AspectRatioAuto,
		OutputSize:         model.DefaultOutputSize,
		Sliders:            def.Sliders,
		ScientificMode:     def.ScientificMode,
		StarCorrectionMode: def.StarCorrectionMode,
	}
}

func TestBuildEditPromptSingleBlocks(t *testing.T) {
	presets := append([]model.Preset{}, model.Presets...)
	presets = append(presets, "comet", "NEBULA")
	for _, preset := range presets {
		for _, scientific := range []bool{true, false} {
			for _, v := range []float64{0, 19.5, 20, 59, 60, 100} {
				p := paramsFor(preset)
				p.ScientificMode = scientific
				p.SkyDarkening = v
				p.StarReduction = v
				out := BuildEditPrompt(p, nil)

				on := strings.Count(out, "Scientific mode: ON")
				off := strings.Count(out, "Scientific mode: OFF")
				if on+off != 1 || (scientific && on != 1) || (!scientific && off != 1) {
					t.Fatalf("preset=%s scientific=%v: on=%d off=%d", preset, scientific, on, off)
				}
				if n := strings.Count(out, "Preset guidance ("); n != 1 {
					t.Fatalf("preset=%s: %d preset blocks", preset, n)
				}
				want := string(preset)
				if preset == "comet" || preset == "NEBULA" {
					want = "generic"
				}
				if !strings.Contains(out, "Preset guidance ("+want+"):") {
					t.Fatalf("preset=%s: missing %s guidance", preset, want)
				}
			}
		}
	}
}

func TestBuildEditPromptScenarioNebula(t *testing.T) {
	p := paramsFor(model.PresetNebula)
	p.ObjectName = "M42"
	out := BuildEditPrompt(p, nil)

	for _, want := range []string{
		"User-provided target: M42",
		"Preset guidance (nebula):",
		"- moderate_reduction:",
		"Selected Star correction mode: moderate_reduction",
		"Background neutralization: 65/100",
		"Sky darkening: 10/100",
		"Stretch strength: 62/100",
		"Noise reduction strength: 52/100",
		"Star reduction: 55/100",
		"Saturation: 55/100",
		"Scientific mode: ON",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q", want)
		}
	}
	for _, unwanted := range []string{"Preset guidance (lunar):", "Preset guidance (solar):"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("unexpected %q", unwanted)
		}
	}
}

func TestBuildEditPromptNoObjectName(t *testing.T) {
	out := BuildEditPrompt(paramsFor(model.PresetGalaxy), nil)
	if !strings.Contains(out, "generic deep-sky data") {
		t.Fatal("missing no-facts fallback sentence")
	}
	if strings.Contains(out, "Interpreted name") {
		t.Fatal("unexpected Interpreted name line")
	}
	if strings.Contains(out, "User-provided target") {
		t.Fatal("unexpected target line")
	}
}

func TestBuildEditPromptFacts(t *testing.T) {
	facts := &model.AstroFacts{
		ObjectName:           "Orion Nebula (M42)",
		ObjectType:           "emission nebula",
		CanonicalColors:      "red H-alpha, teal OIII core",
		StructuresToPreserve: []string{"Trapezium", "Running Man"},
		EditsToAvoid:         []string{"clipping the core"},
	}
	out := BuildEditPrompt(paramsFor(model.PresetNebula), facts)
	for _, want := range []string{
		"Interpreted name: Orion Nebula (M42)",
		"Object type: emission nebula",
		"Canonical colors: red H-alpha, teal OIII core",
		"Structures to preserve:\n- Trapezium\n- Running Man",
		"Edits to avoid:\n- clipping the core",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q", want)
		}
	}
	if strings.Contains(out, "generic deep-sky data") {
		t.Error("fallback sentence must not appear when facts are present")
	}
}

func TestBuildEditPromptFactsOmissions(t *testing.T) {
	facts := &model.AstroFacts{
		ObjectName:      "unknown",
		ObjectType:      "unknown",
		CanonicalColors: "Unknown",
	}
	out := BuildEditPrompt(paramsFor(model.PresetGeneric), facts)
	for _, unwanted := range []string{"Canonical colors", "Structures to preserve", "Edits to avoid"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("unexpected %q", unwanted)
		}
	}
	if !strings.Contains(out, "Interpreted name: unknown") {
		t.Error("missing interpreted name")
	}
}

func TestBuildEditPromptDeterministic(t *testing.T) {
	p := paramsFor(model.PresetSolar)
	p.ObjectName = "Sun"
	facts := &model.AstroFacts{ObjectName: "Sun", ObjectType: "star", CanonicalColors: "unknown", EditsToAvoid: []string{"adding flares"}}
	if BuildEditPrompt(p, facts) != BuildEditPrompt(p, facts) {
		t.Fatal("output differs for identical input with facts")
	}
	if BuildEditPrompt(p, nil) != BuildEditPrompt(p, nil) {
		t.Fatal("output differs for identical input without facts")
	}
}

func TestBuildEditPromptSectionOrder(t *testing.T) {
	p := paramsFor(model.PresetLunar)
	p.ObjectName = "Moon"
	p.ScientificMode = false
	out := BuildEditPrompt(p, &model.AstroFacts{ObjectName: "Moon", ObjectType: "natural satellite"})
	markers := []string{
		"You are an expert astrophotography",
		"User-provided target: Moon",
		"Interpreted name: Moon",
		"Processing workflow",
		"Slider values:",
		"How to interpret Sky darkening",
		"How to interpret each Star correction mode",
		"How to interpret Star reduction",
		"Scientific mode: OFF",
		"Preset guidance (lunar):",
		"Reply with the edited image only.",
	}
	last := -1
	for _, m := range markers {
		idx := strings.Index(out, m)
		if idx < 0 {
			t.Fatalf("missing %q", m)
		}
		if idx <= last {
			t.Fatalf("%q out of order", m)
		}
		last = idx
	}
	if !strings.Contains(out, "essentially black") {
		t.Fatal("lunar block should describe the black sky threshold")
	}
}
