package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrValidation marks request problems that should be reported as a client error.
var ErrValidation = errors.New("validation")

type Preset string

const (
	PresetNebula    Preset = "nebula"
	PresetGalaxy    Preset = "galaxy"
	PresetCluster   Preset = "cluster"
	PresetWidefield Preset = "widefield"
	PresetPlanetary Preset = "planetary"
	PresetLunar     Preset = "lunar"
	PresetSolar     Preset = "solar"
	PresetGeneric   Preset = "generic"
)

const (
	AspectRatioAuto   = "auto"
	DefaultOutputSize = "1K"
)

var Presets = []Preset{
	PresetNebula, PresetGalaxy, PresetCluster, PresetWidefield,
	PresetPlanetary, PresetLunar, PresetSolar, PresetGeneric,
}

var AspectRatios = []string{
	AspectRatioAuto, "1:1", "2:3", "3:2", "3:4", "4:3", "4:5", "5:4", "9:16", "16:9", "21:9",
}

var OutputSizes = []string{"1K", "2K", "4K"}

type StarCorrectionMode string

// Ordered from least to most aggressive.
const (
	StarNone     StarCorrectionMode = "none"
	StarLight    StarCorrectionMode = "light_reduction"
	StarModerate StarCorrectionMode = "moderate_reduction"
	StarStrong   StarCorrectionMode = "strong_reduction"
	StarRemoval  StarCorrectionMode = "star_removal"
)

var StarCorrectionModes = []StarCorrectionMode{StarNone, StarLight, StarModerate, StarStrong, StarRemoval}

// Sliders holds the six independent 0-100 controls.
type Sliders struct {
	BackgroundNeutralization float64 `json:"backgroundNeutralization"`
	SkyDarkening             float64 `json:"skyDarkening"`
	StretchStrength          float64 `json:"stretchStrength"`
	NoiseStrength            float64 `json:"noiseStrength"`
	StarReduction            float64 `json:"starReduction"`
	Saturation               float64 `json:"saturation"`
}

type EditParameters struct {
	ObjectName         string             `json:"objectName,omitempty"`
	Preset             Preset             `json:"preset"`
	AspectRatio        string             `json:"aspectRatio"`
	OutputSize         string             `json:"outputSize"`
	Sliders                               // flattened into the JSON document
	ScientificMode     bool               `json:"scientificMode"`
	StarCorrectionMode StarCorrectionMode `json:"starCorrectionMode"`
}

// Validate checks enumerations and slider ranges. An unknown preset is not an
// error: prompt construction falls back to generic guidance for it.
func (p EditParameters) Validate() error {
	if !contains(AspectRatios, p.AspectRatio) {
		return fmt.Errorf("%w: unsupported aspectRatio %q", ErrValidation, p.AspectRatio)
	}
	if !contains(OutputSizes, p.OutputSize) {
		return fmt.Errorf("%w: unsupported outputSize %q", ErrValidation, p.OutputSize)
	}
	if !contains(StarCorrectionModes, p.StarCorrectionMode) {
		return fmt.Errorf("%w: unsupported starCorrectionMode %q", ErrValidation, p.StarCorrectionMode)
	}
	for _, s := range []struct {
		name string
		v    float64
	}{
		{"backgroundNeutralization", p.BackgroundNeutralization},
		{"skyDarkening", p.SkyDarkening},
		{"stretchStrength", p.StretchStrength},
		{"noiseStrength", p.NoiseStrength},
		{"starReduction", p.StarReduction},
		{"saturation", p.Saturation},
	} {
		if math.IsNaN(s.v) || s.v < 0 || s.v > 100 {
			return fmt.Errorf("%w: %s must be within 0-100, got %v", ErrValidation, s.name, s.v)
		}
	}
	return nil
}

// TrimmedObjectName returns the object name without surrounding whitespace.
func (p EditParameters) TrimmedObjectName() string {
	return strings.TrimSpace(p.ObjectName)
}

func contains[T comparable](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
