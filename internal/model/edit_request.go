package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// EditRequest is the wire form of EditParameters. Omitted fields are filled
// from the preset defaults.
type EditRequest struct {
	ObjectName               *string  `json:"objectName"`
	Preset                   string   `json:"preset"`
	AspectRatio              string   `json:"aspectRatio"`
	OutputSize               string   `json:"outputSize"`
	BackgroundNeutralization *float64 `json:"backgroundNeutralization"`
	SkyDarkening             *float64 `json:"skyDarkening"`
	StretchStrength          *float64 `json:"stretchStrength"`
	NoiseStrength            *float64 `json:"noiseStrength"`
	StarReduction            *float64 `json:"starReduction"`
	Saturation               *float64 `json:"saturation"`
	ScientificMode           *bool    `json:"scientificMode"`
	StarCorrectionMode       string   `json:"starCorrectionMode"`
}

// ParseEditParameters decodes a parameters document, fills defaults and validates it.
func ParseEditParameters(raw []byte) (EditParameters, error) {
	var req EditRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return EditParameters{}, fmt.Errorf("%w: invalid params json: %v", ErrValidation, err)
	}
	p := req.Resolve()
	if err := p.Validate(); err != nil {
		return EditParameters{}, err
	}
	return p, nil
}

// Resolve applies defaults without validating.
func (r EditRequest) Resolve() EditParameters {
	// Preset ids match exactly; anything else is an unknown preset.
	preset := Preset(strings.TrimSpace(r.Preset))
	if preset == "" {
		preset = PresetGeneric
	}
	def := DefaultsFor(preset)

	p := EditParameters{
		Preset:             preset,
		AspectRatio:        strings.TrimSpace(r.AspectRatio),
		OutputSize:         strings.ToUpper(strings.TrimSpace(r.OutputSize)),
		Sliders:            def.Sliders,
		ScientificMode:     def.ScientificMode,
		StarCorrectionMode: StarCorrectionMode(strings.TrimSpace(r.StarCorrectionMode)),
	}
	if r.ObjectName != nil {
		p.ObjectName = *r.ObjectName
	}
	if p.AspectRatio == "" {
		p.AspectRatio = AspectRatioAuto
	}
	if p.OutputSize == "" {
		p.OutputSize = DefaultOutputSize
	}
	if p.StarCorrectionMode == "" {
		p.StarCorrectionMode = def.StarCorrectionMode
	}
	if r.ScientificMode != nil {
		p.ScientificMode = *r.ScientificMode
	}
	setIf(&p.BackgroundNeutralization, r.BackgroundNeutralization)
	setIf(&p.SkyDarkening, r.SkyDarkening)
	setIf(&p.StretchStrength, r.StretchStrength)
	setIf(&p.NoiseStrength, r.NoiseStrength)
	setIf(&p.StarReduction, r.StarReduction)
	setIf(&p.Saturation, r.Saturation)
	return p
}

func setIf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
