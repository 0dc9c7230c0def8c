package model

type PresetDefaults struct {
	Sliders            Sliders            `json:"sliders"`
	ScientificMode     bool               `json:"scientificMode"`
	StarCorrectionMode StarCorrectionMode `json:"starCorrectionMode"`
}

var presetDefaults = map[Preset]PresetDefaults{
	PresetNebula: {
		Sliders:            Sliders{BackgroundNeutralization: 65, SkyDarkening: 10, StretchStrength: 62, NoiseStrength: 52, StarReduction: 55, Saturation: 55},
		ScientificMode:     true,
		StarCorrectionMode: StarModerate,
	},
	PresetGalaxy: {
		Sliders:            Sliders{BackgroundNeutralization: 70, SkyDarkening: 35, StretchStrength: 55, NoiseStrength: 45, StarReduction: 35, Saturation: 45},
		ScientificMode:     true,
		StarCorrectionMode: StarLight,
	},
	PresetCluster: {
		Sliders:            Sliders{BackgroundNeutralization: 60, SkyDarkening: 40, StretchStrength: 40, NoiseStrength: 35, StarReduction: 10, Saturation: 50},
		ScientificMode:     true,
		StarCorrectionMode: StarNone,
	},
	PresetWidefield: {
		Sliders:            Sliders{BackgroundNeutralization: 55, SkyDarkening: 25, StretchStrength: 50, NoiseStrength: 40, StarReduction: 30, Saturation: 50},
		ScientificMode:     false,
		StarCorrectionMode: StarLight,
	},
	PresetPlanetary: {
		Sliders:            Sliders{BackgroundNeutralization: 40, SkyDarkening: 70, StretchStrength: 30, NoiseStrength: 30, StarReduction: 0, Saturation: 40},
		ScientificMode:     true,
		StarCorrectionMode: StarNone,
	},
	PresetLunar: {
		Sliders:            Sliders{BackgroundNeutralization: 30, SkyDarkening: 80, StretchStrength: 25, NoiseStrength: 30, StarReduction: 0, Saturation: 10},
		ScientificMode:     true,
		StarCorrectionMode: StarNone,
	},
	PresetSolar: {
		Sliders:            Sliders{BackgroundNeutralization: 30, SkyDarkening: 75, StretchStrength: 30, NoiseStrength: 35, StarReduction: 0, Saturation: 35},
		ScientificMode:     true,
		StarCorrectionMode: StarNone,
	},
	PresetGeneric: {
		Sliders:            Sliders{BackgroundNeutralization: 50, SkyDarkening: 30, StretchStrength: 50, NoiseStrength: 40, StarReduction: 30, Saturation: 45},
		ScientificMode:     true,
		StarCorrectionMode: StarLight,
	},
}

// DefaultsFor returns the defaults row for p, or the generic row when p is unknown.
func DefaultsFor(p Preset) PresetDefaults {
	if d, ok := presetDefaults[p]; ok {
		return d
	}
	return presetDefaults[PresetGeneric]
}

// AllPresetDefaults returns a copy of the table keyed by preset.
func AllPresetDefaults() map[Preset]PresetDefaults {
	out := make(map[Preset]PresetDefaults, len(presetDefaults))
	for k, v := range presetDefaults {
		out[k] = v
	}
	return out
}
