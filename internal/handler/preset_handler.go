package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shinyyama/astro-edit-backend/internal/model"
)

type PresetResponse struct {
	ID string `json:"id"`
	model.PresetDefaults
}

type PresetListResponse struct {
	Presets      []PresetResponse `json:"presets"`
	AspectRatios []string         `json:"aspectRatios"`
	OutputSizes  []string         `json:"outputSizes"`
	StarModes    []string         `json:"starCorrectionModes"`
}

// ListPresets returns the defaults table so clients can initialise sliders.
func ListPresets(c echo.Context) error {
	return c.JSON(http.StatusOK, BuildPresetList())
}

func BuildPresetList() PresetListResponse {
	resp := PresetListResponse{
		Presets:      make([]PresetResponse, 0, len(model.Presets)),
		AspectRatios: model.AspectRatios,
		OutputSizes:  model.OutputSizes,
		StarModes:    make([]string, 0, len(model.StarCorrectionModes)),
	}
	for _, p := range model.Presets {
		resp.Presets = append(resp.Presets, PresetResponse{ID: string(p), PresetDefaults: model.DefaultsFor(p)})
	}
	for _, m := range model.StarCorrectionModes {
		resp.StarModes = append(resp.StarModes, string(m))
	}
	return resp
}
