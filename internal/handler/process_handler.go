package handler

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shinyyama/astro-edit-backend/internal/ai"
	"github.com/shinyyama/astro-edit-backend/internal/model"
	"github.com/shinyyama/astro-edit-backend/internal/reqctx"
	"github.com/shinyyama/astro-edit-backend/internal/service"
)

var allowedImageTypes = []string{"image/png", "image/jpeg"}

type ProcessHandler struct {
	svc service.ProcessService
}

func NewProcessHandler(svc service.ProcessService) *ProcessHandler {
	return &ProcessHandler{svc: svc}
}

type ProcessResponse struct {
	Image    string            `json:"image"`
	MimeType string            `json:"mimeType"`
	Facts    *model.AstroFacts `json:"facts"`
}

func (h *ProcessHandler) Process(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("image file is required"))
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("failed to read image"))
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil || len(data) == 0 {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("failed to read image"))
	}
	mt := mimetype.Detect(data)
	if !mimetype.EqualsAny(mt.String(), allowedImageTypes...) {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("image must be PNG or JPEG, got "+mt.String()))
	}

	raw := c.FormValue("params")
	if raw == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("params is required"))
	}
	params, err := model.ParseEditParameters([]byte(raw))
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse(err.Error()))
	}

	res, err := h.svc.Process(c.Request().Context(), service.ProcessInput{
		Image:    data,
		MimeType: mt.String(),
		Params:   params,
	})
	if err != nil {
		status, msg := classifyError(err)
		log.Error().
			Str("rid", reqctx.RID(c.Request().Context())).
			Int("status", status).
			Err(err).
			Msg("process failed")
		return c.JSON(status, NewErrorResponse(msg))
	}
	return c.JSON(http.StatusOK, ProcessResponse{
		Image:    base64.StdEncoding.EncodeToString(res.Image),
		MimeType: res.MimeType,
		Facts:    res.Facts,
	})
}

func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ai.ErrNoCandidates), errors.Is(err, ai.ErrNoImagePart):
		return http.StatusBadGateway, err.Error()
	case ai.IsRateLimit(err):
		return http.StatusInternalServerError, "image service is rate limited, please try again later"
	case err.Error() != "":
		return http.StatusInternalServerError, err.Error()
	default:
		return http.StatusInternalServerError, "failed to process image"
	}
}
