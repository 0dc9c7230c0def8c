package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shinyyama/astro-edit-backend/internal/model"
	"github.com/shinyyama/astro-edit-backend/internal/reqctx"
	"google.golang.org/genai"
)

const DefaultImageModel = "gemini-3-pro-image-preview"

type GeminiImageClient struct {
	client  *genai.Client
	model   string
	backoff Backoff
}

type ImageEditRequest struct {
	Image       []byte
	MimeType    string
	Prompt      string
	OutputSize  string
	AspectRatio string
}

type ImageEditResult struct {
	Image     []byte
	MimeType  string
	ElapsedMs int64
}

func NewGeminiImageClient(client *genai.Client, model string, backoff Backoff) *GeminiImageClient {
	if model == "" {
		model = DefaultImageModel
	}
	return &GeminiImageClient{client: client, model: model, backoff: backoff}
}

// Edit sends the image and prompt to the image model and returns the first
// inline image of the response.
func (c *GeminiImageClient) Edit(ctx context.Context, req ImageEditRequest) (*ImageEditResult, error) {
	if c == nil || c.client == nil {
		return nil, errors.New("gemini client is nil")
	}
	if len(req.Image) == 0 {
		return nil, errors.New("image is required")
	}

	mimeType := strings.TrimSpace(req.MimeType)
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(req.Prompt),
			genai.NewPartFromBytes(req.Image, mimeType),
		}, genai.RoleUser),
	}
	config := buildImageEditConfig(req.OutputSize, req.AspectRatio)

	logger := log.With().Str("rid", reqctx.RID(ctx)).Str("object", reqctx.Object(ctx)).Logger()
	logger.Info().
		Str("stage", "image_start").
		Str("model", c.model).
		Str("size", req.OutputSize).
		Str("aspect", req.AspectRatio).
		Int("bytes", len(req.Image)).
		Msg("image edit")

	start := time.Now()
	res, err := WithRateLimitRetry(ctx, c.backoff, func() (*genai.GenerateContentResponse, error) {
		return c.client.Models.GenerateContent(ctx, c.model, contents, config)
	})
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		logger.Error().Str("stage", "image_fail").Int64("ms", elapsed).Err(err).Msg("image edit failed")
		return nil, fmt.Errorf("image edit: %w", err)
	}

	blob, err := firstInlineImage(res)
	if err != nil {
		logger.Error().Str("stage", "image_empty").Int64("ms", elapsed).Err(err).Msg("image edit returned no image")
		return nil, err
	}
	logger.Info().Str("stage", "image_done").Int64("ms", elapsed).Int("bytes", len(blob.Data)).Msg("image edit done")
	return &ImageEditResult{Image: blob.Data, MimeType: blob.MIMEType, ElapsedMs: elapsed}, nil
}

// buildImageEditConfig omits the aspect ratio for "auto" so the model keeps
// the input proportions.
func buildImageEditConfig(outputSize, aspectRatio string) *genai.GenerateContentConfig {
	imgCfg := &genai.ImageConfig{ImageSize: outputSize}
	if ar := strings.TrimSpace(aspectRatio); ar != "" && ar != model.AspectRatioAuto {
		imgCfg.AspectRatio = ar
	}
	return &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE"},
		ImageConfig:        imgCfg,
	}
}

func firstInlineImage(res *genai.GenerateContentResponse) (*genai.Blob, error) {
	if res == nil || len(res.Candidates) == 0 {
		return nil, ErrNoCandidates
	}
	for _, cand := range res.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData, nil
			}
		}
	}
	return nil, ErrNoImagePart
}
