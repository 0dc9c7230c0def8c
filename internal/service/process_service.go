package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/shinyyama/astro-edit-backend/internal/ai"
	"github.com/shinyyama/astro-edit-backend/internal/model"
	"github.com/shinyyama/astro-edit-backend/internal/reqctx"
)

type FactLookup interface {
	Lookup(ctx context.Context, objectName string) (*model.AstroFacts, error)
}

type ImageEditor interface {
	Edit(ctx context.Context, req ai.ImageEditRequest) (*ai.ImageEditResult, error)
}

type ProcessInput struct {
	Image    []byte
	MimeType string
	Params   model.EditParameters
}

type ProcessResult struct {
	Image    []byte
	MimeType string
	Facts    *model.AstroFacts
	Prompt   string
}

type ProcessService interface {
	Process(ctx context.Context, in ProcessInput) (*ProcessResult, error)
}

type processService struct {
	facts  FactLookup
	editor ImageEditor
}

func NewProcessService(facts FactLookup, editor ImageEditor) ProcessService {
	return &processService{facts: facts, editor: editor}
}

// Process runs fact lookup, prompt construction and the image edit in that
// order. The edit always waits for the lookup because the prompt embeds it.
func (s *processService) Process(ctx context.Context, in ProcessInput) (*ProcessResult, error) {
	if len(in.Image) == 0 {
		return nil, fmt.Errorf("%w: image is required", model.ErrValidation)
	}
	if err := in.Params.Validate(); err != nil {
		return nil, err
	}
	name := in.Params.TrimmedObjectName()
	ctx = reqctx.WithObject(ctx, name)
	start := time.Now()

	var facts *model.AstroFacts
	if utf8.RuneCountInString(name) > 1 && s.facts != nil {
		f, err := s.facts.Lookup(ctx, name)
		if err != nil {
			return nil, err
		}
		facts = f
	}

	prompt := ai.BuildEditPrompt(in.Params, facts)

	res, err := s.editor.Edit(ctx, ai.ImageEditRequest{
		Image:       in.Image,
		MimeType:    in.MimeType,
		Prompt:      prompt,
		OutputSize:  in.Params.OutputSize,
		AspectRatio: in.Params.AspectRatio,
	})
	if err != nil {
		return nil, err
	}
	if res == nil || len(res.Image) == 0 {
		return nil, errors.New("image edit returned an empty result")
	}

	log.Info().
		Str("rid", reqctx.RID(ctx)).
		Str("object", name).
		Str("preset", string(in.Params.Preset)).
		Bool("facts", facts != nil).
		Int64("totalMs", time.Since(start).Milliseconds()).
		Msg("process done")

	mimeType := res.MimeType
	if mimeType == "" {
		mimeType = "image/png"
	}
	return &ProcessResult{Image: res.Image, MimeType: mimeType, Facts: facts, Prompt: prompt}, nil
}
