package ai

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/shinyyama/astro-edit-backend/internal/model"
	"github.com/shinyyama/astro-edit-backend/internal/reqctx"
	"google.golang.org/genai"
)

const DefaultFactsModel = "gemini-2.5-flash"

const factsPromptTemplate = `You are an astronomy reference assistant. Use Google Search to identify the astronomical object the user named and describe how it should look in a faithful astrophotograph.

Object name given by the user: %q

Reply with exactly one JSON object and nothing else, using this shape:
{
  "objectName": "canonical name and catalogue designations",
  "objectType": "object type, e.g. emission nebula, barred spiral galaxy, globular cluster",
  "canonicalColors": "dominant colours in typical broadband or narrowband images",
  "structuresToPreserve": ["notable structures that must stay visible"],
  "editsToAvoid": ["edits that would misrepresent this object"]
}

If you cannot identify the object, reply with:
{"objectName":"unknown","objectType":"unknown","canonicalColors":"unknown","structuresToPreserve":[],"editsToAvoid":[]}`

// FactsClient looks up astrophysical metadata with a grounded text model.
type FactsClient struct {
	client  *genai.Client
	model   string
	backoff Backoff
}

func NewFactsClient(client *genai.Client, model string, backoff Backoff) *FactsClient {
	if model == "" {
		model = DefaultFactsModel
	}
	return &FactsClient{client: client, model: model, backoff: backoff}
}

// Lookup returns nil facts when the name is too short to look up or when the
// reply cannot be parsed. Transport and API errors are returned.
func (c *FactsClient) Lookup(ctx context.Context, objectName string) (*model.AstroFacts, error) {
	name := strings.TrimSpace(objectName)
	if utf8.RuneCountInString(name) <= 1 {
		return nil, nil
	}
	rid := reqctx.RID(ctx)
	logger := log.With().Str("rid", rid).Str("object", name).Logger()

	contents := []*genai.Content{
		genai.NewContentFromText(fmt.Sprintf(factsPromptTemplate, name), genai.RoleUser),
	}
	temp := float32(0)
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
		Tools:       []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}

	start := time.Now()
	logger.Info().Str("stage", "facts_start").Str("model", c.model).Msg("grounded lookup")
	res, err := WithRateLimitRetry(ctx, c.backoff, func() (*genai.GenerateContentResponse, error) {
		return c.client.Models.GenerateContent(ctx, c.model, contents, config)
	})
	if err != nil {
		logger.Error().Str("stage", "facts_fail").Err(err).Msg("grounded lookup failed")
		return nil, fmt.Errorf("facts lookup: %w", err)
	}

	rawText := res.Text()
	facts, err := ParseAstroFacts(rawText)
	if err != nil {
		text := truncate(strings.ReplaceAll(rawText, "\n", " "), 80)
		logger.Warn().Str("stage", "facts_parse_fail").Int("len", len(rawText)).Str("text", text).Err(err).Msg("ignoring unparseable facts")
		return nil, nil
	}
	logger.Info().
		Str("stage", "facts_done").
		Str("resolved", facts.ObjectName).
		Str("type", facts.ObjectType).
		Int64("ms", time.Since(start).Milliseconds()).
		Msg("grounded lookup done")
	return facts, nil
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
