package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shinyyama/astro-edit-backend/internal/model"
)

var (
	fencePattern   = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")
	ErrParseFailed = errors.New("parse_failed")
)

type factsPayload struct {
	ObjectName           *string   `json:"objectName"`
	ObjectType           *string   `json:"objectType"`
	CanonicalColors      *string   `json:"canonicalColors"`
	StructuresToPreserve *[]string `json:"structuresToPreserve"`
	EditsToAvoid         *[]string `json:"editsToAvoid"`
}

// ParseAstroFacts parses the grounded model's reply. The reply may be wrapped
// in a markdown code fence. Every field of the expected shape must be present.
func ParseAstroFacts(text string) (*model.AstroFacts, error) {
	text = strings.TrimSpace(text)
	if m := fencePattern.FindStringSubmatch(text); len(m) == 2 {
		text = m[1]
	}
	if !strings.HasPrefix(text, "{") {
		return nil, fmt.Errorf("%w: not a json object", ErrParseFailed)
	}
	var p factsPayload
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	if p.ObjectName == nil || p.ObjectType == nil || p.CanonicalColors == nil ||
		p.StructuresToPreserve == nil || p.EditsToAvoid == nil {
		return nil, fmt.Errorf("%w: missing fields", ErrParseFailed)
	}
	return &model.AstroFacts{
		ObjectName:           strings.TrimSpace(*p.ObjectName),
		ObjectType:           strings.TrimSpace(*p.ObjectType),
		CanonicalColors:      strings.TrimSpace(*p.CanonicalColors),
		StructuresToPreserve: nonEmpty(*p.StructuresToPreserve),
		EditsToAvoid:         nonEmpty(*p.EditsToAvoid),
	}, nil
}

func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}
