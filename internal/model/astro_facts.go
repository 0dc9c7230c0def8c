package model

import "strings"

// UnknownColors is the canonicalColors sentinel meaning "no colour constraint".
const UnknownColors = "unknown"

// AstroFacts is produced fresh per request by the grounded lookup and never stored.
type AstroFacts struct {
	ObjectName           string   `json:"objectName"`
	ObjectType           string   `json:"objectType"`
	CanonicalColors      string   `json:"canonicalColors"`
	StructuresToPreserve []string `json:"structuresToPreserve"`
	EditsToAvoid         []string `json:"editsToAvoid"`
}

func (f *AstroFacts) HasColorConstraint() bool {
	c := strings.TrimSpace(f.CanonicalColors)
	return c != "" && !strings.EqualFold(c, UnknownColors)
}
