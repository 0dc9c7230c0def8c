package ai

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shinyyama/astro-edit-backend/internal/model"
)

const rolePrompt = `You are an expert astrophotography post-processing assistant. You receive a single stacked astronomical image (often still close to linear, dim and low contrast) and must return one processed version of that same image, as a skilled human would produce in dedicated astro software.`

const noFactsPrompt = `No reliable catalogue information is available for this target. Treat the image as generic deep-sky data: process conservatively, keep colours physically plausible and do not assume any specific structure is present.`

const workflowPrompt = `Processing workflow (apply in this order):

1. Background and gradients: remove light pollution gradients, vignetting and colour casts so the sky background is even and neutral. Do not remove real faint nebulosity or galaxy halos while doing so.
2. Non-linear stretch: bring out faint signal with a smooth, histogram-style stretch. Protect bright cores and star centres from clipping.
3. Noise reduction: reduce luminance and chroma noise in the background and faint areas while keeping fine detail in the target.
4. Star control: manage star size, halos and colour according to the star correction mode and star reduction amount below.
5. Local contrast and colour: enhance structure and saturation gently so the target stands out without looking painted.
6. Hard integrity constraints: do NOT invent, add or remove structures, stars or objects. Do NOT reposition, rotate, flip, crop, rescale or re-frame anything. Do NOT add text, labels, overlays, annotations or graphics. Every star and feature must stay exactly where it is in the input.`

const skyDarkeningRubric = `How to interpret Sky darkening:
- 0-19: keep the background close to its current brightness; only neutralise its colour.
- 20-59: darken the background moderately so it reads as dark grey, keeping a visible noise floor and all faint signal.
- 60-100: push the background close to black, but never clip faint nebulosity, dust or galaxy halos to zero.`

const starModeRubric = `How to interpret each Star correction mode:
- none: leave stars as they are apart from fixing obvious colour fringes; no shrinking.
- light_reduction: slightly shrink star profiles and tame halos; the star field should still look full.
- moderate_reduction: clearly shrink stars and reduce the number of faint background stars so the main target dominates, while bright stars keep their colour and round shape.
- strong_reduction: aggressively shrink stars to small points and suppress most faint stars; keep only enough stars for the image to look natural.
- star_removal: remove or almost completely suppress stars, leaving the extended target and background; fill removed stars with surrounding background texture, not with new structure.`

const starReductionRubric = `How to interpret Star reduction (applied within the selected star correction mode):
- 0-19: minimal
- 20-39: light
- 40-59: moderate
- 60-79: strong
- 80-100: maximum allowed by the selected mode`

const scientificOnPrompt = `Scientific mode: ON
- Keep colours physically plausible for the emission and reflection processes present; do not shift hues for aesthetics.
- Keep relative brightness relationships intact; do not brighten faint regions beyond what the data supports.
- Prefer under-processing to over-processing when in doubt.
- No artificial glow, sharpening halos or painted detail.`

const scientificOffPrompt = `Scientific mode: OFF
- You may use artistic freedom in colour balance, saturation and contrast to make the image striking.
- Stronger stretches and more vivid colours are acceptable as long as the structures themselves stay true to the data.
- Integrity constraints above still apply: no invented objects, no moved features.`

const closingPrompt = `Reply with the edited image only. The output must be the same scene at the same orientation, with no borders, frames, labels, captions, text or watermarks.`

// BuildEditPrompt assembles the instruction document sent to the image model.
// The result depends only on its inputs and sections are always emitted in
// the same order.
func BuildEditPrompt(p model.EditParameters, facts *model.AstroFacts) string {
	sections := make([]string, 0, 12)
	sections = append(sections, rolePrompt)

	if name := p.TrimmedObjectName(); name != "" {
		sections = append(sections, "User-provided target: "+name)
	}

	if facts != nil {
		sections = append(sections, factsSection(facts))
	} else {
		sections = append(sections, noFactsPrompt)
	}

	sections = append(sections,
		workflowPrompt,
		sliderSection(p),
		skyDarkeningRubric,
		"Selected Star correction mode: "+string(p.StarCorrectionMode)+"\n"+starModeRubric,
		starReductionRubric,
	)

	if p.ScientificMode {
		sections = append(sections, scientificOnPrompt)
	} else {
		sections = append(sections, scientificOffPrompt)
	}

	sections = append(sections, presetGuidance(p.Preset), closingPrompt)
	return strings.Join(sections, "\n\n")
}

func factsSection(f *model.AstroFacts) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Interpreted name: %s\n", f.ObjectName)
	fmt.Fprintf(&b, "Object type: %s", f.ObjectType)
	if f.HasColorConstraint() {
		fmt.Fprintf(&b, "\nCanonical colors: %s", f.CanonicalColors)
	}
	writeBullets(&b, "Structures to preserve:", f.StructuresToPreserve)
	writeBullets(&b, "Edits to avoid:", f.EditsToAvoid)
	return b.String()
}

func writeBullets(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n\n")
	b.WriteString(title)
	for _, it := range items {
		b.WriteString("\n- ")
		b.WriteString(it)
	}
}

func sliderSection(p model.EditParameters) string {
	lines := []string{
		"Slider values:",
		"Background neutralization: " + formatSlider(p.BackgroundNeutralization),
		"Sky darkening: " + formatSlider(p.SkyDarkening),
		"Stretch strength: " + formatSlider(p.StretchStrength),
		"Noise reduction strength: " + formatSlider(p.NoiseStrength),
		"Star reduction: " + formatSlider(p.StarReduction),
		"Saturation: " + formatSlider(p.Saturation),
	}
	return strings.Join(lines, "\n")
}

func formatSlider(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "/100"
}
