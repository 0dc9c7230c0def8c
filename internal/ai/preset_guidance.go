package ai

import "github.com/shinyyama/astro-edit-backend/internal/model"

// presetGuidance returns the narrative block for p. Unknown presets get the
// generic block.
func presetGuidance(p model.Preset) string {
	switch p {
	case model.PresetNebula:
		return `Preset guidance (nebula):
- The target is an emission, reflection or dark nebula filling much of the frame.
- Bring out faint outer nebulosity and dust lanes while protecting the brightest regions (for example a bright core or trapezium) from blowing out.
- Keep H-alpha regions red to magenta and OIII regions teal to blue unless the data clearly shows otherwise; reflection nebulae stay blue.
- Star reduction matters here: smaller stars let the gas structure dominate, but never erase stars embedded in the nebula.
- Dark nebulae and dust must stay dark and textured; do not fill them in with glow.`
	case model.PresetGalaxy:
		return `Preset guidance (galaxy):
- The target is one or more galaxies on a dark background.
- Preserve the bright core without clipping and reveal spiral arms, dust lanes and HII regions as far as the data supports.
- Keep the faint outer halo and tidal features; do not cut them off with an aggressive black point.
- Core colour tends to be yellowish and arms bluer with pink HII knots; keep this gradient natural.
- Foreground stars can be reduced moderately but must not be confused with star-forming regions inside the galaxy.`
	case model.PresetCluster:
		return `Preset guidance (cluster):
- The stars are the subject. Do not remove or noticeably shrink cluster members.
- Preserve star colours (blue-white hot stars, orange giants) and their relative brightness.
- For globular clusters resolve the core as far as possible without merging it into a white blob.
- For open clusters keep any associated reflection nebulosity faint and blue.
- Star reduction, if any, should only tame bloated halos, never thin out the cluster.`
	case model.PresetWidefield:
		return `Preset guidance (widefield):
- This is a wide field, possibly including Milky Way regions, several objects or a landscape horizon.
- Treat gradients with care: large scale brightness changes may be real (Milky Way core, zodiacal light).
- Balance multiple targets so none dominates unnaturally; keep dark nebulae and dust lanes visible.
- Keep star colours varied and natural; moderate star reduction helps nebulosity show through dense fields.
- If there is foreground terrain, keep it intact and do not replace or relight it.`
	case model.PresetPlanetary:
		return `Preset guidance (planetary):
- The target is a planet, often small in the frame, captured from stacked video frames.
- Preserve the disc shape, limb and any moons exactly as positioned.
- Sharpen surface or cloud detail gently; avoid ringing artefacts and dark halos around the limb.
- Keep planetary colours realistic (Jupiter cream and tan bands, Mars ochre, Saturn pale gold).
- The background should be dark and clean; there are usually no stars to manage.`
	case model.PresetLunar:
		return `Preset guidance (lunar):
- The target is the Moon. Preserve the limb and terminator geometry exactly; never reshape craters or move the terminator.
- Enhance crater and mare detail along the terminator with local contrast, without creating halos.
- Sky darkening above 60 means the sky around the Moon should be essentially black.
- Colour should stay close to neutral grey unless saturation is raised, in which case subtle mineral tints are acceptable.
- Do not add stars, earthshine or glow that are not present in the data.`
	case model.PresetSolar:
		return `Preset guidance (solar):
- The target is the Sun. Preserve the disc shape and natural limb darkening.
- For broadband (white light) data keep sunspots, penumbrae and faculae accurate; colour should be neutral to warm.
- For narrowband data (for example H-alpha or Ca-K) reveal prominences, filaments and chromospheric texture; a monochrome or orange/yellow rendering is acceptable.
- Never invent prominences, flares or sunspots.
- The sky around the disc should be dark and clean, without glow rings.`
	default:
		return `Preset guidance (generic):
- The object category is unknown. Apply balanced, moderate processing suitable for most deep-sky targets.
- Favour natural colour, an even neutral background and moderate star control.
- When unsure whether a feature is real signal or noise, keep it rather than removing it.`
	}
}
