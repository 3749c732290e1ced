// Package style resolves linked document styles (paragraph, character,
// table) into fully cascaded properties. Resolution follows the basedOn
// inheritance chain from base to derived with a cycle guard, memoizes
// results per resolver, and falls back to Word's document defaults
// (Calibri 11pt) when a style id does not resolve.
package style

import (
	"strconv"

	"github.com/tsawler/folio/model"
)

// OptionalBool is a tri-state flag: a style definition may leave a
// toggle unset, set it, or clear it. Only set values participate in the
// cascade.
type OptionalBool int

const (
	Unset OptionalBool = iota
	True
	False
)

// apply folds the tri-state into a concrete bool.
func (ob OptionalBool) apply(current bool) bool {
	switch ob {
	case True:
		return true
	case False:
		return false
	default:
		return current
	}
}

// RunProps are the character-level properties a style definition can
// declare. Zero values mean "not declared".
type RunProps struct {
	FontFamily      string
	FontSizePx      float64
	Bold            OptionalBool
	Italic          OptionalBool
	Underline       OptionalBool
	Strike          OptionalBool
	Color           string
	Highlight       string
	LetterSpacingPx float64
	Vanish          OptionalBool
}

// ParagraphProps are the paragraph-level properties a style definition
// can declare.
type ParagraphProps struct {
	Justification string
	SpaceBeforePx float64
	SpaceAfterPx  float64
	LineSpacingPx float64
	IndentLeftPx  float64
	IndentRightPx float64
	FirstLinePx   float64
	HangingPx     float64
	ShadingFill   string
}

// Definition is one style definition as supplied by the host document.
type Definition struct {
	ID        string
	Name      string
	Type      string // paragraph, character, table
	BasedOn   string
	Paragraph ParagraphProps
	Run       RunProps
}

// Resolved is a fully cascaded style.
type Resolved struct {
	ID   string
	Name string
	Type string

	Justification string
	SpaceBeforePx float64
	SpaceAfterPx  float64
	LineSpacingPx float64
	IndentLeftPx  float64
	IndentRightPx float64
	FirstLinePx   float64
	HangingPx     float64
	ShadingFill   string

	FontFamily      string
	FontSizePx      float64
	Bold            bool
	Italic          bool
	Underline       bool
	Strike          bool
	Color           string
	Highlight       string
	LetterSpacingPx float64
	Vanish          bool
}

// RunStyle projects the character slice of the resolved style.
func (r *Resolved) RunStyle() model.RunStyle {
	return model.RunStyle{
		FontFamily:      r.FontFamily,
		FontSizePx:      r.FontSizePx,
		Bold:            r.Bold,
		Italic:          r.Italic,
		Underline:       r.Underline,
		Strike:          r.Strike,
		Color:           r.Color,
		Highlight:       r.Highlight,
		LetterSpacingPx: r.LetterSpacingPx,
		Vanish:          r.Vanish,
	}
}

// Resolver resolves style ids with inheritance support.
type Resolver struct {
	defs     map[string]*Definition
	resolved map[string]*Resolved

	defaultFont string
	defaultSize float64
}

// NewResolver creates a resolver over the given definitions. Document
// defaults may be overridden by a definition with ID "docDefaults".
func NewResolver(defs []Definition) *Resolver {
	cfg := model.DefaultLayoutConfig()
	r := &Resolver{
		defs:        make(map[string]*Definition, len(defs)),
		resolved:    make(map[string]*Resolved),
		defaultFont: cfg.DefaultFontFamily,
		defaultSize: cfg.DefaultFontSizePx,
	}
	for i := range defs {
		def := &defs[i]
		r.defs[def.ID] = def
	}
	if dd, ok := r.defs["docDefaults"]; ok {
		if dd.Run.FontFamily != "" {
			r.defaultFont = dd.Run.FontFamily
		}
		if dd.Run.FontSizePx > 0 {
			r.defaultSize = dd.Run.FontSizePx
		}
	}
	return r
}

// Known reports whether a style id has a definition.
func (r *Resolver) Known(styleID string) bool {
	_, ok := r.defs[styleID]
	return ok
}

// Resolve returns the fully resolved style for the given style id. An
// empty or unknown id resolves to the document defaults; resolution
// never fails.
func (r *Resolver) Resolve(styleID string) *Resolved {
	if styleID == "" {
		return r.defaultStyle()
	}

	if resolved, ok := r.resolved[styleID]; ok {
		return resolved
	}

	resolved := r.defaultStyle()
	resolved.ID = styleID

	def, ok := r.defs[styleID]
	if !ok {
		r.resolved[styleID] = resolved
		return resolved
	}

	resolved.Name = def.Name
	resolved.Type = def.Type

	// Apply properties from base to derived.
	for _, sid := range r.inheritanceChain(styleID) {
		if d, ok := r.defs[sid]; ok {
			applyDefinition(resolved, d)
		}
	}

	r.resolved[styleID] = resolved
	return resolved
}

// defaultStyle returns a style carrying the document defaults.
func (r *Resolver) defaultStyle() *Resolved {
	return &Resolved{
		FontFamily:    r.defaultFont,
		FontSizePx:    r.defaultSize,
		Justification: "left",
		SpaceAfterPx:  model.TwipsToPx(160), // Word's default 8pt after
	}
}

// inheritanceChain returns style ids from base to derived, guarding
// against basedOn cycles.
func (r *Resolver) inheritanceChain(styleID string) []string {
	var chain []string
	visited := make(map[string]bool)

	current := styleID
	for current != "" && !visited[current] {
		visited[current] = true
		chain = append([]string{current}, chain...)

		if def, ok := r.defs[current]; ok {
			current = def.BasedOn
		} else {
			break
		}
	}

	return chain
}

// applyDefinition layers one definition's declared properties onto the
// resolved style.
func applyDefinition(resolved *Resolved, def *Definition) {
	ppr := def.Paragraph
	if ppr.Justification != "" {
		resolved.Justification = ppr.Justification
	}
	if ppr.SpaceBeforePx != 0 {
		resolved.SpaceBeforePx = ppr.SpaceBeforePx
	}
	if ppr.SpaceAfterPx != 0 {
		resolved.SpaceAfterPx = ppr.SpaceAfterPx
	}
	if ppr.LineSpacingPx != 0 {
		resolved.LineSpacingPx = ppr.LineSpacingPx
	}
	if ppr.IndentLeftPx != 0 {
		resolved.IndentLeftPx = ppr.IndentLeftPx
	}
	if ppr.IndentRightPx != 0 {
		resolved.IndentRightPx = ppr.IndentRightPx
	}
	if ppr.FirstLinePx != 0 {
		resolved.FirstLinePx = ppr.FirstLinePx
	}
	if ppr.HangingPx != 0 {
		resolved.HangingPx = ppr.HangingPx
	}
	if ppr.ShadingFill != "" && ppr.ShadingFill != "auto" {
		resolved.ShadingFill = ppr.ShadingFill
	}

	rpr := def.Run
	if rpr.FontFamily != "" {
		resolved.FontFamily = rpr.FontFamily
	}
	if rpr.FontSizePx > 0 {
		resolved.FontSizePx = rpr.FontSizePx
	}
	resolved.Bold = rpr.Bold.apply(resolved.Bold)
	resolved.Italic = rpr.Italic.apply(resolved.Italic)
	resolved.Underline = rpr.Underline.apply(resolved.Underline)
	resolved.Strike = rpr.Strike.apply(resolved.Strike)
	resolved.Vanish = rpr.Vanish.apply(resolved.Vanish)
	if rpr.Color != "" && rpr.Color != "auto" {
		resolved.Color = rpr.Color
	}
	if rpr.Highlight != "" {
		resolved.Highlight = rpr.Highlight
	}
	if rpr.LetterSpacingPx != 0 {
		resolved.LetterSpacingPx = rpr.LetterSpacingPx
	}
}

// AutoColor resolves the "auto" text color against a background fill:
// dark backgrounds get white text, everything else black. The background
// is a hex color without '#'; an empty or unparsable value means a light
// background.
func AutoColor(background string) string {
	if lum, ok := luminance(background); ok && lum < 0.5 {
		return "FFFFFF"
	}
	return "000000"
}

// luminance computes relative luminance of a hex color.
func luminance(hex string) (float64, bool) {
	if len(hex) != 6 {
		return 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, false
	}
	r := float64((v>>16)&0xFF) / 255
	g := float64((v>>8)&0xFF) / 255
	b := float64(v&0xFF) / 255
	return 0.2126*r + 0.7152*g + 0.0722*b, true
}
