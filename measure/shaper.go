package measure

import (
	"strings"
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/tsawler/folio/model"
)

// FontSource resolves a font family plus weight/slant to a parsed face.
// Returning nil falls the measurer back to the approximate advance
// table. Hosts typically back this with the document's embedded fonts
// or a system font directory.
type FontSource interface {
	Face(family string, bold, italic bool) *font.Face
}

type faceKey struct {
	family string
	bold   bool
	italic bool
}

// shapeWidth shapes text at the style's size and returns the advance
// width in pixels. Letter spacing applies per rune, matching how hosts
// render it.
func (m *Measurer) shapeWidth(text string, st model.RunStyle) float64 {
	if text == "" {
		return 0
	}
	face := m.face(st)
	if face == nil {
		return fallbackWidth(text, st)
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: textDirection(runes),
		Face:      face,
		Size:      fixed.Int26_6(st.FontSizePx * 64),
		Script:    detectScript(runes),
		Language:  language.DefaultLanguage(),
	}
	out := m.shaper.Shape(input)

	var w float64
	for _, g := range out.Glyphs {
		w += float64(g.XAdvance) / 64.0
	}
	if st.LetterSpacingPx != 0 {
		w += st.LetterSpacingPx * float64(len(runes))
	}
	return w
}

func (m *Measurer) face(st model.RunStyle) *font.Face {
	if m.fonts == nil {
		return nil
	}
	family := st.FontFamily
	if family == "" {
		family = m.cfg.DefaultFontFamily
	}
	key := faceKey{family: strings.ToLower(family), bold: st.Bold, italic: st.Italic}
	if f, ok := m.faces[key]; ok {
		return f
	}
	f := m.fonts.Face(family, st.Bold, st.Italic)
	m.faces[key] = f
	return f
}

func textDirection(runes []rune) di.Direction {
	switch detectScript(runes) {
	case language.Arabic, language.Hebrew, language.Syriac, language.Thaana, language.Nko:
		return di.DirectionRTL
	default:
		return di.DirectionLTR
	}
}

// detectScript picks the dominant script of the text so shaping selects
// the right tables.
func detectScript(runes []rune) language.Script {
	counts := make(map[language.Script]int)
	maxCount := 0
	best := language.Latin

	for _, r := range runes {
		s := scriptFromRune(r)
		if s == language.Unknown {
			continue
		}
		counts[s]++
		if counts[s] > maxCount {
			maxCount = counts[s]
			best = s
		}
	}
	return best
}

func scriptFromRune(r rune) language.Script {
	switch {
	case unicode.Is(unicode.Latin, r):
		return language.Latin
	case unicode.Is(unicode.Arabic, r):
		return language.Arabic
	case unicode.Is(unicode.Hebrew, r):
		return language.Hebrew
	case unicode.Is(unicode.Cyrillic, r):
		return language.Cyrillic
	case unicode.Is(unicode.Greek, r):
		return language.Greek
	case unicode.Is(unicode.Han, r):
		return language.Han
	case unicode.Is(unicode.Hiragana, r):
		return language.Hiragana
	case unicode.Is(unicode.Katakana, r):
		return language.Katakana
	case unicode.Is(unicode.Hangul, r):
		return language.Hangul
	case unicode.Is(unicode.Thai, r):
		return language.Thai
	case unicode.Is(unicode.Devanagari, r):
		return language.Devanagari
	}
	return language.Unknown
}
