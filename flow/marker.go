package flow

import (
	"strconv"
	"strings"

	"github.com/tsawler/folio/model"
)

// LevelDef is one numbering level of an abstract numbering definition.
// FontFamily and FontSizePx, when set, are the level's explicit marker
// formatting; explicit numbering-level formatting always wins over
// formatting inherited from paragraph content.
type LevelDef struct {
	Level      int
	NumFmt     string // decimal, lowerRoman, upperRoman, lowerLetter, upperLetter, bullet
	LvlText    string // "%1." style template; literal text for bullets
	Start      int
	FontFamily string
	FontSizePx float64
	Vanish     bool
}

// NumDef binds a numbering id to its level definitions.
type NumDef struct {
	NumID  string
	Levels []LevelDef
}

// maxListLevels is OOXML's numbering depth (ilvl 0..8).
const maxListLevels = 9

// Numbering resolves list markers. It keeps per-numId counters so
// consecutive list paragraphs number sequentially; advancing a level
// resets all deeper levels, the way Word restarts sublists.
type Numbering struct {
	levels   map[string]map[int]*LevelDef
	counters map[string][]int
}

// NewNumbering creates a resolver from numbering definitions.
func NewNumbering(defs []NumDef) *Numbering {
	n := &Numbering{
		levels:   make(map[string]map[int]*LevelDef),
		counters: make(map[string][]int),
	}
	for i := range defs {
		byLevel := make(map[int]*LevelDef, len(defs[i].Levels))
		for j := range defs[i].Levels {
			lvl := &defs[i].Levels[j]
			byLevel[lvl.Level] = lvl
		}
		n.levels[defs[i].NumID] = byLevel
	}
	return n
}

// Reset clears all counters. The facade calls it once per pass.
func (n *Numbering) Reset() {
	n.counters = make(map[string][]int)
}

// MarkerFor advances the counter for (numID, level) and returns the
// marker layout for the paragraph, or nil when the numbering id is
// unknown. The marker's width is zero until measurement fills it in.
func (n *Numbering) MarkerFor(numID string, level int) *model.MarkerLayout {
	byLevel, ok := n.levels[numID]
	if !ok || level < 0 || level >= maxListLevels {
		return nil
	}
	def := byLevel[level]
	if def == nil {
		return nil
	}

	counters, ok := n.counters[numID]
	if !ok {
		counters = make([]int, maxListLevels)
		for l, d := range byLevel {
			start := d.Start
			if start < 1 {
				start = 1
			}
			counters[l] = start - 1
		}
		n.counters[numID] = counters
	}
	counters[level]++
	for deeper := level + 1; deeper < maxListLevels; deeper++ {
		if d := byLevel[deeper]; d != nil {
			start := d.Start
			if start < 1 {
				start = 1
			}
			counters[deeper] = start - 1
		} else {
			counters[deeper] = 0
		}
	}

	return &model.MarkerLayout{
		Text:         n.markerText(def, byLevel, counters),
		FontFamily:   def.FontFamily,
		FontSizePx:   def.FontSizePx,
		ExplicitFont: def.FontFamily != "",
		Vanish:       def.Vanish,
	}
}

// markerText expands the level's lvlText template, substituting %N with
// the current counter of level N-1.
func (n *Numbering) markerText(def *LevelDef, byLevel map[int]*LevelDef, counters []int) string {
	if def.NumFmt == "bullet" {
		return bulletChar(def.LvlText, def.Level)
	}

	text := def.LvlText
	if text == "" {
		return formatNumber(def.NumFmt, counters[def.Level]) + "."
	}

	var sb strings.Builder
	for i := 0; i < len(text); i++ {
		if text[i] == '%' && i+1 < len(text) {
			if lvl := int(text[i+1] - '1'); lvl >= 0 && lvl < maxListLevels {
				fmtName := "decimal"
				if d := byLevel[lvl]; d != nil {
					fmtName = d.NumFmt
				}
				count := counters[lvl]
				if count < 1 {
					count = 1
				}
				sb.WriteString(formatNumber(fmtName, count))
				i++
				continue
			}
		}
		sb.WriteByte(text[i])
	}
	return sb.String()
}

// formatNumber renders n in the given OOXML number format.
func formatNumber(numFmt string, n int) string {
	if n < 1 {
		n = 1
	}
	switch numFmt {
	case "lowerRoman":
		return strings.ToLower(toRoman(n))
	case "upperRoman":
		return toRoman(n)
	case "lowerLetter":
		return toLetter(n)
	case "upperLetter":
		return strings.ToUpper(toLetter(n))
	default:
		return strconv.Itoa(n)
	}
}

// toRoman renders n as an uppercase roman numeral.
func toRoman(n int) string {
	values := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	symbols := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var sb strings.Builder
	for i, v := range values {
		for n >= v {
			sb.WriteString(symbols[i])
			n -= v
		}
	}
	return sb.String()
}

// toLetter renders n as a..z, aa..zz, and so on.
func toLetter(n int) string {
	letter := string(rune('a' + (n-1)%26))
	return strings.Repeat(letter, (n-1)/26+1)
}

// bulletChar returns a renderable bullet for the level. Word often
// stores Symbol/Wingdings characters in the Private Use Area; those fall
// back to standard bullets by level.
func bulletChar(lvlText string, level int) string {
	bullets := []string{"•", "○", "■", "□", "▪", "▫", "►", "◦"}

	if lvlText != "" && !strings.Contains(lvlText, "%") && isRenderableBullet(lvlText) {
		return lvlText
	}
	if level >= 0 && level < len(bullets) {
		return bullets[level]
	}
	return "•"
}

// isRenderableBullet rejects Private Use Area and control characters.
func isRenderableBullet(s string) bool {
	for _, r := range s {
		if r >= 0xE000 && r <= 0xF8FF {
			return false
		}
		if r < 0x20 {
			return false
		}
	}
	return len(s) > 0
}
