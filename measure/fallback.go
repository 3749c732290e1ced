package measure

import (
	"golang.org/x/text/width"

	"github.com/tsawler/folio/model"
)

// Advance factors relative to the font size, used when no face is
// available. East Asian wide and fullwidth runes occupy a full em;
// everything else gets an average Latin advance.
const (
	narrowAdvanceEm = 0.5
	wideAdvanceEm   = 1.0
)

// fallbackWidth approximates the advance width of text from rune
// classes alone.
func fallbackWidth(text string, st model.RunStyle) float64 {
	size := st.FontSizePx
	if size <= 0 {
		size = model.DefaultLayoutConfig().DefaultFontSizePx
	}

	var w float64
	n := 0
	for _, r := range text {
		n++
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += size * wideAdvanceEm
		default:
			w += size * narrowAdvanceEm
		}
	}
	if st.LetterSpacingPx != 0 {
		w += st.LetterSpacingPx * float64(n)
	}
	return w
}
