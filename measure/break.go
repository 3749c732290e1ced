package measure

import (
	"math"
	"strings"

	"github.com/tsawler/folio/model"
)

// Default tab stop interval, half an inch at 96 DPI.
const defaultTabStopPx = 48.0

// lineBreaker accumulates run content into greedy word-wrapped lines.
type lineBreaker struct {
	measurer   *Measurer
	lineHeight float64
	avail      float64 // width budget for continuation lines
	firstAvail float64 // width budget for the first line

	lines     []model.LineMeasure
	curWidth  float64
	curHeight float64
	explicitX bool
}

func (br *lineBreaker) limit() float64 {
	l := br.avail
	if len(br.lines) == 0 {
		l = br.firstAvail
	}
	if l <= 0 {
		return math.Inf(1)
	}
	return l
}

// addText appends shaped words, wrapping greedily at the line budget.
// A word wider than the whole budget stays on its own line rather than
// splitting mid-word.
func (br *lineBreaker) addText(text string, st model.RunStyle) {
	if text == "" {
		return
	}
	spaceW := br.measurer.shapeWidth(" ", st)

	for i, word := range strings.Split(text, " ") {
		if i > 0 {
			br.curWidth += spaceW
		}
		if word == "" {
			continue
		}
		w := br.measurer.shapeWidth(word, st)
		if br.curWidth > 0 && br.curWidth+w > br.limit() {
			br.breakLine()
		}
		br.curWidth += w
	}
}

// addTab advances to the next default tab stop and marks the line as
// carrying explicit x positions, which suppresses indent padding at
// render time.
func (br *lineBreaker) addTab() {
	br.explicitX = true
	next := (math.Floor(br.curWidth/defaultTabStopPx) + 1) * defaultTabStopPx
	br.curWidth = next
}

// addBox places an inline box (an image run), growing the line height
// when the box is taller than the text.
func (br *lineBreaker) addBox(w, h float64) {
	if br.curWidth > 0 && br.curWidth+w > br.limit() {
		br.breakLine()
	}
	br.curWidth += w
	if h > br.curHeight {
		br.curHeight = h
	}
}

func (br *lineBreaker) breakLine() {
	h := br.lineHeight
	if br.curHeight > h {
		h = br.curHeight
	}
	br.lines = append(br.lines, model.LineMeasure{
		Height:    h,
		Width:     br.curWidth,
		ExplicitX: br.explicitX,
	})
	br.curWidth = 0
	br.curHeight = 0
	br.explicitX = false
}

// finish flushes the open line. An empty paragraph still yields one
// line box at the paragraph's line height.
func (br *lineBreaker) finish() []model.LineMeasure {
	if br.curWidth > 0 || br.curHeight > 0 || len(br.lines) == 0 {
		br.breakLine()
	}
	return br.lines
}
