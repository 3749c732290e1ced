package model

// RunKind discriminates the inline content kinds a paragraph block can
// carry.
type RunKind int

const (
	RunText RunKind = iota
	RunTab
	RunImage
	RunLineBreak
	RunFieldAnnotation
	RunToken
)

// String returns the run kind name.
func (rk RunKind) String() string {
	switch rk {
	case RunText:
		return "text"
	case RunTab:
		return "tab"
	case RunImage:
		return "image"
	case RunLineBreak:
		return "lineBreak"
	case RunFieldAnnotation:
		return "fieldAnnotation"
	case RunToken:
		return "token"
	default:
		return "unknown"
	}
}

// Span is a half-open range in the source document's text-position space,
// used for caret placement and tracked-change range computation.
type Span struct {
	Start int
	End   int
}

// TrackInfo records the tracked-change state of a run.
type TrackInfo struct {
	Inserted bool
	Deleted  bool
	Author   string
}

// RunStyle holds the fully cascaded character formatting of a run.
type RunStyle struct {
	FontFamily      string
	FontSizePx      float64
	Bold            bool
	Italic          bool
	Underline       bool
	Strike          bool
	Color           string // hex, no leading '#'
	Highlight       string
	LetterSpacingPx float64
	Vanish          bool
}

// Run is one inline unit of a paragraph block. Which fields are
// meaningful depends on Kind: Text for text/token runs, Src and
// Width/Height for image runs, Field for field annotations.
type Run struct {
	Kind  RunKind
	Text  string
	Style RunStyle
	Span  Span
	Track TrackInfo

	// Src, WidthPx, HeightPx describe an inline image run.
	Src      string
	WidthPx  float64
	HeightPx float64

	// Field carries the instruction text of a field annotation run.
	Field string

	// Data holds pass-through data attributes; Comments the ids of
	// comment marks covering this run. Both participate in merge
	// compatibility.
	Data     map[string]string
	Comments []string
}

// StyleEquals reports whether two runs carry identical character
// formatting for merge purposes. Vanish is included: merging a hidden
// run into a visible one would change rendered output.
func (r Run) StyleEquals(other Run) bool {
	return r.Style == other.Style
}

// TrackCompatible reports whether two runs have the same tracked-change
// state and may be merged without changing change-review behavior.
func (r Run) TrackCompatible(other Run) bool {
	return r.Track == other.Track
}

// DataEquals reports whether two runs carry the same data attributes and
// comment coverage.
func (r Run) DataEquals(other Run) bool {
	if len(r.Data) != len(other.Data) || len(r.Comments) != len(other.Comments) {
		return false
	}
	for k, v := range r.Data {
		if other.Data[k] != v {
			return false
		}
	}
	for i, c := range r.Comments {
		if other.Comments[i] != c {
			return false
		}
	}
	return true
}
