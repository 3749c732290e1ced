package model

// SectionType discriminates how a section break starts its section.
type SectionType int

const (
	SectionContinuous SectionType = iota
	SectionNextPage
	SectionNextColumn
	SectionEvenPage
	SectionOddPage
)

// String returns the OOXML section type name.
func (st SectionType) String() string {
	switch st {
	case SectionNextPage:
		return "nextPage"
	case SectionNextColumn:
		return "nextColumn"
	case SectionEvenPage:
		return "evenPage"
	case SectionOddPage:
		return "oddPage"
	default:
		return "continuous"
	}
}

// ParseSectionType maps an OOXML section type value to its enum. Unknown
// values parse as continuous.
func ParseSectionType(s string) SectionType {
	switch s {
	case "nextPage":
		return SectionNextPage
	case "nextColumn":
		return SectionNextColumn
	case "evenPage":
		return SectionEvenPage
	case "oddPage":
		return SectionOddPage
	default:
		return SectionContinuous
	}
}

// Orientation discriminates page orientation. The zero value means the
// section did not declare one.
type Orientation int

const (
	OrientationUnset Orientation = iota
	OrientationPortrait
	OrientationLandscape
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case OrientationPortrait:
		return "portrait"
	case OrientationLandscape:
		return "landscape"
	default:
		return ""
	}
}

// PageSize is a declared page size in pixels.
type PageSize struct {
	WidthPx  float64
	HeightPx float64
}

// PageMargins holds section margins. Header and footer default to zero
// when the source declares any margin at all; the four page margins stay
// nil when absent — "not specified" and "zero" are different things and
// must not be conflated.
type PageMargins struct {
	HeaderPx float64
	FooterPx float64
	TopPx    *float64
	RightPx  *float64
	BottomPx *float64
	LeftPx   *float64
}

// Columns describes a section's column layout.
type Columns struct {
	Count      int
	SpacePx    float64
	EqualWidth bool
}

// PageNumbering describes a section's page number restart/format.
type PageNumbering struct {
	Start  int
	Format string
}

// HeaderFooterRefs maps header/footer kinds ("default", "first", "even")
// to relationship ids.
type HeaderFooterRefs map[string]string

// SectionRange is a contiguous run of paragraphs sharing one page
// geometry. Ranges are end-tagged: the section properties attached to a
// section-break paragraph describe the section that ends at that
// paragraph. Ranges are rebuilt wholesale per analysis pass and are
// read-only once returned.
type SectionRange struct {
	SectionIndex        int
	StartParagraphIndex int
	EndParagraphIndex   int

	Margins     *PageMargins
	PageSize    *PageSize
	Orientation Orientation
	Columns     *Columns
	Type        SectionType
	TitlePage   bool
	HeaderRefs  HeaderFooterRefs
	FooterRefs  HeaderFooterRefs
	Numbering   *PageNumbering
	VAlign      string
}
