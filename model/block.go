package model

// BlockKind discriminates flow block types.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockImage
	BlockDrawing
	BlockTable
	BlockPageBreak
	BlockColumnBreak
)

// String returns the block kind name.
func (bk BlockKind) String() string {
	switch bk {
	case BlockParagraph:
		return "paragraph"
	case BlockImage:
		return "image"
	case BlockDrawing:
		return "drawing"
	case BlockTable:
		return "table"
	case BlockPageBreak:
		return "pageBreak"
	case BlockColumnBreak:
		return "columnBreak"
	default:
		return "unknown"
	}
}

// Block is one unit of the flow model consumed by layout. Every block
// has a stable id assigned by the block-id generator, monotonic within
// one conversion pass.
type Block interface {
	Kind() BlockKind
	ID() string
}

// Indent holds paragraph indentation in pixels. FirstLinePx and
// HangingPx are mutually exclusive in OOXML; both are carried so the
// renderer can compute textIndent = firstLine - hanging.
type Indent struct {
	LeftPx      float64
	RightPx     float64
	FirstLinePx float64
	HangingPx   float64
}

// Spacing holds paragraph spacing in pixels. LinePx of zero means auto.
type Spacing struct {
	BeforePx float64
	AfterPx  float64
	LinePx   float64
}

// ListInfo links a paragraph to a numbering definition.
type ListInfo struct {
	NumID string
	Level int
}

// MarkerLayout is the pre-computed word-layout geometry of a list
// marker. ExplicitFont records whether the numbering level defined its
// own marker font; when false the marker inherits the font of the
// paragraph's first text run.
type MarkerLayout struct {
	Text         string
	FontFamily   string
	FontSizePx   float64
	WidthPx      float64
	ExplicitFont bool
	Vanish       bool
}

// SDTInfo carries structured-content (w:sdt) container metadata.
type SDTInfo struct {
	ID    string
	Tag   string
	Alias string
}

// ParagraphAttrs holds the paragraph-level formatting shared by all flow
// fragments split from one source paragraph.
type ParagraphAttrs struct {
	StyleID       string
	Indent        Indent
	Spacing       Spacing
	Justification string
	Shading       string
	List          *ListInfo
	Marker        *MarkerLayout
	SDT           *SDTInfo
}

// ParagraphBlock owns an ordered sequence of runs plus paragraph attrs.
type ParagraphBlock struct {
	BlockID string
	Runs    []Run
	Attrs   ParagraphAttrs

	// CaretSpan preserves addressability of an empty paragraph: the
	// source position where a caret may be placed even when no runs
	// survive conversion.
	CaretSpan Span
}

func (p *ParagraphBlock) Kind() BlockKind { return BlockParagraph }
func (p *ParagraphBlock) ID() string      { return p.BlockID }

// Text returns the concatenated text of the paragraph's text runs.
func (p *ParagraphBlock) Text() string {
	var out []byte
	for _, r := range p.Runs {
		if r.Kind == RunText || r.Kind == RunToken {
			out = append(out, r.Text...)
		}
	}
	return string(out)
}

// Anchor describes out-of-flow positioning of a floating object.
type Anchor struct {
	IsAnchored    bool
	RelativeFromH string // page, margin, column, character
	RelativeFromV string // page, margin, paragraph, line
	OffsetXPx     float64
	OffsetYPx     float64
	BehindDoc     bool

	// ZIndex, when non-nil, takes precedence over the z-order computed
	// from the original attributes (OriginalZ).
	ZIndex    *int
	OriginalZ int
}

// WrapType discriminates text-wrap behavior of a floating object.
type WrapType int

const (
	WrapNone WrapType = iota
	WrapInline
	WrapSquare
	WrapTight
	WrapThrough
	WrapTopAndBottom
)

// String returns the OOXML-style wrap type name.
func (wt WrapType) String() string {
	switch wt {
	case WrapInline:
		return "Inline"
	case WrapSquare:
		return "Square"
	case WrapTight:
		return "Tight"
	case WrapThrough:
		return "Through"
	case WrapTopAndBottom:
		return "TopAndBottom"
	default:
		return "None"
	}
}

// Wrap describes the text-wrap mode and clearances of a floating object.
type Wrap struct {
	Type WrapType
	LeftPx, TopPx,
	RightPx, BottomPx float64 // wrap distances
}

// ImageBlock is a block-level image.
type ImageBlock struct {
	BlockID  string
	Src      string
	WidthPx  float64
	HeightPx float64
	Anchor   *Anchor
	Wrap     *Wrap
}

func (i *ImageBlock) Kind() BlockKind { return BlockImage }
func (i *ImageBlock) ID() string      { return i.BlockID }

// DrawingBlock is a block-level drawing, shape, or vector object.
type DrawingBlock struct {
	BlockID     string
	DrawingKind string // shape, group, canvas...
	WidthPx     float64
	HeightPx    float64
	Anchor      *Anchor
	Wrap        *Wrap
}

func (d *DrawingBlock) Kind() BlockKind { return BlockDrawing }
func (d *DrawingBlock) ID() string      { return d.BlockID }

// PageBreakBlock forces a page boundary before the following block.
type PageBreakBlock struct {
	BlockID string
}

func (p *PageBreakBlock) Kind() BlockKind { return BlockPageBreak }
func (p *PageBreakBlock) ID() string      { return p.BlockID }

// ColumnBreakBlock forces a column boundary before the following block.
type ColumnBreakBlock struct {
	BlockID string
}

func (c *ColumnBreakBlock) Kind() BlockKind { return BlockColumnBreak }
func (c *ColumnBreakBlock) ID() string      { return c.BlockID }
