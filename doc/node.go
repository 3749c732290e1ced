package doc

// Kind discriminates source tree node types. The set is closed: node
// kinds the converters do not recognize are skipped, not errors.
type Kind int

const (
	KindDocument Kind = iota
	KindIndex         // generic one-level grouping container
	KindParagraph
	KindText
	KindTable
	KindTableRow
	KindTableCell
	KindImage
	KindDrawing
	KindShape
	KindHardBreak // page or column break, discriminated by attrs
	KindLineBreak
	KindTab
	KindFieldAnnotation
	KindToken
	KindStructuredContent // SDT wrapper
	KindBookmark
	KindUnknown
)

// String returns the node kind name.
func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindIndex:
		return "index"
	case KindParagraph:
		return "paragraph"
	case KindText:
		return "text"
	case KindTable:
		return "table"
	case KindTableRow:
		return "tableRow"
	case KindTableCell:
		return "tableCell"
	case KindImage:
		return "image"
	case KindDrawing:
		return "drawing"
	case KindShape:
		return "shape"
	case KindHardBreak:
		return "hardBreak"
	case KindLineBreak:
		return "lineBreak"
	case KindTab:
		return "tab"
	case KindFieldAnnotation:
		return "fieldAnnotation"
	case KindToken:
		return "token"
	case KindStructuredContent:
		return "structuredContent"
	case KindBookmark:
		return "bookmark"
	default:
		return "unknown"
	}
}

// MarkKind discriminates inline mark types.
type MarkKind int

const (
	MarkBold MarkKind = iota
	MarkItalic
	MarkUnderline
	MarkStrike
	MarkTextStyle // font family/size/color/letter-spacing in attrs
	MarkHighlight
	MarkLink
	MarkStyleID // linked character style reference
	MarkTrackInsert
	MarkTrackDelete
	MarkComment
)

// Mark is one inline mark applied to a text node.
type Mark struct {
	Kind  MarkKind
	Attrs Attrs
}

// Span is a half-open range in the document's text-position space.
type Span struct {
	Start int
	End   int
}

// Node is the read-only accessor the layout core traverses. Attrs, Marks
// and Children may return nil; Text is meaningful only for text-shaped
// kinds. Span reports the node's source position range; ok is false when
// the host has no position map for the node.
type Node interface {
	Kind() Kind
	Attrs() Attrs
	Marks() []Mark
	Children() []Node
	Text() string
	Span() (Span, bool)
}
