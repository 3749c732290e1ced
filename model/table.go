package model

// Border describes one border edge. An empty Style means no border.
type Border struct {
	Style   string // single, double, dashed... "" or "nil" = none
	WidthPx float64
	Color   string
}

// IsSet reports whether the border is visible.
func (b Border) IsSet() bool {
	return b.Style != "" && b.Style != "nil" && b.Style != "none"
}

// TableBorders holds the six border edges a table or cell can declare.
type TableBorders struct {
	Top, Bottom, Left, Right Border
	InsideH, InsideV         Border
}

// HasAny reports whether any edge is visible.
func (tb TableBorders) HasAny() bool {
	return tb.Top.IsSet() || tb.Bottom.IsSet() || tb.Left.IsSet() ||
		tb.Right.IsSet() || tb.InsideH.IsSet() || tb.InsideV.IsSet()
}

// TableLayout discriminates the OOXML table layout algorithm.
type TableLayout int

const (
	TableLayoutAuto TableLayout = iota
	TableLayoutFixed
)

// TableAttrs holds table-level formatting.
type TableAttrs struct {
	Borders       TableBorders
	CellSpacingPx float64
	Justification string
	TableWidthPx  float64 // 0 = auto
	TableIndentPx float64
	Layout        TableLayout
}

// RowHeightRule discriminates how a declared row height binds.
type RowHeightRule int

const (
	RowHeightAuto RowHeightRule = iota
	RowHeightAtLeast
	RowHeightExact
)

// RowHeight is a declared row height with its binding rule.
type RowHeight struct {
	ValuePx float64
	Rule    RowHeightRule
}

// RowAttrs holds row-level formatting.
type RowAttrs struct {
	Height    RowHeight
	IsHeader  bool
	CantSplit bool
}

// VAlign discriminates vertical alignment of cell content.
type VAlign int

const (
	VAlignTop VAlign = iota
	VAlignCenter
	VAlignBottom
)

// CellPadding holds per-side cell padding in pixels.
type CellPadding struct {
	TopPx, RightPx, BottomPx, LeftPx float64
}

// CellAttrs holds cell-level formatting.
type CellAttrs struct {
	Borders       TableBorders
	Padding       CellPadding
	VerticalAlign VAlign
	Background    string // resolved fill, "" = transparent
	WidthPx       float64
}

// TableCell owns the cell's converted content blocks. A cell with zero
// convertible child blocks is dropped by the converter; an empty cell at
// the layout layer still renders its container with no content child.
type TableCell struct {
	CellID  string
	Blocks  []Block
	RowSpan int
	ColSpan int
	Attrs   CellAttrs
}

// Paragraph is the legacy single-paragraph alias: Blocks[0] when it is a
// paragraph block, nil otherwise.
func (c *TableCell) Paragraph() *ParagraphBlock {
	if len(c.Blocks) == 0 {
		return nil
	}
	if p, ok := c.Blocks[0].(*ParagraphBlock); ok {
		return p
	}
	return nil
}

// TableRow owns the row's cells.
type TableRow struct {
	RowID string
	Cells []TableCell
	Attrs RowAttrs
}

// TableBlock is the structural table model produced by the table node
// converter. ColumnWidths, when set, are the authoritative resolved
// widths per the priority cascade; exactly one source is authoritative
// per table, never blended.
type TableBlock struct {
	BlockID      string
	Rows         []TableRow
	Attrs        TableAttrs
	ColumnWidths []float64
	Anchor       *Anchor
	Wrap         *Wrap
}

func (t *TableBlock) Kind() BlockKind { return BlockTable }
func (t *TableBlock) ID() string      { return t.BlockID }

// ColCount returns the column count from the resolved widths, falling
// back to the widest row.
func (t *TableBlock) ColCount() int {
	if len(t.ColumnWidths) > 0 {
		return len(t.ColumnWidths)
	}
	count := 0
	for _, row := range t.Rows {
		n := 0
		for _, cell := range row.Cells {
			span := cell.ColSpan
			if span < 1 {
				span = 1
			}
			n += span
		}
		if n > count {
			count = n
		}
	}
	return count
}
