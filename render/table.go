package render

import (
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/paginate"
)

// RenderFragment produces the positioned presentational tree for one
// table fragment: rows [FromRow, ToRow), with the fragment's partial row
// (if any) rendered through its per-cell segment sub-ranges. Embedded
// tables recurse through the same machinery.
func RenderFragment(frag *model.TableFragment, t *model.TableBlock, ctx *Context) *Node {
	tableNode := &Node{
		Kind:    NodeTable,
		BlockID: t.BlockID,
		BBox:    model.NewBBox(frag.X, frag.Y, frag.Width, frag.Height),
		Style:   NodeStyle{Borders: t.Attrs.Borders},
	}

	var cursorY float64
	for rowIdx := frag.FromRow; rowIdx < frag.ToRow && rowIdx < len(t.Rows); rowIdx++ {
		row := &t.Rows[rowIdx]

		partial := frag.PartialRow
		if partial != nil && partial.RowIndex != rowIdx {
			partial = nil
		}

		rowHeight := paginate.RowFullHeight(t, rowIdx, ctx.Measures)
		if partial != nil {
			rowHeight = partial.PartialHeight
		}

		rowNode := renderRow(row, rowIdx, rowHeight, frag.ColumnWidths, t.Attrs.CellSpacingPx, partial, ctx)
		rowNode.BBox.Y = cursorY
		tableNode.Append(rowNode)
		cursorY += rowHeight
	}

	return tableNode
}

// renderRow renders one row's cells. For a partial row the per-cell
// segment sub-ranges come from the PartialRowInfo; full rows render
// every segment of every cell.
func renderRow(row *model.TableRow, rowIdx int, rowHeight float64, columnWidths []float64, cellSpacing float64, partial *model.PartialRowInfo, ctx *Context) *Node {
	rowNode := &Node{
		Kind:    NodeRow,
		BlockID: row.RowID,
		BBox:    model.NewBBox(0, 0, totalWidth(columnWidths), rowHeight),
	}

	var cursorX float64
	col := 0
	for cellIdx := range row.Cells {
		cell := &row.Cells[cellIdx]

		span := cell.ColSpan
		if span < 1 {
			span = 1
		}
		cellWidth := spanWidth(columnWidths, col, span)
		if cellWidth == 0 {
			cellWidth = cell.Attrs.WidthPx
		}

		fromSeg := 0
		toSeg := paginate.CellSegmentCount(cell, ctx.Measures)
		if partial != nil && cellIdx < len(partial.FromLineByCell) {
			fromSeg = partial.FromLineByCell[cellIdx]
			toSeg = partial.ToLineByCell[cellIdx]
		}

		cellNode := renderCell(cell, fromSeg, toSeg, cellWidth, rowHeight, ctx)
		cellNode.BBox.X = cursorX
		rowNode.Append(cellNode)

		cursorX += cellWidth + cellSpacing
		col += span
	}

	return rowNode
}

// renderCell renders one cell: container (border/background) plus a
// content child offset by padding and vertical alignment. An empty cell
// still renders its container with no content child.
func renderCell(cell *model.TableCell, fromSeg, toSeg int, width, height float64, ctx *Context) *Node {
	cellNode := &Node{
		Kind:    NodeCell,
		BlockID: cell.CellID,
		BBox:    model.NewBBox(0, 0, width, height),
		Style: NodeStyle{
			Background: cell.Attrs.Background,
			Borders:    cell.Attrs.Borders,
		},
	}

	if len(cell.Blocks) == 0 || toSeg <= fromSeg {
		return cellNode
	}

	pad := cell.Attrs.Padding
	contentWidth := width - pad.LeftPx - pad.RightPx
	if contentWidth < 0 {
		contentWidth = 0
	}

	content, contentHeight, anchored := renderCellContent(cell, fromSeg, toSeg, contentWidth, ctx)

	// Vertical-alignment-driven content offset within the cell.
	innerHeight := height - pad.TopPx - pad.BottomPx
	var offsetY float64
	if free := innerHeight - contentHeight; free > 0 {
		switch cell.Attrs.VerticalAlign {
		case model.VAlignCenter:
			offsetY = free / 2
		case model.VAlignBottom:
			offsetY = free
		}
	}

	content.BBox = model.NewBBox(pad.LeftPx, pad.TopPx+offsetY, contentWidth, contentHeight)
	cellNode.Append(content)

	placeAnchored(content, anchored, offsetY, ctx)

	return cellNode
}

func totalWidth(widths []float64) float64 {
	var w float64
	for _, v := range widths {
		w += v
	}
	return w
}

// spanWidth sums the column widths covered by a cell spanning span
// columns starting at col.
func spanWidth(widths []float64, col, span int) float64 {
	var w float64
	for i := col; i < col+span && i < len(widths); i++ {
		w += widths[i]
	}
	return w
}
