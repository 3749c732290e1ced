package paginate

import "github.com/tsawler/folio/model"

// CellSegmentCount returns the number of segments in a cell: the sum
// over its blocks of the paragraph's line count, the recursive segment
// count of an embedded table, or 1 for any other block with positive
// height.
func CellSegmentCount(cell *model.TableCell, m *model.MeasureSet) int {
	count := 0
	for _, b := range cell.Blocks {
		switch blk := b.(type) {
		case *model.ParagraphBlock:
			if pm, ok := m.Paragraph(blk.BlockID); ok {
				count += len(pm.Lines)
			}
		case *model.TableBlock:
			count += TableSegmentCount(blk, m)
		default:
			if m.BlockHeight(b) > 0 {
				count++
			}
		}
	}
	return count
}

// RowSegmentCount returns a row's segment count. A row whose cells
// contain no nested tables is exactly one segment: rows do not split by
// default. When nested tables exist the row splits as finely as its
// tallest nested content allows — the maximum segment count across its
// cells. Rows marked cantSplit stay atomic regardless.
func RowSegmentCount(row *model.TableRow, m *model.MeasureSet) int {
	if row.Attrs.CantSplit || !rowHasNestedTable(row) {
		return 1
	}
	max := 1
	for i := range row.Cells {
		if n := CellSegmentCount(&row.Cells[i], m); n > max {
			max = n
		}
	}
	return max
}

// TableSegmentCount sums the segment counts of all rows.
func TableSegmentCount(t *model.TableBlock, m *model.MeasureSet) int {
	count := 0
	for i := range t.Rows {
		count += RowSegmentCount(&t.Rows[i], m)
	}
	return count
}

// rowHasNestedTable reports whether any cell of the row contains an
// embedded table.
func rowHasNestedTable(row *model.TableRow) bool {
	for i := range row.Cells {
		for _, b := range row.Cells[i].Blocks {
			if b.Kind() == model.BlockTable {
				return true
			}
		}
	}
	return false
}
