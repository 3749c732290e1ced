package paginate

import "github.com/tsawler/folio/model"

// CellVisibleHeight returns the height of the cell content whose
// segments fall inside the half-open window [fromSeg, toSeg). The window
// is clamped by construction: segments outside it contribute nothing but
// still advance the segment index, keeping the accounting aligned with
// CellSegmentCount.
func CellVisibleHeight(cell *model.TableCell, fromSeg, toSeg int, m *model.MeasureSet) float64 {
	seg := 0
	var h float64
	for _, b := range cell.Blocks {
		switch blk := b.(type) {
		case *model.ParagraphBlock:
			if pm, ok := m.Paragraph(blk.BlockID); ok {
				for _, line := range pm.Lines {
					if seg >= fromSeg && seg < toSeg {
						h += line.Height
					}
					seg++
				}
			}
		case *model.TableBlock:
			n := TableSegmentCount(blk, m)
			lf := clamp(fromSeg-seg, 0, n)
			lt := clamp(toSeg-seg, 0, n)
			h += TableVisibleHeight(blk, lf, lt, m)
			seg += n
		default:
			if bh := m.BlockHeight(b); bh > 0 {
				if seg >= fromSeg && seg < toSeg {
					h += bh
				}
				seg++
			}
		}
	}
	return h
}

// TableVisibleHeight returns the height of the table's content in the
// segment window [fromSeg, toSeg): full measured row heights for rows
// whose segments are entirely inside the window, the partial height for
// a row the window truncates.
func TableVisibleHeight(t *model.TableBlock, fromSeg, toSeg int, m *model.MeasureSet) float64 {
	tm, _ := m.Table(t.BlockID)

	seg := 0
	var h float64
	for i := range t.Rows {
		row := &t.Rows[i]
		n := RowSegmentCount(row, m)
		rowStart, rowEnd := seg, seg+n
		seg = rowEnd

		if rowEnd <= fromSeg || rowStart >= toSeg {
			continue
		}
		if rowStart >= fromSeg && rowEnd <= toSeg {
			h += rowFullHeight(row, i, tm, m)
			continue
		}
		lf := clamp(fromSeg-rowStart, 0, n)
		lt := clamp(toSeg-rowStart, 0, n)
		h += RowPartialHeight(row, lf, lt, m)
	}
	return h
}

// RowPartialHeight returns the visible height of a truncated row: each
// cell's own segment sub-range is clamped to the visible window and the
// maximum per-cell visible height governs, so no cell's content is cut
// shorter than the row's tallest visible content requires.
func RowPartialHeight(row *model.TableRow, fromSeg, toSeg int, m *model.MeasureSet) float64 {
	var h float64
	for i := range row.Cells {
		if ch := CellVisibleHeight(&row.Cells[i], fromSeg, toSeg, m); ch > h {
			h = ch
		}
	}
	return h
}

// rowFullHeight prefers the measured row height and falls back to the
// tallest cell content, honoring an exact or at-least declared height.
func rowFullHeight(row *model.TableRow, index int, tm *model.TableMeasure, m *model.MeasureSet) float64 {
	if tm != nil && index < len(tm.Rows) {
		return tm.Rows[index].Height
	}
	maxSegs := 0
	for i := range row.Cells {
		if n := CellSegmentCount(&row.Cells[i], m); n > maxSegs {
			maxSegs = n
		}
	}
	h := RowPartialHeight(row, 0, maxSegs, m)
	switch row.Attrs.Height.Rule {
	case model.RowHeightExact:
		return row.Attrs.Height.ValuePx
	case model.RowHeightAtLeast:
		if row.Attrs.Height.ValuePx > h {
			return row.Attrs.Height.ValuePx
		}
	}
	return h
}

// RowFullHeight returns the full measured height of one row of a table.
func RowFullHeight(t *model.TableBlock, rowIndex int, m *model.MeasureSet) float64 {
	if rowIndex < 0 || rowIndex >= len(t.Rows) {
		return 0
	}
	tm, _ := m.Table(t.BlockID)
	return rowFullHeight(&t.Rows[rowIndex], rowIndex, tm, m)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
