package paginate

import (
	"fmt"

	"github.com/tsawler/folio/model"
)

// ResolveRange maps a global visible-segment window [fromSeg, toSeg)
// onto local row indices. Rows whose segment range does not intersect
// the window are excluded; rows whose range is a subset of the window
// are fully included; a row needs partial treatment only when it has
// more than one segment and the window truncates it on either side.
//
// The fragment model supports one partial row per fragment. If the
// window truncates two distinct multi-segment rows, only the last
// computed partial survives; the overwrite is reported as a warning
// rather than lost silently.
func ResolveRange(t *model.TableBlock, fromSeg, toSeg int, m *model.MeasureSet) (fromRow, toRow int, partial *model.PartialRowInfo, warnings []model.Warning) {
	fromRow = -1
	seg := 0

	for i := range t.Rows {
		row := &t.Rows[i]
		n := RowSegmentCount(row, m)
		rowStart, rowEnd := seg, seg+n
		seg = rowEnd

		if rowEnd <= fromSeg {
			continue
		}
		if rowStart >= toSeg {
			break
		}

		if fromRow == -1 {
			fromRow = i
		}
		toRow = i + 1

		subset := rowStart >= fromSeg && rowEnd <= toSeg
		if subset || n <= 1 {
			continue
		}

		lf := clamp(fromSeg-rowStart, 0, n)
		lt := clamp(toSeg-rowStart, 0, n)
		info := buildPartialInfo(row, i, lf, lt, n, m)
		if partial != nil {
			warnings = append(warnings, model.Warning{
				Code:    model.WarnPartialRowDropped,
				Message: fmt.Sprintf("boundary cuts rows %d and %d; keeping %d", partial.RowIndex, i, i),
				Context: t.BlockID,
			})
		}
		partial = info
	}

	if fromRow == -1 {
		fromRow, toRow = 0, 0
	}
	return fromRow, toRow, partial, warnings
}

// buildPartialInfo computes the per-cell local segment sub-ranges of a
// split row. Each cell's window is clamped to the cell's own segment
// count; the partial height is the maximum per-cell visible height.
func buildPartialInfo(row *model.TableRow, rowIndex, fromSeg, toSeg, rowSegs int, m *model.MeasureSet) *model.PartialRowInfo {
	info := &model.PartialRowInfo{
		RowIndex:       rowIndex,
		FromLineByCell: make([]int, len(row.Cells)),
		ToLineByCell:   make([]int, len(row.Cells)),
		IsFirstPart:    fromSeg == 0,
		IsLastPart:     toSeg == rowSegs,
		PartialHeight:  RowPartialHeight(row, fromSeg, toSeg, m),
	}
	for i := range row.Cells {
		cellSegs := CellSegmentCount(&row.Cells[i], m)
		info.FromLineByCell[i] = clamp(fromSeg, 0, cellSegs)
		info.ToLineByCell[i] = clamp(toSeg, 0, cellSegs)
	}
	return info
}
