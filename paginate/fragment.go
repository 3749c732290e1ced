package paginate

import "github.com/tsawler/folio/model"

// BuildFragment constructs the TableFragment for the segment window
// [fromSeg, toSeg) positioned at (x, y). availableWidth is the width the
// fragment renders into; when it differs from the measured width the
// column widths are proportionally rescaled first.
func BuildFragment(t *model.TableBlock, fromSeg, toSeg int, x, y, availableWidth float64, m *model.MeasureSet) (*model.TableFragment, []model.Warning) {
	fromRow, toRow, partial, warnings := ResolveRange(t, fromSeg, toSeg, m)

	widths := EffectiveColumnWidths(t, m)
	if availableWidth > 0 {
		widths = RescaleColumnWidths(widths, availableWidth)
	}

	var width float64
	for _, w := range widths {
		width += w
	}
	if width == 0 {
		if availableWidth > 0 {
			width = availableWidth
		} else if tm, ok := m.Table(t.BlockID); ok {
			width = tm.TotalWidth
		}
	}

	return &model.TableFragment{
		BlockID:      t.BlockID,
		FromRow:      fromRow,
		ToRow:        toRow,
		X:            x,
		Y:            y,
		Width:        width,
		Height:       TableVisibleHeight(t, fromSeg, toSeg, m),
		ColumnWidths: widths,
		PartialRow:   partial,
	}, warnings
}

// NextBreak returns the largest toSeg such that the window
// [fromSeg, toSeg) fits the height budget. Progress is guaranteed: at
// least one segment is consumed even when nothing fits, otherwise a
// too-tall row would loop forever.
func NextBreak(t *model.TableBlock, fromSeg int, budget float64, m *model.MeasureSet) int {
	total := TableSegmentCount(t, m)
	toSeg := fromSeg
	for next := fromSeg + 1; next <= total; next++ {
		if TableVisibleHeight(t, fromSeg, next, m) > budget {
			break
		}
		toSeg = next
	}
	if toSeg == fromSeg {
		toSeg = fromSeg + 1 // forced progress
	}
	if toSeg > total {
		toSeg = total
	}
	return toSeg
}

// Paginate splits a table into fragments: the first fits firstBudget
// (the remaining height on the current page), subsequent fragments fit
// pageBudget. All fragments are positioned at (x, 0) in their own page
// space; the caller offsets Y per page.
func Paginate(t *model.TableBlock, x, availableWidth, firstBudget, pageBudget float64, m *model.MeasureSet) ([]*model.TableFragment, []model.Warning) {
	total := TableSegmentCount(t, m)
	if total == 0 {
		return nil, nil
	}

	var fragments []*model.TableFragment
	var warnings []model.Warning

	budget := firstBudget
	from := 0
	for from < total {
		to := NextBreak(t, from, budget, m)
		frag, warns := BuildFragment(t, from, to, x, 0, availableWidth, m)
		fragments = append(fragments, frag)
		warnings = append(warnings, warns...)
		from = to
		budget = pageBudget
	}
	return fragments, warnings
}
