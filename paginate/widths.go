package paginate

import "github.com/tsawler/folio/model"

// EffectiveColumnWidths returns the authoritative column widths for a
// table: the converter-resolved widths when present, else the measured
// widths, else an equal split of the table's declared width.
func EffectiveColumnWidths(t *model.TableBlock, m *model.MeasureSet) []float64 {
	if len(t.ColumnWidths) > 0 {
		return t.ColumnWidths
	}
	if tm, ok := m.Table(t.BlockID); ok && len(tm.ColumnWidths) > 0 {
		return tm.ColumnWidths
	}
	cols := t.ColCount()
	if cols == 0 || t.Attrs.TableWidthPx <= 0 {
		return nil
	}
	widths := make([]float64, cols)
	each := t.Attrs.TableWidthPx / float64(cols)
	for i := range widths {
		widths[i] = each
	}
	return widths
}

// RescaleColumnWidths proportionally rescales widths so they sum to the
// available width. Embedded tables need this themselves: they are
// measured at measurement-scale total width but render into whatever
// width their host cell offers, and they bypass the top-level rescale
// path. A non-positive available width or empty input returns the input
// unchanged.
func RescaleColumnWidths(widths []float64, availableWidth float64) []float64 {
	if len(widths) == 0 || availableWidth <= 0 {
		return widths
	}
	var total float64
	for _, w := range widths {
		total += w
	}
	if total <= 0 || total == availableWidth {
		return widths
	}
	factor := availableWidth / total
	out := make([]float64, len(widths))
	for i, w := range widths {
		out[i] = w * factor
	}
	return out
}
