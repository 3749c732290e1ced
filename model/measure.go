package model

// LineMeasure is the measured geometry of one rendered paragraph line.
// ExplicitX marks lines whose segments carry tab-stop-driven x positions;
// the renderer must not apply indent padding to such lines or content
// double-shifts and the first character clips.
type LineMeasure struct {
	Height    float64
	Width     float64
	ExplicitX bool
}

// ParagraphMeasure is the measured geometry of a paragraph block.
type ParagraphMeasure struct {
	Lines []LineMeasure
}

// TotalHeight returns the summed line heights.
func (pm *ParagraphMeasure) TotalHeight() float64 {
	var h float64
	for _, ln := range pm.Lines {
		h += ln.Height
	}
	return h
}

// ImageMeasure is the measured size of an image or drawing block.
type ImageMeasure struct {
	Width  float64
	Height float64
}

// RowMeasure is the measured height of one table row.
type RowMeasure struct {
	Height float64
}

// TableMeasure is the measured geometry of a table block. TotalWidth is
// the width the table was measured at, which may differ from the width
// available where it renders; embedded tables rescale their column
// widths to close that gap.
type TableMeasure struct {
	Rows         []RowMeasure
	TotalWidth   float64
	ColumnWidths []float64
}

// TotalHeight returns the summed row heights.
func (tm *TableMeasure) TotalHeight() float64 {
	var h float64
	for _, r := range tm.Rows {
		h += r.Height
	}
	return h
}

// MeasureSet maps block ids to their measures. The pagination engine and
// the fragment renderer treat these values as ground truth.
type MeasureSet struct {
	paragraphs map[string]*ParagraphMeasure
	tables     map[string]*TableMeasure
	images     map[string]*ImageMeasure
}

// NewMeasureSet returns an empty measure set.
func NewMeasureSet() *MeasureSet {
	return &MeasureSet{
		paragraphs: make(map[string]*ParagraphMeasure),
		tables:     make(map[string]*TableMeasure),
		images:     make(map[string]*ImageMeasure),
	}
}

// SetParagraph records a paragraph measure.
func (ms *MeasureSet) SetParagraph(id string, m *ParagraphMeasure) {
	ms.paragraphs[id] = m
}

// SetTable records a table measure.
func (ms *MeasureSet) SetTable(id string, m *TableMeasure) {
	ms.tables[id] = m
}

// SetImage records an image or drawing measure.
func (ms *MeasureSet) SetImage(id string, m *ImageMeasure) {
	ms.images[id] = m
}

// Paragraph returns the measure for a paragraph block id.
func (ms *MeasureSet) Paragraph(id string) (*ParagraphMeasure, bool) {
	m, ok := ms.paragraphs[id]
	return m, ok
}

// Table returns the measure for a table block id.
func (ms *MeasureSet) Table(id string) (*TableMeasure, bool) {
	m, ok := ms.tables[id]
	return m, ok
}

// Image returns the measure for an image or drawing block id.
func (ms *MeasureSet) Image(id string) (*ImageMeasure, bool) {
	m, ok := ms.images[id]
	return m, ok
}

// BlockHeight returns the measured height of any block, falling back to
// the block's own declared size for images and drawings without a
// recorded measure. Unmeasured paragraphs and tables report zero.
func (ms *MeasureSet) BlockHeight(b Block) float64 {
	switch blk := b.(type) {
	case *ParagraphBlock:
		if m, ok := ms.paragraphs[blk.BlockID]; ok {
			return m.TotalHeight()
		}
	case *TableBlock:
		if m, ok := ms.tables[blk.BlockID]; ok {
			return m.TotalHeight()
		}
	case *ImageBlock:
		if m, ok := ms.images[blk.BlockID]; ok {
			return m.Height
		}
		return blk.HeightPx
	case *DrawingBlock:
		if m, ok := ms.images[blk.BlockID]; ok {
			return m.Height
		}
		return blk.HeightPx
	}
	return 0
}
