package measure

import (
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"

	"github.com/tsawler/folio/model"
)

// Measurer produces a MeasureSet for a tree of flow blocks.
type Measurer struct {
	fonts  FontSource
	cfg    model.LayoutConfig
	shaper shaping.HarfbuzzShaper
	faces  map[faceKey]*font.Face

	warnings []model.Warning
}

// Option configures a Measurer.
type Option func(*Measurer)

// WithFonts supplies the font source used for shaping.
func WithFonts(fs FontSource) Option {
	return func(m *Measurer) { m.fonts = fs }
}

// WithConfig overrides the layout configuration.
func WithConfig(cfg model.LayoutConfig) Option {
	return func(m *Measurer) { m.cfg = cfg }
}

// NewMeasurer returns a measurer with the default configuration and no
// fonts; without fonts all text measures through the fallback table.
func NewMeasurer(opts ...Option) *Measurer {
	m := &Measurer{
		cfg:   model.DefaultLayoutConfig(),
		faces: make(map[faceKey]*font.Face),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MeasureBlocks measures every block in the slice at the given content
// width, recording results in a fresh MeasureSet. Nested tables and
// their cell content are measured bottom-up so a table's measure is
// complete before anything above it depends on it.
func (m *Measurer) MeasureBlocks(blocks []model.Block, width float64) (*model.MeasureSet, []model.Warning) {
	set := model.NewMeasureSet()
	m.warnings = nil
	m.measureInto(set, blocks, width)
	return set, m.warnings
}

func (m *Measurer) measureInto(set *model.MeasureSet, blocks []model.Block, width float64) {
	for _, b := range blocks {
		switch blk := b.(type) {
		case *model.ParagraphBlock:
			set.SetParagraph(blk.BlockID, m.measureParagraph(blk, width))
		case *model.TableBlock:
			m.measureTable(set, blk, width)
		case *model.ImageBlock:
			m.warnings = append(m.warnings, ResolveImageSize(blk)...)
			set.SetImage(blk.BlockID, &model.ImageMeasure{Width: blk.WidthPx, Height: blk.HeightPx})
		case *model.DrawingBlock:
			set.SetImage(blk.BlockID, &model.ImageMeasure{Width: blk.WidthPx, Height: blk.HeightPx})
		}
	}
}

// measureParagraph breaks the paragraph's runs into lines with a greedy
// breaker. Paragraph spacing folds into the first and last line heights
// so that line counts and visible heights stay consistent everywhere
// downstream.
func (m *Measurer) measureParagraph(p *model.ParagraphBlock, width float64) *model.ParagraphMeasure {
	lineHeight := m.paragraphLineHeight(p)

	if mk := p.Attrs.Marker; mk != nil && mk.WidthPx == 0 && mk.Text != "" {
		mk.WidthPx = m.shapeWidth(mk.Text, model.RunStyle{
			FontFamily: mk.FontFamily,
			FontSizePx: mk.FontSizePx,
		})
	}

	avail := width - p.Attrs.Indent.LeftPx - p.Attrs.Indent.RightPx - p.Attrs.Indent.HangingPx
	firstAvail := avail - (p.Attrs.Indent.FirstLinePx - p.Attrs.Indent.HangingPx)

	br := lineBreaker{
		measurer:   m,
		lineHeight: lineHeight,
		avail:      avail,
		firstAvail: firstAvail,
	}
	for _, r := range p.Runs {
		if r.Style.Vanish {
			continue
		}
		switch r.Kind {
		case model.RunText, model.RunToken, model.RunFieldAnnotation:
			br.addText(r.Text, r.Style)
		case model.RunTab:
			br.addTab()
		case model.RunLineBreak:
			br.breakLine()
		case model.RunImage:
			br.addBox(r.WidthPx, r.HeightPx)
		}
	}
	lines := br.finish()

	if len(lines) > 0 {
		lines[0].Height += p.Attrs.Spacing.BeforePx
		lines[len(lines)-1].Height += p.Attrs.Spacing.AfterPx
	}
	return &model.ParagraphMeasure{Lines: lines}
}

// paragraphLineHeight derives the line box height from the largest run
// size, or from an exact line spacing value when one is declared.
func (m *Measurer) paragraphLineHeight(p *model.ParagraphBlock) float64 {
	if p.Attrs.Spacing.LinePx > 0 {
		return p.Attrs.Spacing.LinePx
	}
	size := 0.0
	for _, r := range p.Runs {
		if r.Style.Vanish {
			continue
		}
		if r.Style.FontSizePx > size {
			size = r.Style.FontSizePx
		}
	}
	if size == 0 {
		size = m.cfg.DefaultFontSizePx
	}
	return size * m.cfg.LineHeightFactor
}

// measureTable computes row heights and column widths, recursing into
// cell content first.
func (m *Measurer) measureTable(set *model.MeasureSet, t *model.TableBlock, availWidth float64) {
	cols := t.ColCount()
	widths := tableColumnWidths(t, availWidth, cols)

	tm := &model.TableMeasure{
		ColumnWidths: widths,
		TotalWidth:   sum(widths),
	}

	for _, row := range t.Rows {
		var rowH float64
		col := 0
		for _, cell := range row.Cells {
			span := cell.ColSpan
			if span < 1 {
				span = 1
			}
			cw := spanSum(widths, col, span) - cell.Attrs.Padding.LeftPx - cell.Attrs.Padding.RightPx
			if cw < 0 {
				cw = 0
			}
			col += span

			m.measureInto(set, cell.Blocks, cw)
			h := contentHeight(cell.Blocks, set) + cell.Attrs.Padding.TopPx + cell.Attrs.Padding.BottomPx
			if h > rowH {
				rowH = h
			}
		}
		switch row.Attrs.Height.Rule {
		case model.RowHeightExact:
			rowH = row.Attrs.Height.ValuePx
		case model.RowHeightAtLeast:
			if row.Attrs.Height.ValuePx > rowH {
				rowH = row.Attrs.Height.ValuePx
			}
		}
		tm.Rows = append(tm.Rows, model.RowMeasure{Height: rowH})
	}

	set.SetTable(t.BlockID, tm)
}

// tableColumnWidths resolves measured column widths: the converter's
// resolved grid when present, otherwise an equal split of the declared
// or available table width.
func tableColumnWidths(t *model.TableBlock, availWidth float64, cols int) []float64 {
	if len(t.ColumnWidths) > 0 {
		return append([]float64(nil), t.ColumnWidths...)
	}
	if cols == 0 {
		return nil
	}
	total := t.Attrs.TableWidthPx
	if total <= 0 {
		total = availWidth
	}
	widths := make([]float64, cols)
	for i := range widths {
		widths[i] = total / float64(cols)
	}
	return widths
}

func contentHeight(blocks []model.Block, set *model.MeasureSet) float64 {
	var h float64
	for _, b := range blocks {
		h += set.BlockHeight(b)
	}
	return h
}

func sum(vals []float64) float64 {
	var t float64
	for _, v := range vals {
		t += v
	}
	return t
}

func spanSum(widths []float64, from, span int) float64 {
	var t float64
	for i := from; i < from+span && i < len(widths); i++ {
		t += widths[i]
	}
	return t
}
