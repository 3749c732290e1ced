// Package folio lays out word-processing document trees. It analyzes
// section geometry, converts paragraphs and tables into flow blocks,
// measures them, paginates tables into fragments, and renders the
// fragments as positioned presentational nodes.
//
// Basic usage:
//
//	result, warnings, err := folio.From(tree).Layout()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", folio.FormatWarnings(warnings))
//	}
//
// With options:
//
//	result, _, err := folio.From(tree).
//	    Styles(styleDefs).
//	    Numbering(numDefs).
//	    TrackChanges(flow.TrackShowFinal).
//	    Layout()
//
// For advanced use cases, the lower-level section, flow, measure,
// paginate, and render packages are also available.
package folio

import (
	"errors"

	"github.com/tsawler/folio/doc"
	"github.com/tsawler/folio/flow"
	"github.com/tsawler/folio/measure"
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/paginate"
	"github.com/tsawler/folio/render"
	"github.com/tsawler/folio/section"
	"github.com/tsawler/folio/style"
)

// ErrNilTree is returned when Layout runs without a document tree.
var ErrNilTree = errors.New("folio: nil document tree")

// From wraps a document tree in a Layouter for fluent configuration.
//
// Example:
//
//	result, warnings, err := folio.From(tree).Layout()
func From(tree doc.Node) *Layouter {
	return &Layouter{
		tree:    tree,
		options: defaultOptions(),
	}
}

// Result is the output of one layout pass.
type Result struct {
	// Sections are the analyzed page-geometry ranges, in document order.
	Sections []model.SectionRange
	// Blocks are the converted flow blocks, in document order.
	Blocks []model.Block
	// Measures holds the measured geometry for every block.
	Measures *model.MeasureSet
	// Pages are the paginated pages with their table fragments and
	// rendered nodes.
	Pages []*Page
}

// Page is one laid-out page.
type Page struct {
	// Section indexes into Result.Sections.
	Section int
	// Number is the 1-based page number.
	Number int
	// ContentWidth and ContentHeight are the page's content box.
	ContentWidth  float64
	ContentHeight float64
	// Blocks are the flow blocks that start on this page.
	Blocks []model.Block
	// Fragments are the table fragments placed on this page.
	Fragments []*model.TableFragment
	// Nodes are the rendered presentational trees of the fragments,
	// index-aligned with Fragments.
	Nodes []*render.Node
}

// Layout runs the full pipeline: section analysis, flow conversion,
// measurement, table pagination, fragment rendering. Warnings report
// every non-fatal degradation; the error covers caller-contract
// violations only.
func (l *Layouter) Layout() (*Result, []Warning, error) {
	if l.tree == nil {
		return nil, nil, ErrNilTree
	}
	o := l.options

	sections, warnings := section.Analyze(l.tree, o.bodySectPr)

	resolver := style.NewResolver(o.styles)
	ctx := flow.NewContext(resolver)
	ctx.Numbering = flow.NewNumbering(o.numbering)
	ctx.TrackMode = o.trackMode
	ctx.Config = o.config

	nodes := doc.Paragraphs(l.tree)
	blocksByNode := make([][]model.Block, len(nodes))
	var blocks []model.Block
	for i, n := range nodes {
		var bs []model.Block
		switch n.Kind() {
		case doc.KindParagraph:
			bs = flow.ParagraphToBlocks(n, ctx)
		case doc.KindTable:
			if t := flow.TableToBlock(n, ctx); t != nil {
				bs = []model.Block{t}
			}
		}
		blocksByNode[i] = bs
		blocks = append(blocks, bs...)
	}
	warnings = append(warnings, ctx.Warnings()...)

	measurer := measure.NewMeasurer(measureOptions(o)...)
	measures := model.NewMeasureSet()
	result := &Result{
		Sections: sections,
		Blocks:   blocks,
		Measures: measures,
	}

	for si := range sections {
		sec := &sections[si]
		cw, ch := contentBox(sec, o.config)

		secBlocks := sectionBlocks(blocksByNode, sec)
		set, mw := measurer.MeasureBlocks(secBlocks, cw)
		warnings = append(warnings, mw...)
		mergeMeasures(measures, set, secBlocks)

		pw := paginateSection(result, si, secBlocks, cw, ch, measures)
		warnings = append(warnings, pw...)
	}

	return result, warnings, nil
}

// sectionBlocks gathers the flow blocks converted from the paragraphs a
// section range covers.
func sectionBlocks(blocksByNode [][]model.Block, sec *model.SectionRange) []model.Block {
	var out []model.Block
	for i := sec.StartParagraphIndex; i <= sec.EndParagraphIndex && i < len(blocksByNode); i++ {
		out = append(out, blocksByNode[i]...)
	}
	return out
}

// contentBox resolves a section's content width and height from its
// page size and margins, falling back to the configured defaults.
// Unspecified margins default to one inch.
func contentBox(sec *model.SectionRange, cfg model.LayoutConfig) (w, h float64) {
	w, h = cfg.DefaultPageWidthPx, cfg.DefaultPageHeightPx
	if sec.PageSize != nil {
		if sec.PageSize.WidthPx > 0 {
			w = sec.PageSize.WidthPx
		}
		if sec.PageSize.HeightPx > 0 {
			h = sec.PageSize.HeightPx
		}
	}
	const defaultMarginPx = 96.0
	left, right, top, bottom := defaultMarginPx, defaultMarginPx, defaultMarginPx, defaultMarginPx
	if m := sec.Margins; m != nil {
		if m.LeftPx != nil {
			left = *m.LeftPx
		}
		if m.RightPx != nil {
			right = *m.RightPx
		}
		if m.TopPx != nil {
			top = *m.TopPx
		}
		if m.BottomPx != nil {
			bottom = *m.BottomPx
		}
	}
	w -= left + right
	h -= top + bottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

// paginateSection fills pages for one section's blocks and appends them
// to the result.
func paginateSection(result *Result, si int, blocks []model.Block, cw, ch float64, m *model.MeasureSet) []model.Warning {
	var warnings []model.Warning

	rctx := render.NewContext(m)
	page := newPage(result, si, cw, ch)
	remaining := ch

	for _, b := range blocks {
		switch b.Kind() {
		case model.BlockPageBreak, model.BlockColumnBreak:
			// Columns collapse to pages in the single-column layout
			// model.
			page = newPage(result, si, cw, ch)
			remaining = ch
		case model.BlockTable:
			t := b.(*model.TableBlock)
			frags, fw := paginate.Paginate(t, 0, cw, remaining, ch, m)
			warnings = append(warnings, fw...)
			for i, frag := range frags {
				if i > 0 {
					page = newPage(result, si, cw, ch)
					remaining = ch
				}
				frag.Y = ch - remaining
				page.Fragments = append(page.Fragments, frag)
				page.Nodes = append(page.Nodes, render.RenderFragment(frag, t, rctx))
				remaining -= frag.Height
			}
			page.Blocks = append(page.Blocks, b)
		default:
			h := m.BlockHeight(b)
			if h > remaining && remaining < ch {
				page = newPage(result, si, cw, ch)
				remaining = ch
			}
			page.Blocks = append(page.Blocks, b)
			remaining -= h
		}
		if remaining < 0 {
			remaining = 0
		}
	}
	warnings = append(warnings, rctx.Warnings()...)
	return warnings
}

func newPage(result *Result, si int, cw, ch float64) *Page {
	p := &Page{
		Section:       si,
		Number:        len(result.Pages) + 1,
		ContentWidth:  cw,
		ContentHeight: ch,
	}
	result.Pages = append(result.Pages, p)
	return p
}

// mergeMeasures folds a per-section measure set into the result-wide
// one.
func mergeMeasures(dst, src *model.MeasureSet, blocks []model.Block) {
	for _, b := range blocks {
		copyMeasures(dst, src, b)
	}
}

func copyMeasures(dst, src *model.MeasureSet, b model.Block) {
	switch blk := b.(type) {
	case *model.ParagraphBlock:
		if m, ok := src.Paragraph(blk.BlockID); ok {
			dst.SetParagraph(blk.BlockID, m)
		}
	case *model.TableBlock:
		if m, ok := src.Table(blk.BlockID); ok {
			dst.SetTable(blk.BlockID, m)
		}
		for _, row := range blk.Rows {
			for _, cell := range row.Cells {
				for _, cb := range cell.Blocks {
					copyMeasures(dst, src, cb)
				}
			}
		}
	case *model.ImageBlock:
		if m, ok := src.Image(blk.BlockID); ok {
			dst.SetImage(blk.BlockID, m)
		}
	case *model.DrawingBlock:
		if m, ok := src.Image(blk.BlockID); ok {
			dst.SetImage(blk.BlockID, m)
		}
	}
}
