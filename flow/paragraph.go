package flow

import (
	"fmt"

	"github.com/tsawler/folio/doc"
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/style"
)

// ParagraphToBlocks converts one paragraph node into an ordered list of
// flow blocks. A paragraph containing block-level inline content (a
// floating image, a drawing, a nested table, a hard break) splits into
// multiple paragraph fragments interleaved with those blocks; every
// fragment keeps the paragraph's attrs but gets a distinct id suffixed
// with an incrementing part index.
//
// The conversion always yields at least one paragraph block for a
// paragraph-shaped input — an empty paragraph still needs a caret
// position — unless the paragraph is fully suppressed by hidden
// ("vanish") formatting.
func ParagraphToBlocks(p doc.Node, ctx *Context) []model.Block {
	attrs := p.Attrs()
	paraStyleID := attrs.String("styleId")
	resolved := ctx.Styles.Resolve(paraStyleID)
	if paraStyleID != "" && !ctx.Styles.Known(paraStyleID) {
		ctx.Warn(model.WarnStyleUnresolved, "paragraph style has no definition", paraStyleID)
	}

	base := buildParagraphAttrs(attrs, resolved, ctx)

	var blocks []model.Block
	if attrs.Bool("pageBreakBefore") {
		blocks = append(blocks, &model.PageBreakBlock{BlockID: ctx.IDs.Next("break")})
	}

	if len(p.Children()) == 0 {
		if paragraphHidden(attrs, resolved) {
			return blocks
		}
		pb := &model.ParagraphBlock{
			BlockID: ctx.IDs.Next("para"),
			Attrs:   base,
		}
		if span, ok := p.Span(); ok {
			pb.CaretSpan = model.Span{Start: span.Start, End: span.End}
		}
		return append(blocks, pb)
	}

	w := &paragraphWalker{
		ctx:         ctx,
		paraAttrs:   attrs,
		paraStyleID: paraStyleID,
		base:        base,
		baseID:      ctx.IDs.Next("para"),
	}
	w.walk(p.Children())
	w.flush()
	if !w.emittedParagraph {
		// Only block-level children were present; preserve caret
		// addressability with an empty trailing fragment.
		w.forceFlush()
	}

	blocks = append(blocks, w.out...)

	blocks = applyMarkerOverride(blocks, base.Marker)

	if ctx.TrackMode != TrackShowAll {
		blocks = filterTrackedBlocks(blocks, ctx.TrackMode)
	}
	return blocks
}

// paragraphWalker accumulates a run buffer while depth-walking inline
// content, flushing the buffer into a paragraph fragment whenever a
// block-level child is encountered.
type paragraphWalker struct {
	ctx         *Context
	paraAttrs   doc.Attrs
	paraStyleID string
	base        model.ParagraphAttrs
	baseID      string

	buf              []model.Run
	part             int
	out              []model.Block
	emittedParagraph bool
}

func (w *paragraphWalker) walk(nodes []doc.Node) {
	for _, n := range nodes {
		switch n.Kind() {
		case doc.KindText:
			w.buf = append(w.buf, buildTextRun(n, w.paraAttrs, w.paraStyleID, w.ctx))
		case doc.KindToken:
			run := buildTextRun(n, w.paraAttrs, w.paraStyleID, w.ctx)
			run.Kind = model.RunToken
			w.buf = append(w.buf, run)
		case doc.KindTab:
			w.buf = append(w.buf, model.Run{Kind: model.RunTab})
		case doc.KindLineBreak:
			w.buf = append(w.buf, model.Run{Kind: model.RunLineBreak})
		case doc.KindFieldAnnotation:
			run := buildTextRun(n, w.paraAttrs, w.paraStyleID, w.ctx)
			run.Kind = model.RunFieldAnnotation
			run.Field = n.Attrs().String("instruction")
			w.buf = append(w.buf, run)
		case doc.KindImage:
			if isInlineImage(n.Attrs()) {
				w.buf = append(w.buf, inlineImageRun(n))
				continue
			}
			w.flush()
			w.out = append(w.out, convertImage(n, w.ctx))
		case doc.KindDrawing, doc.KindShape:
			w.flush()
			w.out = append(w.out, convertDrawing(n, w.ctx))
		case doc.KindTable:
			w.flush()
			if tbl := TableToBlock(n, w.ctx); tbl != nil {
				w.out = append(w.out, tbl)
			}
		case doc.KindHardBreak:
			w.flush()
			if n.Attrs().String("breakType") == "column" {
				w.out = append(w.out, &model.ColumnBreakBlock{BlockID: w.ctx.IDs.Next("break")})
			} else {
				w.out = append(w.out, &model.PageBreakBlock{BlockID: w.ctx.IDs.Next("break")})
			}
		case doc.KindStructuredContent, doc.KindIndex:
			w.walk(n.Children())
		case doc.KindBookmark:
			// zero-width, no layout effect
		default:
			// unrecognized inline kinds are skipped, not errors
		}
	}
}

// flush turns the buffered runs into a paragraph fragment. Empty buffers
// flush to nothing.
func (w *paragraphWalker) flush() {
	if len(w.buf) == 0 {
		return
	}
	w.emit(MergeAdjacentRuns(w.buf))
	w.buf = nil
}

// forceFlush emits an empty paragraph fragment regardless of the buffer.
func (w *paragraphWalker) forceFlush() {
	w.emit(nil)
}

func (w *paragraphWalker) emit(runs []model.Run) {
	id := w.baseID
	if w.part > 0 {
		id = fmt.Sprintf("%s-%d", w.baseID, w.part)
	}
	w.part++
	w.out = append(w.out, &model.ParagraphBlock{
		BlockID: id,
		Runs:    runs,
		Attrs:   w.base,
	})
	w.emittedParagraph = true
}

// buildParagraphAttrs resolves the paragraph-level formatting cascade:
// explicit attrs win over the linked paragraph style.
func buildParagraphAttrs(attrs doc.Attrs, resolved *style.Resolved, ctx *Context) model.ParagraphAttrs {
	pa := model.ParagraphAttrs{
		StyleID: attrs.String("styleId"),
		Indent: model.Indent{
			LeftPx:      resolved.IndentLeftPx,
			RightPx:     resolved.IndentRightPx,
			FirstLinePx: resolved.FirstLinePx,
			HangingPx:   resolved.HangingPx,
		},
		Spacing: model.Spacing{
			BeforePx: resolved.SpaceBeforePx,
			AfterPx:  resolved.SpaceAfterPx,
			LinePx:   resolved.LineSpacingPx,
		},
		Justification: resolved.Justification,
		Shading:       resolved.ShadingFill,
		SDT:           ctx.SDT,
	}

	if ind := attrs.Sub("indent"); ind != nil {
		if v, ok := ind.Float("left"); ok {
			pa.Indent.LeftPx = model.TwipsToPx(v)
		}
		if v, ok := ind.Float("right"); ok {
			pa.Indent.RightPx = model.TwipsToPx(v)
		}
		if v, ok := ind.Float("firstLine"); ok {
			pa.Indent.FirstLinePx = model.TwipsToPx(v)
		}
		if v, ok := ind.Float("hanging"); ok {
			pa.Indent.HangingPx = model.TwipsToPx(v)
		}
	}
	if sp := attrs.Sub("spacing"); sp != nil {
		if v, ok := sp.Float("before"); ok {
			pa.Spacing.BeforePx = model.TwipsToPx(v)
		}
		if v, ok := sp.Float("after"); ok {
			pa.Spacing.AfterPx = model.TwipsToPx(v)
		}
		if v, ok := sp.Float("line"); ok {
			pa.Spacing.LinePx = model.TwipsToPx(v)
		}
	}
	if j := attrs.String("textAlign"); j != "" {
		pa.Justification = j
	}
	if sh := attrs.String("shading"); sh != "" && sh != "auto" {
		pa.Shading = sh
	}

	if num := attrs.Sub("numbering"); num != nil {
		numID := num.String("numId")
		level, _ := num.Int("level")
		if numID != "" && numID != "0" {
			pa.List = &model.ListInfo{NumID: numID, Level: level}
			pa.Marker = ctx.Numbering.MarkerFor(numID, level)
		}
	}

	return pa
}

// paragraphHidden reports whether the paragraph is fully suppressed by
// vanish formatting, either on its explicit base-run defaults or on its
// linked style.
func paragraphHidden(attrs doc.Attrs, resolved *style.Resolved) bool {
	if rpr := attrs.Sub("runProperties"); rpr != nil && rpr.Bool("vanish") {
		return true
	}
	return resolved.Vanish
}

// applyMarkerOverride gives a pre-computed list marker the font of the
// paragraph's first text run, unless the numbering level declared its
// own marker font — explicit numbering-level formatting always wins over
// formatting inherited from content.
func applyMarkerOverride(blocks []model.Block, marker *model.MarkerLayout) []model.Block {
	if marker == nil || marker.ExplicitFont {
		return blocks
	}
	for _, b := range blocks {
		pb, ok := b.(*model.ParagraphBlock)
		if !ok {
			continue
		}
		for _, r := range pb.Runs {
			if r.Kind == model.RunText {
				marker.FontFamily = r.Style.FontFamily
				marker.FontSizePx = r.Style.FontSizePx
				return blocks
			}
		}
	}
	return blocks
}

// filterTrackedBlocks post-processes every paragraph block's runs
// through the mode-aware tracked-change filter, dropping a paragraph
// block entirely when filtering empties it.
func filterTrackedBlocks(blocks []model.Block, mode TrackMode) []model.Block {
	out := blocks[:0]
	for _, b := range blocks {
		pb, ok := b.(*model.ParagraphBlock)
		if !ok {
			out = append(out, b)
			continue
		}
		filtered := FilterRuns(pb.Runs, mode)
		if len(filtered) == 0 && len(pb.Runs) > 0 {
			continue
		}
		pb.Runs = filtered
		out = append(out, pb)
	}
	return out
}
