package render

import (
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/paginate"
)

// flowState is the per-cell accumulator for the flow pass: a vertical
// cursor and a running segment counter that must stay in lockstep with
// the pagination engine's segment counting. It lives only within
// renderCellContent's scope.
type flowState struct {
	cursorY  float64
	seg      int
	anchored []anchoredItem
}

// anchoredItem is a floating object deferred for out-of-flow placement
// after the flow pass.
type anchoredItem struct {
	node   *Node
	anchor *model.Anchor
	wrap   *model.Wrap
}

// renderCellContent walks the cell's blocks in order, rendering the
// segments that fall inside [fromSeg, toSeg). Skipped content still
// advances the segment counter — the counter and the pagination engine's
// CellSegmentCount must agree exactly or fragments clip or duplicate.
// It returns the content node, the flowed content height, and the
// anchored objects awaiting placement.
func renderCellContent(cell *model.TableCell, fromSeg, toSeg int, width float64, ctx *Context) (*Node, float64, []anchoredItem) {
	content := &Node{
		Kind:    NodeCellContent,
		BlockID: cell.CellID,
	}
	st := &flowState{}

	for _, b := range cell.Blocks {
		switch blk := b.(type) {
		case *model.ParagraphBlock:
			renderFlowParagraph(content, st, blk, fromSeg, toSeg, ctx)
		case *model.TableBlock:
			renderEmbeddedTable(content, st, blk, fromSeg, toSeg, width, ctx)
		case *model.ImageBlock:
			node := &Node{
				Kind:    NodeImage,
				BlockID: blk.BlockID,
				Src:     blk.Src,
				BBox:    model.NewBBox(0, 0, blk.WidthPx, blk.HeightPx),
			}
			renderFlowObject(content, st, node, blk.Anchor, blk.Wrap, ctx.Measures.BlockHeight(blk), fromSeg, toSeg)
		case *model.DrawingBlock:
			node := ctx.Drawings.RenderDrawing(blk, ctx)
			renderFlowObject(content, st, node, blk.Anchor, blk.Wrap, ctx.Measures.BlockHeight(blk), fromSeg, toSeg)
		default:
			// page/column breaks inside cells have no height and no
			// segment
		}
	}

	return content, st.cursorY, st.anchored
}

// renderFlowParagraph renders the paragraph lines whose segment indices
// intersect the visible window, attaching the list marker to the first
// line when marker layout and measurement both exist.
func renderFlowParagraph(content *Node, st *flowState, p *model.ParagraphBlock, fromSeg, toSeg int, ctx *Context) {
	pm, ok := ctx.Measures.Paragraph(p.BlockID)
	if !ok {
		return // unmeasured paragraphs contribute no segments
	}

	for i, line := range pm.Lines {
		visible := st.seg >= fromSeg && st.seg < toSeg
		firstLineFromStart := i == 0 && st.seg >= fromSeg
		st.seg++
		if !visible {
			continue
		}

		node := ctx.Lines.RenderLine(p, line, ctx, i, i == len(pm.Lines)-1)
		if node == nil {
			continue
		}

		// Two-part indent model: paddingLeft carries the base plus
		// hanging indent, textIndent the first-line offset
		// (firstLine - hanging). Lines whose segments carry explicit
		// tab-stop x positions get neither, or content double-shifts
		// and the first character clips.
		padLeft := p.Attrs.Indent.LeftPx + p.Attrs.Indent.HangingPx
		textIndent := p.Attrs.Indent.FirstLinePx - p.Attrs.Indent.HangingPx
		if line.ExplicitX {
			padLeft, textIndent = 0, 0
		}
		node.Style.PaddingLeftPx = padLeft
		node.BBox.X = padLeft
		node.BBox.Y = st.cursorY
		if i == 0 {
			node.Style.TextIndentPx = textIndent
			node.BBox.X += textIndent
		}

		if m := p.Attrs.Marker; m != nil && firstLineFromStart &&
			m.WidthPx > 0 && !m.Vanish {
			node.Append(markerNode(m, line.Height, ctx))
		}

		content.Append(node)
		st.cursorY += line.Height
	}
}

// renderEmbeddedTable delegates to the pagination-aware fragment
// machinery, mapping the cell's visible window onto the embedded
// table's own segment space.
func renderEmbeddedTable(content *Node, st *flowState, t *model.TableBlock, fromSeg, toSeg int, width float64, ctx *Context) {
	n := paginate.TableSegmentCount(t, ctx.Measures)
	lf := clampInt(fromSeg-st.seg, 0, n)
	lt := clampInt(toSeg-st.seg, 0, n)
	st.seg += n

	if lt <= lf {
		return
	}

	frag, warnings := paginate.BuildFragment(t, lf, lt, 0, st.cursorY, width, ctx.Measures)
	ctx.Warn(warnings...)
	content.Append(RenderFragment(frag, t, ctx))
	st.cursorY += frag.Height
}

// renderFlowObject handles an image or drawing: anchored objects are
// deferred for out-of-flow placement, in-flow objects render when their
// single segment index is visible. Either way the segment counter
// advances only when the object has positive height, matching the
// pagination engine's counting.
func renderFlowObject(content *Node, st *flowState, node *Node, anchor *model.Anchor, wrap *model.Wrap, height float64, fromSeg, toSeg int) {
	if anchor != nil && anchor.IsAnchored {
		st.anchored = append(st.anchored, anchoredItem{node: node, anchor: anchor, wrap: wrap})
		if height > 0 {
			st.seg++
		}
		return
	}
	if height <= 0 {
		return
	}
	visible := st.seg >= fromSeg && st.seg < toSeg
	st.seg++
	if !visible {
		return
	}
	node.BBox.Y = st.cursorY
	content.Append(node)
	st.cursorY += height
}

// markerNode positions the list marker to the left of the first line's
// text, inside the line node.
func markerNode(m *model.MarkerLayout, lineHeight float64, ctx *Context) *Node {
	return &Node{
		Kind: NodeMarker,
		Text: m.Text,
		BBox: model.NewBBox(-(m.WidthPx + ctx.Config.MarkerGutterPx), 0, m.WidthPx, lineHeight),
		Style: NodeStyle{
			FontFamily: m.FontFamily,
			FontSizePx: m.FontSizePx,
		},
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
