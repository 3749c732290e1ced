package render

import "github.com/tsawler/folio/model"

// placeAnchored positions the deferred floating objects inside the
// cell's content node. Anchor offsets are cell-relative, while the
// content node may itself be shifted down by vertical alignment, so the
// alignment offset is subtracted to keep anchored objects pinned to the
// cell.
func placeAnchored(content *Node, items []anchoredItem, offsetY float64, ctx *Context) {
	for _, it := range items {
		node := it.node
		if node == nil {
			continue
		}
		node.BBox.X = it.anchor.OffsetXPx
		node.BBox.Y = it.anchor.OffsetYPx - offsetY
		node.Z = resolveZ(it.anchor)
		content.Append(node)

		// Square wrapping reflows the surrounding text around the
		// object's expanded bounds. Objects behind the document never
		// displace text.
		if it.wrap != nil && it.wrap.Type == model.WrapSquare && !it.anchor.BehindDoc {
			excl := node.BBox.Expand(
				it.wrap.LeftPx, it.wrap.TopPx,
				it.wrap.RightPx, it.wrap.BottomPx,
			)
			applyExclusion(content, excl)
		}
	}
}

// resolveZ picks the stacking order for an anchored object: an explicit
// z-index wins, then the value carried over from the source document,
// then behind-document objects sink below the text flow.
func resolveZ(a *model.Anchor) int {
	if a.ZIndex != nil {
		return *a.ZIndex
	}
	if a.OriginalZ != 0 {
		return a.OriginalZ
	}
	if a.BehindDoc {
		return -1
	}
	return 1
}

// applyExclusion shrinks or shifts the already-rendered line boxes that
// overlap the exclusion rectangle. Lines cut on their left edge move
// right; lines cut on their right edge lose width.
func applyExclusion(content *Node, rect model.BBox) {
	for _, child := range content.Children {
		if child.Kind != NodeLine {
			continue
		}
		lb := child.BBox
		if lb.Top() >= rect.Bottom() || lb.Bottom() <= rect.Top() {
			continue
		}
		if lb.Left() >= rect.Right() || lb.Right() <= rect.Left() {
			continue
		}
		if rect.Left() <= lb.Left() {
			shift := rect.Right() - lb.Left()
			child.BBox.X += shift
			child.BBox.Width -= shift
		} else {
			child.BBox.Width = rect.Left() - lb.Left()
		}
		if child.BBox.Width < 0 {
			child.BBox.Width = 0
		}
	}
}
