package flow

import (
	"github.com/tsawler/folio/doc"
	"github.com/tsawler/folio/model"
)

// isInlineImage classifies an image node as inline or block-level. The
// decision reads the raw, pre-normalization wrap-type attribute:
// "Inline" means inline, any other explicit wrap type means block. The
// legacy inline/display attributes are consulted only when no wrap type
// is present at all — order matters, because wrap normalization discards
// the distinguishing signal.
func isInlineImage(attrs doc.Attrs) bool {
	if wrap := attrs.Sub("wrap"); wrap != nil {
		if t := wrap.String("type"); t != "" {
			return t == "Inline"
		}
	}
	if attrs.Has("inline") {
		return attrs.Bool("inline")
	}
	if d := attrs.String("display"); d != "" {
		return d == "inline"
	}
	// An image with no wrap information at all sits in the run, the
	// OOXML wp:inline default.
	return true
}

// inlineImageRun converts an inline image node to an image run.
func inlineImageRun(n doc.Node) model.Run {
	attrs := n.Attrs()
	w, _ := attrs.Float("width")
	h, _ := attrs.Float("height")
	run := model.Run{
		Kind:     model.RunImage,
		Src:      attrs.String("src"),
		WidthPx:  w,
		HeightPx: h,
	}
	if span, ok := n.Span(); ok {
		run.Span = model.Span{Start: span.Start, End: span.End}
	}
	return run
}

// convertImage converts a block-level image node.
func convertImage(n doc.Node, ctx *Context) *model.ImageBlock {
	attrs := n.Attrs()
	w, _ := attrs.Float("width")
	h, _ := attrs.Float("height")
	return &model.ImageBlock{
		BlockID:  ctx.IDs.Next("image"),
		Src:      attrs.String("src"),
		WidthPx:  w,
		HeightPx: h,
		Anchor:   parseAnchor(attrs.Sub("anchor")),
		Wrap:     parseWrap(attrs.Sub("wrap")),
	}
}

// convertDrawing converts a drawing, shape, or vector node.
func convertDrawing(n doc.Node, ctx *Context) *model.DrawingBlock {
	attrs := n.Attrs()
	w, _ := attrs.Float("width")
	h, _ := attrs.Float("height")
	return &model.DrawingBlock{
		BlockID:     ctx.IDs.Next("drawing"),
		DrawingKind: attrs.String("drawingKind"),
		WidthPx:     w,
		HeightPx:    h,
		Anchor:      parseAnchor(attrs.Sub("anchor")),
		Wrap:        parseWrap(attrs.Sub("wrap")),
	}
}

// parseAnchor extracts floating-object anchor attributes.
func parseAnchor(a doc.Attrs) *model.Anchor {
	if a == nil {
		return nil
	}
	anchor := &model.Anchor{
		IsAnchored:    true,
		RelativeFromH: a.String("relativeFromH"),
		RelativeFromV: a.String("relativeFromV"),
		BehindDoc:     a.Bool("behindDoc"),
	}
	if v, ok := a.Float("offsetX"); ok {
		anchor.OffsetXPx = v
	}
	if v, ok := a.Float("offsetY"); ok {
		anchor.OffsetYPx = v
	}
	if z, ok := a.Int("zIndex"); ok {
		anchor.ZIndex = &z
	}
	if z, ok := a.Int("relativeHeight"); ok {
		anchor.OriginalZ = z
	}
	return anchor
}

// parseWrap normalizes the wrap-type attribute. Classification between
// inline and block must happen before this point; normalization folds
// unknown types to None.
func parseWrap(a doc.Attrs) *model.Wrap {
	if a == nil {
		return nil
	}
	w := &model.Wrap{Type: parseWrapType(a.String("type"))}
	if v, ok := a.Float("distLeft"); ok {
		w.LeftPx = v
	}
	if v, ok := a.Float("distTop"); ok {
		w.TopPx = v
	}
	if v, ok := a.Float("distRight"); ok {
		w.RightPx = v
	}
	if v, ok := a.Float("distBottom"); ok {
		w.BottomPx = v
	}
	return w
}

func parseWrapType(s string) model.WrapType {
	switch s {
	case "Inline":
		return model.WrapInline
	case "Square":
		return model.WrapSquare
	case "Tight":
		return model.WrapTight
	case "Through":
		return model.WrapThrough
	case "TopAndBottom":
		return model.WrapTopAndBottom
	default:
		return model.WrapNone
	}
}
