package render

import "github.com/tsawler/folio/model"

// LineRenderer supplies the presentational node for one measured line of
// a flow paragraph. Hosts inject their own; the core never builds text
// primitives itself.
type LineRenderer interface {
	RenderLine(p *model.ParagraphBlock, line model.LineMeasure, ctx *Context, lineIndex int, isLast bool) *Node
}

// DrawingRenderer supplies the presentational content of a drawing
// block.
type DrawingRenderer interface {
	RenderDrawing(d *model.DrawingBlock, ctx *Context) *Node
}

// Context carries the injected capabilities and measures for one render
// pass.
type Context struct {
	Measures *model.MeasureSet
	Lines    LineRenderer
	Drawings DrawingRenderer
	Config   model.LayoutConfig

	// warnings accumulates degradations hit while rendering, such as a
	// partial-row overwrite inside an embedded table.
	warnings *[]model.Warning
}

// NewContext returns a render context with the built-in fallback
// renderers, which emit plain line/drawing nodes carrying the block's
// text. Hosts replace them for real output.
func NewContext(m *model.MeasureSet) *Context {
	return &Context{
		Measures: m,
		Lines:    fallbackLineRenderer{},
		Drawings: fallbackDrawingRenderer{},
		Config:   model.DefaultLayoutConfig(),
		warnings: new([]model.Warning),
	}
}

// Warn records a non-fatal rendering problem.
func (ctx *Context) Warn(warnings ...model.Warning) {
	if ctx.warnings == nil {
		ctx.warnings = new([]model.Warning)
	}
	*ctx.warnings = append(*ctx.warnings, warnings...)
}

// Warnings returns the warnings accumulated so far.
func (ctx *Context) Warnings() []model.Warning {
	if ctx.warnings == nil {
		return nil
	}
	return *ctx.warnings
}

type fallbackLineRenderer struct{}

func (fallbackLineRenderer) RenderLine(p *model.ParagraphBlock, line model.LineMeasure, _ *Context, lineIndex int, _ bool) *Node {
	n := &Node{
		Kind:    NodeLine,
		BlockID: p.BlockID,
		BBox:    model.NewBBox(0, 0, line.Width, line.Height),
	}
	if lineIndex == 0 {
		n.Text = p.Text()
	}
	if len(p.Runs) > 0 {
		n.Style.FontFamily = p.Runs[0].Style.FontFamily
		n.Style.FontSizePx = p.Runs[0].Style.FontSizePx
		n.Style.Color = p.Runs[0].Style.Color
	}
	return n
}

type fallbackDrawingRenderer struct{}

func (fallbackDrawingRenderer) RenderDrawing(d *model.DrawingBlock, _ *Context) *Node {
	return &Node{
		Kind:    NodeDrawing,
		BlockID: d.BlockID,
		BBox:    model.NewBBox(0, 0, d.WidthPx, d.HeightPx),
	}
}
