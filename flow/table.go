package flow

import (
	"github.com/tsawler/folio/doc"
	"github.com/tsawler/folio/model"
)

// TableToBlock converts a table node into a structural TableBlock.
// Returns nil for a table with no rows after parsing. Rows parse
// independently; a row with zero valid cells is dropped. Column widths
// are resolved once per table here, never per row.
func TableToBlock(n doc.Node, ctx *Context) *model.TableBlock {
	attrs := n.Attrs()

	tbl := &model.TableBlock{
		BlockID: ctx.IDs.Next("table"),
		Attrs:   parseTableAttrs(attrs),
		Anchor:  parseAnchor(attrs.Sub("anchor")),
		Wrap:    parseWrap(attrs.Sub("wrap")),
	}

	for _, child := range n.Children() {
		if child.Kind() != doc.KindTableRow {
			continue
		}
		row := convertRow(child, ctx)
		if row == nil {
			ctx.Warn(model.WarnRowDropped, "table row parsed to zero valid cells", tbl.BlockID)
			continue
		}
		tbl.Rows = append(tbl.Rows, *row)
	}

	if len(tbl.Rows) == 0 {
		return nil
	}

	tbl.ColumnWidths = resolveColumnWidths(attrs, n)
	return tbl
}

// resolveColumnWidths applies the strict priority cascade: (1) the
// user-edited grid, (2) the original OOXML grid, (3) per-cell colwidth
// attributes from the first row, (4) nil for auto/content-driven sizing.
// Exactly one source is authoritative; sources are never blended.
func resolveColumnWidths(attrs doc.Attrs, n doc.Node) []float64 {
	if widths := twipsList(attrs["columnWidths"]); len(widths) > 0 {
		return widths
	}
	if widths := twipsList(attrs["grid"]); len(widths) > 0 {
		return widths
	}
	// First-row cell widths. Spanned cells may carry one width per
	// spanned column.
	var widths []float64
	for _, rowNode := range n.Children() {
		if rowNode.Kind() != doc.KindTableRow {
			continue
		}
		for _, cellNode := range rowNode.Children() {
			if cellNode.Kind() != doc.KindTableCell {
				continue
			}
			cw := twipsList(cellNode.Attrs()["colwidth"])
			if len(cw) == 0 {
				return nil // any first-row cell without a width voids the source
			}
			widths = append(widths, cw...)
		}
		break
	}
	return widths
}

// twipsList converts a []float64/[]any attribute of twip values to a
// pixel slice. Non-numeric entries void the whole list.
func twipsList(v any) []float64 {
	switch vals := v.(type) {
	case []float64:
		out := make([]float64, len(vals))
		for i, t := range vals {
			out[i] = model.TwipsToPx(t)
		}
		return out
	case []any:
		out := make([]float64, 0, len(vals))
		for _, item := range vals {
			switch t := item.(type) {
			case float64:
				out = append(out, model.TwipsToPx(t))
			case int:
				out = append(out, model.TwipsToPx(float64(t)))
			default:
				return nil
			}
		}
		return out
	}
	return nil
}

// parseTableAttrs extracts table-level formatting.
func parseTableAttrs(attrs doc.Attrs) model.TableAttrs {
	ta := model.TableAttrs{
		Borders:       parseBorders(attrs.Sub("borders")),
		Justification: attrs.String("justification"),
	}
	if v, ok := attrs.Float("cellSpacing"); ok {
		ta.CellSpacingPx = model.TwipsToPx(v)
	}
	if v, ok := attrs.Float("tableWidth"); ok {
		ta.TableWidthPx = model.TwipsToPx(v)
	}
	if v, ok := attrs.Float("tableIndent"); ok {
		ta.TableIndentPx = model.TwipsToPx(v)
	}
	if attrs.String("layout") == "fixed" {
		ta.Layout = model.TableLayoutFixed
	}
	return ta
}

// parseBorders extracts the six border edges. Border sizes arrive in
// eighth-points, the OOXML w:sz unit.
func parseBorders(a doc.Attrs) model.TableBorders {
	if a == nil {
		return model.TableBorders{}
	}
	return model.TableBorders{
		Top:     parseBorder(a.Sub("top")),
		Bottom:  parseBorder(a.Sub("bottom")),
		Left:    parseBorder(a.Sub("left")),
		Right:   parseBorder(a.Sub("right")),
		InsideH: parseBorder(a.Sub("insideH")),
		InsideV: parseBorder(a.Sub("insideV")),
	}
}

func parseBorder(a doc.Attrs) model.Border {
	if a == nil {
		return model.Border{}
	}
	b := model.Border{
		Style: a.String("style"),
		Color: a.String("color"),
	}
	if sz, ok := a.Float("size"); ok {
		b.WidthPx = sz / 8 * model.PxPerPoint
	} else if b.IsSet() {
		b.WidthPx = model.DefaultLayoutConfig().DefaultBorderWidthPx
	}
	return b
}

// convertRow converts one table row; nil when no valid cells survive.
func convertRow(n doc.Node, ctx *Context) *model.TableRow {
	attrs := n.Attrs()
	row := &model.TableRow{
		RowID: ctx.IDs.Next("row"),
		Attrs: model.RowAttrs{
			IsHeader:  attrs.Bool("isHeader"),
			CantSplit: attrs.Bool("cantSplit"),
		},
	}
	if v, ok := attrs.Float("rowHeight"); ok {
		row.Attrs.Height.ValuePx = model.TwipsToPx(v)
		switch attrs.String("rowHeightRule") {
		case "exact":
			row.Attrs.Height.Rule = model.RowHeightExact
		case "atLeast":
			row.Attrs.Height.Rule = model.RowHeightAtLeast
		}
	}

	for _, child := range n.Children() {
		if child.Kind() != doc.KindTableCell {
			continue
		}
		cell := convertCell(child, ctx)
		if cell == nil {
			ctx.Warn(model.WarnCellDropped, "cell had no convertible child blocks", row.RowID)
			continue
		}
		row.Cells = append(row.Cells, *cell)
	}

	if len(row.Cells) == 0 {
		return nil
	}
	return row
}

// convertCell converts one table cell, recursing into the paragraph
// converter for paragraph children and into the table converter for
// nested tables. Returns nil for a cell with zero convertible children.
func convertCell(n doc.Node, ctx *Context) *model.TableCell {
	attrs := n.Attrs()

	cell := &model.TableCell{
		CellID:  ctx.IDs.Next("cell"),
		RowSpan: 1,
		ColSpan: 1,
		Attrs: model.CellAttrs{
			Borders: parseBorders(attrs.Sub("borders")),
			Padding: parseCellPadding(attrs.Sub("padding"), ctx.Config),
		},
	}
	if v, ok := attrs.Int("rowspan"); ok && v > 0 {
		cell.RowSpan = v
	}
	if v, ok := attrs.Int("colspan"); ok && v > 0 {
		cell.ColSpan = v
	}
	if v, ok := attrs.Float("cellWidth"); ok {
		cell.Attrs.WidthPx = model.TwipsToPx(v)
	}
	switch attrs.String("verticalAlign") {
	case "center":
		cell.Attrs.VerticalAlign = model.VAlignCenter
	case "bottom":
		cell.Attrs.VerticalAlign = model.VAlignBottom
	}

	// Explicit inline background wins over the style cascade's shading
	// fill. Either way the result threads into the nested conversion so
	// automatic text color resolves against the correct surface.
	background := attrs.String("background")
	if background == "" || background == "auto" {
		background = ctx.Styles.Resolve(attrs.String("styleId")).ShadingFill
	}
	cell.Attrs.Background = background

	cellCtx := ctx.child(background, nil)
	cell.Blocks = convertCellChildren(n.Children(), cellCtx)

	if len(cell.Blocks) == 0 {
		return nil
	}
	return cell
}

// convertCellChildren converts a cell's (or structured-content
// wrapper's) children into flow blocks. Unrecognized kinds are skipped.
func convertCellChildren(children []doc.Node, ctx *Context) []model.Block {
	var blocks []model.Block
	for _, child := range children {
		switch child.Kind() {
		case doc.KindParagraph:
			blocks = append(blocks, ParagraphToBlocks(child, ctx)...)
		case doc.KindTable:
			if nested := TableToBlock(child, ctx); nested != nil {
				blocks = append(blocks, nested)
			}
		case doc.KindStructuredContent:
			// Tables inside structured-content wrappers also inherit the
			// SDT container metadata.
			sdt := parseSDT(child.Attrs())
			blocks = append(blocks, convertCellChildren(child.Children(), ctx.child("", sdt))...)
		case doc.KindImage:
			blocks = append(blocks, convertImage(child, ctx))
		case doc.KindDrawing, doc.KindShape:
			blocks = append(blocks, convertDrawing(child, ctx))
		}
	}
	return blocks
}

// parseSDT extracts structured-content metadata.
func parseSDT(attrs doc.Attrs) *model.SDTInfo {
	sdt := &model.SDTInfo{
		ID:    attrs.String("id"),
		Tag:   attrs.String("tag"),
		Alias: attrs.String("alias"),
	}
	if sdt.ID == "" && sdt.Tag == "" && sdt.Alias == "" {
		return nil
	}
	return sdt
}

// parseCellPadding reads per-side cell padding in twips, falling back to
// the configured default for absent sides.
func parseCellPadding(a doc.Attrs, cfg model.LayoutConfig) model.CellPadding {
	p := model.CellPadding{
		TopPx:    cfg.DefaultCellPaddingPx,
		RightPx:  cfg.DefaultCellPaddingPx,
		BottomPx: cfg.DefaultCellPaddingPx,
		LeftPx:   cfg.DefaultCellPaddingPx,
	}
	if a == nil {
		return p
	}
	if v, ok := a.Float("top"); ok {
		p.TopPx = model.TwipsToPx(v)
	}
	if v, ok := a.Float("right"); ok {
		p.RightPx = model.TwipsToPx(v)
	}
	if v, ok := a.Float("bottom"); ok {
		p.BottomPx = model.TwipsToPx(v)
	}
	if v, ok := a.Float("left"); ok {
		p.LeftPx = model.TwipsToPx(v)
	}
	return p
}
