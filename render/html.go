package render

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/folio/model"
)

// WriteHTML serializes a presentational tree as absolutely-positioned
// HTML. Every node becomes an element with inline styles carrying its
// box geometry, so the output reproduces the computed layout without a
// stylesheet.
func WriteHTML(w io.Writer, n *Node) error {
	if n == nil {
		return nil
	}
	return html.Render(w, htmlNode(n))
}

// HTMLString is a convenience wrapper around WriteHTML.
func HTMLString(n *Node) (string, error) {
	var sb strings.Builder
	if err := WriteHTML(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func htmlNode(n *Node) *html.Node {
	el := &html.Node{
		Type: html.ElementNode,
		Data: tagFor(n.Kind),
	}
	if cls := classFor(n.Kind); cls != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "class", Val: cls})
	}
	if n.BlockID != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "data-block-id", Val: n.BlockID})
	}
	if n.Kind == NodeImage && n.Src != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "src", Val: n.Src})
	}
	if style := inlineStyle(n); style != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "style", Val: style})
	}

	if n.Text != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	}
	for _, c := range n.Children {
		el.AppendChild(htmlNode(c))
	}
	return el
}

func tagFor(k NodeKind) string {
	switch k {
	case NodeImage:
		return "img"
	case NodeLine, NodeMarker:
		return "span"
	default:
		return "div"
	}
}

func classFor(k NodeKind) string {
	switch k {
	case NodeTable:
		return "tbl"
	case NodeRow:
		return "tbl-row"
	case NodeCell:
		return "tbl-cell"
	case NodeCellContent:
		return "tbl-cell-content"
	case NodeLine:
		return "line"
	case NodeMarker:
		return "list-marker"
	case NodeDrawing:
		return "drawing"
	default:
		return ""
	}
}

// inlineStyle flattens the node's geometry and visual style into a CSS
// declaration list. Zero-valued properties are omitted to keep output
// stable and diffable.
func inlineStyle(n *Node) string {
	var parts []string
	add := func(prop string, val string) {
		parts = append(parts, prop+":"+val)
	}
	px := func(v float64) string {
		return strings.TrimSuffix(fmt.Sprintf("%.2f", v), ".00") + "px"
	}

	add("position", "absolute")
	add("left", px(n.BBox.X))
	add("top", px(n.BBox.Y))
	if n.BBox.Width > 0 {
		add("width", px(n.BBox.Width))
	}
	if n.BBox.Height > 0 {
		add("height", px(n.BBox.Height))
	}
	if n.Z != 0 {
		add("z-index", fmt.Sprintf("%d", n.Z))
	}

	s := n.Style
	if s.Background != "" {
		add("background-color", cssColor(s.Background))
	}
	if s.Color != "" {
		add("color", cssColor(s.Color))
	}
	if s.FontFamily != "" {
		add("font-family", s.FontFamily)
	}
	if s.FontSizePx > 0 {
		add("font-size", px(s.FontSizePx))
	}
	if s.PaddingLeftPx != 0 {
		add("padding-left", px(s.PaddingLeftPx))
	}
	if s.TextIndentPx != 0 {
		add("text-indent", px(s.TextIndentPx))
	}
	if s.Borders.HasAny() {
		addBorderStyles(&parts, s.Borders, px)
	}
	return strings.Join(parts, ";")
}

func addBorderStyles(parts *[]string, b model.TableBorders, px func(float64) string) {
	edge := func(side string, e model.Border) {
		if !e.IsSet() {
			return
		}
		style := e.Style
		if style == "single" {
			style = "solid"
		}
		*parts = append(*parts, fmt.Sprintf("border-%s:%s %s %s", side, px(e.WidthPx), style, cssColor(e.Color)))
	}
	edge("top", b.Top)
	edge("right", b.Right)
	edge("bottom", b.Bottom)
	edge("left", b.Left)
}

// cssColor normalizes a six-digit hex color from document attributes
// into CSS form. Anything already prefixed or non-hex passes through.
func cssColor(c string) string {
	if len(c) == 6 && isHex(c) {
		return "#" + c
	}
	return c
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
