package render

import "github.com/tsawler/folio/model"

// NodeKind discriminates presentational node types.
type NodeKind int

const (
	NodeTable NodeKind = iota
	NodeRow
	NodeCell
	NodeCellContent
	NodeLine
	NodeMarker
	NodeImage
	NodeDrawing
)

// String returns the node kind name.
func (nk NodeKind) String() string {
	switch nk {
	case NodeTable:
		return "table"
	case NodeRow:
		return "row"
	case NodeCell:
		return "cell"
	case NodeCellContent:
		return "cellContent"
	case NodeLine:
		return "line"
	case NodeMarker:
		return "marker"
	case NodeImage:
		return "image"
	case NodeDrawing:
		return "drawing"
	default:
		return "unknown"
	}
}

// NodeStyle is the presentational styling carried by a node. Only the
// properties layout decides are here; paint-level detail stays with the
// host's renderer callbacks.
type NodeStyle struct {
	Background    string
	Color         string
	FontFamily    string
	FontSizePx    float64
	Borders       model.TableBorders
	PaddingLeftPx float64
	TextIndentPx  float64
}

// Node is one positioned presentational node. BBox is relative to the
// parent node's origin; Z orders siblings (higher paints later).
type Node struct {
	Kind     NodeKind
	BlockID  string
	BBox     model.BBox
	Z        int
	Style    NodeStyle
	Text     string
	Src      string
	Children []*Node
}

// Append adds children.
func (n *Node) Append(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// Walk visits the node and its descendants depth-first.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}
