package doc

// treeNode is the concrete Node used by builders and tests.
type treeNode struct {
	kind     Kind
	attrs    Attrs
	marks    []Mark
	children []Node
	text     string
	span     Span
	hasSpan  bool
}

func (n *treeNode) Kind() Kind       { return n.kind }
func (n *treeNode) Attrs() Attrs     { return n.attrs }
func (n *treeNode) Marks() []Mark    { return n.marks }
func (n *treeNode) Children() []Node { return n.children }
func (n *treeNode) Text() string     { return n.text }
func (n *treeNode) Span() (Span, bool) {
	return n.span, n.hasSpan
}

// New builds a node of the given kind.
func New(kind Kind, attrs Attrs, children ...Node) Node {
	return &treeNode{kind: kind, attrs: attrs, children: children}
}

// Text builds a text node with the given marks.
func Text(text string, marks ...Mark) Node {
	return &treeNode{kind: KindText, text: text, marks: marks}
}

// Paragraph builds a paragraph node.
func Paragraph(attrs Attrs, children ...Node) Node {
	return New(KindParagraph, attrs, children...)
}

// Document builds a document root node.
func Document(attrs Attrs, children ...Node) Node {
	return New(KindDocument, attrs, children...)
}

// AssignSpans walks the tree assigning source positions the way a
// rich-text editor does: each non-leaf node costs one position to open
// and one to close, text nodes consume one position per rune. A non-leaf
// span ends at its closing boundary's position, so the position after
// the span belongs to the next sibling. Hosts with their own position
// maps skip this; builders call it so converted runs carry contiguous
// spans for merge tests and caret placement.
func AssignSpans(root Node) {
	assignSpans(root, 0)
}

func assignSpans(n Node, pos int) int {
	tn, ok := n.(*treeNode)
	if !ok {
		return pos
	}
	start := pos
	if tn.kind == KindText {
		pos += len([]rune(tn.text))
		tn.span = Span{Start: start, End: pos}
		tn.hasSpan = true
		return pos
	}
	pos++ // opening boundary
	for _, child := range tn.children {
		pos = assignSpans(child, pos)
	}
	tn.span = Span{Start: start, End: pos}
	tn.hasSpan = true
	pos++ // closing boundary
	return pos
}

// Paragraphs flattens the document body into its paragraph-and-table
// sequence, descending one level into generic index containers, the way
// the section analyzer and facade walk a document.
func Paragraphs(root Node) []Node {
	var out []Node
	for _, child := range root.Children() {
		if child.Kind() == KindIndex {
			out = append(out, child.Children()...)
			continue
		}
		out = append(out, child)
	}
	return out
}
