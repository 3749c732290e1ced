package doc

import "testing"

func TestAssignSpans(t *testing.T) {
	// <doc><p>"ab"</p><p>"c"</p></doc>
	// positions: doc opens at 0, p opens at 1, "ab" covers [2,4),
	// p closes at 4, second p opens at 5, "c" covers [6,7), closes 7,
	// doc closes 8.
	first := Text("ab")
	second := Text("c")
	root := Document(nil, Paragraph(nil, first), Paragraph(nil, second))
	AssignSpans(root)

	sp, ok := first.Span()
	if !ok || sp.Start != 2 || sp.End != 4 {
		t.Errorf(`"ab" span = %+v, ok %v; want [2,4)`, sp, ok)
	}
	sp, ok = second.Span()
	if !ok || sp.Start != 6 || sp.End != 7 {
		t.Errorf(`"c" span = %+v, ok %v; want [6,7)`, sp, ok)
	}
	sp, ok = root.Span()
	if !ok || sp.Start != 0 || sp.End != 8 {
		t.Errorf("root span = %+v, ok %v; want [0,8)", sp, ok)
	}
}

func TestAssignSpans_RuneCounting(t *testing.T) {
	txt := Text("é漢") // 2 runes, more bytes
	root := Document(nil, Paragraph(nil, txt))
	AssignSpans(root)

	sp, _ := txt.Span()
	if sp.End-sp.Start != 2 {
		t.Errorf("span width = %d, want 2 runes", sp.End-sp.Start)
	}
}

func TestParagraphs(t *testing.T) {
	p1 := Paragraph(nil, Text("a"))
	p2 := Paragraph(nil, Text("b"))
	tbl := New(KindTable, nil)
	grouped := New(KindIndex, nil, p2, tbl)

	got := Paragraphs(Document(nil, p1, grouped))
	if len(got) != 3 {
		t.Fatalf("paragraphs = %d, want 3 (index container flattened)", len(got))
	}
	if got[0] != p1 || got[1] != p2 || got[2] != tbl {
		t.Error("flattening changed document order")
	}
}
