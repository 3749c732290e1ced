package model

import "testing"

func TestBBoxEdges(t *testing.T) {
	b := NewBBox(10, 20, 30, 40)
	if b.Left() != 10 || b.Right() != 40 || b.Top() != 20 || b.Bottom() != 60 {
		t.Errorf("edges = %v/%v/%v/%v", b.Left(), b.Right(), b.Top(), b.Bottom())
	}
}

func TestBBoxIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b BBox
		want bool
	}{
		{"overlapping", NewBBox(0, 0, 10, 10), NewBBox(5, 5, 10, 10), true},
		{"touching edges only", NewBBox(0, 0, 10, 10), NewBBox(10, 0, 10, 10), false},
		{"disjoint", NewBBox(0, 0, 10, 10), NewBBox(20, 20, 5, 5), false},
		{"contained", NewBBox(0, 0, 10, 10), NewBBox(2, 2, 3, 3), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects (reversed) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBBoxIntersectionAndUnion(t *testing.T) {
	a := NewBBox(0, 0, 10, 10)
	b := NewBBox(5, 5, 10, 10)

	got := a.Intersection(b)
	if got != NewBBox(5, 5, 5, 5) {
		t.Errorf("Intersection = %+v", got)
	}
	if a.Intersection(NewBBox(50, 50, 1, 1)) != (BBox{}) {
		t.Error("disjoint intersection not empty")
	}

	u := a.Union(b)
	if u != NewBBox(0, 0, 15, 15) {
		t.Errorf("Union = %+v", u)
	}
}

func TestBBoxExpand(t *testing.T) {
	got := NewBBox(10, 10, 20, 20).Expand(1, 2, 3, 4)
	if got != NewBBox(9, 8, 24, 26) {
		t.Errorf("Expand = %+v", got)
	}
}

func TestMeasureSetBlockHeight(t *testing.T) {
	set := NewMeasureSet()
	set.SetParagraph("p", &ParagraphMeasure{Lines: []LineMeasure{{Height: 10}, {Height: 14}}})
	set.SetTable("t", &TableMeasure{Rows: []RowMeasure{{Height: 30}, {Height: 20}}})
	set.SetImage("i", &ImageMeasure{Width: 5, Height: 7})

	tests := []struct {
		name  string
		block Block
		want  float64
	}{
		{"paragraph sums lines", &ParagraphBlock{BlockID: "p"}, 24},
		{"table sums rows", &TableBlock{BlockID: "t"}, 50},
		{"image measure", &ImageBlock{BlockID: "i"}, 7},
		{"drawing shares the image table", &DrawingBlock{BlockID: "i"}, 7},
		{"unmeasured is zero", &ParagraphBlock{BlockID: "missing"}, 0},
		{"break has no height", &PageBreakBlock{BlockID: "b"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := set.BlockHeight(tt.block); got != tt.want {
				t.Errorf("BlockHeight = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnitConversions(t *testing.T) {
	if got := TwipsToPx(1440); got != 96 { // one inch
		t.Errorf("TwipsToPx(1440) = %v, want 96", got)
	}
	if got := HalfPointsToPx(24); got != 16 { // 12pt
		t.Errorf("HalfPointsToPx(24) = %v, want 16", got)
	}
}

func TestFormatWarnings(t *testing.T) {
	if got := FormatWarnings(nil); got != "" {
		t.Errorf("empty = %q", got)
	}
	got := FormatWarnings([]Warning{
		{Code: WarnRowDropped, Message: "no cells", Context: "row-3"},
		{Code: WarnStyleUnresolved, Message: "missing"},
	})
	want := "row-dropped: no cells (row-3); style-unresolved: missing"
	if got != want {
		t.Errorf("FormatWarnings = %q, want %q", got, want)
	}
}
