package flow

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/folio/doc"
	"github.com/tsawler/folio/model"
)

func cellNode(t *testing.T, attrs doc.Attrs, text string) doc.Node {
	t.Helper()
	return doc.New(doc.KindTableCell, attrs, doc.Paragraph(nil, doc.Text(text)))
}

func rowNode(t *testing.T, cells ...doc.Node) doc.Node {
	t.Helper()
	return doc.New(doc.KindTableRow, nil, cells...)
}

func tableNode(t *testing.T, attrs doc.Attrs, rows ...doc.Node) doc.Node {
	t.Helper()
	return doc.New(doc.KindTable, attrs, rows...)
}

func TestTableToBlock_Basic(t *testing.T) {
	ctx := NewContext(nil)
	n := tableNode(t, nil,
		rowNode(t, cellNode(t, nil, "a"), cellNode(t, nil, "b")),
		rowNode(t, cellNode(t, nil, "c"), cellNode(t, nil, "d")),
	)

	tbl := TableToBlock(n, ctx)
	if tbl == nil {
		t.Fatal("TableToBlock returned nil")
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(tbl.Rows))
	}
	if got := tbl.ColCount(); got != 2 {
		t.Errorf("ColCount = %d, want 2", got)
	}
}

func TestTableToBlock_NoRowsIsNil(t *testing.T) {
	ctx := NewContext(nil)
	if tbl := TableToBlock(tableNode(t, nil), ctx); tbl != nil {
		t.Errorf("rowless table = %+v, want nil", tbl)
	}
}

func TestTableToBlock_DropsEmptyRowsAndCells(t *testing.T) {
	ctx := NewContext(nil)
	n := tableNode(t, nil,
		rowNode(t), // zero cells
		rowNode(t,
			doc.New(doc.KindTableCell, nil), // zero blocks
			cellNode(t, nil, "kept"),
		),
	)

	tbl := TableToBlock(n, ctx)
	if tbl == nil {
		t.Fatal("table dropped entirely")
	}
	if len(tbl.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(tbl.Rows))
	}
	if len(tbl.Rows[0].Cells) != 1 {
		t.Fatalf("cells = %d, want 1", len(tbl.Rows[0].Cells))
	}

	var codes []model.WarningCode
	for _, w := range ctx.Warnings() {
		codes = append(codes, w.Code)
	}
	want := []model.WarningCode{model.WarnRowDropped, model.WarnCellDropped}
	for _, c := range want {
		found := false
		for _, got := range codes {
			if got == c {
				found = true
			}
		}
		if !found {
			t.Errorf("warning %v not emitted (got %v)", c, codes)
		}
	}
}

func TestResolveColumnWidths_PriorityCascade(t *testing.T) {
	ctx := NewContext(nil)

	tests := []struct {
		name      string
		attrs     doc.Attrs
		cellAttrs doc.Attrs
		want      []float64
	}{
		{
			name: "user-edited grid wins over everything",
			attrs: doc.Attrs{
				"columnWidths": []float64{1440, 1440},
				"grid":         []float64{720, 720},
			},
			cellAttrs: doc.Attrs{"colwidth": []float64{360}},
			want:      []float64{model.TwipsToPx(1440), model.TwipsToPx(1440)},
		},
		{
			name: "original grid wins over cell widths",
			attrs: doc.Attrs{
				"grid": []float64{720, 720},
			},
			cellAttrs: doc.Attrs{"colwidth": []float64{360}},
			want:      []float64{model.TwipsToPx(720), model.TwipsToPx(720)},
		},
		{
			name:      "first-row cell widths as last resort",
			attrs:     nil,
			cellAttrs: doc.Attrs{"colwidth": []float64{360}},
			want:      []float64{model.TwipsToPx(360), model.TwipsToPx(360)},
		},
		{
			name:      "no source means auto",
			attrs:     nil,
			cellAttrs: nil,
			want:      nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tableNode(t, tt.attrs,
				rowNode(t,
					cellNode(t, tt.cellAttrs, "a"),
					cellNode(t, tt.cellAttrs, "b"),
				),
			)
			tbl := TableToBlock(n, ctx)
			if tbl == nil {
				t.Fatal("nil table")
			}
			if diff := cmp.Diff(tt.want, tbl.ColumnWidths); diff != "" {
				t.Errorf("ColumnWidths mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveColumnWidths_MissingFirstRowWidthVoidsSource(t *testing.T) {
	ctx := NewContext(nil)
	n := tableNode(t, nil,
		rowNode(t,
			cellNode(t, doc.Attrs{"colwidth": []float64{360}}, "a"),
			cellNode(t, nil, "b"), // no width: the whole source is void
		),
	)
	tbl := TableToBlock(n, ctx)
	if tbl.ColumnWidths != nil {
		t.Errorf("ColumnWidths = %v, want nil (auto)", tbl.ColumnWidths)
	}
}

func TestConvertCell_Formatting(t *testing.T) {
	ctx := NewContext(nil)
	n := tableNode(t, nil, rowNode(t,
		cellNode(t, doc.Attrs{
			"rowspan":       2,
			"colspan":       3,
			"cellWidth":     1440.0,
			"verticalAlign": "center",
			"background":    "D9D9D9",
			"padding":       doc.Attrs{"top": 0.0, "left": 240.0},
		}, "x"),
	))

	tbl := TableToBlock(n, ctx)
	cell := tbl.Rows[0].Cells[0]
	if cell.RowSpan != 2 || cell.ColSpan != 3 {
		t.Errorf("spans = %d,%d, want 2,3", cell.RowSpan, cell.ColSpan)
	}
	if want := model.TwipsToPx(1440); cell.Attrs.WidthPx != want {
		t.Errorf("WidthPx = %v, want %v", cell.Attrs.WidthPx, want)
	}
	if cell.Attrs.VerticalAlign != model.VAlignCenter {
		t.Errorf("VerticalAlign = %v, want center", cell.Attrs.VerticalAlign)
	}
	if cell.Attrs.Background != "D9D9D9" {
		t.Errorf("Background = %q", cell.Attrs.Background)
	}
	if cell.Attrs.Padding.TopPx != 0 {
		t.Errorf("explicit zero top padding = %v, want 0", cell.Attrs.Padding.TopPx)
	}
	if want := model.TwipsToPx(240); cell.Attrs.Padding.LeftPx != want {
		t.Errorf("LeftPx = %v, want %v", cell.Attrs.Padding.LeftPx, want)
	}
	def := model.DefaultLayoutConfig().DefaultCellPaddingPx
	if cell.Attrs.Padding.RightPx != def {
		t.Errorf("absent right padding = %v, want default %v", cell.Attrs.Padding.RightPx, def)
	}
}

func TestConvertCell_BackgroundThreadsToAutoColor(t *testing.T) {
	ctx := NewContext(nil)
	n := tableNode(t, nil, rowNode(t,
		cellNode(t, doc.Attrs{"background": "000000"}, "light text"),
	))

	tbl := TableToBlock(n, ctx)
	pb := tbl.Rows[0].Cells[0].Blocks[0].(*model.ParagraphBlock)
	if pb.Runs[0].Style.Color != "FFFFFF" {
		t.Errorf("auto color inside dark cell = %q, want FFFFFF", pb.Runs[0].Style.Color)
	}
}

func TestParseBorders_EighthPoints(t *testing.T) {
	ctx := NewContext(nil)
	n := tableNode(t, doc.Attrs{
		"borders": doc.Attrs{
			"top": doc.Attrs{"style": "single", "size": 8.0, "color": "FF0000"},
		},
	}, rowNode(t, cellNode(t, nil, "x")))

	tbl := TableToBlock(n, ctx)
	top := tbl.Attrs.Borders.Top
	if !top.IsSet() {
		t.Fatal("top border not set")
	}
	// 8 eighth-points = 1pt = 96/72 px.
	if want := 1.0 * model.PxPerPoint; top.WidthPx != want {
		t.Errorf("WidthPx = %v, want %v", top.WidthPx, want)
	}
	if top.Color != "FF0000" {
		t.Errorf("Color = %q", top.Color)
	}
}

func TestTableToBlock_NestedTableAndSDT(t *testing.T) {
	ctx := NewContext(nil)
	inner := tableNode(t, nil, rowNode(t, cellNode(t, nil, "inner")))
	n := tableNode(t, nil, rowNode(t,
		doc.New(doc.KindTableCell, nil,
			doc.New(doc.KindStructuredContent, doc.Attrs{"tag": "payload"},
				doc.Paragraph(nil, doc.Text("wrapped")),
				inner,
			),
		),
	))

	tbl := TableToBlock(n, ctx)
	blocks := tbl.Rows[0].Cells[0].Blocks
	if len(blocks) != 2 {
		t.Fatalf("cell blocks = %d, want 2", len(blocks))
	}
	pb, ok := blocks[0].(*model.ParagraphBlock)
	if !ok {
		t.Fatalf("first block is %T", blocks[0])
	}
	if pb.Attrs.SDT == nil || pb.Attrs.SDT.Tag != "payload" {
		t.Errorf("SDT metadata not inherited: %+v", pb.Attrs.SDT)
	}
	if _, ok := blocks[1].(*model.TableBlock); !ok {
		t.Errorf("second block is %T, want nested table", blocks[1])
	}
}

func TestConvertRow_HeightRules(t *testing.T) {
	ctx := NewContext(nil)
	n := tableNode(t, nil,
		doc.New(doc.KindTableRow, doc.Attrs{
			"rowHeight":     600.0,
			"rowHeightRule": "exact",
			"cantSplit":     true,
			"isHeader":      true,
		}, cellNode(t, nil, "x")),
	)

	tbl := TableToBlock(n, ctx)
	row := tbl.Rows[0]
	if want := model.TwipsToPx(600); row.Attrs.Height.ValuePx != want {
		t.Errorf("ValuePx = %v, want %v", row.Attrs.Height.ValuePx, want)
	}
	if row.Attrs.Height.Rule != model.RowHeightExact {
		t.Errorf("Rule = %v, want exact", row.Attrs.Height.Rule)
	}
	if !row.Attrs.CantSplit || !row.Attrs.IsHeader {
		t.Errorf("flags = %+v", row.Attrs)
	}
}
