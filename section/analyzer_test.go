package section

import (
	"testing"

	"github.com/tsawler/folio/doc"
	"github.com/tsawler/folio/model"
)

func para(t *testing.T, attrs doc.Attrs) doc.Node {
	t.Helper()
	return doc.Paragraph(attrs, doc.Text("x"))
}

func document(t *testing.T, paragraphs ...doc.Node) doc.Node {
	t.Helper()
	return doc.Document(nil, paragraphs...)
}

func TestAnalyze_SingleTrailingMarker(t *testing.T) {
	// A document whose last paragraph carries the only section marker
	// yields exactly one range covering everything; nothing synthetic
	// is appended after it.
	root := document(t,
		para(t, nil),
		para(t, nil),
		para(t, doc.Attrs{"sectPr": doc.Attrs{"orientation": "landscape"}}),
	)

	ranges, warnings := Analyze(root, nil)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(ranges) != 1 {
		t.Fatalf("expected 1 range, got %d", len(ranges))
	}
	r := ranges[0]
	if r.StartParagraphIndex != 0 || r.EndParagraphIndex != 2 {
		t.Errorf("range covers [%d,%d], want [0,2]", r.StartParagraphIndex, r.EndParagraphIndex)
	}
	if r.Orientation != model.OrientationLandscape {
		t.Errorf("orientation = %v, want landscape", r.Orientation)
	}
}

func TestAnalyze_Contiguity(t *testing.T) {
	// Ranges must tile [0, totalParagraphs) with no gaps or overlaps,
	// whatever mix of markers the document carries.
	root := document(t,
		para(t, nil),
		para(t, doc.Attrs{"sectPr": doc.Attrs{"type": "nextPage"}}),
		para(t, nil),
		para(t, doc.Attrs{"sectPr": doc.Attrs{"orientation": "portrait"}}),
		para(t, nil),
		para(t, nil),
	)

	ranges, _ := Analyze(root, nil)
	if len(ranges) != 3 {
		t.Fatalf("expected 3 ranges, got %d", len(ranges))
	}
	next := 0
	for i, r := range ranges {
		if r.StartParagraphIndex != next {
			t.Errorf("range %d starts at %d, want %d", i, r.StartParagraphIndex, next)
		}
		if r.EndParagraphIndex < r.StartParagraphIndex {
			t.Errorf("range %d is inverted: [%d,%d]", i, r.StartParagraphIndex, r.EndParagraphIndex)
		}
		if r.SectionIndex != i {
			t.Errorf("range %d has SectionIndex %d", i, r.SectionIndex)
		}
		next = r.EndParagraphIndex + 1
	}
	if next != 6 {
		t.Errorf("ranges end at %d, want 6", next)
	}
}

func TestAnalyze_BodySectPrPreservesType(t *testing.T) {
	root := document(t,
		para(t, doc.Attrs{"sectPr": doc.Attrs{"type": "continuous"}}),
		para(t, nil),
	)
	body := doc.Attrs{"type": "nextPage", "orientation": "landscape"}

	ranges, _ := Analyze(root, body)
	if len(ranges) != 2 {
		t.Fatalf("expected 2 ranges, got %d", len(ranges))
	}
	final := ranges[1]
	if final.Type != model.SectionNextPage {
		t.Errorf("final range type = %v, want nextPage", final.Type)
	}
	if final.Orientation != model.OrientationLandscape {
		t.Errorf("final range orientation = %v, want landscape", final.Orientation)
	}
	if final.StartParagraphIndex != 1 || final.EndParagraphIndex != 1 {
		t.Errorf("final range covers [%d,%d], want [1,1]", final.StartParagraphIndex, final.EndParagraphIndex)
	}
}

func TestAnalyze_BodySectPrAtEndNotDuplicated(t *testing.T) {
	// When the marker on the final paragraph already closes the
	// document, the body sectPr must not add an empty trailing range.
	root := document(t,
		para(t, nil),
		para(t, doc.Attrs{"sectPr": doc.Attrs{"type": "nextPage"}}),
	)

	ranges, _ := Analyze(root, doc.Attrs{"type": "continuous"})
	if len(ranges) != 1 {
		t.Fatalf("expected 1 range, got %d", len(ranges))
	}
}

func TestAnalyze_SyntheticFinalRange(t *testing.T) {
	root := document(t,
		para(t, doc.Attrs{"sectPr": doc.Attrs{"orientation": "landscape"}}),
		para(t, nil),
		para(t, nil),
	)

	ranges, _ := Analyze(root, nil)
	if len(ranges) != 2 {
		t.Fatalf("expected 2 ranges, got %d", len(ranges))
	}
	final := ranges[1]
	if final.Type != model.SectionContinuous {
		t.Errorf("synthetic range type = %v, want continuous", final.Type)
	}
	if final.StartParagraphIndex != 1 || final.EndParagraphIndex != 2 {
		t.Errorf("synthetic range covers [%d,%d], want [1,2]", final.StartParagraphIndex, final.EndParagraphIndex)
	}
}

func TestAnalyze_MalformedSectPrSkipped(t *testing.T) {
	root := document(t,
		para(t, doc.Attrs{"sectPr": "not-a-map"}),
		para(t, doc.Attrs{"sectPr": doc.Attrs{"type": "nextPage"}}),
	)

	ranges, warnings := Analyze(root, nil)
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if warnings[0].Code != model.WarnSectionSkipped {
		t.Errorf("warning code = %v, want WarnSectionSkipped", warnings[0].Code)
	}
	if len(ranges) != 1 {
		t.Fatalf("expected 1 range, got %d", len(ranges))
	}
	if ranges[0].EndParagraphIndex != 1 {
		t.Errorf("range ends at %d, want 1", ranges[0].EndParagraphIndex)
	}
}

func TestAnalyze_EmptyMarkerIgnored(t *testing.T) {
	// A sectPr with no structural keys and no margins contributes
	// nothing when other markers exist.
	root := document(t,
		para(t, doc.Attrs{"sectPr": doc.Attrs{}}),
		para(t, doc.Attrs{"sectPr": doc.Attrs{"type": "nextPage"}}),
	)

	ranges, warnings := Analyze(root, nil)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(ranges) != 1 {
		t.Fatalf("expected 1 range, got %d", len(ranges))
	}
	if ranges[0].StartParagraphIndex != 0 || ranges[0].EndParagraphIndex != 1 {
		t.Errorf("range covers [%d,%d], want [0,1]", ranges[0].StartParagraphIndex, ranges[0].EndParagraphIndex)
	}
}

func TestAnalyze_SingleFallbackMarkerKept(t *testing.T) {
	// The lone empty marker of a body-less document still yields one
	// real range.
	root := document(t,
		para(t, nil),
		para(t, doc.Attrs{"sectPr": doc.Attrs{}}),
	)

	ranges, _ := Analyze(root, nil)
	if len(ranges) != 1 {
		t.Fatalf("expected 1 range, got %d", len(ranges))
	}
}

func TestAnalyze_MarginsPreserveAbsence(t *testing.T) {
	root := document(t,
		para(t, doc.Attrs{"sectPr": doc.Attrs{
			"pageMargins": doc.Attrs{"header": 720.0, "left": 1440.0},
		}}),
	)

	ranges, _ := Analyze(root, nil)
	if len(ranges) != 1 {
		t.Fatalf("expected 1 range, got %d", len(ranges))
	}
	m := ranges[0].Margins
	if m == nil {
		t.Fatal("margins not materialized")
	}
	if m.HeaderPx != model.TwipsToPx(720) {
		t.Errorf("HeaderPx = %v, want %v", m.HeaderPx, model.TwipsToPx(720))
	}
	if m.FooterPx != 0 {
		t.Errorf("FooterPx = %v, want 0", m.FooterPx)
	}
	if m.LeftPx == nil || *m.LeftPx != model.TwipsToPx(1440) {
		t.Errorf("LeftPx = %v, want %v", m.LeftPx, model.TwipsToPx(1440))
	}
	if m.TopPx != nil {
		t.Errorf("TopPx = %v, want nil (absent is not zero)", *m.TopPx)
	}
}

func TestAnalyze_PageSizeAndColumns(t *testing.T) {
	root := document(t,
		para(t, doc.Attrs{"sectPr": doc.Attrs{
			"pageSize": doc.Attrs{"width": 16838.0, "height": 11906.0},
			"cols":     doc.Attrs{"num": 2, "space": 720.0},
		}}),
	)

	ranges, _ := Analyze(root, nil)
	r := ranges[0]
	if r.PageSize == nil {
		t.Fatal("page size not extracted")
	}
	if r.PageSize.WidthPx != model.TwipsToPx(16838) {
		t.Errorf("WidthPx = %v", r.PageSize.WidthPx)
	}
	if r.Columns == nil || r.Columns.Count != 2 {
		t.Fatalf("columns = %+v, want count 2", r.Columns)
	}
	if r.Columns.SpacePx != model.TwipsToPx(720) {
		t.Errorf("SpacePx = %v", r.Columns.SpacePx)
	}
}

func TestAnalyze_EmptyDocument(t *testing.T) {
	ranges, warnings := Analyze(document(t), nil)
	if len(ranges) != 0 || len(warnings) != 0 {
		t.Errorf("empty document produced %d ranges, %d warnings", len(ranges), len(warnings))
	}
}
