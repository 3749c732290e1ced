// Package section turns paragraph-level section breaks into ordered,
// non-overlapping page-geometry ranges.
//
// Section markers are end-tagged: the section properties carried by a
// section-break paragraph describe the section that ends at that
// paragraph, not the one starting after it. Ranges are rebuilt wholesale
// per analysis pass; the result is contiguous over the paragraph index
// space [0, totalParagraphs).
package section

import (
	"fmt"

	"github.com/tsawler/folio/doc"
	"github.com/tsawler/folio/model"
)

// sectPr attribute keys recognized during extraction. A marker whose
// properties contain none of these (and no margin metadata) is ignored
// unless it is the single fallback marker of a body-less document.
var structuralKeys = []string{
	"pageSize", "orientation", "cols", "type", "titlePg",
	"headerRefs", "footerRefs", "pgNumType", "vAlign",
}

// Analyze scans the document's paragraph sequence for section-break
// markers and returns the ordered SectionRanges plus any warnings for
// markers that were skipped. bodySectPr is the document body's trailing
// section properties, nil when the document has none.
func Analyze(root doc.Node, bodySectPr doc.Attrs) ([]model.SectionRange, []model.Warning) {
	paragraphs := doc.Paragraphs(root)
	total := len(paragraphs)

	var ranges []model.SectionRange
	var warnings []model.Warning

	markerCount := countMarkers(paragraphs)

	for i, p := range paragraphs {
		if p.Kind() != doc.KindParagraph {
			continue
		}
		raw, present := p.Attrs()["sectPr"]
		if !present {
			continue
		}

		sectPr, ok := raw.(doc.Attrs)
		if !ok {
			if m, isMap := raw.(map[string]any); isMap {
				sectPr = doc.Attrs(m)
			} else {
				warnings = append(warnings, model.Warning{
					Code:    model.WarnSectionSkipped,
					Message: "section properties failed structural extraction",
					Context: fmt.Sprintf("paragraph %d", i),
				})
				continue
			}
		}

		if ignoreMarker(sectPr, markerCount, bodySectPr) {
			continue
		}

		start := 0
		if n := len(ranges); n > 0 {
			start = ranges[n-1].EndParagraphIndex + 1
		}
		r := buildRange(sectPr)
		r.SectionIndex = len(ranges)
		r.StartParagraphIndex = start
		r.EndParagraphIndex = i
		ranges = append(ranges, r)
	}

	// Final range: a body-level sectPr defines it, preserving its
	// declared type so a trailing page or orientation change still
	// forces a page boundary. Without one, a default continuous range
	// covers whatever paragraphs remain.
	last := -1
	if n := len(ranges); n > 0 {
		last = ranges[n-1].EndParagraphIndex
	}
	if bodySectPr != nil {
		if last < total-1 {
			r := buildRange(bodySectPr)
			r.SectionIndex = len(ranges)
			r.StartParagraphIndex = last + 1
			r.EndParagraphIndex = total - 1
			ranges = append(ranges, r)
		}
	} else if last < total-1 && total > 0 {
		r := model.SectionRange{
			SectionIndex:        len(ranges),
			StartParagraphIndex: last + 1,
			EndParagraphIndex:   total - 1,
			Type:                model.SectionContinuous,
		}
		ranges = append(ranges, r)
	}

	return ranges, warnings
}

// countMarkers counts paragraphs carrying a sectPr attribute.
func countMarkers(paragraphs []doc.Node) int {
	n := 0
	for _, p := range paragraphs {
		if p.Kind() == doc.KindParagraph && p.Attrs().Has("sectPr") {
			n++
		}
	}
	return n
}

// ignoreMarker reports whether a section marker carries nothing worth a
// range: no structural child elements and no normalized margin metadata.
// The single marker of a paragraph-only document with no body section is
// kept regardless, so such documents still get one real range.
func ignoreMarker(sectPr doc.Attrs, markerCount int, bodySectPr doc.Attrs) bool {
	for _, key := range structuralKeys {
		if sectPr.Has(key) {
			return false
		}
	}
	if sectPr.Sub("pageMargins") != nil {
		return false
	}
	if markerCount == 1 && bodySectPr == nil {
		return false
	}
	return true
}

// buildRange extracts the page geometry of one sectPr into a range.
// Missing values stay at their zero (or nil) values; malformed numeric
// values degrade to absent rather than failing the range.
func buildRange(sectPr doc.Attrs) model.SectionRange {
	r := model.SectionRange{
		Type:   model.ParseSectionType(sectPr.String("type")),
		VAlign: sectPr.String("vAlign"),
	}

	switch sectPr.String("orientation") {
	case "landscape":
		r.Orientation = model.OrientationLandscape
	case "portrait":
		r.Orientation = model.OrientationPortrait
	}

	if ps := sectPr.Sub("pageSize"); ps != nil {
		size := &model.PageSize{}
		if w, ok := ps.Float("width"); ok {
			size.WidthPx = model.TwipsToPx(w)
		}
		if h, ok := ps.Float("height"); ok {
			size.HeightPx = model.TwipsToPx(h)
		}
		r.PageSize = size
	}

	r.Margins = buildMargins(sectPr.Sub("pageMargins"))

	if cols := sectPr.Sub("cols"); cols != nil {
		c := &model.Columns{Count: 1, EqualWidth: true}
		if n, ok := cols.Int("num"); ok && n > 0 {
			c.Count = n
		}
		if sp, ok := cols.Float("space"); ok {
			c.SpacePx = model.TwipsToPx(sp)
		}
		if cols.Has("equalWidth") {
			c.EqualWidth = cols.Bool("equalWidth")
		}
		r.Columns = c
	}

	r.TitlePage = sectPr.Bool("titlePg")
	r.HeaderRefs = refMap(sectPr.Sub("headerRefs"))
	r.FooterRefs = refMap(sectPr.Sub("footerRefs"))

	if num := sectPr.Sub("pgNumType"); num != nil {
		n := &model.PageNumbering{Start: 1}
		if s, ok := num.Int("start"); ok {
			n.Start = s
		}
		n.Format = num.String("fmt")
		r.Numbering = n
	}

	return r
}

// buildMargins materializes a margins object only when the source
// declares at least one margin. Header and footer default to zero when
// absent; the four page margins remain nil when absent — "not specified"
// is not the same as zero.
func buildMargins(src doc.Attrs) *model.PageMargins {
	if src == nil {
		return nil
	}
	any := false
	for _, key := range []string{"header", "footer", "top", "right", "bottom", "left"} {
		if src.Has(key) {
			any = true
			break
		}
	}
	if !any {
		return nil
	}

	m := &model.PageMargins{}
	if v, ok := src.Float("header"); ok {
		m.HeaderPx = model.TwipsToPx(v)
	}
	if v, ok := src.Float("footer"); ok {
		m.FooterPx = model.TwipsToPx(v)
	}
	m.TopPx = optionalTwips(src, "top")
	m.RightPx = optionalTwips(src, "right")
	m.BottomPx = optionalTwips(src, "bottom")
	m.LeftPx = optionalTwips(src, "left")
	return m
}

// optionalTwips converts a twip attribute to pixels, preserving absence.
func optionalTwips(a doc.Attrs, key string) *float64 {
	v, ok := a.Float(key)
	if !ok {
		return nil
	}
	px := model.TwipsToPx(v)
	return &px
}

// refMap copies header/footer references into a kind -> relationship id
// map.
func refMap(src doc.Attrs) model.HeaderFooterRefs {
	if src == nil {
		return nil
	}
	refs := make(model.HeaderFooterRefs, len(src))
	for k := range src {
		if v := src.String(k); v != "" {
			refs[k] = v
		}
	}
	if len(refs) == 0 {
		return nil
	}
	return refs
}
