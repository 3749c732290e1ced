package flow

import (
	"github.com/tsawler/folio/doc"
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/style"
)

// buildTextRun converts one text node into a run, applying the four-tier
// style-priority cascade:
//
//  1. base paragraph/character-style defaults (lowest),
//  2. linked-style resolution by style id — inline mark style id, else
//     run style id, else paragraph style id,
//  3. the paragraph's explicit base-run defaults, but only font family,
//     size, color, and letter spacing (never bold/italic/underline, so
//     paragraph-style emphasis does not leak onto plain runs),
//  4. inline marks, applied last and given final precedence.
func buildTextRun(n doc.Node, paraAttrs doc.Attrs, paraStyleID string, ctx *Context) model.Run {
	marks := n.Marks()

	// Tier 1+2: resolve the linked style; the resolver itself starts
	// from document defaults, so the base tier comes along.
	linkedID := markStyleID(marks)
	if linkedID == "" {
		linkedID = n.Attrs().String("styleId")
	}
	if linkedID == "" {
		linkedID = paraStyleID
	}
	if linkedID != "" && !ctx.Styles.Known(linkedID) {
		ctx.Warn(model.WarnStyleUnresolved, "style id has no definition", linkedID)
	}
	rs := ctx.Styles.Resolve(linkedID).RunStyle()

	// Tier 3: explicit base-run defaults from the paragraph mark.
	if rpr := paraAttrs.Sub("runProperties"); rpr != nil {
		if f := rpr.String("fontFamily"); f != "" {
			rs.FontFamily = f
		}
		if hp, ok := rpr.Float("fontSize"); ok && hp > 0 {
			rs.FontSizePx = model.HalfPointsToPx(hp)
		}
		if c := rpr.String("color"); c != "" && c != "auto" {
			rs.Color = c
		}
		if sp, ok := rpr.Float("letterSpacing"); ok {
			rs.LetterSpacingPx = model.TwipsToPx(sp)
		}
	}

	// Tier 4: inline marks.
	run := model.Run{Kind: model.RunText, Text: n.Text()}
	for _, m := range marks {
		applyMark(&rs, &run, m, ctx)
	}

	if rs.Color == "" || rs.Color == "auto" {
		rs.Color = style.AutoColor(ctx.CellBackground)
	}

	run.Style = rs
	if span, ok := n.Span(); ok {
		run.Span = model.Span{Start: span.Start, End: span.End}
	}
	if data := n.Attrs().Sub("data"); data != nil {
		run.Data = make(map[string]string, len(data))
		for k := range data {
			run.Data[k] = data.String(k)
		}
	}
	return run
}

// markStyleID returns the style id of the first linked-style mark.
func markStyleID(marks []doc.Mark) string {
	for _, m := range marks {
		if m.Kind == doc.MarkStyleID {
			return m.Attrs.String("styleId")
		}
	}
	return ""
}

// applyMark folds one inline mark into the run style or run metadata.
func applyMark(rs *model.RunStyle, run *model.Run, m doc.Mark, ctx *Context) {
	switch m.Kind {
	case doc.MarkBold:
		rs.Bold = true
	case doc.MarkItalic:
		rs.Italic = true
	case doc.MarkUnderline:
		rs.Underline = true
	case doc.MarkStrike:
		rs.Strike = true
	case doc.MarkTextStyle:
		if f := m.Attrs.String("fontFamily"); f != "" {
			rs.FontFamily = f
		}
		if hp, ok := m.Attrs.Float("fontSize"); ok && hp > 0 {
			rs.FontSizePx = model.HalfPointsToPx(hp)
		}
		if c := m.Attrs.String("color"); c != "" {
			rs.Color = c
		}
		if sp, ok := m.Attrs.Float("letterSpacing"); ok {
			rs.LetterSpacingPx = model.TwipsToPx(sp)
		}
		if m.Attrs.Bool("vanish") {
			rs.Vanish = true
		}
	case doc.MarkHighlight:
		if c := m.Attrs.String("color"); c != "" {
			rs.Highlight = c
		}
	case doc.MarkTrackInsert:
		run.Track.Inserted = true
		run.Track.Author = m.Attrs.String("author")
	case doc.MarkTrackDelete:
		run.Track.Deleted = true
		run.Track.Author = m.Attrs.String("author")
	case doc.MarkComment:
		if id := m.Attrs.String("id"); id != "" {
			run.Comments = append(run.Comments, id)
		}
	}
}

// MergeAdjacentRuns merges neighboring plain text runs that have
// contiguous source spans and identical formatting, tracked-change
// state, data attributes, and comment coverage. This is purely a
// fragmentation-reduction optimization: merged output renders exactly
// like the input. Applying it twice is a no-op.
func MergeAdjacentRuns(runs []model.Run) []model.Run {
	if len(runs) < 2 {
		return runs
	}
	out := make([]model.Run, 0, len(runs))
	out = append(out, runs[0])
	for _, r := range runs[1:] {
		prev := &out[len(out)-1]
		if mergeable(*prev, r) {
			prev.Text += r.Text
			prev.Span.End = r.Span.End
			continue
		}
		out = append(out, r)
	}
	return out
}

// mergeable reports whether b can be appended to a without changing
// rendered output or change-review behavior.
func mergeable(a, b model.Run) bool {
	return a.Kind == model.RunText && b.Kind == model.RunText &&
		a.Span.End == b.Span.Start &&
		a.StyleEquals(b) &&
		a.TrackCompatible(b) &&
		a.DataEquals(b)
}
