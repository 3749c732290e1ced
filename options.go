package folio

import (
	"github.com/tsawler/folio/doc"
	"github.com/tsawler/folio/flow"
	"github.com/tsawler/folio/measure"
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/style"
)

// Layouter configures and runs one layout pass over a document tree.
// Configuration methods return the receiver for chaining; Layout is the
// terminal operation.
type Layouter struct {
	tree    doc.Node
	options layoutOptions
}

// layoutOptions holds the configuration for one layout pass.
type layoutOptions struct {
	styles     []style.Definition
	numbering  []flow.NumDef
	bodySectPr doc.Attrs
	trackMode  flow.TrackMode
	fonts      measure.FontSource
	config     model.LayoutConfig
}

func defaultOptions() layoutOptions {
	return layoutOptions{
		trackMode: flow.TrackShowAll,
		config:    model.DefaultLayoutConfig(),
	}
}

// Styles supplies the document's style definitions for linked-style
// resolution.
func (l *Layouter) Styles(defs []style.Definition) *Layouter {
	l.options.styles = defs
	return l
}

// Numbering supplies the document's list numbering definitions.
func (l *Layouter) Numbering(defs []flow.NumDef) *Layouter {
	l.options.numbering = defs
	return l
}

// BodySection supplies the document-level section properties that close
// the final section.
func (l *Layouter) BodySection(sectPr doc.Attrs) *Layouter {
	l.options.bodySectPr = sectPr
	return l
}

// TrackChanges selects the tracked-change visibility mode.
func (l *Layouter) TrackChanges(mode flow.TrackMode) *Layouter {
	l.options.trackMode = mode
	return l
}

// Fonts supplies the font source used for text shaping. Without one,
// text measures through the rune-class fallback table.
func (l *Layouter) Fonts(fs measure.FontSource) *Layouter {
	l.options.fonts = fs
	return l
}

// Config overrides the layout constants.
func (l *Layouter) Config(cfg model.LayoutConfig) *Layouter {
	l.options.config = cfg
	return l
}

func measureOptions(o layoutOptions) []measure.Option {
	opts := []measure.Option{measure.WithConfig(o.config)}
	if o.fonts != nil {
		opts = append(opts, measure.WithFonts(o.fonts))
	}
	return opts
}
