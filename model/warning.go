package model

import (
	"fmt"
	"strings"
)

// WarningCode identifies a class of non-fatal layout problem.
type WarningCode string

// Warning codes emitted by the conversion and pagination passes.
const (
	// WarnSectionSkipped: a section marker carried properties that failed
	// structural extraction; the range was skipped.
	WarnSectionSkipped WarningCode = "section-skipped"

	// WarnRowDropped: a table row parsed to zero valid cells.
	WarnRowDropped WarningCode = "row-dropped"

	// WarnCellDropped: a table cell had no convertible child blocks.
	WarnCellDropped WarningCode = "cell-dropped"

	// WarnPartialRowDropped: a page boundary cut two multi-segment rows
	// in the same table; only the last partial row survives.
	WarnPartialRowDropped WarningCode = "partial-row-dropped"

	// WarnStyleUnresolved: a linked style id did not resolve; defaults
	// were used.
	WarnStyleUnresolved WarningCode = "style-unresolved"

	// WarnImageUnreadable: an image's intrinsic size could not be read;
	// a zero measure was substituted.
	WarnImageUnreadable WarningCode = "image-unreadable"
)

// Warning describes a non-fatal issue encountered during conversion,
// measurement, or pagination. Layout never aborts on malformed input;
// it degrades and records a Warning instead.
type Warning struct {
	Code    WarningCode
	Message string
	Context string // node or block id, when one exists
}

// String formats the warning for logging.
func (w Warning) String() string {
	if w.Context != "" {
		return fmt.Sprintf("%s: %s (%s)", w.Code, w.Message, w.Context)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
