package folio

import "github.com/tsawler/folio/model"

// Warning re-exports the model warning type so facade callers don't
// need the model package for the common case.
type Warning = model.Warning

// FormatWarnings renders warnings one per line for logging.
func FormatWarnings(warnings []Warning) string {
	return model.FormatWarnings(warnings)
}
