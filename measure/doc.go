// Package measure turns flow blocks into the line, row, and image
// geometry the pagination engine consumes. Text is shaped with
// HarfBuzz-backed faces when the host supplies fonts; otherwise a
// rune-class fallback table approximates advances so layout stays
// deterministic without font files.
package measure
