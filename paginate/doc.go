// Package paginate decides how much of a table fits before a page or
// column boundary: which rows, and within a split row which per-cell
// line ranges, producing TableFragments with at most one partial row.
//
// The unit of pagination is the segment: one rendered paragraph line,
// one non-paragraph block with positive height, or one nested-table row
// (recursively expanded). Segments give every cell a flat, globally
// ordered index space, so a boundary cut can be expressed uniformly no
// matter how block kinds mix. A table row without nested tables is a
// single segment — Word treats such rows as atomic pagination units.
//
// The segment counts computed here and the fragment renderer's
// block-by-block segment accounting must agree exactly; if they diverge,
// rows are clipped or duplicated across pages. That agreement is a
// design invariant, not a runtime check.
package paginate
