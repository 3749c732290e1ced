// Package render turns layout-resolved table fragments into positioned
// presentational trees: cell-by-cell, row-by-row nodes with pixel
// geometry and style, recursing into embedded tables, placing anchored
// objects out of flow, and carving text-wrap exclusion zones out of
// already-rendered lines.
//
// The package never constructs text-rendering primitives itself; line
// and drawing content come from the LineRenderer and DrawingRenderer
// capabilities injected once through the Context.
//
// Every node's bounding box is relative to its parent node's origin.
package render
