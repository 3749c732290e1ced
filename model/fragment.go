package model

// PartialRowInfo records that one table row is visually split across a
// page boundary. FromLineByCell and ToLineByCell give, per cell index,
// the half-open local segment sub-range rendered in this fragment.
// PartialHeight is the visible height of the row in this fragment: the
// maximum per-cell visible height, so no cell's content is cut shorter
// than its tallest sibling requires.
type PartialRowInfo struct {
	RowIndex       int
	FromLineByCell []int
	ToLineByCell   []int
	IsFirstPart    bool
	IsLastPart     bool
	PartialHeight  float64
}

// TableFragment is the layout-engine view of a table spread across part
// of one page: rows [FromRow, ToRow) plus at most one partially included
// row. A fragment carries at most one PartialRow; when a page boundary
// cuts two distinct multi-segment rows only the last computed partial
// survives (see paginate.WarnPartialRowDropped).
type TableFragment struct {
	BlockID      string
	FromRow      int
	ToRow        int
	X, Y         float64
	Width        float64
	Height       float64
	ColumnWidths []float64
	PartialRow   *PartialRowInfo
}
