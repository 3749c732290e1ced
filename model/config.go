package model

// Unit conversion factors. OOXML stores lengths in twips (1/1440 inch)
// and font sizes in half-points; all internal geometry is CSS pixels at
// 96 DPI.
const (
	// DPI is the pixel density all internal geometry assumes.
	DPI = 96.0

	// PxPerTwip converts twips to pixels (96/1440).
	PxPerTwip = DPI / 1440.0

	// PxPerPoint converts typographic points to pixels (96/72).
	PxPerPoint = DPI / 72.0
)

// TwipsToPx converts a twip value to pixels.
func TwipsToPx(twips float64) float64 {
	return twips * PxPerTwip
}

// HalfPointsToPx converts a half-point font size to pixels.
func HalfPointsToPx(halfPoints float64) float64 {
	return halfPoints / 2 * PxPerPoint
}

// LayoutConfig collects the layout constants that were previously
// scattered as per-module literals. It is constructed once and passed
// down; callers must treat it as immutable.
type LayoutConfig struct {
	// CellGapPx is the horizontal gap between adjacent cells when the
	// table declares no cell spacing of its own.
	CellGapPx float64

	// DefaultCellPaddingPx is the per-side cell padding applied when the
	// cell and table declare none.
	DefaultCellPaddingPx float64

	// DefaultBorderWidthPx is the border width used when a border is
	// present but carries no size.
	DefaultBorderWidthPx float64

	// MarkerGutterPx is the minimum gap between a list marker and the
	// first line of its paragraph.
	MarkerGutterPx float64

	// LineHeightFactor is the multiplier applied to a font size to get a
	// default line height when the measurement stage has no better data.
	LineHeightFactor float64

	// DefaultFontFamily and DefaultFontSizePx are the Word defaults used
	// when no style information resolves at all.
	DefaultFontFamily  string
	DefaultFontSizePx  float64
	DefaultPageWidthPx float64
	// DefaultPageHeightPx is US Letter at 96 DPI, Word's default sheet.
	DefaultPageHeightPx float64
}

// DefaultLayoutConfig returns the layout constants matching Word's
// rendering defaults at 96 DPI.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		CellGapPx:            0,
		DefaultCellPaddingPx: TwipsToPx(108), // Word's 0.08" side margin
		DefaultBorderWidthPx: 1,
		MarkerGutterPx:       6,
		LineHeightFactor:     1.2,
		DefaultFontFamily:    "Calibri",
		DefaultFontSizePx:    HalfPointsToPx(22), // 11pt
		DefaultPageWidthPx:   TwipsToPx(12240),   // 8.5"
		DefaultPageHeightPx:  TwipsToPx(15840),   // 11"
	}
}
