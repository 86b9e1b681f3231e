package types

// DrawingType tags the concrete tool that produced a drawing. The set is
// closed at the registry level; records carrying a tag outside the
// registry are skipped on load.
type DrawingType string

const (
	DrawingTrendLine      DrawingType = "trendLine"
	DrawingRay            DrawingType = "ray"
	DrawingExtendedLine   DrawingType = "extendedLine"
	DrawingArrow          DrawingType = "arrow"
	DrawingHorizontalLine DrawingType = "horizontalLine"
	DrawingVerticalLine   DrawingType = "verticalLine"
	DrawingRectangle      DrawingType = "rectangle"
	DrawingCircle         DrawingType = "circle"
	DrawingText           DrawingType = "text"
	DrawingSticker        DrawingType = "sticker"
	DrawingFibRetracement DrawingType = "fibRetracement"
	DrawingFibExtension   DrawingType = "fibExtension"
	DrawingElliottImpulse DrawingType = "elliottImpulse"

	DrawingParallelChannel  DrawingType = "parallelChannel"
	DrawingFlatChannel      DrawingType = "flatChannel"
	DrawingTriangle         DrawingType = "triangle"
	DrawingRotatedRectangle DrawingType = "rotatedRectangle"
	DrawingHeadAndShoulders DrawingType = "headAndShoulders"
	DrawingXABCDPattern     DrawingType = "xabcdPattern"
	DrawingABCDPattern      DrawingType = "abcdPattern"
	DrawingThreeDrives      DrawingType = "threeDrives"

	DrawingPolyline DrawingType = "polyline"
	DrawingPolygon  DrawingType = "polygon"

	DrawingCurve DrawingType = "curve"

	DrawingBrush       DrawingType = "brush"
	DrawingHighlighter DrawingType = "highlighter"

	DrawingLongPosition  DrawingType = "longPosition"
	DrawingShortPosition DrawingType = "shortPosition"
)

// DrawingState is the lifecycle state of a drawing. Only complete and
// selected drawings are rendered with handles; creating drawings are
// transient and never persisted.
type DrawingState string

const (
	DrawingStateCreating DrawingState = "creating"
	DrawingStateComplete DrawingState = "complete"
	DrawingStateSelected DrawingState = "selected"
	DrawingStateEditing  DrawingState = "editing"
)

// MagnetMode controls price snapping against bar OHLC values.
type MagnetMode string

const (
	MagnetModeNone   MagnetMode = "none"
	MagnetModeWeak   MagnetMode = "weak"
	MagnetModeStrong MagnetMode = "strong"
)

func (m MagnetMode) Enabled() bool {
	return m == MagnetModeWeak || m == MagnetModeStrong
}

// FibLevel is one row of a Fibonacci tool's level table.
type FibLevel struct {
	Coefficient float64 `json:"coeff"`
	Color       string  `json:"color,omitempty"`
}

// DefaultFibLevels is the standard retracement table.
func DefaultFibLevels() []FibLevel {
	return []FibLevel{
		{Coefficient: 0},
		{Coefficient: 0.236},
		{Coefficient: 0.382},
		{Coefficient: 0.5},
		{Coefficient: 0.618},
		{Coefficient: 0.786},
		{Coefficient: 1},
	}
}
