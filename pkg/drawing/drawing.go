// Package drawing implements the annotation entities that live on a
// chart: trend lines, channels, patterns, paths, curves, strokes and
// position projections. The many concrete tools collapse into six
// point-entry protocols, parametrized by arity and hit-test style
// through the registry instead of one type per tool.
package drawing

import (
	"github.com/c9s/chartdraw/pkg/types"
)

// Protocol is the point-entry discipline a drawing follows during
// interactive creation. The manager dispatches pointer events by
// protocol, not by concrete tool.
type Protocol string

const (
	ProtocolFixedArity       Protocol = "fixedArity"
	ProtocolPreviewConfirm   Protocol = "previewConfirm"
	ProtocolOpenPath         Protocol = "openPath"
	ProtocolCloseablePolygon Protocol = "closeablePolygon"
	ProtocolDerivedCurve     Protocol = "derivedCurve"
	ProtocolStroke           Protocol = "stroke"
)

// Drawing is the uniform contract every variant implements.
//
// Pixel points and cached bounds are computed by the render collaborator
// and pushed back in; until the first push, HitTest reports false and
// Bounds reports absent.
type Drawing interface {
	ID() string
	Type() types.DrawingType
	State() types.DrawingState
	SetState(state types.DrawingState)

	Points() []types.DrawingPoint
	CommittedCount() int

	AddPoint(t int64, price float64)
	UpdateLastPoint(t int64, price float64)

	HitTest(x, y, threshold float64) bool
	Bounds() (types.Rect, bool)
	SetPixelPoints(points []types.PixelPoint)
	PixelPoints() []types.PixelPoint
	SetCachedBounds(bounds types.Rect)

	Translate(dt int64, dprice float64)
	MovePoint(index int, t int64, price float64)

	Visible() bool
	SetVisible(visible bool)
	Locked() bool
	SetLocked(locked bool)
	Style() types.Style
	SetStyle(style types.Style)

	Record() types.DrawingRecord
}

// PreviewConfirmer is implemented by preview-confirm drawings; the
// manager calls ConfirmPreviewPoint on each committing click.
type PreviewConfirmer interface {
	ConfirmPreviewPoint()
	RequiredPoints() int
}

// PathFinisher is implemented by the open-path protocols; Finish
// reports whether the drawing survived (false means discard).
type PathFinisher interface {
	Finish() bool
}

// Closer is implemented by the closeable polygon. TryClose handles the
// click-near-start gesture during creation; CloseFromDrag handles the
// last point being dragged onto the first after completion.
type Closer interface {
	TryClose(x, y, radius float64) bool
	CloseFromDrag()
	Closed() bool
}

// StrokeFinisher closes the current stroke without leaving draw mode.
type StrokeFinisher interface {
	FinishStroke()
}
