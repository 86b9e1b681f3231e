package drawing

import (
	"github.com/c9s/chartdraw/pkg/geometry"
	"github.com/c9s/chartdraw/pkg/types"
)

// HitStyle selects which shared geometry primitive a variant hit-tests
// with.
type HitStyle int

const (
	// HitStroke tests distance to the polyline through the points.
	HitStroke HitStyle = iota

	// HitFill tests containment of the closed ring, falling back to
	// edge distance.
	HitFill

	// HitBounds tests the cached bounding box expanded by the
	// threshold. Used by tools whose visual extent is computed by the
	// renderer (text, position projections).
	HitBounds

	// HitBezier tests sampled distance to the quadratic curve through
	// the three points.
	HitBezier
)

// baseDrawing carries the state shared by every protocol variant: the
// committed/preview point sequence, style, flags, and the pixel-space
// caches pushed in by the renderer.
type baseDrawing struct {
	id    string
	dtype types.DrawingType
	state types.DrawingState

	points []types.DrawingPoint

	// previewIndex is the slot of the provisional point, -1 when every
	// stored point is committed. Confirming a preview never moves data,
	// it only clears this index.
	previewIndex int

	style   types.Style
	visible bool
	locked  bool

	hitStyle HitStyle

	pixelPoints  []types.PixelPoint
	cachedBounds types.Rect
	hasBounds    bool
}

func newBase(id string, dtype types.DrawingType, hitStyle HitStyle) baseDrawing {
	return baseDrawing{
		id:           id,
		dtype:        dtype,
		state:        types.DrawingStateCreating,
		previewIndex: -1,
		style:        types.DefaultStyle(),
		visible:      true,
		hitStyle:     hitStyle,
	}
}

func (d *baseDrawing) ID() string                      { return d.id }
func (d *baseDrawing) Type() types.DrawingType         { return d.dtype }
func (d *baseDrawing) State() types.DrawingState       { return d.state }
func (d *baseDrawing) SetState(s types.DrawingState)   { d.state = s }
func (d *baseDrawing) Points() []types.DrawingPoint    { return d.points }
func (d *baseDrawing) Visible() bool                   { return d.visible }
func (d *baseDrawing) SetVisible(v bool)               { d.visible = v }
func (d *baseDrawing) Locked() bool                    { return d.locked }
func (d *baseDrawing) SetLocked(v bool)                { d.locked = v }
func (d *baseDrawing) Style() types.Style              { return d.style }
func (d *baseDrawing) SetStyle(s types.Style)          { d.style = s }
func (d *baseDrawing) PixelPoints() []types.PixelPoint { return d.pixelPoints }

// CommittedCount is the number of stored points minus the pending
// preview point, if any.
func (d *baseDrawing) CommittedCount() int {
	if d.previewIndex >= 0 {
		return len(d.points) - 1
	}
	return len(d.points)
}

// commitPoint writes the point into the preview slot when one is
// pending, otherwise appends. Either way the point ends up committed.
func (d *baseDrawing) commitPoint(t int64, price float64) {
	p := types.DrawingPoint{Time: t, Price: price}
	if d.previewIndex >= 0 {
		d.points[d.previewIndex] = p
		d.previewIndex = -1
	} else {
		d.points = append(d.points, p)
	}
}

// previewPoint appends a provisional point on the first call after a
// commit and overwrites the same slot on subsequent calls.
func (d *baseDrawing) previewPoint(t int64, price float64) {
	p := types.DrawingPoint{Time: t, Price: price}
	if d.previewIndex < 0 {
		d.points = append(d.points, p)
		d.previewIndex = len(d.points) - 1
	} else {
		d.points[d.previewIndex] = p
	}
}

// dropPreview removes a pending preview point outright.
func (d *baseDrawing) dropPreview() {
	if d.previewIndex < 0 {
		return
	}
	d.points = append(d.points[:d.previewIndex], d.points[d.previewIndex+1:]...)
	d.previewIndex = -1
}

func (d *baseDrawing) SetPixelPoints(points []types.PixelPoint) {
	d.pixelPoints = points
}

func (d *baseDrawing) SetCachedBounds(bounds types.Rect) {
	d.cachedBounds = bounds
	d.hasBounds = true
}

func (d *baseDrawing) Bounds() (types.Rect, bool) {
	if !d.hasBounds {
		return types.Rect{}, false
	}
	return d.cachedBounds, true
}

func (d *baseDrawing) HitTest(x, y, threshold float64) bool {
	if !d.visible {
		return false
	}

	switch d.hitStyle {
	case HitBounds:
		if !d.hasBounds {
			return false
		}
		return d.cachedBounds.Expand(threshold).Contains(x, y)

	case HitFill:
		xs, ys, ok := d.pixelCoords()
		if !ok {
			return false
		}
		if geometry.PointInPolygon(x, y, xs, ys) {
			return true
		}
		// include the closing edge for ring distance
		xs = append(xs, xs[0])
		ys = append(ys, ys[0])
		return geometry.PolylineDistance(x, y, xs, ys) <= threshold

	case HitBezier:
		if len(d.pixelPoints) < 3 {
			return false
		}
		p0, mid, p2 := d.pixelPoints[0], d.pixelPoints[1], d.pixelPoints[2]
		cx, cy := geometry.ControlFromMidpoint(mid.X, mid.Y, p0.X, p0.Y, p2.X, p2.Y)
		return geometry.QuadBezierDistance(x, y, p0.X, p0.Y, cx, cy, p2.X, p2.Y) <= threshold

	default: // HitStroke
		xs, ys, ok := d.pixelCoords()
		if !ok {
			return false
		}
		return geometry.PolylineDistance(x, y, xs, ys) <= threshold
	}
}

func (d *baseDrawing) pixelCoords() ([]float64, []float64, bool) {
	if len(d.pixelPoints) == 0 {
		return nil, nil, false
	}
	xs := make([]float64, len(d.pixelPoints))
	ys := make([]float64, len(d.pixelPoints))
	for i, p := range d.pixelPoints {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys, true
}

func (d *baseDrawing) Translate(dt int64, dprice float64) {
	for i := range d.points {
		d.points[i].Time += dt
		d.points[i].Price += dprice
	}
}

func (d *baseDrawing) MovePoint(index int, t int64, price float64) {
	if index < 0 || index >= len(d.points) {
		return
	}
	d.points[index] = types.DrawingPoint{Time: t, Price: price}
}

// persistedState demotes selection before a record is written; selection
// belongs to the view session, not the document.
func (d *baseDrawing) persistedState() types.DrawingState {
	if d.state == types.DrawingStateSelected || d.state == types.DrawingStateEditing {
		return types.DrawingStateComplete
	}
	return d.state
}

func (d *baseDrawing) Record() types.DrawingRecord {
	return types.DrawingRecord{
		ID:      d.id,
		Type:    d.dtype,
		Points:  append([]types.DrawingPoint(nil), d.points...),
		Style:   d.style,
		State:   d.persistedState(),
		Visible: d.visible,
		Locked:  d.locked,
	}
}

// applyRecord restores the shared fields from a persisted record.
func (d *baseDrawing) applyRecord(r types.DrawingRecord) {
	d.points = append([]types.DrawingPoint(nil), r.Points...)
	d.style = r.Style
	d.visible = r.Visible
	d.locked = r.Locked
	d.previewIndex = -1

	d.state = r.State
	if d.state == "" || d.state == types.DrawingStateSelected || d.state == types.DrawingStateCreating {
		d.state = types.DrawingStateComplete
	}
}
