package drawing

import (
	"github.com/c9s/chartdraw/pkg/geometry"
	"github.com/c9s/chartdraw/pkg/types"
)

// OpenPath is the free multi-point polyline protocol: every click
// commits a point and there is no automatic completion. An explicit
// finish action (keyboard) ends the path.
type OpenPath struct {
	baseDrawing
}

func NewOpenPath(id string, dtype types.DrawingType) *OpenPath {
	return &OpenPath{baseDrawing: newBase(id, dtype, HitStroke)}
}

func (d *OpenPath) AddPoint(t int64, price float64) {
	if d.state != types.DrawingStateCreating {
		return
	}
	d.commitPoint(t, price)
}

func (d *OpenPath) UpdateLastPoint(t int64, price float64) {
	if d.state != types.DrawingStateCreating {
		return
	}
	d.previewPoint(t, price)
}

// Finish commits any pending preview point and completes the path.
// Paths with fewer than two points do not survive; the caller discards
// the drawing when Finish reports false.
func (d *OpenPath) Finish() bool {
	d.previewIndex = -1

	if len(d.points) < 2 {
		return false
	}
	d.state = types.DrawingStateComplete
	return true
}

// minClosePoints is the smallest committed count that allows a polygon
// to close on its start point.
const minClosePoints = 3

// CloseablePolygon extends the open path: a click within the close
// radius of the first point's screen position, with at least three
// committed points, closes the ring instead of adding a point.
type CloseablePolygon struct {
	OpenPath

	closed bool
}

func NewCloseablePolygon(id string, dtype types.DrawingType) *CloseablePolygon {
	return &CloseablePolygon{OpenPath: *NewOpenPath(id, dtype)}
}

func (d *CloseablePolygon) Closed() bool {
	return d.closed
}

// TryClose closes the polygon if the click at pixel (x, y) lands within
// radius of the first point's current screen position. The pending
// preview point (which sits at the click location) is dropped, not
// committed.
func (d *CloseablePolygon) TryClose(x, y, radius float64) bool {
	if d.CommittedCount() < minClosePoints {
		return false
	}
	if len(d.pixelPoints) == 0 {
		return false
	}

	first := d.pixelPoints[0]
	if geometry.Distance(x, y, first.X, first.Y) > radius {
		return false
	}

	d.dropPreview()
	d.closed = true
	d.hitStyle = HitFill
	d.state = types.DrawingStateComplete
	return true
}

func (d *CloseablePolygon) Record() types.DrawingRecord {
	r := d.baseDrawing.Record()
	r.Closed = d.closed
	return r
}

func (d *CloseablePolygon) applyRecord(r types.DrawingRecord) {
	d.baseDrawing.applyRecord(r)
	d.closed = r.Closed
	if d.closed {
		d.hitStyle = HitFill
	}
}

// MovePoint auto-closes the ring when the last point is dragged onto the
// first point's screen position; the manager routes drags through here
// with the close radius applied beforehand.
func (d *CloseablePolygon) CloseFromDrag() {
	if d.closed || len(d.points) < minClosePoints+1 {
		return
	}

	// the dragged last point now coincides with the first; collapse it
	d.points = d.points[:len(d.points)-1]
	d.closed = true
	d.hitStyle = HitFill
}
