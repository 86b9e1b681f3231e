package drawing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c9s/chartdraw/pkg/types"
)

func TestOpenPathFinish(t *testing.T) {
	d := NewOpenPath("p1", types.DrawingPolyline)

	d.AddPoint(1000, 10)
	d.AddPoint(2000, 20)
	d.UpdateLastPoint(3000, 30)

	// finish commits the pending preview
	assert.True(t, d.Finish())
	assert.Equal(t, types.DrawingStateComplete, d.State())
	assert.Len(t, d.Points(), 3)
	assert.Equal(t, 3, d.CommittedCount())
}

func TestOpenPathFinishDiscardsShortPath(t *testing.T) {
	d := NewOpenPath("p2", types.DrawingPolyline)
	d.AddPoint(1000, 10)

	assert.False(t, d.Finish())
	assert.Equal(t, types.DrawingStateCreating, d.State())
}

func TestCloseablePolygonRequiresThreePoints(t *testing.T) {
	d := NewCloseablePolygon("g1", types.DrawingPolygon)
	d.AddPoint(1000, 10)
	d.AddPoint(2000, 20)
	d.SetPixelPoints([]types.PixelPoint{{X: 0, Y: 0}, {X: 50, Y: 0}})

	// a click right on the start point must not close with only 2 committed
	assert.False(t, d.TryClose(1, 1, 10))
	assert.False(t, d.Closed())
}

func TestCloseablePolygonCloses(t *testing.T) {
	d := NewCloseablePolygon("g2", types.DrawingPolygon)
	d.AddPoint(1000, 10)
	d.AddPoint(2000, 20)
	d.AddPoint(3000, 10)
	d.UpdateLastPoint(1100, 11) // preview point near the start
	d.SetPixelPoints([]types.PixelPoint{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 50}, {X: 3, Y: 3}})

	assert.True(t, d.TryClose(3, 3, 10))
	assert.True(t, d.Closed())
	assert.Equal(t, types.DrawingStateComplete, d.State())

	// the preview point is dropped, not committed
	assert.Len(t, d.Points(), 3)

	r := d.Record()
	assert.True(t, r.Closed)

	restored, err := NewFromRecord(r)
	assert.NoError(t, err)
	assert.True(t, restored.(*CloseablePolygon).Closed())
}

func TestCloseablePolygonFarClickDoesNotClose(t *testing.T) {
	d := NewCloseablePolygon("g3", types.DrawingPolygon)
	d.AddPoint(1000, 10)
	d.AddPoint(2000, 20)
	d.AddPoint(3000, 10)
	d.SetPixelPoints([]types.PixelPoint{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 50}})

	assert.False(t, d.TryClose(40, 40, 10))
	assert.False(t, d.Closed())
}

func TestCloseablePolygonCloseFromDrag(t *testing.T) {
	d := NewCloseablePolygon("g4", types.DrawingPolygon)
	d.AddPoint(1000, 10)
	d.AddPoint(2000, 20)
	d.AddPoint(3000, 30)
	d.AddPoint(4000, 10)
	d.Finish()

	d.CloseFromDrag()
	assert.True(t, d.Closed())
	// the dragged point collapsed onto the first one
	assert.Len(t, d.Points(), 3)
}
