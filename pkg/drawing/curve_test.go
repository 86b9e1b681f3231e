package drawing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c9s/chartdraw/pkg/types"
)

func TestDerivedCurveTwoClicksThreePoints(t *testing.T) {
	d := NewDerivedCurve("v1", types.DrawingCurve)

	d.AddPoint(1000, 100)
	assert.Len(t, d.Points(), 1)
	assert.Equal(t, types.DrawingStateCreating, d.State())

	d.UpdateLastPoint(2000, 150)
	assert.Len(t, d.Points(), 3)
	assert.Equal(t, types.DrawingStateCreating, d.State())

	d.AddPoint(3000, 200)
	assert.Len(t, d.Points(), 3)
	assert.Equal(t, types.DrawingStateComplete, d.State())

	assert.Equal(t, types.DrawingPoint{Time: 1000, Price: 100}, d.Points()[0])
	assert.Equal(t, types.DrawingPoint{Time: 3000, Price: 200}, d.Points()[2])
}

func TestDerivedCurveMidpointBowsBelowChord(t *testing.T) {
	d := NewDerivedCurve("v2", types.DrawingCurve)
	d.AddPoint(1000, 100)
	d.AddPoint(3000, 200)

	mid := d.Points()[1]
	assert.Equal(t, int64(2000), mid.Time)

	// offset subtracts: for an upward move the curve bows upward,
	// meaning the stored midpoint sits strictly below the chord middle
	chordMid := (100.0 + 200.0) / 2
	assert.Less(t, mid.Price, chordMid)
	assert.InDelta(t, chordMid-100*curveOffsetRatio, mid.Price, 1e-9)
}

func TestDerivedCurveDegenerateDelta(t *testing.T) {
	d := NewDerivedCurve("v3", types.DrawingCurve)
	d.AddPoint(1000, 100)
	d.AddPoint(3000, 100)

	// zero price delta falls back to 1% of the larger endpoint price
	mid := d.Points()[1]
	assert.InDelta(t, 100-100*curveDegenerateOffsetRatio, mid.Price, 1e-9)
}

func TestDerivedCurveEndpointMoveRederives(t *testing.T) {
	d := NewDerivedCurve("v4", types.DrawingCurve)
	d.AddPoint(1000, 100)
	d.AddPoint(3000, 200)

	// the midpoint is independently draggable after finalization
	d.MovePoint(1, 2000, 500)
	assert.InDelta(t, 500, d.Points()[1].Price, 1e-9)

	// but moving an endpoint re-derives it proportionally
	d.MovePoint(2, 5000, 300)
	mid := d.Points()[1]
	assert.Equal(t, int64(3000), mid.Time)
	assert.InDelta(t, (100.0+300.0)/2-200*curveOffsetRatio, mid.Price, 1e-9)
}
