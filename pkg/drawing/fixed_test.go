package drawing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c9s/chartdraw/pkg/types"
)

func TestFixedArityCompletion(t *testing.T) {
	d := NewFixedArity("a1", types.DrawingElliottImpulse, 6, HitStroke)

	for i := 0; i < 5; i++ {
		d.AddPoint(int64(1000*(i+1)), float64(i))
		assert.Equal(t, types.DrawingStateCreating, d.State(), "still creating after %d points", i+1)
	}

	d.AddPoint(6000, 5)
	assert.Equal(t, types.DrawingStateComplete, d.State())
	assert.Len(t, d.Points(), 6)
	assert.Equal(t, 6, d.CommittedCount())

	// extra clicks after completion are ignored
	d.AddPoint(7000, 6)
	assert.Len(t, d.Points(), 6)
}

func TestFixedArityPreviewPoint(t *testing.T) {
	d := NewFixedArity("a2", types.DrawingTrendLine, 2, HitStroke)
	d.AddPoint(1000, 10)

	// first preview appends a provisional point
	d.UpdateLastPoint(2000, 20)
	assert.Len(t, d.Points(), 2)
	assert.Equal(t, 1, d.CommittedCount())
	assert.Equal(t, types.DrawingStateCreating, d.State())

	// subsequent previews overwrite the same slot
	d.UpdateLastPoint(3000, 30)
	assert.Len(t, d.Points(), 2)
	assert.Equal(t, types.DrawingPoint{Time: 3000, Price: 30}, d.Points()[1])

	// committing lands in the preview slot and completes the tool
	d.AddPoint(4000, 40)
	assert.Len(t, d.Points(), 2)
	assert.Equal(t, 2, d.CommittedCount())
	assert.Equal(t, types.DrawingStateComplete, d.State())
	assert.Equal(t, types.DrawingPoint{Time: 4000, Price: 40}, d.Points()[1])
}

func TestSinglePointToolCompletesImmediately(t *testing.T) {
	d := NewLine("h1", types.DrawingHorizontalLine, 1, true, true)
	d.AddPoint(1000, 99.5)
	assert.Equal(t, types.DrawingStateComplete, d.State())
}

func TestLineRecordRoundTrip(t *testing.T) {
	d := NewLine("l1", types.DrawingRay, 2, false, true)
	d.AddPoint(1000, 10)
	d.AddPoint(2000, 20)
	d.SetState(types.DrawingStateSelected)

	r := d.Record()

	// selection is a view-session concept, never persisted
	assert.Equal(t, types.DrawingStateComplete, r.State)
	assert.True(t, r.ExtendRight)
	assert.False(t, r.ExtendLeft)

	restored, err := NewFromRecord(r)
	assert.NoError(t, err)
	assert.Equal(t, "l1", restored.ID())
	assert.Equal(t, d.Points(), restored.Points())
	assert.Equal(t, types.DrawingStateComplete, restored.State())

	line, ok := restored.(*Line)
	assert.True(t, ok)
	assert.True(t, line.ExtendRight())
}

func TestFibDefaultLevels(t *testing.T) {
	d := NewFib("f1", types.DrawingFibRetracement, 2)
	assert.Len(t, d.Levels(), 7)

	d.AddPoint(1000, 100)
	d.AddPoint(2000, 200)

	r := d.Record()
	assert.Len(t, r.Levels, 7)

	restored, err := NewFromRecord(r)
	assert.NoError(t, err)

	fib, ok := restored.(*Fib)
	assert.True(t, ok)
	assert.Equal(t, d.Levels(), fib.Levels())
}
