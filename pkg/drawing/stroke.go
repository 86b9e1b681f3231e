package drawing

import (
	"math"

	"github.com/c9s/chartdraw/pkg/types"
)

// Jitter thresholds below which consecutive stroke samples are dropped.
// Kept verbatim for compatibility with existing saved charts.
const (
	strokeMinTimeDelta  int64   = 1
	strokeMinPriceDelta float64 = 0.0001
)

// Stroke is the brush/highlighter protocol: points accumulate
// continuously while the pointer is down, with near-duplicate samples
// suppressed so slow pointer movement does not zig-zag the path.
// FinishStroke completes the current stroke without leaving draw mode,
// so consecutive strokes can follow.
type Stroke struct {
	baseDrawing
}

func NewStroke(id string, dtype types.DrawingType) *Stroke {
	return &Stroke{baseDrawing: newBase(id, dtype, HitStroke)}
}

func (d *Stroke) AddPoint(t int64, price float64) {
	if d.state != types.DrawingStateCreating {
		return
	}

	if n := len(d.points); n > 0 {
		last := d.points[n-1]
		dt := t - last.Time
		if dt < 0 {
			dt = -dt
		}
		if dt <= strokeMinTimeDelta && math.Abs(price-last.Price) <= strokeMinPriceDelta {
			return
		}
	}

	d.points = append(d.points, types.DrawingPoint{Time: t, Price: price})
}

// UpdateLastPoint appends like AddPoint: a stroke has no preview point,
// every pointer-move sample while the button is down is part of the
// path.
func (d *Stroke) UpdateLastPoint(t int64, price float64) {
	d.AddPoint(t, price)
}

func (d *Stroke) FinishStroke() {
	d.state = types.DrawingStateComplete
}
