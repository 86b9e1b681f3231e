package drawing

import (
	"math"

	"github.com/c9s/chartdraw/pkg/types"
)

// Offset constants are kept verbatim for behavioral compatibility with
// existing saved charts; they are tuned values, not principled ones.
const (
	curveOffsetRatio           = 0.15
	curveDegenerateOffsetRatio = 0.01
)

// DerivedCurve is the two-click quadratic curve tool. Two user clicks
// produce exactly three stored points: start, an auto-derived on-curve
// midpoint, and end. While creating, the midpoint tracks the endpoints;
// after finalization it becomes independently draggable, but moving an
// endpoint re-derives it to preserve the proportional bow.
type DerivedCurve struct {
	baseDrawing
}

func NewDerivedCurve(id string, dtype types.DrawingType) *DerivedCurve {
	return &DerivedCurve{baseDrawing: newBase(id, dtype, HitBezier)}
}

func (d *DerivedCurve) AddPoint(t int64, price float64) {
	if d.state != types.DrawingStateCreating {
		return
	}

	if len(d.points) == 0 {
		d.points = append(d.points, types.DrawingPoint{Time: t, Price: price})
		return
	}

	d.track(t, price)
	d.state = types.DrawingStateComplete
}

func (d *DerivedCurve) UpdateLastPoint(t int64, price float64) {
	if d.state != types.DrawingStateCreating || len(d.points) == 0 {
		return
	}
	d.track(t, price)
}

// track moves the end point to (t, price) and re-derives the midpoint.
func (d *DerivedCurve) track(t int64, price float64) {
	start := d.points[0]
	end := types.DrawingPoint{Time: t, Price: price}
	mid := deriveMidpoint(start, end)

	if len(d.points) < 3 {
		d.points = []types.DrawingPoint{start, mid, end}
	} else {
		d.points[1] = mid
		d.points[2] = end
	}
}

// MovePoint re-derives the midpoint when an endpoint moves; the midpoint
// itself (index 1) moves freely.
func (d *DerivedCurve) MovePoint(index int, t int64, price float64) {
	d.baseDrawing.MovePoint(index, t, price)

	if (index == 0 || index == 2) && len(d.points) == 3 {
		d.points[1] = deriveMidpoint(d.points[0], d.points[2])
	}
}

// CommittedCount: the derived midpoint counts as committed storage; the
// curve never holds a preview slot.
func (d *DerivedCurve) CommittedCount() int {
	return len(d.points)
}

// deriveMidpoint returns the segment midpoint pushed down by a
// perpendicular price offset of |Δprice| * 0.15, or 1% of the larger
// endpoint price when the price delta is zero, so a flat segment still
// bows instead of degenerating to a straight line.
func deriveMidpoint(a, b types.DrawingPoint) types.DrawingPoint {
	delta := math.Abs(b.Price - a.Price)
	offset := delta * curveOffsetRatio
	if delta == 0 {
		offset = math.Max(math.Abs(a.Price), math.Abs(b.Price)) * curveDegenerateOffsetRatio
	}

	return types.DrawingPoint{
		Time:  (a.Time + b.Time) / 2,
		Price: (a.Price+b.Price)/2 - offset,
	}
}
