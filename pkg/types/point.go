package types

import (
	"fmt"
	"time"
)

// DrawingPoint is a logical chart coordinate: a millisecond timestamp on
// the time axis and a price on the value axis. Points of a drawing are
// not required to be time-ordered; pattern tools place points backwards
// in time on purpose.
type DrawingPoint struct {
	Time  int64   `json:"time"`
	Price float64 `json:"price"`
}

func (p DrawingPoint) T() time.Time {
	return time.Unix(0, p.Time*int64(time.Millisecond))
}

func (p DrawingPoint) String() string {
	return fmt.Sprintf("(%d, %f)", p.Time, p.Price)
}

// PixelPoint is a screen-space coordinate after the scale transforms are
// applied. The render layer computes these and pushes them back into the
// drawing for hit-testing.
type PixelPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
