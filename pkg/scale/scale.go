// Package scale maps between logical chart coordinates (millisecond
// timestamp, price) and pixel coordinates. The time axis is translated
// through an ascending timestamp table into a fractional bar index; the
// pixel transforms themselves belong to the injected scale collaborators.
package scale

// TimeScale converts between a pixel x coordinate and a (possibly
// fractional) bar index. The bool result is false when the scale has no
// valid transform yet, e.g. before the first layout pass.
type TimeScale interface {
	CoordinateToIndex(x float64) (float64, bool)
	IndexToCoordinate(index float64) (float64, bool)
}

// PriceScale converts between a pixel y coordinate and a price.
type PriceScale interface {
	CoordinateToPrice(y float64) (float64, bool)
	PriceToCoordinate(price float64) (float64, bool)
}
