// Package geometry provides the 2D primitives every drawing variant
// shares for hit-testing: point-to-segment distance, triangle and
// polygon containment, and sampled bezier proximity. All functions are
// pure and operate in pixel space.
package geometry

import "math"

func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

func Midpoint(x1, y1, x2, y2 float64) (float64, float64) {
	return (x1 + x2) / 2, (y1 + y2) / 2
}

// SegmentDistance returns the distance from (px, py) to the segment
// (x1, y1)-(x2, y2). The projection parameter is clamped to [0, 1]; a
// zero-length segment degenerates to plain point distance.
func SegmentDistance(px, py, x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1

	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Distance(px, py, x1, y1)
	}

	t := ((px-x1)*dx + (py-y1)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))

	return Distance(px, py, x1+t*dx, y1+t*dy)
}

// PolylineDistance returns the minimum distance from (px, py) to any
// segment of the chain. An empty chain returns +Inf; a single point
// returns the point distance.
func PolylineDistance(px, py float64, xs, ys []float64) float64 {
	n := len(xs)
	if n == 0 || n != len(ys) {
		return math.Inf(1)
	}
	if n == 1 {
		return Distance(px, py, xs[0], ys[0])
	}

	min := math.Inf(1)
	for i := 0; i < n-1; i++ {
		d := SegmentDistance(px, py, xs[i], ys[i], xs[i+1], ys[i+1])
		if d < min {
			min = d
		}
	}
	return min
}
