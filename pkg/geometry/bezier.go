package geometry

import "math"

// BezierSamples is the fixed sample count used for curve proximity.
// Proximity is approximate by construction; 50 samples keeps the error
// well under a pixel at chart scales.
const BezierSamples = 50

// QuadBezierPoint evaluates the quadratic bezier through p0, p1, p2 at
// parameter t in [0, 1].
func QuadBezierPoint(t, p0x, p0y, p1x, p1y, p2x, p2y float64) (float64, float64) {
	u := 1 - t
	x := u*u*p0x + 2*u*t*p1x + t*t*p2x
	y := u*u*p0y + 2*u*t*p1y + t*t*p2y
	return x, y
}

// QuadBezierDistance returns the minimum distance from (px, py) to the
// sampled curve.
func QuadBezierDistance(px, py, p0x, p0y, p1x, p1y, p2x, p2y float64) float64 {
	min := math.Inf(1)
	for i := 0; i <= BezierSamples; i++ {
		t := float64(i) / BezierSamples
		x, y := QuadBezierPoint(t, p0x, p0y, p1x, p1y, p2x, p2y)
		if d := Distance(px, py, x, y); d < min {
			min = d
		}
	}
	return min
}

// ControlFromMidpoint returns the bezier control point that makes the
// curve pass through (mx, my) at t=0.5, given the endpoints.
func ControlFromMidpoint(mx, my, p0x, p0y, p2x, p2y float64) (float64, float64) {
	return 2*mx - (p0x+p2x)/2, 2*my - (p0y+p2y)/2
}
