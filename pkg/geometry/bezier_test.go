package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuadBezierPoint(t *testing.T) {
	// endpoints are exact
	x, y := QuadBezierPoint(0, 0, 0, 5, 10, 10, 0)
	assert.InDelta(t, 0.0, x, 1e-9)
	assert.InDelta(t, 0.0, y, 1e-9)

	x, y = QuadBezierPoint(1, 0, 0, 5, 10, 10, 0)
	assert.InDelta(t, 10.0, x, 1e-9)
	assert.InDelta(t, 0.0, y, 1e-9)

	// t=0.5 sits halfway between the chord midpoint and the control
	x, y = QuadBezierPoint(0.5, 0, 0, 5, 10, 10, 0)
	assert.InDelta(t, 5.0, x, 1e-9)
	assert.InDelta(t, 5.0, y, 1e-9)
}

func TestQuadBezierDistance(t *testing.T) {
	// a point on the sampled curve is at distance ~0
	mx, my := QuadBezierPoint(0.5, 0, 0, 5, 10, 10, 0)
	assert.InDelta(t, 0.0, QuadBezierDistance(mx, my, 0, 0, 5, 10, 10, 0), 1e-9)

	// far away point keeps its distance
	d := QuadBezierDistance(5, 100, 0, 0, 5, 10, 10, 0)
	assert.Greater(t, d, 90.0)
}

func TestControlFromMidpoint(t *testing.T) {
	// reconstructing the control from the curve midpoint is exact
	mx, my := QuadBezierPoint(0.5, 0, 0, 5, 10, 10, 0)
	cx, cy := ControlFromMidpoint(mx, my, 0, 0, 10, 0)
	assert.InDelta(t, 5.0, cx, 1e-9)
	assert.InDelta(t, 10.0, cy, 1e-9)
}
