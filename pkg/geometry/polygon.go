package geometry

// PointInTriangle reports containment via barycentric coordinates. A
// degenerate (zero-area) triangle contains nothing.
func PointInTriangle(px, py, ax, ay, bx, by, cx, cy float64) bool {
	denom := (by-cy)*(ax-cx) + (cx-bx)*(ay-cy)
	if denom == 0 {
		return false
	}

	alpha := ((by-cy)*(px-cx) + (cx-bx)*(py-cy)) / denom
	beta := ((cy-ay)*(px-cx) + (ax-cx)*(py-cy)) / denom
	gamma := 1 - alpha - beta

	return alpha >= 0 && beta >= 0 && gamma >= 0
}

// PointInPolygon reports containment by ray-casting parity. Polygons
// with fewer than 3 vertices contain nothing.
func PointInPolygon(px, py float64, xs, ys []float64) bool {
	n := len(xs)
	if n < 3 || n != len(ys) {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		if (ys[i] > py) != (ys[j] > py) &&
			px < (xs[j]-xs[i])*(py-ys[i])/(ys[j]-ys[i])+xs[i] {
			inside = !inside
		}
	}
	return inside
}
