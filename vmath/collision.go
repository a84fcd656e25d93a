package vmath

// CircleRectOverlap tests the circle's bounding square against the rectangle.
// Comparisons are strict: touching edges do not overlap
func CircleRectOverlap(cx, cy, radius float64, r Rect) bool {
	return cx+radius > r.X &&
		cx-radius < r.Right() &&
		cy+radius > r.Y &&
		cy-radius < r.Bottom()
}
