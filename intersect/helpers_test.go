package intersect

import (
	"math"

	"github.com/gocurve/bezpath"
)

func pt(x, y float64) bezpath.Point {
	return bezpath.Pt(x, y)
}

func newCubic(p0, p1, p2, p3 bezpath.Point) bezpath.CubicBez {
	return bezpath.NewCubicBez(p0, p1, p2, p3)
}

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func pointsNear(a, b bezpath.Point, eps float64) bool {
	return a.IsNearTo(b, eps)
}
