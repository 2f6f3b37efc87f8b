package intersect

import (
	"math"

	"github.com/gocurve/bezpath"
)

// Overlap reports whether a and b trace the same image over a
// non-degenerate parameter range, returning the sub-ranges on each
// curve where that happens.
//
// Ported from original_source/src/bezier/overlaps.rs's
// overlapping_region: find where each curve's endpoints land on the
// other (t_for_point in both directions), reject a single-point touch,
// take a collinear fast path when both curves lie on the same line,
// and otherwise compare the restricted control points.
func Overlap(a, b bezpath.CubicBez) (OverlapRegion, bool) {
	bT1, bT2 := 0.0, 1.0

	bStart := b.Start()
	bEnd := b.End()

	aT1, ok := tForPoint(a, bStart, smallDistance)
	if !ok {
		t, ok2 := tForPoint(b, a.Start(), smallDistance)
		if !ok2 {
			return OverlapRegion{}, false
		}
		bT1 = t
		aT1 = 0.0
	}

	aT2, ok := tForPoint(a, bEnd, smallDistance)
	if !ok {
		t, ok2 := tForPoint(b, a.End(), smallDistance)
		if !ok2 {
			return OverlapRegion{}, false
		}
		bT2 = t
		aT2 = 1.0
	}

	if math.Abs(aT1-aT2) < smallTDistance || math.Abs(bT1-bT2) < smallTDistance {
		return OverlapRegion{}, false
	}

	axis := bezpath.NewLine(a.Start(), a.End())
	la, lb, lc := axis.Coefficients()
	collinear := func(p bezpath.Point) bool {
		return math.Abs(la*p.X+lb*p.Y+lc) < smallDistance
	}

	aCP1, aCP2 := a.ControlPoints()
	if collinear(aCP1) && collinear(aCP2) && collinear(bStart) && collinear(bEnd) {
		bCP1, bCP2 := b.ControlPoints()
		if collinear(bCP1) && collinear(bCP2) {
			return OverlapRegion{A: [2]float64{aT1, aT2}, B: [2]float64{bT1, bT2}}, true
		}
	}

	closeEnough := func(p, q bezpath.Point) bool {
		return p.IsNearTo(q, smallDistance)
	}

	restrictedControlPoints := func(c bezpath.CubicBez, t1, t2 float64) (bezpath.Point, bezpath.Point) {
		if t1 == 0.0 && t2 == 1.0 {
			return c.ControlPoints()
		}
		return bezpath.NewCurveSection(c, t1, t2).ToCubicBez().ControlPoints()
	}

	aCP1r, aCP2r := restrictedControlPoints(a, aT1, aT2)
	bCP1r, bCP2r := restrictedControlPoints(b, bT1, bT2)

	if closeEnough(aCP1r, bCP1r) && closeEnough(aCP2r, bCP2r) {
		return OverlapRegion{A: [2]float64{aT1, aT2}, B: [2]float64{bT1, bT2}}, true
	}
	return OverlapRegion{}, false
}

// tForPoint finds the parameter t at which c passes through p, assuming
// p lies on (or within epsD of) c. Not present in the retrieved
// original_source files (solve_curve_for_t's implementation was
// filtered out of the pack); rebuilt here with the same cubic
// substitution technique spec.md §4.2 uses for curve/line hits, solving
// whichever axis varies more across the curve's control points to avoid
// a near-degenerate polynomial.
func tForPoint(c bezpath.CubicBez, p bezpath.Point, epsD float64) (float64, bool) {
	xs := [4]float64{c.P0.X, c.P1.X, c.P2.X, c.P3.X}
	ys := [4]float64{c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y}
	rangeX := spread(xs)
	rangeY := spread(ys)

	var roots []float64
	if rangeX >= rangeY {
		roots = bezpath.SolveCubicInUnitInterval(cubicAxisCoeffs(xs, p.X))
	} else {
		roots = bezpath.SolveCubicInUnitInterval(cubicAxisCoeffs(ys, p.Y))
	}

	for _, t := range roots {
		if c.Eval(t).IsNearTo(p, epsD) {
			return t, true
		}
	}
	return 0, false
}

func spread(v [4]float64) float64 {
	lo, hi := v[0], v[0]
	for _, x := range v[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return hi - lo
}

// cubicAxisCoeffs converts one axis of a cubic Bezier's control points
// (in Bernstein form) to monomial coefficients a*t^3+b*t^2+c*t+d, offset
// so that a root of the result is a point where the axis equals target.
func cubicAxisCoeffs(v [4]float64, target float64) (a, b, c, d float64) {
	p0, p1, p2, p3 := v[0], v[1], v[2], v[3]
	a = -p0 + 3*p1 - 3*p2 + p3
	b = 3 * (p0 - 2*p1 + p2)
	c = 3 * (p1 - p0)
	d = p0 - target
	return
}
