package intersect

import "github.com/gocurve/bezpath"

// fatLine is the strip {p : dMin <= a*p.x + b*p.y + c <= dMax} built
// from a defining curve's endpoints (or, for the perpendicular variant,
// a line through one endpoint perpendicular to the chord) and
// tightened using the defining curve's own control points. See
// spec.md §4.1.
type fatLine struct {
	A, B, C    float64
	DMin, DMax float64
}

// newFatLine builds the fat line along the chord from curve.Start() to
// curve.End(), tightened using curve's own control-point distances.
func newFatLine(curve bezpath.CubicBez) fatLine {
	axis := bezpath.NewLine(curve.Start(), curve.End())
	a, b, c := axis.Coefficients()
	return tightenFatLine(curve, a, b, c)
}

// newPerpFatLine builds the fat line along the axis through curve's
// start point, perpendicular to the chord, tightened the same way.
// Used for the "perpendicular clip" step of §4.1.
func newPerpFatLine(curve bezpath.CubicBez) fatLine {
	chord := curve.End().Sub(curve.Start())
	perpPoint := curve.Start().Add(bezpath.Pt(-chord.Y, chord.X))
	axis := bezpath.NewLine(curve.Start(), perpPoint)
	a, b, c := axis.Coefficients()
	if a == 0 && b == 0 {
		// Degenerate chord (zero-length curve): fall back to the main
		// axis, which will itself be degenerate and caught by the
		// caller's flatness test.
		return tightenFatLine(curve, 0, 0, 0)
	}
	return tightenFatLine(curve, a, b, c)
}

func tightenFatLine(curve bezpath.CubicBez, a, b, c float64) fatLine {
	p1, p2 := curve.ControlPoints()
	d1 := a*p1.X + b*p1.Y + c
	d2 := a*p2.X + b*p2.Y + c

	k := 4.0 / 9.0
	if (d1 >= 0) == (d2 >= 0) {
		k = 3.0 / 4.0
	}

	dMin := minOf3(0, d1, d2) * k
	dMax := maxOf3(0, d1, d2) * k
	return fatLine{A: a, B: b, C: c, DMin: dMin, DMax: dMax}
}

// isFlat reports whether the strip is narrow enough that the defining
// curve is effectively a straight segment.
func (f fatLine) isFlat() bool {
	return f.DMax-f.DMin <= epsFlat
}

// distancesOf returns the signed distance of each of curve's four
// control points from the fat line's axis, in Bernstein order. These
// are the control values of D(t), the cubic giving curve's distance
// from the axis at parameter t.
func (f fatLine) distancesOf(curve bezpath.CubicBez) [4]float64 {
	p1, p2 := curve.ControlPoints()
	return [4]float64{
		f.A*curve.Start().X + f.B*curve.Start().Y + f.C,
		f.A*p1.X + f.B*p1.Y + f.C,
		f.A*p2.X + f.B*p2.Y + f.C,
		f.A*curve.End().X + f.B*curve.End().Y + f.C,
	}
}

// clip intersects the convex hull of (t_i, D(t_i)) — D being curve's
// distance from the fat line's axis, with control values at
// t = 0, 1/3, 2/3, 1 — against the strip [DMin, DMax], returning the
// sub-range of [0,1] that might still lie in the strip.
func (f fatLine) clip(curve bezpath.CubicBez) (lo, hi float64, ok bool) {
	d := f.distancesOf(curve)
	return hullClip(d, f.DMin, f.DMax)
}

func minOf3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxOf3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

type point2 struct{ x, y float64 }

// hullClip finds the range of t in [0,1] for which the control
// polygon hull of the four Bernstein control values v (positioned at
// t = 0, 1/3, 2/3, 1) intersects the horizontal strip [dMin, dMax].
func hullClip(v [4]float64, dMin, dMax float64) (lo, hi float64, ok bool) {
	pts := []point2{{0, v[0]}, {1.0 / 3.0, v[1]}, {2.0 / 3.0, v[2]}, {1, v[3]}}
	hull := convexHull(pts)

	var candidates []float64
	for _, p := range hull {
		if p.y >= dMin && p.y <= dMax {
			candidates = append(candidates, p.x)
		}
	}
	candidates = append(candidates, hullLevelCrossings(hull, dMin)...)
	candidates = append(candidates, hullLevelCrossings(hull, dMax)...)

	if len(candidates) == 0 {
		return 0, 0, false
	}

	lo, hi = candidates[0], candidates[0]
	for _, t := range candidates[1:] {
		if t < lo {
			lo = t
		}
		if t > hi {
			hi = t
		}
	}
	if lo < 0 {
		lo = 0
	}
	if hi > 1 {
		hi = 1
	}
	return lo, hi, true
}

func hullLevelCrossings(hull []point2, level float64) []float64 {
	var out []float64
	n := len(hull)
	for i := 0; i < n; i++ {
		p1 := hull[i]
		p2 := hull[(i+1)%n]
		if (p1.y < level && p2.y > level) || (p1.y > level && p2.y < level) {
			frac := (level - p1.y) / (p2.y - p1.y)
			out = append(out, p1.x+frac*(p2.x-p1.x))
		}
	}
	return out
}

// convexHull computes the convex hull of pts (already sorted by x
// ascending, which the four fixed Bernstein positions always are) using
// Andrew's monotone chain, returning hull vertices in counter-clockwise
// order with no repeated closing point.
func convexHull(pts []point2) []point2 {
	n := len(pts)
	if n <= 2 {
		return pts
	}

	hull := make([]point2, 0, 2*n)
	for _, p := range pts {
		for len(hull) >= 2 && cross2(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	lower := len(hull) + 1
	for i := n - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && cross2(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	return hull[:len(hull)-1]
}

func cross2(o, a, b point2) float64 {
	return (a.x-o.x)*(b.y-o.y) - (a.y-o.y)*(b.x-o.x)
}
