package intersect

import (
	"math"

	"github.com/gocurve/bezpath"
)

// Line finds every point where c crosses l. When clip is true, l is
// treated as the segment [0,1]; when false, l is treated as an infinite
// line and hits at any real TL are returned.
//
// Grounded on spec.md §4.2: substitute C(t) into L's implicit form to
// get a cubic f(t) = a*t^3 + b*t^2 + c*t + d, solve for roots in [0,1],
// then recover TL from whichever axis of L has the larger span (to
// avoid dividing by a near-zero delta). A near-zero leading coefficient
// is handled inside bezpath.SolveCubic, which solves the quadratic
// b*t^2 + c*t + d instead whenever |a| < 1e-10.
func Line(c bezpath.CubicBez, l bezpath.Line, clip bool) []LineHit {
	a, b, lc := l.Coefficients()
	if a == 0 && b == 0 {
		return nil
	}

	xs := [4]float64{c.P0.X, c.P1.X, c.P2.X, c.P3.X}
	ys := [4]float64{c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y}

	var cfs [4]float64
	for i := range cfs {
		cfs[i] = a*xs[i] + b*ys[i] + lc
	}

	ca := -cfs[0] + 3*cfs[1] - 3*cfs[2] + cfs[3]
	cb := 3 * (cfs[0] - 2*cfs[1] + cfs[2])
	cc := 3 * (cfs[1] - cfs[0])
	cd := cfs[0]

	roots := bezpath.SolveCubicInUnitInterval(ca, cb, cc, cd)

	dx := l.P1.X - l.P0.X
	dy := l.P1.Y - l.P0.Y

	var hits []LineHit
	for _, t := range roots {
		p := c.Eval(t)

		var tl float64
		if math.Abs(dx) >= math.Abs(dy) {
			if dx == 0 {
				continue
			}
			tl = (p.X - l.P0.X) / dx
		} else {
			if dy == 0 {
				continue
			}
			tl = (p.Y - l.P0.Y) / dy
		}

		if clip && (tl < -1e-9 || tl > 1+1e-9) {
			continue
		}
		hits = append(hits, LineHit{TC: t, TL: tl})
	}
	return hits
}
