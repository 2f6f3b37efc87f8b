// Package fit reconstructs cubic Bezier curves from a polyline of
// sample points, implementing the curve-fitter collaborator §6
// requires: fit(points, max_error) -> Option<Vec<Curve>>. It is the one
// collaborator this module provides a concrete implementation of
// rather than leaving to a caller, since bezpath/fill needs one to
// turn flood-fill boundary samples back into curves.
//
// The algorithm is Schneider's least-squares curve fit (as used by
// Graphics Gems and by flo_curves' own bezier::fit module): fit a
// single cubic to the whole run by solving for the two free control
// points' distance along the endpoint tangents, refine the
// parameterization with a few Newton-Raphson passes, and only split
// the run in two and recurse when no single cubic gets close enough.
package fit

import (
	"math"

	"github.com/gocurve/bezpath"
	"gonum.org/v1/gonum/mat"
)

const maxReparamPasses = 4

// Fit returns a sequence of cubic Beziers that together pass within
// maxError of every point in points, or ok=false if points has fewer
// than two entries or no split converges (§7: flood_fill_concave is the
// only caller that treats this as "no fit" rather than a programming
// error).
func Fit(points []bezpath.Point, maxError float64) (curves []bezpath.CubicBez, ok bool) {
	if len(points) < 2 {
		return nil, false
	}
	if len(points) == 2 {
		return []bezpath.CubicBez{chord(points[0], points[1])}, true
	}

	tanLeft := points[1].Sub(points[0]).Normalize()
	tanRight := points[len(points)-2].Sub(points[len(points)-1]).Normalize()

	curves = fitRange(points, tanLeft, tanRight, maxError)
	return curves, curves != nil
}

func chord(p0, p1 bezpath.Point) bezpath.CubicBez {
	return bezpath.NewCubicBez(p0, p0.Lerp(p1, 1.0/3.0), p0.Lerp(p1, 2.0/3.0), p1)
}

func fitRange(points []bezpath.Point, tanLeft, tanRight bezpath.Point, maxError float64) []bezpath.CubicBez {
	if len(points) == 2 {
		return []bezpath.CubicBez{chord(points[0], points[1])}
	}

	u := chordLengthParameterize(points)
	curve := generateBezier(points, u, tanLeft, tanRight)

	errSq, splitIdx := maxSquaredError(points, curve, u)
	tolSq := maxError * maxError
	if errSq < tolSq {
		return []bezpath.CubicBez{curve}
	}

	for pass := 0; pass < maxReparamPasses; pass++ {
		reparam := reparameterize(points, curve, u)
		candidate := generateBezier(points, reparam, tanLeft, tanRight)
		candidateErrSq, candidateSplit := maxSquaredError(points, candidate, reparam)
		if candidateErrSq >= errSq {
			break
		}
		curve, u, errSq, splitIdx = candidate, reparam, candidateErrSq, candidateSplit
		if errSq < tolSq {
			return []bezpath.CubicBez{curve}
		}
	}

	if splitIdx <= 0 || splitIdx >= len(points)-1 {
		return nil
	}

	centerTan := splitTangent(points, splitIdx)
	left := fitRange(points[:splitIdx+1], tanLeft, centerTan.Mul(-1), maxError)
	if left == nil {
		return nil
	}
	right := fitRange(points[splitIdx:], centerTan, tanRight, maxError)
	if right == nil {
		return nil
	}
	return append(left, right...)
}

// splitTangent estimates the tangent direction at an interior split
// point from its neighbors, pointing from the previous sample toward
// the next one.
func splitTangent(points []bezpath.Point, idx int) bezpath.Point {
	prev, next := points[idx-1], points[idx+1]
	dir := next.Sub(prev)
	if dir.LengthSquared() == 0 {
		return points[idx+1].Sub(points[idx]).Normalize()
	}
	return dir.Normalize()
}

// chordLengthParameterize assigns each point a parameter in [0,1]
// proportional to its cumulative distance along the polyline.
func chordLengthParameterize(points []bezpath.Point) []float64 {
	u := make([]float64, len(points))
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i].Distance(points[i-1])
	}
	if total == 0 {
		for i := range u {
			u[i] = float64(i) / float64(len(points)-1)
		}
		return u
	}
	acc := 0.0
	for i := 1; i < len(points); i++ {
		acc += points[i].Distance(points[i-1])
		u[i] = acc / total
	}
	return u
}

// generateBezier solves the 2x2 least-squares system for the distance
// each free control point sits from its endpoint along tanLeft/tanRight,
// per Schneider's algorithm. p1 = p0 + alpha0*tanLeft, p2 = p3 +
// alpha1*tanRight; C is the tangent-basis Gram matrix and X projects
// the residual (sample minus the zero-tangent chord curve) onto it.
func generateBezier(points []bezpath.Point, u []float64, tanLeft, tanRight bezpath.Point) bezpath.CubicBez {
	p0 := points[0]
	p3 := points[len(points)-1]

	var c00, c01, c11, x0, x1 float64
	for i, t := range u {
		mt := 1 - t
		a0 := tanLeft.Mul(3 * mt * mt * t)
		a1 := tanRight.Mul(3 * mt * t * t)

		v := points[i].Sub(chordPoint(p0, p3, t))

		c00 += a0.Dot(a0)
		c01 += a0.Dot(a1)
		c11 += a1.Dot(a1)
		x0 += a0.Dot(v)
		x1 += a1.Dot(v)
	}

	chordLen := p0.Distance(p3)
	fallback := func() bezpath.CubicBez {
		third := chordLen / 3
		p1 := p0.Add(tanLeft.Mul(third))
		p2 := p3.Add(tanRight.Mul(third))
		return bezpath.NewCubicBez(p0, p1, p2, p3)
	}
	if chordLen == 0 {
		return bezpath.NewCubicBez(p0, p0, p3, p3)
	}

	a := mat.NewDense(2, 2, []float64{c00, c01, c01, c11})
	b := mat.NewVecDense(2, []float64{x0, x1})
	alpha := mat.NewVecDense(2, nil)
	if err := alpha.SolveVec(a, b); err != nil {
		return fallback()
	}

	a0, a1 := alpha.AtVec(0), alpha.AtVec(1)
	floor := chordLen * 1e-6
	if a0 < floor || a1 < floor {
		return fallback()
	}

	p1 := p0.Add(tanLeft.Mul(a0))
	p2 := p3.Add(tanRight.Mul(a1))
	return bezpath.NewCubicBez(p0, p1, p2, p3)
}

// chordPoint evaluates the degenerate cubic with both interior control
// points collapsed onto their nearest endpoint (P1=P0, P2=P3): the part
// of the fitted curve's position at t that doesn't depend on the two
// unknown control points.
func chordPoint(p0, p3 bezpath.Point, t float64) bezpath.Point {
	mt := 1 - t
	w0 := mt*mt*mt + 3*mt*mt*t
	w3 := 3*mt*t*t + t*t*t
	return p0.Mul(w0).Add(p3.Mul(w3))
}

func maxSquaredError(points []bezpath.Point, curve bezpath.CubicBez, u []float64) (float64, int) {
	maxErr := 0.0
	splitIdx := len(points) / 2
	for i, t := range u {
		d := curve.Eval(t).Sub(points[i])
		errSq := d.Dot(d)
		if errSq > maxErr {
			maxErr = errSq
			splitIdx = i
		}
	}
	return maxErr, splitIdx
}

// reparameterize improves each point's curve parameter with one
// Newton-Raphson step minimizing its distance to curve.
func reparameterize(points []bezpath.Point, curve bezpath.CubicBez, u []float64) []float64 {
	out := make([]float64, len(u))
	for i, t := range u {
		out[i] = newtonRaphson(curve, points[i], t)
	}
	return out
}

func newtonRaphson(curve bezpath.CubicBez, p bezpath.Point, t float64) float64 {
	q := curve.Eval(t)
	d1 := curve.Tangent(t).ToPoint()
	d2 := secondDerivative(curve, t)

	diff := q.Sub(p)
	numerator := diff.Dot(d1)
	denominator := d1.Dot(d1) + diff.Dot(d2)
	if denominator == 0 || math.IsNaN(denominator) {
		return t
	}

	next := t - numerator/denominator
	if next < 0 {
		next = 0
	} else if next > 1 {
		next = 1
	}
	return next
}

func secondDerivative(c bezpath.CubicBez, t float64) bezpath.Point {
	mt := 1 - t
	v1 := c.P2.Sub(c.P1.Mul(2)).Add(c.P0)
	v2 := c.P3.Sub(c.P2.Mul(2)).Add(c.P1)
	return v1.Mul(6 * mt).Add(v2.Mul(6 * t))
}
