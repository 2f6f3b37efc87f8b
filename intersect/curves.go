package intersect

import (
	"math"

	"github.com/gocurve/bezpath"
)

// Curves finds every point where a and b intersect, to within accuracy.
// Grounded on original_source/src/bezier/intersection/curve_curve_clip.rs:
// the overlap short-circuit runs first, then the two curves are
// repeatedly clipped against each other's fat line (and its
// perpendicular) until both shrink below accuracy, subdividing and
// recursing whenever a round fails to shrink either curve by 20%.
func Curves(a, b bezpath.CubicBez, accuracy float64) []TPair {
	s1 := bezpath.NewCurveSection(a, 0, 1)
	s2 := bezpath.NewCurveSection(b, 0, 1)
	return curvesInner(s1, s2, accuracy*accuracy)
}

// ltPair is an intermediate (linear-section-t, curved-section-t) pair,
// both local to their own section's [0,1] range, produced while the
// linearity shortcut is active.
type ltPair struct {
	Linear, Curved float64
}

func curvesInner(curve1, curve2 bezpath.CurveSection, accuracySq float64) []TPair {
	if region, ok := Overlap(curve1.ToCubicBez(), curve2.ToCubicBez()); ok {
		c1t1 := curve1.TForT(region.A[0])
		c1t2 := curve1.TForT(region.A[1])
		c2t1 := curve2.TForT(region.B[0])
		c2t2 := curve2.TForT(region.B[1])

		if c1t1 == c1t2 || c2t1 == c2t2 {
			return []TPair{{TA: c1t1, TB: c2t1}}
		}
		return []TPair{{TA: c1t1, TB: c2t1}, {TA: c1t2, TB: c2t2}}
	}

	curve1LastLen := curveHullLengthSq(curve1)
	curve2LastLen := curveHullLengthSq(curve2)
	if curve1LastLen == 0.0 || curve2LastLen == 0.0 {
		return nil
	}

	for {
		curve2Len := curve2LastLen
		if curve2LastLen > accuracySq {
			cr := clipSection(curve2, curve1)
			switch cr.kind {
			case clipNone:
				return nil
			case clipLinear:
				pairs := intersectionsWithLinearSection(curve1, curve2)
				result := make([]TPair, 0, len(pairs))
				for _, pr := range pairs {
					result = append(result, TPair{TA: curve1.TForT(pr.Linear), TB: curve2.TForT(pr.Curved)})
				}
				return result
			}
			curve2 = curve2.Subsection(cr.lo, cr.hi)
			curve2Len = curveHullLengthSq(curve2)
		}

		curve1Len := curve1LastLen
		if curve1LastLen > accuracySq {
			cr := clipSection(curve1, curve2)
			switch cr.kind {
			case clipNone:
				return nil
			case clipLinear:
				pairs := intersectionsWithLinearSection(curve2, curve1)
				result := make([]TPair, 0, len(pairs))
				for _, pr := range pairs {
					result = append(result, TPair{TA: curve1.TForT(pr.Curved), TB: curve2.TForT(pr.Linear)})
				}
				return result
			}
			curve1 = curve1.Subsection(cr.lo, cr.hi)
			curve1Len = curveHullLengthSq(curve1)
		}

		if curve1Len <= accuracySq && curve2Len <= accuracySq {
			if curve1.FastBoundingBox().Overlaps(curve2.FastBoundingBox()) {
				return []TPair{{TA: (curve1.TMin + curve1.TMax) * 0.5, TB: (curve2.TMin + curve2.TMax) * 0.5}}
			}
			return nil
		}

		if curve1LastLen*stallShrinkRatio <= curve1Len && curve2LastLen*stallShrinkRatio <= curve2Len {
			if curve1Len/curve1LastLen > curve2Len/curve2LastLen {
				left := curve1.Subsection(0.0, 0.5)
				right := curve1.Subsection(0.5, 1.0)
				leftResult := curvesInner(left, curve2, accuracySq)
				rightResult := curvesInner(right, curve2, accuracySq)
				return joinSubsections(curve1, leftResult, rightResult, accuracySq, func(p TPair) float64 { return p.TA })
			}
			left := curve2.Subsection(0.0, 0.5)
			right := curve2.Subsection(0.5, 1.0)
			leftResult := curvesInner(curve1, left, accuracySq)
			rightResult := curvesInner(curve1, right, accuracySq)
			return joinSubsections(curve2, leftResult, rightResult, accuracySq, func(p TPair) float64 { return p.TB })
		}

		curve1LastLen, curve2LastLen = curve1Len, curve2Len
	}
}

// curveHullLengthSq measures a section's control polygon length, used
// to detect both convergence (below accuracy^2) and stalled shrinkage.
func curveHullLengthSq(s bezpath.CurveSection) float64 {
	if math.Abs(s.TMax-s.TMin) < 1e-12 {
		return 0.0
	}
	c := s.ToCubicBez()
	o1 := c.P1.Sub(c.P0)
	o2 := c.P2.Sub(c.P1)
	o3 := c.P3.Sub(c.P2)
	return o1.Dot(o1) + o2.Dot(o2) + o3.Dot(o3)
}

type clipKind int

const (
	clipNone clipKind = iota
	clipSome
	clipLinear
)

type clipResult struct {
	kind   clipKind
	lo, hi float64
}

// clipSection runs one round of the fat-line clip: clip toClip against
// the fat line (and its perpendicular) built from clipAgainst, keeping
// the tighter of the two resulting ranges.
func clipSection(toClip, clipAgainst bezpath.CurveSection) clipResult {
	against := clipAgainst.ToCubicBez()
	subject := toClip.ToCubicBez()

	main := newFatLine(against)
	lo, hi, ok := main.clip(subject)

	if main.isFlat() {
		return clipResult{kind: clipLinear}
	}

	var result clipResult
	if ok {
		perp := newPerpFatLine(against)
		loP, hiP, okP := perp.clip(subject)
		if okP {
			if (hi - lo) < (hiP - loP) {
				result = clipResult{kind: clipSome, lo: lo, hi: hi}
			} else {
				result = clipResult{kind: clipSome, lo: loP, hi: hiP}
			}
		} else {
			result = clipResult{kind: clipNone}
		}
	} else {
		result = clipResult{kind: clipNone}
	}

	if result.kind == clipSome && result.lo == result.hi {
		result.lo = math.Max(0.0, result.lo-degenerateRangeWiden)
		result.hi = math.Min(1.0, result.hi+degenerateRangeWiden)
	}
	return result
}

// intersectionsWithLinearSection treats linear as a straight ray and
// finds where curved crosses it, recovering linear's own parameter via
// tForPoint. Falls back to a midpoint-only match when linear is too
// short for tForPoint to resolve reliably.
func intersectionsWithLinearSection(linear, curved bezpath.CurveSection) []ltPair {
	ray := bezpath.NewLine(linear.Start(), linear.End())
	curvedCubic := curved.ToCubicBez()
	linearCubic := linear.ToCubicBez()

	rayHits := Line(curvedCubic, ray, false)

	var result []ltPair
	for _, h := range rayHits {
		pos := curvedCubic.Eval(h.TC)
		if t, ok := tForPoint(linearCubic, pos, smallDistance); ok {
			result = append(result, ltPair{Linear: t, Curved: h.TC})
		}
	}

	if len(result) == 0 && len(rayHits) > 0 {
		if linear.Eval(0.0).IsNearTo(linear.Eval(1.0), linearTouchEndpointGap) {
			mid := linear.Eval(0.5)
			for _, h := range rayHits {
				pos := curvedCubic.Eval(h.TC)
				if pos.IsNearTo(mid, smallDistance) {
					result = append(result, ltPair{Linear: 0.5, Curved: h.TC})
				}
			}
		}
	}
	return result
}

// joinSubsections concatenates the results of two sibling recursions,
// dropping a duplicate when left's last point and right's first point
// are within accuracySq*2 of each other in the pivot curve's space.
func joinSubsections(pivot bezpath.CurveSection, left, right []TPair, accuracySq float64, pivotValue func(TPair) float64) []TPair {
	if len(left) == 0 {
		return right
	}
	if len(right) == 0 {
		return left
	}

	leftT1 := pivot.LocalTForT(pivotValue(left[len(left)-1]))
	rightT1 := pivot.LocalTForT(pivotValue(right[0]))

	if math.Abs(rightT1-leftT1) < joinPivotGap {
		p1 := pivot.Eval(leftT1)
		p2 := pivot.Eval(rightT1)
		offset := p2.Sub(p1)
		if offset.LengthSquared() <= accuracySq*joinPointGapFactor {
			combined := make([]TPair, 0, len(left)+len(right)-1)
			combined = append(combined, left...)
			combined = append(combined, right[1:]...)
			return combined
		}
	}

	combined := make([]TPair, 0, len(left)+len(right))
	combined = append(combined, left...)
	combined = append(combined, right...)
	return combined
}
