package graph

import (
	"math"
	"sort"

	"github.com/gocurve/bezpath"
	"github.com/gocurve/bezpath/intersect"
)

// cornerSampleT is how far along an incident edge ray_collisions
// samples to decide which side of the ray it departs/arrives on, per
// spec.md §9's tangent-vanishes-at-the-endpoint nudge.
const cornerSampleT = 0.02

// rayEps bounds how close a ray parameter or curve parameter has to be
// to 0/1 to count as "at" that boundary.
const rayEps = 1e-6

// maxCornerChainSteps bounds how far cornerCollision walks past a run
// of edges lying exactly on the ray line before giving up and treating
// the corner as grazing. Large enough for any realistic polygon, small
// enough to guarantee termination if a degenerate graph ever formed a
// collinear cycle.
const maxCornerChainSteps = 16

// RayCollision is one entry of ray_collisions: the edge struck, the
// edge-local and ray-local parameters of the strike, and whether the
// strike landed at a point with more than one outgoing edge (an
// intersection) rather than in an edge's interior.
type RayCollision struct {
	Edge           EdgeRef
	CurveT         float64
	RayT           float64
	Point          bezpath.Point
	IsIntersection bool
}

// RayCollisions casts the ray from `from` through `to` and beyond, and
// returns every point where it crosses an edge of the graph, ordered
// by RayT ascending. It implements spec.md §4.6's determinism rules:
// grazing a convex corner produces no collision, passing through a
// concave corner or true intersection produces two (one per side),
// an exact hit on the ray's own endpoint produces one, and a ray that
// runs along an edge produces collisions at that edge's endpoints only.
func (g *GraphPath) RayCollisions(from, to bezpath.Point) []RayCollision {
	line := bezpath.NewLine(from, to)

	var out []RayCollision
	visitedPoints := map[int]bool{}

	refs := g.AllEdges()
	for _, ref := range refs {
		curve := g.Curve(ref)
		for _, hit := range intersect.Line(curve, line, false) {
			if hit.TL < -rayEps {
				continue
			}
			if hit.TC <= rayEps {
				out = append(out, g.cornerCollision(ref.StartIdx, ref, 0, hit.TL, to, visitedPoints)...)
				continue
			}
			if hit.TC >= 1-rayEps {
				out = append(out, g.cornerCollision(g.edgeAt(ref).EndIdx, ref, 1, hit.TL, to, visitedPoints)...)
				continue
			}
			out = append(out, RayCollision{
				Edge:   ref,
				CurveT: hit.TC,
				RayT:   hit.TL,
				Point:  curve.Eval(hit.TC),
			})
		}
	}

	sortRayCollisions(g, out)
	return out
}

// cornerCollision handles a hit landing at pointIdx (an edge endpoint).
// It reports zero, one, or two collisions depending on whether the
// incident edges actually cross the ray line or merely touch it, and
// whether pointIdx coincides with the ray's own terminal point.
func (g *GraphPath) cornerCollision(pointIdx int, hitRef EdgeRef, hitCurveT, rayT float64, rayTo bezpath.Point, visited map[int]bool) []RayCollision {
	if visited[pointIdx] {
		return nil
	}
	visited[pointIdx] = true

	pos := g.points[pointIdx]

	out, in := g.EdgesForPoint(pointIdx), g.ReverseEdgesForPoint(pointIdx)
	if len(out)+len(in) == 0 {
		return nil
	}

	line := bezpath.NewLine(pos, rayTo)
	var neg, pos2 []EdgeRef
	for _, e := range out {
		switch g.forwardSide(e, line) {
		case -1:
			neg = append(neg, e)
		case 1:
			pos2 = append(pos2, e)
		}
	}
	for _, e := range in {
		switch g.backwardSide(e, line) {
		case -1:
			neg = append(neg, e)
		case 1:
			pos2 = append(pos2, e)
		}
	}

	if len(neg) == 0 || len(pos2) == 0 {
		// Every incident edge is on the same side: the ray grazes a
		// convex corner without actually crossing into the shape.
		return nil
	}

	isIntersection := len(out) > 1 || len(in) > 1
	atRayEnd := pos.IsNearTo(rayTo, rayEps)

	report := func(e EdgeRef, t float64) RayCollision {
		return RayCollision{
			Edge:           e,
			CurveT:         t,
			RayT:           rayT,
			Point:          pos,
			IsIntersection: isIntersection,
		}
	}

	if atRayEnd {
		// The ray terminates exactly on this point: report a single
		// collision, preferring the edge the caller already matched.
		return []RayCollision{report(hitRef, hitCurveT)}
	}

	// The ray passes through: report one collision per side, so a
	// closed shape's total collision count stays even.
	var results []RayCollision
	results = append(results, report(neg[0], edgeTAt(g, neg[0], pointIdx)))
	results = append(results, report(pos2[0], edgeTAt(g, pos2[0], pointIdx)))
	return results
}

func edgeTAt(g *GraphPath, e EdgeRef, pointIdx int) float64 {
	if e.StartIdx == pointIdx {
		return 0
	}
	return 1
}

// forwardSide reports which side of line the boundary departs toward
// starting along e: -1, 1, or 0 if e and everything it leads to stays
// exactly on line. A single edge lying exactly along the ray (the
// collinear-overlap case of spec.md §4.6) always samples as 0 on its
// own; forwardSide walks past its far endpoint to the edge that
// continues the chain and samples that instead, so a corner where the
// ray runs along one incident edge is still classified by where the
// boundary actually goes, not left indistinguishable from a true
// graze.
func (g *GraphPath) forwardSide(e EdgeRef, line bezpath.Line) float64 {
	for step := 0; step < maxCornerChainSteps; step++ {
		if side := line.WhichSide(g.Curve(e).Eval(cornerSampleT)); side != 0 {
			return side
		}
		next := g.chainNext(e)
		if next == nil {
			return 0
		}
		e = *next
	}
	return 0
}

// backwardSide is forwardSide's mirror for an incoming edge, walking a
// collinear run back toward its near endpoint instead of forward.
func (g *GraphPath) backwardSide(e EdgeRef, line bezpath.Line) float64 {
	for step := 0; step < maxCornerChainSteps; step++ {
		if side := line.WhichSide(g.Curve(e).Eval(1 - cornerSampleT)); side != 0 {
			return side
		}
		prev := g.chainPrev(e)
		if prev == nil {
			return 0
		}
		e = *prev
	}
	return 0
}

// chainNext picks the outgoing edge at e's end point whose departure
// tangent deviates least, by absolute angle in either direction, from
// e's arrival tangent, to keep a walk along a chain of edges
// unambiguous at a point where more than one edge meets. This differs
// from nextExteriorEdge, which picks the smallest counter-clockwise
// turn.
func (g *GraphPath) chainNext(e EdgeRef) *EdgeRef {
	endIdx := g.edgeAt(e).EndIdx
	inDir := g.Curve(e).Tangent(1)
	return closestContinuation(inDir, g.EdgesForPoint(endIdx), func(c EdgeRef) bezpath.Vec2 {
		return g.Curve(c).Tangent(0)
	})
}

// chainPrev is chainNext's mirror: the incoming edge at e's start point
// whose arrival tangent deviates least from e's own departure tangent.
func (g *GraphPath) chainPrev(e EdgeRef) *EdgeRef {
	outDir := g.Curve(e).Tangent(0)
	return closestContinuation(outDir, g.ReverseEdgesForPoint(e.StartIdx), func(c EdgeRef) bezpath.Vec2 {
		return g.Curve(c).Tangent(1)
	})
}

func closestContinuation(dir bezpath.Vec2, candidates []EdgeRef, tangentAt func(EdgeRef) bezpath.Vec2) *EdgeRef {
	var best *EdgeRef
	bestAngle := math.Inf(1)
	for _, c := range candidates {
		angle := math.Abs(dir.Angle(tangentAt(c)))
		if angle < bestAngle {
			bestAngle = angle
			ref := c
			best = &ref
		}
	}
	return best
}

// sortRayCollisions orders collisions by RayT, breaking ties per
// spec.md §4.6: when two collisions share a RayT and their edges share
// a start point, the earlier-indexed edge sorts first if its label's
// direction is Clockwise and last if Anticlockwise.
func sortRayCollisions(g *GraphPath, cs []RayCollision) {
	sort.SliceStable(cs, func(i, j int) bool {
		a, b := cs[i], cs[j]
		if math.Abs(a.RayT-b.RayT) > rayEps {
			return a.RayT < b.RayT
		}
		if a.Edge.StartIdx == b.Edge.StartIdx {
			dir := g.Label(a.Edge).Direction
			if a.Edge.EdgeIdx != b.Edge.EdgeIdx {
				earlierFirst := a.Edge.EdgeIdx < b.Edge.EdgeIdx
				if dir == Anticlockwise {
					return !earlierFirst
				}
				return earlierFirst
			}
		}
		if a.Edge.StartIdx != b.Edge.StartIdx {
			return a.Edge.StartIdx < b.Edge.StartIdx
		}
		return a.Edge.EdgeIdx < b.Edge.EdgeIdx
	})
}
