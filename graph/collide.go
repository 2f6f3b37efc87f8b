package graph

import (
	"sort"

	"github.com/gocurve/bezpath"
	"github.com/gocurve/bezpath/intersect"
)

// maxCollidePasses bounds the detect-and-split loop. Each pass removes
// at least one crossing or terminates the loop; this is a backstop
// against the non-convergence risk spec.md's self-collide open
// question calls out when the caller's accuracy is finer than their
// own coordinate system's numerical noise (see DESIGN.md).
const maxCollidePasses = 64

// epsT is the fixed parameter-space tolerance spec.md §5 calls ε_t,
// used to decide whether a TPair hit lands at a curve's existing
// endpoint (t≈0 or t≈1) rather than its interior. It is deliberately
// independent of the caller-supplied spatial accuracy: accuracy scales
// with the geometry's own coordinate system, while ε_t is a fixed
// fraction of the parameter domain regardless of how coarse or fine
// accuracy is.
const epsT = 1e-6

// SelfCollide finds every pair of edges in the graph whose interiors
// cross or touch within accuracy and splits them at the crossing, so
// that afterwards no two distinct edges intersect except at a shared
// point. Points are only ever added, never removed: a pass that finds
// two edges already meeting exactly at one of their existing endpoints
// leaves the point array untouched.
func (g *GraphPath) SelfCollide(accuracy float64) {
	g.collide(accuracy)
}

// Collide merges other into g and resolves every crossing between the
// two original graphs, and within each, the same way SelfCollide does.
func (g *GraphPath) Collide(other *GraphPath, accuracy float64) *GraphPath {
	merged := g.Merge(other)
	merged.collide(accuracy)
	return merged
}

func (g *GraphPath) collide(accuracy float64) {
	g.dedupCoincidentPoints(accuracy)

	for pass := 0; pass < maxCollidePasses; pass++ {
		cuts := map[EdgeRef][]float64{}
		refs := g.AllEdges()

		for i := 0; i < len(refs); i++ {
			a := refs[i]
			curveA := g.Curve(a)
			boxA := curveA.FastBoundingBox()
			for j := i + 1; j < len(refs); j++ {
				b := refs[j]
				if sameEdge(g, a, b) {
					continue
				}
				curveB := g.Curve(b)
				if !boxA.Overlaps(curveB.FastBoundingBox()) {
					continue
				}
				hits := intersect.Curves(curveA, curveB, accuracy)
				for _, h := range hits {
					if isExistingSharedEndpoint(g, a, b, h, epsT) {
						continue
					}
					if h.TA > epsT && h.TA < 1-epsT {
						cuts[a] = append(cuts[a], h.TA)
					}
					if h.TB > epsT && h.TB < 1-epsT {
						cuts[b] = append(cuts[b], h.TB)
					}
				}
			}
		}

		if len(cuts) == 0 {
			return
		}
		for ref, ts := range cuts {
			g.splitEdge(ref, ts, accuracy)
		}
	}
}

// dedupCoincidentPoints merges any two points that already occupy the
// same position within eps before collision detection runs, so a graph
// built from two independently-constructed paths that happen to share
// a vertex (or a single path that revisits a coordinate) starts from
// one canonical point rather than two structurally unrelated ones.
// Per spec.md §4.5's point-merging step, the redundant point is never
// removed from the array, only left with no edges of its own.
func (g *GraphPath) dedupCoincidentPoints(eps float64) {
	for i := 0; i < len(g.points); i++ {
		for j := i + 1; j < len(g.points); j++ {
			if len(g.edges[j]) == 0 && len(g.ReverseEdgesForPoint(j)) == 0 {
				continue
			}
			if g.points[i].IsNearTo(g.points[j], eps) {
				g.mergePoints(i, j)
			}
		}
	}
}

// mergePoints redirects every edge ending at b to end at a instead, and
// moves b's outgoing edges onto a, leaving b orphaned: still present in
// the point array so any point index computed before the merge stays
// valid, but unreachable from any edge. (The roles of a and b are taken
// by the lower and higher index respectively.) An EdgeRef into b's old
// outgoing list does not stay valid, since those edges now sit in a's
// list.
func (g *GraphPath) mergePoints(a, b int) {
	if a == b {
		return
	}
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}

	for start, es := range g.edges {
		for i := range es {
			if es[i].EndIdx == hi {
				g.edges[start][i].EndIdx = lo
			}
		}
	}

	if len(g.edges[hi]) > 0 {
		g.edges[lo] = append(g.edges[lo], g.edges[hi]...)
		g.edges[hi] = nil
	}
}

// sameEdge reports whether a and b already connect the same ordered
// pair of points, the case for an edge discovered twice (once from
// each of two merged identical paths) that fully overlaps its twin
// rather than crossing it.
func sameEdge(g *GraphPath, a, b EdgeRef) bool {
	return a.StartIdx == b.StartIdx && g.edgeAt(a).EndIdx == g.edgeAt(b).EndIdx
}

// isExistingSharedEndpoint reports whether a TPair intersection falls
// at an endpoint of both curves that is already the same graph point,
// so no splitting is needed. Per spec.md §4.5's endpoint policy, a
// parameter within eps (ε_t, not the caller's spatial accuracy) of 0
// or 1 snaps to the curve's existing endpoint rather than minting a
// new point.
func isExistingSharedEndpoint(g *GraphPath, a, b EdgeRef, h intersect.TPair, eps float64) bool {
	aEnd := h.TA <= eps || h.TA >= 1-eps
	bEnd := h.TB <= eps || h.TB >= 1-eps
	if !aEnd || !bEnd {
		return false
	}
	pa := g.Curve(a).Eval(h.TA)
	pb := g.Curve(b).Eval(h.TB)
	return pa.IsNearTo(pb, eps)
}

// splitEdge subdivides the edge at ref at every parameter in ts
// (deduplicated), inserting a new point per cut unless an existing
// point already occupies that position within eps, in which case the
// split reuses it and orphans nothing new.
func (g *GraphPath) splitEdge(ref EdgeRef, ts []float64, eps float64) {
	ts = dedupSortedParams(ts, eps)
	if len(ts) == 0 {
		return
	}

	full := g.Curve(ref)
	e := *g.edgeAt(ref)

	bounds := make([]float64, 0, len(ts)+2)
	bounds = append(bounds, 0)
	bounds = append(bounds, ts...)
	bounds = append(bounds, 1)

	pointIdx := make([]int, len(bounds))
	pointIdx[0] = ref.StartIdx
	pointIdx[len(bounds)-1] = e.EndIdx
	for i := 1; i < len(bounds)-1; i++ {
		pointIdx[i] = g.findOrAddPoint(full.Eval(bounds[i]), eps)
	}

	// The first sub-segment overwrites the original edge's slot so
	// every EdgeRef pointing at it elsewhere in the graph (e.g. a
	// ReverseEdgesForPoint result already collected this pass) stays
	// valid; later sub-segments are appended as new edges.
	first := full.Subsegment(bounds[0], bounds[1])
	c1, c2 := first.ControlPoints()
	target := g.edgeAt(ref)
	target.EndIdx = pointIdx[1]
	target.CP1, target.CP2 = c1, c2

	for i := 1; i < len(bounds)-1; i++ {
		sub := full.Subsegment(bounds[i], bounds[i+1])
		c1, c2 := sub.ControlPoints()
		start := pointIdx[i]
		g.edges[start] = append(g.edges[start], edge{
			EndIdx: pointIdx[i+1],
			CP1:    c1,
			CP2:    c2,
			Kind:   e.Kind,
			Label:  e.Label,
		})
	}
}

// findOrAddPoint returns the index of an existing point within eps of
// pos, or appends a new one. Scanning the whole array is quadratic in
// the point count, acceptable at the scale §4.5 targets (graphs built
// from a handful of intersecting paths, not bulk tessellation).
func (g *GraphPath) findOrAddPoint(pos bezpath.Point, eps float64) int {
	for i, p := range g.points {
		if p.IsNearTo(pos, eps) {
			return i
		}
	}
	g.points = append(g.points, pos)
	g.edges = append(g.edges, nil)
	return len(g.points) - 1
}

func dedupSortedParams(ts []float64, eps float64) []float64 {
	sorted := append([]float64(nil), ts...)
	sort.Float64s(sorted)
	out := sorted[:0]
	for _, t := range sorted {
		if len(out) == 0 || t-out[len(out)-1] > eps {
			out = append(out, t)
		}
	}
	return out
}
