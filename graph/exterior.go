package graph

import (
	"math"

	"github.com/gocurve/bezpath"
	"github.com/gocurve/bezpath/path"
	"github.com/katalvlaran/lvlath/tsp"
)

// HealExteriorGaps rewrites a singleton Uncategorised or Interior edge
// to Exterior when it is the sole link between two points that each
// have exactly one incoming and one outgoing edge, and both of its
// neighbors along that chain are already Exterior. Occasionally
// ray-casting misclassifies one edge of an otherwise-Exterior loop
// (typically a very short edge whose midpoint sampling lands too
// close to a shared vertex); this patches the gap so exterior_paths
// can still walk a single closed loop through it. Returns true if any
// edge changed.
func (g *GraphPath) HealExteriorGaps() bool {
	changed := false
	for _, ref := range g.AllEdges() {
		kind := g.Kind(ref)
		if kind != Uncategorised && kind != Interior {
			continue
		}

		inAtStart := g.ReverseEdgesForPoint(ref.StartIdx)
		outAtStart := g.EdgesForPoint(ref.StartIdx)
		if len(inAtStart) != 1 || len(outAtStart) != 1 {
			continue
		}

		endIdx := g.EndPointIndex(ref)
		outAtEnd := g.EdgesForPoint(endIdx)
		inAtEnd := g.ReverseEdgesForPoint(endIdx)
		if len(outAtEnd) != 1 || len(inAtEnd) != 1 {
			continue
		}

		prev, next := inAtStart[0], outAtEnd[0]
		if g.Kind(prev) == Exterior && g.Kind(next) == Exterior {
			g.SetEdgeKind(ref, Exterior)
			changed = true
		}
	}
	return changed
}

// ExteriorPaths walks the subgraph of Exterior edges into zero or more
// closed paths, consuming every Exterior edge exactly once.
func (g *GraphPath) ExteriorPaths() []*path.Path {
	used := map[EdgeRef]bool{}
	var result []*path.Path

	for _, ref := range g.AllEdges() {
		if g.Kind(ref) != Exterior || used[ref] {
			continue
		}
		result = append(result, g.traceExteriorLoop(ref, used))
	}

	g.eulerianDiagnostic()
	return result
}

// eulerianDiagnostic is a debug-only sanity check on the Exterior edge
// set traceExteriorLoop just walked: at every point it touches, an
// Exterior boundary must have equal in- and out-degree (that balance
// is what lets nextExteriorEdge always find a way to close the loop),
// which makes the Exterior edges, read as an undirected multigraph,
// Eulerian in every connected component. It never changes g; a
// mismatch only means the classifier or heal pass left the boundary
// malformed and is reported via the ambient logger, per spec.md §7's
// diagnostics-not-panics rule.
func (g *GraphPath) eulerianDiagnostic() {
	adj := make([][]int, len(g.points))
	for start, edges := range g.edges {
		for _, e := range edges {
			if e.Kind != Exterior {
				continue
			}
			adj[start] = append(adj[start], e.EndIdx)
			adj[e.EndIdx] = append(adj[e.EndIdx], start)
		}
	}

	visited := make([]bool, len(adj))
	for start := range adj {
		if visited[start] || len(adj[start]) == 0 {
			continue
		}

		halfEdges := markComponent(adj, start, visited)
		circuit := tsp.EulerianCircuit(adj, start)
		if len(circuit) != halfEdges+1 {
			bezpath.Logger().Warn("graph: exterior boundary is not a closed Eulerian circuit",
				"component_start", start, "half_edges", halfEdges, "circuit_len", len(circuit))
		}
	}
}

// markComponent flood-fills the connected component containing start,
// marking every reached vertex visited, and returns its half-edge
// count (each undirected adjacency entry — twice the Exterior edge
// count in that component).
func markComponent(adj [][]int, start int, visited []bool) int {
	stack := []int{start}
	visited[start] = true
	halfEdges := 0
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		halfEdges += len(adj[u])
		for _, v := range adj[u] {
			if !visited[v] {
				visited[v] = true
				stack = append(stack, v)
			}
		}
	}
	return halfEdges
}

func (g *GraphPath) traceExteriorLoop(start EdgeRef, used map[EdgeRef]bool) *path.Path {
	startPoint := g.StartPoint(start)
	p := path.New(startPoint)

	current := start
	for {
		used[current] = true
		cp1, cp2 := g.ControlPoints(current)
		p.AddCubic(cp1, cp2, g.EndPoint(current))

		endIdx := g.EndPointIndex(current)
		if g.points[endIdx].IsNearTo(startPoint, 1e-9) {
			return p
		}

		next := g.nextExteriorEdge(current, endIdx, used)
		if next == nil {
			// A dangling chain means an unhealed gap upstream; stop
			// rather than loop forever on a graph that never closes.
			return p
		}
		current = *next
	}
}

// nextExteriorEdge picks the unused Exterior edge leaving atPoint with
// the smallest left turn relative to incoming's arrival direction, per
// spec.md §4.9's tie-break. A left turn is the counter-clockwise angle
// from the incoming tangent to the candidate's departure tangent.
func (g *GraphPath) nextExteriorEdge(incoming EdgeRef, atPoint int, used map[EdgeRef]bool) *EdgeRef {
	inDir := g.Curve(incoming).Tangent(1)

	var best *EdgeRef
	bestAngle := math.Inf(1)
	for _, e := range g.EdgesForPoint(atPoint) {
		if used[e] || g.Kind(e) != Exterior {
			continue
		}
		outDir := g.Curve(e).Tangent(0)
		angle := inDir.Angle(outDir)
		if angle < 0 {
			angle += 2 * math.Pi
		}
		if angle < bestAngle {
			bestAngle = angle
			ref := e
			best = &ref
		}
	}
	return best
}

// PathContainsPoint reports whether p lies inside the region g
// encloses, by casting a ray from p far outside the graph's extent and
// parity-counting the collisions RayCollisions reports. Because
// RayCollisions already applies the corner-grazing rule, a ray that
// merely touches a convex vertex of g does not perturb the parity.
func (g *GraphPath) PathContainsPoint(p bezpath.Point) bool {
	far := bezpath.Pt(p.X+farCastDistance, p.Y+farCastJitter)
	count := 0
	for _, c := range g.RayCollisions(p, far) {
		if c.RayT > rayEps {
			count++
		}
	}
	return count%2 == 1
}

// farCastDistance is chosen large relative to any plausible shape
// extent so the cast ray's far endpoint lies outside it; farCastJitter
// nudges the ray off horizontal to make an exact axis-aligned edge
// alignment astronomically unlikely.
const (
	farCastDistance = 1e7
	farCastJitter   = 1e-3
)
