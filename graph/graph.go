package graph

import (
	"github.com/gocurve/bezpath"
	"github.com/gocurve/bezpath/path"
)

// edge is one outgoing cubic segment from its owning point.
type edge struct {
	EndIdx   int
	CP1, CP2 bezpath.Point
	Kind     EdgeKind
	Label    PathLabel
}

// GraphPath is an indexed array of points plus, per point, an ordered
// list of outgoing edges. Storing edges as (start_point_index,
// edge_index_within_point) rather than as owned back-pointers avoids
// the cyclic-ownership problem a doubly-linked edge/point graph would
// have, and lets a point that loses every outgoing edge during
// collision resolution stay in the array as an "orphan" instead of
// forcing every later index to shift.
type GraphPath struct {
	points []bezpath.Point
	edges  [][]edge
}

// FromPath builds a graph with one point per segment endpoint
// (including the path's start point) and one Uncategorised edge per
// segment, every edge carrying label.
func FromPath(p *path.Path, label PathLabel) *GraphPath {
	n := p.Len()
	g := &GraphPath{
		points: make([]bezpath.Point, n),
		edges:  make([][]edge, n),
	}
	for i := 0; i < n; i++ {
		g.points[i] = p.PointAt(i)
	}
	for i := 0; i < n; i++ {
		t := p.Segments[i]
		g.edges[i] = []edge{{
			EndIdx: (i + 1) % n,
			CP1:    t.C1,
			CP2:    t.C2,
			Kind:   Uncategorised,
			Label:  label,
		}}
	}
	return g
}

// NumPoints returns the number of points in the graph, including any
// orphaned points with no outgoing edges.
func (g *GraphPath) NumPoints() int { return len(g.points) }

// PointPosition returns the position of point idx.
func (g *GraphPath) PointPosition(idx int) bezpath.Point { return g.points[idx] }

// EdgesForPoint returns the outgoing edges from point idx, in their
// stored order.
func (g *GraphPath) EdgesForPoint(idx int) []EdgeRef {
	refs := make([]EdgeRef, len(g.edges[idx]))
	for i := range refs {
		refs[i] = EdgeRef{StartIdx: idx, EdgeIdx: i}
	}
	return refs
}

// ReverseEdgesForPoint returns every edge in the graph that ends at
// idx, in ascending start-point order.
func (g *GraphPath) ReverseEdgesForPoint(idx int) []EdgeRef {
	var refs []EdgeRef
	for start, es := range g.edges {
		for i, e := range es {
			if e.EndIdx == idx {
				refs = append(refs, EdgeRef{StartIdx: start, EdgeIdx: i})
			}
		}
	}
	return refs
}

// AllEdges returns every edge in the graph, in ascending
// (start point, edge index) order.
func (g *GraphPath) AllEdges() []EdgeRef {
	var refs []EdgeRef
	for start, es := range g.edges {
		for i := range es {
			refs = append(refs, EdgeRef{StartIdx: start, EdgeIdx: i})
		}
	}
	return refs
}

func (g *GraphPath) edgeAt(ref EdgeRef) *edge { return &g.edges[ref.StartIdx][ref.EdgeIdx] }

// StartPointIndex returns the index of ref's start point.
func (g *GraphPath) StartPointIndex(ref EdgeRef) int { return ref.StartIdx }

// EndPointIndex returns the index of ref's end point.
func (g *GraphPath) EndPointIndex(ref EdgeRef) int { return g.edgeAt(ref).EndIdx }

// StartPoint returns the position of ref's start point.
func (g *GraphPath) StartPoint(ref EdgeRef) bezpath.Point { return g.points[ref.StartIdx] }

// EndPoint returns the position of ref's end point.
func (g *GraphPath) EndPoint(ref EdgeRef) bezpath.Point { return g.points[g.edgeAt(ref).EndIdx] }

// ControlPoints returns ref's two control points.
func (g *GraphPath) ControlPoints(ref EdgeRef) (bezpath.Point, bezpath.Point) {
	e := g.edgeAt(ref)
	return e.CP1, e.CP2
}

// Curve materializes ref as a CubicBez.
func (g *GraphPath) Curve(ref EdgeRef) bezpath.CubicBez {
	e := g.edgeAt(ref)
	return bezpath.NewCubicBez(g.points[ref.StartIdx], e.CP1, e.CP2, g.points[e.EndIdx])
}

// Kind returns ref's current classification.
func (g *GraphPath) Kind(ref EdgeRef) EdgeKind { return g.edgeAt(ref).Kind }

// Label returns ref's source-path label.
func (g *GraphPath) Label(ref EdgeRef) PathLabel { return g.edgeAt(ref).Label }

// SetEdgeKind sets ref's classification directly, with no propagation
// to neighboring edges. Most callers want SetEdgeKindConnected.
func (g *GraphPath) SetEdgeKind(ref EdgeRef, kind EdgeKind) { g.edgeAt(ref).Kind = kind }

// Merge returns a new graph holding every point and edge of g followed
// by every point and edge of other, with other's edge targets rebased
// by the number of points in g. Merge performs no geometric reasoning;
// it is the first half of Collide and can be used on its own to
// combine paths already known not to intersect.
func (g *GraphPath) Merge(other *GraphPath) *GraphPath {
	offset := len(g.points)
	result := &GraphPath{
		points: append(append([]bezpath.Point(nil), g.points...), other.points...),
		edges:  make([][]edge, 0, len(g.points)+len(other.points)),
	}
	result.edges = append(result.edges, cloneEdges(g.edges)...)
	for _, es := range other.edges {
		shifted := make([]edge, len(es))
		for i, e := range es {
			shifted[i] = e
			shifted[i].EndIdx += offset
		}
		result.edges = append(result.edges, shifted)
	}
	return result
}

func cloneEdges(edges [][]edge) [][]edge {
	out := make([][]edge, len(edges))
	for i, es := range edges {
		out[i] = append([]edge(nil), es...)
	}
	return out
}
