package graph

import (
	"testing"

	"github.com/gocurve/bezpath"
	"github.com/gocurve/bezpath/path"
)

func rectPath(t *testing.T, x, y, w, h float64) *path.Path {
	t.Helper()
	p, err := path.NewBuilder().Rect(x, y, w, h).Build()
	if err != nil {
		t.Fatalf("building rect: %v", err)
	}
	return p
}

func clockwiseLabel(idx int) PathLabel { return PathLabel{PathIndex: idx, Direction: Clockwise} }

func TestFromPath_OnePointAndEdgePerSegment(t *testing.T) {
	p := rectPath(t, 0, 0, 10, 10)
	g := FromPath(p, clockwiseLabel(0))

	if g.NumPoints() != 4 {
		t.Fatalf("NumPoints() = %d, want 4", g.NumPoints())
	}
	for i := 0; i < 4; i++ {
		edges := g.EdgesForPoint(i)
		if len(edges) != 1 {
			t.Fatalf("point %d has %d outgoing edges, want 1", i, len(edges))
		}
		if g.Kind(edges[0]) != Uncategorised {
			t.Fatalf("point %d edge kind = %v, want Uncategorised", i, g.Kind(edges[0]))
		}
		if g.Label(edges[0]) != clockwiseLabel(0) {
			t.Fatalf("point %d edge label = %+v, want %+v", i, g.Label(edges[0]), clockwiseLabel(0))
		}
	}
	// The fourth edge closes back to point 0.
	last := g.EdgesForPoint(3)[0]
	if g.EndPointIndex(last) != 0 {
		t.Fatalf("closing edge end = %d, want 0", g.EndPointIndex(last))
	}
}

func TestMerge_RebasesOtherIndices(t *testing.T) {
	a := FromPath(rectPath(t, 0, 0, 10, 10), clockwiseLabel(0))
	b := FromPath(rectPath(t, 20, 20, 10, 10), clockwiseLabel(1))

	merged := a.Merge(b)
	if merged.NumPoints() != 8 {
		t.Fatalf("NumPoints() = %d, want 8", merged.NumPoints())
	}

	// b's point 0 is now at index 4; its first edge should end at
	// index 5 (b's point 1 rebased), not 1.
	bFirst := merged.EdgesForPoint(4)[0]
	if merged.EndPointIndex(bFirst) != 5 {
		t.Fatalf("rebased end index = %d, want 5", merged.EndPointIndex(bFirst))
	}
	if merged.Label(bFirst) != clockwiseLabel(1) {
		t.Fatalf("rebased label = %+v, want %+v", merged.Label(bFirst), clockwiseLabel(1))
	}
	if got := merged.PointPosition(4); !got.IsNearTo(bezpath.Pt(20, 20), 1e-9) {
		t.Fatalf("rebased point position = %+v, want (20,20)", got)
	}
}

func TestReverseEdgesForPoint(t *testing.T) {
	p := rectPath(t, 0, 0, 10, 10)
	g := FromPath(p, clockwiseLabel(0))

	for i := 0; i < 4; i++ {
		rev := g.ReverseEdgesForPoint(i)
		if len(rev) != 1 {
			t.Fatalf("point %d has %d incoming edges, want 1", i, len(rev))
		}
		prev := (i + 3) % 4
		if rev[0].StartIdx != prev {
			t.Fatalf("point %d incoming edge starts at %d, want %d", i, rev[0].StartIdx, prev)
		}
	}
}
