package graph

import (
	"testing"

	"github.com/gocurve/bezpath"
	"github.com/gocurve/bezpath/path"
)

// newFigureEightBuilder builds a contour that runs out from (5,5) to
// (10,0) and back along the same segment, so it visits (5,5) twice, at
// segment indices 1 and 3, as two structurally distinct points
// occupying the same position.
func newFigureEightBuilder() *path.Builder {
	return path.NewBuilder().
		MoveTo(0, 0).
		LineTo(5, 5).
		LineTo(10, 0).
		LineTo(5, 5).
		LineTo(0, 10).
		Close()
}

const collideAccuracy = 1e-6

func findPointNear(t *testing.T, g *GraphPath, pos bezpath.Point, eps float64) int {
	t.Helper()
	for i := 0; i < g.NumPoints(); i++ {
		if g.PointPosition(i).IsNearTo(pos, eps) {
			return i
		}
	}
	t.Fatalf("no point near %+v", pos)
	return -1
}

// Scenario 1 of spec.md §8: the unit square (1,1)-(5,1)-(5,5)-(1,5)
// colliding with (4,4)-(9,4)-(9,9)-(4,9) yields 10 points, two
// intersections exactly at (4,5) and (5,4) each with two outgoing
// edges, and 8 singly-outgoing points.
func TestCollide_TwoOverlappingSquares(t *testing.T) {
	a := FromPath(rectPath(t, 1, 1, 4, 4), clockwiseLabel(0))
	b := FromPath(rectPath(t, 4, 4, 5, 5), clockwiseLabel(1))

	merged := a.Collide(b, collideAccuracy)

	if merged.NumPoints() != 10 {
		t.Fatalf("NumPoints() = %d, want 10", merged.NumPoints())
	}

	i1 := findPointNear(t, merged, bezpath.Pt(4, 5), 1e-6)
	i2 := findPointNear(t, merged, bezpath.Pt(5, 4), 1e-6)

	if n := len(merged.EdgesForPoint(i1)); n != 2 {
		t.Fatalf("(4,5) has %d outgoing edges, want 2", n)
	}
	if n := len(merged.EdgesForPoint(i2)); n != 2 {
		t.Fatalf("(5,4) has %d outgoing edges, want 2", n)
	}

	singleOutgoing := 0
	for i := 0; i < merged.NumPoints(); i++ {
		if len(merged.EdgesForPoint(i)) == 1 {
			singleOutgoing++
		}
	}
	if singleOutgoing != 8 {
		t.Fatalf("singly-outgoing points = %d, want 8", singleOutgoing)
	}
}

// Scenario 2 of spec.md §8: two identical unit squares collided yield
// 8 points, four with two outgoing edges and four orphaned.
func TestCollide_IdenticalSquares(t *testing.T) {
	a := FromPath(rectPath(t, 1, 1, 4, 4), clockwiseLabel(0))
	b := FromPath(rectPath(t, 1, 1, 4, 4), clockwiseLabel(1))

	merged := a.Collide(b, collideAccuracy)

	if merged.NumPoints() != 8 {
		t.Fatalf("NumPoints() = %d, want 8", merged.NumPoints())
	}

	twoOutgoing, orphaned := 0, 0
	for i := 0; i < merged.NumPoints(); i++ {
		switch len(merged.EdgesForPoint(i)) {
		case 2:
			twoOutgoing++
		case 0:
			orphaned++
		}
	}
	if twoOutgoing != 4 {
		t.Fatalf("points with two outgoing edges = %d, want 4", twoOutgoing)
	}
	if orphaned != 4 {
		t.Fatalf("orphaned points = %d, want 4", orphaned)
	}
}

// SelfCollide on a single path that revisits a coordinate should merge
// the two visits into one point rather than leaving the graph with two
// structurally unrelated points at the same position.
func TestSelfCollide_MergesRevisitedPoint(t *testing.T) {
	b, err := newFigureEightBuilder().Build()
	if err != nil {
		t.Fatalf("building figure eight: %v", err)
	}
	g := FromPath(b, clockwiseLabel(0))
	before := g.NumPoints()

	g.SelfCollide(collideAccuracy)

	if g.NumPoints() < before {
		t.Fatalf("NumPoints() shrank from %d to %d; points must never be removed", before, g.NumPoints())
	}

	shared := findPointNear(t, g, bezpath.Pt(5, 5), 1e-6)
	if n := len(g.EdgesForPoint(shared)); n != 2 {
		t.Fatalf("shared point has %d outgoing edges, want 2", n)
	}
}
