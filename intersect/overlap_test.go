package intersect

import "testing"

func TestOverlap_IdenticalCurve(t *testing.T) {
	p0, p1, p2, p3 := pt(0, 0), pt(1, 3), pt(3, 3), pt(4, 0)
	a := newCubic(p0, p1, p2, p3)
	b := newCubic(p0, p1, p2, p3)

	region, ok := Overlap(a, b)
	if !ok {
		t.Fatal("identical curves should overlap")
	}
	if !near(region.A[0], 0, 1e-6) || !near(region.A[1], 1, 1e-6) {
		t.Errorf("A range = %v, want (0,1)", region.A)
	}
	if !near(region.B[0], 0, 1e-6) || !near(region.B[1], 1, 1e-6) {
		t.Errorf("B range = %v, want (0,1)", region.B)
	}
}

func TestOverlap_NoOverlap(t *testing.T) {
	a := newCubic(pt(0, 0), pt(1, 3), pt(3, 3), pt(4, 0))
	b := newCubic(pt(10, 10), pt(11, 13), pt(13, 13), pt(14, 10))

	_, ok := Overlap(a, b)
	if ok {
		t.Error("disjoint curves should not overlap")
	}
}

func TestOverlap_CollinearSegmentsOverlap(t *testing.T) {
	// Two degenerate (straight) cubics on the same line, overlapping
	// over [2,8] on the x axis.
	a := newCubic(pt(0, 0), pt(10.0/3.0, 0), pt(20.0/3.0, 0), pt(10, 0))
	b := newCubic(pt(2, 0), pt(4, 0), pt(6, 0), pt(8, 0))

	_, ok := Overlap(a, b)
	if !ok {
		t.Error("collinear overlapping segments should be detected as overlapping")
	}
}
