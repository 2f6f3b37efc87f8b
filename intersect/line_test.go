package intersect

import (
	"testing"

	"github.com/gocurve/bezpath"
)

func TestLine_CurveCrossesSegment(t *testing.T) {
	c := newCubic(pt(0, 0), pt(2, 5), pt(5, -5), pt(8, 0))
	l := bezpath.NewLine(pt(0, 0), pt(8, 0))

	hits := Line(c, l, true)
	if len(hits) == 0 {
		t.Fatal("expected at least one hit along the baseline")
	}
	for _, h := range hits {
		p := c.Eval(h.TC)
		if !near(p.Y, 0, 1e-6) {
			t.Errorf("hit at TC=%v has Y=%v, want ~0", h.TC, p.Y)
		}
	}
}

func TestLine_RayAcceptsOutOfSegmentHits(t *testing.T) {
	c := newCubic(pt(0, 0), pt(1, 1), pt(2, 1), pt(3, 0))
	l := bezpath.NewLine(pt(5, 0), pt(6, 0))

	segHits := Line(c, l, true)
	rayHits := Line(c, l, false)
	if len(rayHits) < len(segHits) {
		t.Errorf("ray should find at least as many hits as the clipped segment: ray=%d seg=%d", len(rayHits), len(segHits))
	}
}

func TestLine_NoHitsWhenCurveEntirelyOffLine(t *testing.T) {
	c := newCubic(pt(0, 10), pt(1, 12), pt(2, 12), pt(3, 10))
	l := bezpath.NewLine(pt(0, 0), pt(10, 0))

	hits := Line(c, l, true)
	if len(hits) != 0 {
		t.Errorf("expected no hits, got %v", hits)
	}
}
