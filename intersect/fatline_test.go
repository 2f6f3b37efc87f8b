package intersect

import "testing"

func TestFatLine_FlatForStraightCurve(t *testing.T) {
	c := newCubic(pt(0, 0), pt(10.0/3.0, 0), pt(20.0/3.0, 0), pt(10, 0))
	fl := newFatLine(c)
	if !fl.isFlat() {
		t.Error("a perfectly straight curve's fat line should be flat")
	}
}

func TestFatLine_NotFlatForCurvedCurve(t *testing.T) {
	c := newCubic(pt(0, 0), pt(2, 8), pt(8, 8), pt(10, 0))
	fl := newFatLine(c)
	if fl.isFlat() {
		t.Error("a strongly curved curve's fat line should not be flat")
	}
}

func TestFatLine_ClipNarrowsRange(t *testing.T) {
	against := newCubic(pt(0, 0), pt(3, 0), pt(7, 0), pt(10, 0))
	subject := newCubic(pt(0, -5), pt(3, 5), pt(7, 5), pt(10, -5))

	fl := newFatLine(against)
	lo, hi, ok := fl.clip(subject)
	if !ok {
		t.Fatal("expected the clip to find a sub-range")
	}
	if lo < 0 || hi > 1 || lo > hi {
		t.Errorf("clip range (%v, %v) out of bounds", lo, hi)
	}
}

func TestHullClip_EntirelyOutsideStrip(t *testing.T) {
	_, _, ok := hullClip([4]float64{10, 11, 12, 13}, -1, 1)
	if ok {
		t.Error("a hull entirely above the strip should not clip")
	}
}

func TestHullClip_EntirelyInsideStrip(t *testing.T) {
	lo, hi, ok := hullClip([4]float64{0.1, 0.2, -0.1, 0.0}, -1, 1)
	if !ok {
		t.Fatal("a hull entirely inside the strip should clip to the full range")
	}
	if !near(lo, 0, 1e-9) || !near(hi, 1, 1e-9) {
		t.Errorf("range = (%v, %v), want (0, 1)", lo, hi)
	}
}
