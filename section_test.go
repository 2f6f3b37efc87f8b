package bezpath

import (
	"math"
	"testing"
)

func TestCurveSection_EvalMatchesRoot(t *testing.T) {
	root := NewCubicBez(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0))
	s := NewCurveSection(root, 0.25, 0.75)

	for i := 0; i <= 10; i++ {
		local := float64(i) / 10.0
		global := 0.25 + local*0.5

		got := s.Eval(local)
		want := root.Eval(global)
		if !pointsEqual(got, want, 1e-9) {
			t.Errorf("Eval(%v) = %v, want %v", local, got, want)
		}
	}
}

func TestCurveSection_StartEnd(t *testing.T) {
	root := NewCubicBez(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0))
	s := NewCurveSection(root, 0.25, 0.75)

	if !pointsEqual(s.Start(), root.Eval(0.25), 1e-9) {
		t.Errorf("Start() = %v, want %v", s.Start(), root.Eval(0.25))
	}
	if !pointsEqual(s.End(), root.Eval(0.75), 1e-9) {
		t.Errorf("End() = %v, want %v", s.End(), root.Eval(0.75))
	}
}

func TestCurveSection_Subsection(t *testing.T) {
	root := NewCubicBez(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0))
	s := NewCurveSection(root, 0.2, 0.8)
	sub := s.Subsection(0.5, 1.0)

	// sub should span [0.5, 0.8] in root parameter space
	if math.Abs(sub.TMin-0.5) > 1e-9 {
		t.Errorf("sub.TMin = %v, want 0.5", sub.TMin)
	}
	if math.Abs(sub.TMax-0.8) > 1e-9 {
		t.Errorf("sub.TMax = %v, want 0.8", sub.TMax)
	}
}

func TestCurveSection_ToCubicBezMatchesSubsegment(t *testing.T) {
	root := NewCubicBez(Pt(0, 0), Pt(3, 10), Pt(7, -4), Pt(10, 5))
	s := NewCurveSection(root, 0.1, 0.9)

	materialized := s.ToCubicBez()
	expected := root.Subsegment(0.1, 0.9)

	if !pointsEqual(materialized.P0, expected.P0, 1e-9) ||
		!pointsEqual(materialized.P3, expected.P3, 1e-9) {
		t.Errorf("ToCubicBez() endpoints = (%v, %v), want (%v, %v)",
			materialized.P0, materialized.P3, expected.P0, expected.P3)
	}
}

func TestCurveSection_LocalTForTRoundTrip(t *testing.T) {
	root := NewCubicBez(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0))
	s := NewCurveSection(root, 0.3, 0.6)

	for i := 0; i <= 10; i++ {
		local := float64(i) / 10.0
		global := s.TForT(local)
		roundTrip := s.LocalTForT(global)
		if math.Abs(roundTrip-local) > 1e-9 {
			t.Errorf("round trip local=%v -> global=%v -> local=%v", local, global, roundTrip)
		}
	}
}

func TestCurveSection_IsReversed(t *testing.T) {
	root := NewCubicBez(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0))

	forward := NewCurveSection(root, 0.2, 0.8)
	if forward.IsReversed() {
		t.Error("forward section reported as reversed")
	}

	reversed := NewCurveSection(root, 0.8, 0.2)
	if !reversed.IsReversed() {
		t.Error("reversed section not reported as reversed")
	}
}
