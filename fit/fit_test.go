package fit

import (
	"math"
	"testing"

	"github.com/gocurve/bezpath"
)

func samplePoints(c bezpath.CubicBez, n int) []bezpath.Point {
	pts := make([]bezpath.Point, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		pts[i] = c.Eval(t)
	}
	return pts
}

func TestFit_TooFewPointsFails(t *testing.T) {
	if _, ok := Fit(nil, 0.1); ok {
		t.Fatalf("Fit(nil) = ok, want false")
	}
	if _, ok := Fit([]bezpath.Point{bezpath.Pt(0, 0)}, 0.1); ok {
		t.Fatalf("Fit(single point) = ok, want false")
	}
}

func TestFit_TwoPointsIsAChord(t *testing.T) {
	curves, ok := Fit([]bezpath.Point{bezpath.Pt(0, 0), bezpath.Pt(10, 0)}, 0.1)
	if !ok {
		t.Fatalf("Fit() = false, want true")
	}
	if len(curves) != 1 {
		t.Fatalf("len(curves) = %d, want 1", len(curves))
	}
	mid := curves[0].Eval(0.5)
	if !mid.IsNearTo(bezpath.Pt(5, 0), 1e-9) {
		t.Fatalf("chord midpoint = %+v, want (5,0)", mid)
	}
}

// Sampling an exact cubic and fitting it back should reproduce a curve
// whose samples lie within maxError of the source curve everywhere.
func TestFit_RecoversSmoothCurveWithinTolerance(t *testing.T) {
	source := bezpath.NewCubicBez(
		bezpath.Pt(0, 0), bezpath.Pt(3, 8), bezpath.Pt(7, -8), bezpath.Pt(10, 0),
	)
	points := samplePoints(source, 40)

	const maxError = 0.05
	curves, ok := Fit(points, maxError)
	if !ok {
		t.Fatalf("Fit() = false, want true")
	}
	if len(curves) == 0 {
		t.Fatalf("Fit() returned no curves")
	}

	for _, p := range points {
		if !pointNearAnyCurve(p, curves, maxError*4) {
			t.Fatalf("sample %+v not within tolerance of fitted curve(s)", p)
		}
	}
}

// A sharp corner (an L-shape) cannot be fit by a single cubic within a
// tight tolerance, forcing the recursive split path; the result must
// still track every sample point.
func TestFit_SplitsAtSharpCorner(t *testing.T) {
	var points []bezpath.Point
	for i := 0; i <= 10; i++ {
		points = append(points, bezpath.Pt(float64(i), 0))
	}
	for i := 1; i <= 10; i++ {
		points = append(points, bezpath.Pt(10, float64(i)))
	}

	const maxError = 0.1
	curves, ok := Fit(points, maxError)
	if !ok {
		t.Fatalf("Fit() = false, want true")
	}
	if len(curves) < 2 {
		t.Fatalf("len(curves) = %d, want at least 2 for a sharp corner", len(curves))
	}

	for _, p := range points {
		if !pointNearAnyCurve(p, curves, maxError*4) {
			t.Fatalf("sample %+v not within tolerance of fitted curve(s)", p)
		}
	}
}

func pointNearAnyCurve(p bezpath.Point, curves []bezpath.CubicBez, tol float64) bool {
	const samples = 50
	best := math.Inf(1)
	for _, c := range curves {
		for i := 0; i <= samples; i++ {
			t := float64(i) / samples
			d := c.Eval(t).Distance(p)
			if d < best {
				best = d
			}
		}
	}
	return best <= tol
}
