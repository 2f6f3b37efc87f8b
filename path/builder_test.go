package path

import (
	"math"
	"testing"

	"github.com/gocurve/bezpath"
)

func TestBuilder_Rect(t *testing.T) {
	p, err := NewBuilder().Rect(0, 0, 10, 5).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if p.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", p.Len())
	}
	if !p.IsClosed(1e-9) {
		t.Error("Rect should produce a closed path")
	}

	// Straight edges should stay collinear (control points on the segment).
	c := p.Curve(0)
	mid := c.Eval(0.5)
	if math.Abs(mid.Y-c.P0.Y) > 1e-9 {
		t.Errorf("straight top edge should stay at y=%v, got %v", c.P0.Y, mid.Y)
	}
}

func TestBuilder_Circle(t *testing.T) {
	p, err := NewBuilder().Circle(5, 5, 4).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if p.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", p.Len())
	}

	// Every sampled point should lie close to the circle of radius 4.
	for _, c := range p.Curves() {
		for i := 0; i <= 10; i++ {
			pt := c.Eval(float64(i) / 10.0)
			d := pt.Distance(bezpath.Pt(5, 5))
			if math.Abs(d-4) > 0.05 {
				t.Errorf("point %v is %v from center, want ~4", pt, d)
			}
		}
	}
}

func TestBuilder_Polygon(t *testing.T) {
	p, err := NewBuilder().Polygon(0, 0, 10, 6).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if p.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", p.Len())
	}
}

func TestBuilder_Star(t *testing.T) {
	p, err := NewBuilder().Star(0, 0, 10, 4, 5).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if p.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", p.Len())
	}
}

func TestBuilder_NoStart(t *testing.T) {
	_, err := NewBuilder().LineTo(1, 1).Build()
	if err != ErrNoStart {
		t.Errorf("err = %v, want ErrNoStart", err)
	}
}

func TestBuilder_DoubleMoveTo(t *testing.T) {
	_, err := NewBuilder().MoveTo(0, 0).MoveTo(1, 1).Build()
	if err != ErrAlreadyStarted {
		t.Errorf("err = %v, want ErrAlreadyStarted", err)
	}
}

func TestBuilder_EmptyClose(t *testing.T) {
	_, err := NewBuilder().MoveTo(0, 0).Close().Build()
	if err != ErrEmptyClose {
		t.Errorf("err = %v, want ErrEmptyClose", err)
	}
}

func TestBuilder_CloseAddsReturnEdge(t *testing.T) {
	p, err := NewBuilder().MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).Close().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (two explicit edges + closing edge)", p.Len())
	}
	if !p.IsClosed(1e-9) {
		t.Error("path should be closed after Close()")
	}
}

func TestBuilder_PolygonInvalidSides(t *testing.T) {
	_, err := NewBuilder().Polygon(0, 0, 10, 2).Build()
	if err == nil {
		t.Error("expected error for polygon with 2 sides")
	}
}
