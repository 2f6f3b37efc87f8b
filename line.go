package bezpath

import "math"

// -------------------------------------------------------------------
// Line
// -------------------------------------------------------------------

// Line represents a line segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

// NewLine creates a new line segment.
func NewLine(p0, p1 Point) Line {
	return Line{P0: p0, P1: p1}
}

// Eval evaluates the line at parameter t (0 to 1).
// t=0 returns P0, t=1 returns P1.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Start returns the starting point of the line.
func (l Line) Start() Point {
	return l.P0
}

// End returns the ending point of the line.
func (l Line) End() Point {
	return l.P1
}

// Subdivide splits the line at t=0.5 into two halves.
func (l Line) Subdivide() (Line, Line) {
	mid := l.Eval(0.5)
	return Line{P0: l.P0, P1: mid}, Line{P0: mid, P1: l.P1}
}

// Subsegment returns the portion of the line from t0 to t1.
func (l Line) Subsegment(t0, t1 float64) Line {
	return Line{
		P0: l.Eval(t0),
		P1: l.Eval(t1),
	}
}

// BoundingBox returns the axis-aligned bounding box of the line.
func (l Line) BoundingBox() Rect {
	return NewRect(l.P0, l.P1)
}

// Length returns the length of the line segment.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// Midpoint returns the midpoint of the line segment.
func (l Line) Midpoint() Point {
	return l.Eval(0.5)
}

// Reversed returns a copy of the line with endpoints swapped.
func (l Line) Reversed() Line {
	return Line{P0: l.P1, P1: l.P0}
}

// Coefficients returns (a, b, c) such that a*x + b*y + c = 0 for any
// point on the line, normalized so a*a + b*b = 1. A degenerate line
// (P0 == P1) returns (0, 0, 0).
func (l Line) Coefficients() (a, b, c float64) {
	d := l.P1.Sub(l.P0)
	length := d.Length()
	if length == 0 {
		return 0, 0, 0
	}
	a = d.Y / length
	b = -d.X / length
	c = -(a*l.P0.X + b*l.P0.Y)
	return a, b, c
}

// DistanceTo returns the signed distance from p to the line, projected
// to infinity: a point beyond either endpoint still returns a value.
// Use PosForPoint to tell whether the closest point actually falls
// within the segment.
func (l Line) DistanceTo(p Point) float64 {
	a, b, c := l.Coefficients()
	return a*p.X + b*p.Y + c
}

// WhichSide reports which side of the line p falls on: +1, -1, or 0
// when p lies on the line.
func (l Line) WhichSide(p Point) float64 {
	side := (p.X-l.P0.X)*(l.P1.Y-l.P0.Y) - (p.Y-l.P0.Y)*(l.P1.X-l.P0.X)
	switch {
	case side < 0:
		return -1
	case side > 0:
		return 1
	default:
		return 0
	}
}

// PosForPoint returns the parameter t such that Eval(t) is near p,
// assuming p lies on (or near) the line. Used to determine whether a
// point found via DistanceTo's infinite projection actually lies
// within the segment.
func (l Line) PosForPoint(p Point) float64 {
	deltaLine := l.P1.Sub(l.P0)
	deltaPoint := p.Sub(l.P0)

	const eps = 0.000001
	if math.Abs(deltaLine.X) > eps && math.Abs(deltaPoint.X) > eps {
		return deltaPoint.X / deltaLine.X
	}
	if math.Abs(deltaLine.Y) > eps && math.Abs(deltaPoint.Y) > eps {
		return deltaPoint.Y / deltaLine.Y
	}
	return 0
}
