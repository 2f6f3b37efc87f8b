// Package path implements the closed, all-cubic contour model of
// bezpath: a start point plus an ordered, cyclic list of (C1, C2, P3)
// triples. Every edge of a Path is a cubic Bezier segment; there is no
// line-to or move-to element, since the core only ever deals in closed
// cubic contours once a shape reaches the graph stage.
package path

import "github.com/gocurve/bezpath"

// Triple is one hull entry: the two control points and the end point
// of a single cubic segment. The segment's start is the previous
// triple's P3, or the path's Start for the first triple.
type Triple struct {
	C1, C2, P3 bezpath.Point
}

// Path is a start point plus a cyclic sequence of cubic triples. The
// last triple's P3 is connected back to Start by the segment the
// caller is expected to have supplied (the model does not auto-close;
// Builder.Close appends that final segment explicitly).
type Path struct {
	Start    bezpath.Point
	Segments []Triple
}

// New creates a path with the given start point and no segments.
func New(start bezpath.Point) *Path {
	return &Path{Start: start}
}

// AddCubic appends a cubic segment ending at p3, with control points
// c1, c2.
func (p *Path) AddCubic(c1, c2, p3 bezpath.Point) {
	p.Segments = append(p.Segments, Triple{C1: c1, C2: c2, P3: p3})
}

// Len returns the number of segments in the path.
func (p *Path) Len() int {
	return len(p.Segments)
}

// PointAt returns the start point of segment i (the end point of
// segment i-1, or Start for i == 0).
func (p *Path) PointAt(i int) bezpath.Point {
	if i <= 0 {
		return p.Start
	}
	return p.Segments[i-1].P3
}

// Curve returns segment i materialized as a CubicBez.
func (p *Path) Curve(i int) bezpath.CubicBez {
	t := p.Segments[i]
	return bezpath.NewCubicBez(p.PointAt(i), t.C1, t.C2, t.P3)
}

// Curves returns every segment materialized as a CubicBez, in order.
func (p *Path) Curves() []bezpath.CubicBez {
	result := make([]bezpath.CubicBez, len(p.Segments))
	for i := range p.Segments {
		result[i] = p.Curve(i)
	}
	return result
}

// Triples returns the raw hull triples, the cheaper of the two
// iteration views when only control points (not materialized curves)
// are needed.
func (p *Path) Triples() []Triple {
	return p.Segments
}

// IsClosed reports whether the final segment's end point coincides
// with Start within eps.
func (p *Path) IsClosed(eps float64) bool {
	if len(p.Segments) == 0 {
		return false
	}
	return p.Segments[len(p.Segments)-1].P3.IsNearTo(p.Start, eps)
}

// BoundingBox returns the union of every segment's tight bounding box.
func (p *Path) BoundingBox() bezpath.Rect {
	if len(p.Segments) == 0 {
		return bezpath.NewRect(p.Start, p.Start)
	}
	box := p.Curve(0).BoundingBox()
	for i := 1; i < len(p.Segments); i++ {
		box = box.Union(p.Curve(i).BoundingBox())
	}
	return box
}

// Reversed returns a new path tracing the same contour in the opposite
// direction.
func (p *Path) Reversed() *Path {
	if len(p.Segments) == 0 {
		return New(p.Start)
	}
	result := New(p.Segments[len(p.Segments)-1].P3)
	for i := len(p.Segments) - 1; i >= 0; i-- {
		t := p.Segments[i]
		start := p.PointAt(i)
		result.AddCubic(t.C2, t.C1, start)
	}
	return result
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	result := New(p.Start)
	result.Segments = append([]Triple(nil), p.Segments...)
	return result
}
