package path

import (
	"errors"
	"math"

	"github.com/gocurve/bezpath"
)

// ErrNoStart is returned by Build when MoveTo was never called.
var ErrNoStart = errors.New("path: no start point (MoveTo was never called)")

// ErrAlreadyStarted is returned when MoveTo is called a second time.
// A Builder constructs exactly one closed contour; it has no concept
// of independent subpaths.
var ErrAlreadyStarted = errors.New("path: MoveTo called more than once")

// ErrEmptyClose is returned by Close when no segment has been added
// yet — there is nothing to close.
var ErrEmptyClose = errors.New("path: Close called with no segments")

// Builder provides a fluent interface for constructing a Path. Errors
// are sticky: once set, every subsequent call is a no-op, and the
// first error is returned by Build. This is a deliberate departure
// from silently accepting a malformed path — a silently-accepted
// open contour corrupts graph construction downstream.
type Builder struct {
	started bool
	start   bezpath.Point
	cur     bezpath.Point
	segs    []Triple
	err     error
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// MoveTo sets the path's start point. It may only be called once.
func (b *Builder) MoveTo(x, y float64) *Builder {
	if b.err != nil {
		return b
	}
	if b.started {
		b.err = ErrAlreadyStarted
		return b
	}
	p := bezpath.Pt(x, y)
	b.started = true
	b.start = p
	b.cur = p
	return b
}

// LineTo draws a straight edge to (x, y), represented as a degenerate
// cubic whose control points lie on the segment itself.
func (b *Builder) LineTo(x, y float64) *Builder {
	if b.err != nil {
		return b
	}
	if !b.started {
		b.err = ErrNoStart
		return b
	}
	p := bezpath.Pt(x, y)
	c1 := b.cur.Lerp(p, 1.0/3.0)
	c2 := b.cur.Lerp(p, 2.0/3.0)
	b.segs = append(b.segs, Triple{C1: c1, C2: c2, P3: p})
	b.cur = p
	return b
}

// CubicTo draws a cubic Bezier segment to (x, y) with the given
// control points.
func (b *Builder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Builder {
	if b.err != nil {
		return b
	}
	if !b.started {
		b.err = ErrNoStart
		return b
	}
	p := bezpath.Pt(x, y)
	b.segs = append(b.segs, Triple{C1: bezpath.Pt(c1x, c1y), C2: bezpath.Pt(c2x, c2y), P3: p})
	b.cur = p
	return b
}

// Close appends a final straight edge back to the start point, if the
// current point isn't already there, and finishes the contour.
func (b *Builder) Close() *Builder {
	if b.err != nil {
		return b
	}
	if !b.started {
		b.err = ErrNoStart
		return b
	}
	if len(b.segs) == 0 {
		b.err = ErrEmptyClose
		return b
	}
	if !b.cur.IsNearTo(b.start, 1e-12) {
		b.LineTo(b.start.X, b.start.Y)
	}
	return b
}

// Build returns the constructed path, or the first construction error
// encountered.
func (b *Builder) Build() (*Path, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !b.started {
		return nil, ErrNoStart
	}
	p := New(b.start)
	p.Segments = append([]Triple(nil), b.segs...)
	return p, nil
}

// Rect adds a rectangle contour.
func (b *Builder) Rect(x, y, w, h float64) *Builder {
	return b.MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		Close()
}

// RoundRect adds a rectangle with rounded corners of radius r.
func (b *Builder) RoundRect(x, y, w, h, r float64) *Builder {
	if r > math.Min(w, h)/2 {
		r = math.Min(w, h) / 2
	}
	const k = 0.5522847498307936
	o := k * r

	return b.MoveTo(x+r, y).
		LineTo(x+w-r, y).
		CubicTo(x+w-r+o, y, x+w, y+r-o, x+w, y+r).
		LineTo(x+w, y+h-r).
		CubicTo(x+w, y+h-r+o, x+w-r+o, y+h, x+w-r, y+h).
		LineTo(x+r, y+h).
		CubicTo(x+r-o, y+h, x, y+h-r+o, x, y+h-r).
		LineTo(x, y+r).
		CubicTo(x, y+r-o, x+r-o, y, x+r, y).
		Close()
}

// Circle adds a circular contour.
func (b *Builder) Circle(cx, cy, r float64) *Builder {
	return b.Ellipse(cx, cy, r, r)
}

// Ellipse adds an elliptical contour, built from four cubic arcs.
func (b *Builder) Ellipse(cx, cy, rx, ry float64) *Builder {
	const k = 0.5522847498307936
	ox := rx * k
	oy := ry * k

	return b.MoveTo(cx+rx, cy).
		CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry).
		CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy).
		CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry).
		CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy).
		Close()
}

// Polygon adds a regular polygon contour with the given number of
// sides, inscribed in a circle of the given radius.
func (b *Builder) Polygon(cx, cy, radius float64, sides int) *Builder {
	if b.err != nil {
		return b
	}
	if sides < 3 {
		b.err = errors.New("path: Polygon requires at least 3 sides")
		return b
	}

	angleStep := 2 * math.Pi / float64(sides)
	startAngle := -math.Pi / 2

	for i := 0; i < sides; i++ {
		angle := startAngle + float64(i)*angleStep
		x := cx + radius*math.Cos(angle)
		y := cy + radius*math.Sin(angle)
		if i == 0 {
			b.MoveTo(x, y)
		} else {
			b.LineTo(x, y)
		}
	}
	return b.Close()
}

// Star adds a star contour alternating between outerRadius and
// innerRadius across the given number of points.
func (b *Builder) Star(cx, cy, outerRadius, innerRadius float64, points int) *Builder {
	if b.err != nil {
		return b
	}
	if points < 3 {
		b.err = errors.New("path: Star requires at least 3 points")
		return b
	}

	angleStep := math.Pi / float64(points)
	startAngle := -math.Pi / 2

	for i := 0; i < points*2; i++ {
		angle := startAngle + float64(i)*angleStep
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		if i == 0 {
			b.MoveTo(x, y)
		} else {
			b.LineTo(x, y)
		}
	}
	return b.Close()
}
