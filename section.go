package bezpath

// CurveSection is a view onto a sub-range [TMin, TMax] of a root cubic
// curve, without materializing new control points. Algorithms that
// repeatedly narrow a parameter range (the clipper chief among them)
// use this to avoid accumulating floating-point error from repeated
// Subsegment calls, and to cheaply report results in the root curve's
// parameter space.
type CurveSection struct {
	Root       CubicBez
	TMin, TMax float64
}

// NewCurveSection creates a section of root spanning [tMin, tMax].
func NewCurveSection(root CubicBez, tMin, tMax float64) CurveSection {
	return CurveSection{Root: root, TMin: tMin, TMax: tMax}
}

// TForT maps a local parameter t in [0, 1] to the corresponding
// parameter on Root.
func (s CurveSection) TForT(t float64) float64 {
	return s.TMin + t*(s.TMax-s.TMin)
}

// LocalTForT maps a parameter t on Root back to this section's local
// [0, 1] range. The result is only meaningful when t falls within
// [TMin, TMax].
func (s CurveSection) LocalTForT(t float64) float64 {
	span := s.TMax - s.TMin
	if span == 0 {
		return 0
	}
	return (t - s.TMin) / span
}

// Start returns the point at the section's start.
func (s CurveSection) Start() Point {
	return s.Root.Eval(s.TMin)
}

// End returns the point at the section's end.
func (s CurveSection) End() Point {
	return s.Root.Eval(s.TMax)
}

// Eval evaluates the section at local parameter t (0 to 1).
func (s CurveSection) Eval(t float64) Point {
	return s.Root.Eval(s.TForT(t))
}

// Subsection narrows this section to the local range [t0, t1],
// composing with any existing narrowing already applied.
func (s CurveSection) Subsection(t0, t1 float64) CurveSection {
	return CurveSection{Root: s.Root, TMin: s.TForT(t0), TMax: s.TForT(t1)}
}

// ToCubicBez materializes the section as a standalone cubic curve with
// its own control points.
func (s CurveSection) ToCubicBez() CubicBez {
	return s.Root.Subsegment(s.TMin, s.TMax)
}

// FastBoundingBox returns the control-hull bounding box of the
// materialized section.
func (s CurveSection) FastBoundingBox() Rect {
	return s.ToCubicBez().FastBoundingBox()
}

// IsReversed reports whether this section runs backwards relative to
// its root curve (TMin > TMax).
func (s CurveSection) IsReversed() bool {
	return s.TMin > s.TMax
}
