package intersect

// Tolerances shared by the overlap and clip algorithms. The Rust source
// this package is grounded on (original_source/src/bezier/overlaps.rs)
// imports these from a consts module that was not part of the retrieved
// source pack; the values below are chosen to sit at the same scale the
// rest of bezpath uses for its own accuracy parameters.
const (
	// smallDistance bounds how far a point may sit from a line and still
	// be considered "on" it, for the collinear fast path in Overlap.
	smallDistance = 1e-3

	// smallTDistance bounds how close two curve parameters may be and
	// still be treated as distinct, rejecting a single-point touch as
	// an overlap.
	smallTDistance = 1e-3

	// epsFlat is the fat-line flatness threshold of spec.md §4.1: a fat
	// line strip narrower than this is treated as a straight segment.
	epsFlat = 1e-6

	// linearTouchEndpointGap is the "extremely short" guard of the
	// linearity shortcut: a linear section whose endpoints are closer
	// than this is collapsed to a single point.
	linearTouchEndpointGap = 0.1

	// degenerateRangeWiden is how far a zero-length clip range [t, t] is
	// widened, to avoid collapsing a section to nothing mid-recursion.
	degenerateRangeWiden = 0.005

	// stallShrinkRatio is the per-round shrink fraction that must be
	// beaten by at least one curve, or the algorithm falls back to
	// subdivision.
	stallShrinkRatio = 0.8

	// joinPivotGap and joinPointGapFactor gate duplicate elimination
	// when two sibling recursions' results are concatenated.
	joinPivotGap       = 0.1
	joinPointGapFactor = 2.0
)
