package intersect

import (
	"github.com/gocurve/bezpath/path"
)

// SegHit is one crossing found by PathIntersectsPath: the index of the
// segment in each path and the segment-local parameter of the hit.
type SegHit struct {
	Seg1, Seg2 int
	T1, T2     float64
}

// PathIntersectsPath enumerates every crossing between two paths by
// checking each pair of segments, grounded on
// original_source/src/bezier/path/intersection.rs's path_intersects_path:
// a bounding-box pre-check before the full clip, since most segment
// pairs in two unrelated paths never come close.
func PathIntersectsPath(p1, p2 *path.Path, accuracy float64) []SegHit {
	c1 := p1.Curves()
	c2 := p2.Curves()

	var hits []SegHit
	for i, a := range c1 {
		boxA := a.FastBoundingBox()
		for j, b := range c2 {
			if !boxA.Overlaps(b.FastBoundingBox()) {
				continue
			}
			for _, h := range Curves(a, b, accuracy) {
				hits = append(hits, SegHit{Seg1: i, Seg2: j, T1: h.TA, T2: h.TB})
			}
		}
	}
	return hits
}
