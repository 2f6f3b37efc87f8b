package graph

// PathDirection records the winding direction of a source path, used
// by ray casting to decide which side of an edge counts as "inside"
// when that edge's normal is computed.
type PathDirection int

const (
	Clockwise PathDirection = iota
	Anticlockwise
)

// PathLabel identifies which original path an edge descends from and
// that path's winding direction. The edge classifier keys its
// per-path crossing counters by PathIndex.
type PathLabel struct {
	PathIndex int
	Direction PathDirection
}

// EdgeKind classifies an edge once the graph has been ray-cast against
// a Boolean operation's isInside predicate. Uncategorised is the
// initial state; Visited marks an edge a ray-casting pass is currently
// using as its own target, to guard against a zero-length edge
// re-triggering its own cast; Interior and Exterior are terminal.
type EdgeKind int

const (
	Uncategorised EdgeKind = iota
	Visited
	Interior
	Exterior
)

func (k EdgeKind) String() string {
	switch k {
	case Uncategorised:
		return "Uncategorised"
	case Visited:
		return "Visited"
	case Interior:
		return "Interior"
	case Exterior:
		return "Exterior"
	default:
		return "EdgeKind(?)"
	}
}

// EdgeRef identifies one edge by the point it starts at and its
// position within that point's outgoing edge list. Points are only
// ever appended, never removed or renumbered, and splitting appends new
// edges after existing ones. Merging two coincident points during
// SelfCollide/Collide moves the higher-indexed point's outgoing edges
// onto the end of the other point's list, so a ref to one of those
// moved edges does not stay valid across that pass.
type EdgeRef struct {
	StartIdx int
	EdgeIdx  int
}
