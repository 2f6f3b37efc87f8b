// Package graph implements GraphPath, the planar multigraph of cubic
// Bezier edges that Boolean path arithmetic (union, intersection,
// difference, XOR) and flood-fill-to-path are built on.
//
// A GraphPath starts life as one or more closed path.Path contours
// (FromPath), is combined with other graphs geometry-free (Merge) or
// geometry-aware (Collide, SelfCollide), then classified edge-by-edge
// against a caller-supplied inside/outside predicate by ray casting
// (SetEdgeKindsByRayCasting), and finally walked back into closed
// paths (ExteriorPaths). Every step is synchronous and single
// threaded: nothing here spawns a goroutine or retains state beyond
// the GraphPath value itself.
package graph
