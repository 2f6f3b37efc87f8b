// Package bezpath provides a 2D computational-geometry core for cubic
// Bézier curves and the closed paths built from them.
//
// # Overview
//
// The package implements curve-curve intersection by fat-line clipping
// (package intersect), and a planar graph of Bézier segments (package
// graph) that supports merging paths, discovering self-intersections,
// ray casting, and classifying edges as interior or exterior so that
// Boolean path arithmetic (union, intersection, difference, XOR) and
// flood-fill-to-path can be built on top.
//
// This package holds the shared primitives: points, vectors, bounding
// boxes, lines, cubic Bézier curves and sections of curves, and the
// polynomial root solvers the rest of the module depends on.
//
// # Coordinate System
//
// Plain 2D Cartesian coordinates — no assumption is made about axis
// orientation; callers may treat Y as up or down consistently.
//
// # Scope
//
// No rendering, windowing, or UI; no 3D geometry; no curves of degree
// other than cubic. The core is single-threaded and deterministic —
// every operation returns its result directly, nothing blocks or
// suspends. Numerical tolerances are the only configuration; see
// [SetLogger] for optional diagnostic logging.
package bezpath
