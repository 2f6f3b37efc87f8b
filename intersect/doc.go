// Package intersect implements the curve-versus-curve, curve-versus-line
// and curve-overlap primitives that graph.GraphPath builds on: the
// fat-line clipping algorithm of Sederberg and Nishita, a cubic-in-line
// substitution for curve/ray hits, and mutual-endpoint overlap detection.
//
// None of the functions here allocate goroutines or touch shared state;
// see bezpath's package doc for the concurrency model shared across the
// whole module.
package intersect
