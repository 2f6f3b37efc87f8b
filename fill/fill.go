// Package fill implements flood_fill_concave (spec.md §4.10): given a
// start point known to lie inside some region and an oracle able to
// ray-cast against that region's (unknown) boundary, reconstructs the
// boundary as one or more closed paths.
//
// Grounded on original_source/tests/bezier/algorithms/fill_concave.rs,
// whose oracle signature (a function from a ray's two endpoints to a
// list of collision positions, tested against circles and "doughnut"
// shapes with holes) is preserved here as the Oracle type.
package fill

import (
	"math"
	"sort"

	"github.com/gocurve/bezpath"
	"github.com/gocurve/bezpath/fit"
	"github.com/gocurve/bezpath/graph"
	"github.com/gocurve/bezpath/path"
)

// Collision is one ray/boundary intersection reported by an Oracle.
type Collision struct {
	Point bezpath.Point
}

// Oracle casts the ray from "from" through "to" and reports every
// place it crosses the boundary being filled, in no particular order.
// Collisions behind "from" (the wrong side of the ray) are tolerated;
// Concave discards them itself.
type Oracle func(from, to bezpath.Point) []Collision

// Settings controls the ray sweep density and curve fit tolerance.
type Settings struct {
	// InitialRays is the number of evenly-spaced rays in the first
	// sweep attempt.
	InitialRays int
	// MaxRays bounds how far the sweep density is allowed to double
	// while chasing a gap.
	MaxRays int
	// MaxFitError is the tolerance passed to fit.Fit when turning the
	// sweep's boundary samples back into cubic curves.
	MaxFitError float64
	// RayLength is how far each ray extends from its origin; it only
	// needs to be farther than the boundary can possibly be.
	RayLength float64
}

// DefaultSettings returns reasonable defaults for a shape with
// boundary features on the order of single units to low hundreds.
func DefaultSettings() Settings {
	return Settings{
		InitialRays: 36,
		MaxRays:     576,
		MaxFitError: 1.0,
		RayLength:   1e6,
	}
}

const fillPathIndex = 0

// Concave flood-fills outward from start: it sweeps rays around start,
// keeps the collision on each ray that continues the same boundary
// feature the previous ray found (so a sweep through an annulus
// follows the outer wall instead of jumping to the nearer inner one),
// fits cubics through the resulting samples, and accepts the result
// once the traced path still contains start. If a ray finds no
// collision (a gap that would let the fill escape to infinity) or the
// fit or containment check fails, the sweep is retried at twice the
// ray density, up to settings.MaxRays.
//
// A ray that enters and leaves a nearer feature before reaching the
// kept boundary sample has found a hole: Concave probes its midpoint
// and, unless that point turns out to already lie inside a hole
// already found, traces its boundary the same way and reports it as
// an additional path.
func Concave(start bezpath.Point, settings Settings, oracle Oracle) ([]*path.Path, bool) {
	outer, hits, ok := traceBoundary(start, settings, oracle)
	if !ok {
		return nil, false
	}
	result := []*path.Path{outer}

	for _, seed := range holeSeeds(hits) {
		if containedByAny(seed, result[1:]) {
			continue
		}
		inner, _, ok := traceBoundary(seed, settings, oracle)
		if !ok {
			continue
		}
		result = append(result, inner)
	}
	return result, true
}

type rayHit struct {
	point         bezpath.Point
	dist          float64
	holeMidpoints []bezpath.Point
}

func traceBoundary(center bezpath.Point, settings Settings, oracle Oracle) (*path.Path, []rayHit, bool) {
	for rays := settings.InitialRays; rays <= settings.MaxRays; rays *= 2 {
		hits, ok := sweepContinuity(center, rays, settings.RayLength, oracle)
		if !ok {
			bezpath.Logger().Debug("fill: ray sweep hit a gap, raising density", "rays", rays)
			continue
		}

		points := make([]bezpath.Point, len(hits))
		for i, h := range hits {
			points[i] = h.point
		}

		curves, ok := fit.Fit(closeLoop(points), settings.MaxFitError)
		if !ok {
			continue
		}
		candidate := buildPath(curves)

		g := graph.FromPath(candidate, graph.PathLabel{PathIndex: fillPathIndex, Direction: graph.Clockwise})
		if !g.PathContainsPoint(center) {
			continue
		}
		return candidate, hits, true
	}

	bezpath.Logger().Warn("fill: no ray density enclosed the start point", "start", center)
	return nil, nil, false
}

// sweepContinuity casts `rays` evenly spaced rays from center and, for
// each, keeps the forward collision whose distance from center is
// closest to the previous ray's kept distance (the first ray simply
// keeps its nearest). This follows one boundary feature around a full
// turn instead of jumping to whichever feature happens to be nearest
// at each individual angle, which is what lets a sweep from inside an
// annulus trace the outer wall instead of zig-zagging onto the inner
// one. Returns ok=false if any ray finds no forward collision at all.
func sweepContinuity(center bezpath.Point, rays int, length float64, oracle Oracle) ([]rayHit, bool) {
	out := make([]rayHit, 0, rays)
	prevDist := -1.0

	for i := 0; i < rays; i++ {
		angle := 2 * math.Pi * float64(i) / float64(rays)
		dir := bezpath.Pt(math.Cos(angle), math.Sin(angle))
		to := center.Add(dir.Mul(length))

		forward := forwardHits(center, dir, oracle(center, to))
		if len(forward) == 0 {
			return nil, false
		}
		sort.Slice(forward, func(a, b int) bool { return forward[a].dist < forward[b].dist })

		chosenIdx := 0
		if prevDist >= 0 {
			chosenIdx = nearestIndexByDistance(forward, prevDist)
		}
		chosen := forward[chosenIdx]

		// Every crossing nearer than the one just chosen was passed over
		// on the way there; consecutive pairs among them bound a region
		// this ray entered and left again before reaching the kept
		// boundary, which is exactly what a hole looks like from a ray
		// cast through it.
		var holeMidpoints []bezpath.Point
		for j := 0; j+1 < chosenIdx; j += 2 {
			mid := (forward[j].dist + forward[j+1].dist) / 2
			holeMidpoints = append(holeMidpoints, center.Add(dir.Mul(mid)))
		}

		out = append(out, rayHit{point: chosen.point, dist: chosen.dist, holeMidpoints: holeMidpoints})
		prevDist = chosen.dist
	}
	return out, true
}

type projectedHit struct {
	point bezpath.Point
	dist  float64
}

// forwardHits keeps only the collisions that lie on the ray's forward
// side of center (oracle implementations modeled on an infinite line,
// like the fill_concave.rs circle oracle, report both sides).
func forwardHits(center, dir bezpath.Point, hits []Collision) []projectedHit {
	var out []projectedHit
	for _, h := range hits {
		offset := h.Point.Sub(center)
		if offset.Dot(dir) <= 0 {
			continue
		}
		out = append(out, projectedHit{point: h.Point, dist: offset.Length()})
	}
	return out
}

func nearestIndexByDistance(hits []projectedHit, target float64) int {
	best := 0
	bestDiff := math.Inf(1)
	for i, h := range hits {
		diff := math.Abs(h.dist - target)
		if diff < bestDiff {
			bestDiff, best = diff, i
		}
	}
	return best
}

// holeSeeds collects every hole midpoint found while sweeping, capped
// at maxHoleSeeds per sweep so a noisy oracle cannot make Concave trace
// an unbounded number of candidate holes.
const maxHoleSeeds = 8

func holeSeeds(hits []rayHit) []bezpath.Point {
	var seeds []bezpath.Point
	for _, h := range hits {
		seeds = append(seeds, h.holeMidpoints...)
	}
	if len(seeds) > maxHoleSeeds {
		bezpath.Logger().Warn("fill: capping candidate hole seeds", "found", len(seeds), "max", maxHoleSeeds)
		seeds = seeds[:maxHoleSeeds]
	}
	return seeds
}

func containedByAny(p bezpath.Point, paths []*path.Path) bool {
	for _, pp := range paths {
		g := graph.FromPath(pp, graph.PathLabel{PathIndex: fillPathIndex, Direction: graph.Clockwise})
		if g.PathContainsPoint(p) {
			return true
		}
	}
	return false
}

func closeLoop(points []bezpath.Point) []bezpath.Point {
	closed := make([]bezpath.Point, len(points)+1)
	copy(closed, points)
	closed[len(points)] = points[0]
	return closed
}

func buildPath(curves []bezpath.CubicBez) *path.Path {
	p := path.New(curves[0].Start())
	for _, c := range curves {
		c1, c2 := c.ControlPoints()
		p.AddCubic(c1, c2, c.End())
	}
	return p
}
