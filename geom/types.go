// Package geom defines shared primitives and sentinel errors for the
// geometry substrate of github.com/quantgeom/figura.
package geom

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors for geometric constructions.
var (
	// ErrNoIntersection indicates two circles that do not meet within Eps.
	ErrNoIntersection = errors.New("geom: circles do not intersect")
	// ErrConcentric indicates circle centers that coincide within Eps.
	ErrConcentric = errors.New("geom: concentric circles have no unique intersection")
	// ErrDegenerate indicates a vertex list too short to form a polygon.
	ErrDegenerate = errors.New("geom: polygon needs at least three vertices")
)

// Eps is the absolute tolerance for the circle-intersection reachability
// gate. It is deliberately tighter than the 1e-4 consistency tolerance
// used by the multi-DOF realizability gates: construction feasibility is
// a yes/no question about coordinates, not about user-entered lengths.
const Eps = 1e-7

// Circle is a circle in the plane.
type Circle struct {
	Center r2.Vec
	R      float64
}

// Dist returns the Euclidean distance between a and b.
// Complexity: O(1).
func Dist(a, b r2.Vec) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Mid returns the midpoint of segment ab.
// Complexity: O(1).
func Mid(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// PolarDeg returns the point at distance r from the origin-led point o,
// at angle deg measured counter-clockwise from the positive x-axis.
// Complexity: O(1).
func PolarDeg(o r2.Vec, r, deg float64) r2.Vec {
	rad := deg * math.Pi / 180
	return r2.Vec{X: o.X + r*math.Cos(rad), Y: o.Y + r*math.Sin(rad)}
}
