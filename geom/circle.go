package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Intersect computes the intersection points of circles a and b.
//
// Stage 1: reject concentric centers (distance ≤ Eps) — zero or
// infinitely many solutions, neither usable for a construction.
// Stage 2: gate reachability: a solution exists only when the center
// distance d lies in [|r1−r2|−Eps, r1+r2+Eps].
// Stage 3: classical two-circle reduction — the radical line crosses the
// center line at distance h = (d²+r1²−r2²)/(2d) from a.Center; the two
// candidates sit at ±t off that foot, t = √(r1²−h²).
//
// The tangent case collapses both candidates onto the foot (p == q).
// Returns the candidate pair in deterministic order: p is the point on
// the left of the directed center line a→b (positive normal side).
//
// Complexity: O(1).
func Intersect(a, b Circle) (p, q r2.Vec, err error) {
	d := Dist(a.Center, b.Center)
	if d <= Eps {
		return r2.Vec{}, r2.Vec{}, ErrConcentric
	}
	if d > a.R+b.R+Eps || d < math.Abs(a.R-b.R)-Eps {
		return r2.Vec{}, r2.Vec{}, ErrNoIntersection
	}

	// Foot of the radical line on the center line.
	h := (d*d + a.R*a.R - b.R*b.R) / (2 * d)
	t2 := a.R*a.R - h*h
	if t2 < 0 {
		t2 = 0 // tangent within Eps: clamp instead of rejecting
	}
	t := math.Sqrt(t2)

	ux := (b.Center.X - a.Center.X) / d // unit vector along centers
	uy := (b.Center.Y - a.Center.Y) / d
	fx := a.Center.X + h*ux // foot coordinates
	fy := a.Center.Y + h*uy

	// Left normal (-uy, ux) first for a stable candidate order.
	p = r2.Vec{X: fx - t*uy, Y: fy + t*ux}
	q = r2.Vec{X: fx + t*uy, Y: fy - t*ux}

	return p, q, nil
}
