package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// SignedArea returns the shoelace signed area of the ordered vertex list:
// positive for counter-clockwise winding, negative for clockwise.
// Returns ErrDegenerate for fewer than three vertices.
// Complexity: O(n).
func SignedArea(pts []r2.Vec) (float64, error) {
	n := len(pts)
	if n < 3 {
		return 0, ErrDegenerate
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}

	return sum / 2, nil
}

// Area returns the absolute shoelace area of the ordered vertex list.
// Complexity: O(n).
func Area(pts []r2.Vec) (float64, error) {
	s, err := SignedArea(pts)
	if err != nil {
		return 0, err
	}

	return math.Abs(s), nil
}

// Perimeter sums consecutive vertex distances, closing the ring.
// Complexity: O(n).
func Perimeter(pts []r2.Vec) (float64, error) {
	n := len(pts)
	if n < 3 {
		return 0, ErrDegenerate
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += Dist(pts[i], pts[(i+1)%n])
	}

	return sum, nil
}

// Centroid returns the signed-area-weighted centroid of the polygon.
// Degenerate rings of zero area fall back to the vertex mean so that
// collinear detection inputs still yield a usable anchor point.
// Complexity: O(n).
func Centroid(pts []r2.Vec) (r2.Vec, error) {
	n := len(pts)
	if n < 3 {
		return r2.Vec{}, ErrDegenerate
	}
	var cx, cy, a float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
		cx += (pts[i].X + pts[j].X) * cross
		cy += (pts[i].Y + pts[j].Y) * cross
		a += cross
	}
	a /= 2
	if math.Abs(a) <= Eps {
		var mx, my float64
		for _, p := range pts {
			mx += p.X
			my += p.Y
		}

		return r2.Vec{X: mx / float64(n), Y: my / float64(n)}, nil
	}

	return r2.Vec{X: cx / (6 * a), Y: cy / (6 * a)}, nil
}

// cross2 returns the z-component of (b-a)×(c-a).
func cross2(a, b, c r2.Vec) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// IsConvex reports whether the ordered vertex list forms a convex
// polygon. Collinear runs are tolerated; a sign flip is not.
// Complexity: O(n).
func IsConvex(pts []r2.Vec) bool {
	n := len(pts)
	if n < 3 {
		return false
	}
	var sign int
	for i := 0; i < n; i++ {
		c := cross2(pts[i], pts[(i+1)%n], pts[(i+2)%n])
		if math.Abs(c) <= Eps {
			continue
		}
		cur := 1
		if c < 0 {
			cur = -1
		}
		if sign == 0 {
			sign = cur
		} else if cur != sign {
			return false
		}
	}

	return true
}

// IsSimple reports whether the closed polygon has no two non-adjacent
// edges that properly intersect. Used as the independent cross-check for
// the kite/dart branch-selection rule.
// Complexity: O(n²) — fine for the 3–5 vertex inputs this library sees.
func IsSimple(pts []r2.Vec) bool {
	n := len(pts)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			// Adjacent edges (sharing a vertex) are allowed to touch.
			if j == i || (j+1)%n == i || (i+1)%n == j {
				continue
			}
			if segmentsCross(pts[i], pts[(i+1)%n], pts[j], pts[(j+1)%n]) {
				return false
			}
		}
	}

	return true
}

// segmentsCross reports proper intersection of segments ab and cd.
func segmentsCross(a, b, c, d r2.Vec) bool {
	d1 := cross2(c, d, a)
	d2 := cross2(c, d, b)
	d3 := cross2(a, b, c)
	d4 := cross2(a, b, d)
	if ((d1 > Eps && d2 < -Eps) || (d1 < -Eps && d2 > Eps)) &&
		((d3 > Eps && d4 < -Eps) || (d3 < -Eps && d4 > Eps)) {
		return true
	}

	return false
}
