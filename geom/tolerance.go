package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// EqualRel reports whether a and b agree within relative tolerance tol.
// Near zero it degrades to an absolute comparison with the same tol, so
// callers do not have to special-case vanishing quantities.
// Complexity: O(1).
func EqualRel(a, b, tol float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, tol, tol)
}

// EqualAbs reports whether |a-b| ≤ tol.
// Complexity: O(1).
func EqualAbs(a, b, tol float64) bool {
	return scalar.EqualWithinAbs(a, b, tol)
}

// Positive reports whether v is a finite, strictly positive value.
// Every resolver applies this domain check before touching state.
// Complexity: O(1).
func Positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1) && !math.IsNaN(v)
}

// Finite reports whether v is neither NaN nor ±Inf. Polygon vertex
// coordinates may be negative, so they are gated on Finite, not Positive.
// Complexity: O(1).
func Finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
