// Package solid: shared numeric policy and snapshot plumbing of the
// metric calculators.
package solid

import (
	"errors"

	"github.com/quantgeom/figura/shape"
)

// ErrDimension reports a non-positive dimension passed straight to a
// low-level Metrics constructor, bypassing the calculator validation.
var ErrDimension = errors.New("solid: non-positive dimension")

// consistencyTol is the relative tolerance applied when an edit stages
// a derived metric over an already-complete canonical dimension set.
const consistencyTol = 1e-4

// checkKeys rejects any snapshot key absent from the catalog before a
// restore touches state.
func checkKeys(catalog []shape.Spec, snap map[string]float64) error {
	for key := range snap {
		known := false
		for _, spec := range catalog {
			if spec.Key == key {
				known = true
				break
			}
		}
		if !known {
			return shape.ErrBadSnapshot
		}
	}
	return nil
}
