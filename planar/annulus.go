package planar

import (
	"fmt"
	"math"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// annulusState is the closed slot set of the annulus family.
type annulusState struct {
	outer, inner shape.Scalar
	width, area  shape.Scalar
	outerCircum  shape.Scalar
	innerCircum  shape.Scalar
}

// Annulus resolves the ring between two concentric circles. The two
// radii are the dual basis: derived metrics populate once both are
// known, and inverse entry of area or width needs one radius resolved
// first (the secondary-family rule).
type Annulus struct {
	st annulusState
}

// NewAnnulus returns an annulus with every property unset.
func NewAnnulus() *Annulus { return &Annulus{} }

var annulusCatalog = []shape.Spec{
	{Key: "outer_radius", Name: "Outer radius", Unit: "u", Precision: 4},
	{Key: "inner_radius", Name: "Inner radius", Unit: "u", Precision: 4},
	{Key: "width", Name: "Ring width", Unit: "u", Precision: 4},
	{Key: "area", Name: "Ring area", Unit: "u²", Precision: 4},
	{Key: "outer_circumference", Name: "Outer circumference", Unit: "u", Precision: 4, Readonly: true},
	{Key: "inner_circumference", Name: "Inner circumference", Unit: "u", Precision: 4, Readonly: true},
}

func (a *Annulus) Kind() shape.Kind      { return shape.KindAnnulus }
func (a *Annulus) Catalog() []shape.Spec { return annulusCatalog }

func (a *Annulus) slot(key string) *shape.Scalar {
	switch key {
	case "outer_radius":
		return &a.st.outer
	case "inner_radius":
		return &a.st.inner
	case "width":
		return &a.st.width
	case "area":
		return &a.st.area
	case "outer_circumference":
		return &a.st.outerCircum
	case "inner_circumference":
		return &a.st.innerCircum
	default:
		return nil
	}
}

func (a *Annulus) Value(key string) (float64, bool) { return shape.ValueFunc(a.slot, key) }
func (a *Annulus) Clear()                           { shape.ClearSlots(annulusCatalog, a.slot) }

func (a *Annulus) Restore(snap map[string]float64) error {
	return shape.RestoreSlots(annulusCatalog, a.slot, snap)
}

// Resolve stages key=v onto the radii basis and rebuilds the derived
// group once both radii are known. Gate: inner < outer.
// Complexity: O(1).
func (a *Annulus) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}

	outer, okOuter := a.st.outer.Get()
	inner, okInner := a.st.inner.Get()

	switch key {
	case "outer_radius":
		outer, okOuter = v, true
	case "inner_radius":
		inner, okInner = v, true
	case "width":
		// Prefer deriving the missing radius; with both set, re-derive
		// the inner one from the kept outer radius.
		switch {
		case okOuter:
			inner, okInner = outer-v, true
		case okInner:
			outer, okOuter = inner+v, true
		default:
			return shape.ErrUnsetParameter
		}
	case "area":
		// v = π(R² − r²); solve for whichever radius is missing.
		switch {
		case okOuter:
			r2 := outer*outer - v/math.Pi
			if r2 <= 0 {
				return fmt.Errorf("planar: annulus: area exceeds outer disk: %w", shape.ErrInfeasible)
			}
			inner, okInner = math.Sqrt(r2), true
		case okInner:
			outer, okOuter = math.Sqrt(v/math.Pi+inner*inner), true
		default:
			return shape.ErrUnsetParameter
		}
	default:
		return shape.ErrUnknownKey
	}

	if okOuter && okInner && inner >= outer {
		return fmt.Errorf("planar: annulus: inner radius %v ≥ outer %v: %w", inner, outer, shape.ErrInfeasible)
	}
	if okOuter && okInner && inner <= 0 {
		return fmt.Errorf("planar: annulus: derived inner radius %v: %w", inner, shape.ErrInfeasible)
	}

	var next annulusState
	if okOuter {
		next.outer = shape.Some(outer)
		next.outerCircum = shape.Some(2 * math.Pi * outer)
	}
	if okInner {
		next.inner = shape.Some(inner)
		next.innerCircum = shape.Some(2 * math.Pi * inner)
	}
	if okOuter && okInner {
		next.width = shape.Some(outer - inner)
		next.area = shape.Some(math.Pi * (outer*outer - inner*inner))
	}
	a.st = next

	return nil
}
