package triangle

import (
	"fmt"
	"math"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// rightState is the closed slot set of the right-triangle family.
type rightState struct {
	base, height, hypotenuse shape.Scalar
	area, perimeter          shape.Scalar
	angleBase, angleHeight   shape.Scalar
}

// Right resolves the right triangle. The two legs are the basis; the
// hypotenuse is also enterable and solves the missing leg when exactly
// one leg is known.
type Right struct {
	st rightState
}

// NewRight returns a right triangle with every property unset.
func NewRight() *Right { return &Right{} }

var rightCatalog = []shape.Spec{
	{Key: "base", Name: "Base leg", Unit: "u", Precision: 4},
	{Key: "height", Name: "Height leg", Unit: "u", Precision: 4},
	{Key: "hypotenuse", Name: "Hypotenuse", Unit: "u", Precision: 4},
	{Key: "area", Name: "Area", Unit: "u²", Precision: 4, Readonly: true},
	{Key: "perimeter", Name: "Perimeter", Unit: "u", Precision: 4, Readonly: true},
	{Key: "angle_base", Name: "Angle at base", Unit: "°", Precision: 2, Readonly: true},
	{Key: "angle_height", Name: "Angle at height", Unit: "°", Precision: 2, Readonly: true},
}

func (r *Right) Kind() shape.Kind      { return shape.KindRightTriangle }
func (r *Right) Catalog() []shape.Spec { return rightCatalog }

func (r *Right) slot(key string) *shape.Scalar {
	switch key {
	case "base":
		return &r.st.base
	case "height":
		return &r.st.height
	case "hypotenuse":
		return &r.st.hypotenuse
	case "area":
		return &r.st.area
	case "perimeter":
		return &r.st.perimeter
	case "angle_base":
		return &r.st.angleBase
	case "angle_height":
		return &r.st.angleHeight
	default:
		return nil
	}
}

func (r *Right) Value(key string) (float64, bool) { return shape.ValueFunc(r.slot, key) }
func (r *Right) Clear()                           { shape.ClearSlots(rightCatalog, r.slot) }

func (r *Right) Restore(snap map[string]float64) error {
	return shape.RestoreSlots(rightCatalog, r.slot, snap)
}

// Resolve stages key=v onto the legs basis and rebuilds the derived
// group once both legs are known.
// Complexity: O(1).
func (r *Right) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}

	base, okB := r.st.base.Get()
	height, okH := r.st.height.Get()

	switch key {
	case "base":
		base, okB = v, true
	case "height":
		height, okH = v, true
	case "hypotenuse":
		// Solve the missing leg from c² = a² + b².
		switch {
		case okB && !okH:
			if v <= base {
				return fmt.Errorf("triangle: right: hypotenuse %v not above leg %v: %w", v, base, shape.ErrInfeasible)
			}
			height, okH = math.Sqrt(v*v-base*base), true
		case okH && !okB:
			if v <= height {
				return fmt.Errorf("triangle: right: hypotenuse %v not above leg %v: %w", v, height, shape.ErrInfeasible)
			}
			base, okB = math.Sqrt(v*v-height*height), true
		case okB && okH:
			// Both legs known: the hypotenuse is determined; accept only
			// a consistent value rather than guessing which leg to drop.
			if !geom.EqualRel(v, math.Hypot(base, height), 1e-9) {
				return fmt.Errorf("triangle: right: hypotenuse %v inconsistent with legs: %w", v, shape.ErrInfeasible)
			}
		default:
			return shape.ErrUnsetParameter
		}
	default:
		return shape.ErrUnknownKey
	}

	var next rightState
	if okB {
		next.base = shape.Some(base)
	}
	if okH {
		next.height = shape.Some(height)
	}
	if okB && okH {
		hyp := math.Hypot(base, height)
		next.hypotenuse = shape.Some(hyp)
		next.area = shape.Some(base * height / 2)
		next.perimeter = shape.Some(base + height + hyp)
		next.angleBase = shape.Some(math.Atan2(height, base) / degToRad)
		next.angleHeight = shape.Some(math.Atan2(base, height) / degToRad)
	}
	r.st = next

	return nil
}

// degToRad converts degrees to radians.
const degToRad = 0.017453292519943295 // π/180
