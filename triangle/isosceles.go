package triangle

import (
	"fmt"
	"math"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// isoscelesState is the closed slot set of the isosceles family.
type isoscelesState struct {
	base, leg              shape.Scalar
	height, area, perimeter shape.Scalar
	apexAngle              shape.Scalar
}

// Isosceles resolves the isosceles triangle from its base/leg basis.
type Isosceles struct {
	st isoscelesState
}

// NewIsosceles returns an isosceles triangle with properties unset.
func NewIsosceles() *Isosceles { return &Isosceles{} }

var isoscelesCatalog = []shape.Spec{
	{Key: "base", Name: "Base", Unit: "u", Precision: 4},
	{Key: "leg", Name: "Leg", Unit: "u", Precision: 4},
	{Key: "height", Name: "Height", Unit: "u", Precision: 4, Readonly: true},
	{Key: "area", Name: "Area", Unit: "u²", Precision: 4, Readonly: true},
	{Key: "perimeter", Name: "Perimeter", Unit: "u", Precision: 4, Readonly: true},
	{Key: "apex_angle", Name: "Apex angle", Unit: "°", Precision: 2, Readonly: true},
}

func (i *Isosceles) Kind() shape.Kind      { return shape.KindIsoscelesTriangle }
func (i *Isosceles) Catalog() []shape.Spec { return isoscelesCatalog }

func (i *Isosceles) slot(key string) *shape.Scalar {
	switch key {
	case "base":
		return &i.st.base
	case "leg":
		return &i.st.leg
	case "height":
		return &i.st.height
	case "area":
		return &i.st.area
	case "perimeter":
		return &i.st.perimeter
	case "apex_angle":
		return &i.st.apexAngle
	default:
		return nil
	}
}

func (i *Isosceles) Value(key string) (float64, bool) { return shape.ValueFunc(i.slot, key) }
func (i *Isosceles) Clear()                           { shape.ClearSlots(isoscelesCatalog, i.slot) }

func (i *Isosceles) Restore(snap map[string]float64) error {
	return shape.RestoreSlots(isoscelesCatalog, i.slot, snap)
}

// Resolve stages key=v onto the base/leg basis; derived metrics appear
// once both are known. Gate: leg > base/2, else the apex degenerates.
// Complexity: O(1).
func (i *Isosceles) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}

	base, okB := i.st.base.Get()
	leg, okL := i.st.leg.Get()

	switch key {
	case "base":
		base, okB = v, true
	case "leg":
		leg, okL = v, true
	default:
		return shape.ErrUnknownKey
	}

	if okB && okL && leg <= base/2 {
		return fmt.Errorf("triangle: isosceles: leg %v ≤ base/2 %v: %w", leg, base/2, shape.ErrInfeasible)
	}

	var next isoscelesState
	if okB {
		next.base = shape.Some(base)
	}
	if okL {
		next.leg = shape.Some(leg)
	}
	if okB && okL {
		h := math.Sqrt(leg*leg - base*base/4)
		next.height = shape.Some(h)
		next.area = shape.Some(base * h / 2)
		next.perimeter = shape.Some(base + 2*leg)
		next.apexAngle = shape.Some(2 * math.Asin(base/(2*leg)) / degToRad)
	}
	i.st = next

	return nil
}
