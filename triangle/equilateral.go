package triangle

import (
	"math"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// equilateralState is the closed slot set of the equilateral family.
type equilateralState struct {
	side, perimeter, area, height, inradius, circumradius shape.Scalar
}

// Equilateral resolves the equilateral triangle from any property.
type Equilateral struct {
	st equilateralState
}

// NewEquilateral returns an equilateral triangle with properties unset.
func NewEquilateral() *Equilateral { return &Equilateral{} }

var equilateralCatalog = []shape.Spec{
	{Key: "side", Name: "Side", Unit: "u", Precision: 4},
	{Key: "perimeter", Name: "Perimeter", Unit: "u", Precision: 4},
	{Key: "area", Name: "Area", Unit: "u²", Precision: 4},
	{Key: "height", Name: "Height", Unit: "u", Precision: 4},
	{Key: "inradius", Name: "Inradius", Unit: "u", Precision: 4},
	{Key: "circumradius", Name: "Circumradius", Unit: "u", Precision: 4},
}

func (e *Equilateral) Kind() shape.Kind      { return shape.KindEquilateralTriangle }
func (e *Equilateral) Catalog() []shape.Spec { return equilateralCatalog }

func (e *Equilateral) slot(key string) *shape.Scalar {
	switch key {
	case "side":
		return &e.st.side
	case "perimeter":
		return &e.st.perimeter
	case "area":
		return &e.st.area
	case "height":
		return &e.st.height
	case "inradius":
		return &e.st.inradius
	case "circumradius":
		return &e.st.circumradius
	default:
		return nil
	}
}

func (e *Equilateral) Value(key string) (float64, bool) { return shape.ValueFunc(e.slot, key) }
func (e *Equilateral) Clear()                           { shape.ClearSlots(equilateralCatalog, e.slot) }

func (e *Equilateral) Restore(snap map[string]float64) error {
	return shape.RestoreSlots(equilateralCatalog, e.slot, snap)
}

// Resolve converts key=v to the canonical side and rebuilds the set:
// h = s√3/2, A = s²√3/4, r = s/(2√3), R = s/√3.
// Complexity: O(1).
func (e *Equilateral) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}
	sqrt3 := math.Sqrt(3)

	var s float64
	switch key {
	case "side":
		s = v
	case "perimeter":
		s = v / 3
	case "area":
		s = math.Sqrt(4 * v / sqrt3)
	case "height":
		s = 2 * v / sqrt3
	case "inradius":
		s = 2 * v * sqrt3
	case "circumradius":
		s = v * sqrt3
	default:
		return shape.ErrUnknownKey
	}

	e.st = equilateralState{
		side:         shape.Some(s),
		perimeter:    shape.Some(3 * s),
		area:         shape.Some(s * s * sqrt3 / 4),
		height:       shape.Some(s * sqrt3 / 2),
		inradius:     shape.Some(s / (2 * sqrt3)),
		circumradius: shape.Some(s / sqrt3),
	}

	return nil
}
