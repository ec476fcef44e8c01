package planar

import (
	"math"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// squareState is the closed slot set of the square family.
type squareState struct {
	side, perimeter, area, diagonal, inradius, circumradius shape.Scalar
}

// Square resolves the square family from any of its six properties.
type Square struct {
	st squareState
}

// NewSquare returns a square with every property unset.
func NewSquare() *Square { return &Square{} }

var squareCatalog = []shape.Spec{
	{Key: "side", Name: "Side", Unit: "u", Precision: 4},
	{Key: "perimeter", Name: "Perimeter", Unit: "u", Precision: 4},
	{Key: "area", Name: "Area", Unit: "u²", Precision: 4},
	{Key: "diagonal", Name: "Diagonal", Unit: "u", Precision: 4},
	{Key: "inradius", Name: "Inradius", Unit: "u", Precision: 4},
	{Key: "circumradius", Name: "Circumradius", Unit: "u", Precision: 4},
}

func (s *Square) Kind() shape.Kind      { return shape.KindSquare }
func (s *Square) Catalog() []shape.Spec { return squareCatalog }

func (s *Square) slot(key string) *shape.Scalar {
	switch key {
	case "side":
		return &s.st.side
	case "perimeter":
		return &s.st.perimeter
	case "area":
		return &s.st.area
	case "diagonal":
		return &s.st.diagonal
	case "inradius":
		return &s.st.inradius
	case "circumradius":
		return &s.st.circumradius
	default:
		return nil
	}
}

func (s *Square) Value(key string) (float64, bool) { return shape.ValueFunc(s.slot, key) }
func (s *Square) Clear()                           { shape.ClearSlots(squareCatalog, s.slot) }

func (s *Square) Restore(snap map[string]float64) error {
	return shape.RestoreSlots(squareCatalog, s.slot, snap)
}

// Resolve converts key=v to the canonical side and rebuilds the set.
// Complexity: O(1).
func (s *Square) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}
	var a float64
	switch key {
	case "side":
		a = v
	case "perimeter":
		a = v / 4
	case "area":
		a = math.Sqrt(v)
	case "diagonal":
		a = v / math.Sqrt2
	case "inradius":
		a = 2 * v
	case "circumradius":
		a = v * math.Sqrt2
	default:
		return shape.ErrUnknownKey
	}

	s.st = squareState{
		side:         shape.Some(a),
		perimeter:    shape.Some(4 * a),
		area:         shape.Some(a * a),
		diagonal:     shape.Some(a * math.Sqrt2),
		inradius:     shape.Some(a / 2),
		circumradius: shape.Some(a / math.Sqrt2),
	}

	return nil
}
