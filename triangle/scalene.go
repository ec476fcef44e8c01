package triangle

import (
	"fmt"
	"math"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// scaleneState is the closed slot set of the scalene family.
type scaleneState struct {
	a, b, c                shape.Scalar
	area, perimeter        shape.Scalar
	angleA, angleB, angleC shape.Scalar
}

// Scalene resolves the general triangle from its three sides: Heron's
// area and law-of-cosines angles, forward-only.
type Scalene struct {
	st scaleneState
}

// NewScalene returns a scalene triangle with every property unset.
func NewScalene() *Scalene { return &Scalene{} }

var scaleneCatalog = []shape.Spec{
	{Key: "side_a", Name: "Side a", Unit: "u", Precision: 4},
	{Key: "side_b", Name: "Side b", Unit: "u", Precision: 4},
	{Key: "side_c", Name: "Side c", Unit: "u", Precision: 4},
	{Key: "area", Name: "Area", Unit: "u²", Precision: 4, Readonly: true},
	{Key: "perimeter", Name: "Perimeter", Unit: "u", Precision: 4, Readonly: true},
	{Key: "angle_a", Name: "Angle opposite a", Unit: "°", Precision: 2, Readonly: true},
	{Key: "angle_b", Name: "Angle opposite b", Unit: "°", Precision: 2, Readonly: true},
	{Key: "angle_c", Name: "Angle opposite c", Unit: "°", Precision: 2, Readonly: true},
}

func (s *Scalene) Kind() shape.Kind      { return shape.KindScaleneTriangle }
func (s *Scalene) Catalog() []shape.Spec { return scaleneCatalog }

func (s *Scalene) slot(key string) *shape.Scalar {
	switch key {
	case "side_a":
		return &s.st.a
	case "side_b":
		return &s.st.b
	case "side_c":
		return &s.st.c
	case "area":
		return &s.st.area
	case "perimeter":
		return &s.st.perimeter
	case "angle_a":
		return &s.st.angleA
	case "angle_b":
		return &s.st.angleB
	case "angle_c":
		return &s.st.angleC
	default:
		return nil
	}
}

func (s *Scalene) Value(key string) (float64, bool) { return shape.ValueFunc(s.slot, key) }
func (s *Scalene) Clear()                           { shape.ClearSlots(scaleneCatalog, s.slot) }

func (s *Scalene) Restore(snap map[string]float64) error {
	return shape.RestoreSlots(scaleneCatalog, s.slot, snap)
}

// Resolve stages key=v onto the three-side basis; derived metrics appear
// once all sides are known. Gate: strict triangle inequality.
// Complexity: O(1).
func (s *Scalene) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}

	a, okA := s.st.a.Get()
	b, okB := s.st.b.Get()
	c, okC := s.st.c.Get()

	switch key {
	case "side_a":
		a, okA = v, true
	case "side_b":
		b, okB = v, true
	case "side_c":
		c, okC = v, true
	default:
		return shape.ErrUnknownKey
	}

	all := okA && okB && okC
	if all && (a+b <= c || b+c <= a || a+c <= b) {
		return fmt.Errorf("triangle: scalene: sides %v %v %v violate the triangle inequality: %w", a, b, c, shape.ErrInfeasible)
	}

	var next scaleneState
	if okA {
		next.a = shape.Some(a)
	}
	if okB {
		next.b = shape.Some(b)
	}
	if okC {
		next.c = shape.Some(c)
	}
	if all {
		sp := (a + b + c) / 2
		next.area = shape.Some(math.Sqrt(sp * (sp - a) * (sp - b) * (sp - c)))
		next.perimeter = shape.Some(a + b + c)
		next.angleA = shape.Some(math.Acos((b*b+c*c-a*a)/(2*b*c)) / degToRad)
		next.angleB = shape.Some(math.Acos((a*a+c*c-b*b)/(2*a*c)) / degToRad)
		next.angleC = shape.Some(math.Acos((a*a+b*b-c*c)/(2*a*b)) / degToRad)
	}
	s.st = next

	return nil
}
