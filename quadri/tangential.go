package quadri

import (
	"fmt"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// tangentialState is the closed slot set of the tangential
// quadrilateral: four sides around an inscribed circle, gated by
// Pitot's theorem, plus an optional inradius unlocking the area.
type tangentialState struct {
	sides    [4]shape.Scalar
	inradius shape.Scalar

	area, perimeter shape.Scalar
	semiperimeter   shape.Scalar
}

// Tangential resolves the tangential quadrilateral family. The four
// sides must satisfy Pitot's theorem (a+c = b+d); the area becomes
// available only once an inradius is supplied, as area = r·s.
type Tangential struct {
	st tangentialState
}

// NewTangential returns a tangential quadrilateral with every property
// unset.
func NewTangential() *Tangential { return &Tangential{} }

var tangentialCatalog = []shape.Spec{
	{Key: "side_a", Name: "Side a", Unit: "u", Precision: 4},
	{Key: "side_b", Name: "Side b", Unit: "u", Precision: 4},
	{Key: "side_c", Name: "Side c", Unit: "u", Precision: 4},
	{Key: "side_d", Name: "Side d", Unit: "u", Precision: 4},
	{Key: "inradius", Name: "Inradius", Unit: "u", Precision: 4},
	{Key: "area", Name: "Area", Unit: "u²", Precision: 4, Readonly: true},
	{Key: "perimeter", Name: "Perimeter", Unit: "u", Precision: 4, Readonly: true},
	{Key: "semiperimeter", Name: "Semiperimeter", Unit: "u", Precision: 4, Readonly: true},
}

func (t *Tangential) Kind() shape.Kind      { return shape.KindTangentialQuadrilateral }
func (t *Tangential) Catalog() []shape.Spec { return tangentialCatalog }

func (t *Tangential) slot(key string) *shape.Scalar {
	switch key {
	case "side_a":
		return &t.st.sides[0]
	case "side_b":
		return &t.st.sides[1]
	case "side_c":
		return &t.st.sides[2]
	case "side_d":
		return &t.st.sides[3]
	case "inradius":
		return &t.st.inradius
	case "area":
		return &t.st.area
	case "perimeter":
		return &t.st.perimeter
	case "semiperimeter":
		return &t.st.semiperimeter
	default:
		return nil
	}
}

func (t *Tangential) Value(key string) (float64, bool) { return shape.ValueFunc(t.slot, key) }
func (t *Tangential) Clear()                           { shape.ClearSlots(tangentialCatalog, t.slot) }

func (t *Tangential) Restore(snap map[string]float64) error {
	return shape.RestoreSlots(tangentialCatalog, t.slot, snap)
}

// Resolve stages key=v, runs the Pitot gate once the side multiset is
// complete, and commits atomically.
func (t *Tangential) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}

	cand := t.st
	switch key {
	case "side_a":
		cand.sides[0] = shape.Some(v)
	case "side_b":
		cand.sides[1] = shape.Some(v)
	case "side_c":
		cand.sides[2] = shape.Some(v)
	case "side_d":
		cand.sides[3] = shape.Some(v)
	case "inradius":
		cand.inradius = shape.Some(v)
	default:
		return shape.ErrUnknownKey
	}

	if err := closeTangential(&cand); err != nil {
		return err
	}
	t.st = cand

	return nil
}

// gatePitot checks the inscribed-circle condition a+c ≈ b+d within the
// package tolerance.
func gatePitot(a, b, c, d float64) error {
	if !geom.EqualRel(a+c, b+d, consistencyTol) {
		return fmt.Errorf("quadri: tangential: Pitot mismatch a+c=%v vs b+d=%v: %w",
			a+c, b+d, shape.ErrInfeasible)
	}
	return nil
}

// closeTangential runs the Pitot gate when the four sides are known and
// fills the derived group; the area waits for the inradius.
func closeTangential(st *tangentialState) error {
	var s [4]float64
	for i, sc := range st.sides {
		v, ok := sc.Get()
		if !ok {
			return nil
		}
		s[i] = v
	}

	if err := gatePitot(s[0], s[1], s[2], s[3]); err != nil {
		return err
	}
	semi := (s[0] + s[1] + s[2] + s[3]) / 2
	st.semiperimeter.Set(semi)
	st.perimeter.Set(2 * semi)
	if r, ok := st.inradius.Get(); ok {
		st.area.Set(r * semi)
	}

	return nil
}
