package quadri

import (
	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// bicentricState is the closed slot set of the bicentric quadrilateral:
// four sides passing both the Brahmagupta and Pitot gates, with the
// inradius recovered from area = r·s.
type bicentricState struct {
	sides [4]shape.Scalar

	area, perimeter shape.Scalar
	semiperimeter   shape.Scalar
	circumradius    shape.Scalar
	inradius        shape.Scalar
}

// Bicentric resolves the bicentric quadrilateral family: inscribed and
// circumscribed at once, so both the cyclic radicand gate and the Pitot
// gate must pass; failure of either is a hard rejection.
type Bicentric struct {
	st bicentricState
}

// NewBicentric returns a bicentric quadrilateral with every property
// unset.
func NewBicentric() *Bicentric { return &Bicentric{} }

var bicentricCatalog = []shape.Spec{
	{Key: "side_a", Name: "Side a", Unit: "u", Precision: 4},
	{Key: "side_b", Name: "Side b", Unit: "u", Precision: 4},
	{Key: "side_c", Name: "Side c", Unit: "u", Precision: 4},
	{Key: "side_d", Name: "Side d", Unit: "u", Precision: 4},
	{Key: "area", Name: "Area", Unit: "u²", Precision: 4, Readonly: true},
	{Key: "perimeter", Name: "Perimeter", Unit: "u", Precision: 4, Readonly: true},
	{Key: "semiperimeter", Name: "Semiperimeter", Unit: "u", Precision: 4, Readonly: true},
	{Key: "circumradius", Name: "Circumradius", Unit: "u", Precision: 4, Readonly: true},
	{Key: "inradius", Name: "Inradius", Unit: "u", Precision: 4, Readonly: true},
}

func (b *Bicentric) Kind() shape.Kind      { return shape.KindBicentricQuadrilateral }
func (b *Bicentric) Catalog() []shape.Spec { return bicentricCatalog }

func (b *Bicentric) slot(key string) *shape.Scalar {
	switch key {
	case "side_a":
		return &b.st.sides[0]
	case "side_b":
		return &b.st.sides[1]
	case "side_c":
		return &b.st.sides[2]
	case "side_d":
		return &b.st.sides[3]
	case "area":
		return &b.st.area
	case "perimeter":
		return &b.st.perimeter
	case "semiperimeter":
		return &b.st.semiperimeter
	case "circumradius":
		return &b.st.circumradius
	case "inradius":
		return &b.st.inradius
	default:
		return nil
	}
}

func (b *Bicentric) Value(key string) (float64, bool) { return shape.ValueFunc(b.slot, key) }
func (b *Bicentric) Clear()                           { shape.ClearSlots(bicentricCatalog, b.slot) }

func (b *Bicentric) Restore(snap map[string]float64) error {
	return shape.RestoreSlots(bicentricCatalog, b.slot, snap)
}

// Resolve stages side key=v, runs both gates once the side multiset is
// complete, and commits atomically.
func (b *Bicentric) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}

	cand := b.st
	switch key {
	case "side_a":
		cand.sides[0] = shape.Some(v)
	case "side_b":
		cand.sides[1] = shape.Some(v)
	case "side_c":
		cand.sides[2] = shape.Some(v)
	case "side_d":
		cand.sides[3] = shape.Some(v)
	default:
		return shape.ErrUnknownKey
	}

	if err := closeBicentric(&cand); err != nil {
		return err
	}
	b.st = cand

	return nil
}

// closeBicentric applies the cyclic derivation behind the Pitot gate.
// The Brahmagupta area of a Pitot-satisfying side multiset reduces to
// √(abcd), and the inradius follows from area = r·s.
func closeBicentric(st *bicentricState) error {
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

	cyc := cyclicState{}
	for i, v := range s {
		cyc.sides[i] = shape.Some(v)
	}
	if err := closeCyclic(&cyc); err != nil {
		return err
	}

	semi := cyc.semiperimeter.Val()
	area := cyc.area.Val()
	st.area.Set(area)
	st.perimeter.Set(2 * semi)
	st.semiperimeter.Set(semi)
	st.circumradius.Set(cyc.circumradius.Val())
	st.inradius.Set(area / semi)

	return nil
}
