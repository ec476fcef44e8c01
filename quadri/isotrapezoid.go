package quadri

import (
	"fmt"
	"math"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// isoTrapezoidState is the closed slot set of the isosceles trapezoid.
// Basis: base_long, base_short, leg, height — bound by
// leg² = height² + ((base_long − base_short)/2)².
type isoTrapezoidState struct {
	baseLong, baseShort shape.Scalar
	leg, height         shape.Scalar
	area, perimeter     shape.Scalar
	diagonal            shape.Scalar
	midsegment          shape.Scalar
}

// IsoTrapezoid resolves the isosceles trapezoid family by bounded
// fixed-point inference over its bases, leg and height.
type IsoTrapezoid struct {
	st isoTrapezoidState
}

// NewIsoTrapezoid returns an isosceles trapezoid with every property unset.
func NewIsoTrapezoid() *IsoTrapezoid { return &IsoTrapezoid{} }

var isoTrapezoidCatalog = []shape.Spec{
	{Key: "base_long", Name: "Long base", Unit: "u", Precision: 4},
	{Key: "base_short", Name: "Short base", Unit: "u", Precision: 4},
	{Key: "leg", Name: "Leg", Unit: "u", Precision: 4},
	{Key: "height", Name: "Height", Unit: "u", Precision: 4},
	{Key: "area", Name: "Area", Unit: "u²", Precision: 4, Readonly: true},
	{Key: "perimeter", Name: "Perimeter", Unit: "u", Precision: 4, Readonly: true},
	{Key: "diagonal", Name: "Diagonal", Unit: "u", Precision: 4, Readonly: true},
	{Key: "midsegment", Name: "Midsegment", Unit: "u", Precision: 4, Readonly: true},
}

func (t *IsoTrapezoid) Kind() shape.Kind      { return shape.KindIsoscelesTrapezoid }
func (t *IsoTrapezoid) Catalog() []shape.Spec { return isoTrapezoidCatalog }

func (t *IsoTrapezoid) slot(key string) *shape.Scalar {
	switch key {
	case "base_long":
		return &t.st.baseLong
	case "base_short":
		return &t.st.baseShort
	case "leg":
		return &t.st.leg
	case "height":
		return &t.st.height
	case "area":
		return &t.st.area
	case "perimeter":
		return &t.st.perimeter
	case "diagonal":
		return &t.st.diagonal
	case "midsegment":
		return &t.st.midsegment
	default:
		return nil
	}
}

func (t *IsoTrapezoid) Value(key string) (float64, bool) { return shape.ValueFunc(t.slot, key) }
func (t *IsoTrapezoid) Clear()                           { shape.ClearSlots(isoTrapezoidCatalog, t.slot) }

func (t *IsoTrapezoid) Restore(snap map[string]float64) error {
	return shape.RestoreSlots(isoTrapezoidCatalog, t.slot, snap)
}

// Resolve stages key=v, runs the bounded fixed-point loop over the
// bases/leg/height quadruple, gates realizability, and commits atomically.
func (t *IsoTrapezoid) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}

	cand := t.st
	switch key {
	case "base_long":
		cand.baseLong = shape.Some(v)
	case "base_short":
		cand.baseShort = shape.Some(v)
	case "leg":
		cand.leg = shape.Some(v)
	case "height":
		cand.height = shape.Some(v)
	default:
		return shape.ErrUnknownKey
	}

	for pass := 0; pass < len(isoTrapezoidCatalog); pass++ {
		if !inferIsoTrapezoid(&cand) {
			break
		}
	}

	if err := gateIsoTrapezoid(&cand); err != nil {
		return err
	}

	fillIsoTrapezoid(&cand)
	t.st = cand

	return nil
}

// inferIsoTrapezoid applies the leg² = h² + run² rule once, with
// run = (base_long − base_short)/2; reports whether a value was derived.
func inferIsoTrapezoid(st *isoTrapezoidState) bool {
	a, okA := st.baseLong.Get()
	b, okB := st.baseShort.Get()
	l, okL := st.leg.Get()
	h, okH := st.height.Get()

	if !okA || !okB || b >= a {
		return false
	}
	run := (a - b) / 2

	switch {
	case okL && !okH:
		if l <= run {
			return false // left for the gate to reject
		}
		st.height.Set(math.Sqrt(l*l - run*run))
	case okH && !okL:
		st.leg.Set(math.Hypot(h, run))
	default:
		return false
	}

	return true
}

// gateIsoTrapezoid rejects unrealizable candidates: inverted bases,
// a leg too short to span the base overhang, and over-determined
// quadruples that disagree beyond tolerance.
func gateIsoTrapezoid(st *isoTrapezoidState) error {
	a, okA := st.baseLong.Get()
	b, okB := st.baseShort.Get()
	l, okL := st.leg.Get()
	h, okH := st.height.Get()

	if okA && okB && b >= a {
		return fmt.Errorf("quadri: isotrapezoid: short base %v not below long base %v: %w", b, a, shape.ErrInfeasible)
	}
	if okA && okB && okL {
		run := (a - b) / 2
		if l <= run {
			return fmt.Errorf("quadri: isotrapezoid: leg %v cannot span base overhang %v: %w", l, run, shape.ErrInfeasible)
		}
		if okH && !geom.EqualRel(l, math.Hypot(h, run), consistencyTol) {
			return fmt.Errorf("quadri: isotrapezoid: leg/height/bases disagree: %w", shape.ErrInfeasible)
		}
	}

	return nil
}

// fillIsoTrapezoid populates the derived group when determined. The
// diagonal follows from the symmetric placement of the short base:
//
//	diagonal² = height² + ((base_long + base_short)/2)²
func fillIsoTrapezoid(st *isoTrapezoidState) {
	a, okA := st.baseLong.Get()
	b, okB := st.baseShort.Get()
	l, okL := st.leg.Get()
	h, okH := st.height.Get()

	if !okA || !okB {
		return
	}
	st.midsegment.Set((a + b) / 2)
	if okH {
		st.area.Set((a + b) / 2 * h)
		st.diagonal.Set(math.Hypot(h, (a+b)/2))
	}
	if okL {
		st.perimeter.Set(a + b + 2*l)
	}
}
