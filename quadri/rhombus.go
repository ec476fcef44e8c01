package quadri

import (
	"fmt"
	"math"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// rhombusState is the closed slot set of the rhombus family.
// Basis: side, angle, and the two diagonals, connected by
// d_short = 2s·sin(θ/2), d_long = 2s·cos(θ/2) for the acute angle θ.
type rhombusState struct {
	side, angle   shape.Scalar // angle in degrees, acute canonical
	dLong, dShort shape.Scalar
	height, area  shape.Scalar
	perimeter     shape.Scalar
	inradius      shape.Scalar
}

// Rhombus resolves the rhombus family. When both diagonals are supplied
// they are canonically sorted so diagonal_long ≥ diagonal_short before
// side and angle are derived.
type Rhombus struct {
	st rhombusState
}

// NewRhombus returns a rhombus with every property unset.
func NewRhombus() *Rhombus { return &Rhombus{} }

var rhombusCatalog = []shape.Spec{
	{Key: "side", Name: "Side", Unit: "u", Precision: 4},
	{Key: "angle", Name: "Acute angle", Unit: "°", Precision: 2},
	{Key: "diagonal_long", Name: "Long diagonal", Unit: "u", Precision: 4},
	{Key: "diagonal_short", Name: "Short diagonal", Unit: "u", Precision: 4},
	{Key: "height", Name: "Height", Unit: "u", Precision: 4, Readonly: true},
	{Key: "area", Name: "Area", Unit: "u²", Precision: 4, Readonly: true},
	{Key: "perimeter", Name: "Perimeter", Unit: "u", Precision: 4, Readonly: true},
	{Key: "inradius", Name: "Inradius", Unit: "u", Precision: 4, Readonly: true},
}

func (r *Rhombus) Kind() shape.Kind      { return shape.KindRhombus }
func (r *Rhombus) Catalog() []shape.Spec { return rhombusCatalog }

func (r *Rhombus) slot(key string) *shape.Scalar {
	switch key {
	case "side":
		return &r.st.side
	case "angle":
		return &r.st.angle
	case "diagonal_long":
		return &r.st.dLong
	case "diagonal_short":
		return &r.st.dShort
	case "height":
		return &r.st.height
	case "area":
		return &r.st.area
	case "perimeter":
		return &r.st.perimeter
	case "inradius":
		return &r.st.inradius
	default:
		return nil
	}
}

func (r *Rhombus) Value(key string) (float64, bool) { return shape.ValueFunc(r.slot, key) }
func (r *Rhombus) Clear()                           { shape.ClearSlots(rhombusCatalog, r.slot) }

func (r *Rhombus) Restore(snap map[string]float64) error {
	return shape.RestoreSlots(rhombusCatalog, r.slot, snap)
}

// Resolve stages key=v, canonicalizes the diagonal pair, runs the
// fixed-point loop, gates, and commits atomically.
// Complexity: bounded by the basis size (≤ 4 passes).
func (r *Rhombus) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}

	cand := r.st
	switch key {
	case "side":
		cand.side = shape.Some(v)
	case "angle":
		if v >= halfTurnDeg {
			return fmt.Errorf("quadri: rhombus: angle %v outside (0,180): %w", v, shape.ErrInfeasible)
		}
		// Canonical acute representative: θ and 180−θ describe the same
		// rhombus; store the acute one so the diagonal mapping is stable.
		if v > 90 {
			v = halfTurnDeg - v
		}
		cand.angle = shape.Some(v)
	case "diagonal_long":
		cand.dLong = shape.Some(v)
	case "diagonal_short":
		cand.dShort = shape.Some(v)
	default:
		return shape.ErrUnknownKey
	}

	// Canonical tie-break: both diagonals present ⇒ long ≥ short.
	if p, okP := cand.dLong.Get(); okP {
		if q, okQ := cand.dShort.Get(); okQ && q > p {
			cand.dLong.Set(q)
			cand.dShort.Set(p)
		}
	}

	for pass := 0; pass < len(rhombusCatalog); pass++ {
		if !inferRhombus(&cand) {
			break
		}
	}

	if err := gateRhombus(&cand); err != nil {
		return err
	}
	fillRhombus(&cand)
	r.st = cand

	return nil
}

// inferRhombus applies the basis rules once.
func inferRhombus(st *rhombusState) bool {
	s, okS := st.side.Get()
	a, okA := st.angle.Get()
	p, okP := st.dLong.Get()
	q, okQ := st.dShort.Get()

	half := a * degToRad / 2
	switch {
	case okS && okA && !okP:
		st.dLong.Set(2 * s * math.Cos(half))
	case okS && okA && !okQ:
		st.dShort.Set(2 * s * math.Sin(half))
	case okP && okQ && !okS:
		st.side.Set(math.Hypot(p, q) / 2)
	case okP && okQ && !okA:
		st.angle.Set(2 * math.Atan2(q, p) / degToRad)
	case okS && okP && !okQ:
		if p >= 2*s {
			return false // gate handles rejection
		}
		st.dShort.Set(math.Sqrt(4*s*s - p*p))
	case okS && okQ && !okP:
		if q >= 2*s {
			return false
		}
		st.dLong.Set(math.Sqrt(4*s*s - q*q))
	default:
		return false
	}

	return true
}

// gateRhombus rejects diagonals at or beyond the 2·side bound and
// over-determined state that violates p² + q² = 4s².
func gateRhombus(st *rhombusState) error {
	s, okS := st.side.Get()
	p, okP := st.dLong.Get()
	q, okQ := st.dShort.Get()

	if okS && okP && p >= 2*s {
		return fmt.Errorf("quadri: rhombus: diagonal %v not below 2·side %v: %w", p, 2*s, shape.ErrInfeasible)
	}
	if okS && okQ && q >= 2*s {
		return fmt.Errorf("quadri: rhombus: diagonal %v not below 2·side %v: %w", q, 2*s, shape.ErrInfeasible)
	}
	if okS && okP && okQ && !geom.EqualRel(p*p+q*q, 4*s*s, consistencyTol) {
		return fmt.Errorf("quadri: rhombus: diagonals disagree with side: %w", shape.ErrInfeasible)
	}

	return nil
}

// fillRhombus populates the derived group when determined.
func fillRhombus(st *rhombusState) {
	s, okS := st.side.Get()
	a, okA := st.angle.Get()
	p, okP := st.dLong.Get()
	q, okQ := st.dShort.Get()

	if okS {
		st.perimeter.Set(4 * s)
	}
	if okS && okA {
		st.height.Set(s * math.Sin(a*degToRad))
	}
	if okP && okQ {
		st.area.Set(p * q / 2)
	}
	if okS && okP && okQ {
		st.inradius.Set(p * q / (4 * s))
	}
}
