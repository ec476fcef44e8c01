package quadri

import (
	"fmt"
	"math"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// parallelogramState is the closed slot set of the parallelogram family.
// Basis: base, side, height, angle — bound by height = side·sin(angle).
type parallelogramState struct {
	base, side, height, angle shape.Scalar // angle in degrees
	area, dLong, dShort       shape.Scalar
	perimeter                 shape.Scalar
}

// Parallelogram resolves the parallelogram family by bounded fixed-point
// inference over its four basis properties.
type Parallelogram struct {
	st parallelogramState
}

// NewParallelogram returns a parallelogram with every property unset.
func NewParallelogram() *Parallelogram { return &Parallelogram{} }

var parallelogramCatalog = []shape.Spec{
	{Key: "base", Name: "Base", Unit: "u", Precision: 4},
	{Key: "side", Name: "Side", Unit: "u", Precision: 4},
	{Key: "height", Name: "Height", Unit: "u", Precision: 4},
	{Key: "angle", Name: "Angle", Unit: "°", Precision: 2},
	{Key: "area", Name: "Area", Unit: "u²", Precision: 4, Readonly: true},
	{Key: "perimeter", Name: "Perimeter", Unit: "u", Precision: 4, Readonly: true},
	{Key: "diagonal_long", Name: "Long diagonal", Unit: "u", Precision: 4, Readonly: true},
	{Key: "diagonal_short", Name: "Short diagonal", Unit: "u", Precision: 4, Readonly: true},
}

func (p *Parallelogram) Kind() shape.Kind      { return shape.KindParallelogram }
func (p *Parallelogram) Catalog() []shape.Spec { return parallelogramCatalog }

func (p *Parallelogram) slot(key string) *shape.Scalar {
	switch key {
	case "base":
		return &p.st.base
	case "side":
		return &p.st.side
	case "height":
		return &p.st.height
	case "angle":
		return &p.st.angle
	case "area":
		return &p.st.area
	case "perimeter":
		return &p.st.perimeter
	case "diagonal_long":
		return &p.st.dLong
	case "diagonal_short":
		return &p.st.dShort
	default:
		return nil
	}
}

func (p *Parallelogram) Value(key string) (float64, bool) { return shape.ValueFunc(p.slot, key) }
func (p *Parallelogram) Clear()                           { shape.ClearSlots(parallelogramCatalog, p.slot) }

func (p *Parallelogram) Restore(snap map[string]float64) error {
	return shape.RestoreSlots(parallelogramCatalog, p.slot, snap)
}

// Resolve stages key=v, runs the bounded fixed-point loop over the
// side/height/angle triple, gates realizability, and commits atomically.
// Complexity: bounded by the basis size (≤ 4 passes).
func (p *Parallelogram) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}

	// Stage onto a candidate copy of the basis.
	cand := p.st
	switch key {
	case "base":
		cand.base = shape.Some(v)
	case "side":
		cand.side = shape.Some(v)
	case "height":
		cand.height = shape.Some(v)
	case "angle":
		if v >= halfTurnDeg {
			return fmt.Errorf("quadri: parallelogram: angle %v outside (0,180): %w", v, shape.ErrInfeasible)
		}
		cand.angle = shape.Some(v)
	default:
		return shape.ErrUnknownKey
	}

	// Fixed-point loop: each pass fixes at most one unknown of the
	// side/height/angle triple, so it terminates within the basis size.
	for pass := 0; pass < len(parallelogramCatalog); pass++ {
		if !inferParallelogram(&cand) {
			break
		}
	}

	if err := gateParallelogram(&cand); err != nil {
		return err
	}

	// Derived group: available once base, side and angle are all known.
	fillParallelogram(&cand)
	p.st = cand

	return nil
}

// inferParallelogram applies the two-of-three rules once; reports
// whether a previously unset value was derived.
func inferParallelogram(st *parallelogramState) bool {
	s, okS := st.side.Get()
	h, okH := st.height.Get()
	a, okA := st.angle.Get()

	switch {
	case okS && okA && !okH:
		st.height.Set(s * math.Sin(a*degToRad))
	case okS && okH && !okA:
		if h > s {
			return false // left for the gate to reject
		}
		st.angle.Set(math.Asin(h/s) / degToRad)
	case okH && okA && !okS:
		st.side.Set(h / math.Sin(a*degToRad))
	default:
		return false
	}

	return true
}

// gateParallelogram rejects unrealizable candidates: side below height,
// and over-determined triples that disagree beyond tolerance.
func gateParallelogram(st *parallelogramState) error {
	s, okS := st.side.Get()
	h, okH := st.height.Get()
	a, okA := st.angle.Get()

	if okS && okH && h > s {
		return fmt.Errorf("quadri: parallelogram: height %v exceeds side %v: %w", h, s, shape.ErrInfeasible)
	}
	if okS && okH && okA && !geom.EqualRel(h, s*math.Sin(a*degToRad), consistencyTol) {
		return fmt.Errorf("quadri: parallelogram: height/side/angle disagree: %w", shape.ErrInfeasible)
	}

	return nil
}

// fillParallelogram populates the derived group when determined. The
// diagonals follow the law of cosines:
//
//	long²  = base² + side² + 2·base·side·cos(angle)
//	short² = base² + side² − 2·base·side·cos(angle)
func fillParallelogram(st *parallelogramState) {
	b, okB := st.base.Get()
	s, okS := st.side.Get()
	h, okH := st.height.Get()
	a, okA := st.angle.Get()

	if okB && okH {
		st.area.Set(b * h)
	}
	if okB && okS {
		st.perimeter.Set(2 * (b + s))
	}
	if okB && okS && okA {
		cos := math.Cos(a * degToRad)
		long := math.Sqrt(b*b + s*s + 2*b*s*cos)
		short := math.Sqrt(b*b + s*s - 2*b*s*cos)
		if short > long {
			long, short = short, long
		}
		st.dLong.Set(long)
		st.dShort.Set(short)
	}
}
