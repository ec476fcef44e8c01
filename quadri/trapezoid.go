package quadri

import (
	"fmt"
	"math"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// trapezoidState is the closed slot set of the general trapezoid family.
// Basis: the four sides (base_long, base_short, leg_left, leg_right),
// optionally cross-checked against a staged height.
type trapezoidState struct {
	baseLong, baseShort shape.Scalar
	legLeft, legRight   shape.Scalar
	height              shape.Scalar
	area, perimeter     shape.Scalar
	midsegment          shape.Scalar
}

// Trapezoid resolves the general trapezoid family from its four sides.
// The height is derived by placing the long base on the x-axis and
// solving the offset of the short base from the two leg constraints.
type Trapezoid struct {
	st trapezoidState
}

// NewTrapezoid returns a trapezoid with every property unset.
func NewTrapezoid() *Trapezoid { return &Trapezoid{} }

var trapezoidCatalog = []shape.Spec{
	{Key: "base_long", Name: "Long base", Unit: "u", Precision: 4},
	{Key: "base_short", Name: "Short base", Unit: "u", Precision: 4},
	{Key: "leg_left", Name: "Left leg", Unit: "u", Precision: 4},
	{Key: "leg_right", Name: "Right leg", Unit: "u", Precision: 4},
	{Key: "height", Name: "Height", Unit: "u", Precision: 4},
	{Key: "area", Name: "Area", Unit: "u²", Precision: 4, Readonly: true},
	{Key: "perimeter", Name: "Perimeter", Unit: "u", Precision: 4, Readonly: true},
	{Key: "midsegment", Name: "Midsegment", Unit: "u", Precision: 4, Readonly: true},
}

func (t *Trapezoid) Kind() shape.Kind      { return shape.KindTrapezoid }
func (t *Trapezoid) Catalog() []shape.Spec { return trapezoidCatalog }

func (t *Trapezoid) slot(key string) *shape.Scalar {
	switch key {
	case "base_long":
		return &t.st.baseLong
	case "base_short":
		return &t.st.baseShort
	case "leg_left":
		return &t.st.legLeft
	case "leg_right":
		return &t.st.legRight
	case "height":
		return &t.st.height
	case "area":
		return &t.st.area
	case "perimeter":
		return &t.st.perimeter
	case "midsegment":
		return &t.st.midsegment
	default:
		return nil
	}
}

func (t *Trapezoid) Value(key string) (float64, bool) { return shape.ValueFunc(t.slot, key) }
func (t *Trapezoid) Clear()                           { shape.ClearSlots(trapezoidCatalog, t.slot) }

func (t *Trapezoid) Restore(snap map[string]float64) error {
	return shape.RestoreSlots(trapezoidCatalog, t.slot, snap)
}

// Resolve stages key=v, solves the height from the four-side closure,
// gates realizability, and commits atomically.
func (t *Trapezoid) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}

	cand := t.st
	switch key {
	case "base_long":
		cand.baseLong = shape.Some(v)
	case "base_short":
		cand.baseShort = shape.Some(v)
	case "leg_left":
		cand.legLeft = shape.Some(v)
	case "leg_right":
		cand.legRight = shape.Some(v)
	case "height":
		cand.height = shape.Some(v)
	default:
		return shape.ErrUnknownKey
	}

	if err := closeTrapezoid(&cand); err != nil {
		return err
	}
	t.st = cand

	return nil
}

// closeTrapezoid derives the height from the four sides when all are
// known, validates the closure, then populates the derived group.
//
// With the long base a on the x-axis and the short base b at height h
// shifted by x, the legs c (left) and d (right) pin the offset:
//
//	x = ((a−b)² + c² − d²) / (2·(a−b))
//	h = √(c² − x²)
func closeTrapezoid(st *trapezoidState) error {
	a, okA := st.baseLong.Get()
	b, okB := st.baseShort.Get()
	c, okC := st.legLeft.Get()
	d, okD := st.legRight.Get()

	if okA && okB && b >= a {
		return fmt.Errorf("quadri: trapezoid: short base %v not below long base %v: %w", b, a, shape.ErrInfeasible)
	}

	if okA && okB && okC && okD {
		run := a - b
		x := (run*run + c*c - d*d) / (2 * run)
		hh := c*c - x*x
		if hh <= 0 {
			return fmt.Errorf("quadri: trapezoid: sides %v,%v,%v,%v do not close: %w", a, b, c, d, shape.ErrInfeasible)
		}
		h := math.Sqrt(hh)
		if staged, ok := st.height.Get(); ok && !geom.EqualRel(staged, h, consistencyTol) {
			return fmt.Errorf("quadri: trapezoid: staged height %v disagrees with derived %v: %w", staged, h, shape.ErrInfeasible)
		}
		st.height.Set(h)
	}

	if h, ok := st.height.Get(); ok && okA && okB {
		st.area.Set((a + b) / 2 * h)
	}
	if okA && okB {
		st.midsegment.Set((a + b) / 2)
	}
	if okA && okB && okC && okD {
		st.perimeter.Set(a + b + c + d)
	}

	return nil
}
