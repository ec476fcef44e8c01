package quadri

import (
	"fmt"
	"math"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// rectangleState is the closed slot set of the rectangle family.
// Basis: width, height. Area, perimeter and diagonal accept inverse
// entry once the other basis dimension is known.
type rectangleState struct {
	width, height   shape.Scalar
	area, perimeter shape.Scalar
	diagonal        shape.Scalar
}

// Rectangle resolves the rectangle family. Unlike the readonly derived
// groups elsewhere in this package, area, perimeter and diagonal are
// editable here: each inverts to the missing dimension when exactly one
// of width/height is set.
type Rectangle struct {
	st rectangleState
}

// NewRectangle returns a rectangle with every property unset.
func NewRectangle() *Rectangle { return &Rectangle{} }

var rectangleCatalog = []shape.Spec{
	{Key: "width", Name: "Width", Unit: "u", Precision: 4},
	{Key: "height", Name: "Height", Unit: "u", Precision: 4},
	{Key: "area", Name: "Area", Unit: "u²", Precision: 4},
	{Key: "perimeter", Name: "Perimeter", Unit: "u", Precision: 4},
	{Key: "diagonal", Name: "Diagonal", Unit: "u", Precision: 4},
}

func (r *Rectangle) Kind() shape.Kind      { return shape.KindRectangle }
func (r *Rectangle) Catalog() []shape.Spec { return rectangleCatalog }

func (r *Rectangle) slot(key string) *shape.Scalar {
	switch key {
	case "width":
		return &r.st.width
	case "height":
		return &r.st.height
	case "area":
		return &r.st.area
	case "perimeter":
		return &r.st.perimeter
	case "diagonal":
		return &r.st.diagonal
	default:
		return nil
	}
}

func (r *Rectangle) Value(key string) (float64, bool) { return shape.ValueFunc(r.slot, key) }
func (r *Rectangle) Clear()                           { shape.ClearSlots(rectangleCatalog, r.slot) }

func (r *Rectangle) Restore(snap map[string]float64) error {
	return shape.RestoreSlots(rectangleCatalog, r.slot, snap)
}

// Resolve stages key=v onto a candidate, inverts aggregates to the
// missing dimension where possible, gates, and commits atomically.
func (r *Rectangle) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}

	cand := r.st
	switch key {
	case "width":
		cand.width = shape.Some(v)
	case "height":
		cand.height = shape.Some(v)
	case "area":
		forward := func(w, h float64) float64 { return w * h }
		if err := rectAggregate(&cand, v, forward, func(known float64) (float64, error) {
			return v / known, nil
		}); err != nil {
			return err
		}
	case "perimeter":
		forward := func(w, h float64) float64 { return 2 * (w + h) }
		if err := rectAggregate(&cand, v, forward, func(known float64) (float64, error) {
			other := v/2 - known
			if other <= 0 {
				return 0, fmt.Errorf("quadri: rectangle: perimeter %v too small for dimension %v: %w", v, known, shape.ErrInfeasible)
			}
			return other, nil
		}); err != nil {
			return err
		}
	case "diagonal":
		if err := rectAggregate(&cand, v, math.Hypot, func(known float64) (float64, error) {
			if v <= known {
				return 0, fmt.Errorf("quadri: rectangle: diagonal %v not above dimension %v: %w", v, known, shape.ErrInfeasible)
			}
			return math.Sqrt(v*v - known*known), nil
		}); err != nil {
			return err
		}
	default:
		return shape.ErrUnknownKey
	}

	fillRectangle(&cand)
	r.st = cand

	return nil
}

// rectAggregate routes an aggregate edit. With a full basis the staged
// value must agree with the forward formula; with exactly one dimension
// known the inverse recovers the other; with nothing known the edit has
// no target yet.
func rectAggregate(st *rectangleState, v float64, forward func(w, h float64) float64, inv func(known float64) (float64, error)) error {
	w, okW := st.width.Get()
	h, okH := st.height.Get()

	switch {
	case okW && okH:
		if !geom.EqualRel(v, forward(w, h), consistencyTol) {
			return fmt.Errorf("quadri: rectangle: aggregate %v disagrees with %vx%v basis: %w", v, w, h, shape.ErrInfeasible)
		}
	case okW:
		other, err := inv(w)
		if err != nil {
			return err
		}
		st.height.Set(other)
	case okH:
		other, err := inv(h)
		if err != nil {
			return err
		}
		st.width.Set(other)
	default:
		return fmt.Errorf("quadri: rectangle: aggregate entry needs width or height: %w", shape.ErrUnsetParameter)
	}

	return nil
}

func fillRectangle(st *rectangleState) {
	w, okW := st.width.Get()
	h, okH := st.height.Get()
	if !okW || !okH {
		return
	}
	st.area.Set(w * h)
	st.perimeter.Set(2 * (w + h))
	st.diagonal.Set(math.Hypot(w, h))
}
