package quadri

import (
	"fmt"
	"math"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// byDiagState is the closed slot set of the general quadrilateral given
// by its diagonals and the angle between them.
type byDiagState struct {
	diagP, diagQ shape.Scalar
	angle        shape.Scalar // in degrees, between the diagonals
	area         shape.Scalar
}

// ByDiagonals resolves the general quadrilateral family whose only
// metric handle is area = ½·p·q·sin(angle).
type ByDiagonals struct {
	st byDiagState
}

// NewByDiagonals returns a diagonal-specified quadrilateral with every
// property unset.
func NewByDiagonals() *ByDiagonals { return &ByDiagonals{} }

var byDiagCatalog = []shape.Spec{
	{Key: "diagonal_p", Name: "Diagonal p", Unit: "u", Precision: 4},
	{Key: "diagonal_q", Name: "Diagonal q", Unit: "u", Precision: 4},
	{Key: "angle", Name: "Diagonal angle", Unit: "°", Precision: 2},
	{Key: "area", Name: "Area", Unit: "u²", Precision: 4, Readonly: true},
}

func (b *ByDiagonals) Kind() shape.Kind      { return shape.KindDiagonalQuadrilateral }
func (b *ByDiagonals) Catalog() []shape.Spec { return byDiagCatalog }

func (b *ByDiagonals) slot(key string) *shape.Scalar {
	switch key {
	case "diagonal_p":
		return &b.st.diagP
	case "diagonal_q":
		return &b.st.diagQ
	case "angle":
		return &b.st.angle
	case "area":
		return &b.st.area
	default:
		return nil
	}
}

func (b *ByDiagonals) Value(key string) (float64, bool) { return shape.ValueFunc(b.slot, key) }
func (b *ByDiagonals) Clear()                           { shape.ClearSlots(byDiagCatalog, b.slot) }

func (b *ByDiagonals) Restore(snap map[string]float64) error {
	return shape.RestoreSlots(byDiagCatalog, b.slot, snap)
}

// Resolve stages key=v, gates the diagonal angle into (0°, 180°), and
// commits atomically.
func (b *ByDiagonals) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}

	cand := b.st
	switch key {
	case "diagonal_p":
		cand.diagP = shape.Some(v)
	case "diagonal_q":
		cand.diagQ = shape.Some(v)
	case "angle":
		if v >= halfTurnDeg {
			return fmt.Errorf("quadri: by-diagonals: angle %v outside (0,180): %w", v, shape.ErrInfeasible)
		}
		cand.angle = shape.Some(v)
	default:
		return shape.ErrUnknownKey
	}

	p, okP := cand.diagP.Get()
	q, okQ := cand.diagQ.Get()
	a, okA := cand.angle.Get()
	if okP && okQ && okA {
		cand.area.Set(p * q * math.Sin(a*degToRad) / 2)
	}
	b.st = cand

	return nil
}
