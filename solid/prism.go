package solid

import (
	"fmt"
	"math"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// PrismMetrics is the immutable metric set of a right regular n-gonal
// prism with base edge a and height h.
type PrismMetrics struct {
	Sides       int
	BaseEdge    float64
	Height      float64
	BaseArea    float64
	LateralArea float64
	SurfaceArea float64
	Volume      float64
}

// NewPrismMetrics builds the full metric set from the canonical
// dimensions. The base needs at least three sides.
func NewPrismMetrics(n int, baseEdge, height float64) (PrismMetrics, error) {
	if n < 3 {
		return PrismMetrics{}, fmt.Errorf("solid: prism: %d sides below 3", n)
	}
	if !geom.Positive(baseEdge) || !geom.Positive(height) {
		return PrismMetrics{}, ErrDimension
	}
	baseArea := float64(n) * baseEdge * baseEdge / (4 * math.Tan(math.Pi/float64(n)))
	lateral := float64(n) * baseEdge * height
	m := PrismMetrics{
		Sides:       n,
		BaseEdge:    baseEdge,
		Height:      height,
		BaseArea:    baseArea,
		LateralArea: lateral,
		SurfaceArea: 2*baseArea + lateral,
		Volume:      baseArea * height,
	}
	return m, nil
}

type prismState struct {
	a, h  shape.Scalar
	m     PrismMetrics
	built bool
}

// Prism is the interactive regular-prism calculator; the side count is
// structural, fixed at construction like the planar regular polygon.
type Prism struct {
	n  int
	st prismState
}

// NewPrism returns a prism calculator over a regular n-gon base.
func NewPrism(n int) (*Prism, error) {
	if n < 3 {
		return nil, fmt.Errorf("solid: prism: %d sides below 3: %w", n, shape.ErrInfeasible)
	}
	return &Prism{n: n}, nil
}

var prismCatalog = []shape.Spec{
	{Key: "base_edge", Name: "Base edge", Unit: "u", Precision: 4},
	{Key: "height", Name: "Height", Unit: "u", Precision: 4},
	{Key: "base_area", Name: "Base area", Unit: "u²", Precision: 4},
	{Key: "lateral_area", Name: "Lateral area", Unit: "u²", Precision: 4},
	{Key: "surface_area", Name: "Surface area", Unit: "u²", Precision: 4, Readonly: true},
	{Key: "volume", Name: "Volume", Unit: "u³", Precision: 4},
}

func (p *Prism) Kind() shape.Kind      { return shape.KindPrism }
func (p *Prism) Catalog() []shape.Spec { return prismCatalog }

// Sides reports the structural side count.
func (p *Prism) Sides() int { return p.n }

// Metrics reports the last built metric set.
func (p *Prism) Metrics() (PrismMetrics, bool) { return p.st.m, p.st.built }

func (p *Prism) Value(key string) (float64, bool) {
	switch key {
	case "base_edge":
		return p.st.a.Get()
	case "height":
		return p.st.h.Get()
	}
	if !p.st.built {
		return 0, false
	}
	switch key {
	case "base_area":
		return p.st.m.BaseArea, true
	case "lateral_area":
		return p.st.m.LateralArea, true
	case "surface_area":
		return p.st.m.SurfaceArea, true
	case "volume":
		return p.st.m.Volume, true
	default:
		return 0, false
	}
}

func (p *Prism) Clear() { p.st = prismState{} }

func (p *Prism) Restore(snap map[string]float64) error {
	if err := checkKeys(prismCatalog, snap); err != nil {
		return err
	}
	st := prismState{}
	if v, ok := snap["base_edge"]; ok {
		st.a = shape.Some(v)
	}
	if v, ok := snap["height"]; ok {
		st.h = shape.Some(v)
	}
	if err := rebuildPrism(p.n, &st); err != nil {
		return err
	}
	p.st = st
	return nil
}

// Resolve stages key=v — base area inverts straight to the edge, the
// other derived metrics invert to the missing dimension — rebuilds, and
// commits atomically.
func (p *Prism) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}

	cand := p.st
	a, okA := cand.a.Get()
	h, okH := cand.h.Get()
	// Regular-polygon area coefficient: A = coeff·a².
	coeff := float64(p.n) / (4 * math.Tan(math.Pi/float64(p.n)))

	switch key {
	case "base_edge":
		cand.a = shape.Some(v)
	case "height":
		cand.h = shape.Some(v)
	case "base_area":
		cand.a = shape.Some(math.Sqrt(v / coeff))
	case "lateral_area":
		switch {
		case okA && okH:
			if !geom.EqualRel(v, float64(p.n)*a*h, consistencyTol) {
				return overDetermined("prism", key, v)
			}
		case okA:
			cand.h = shape.Some(v / (float64(p.n) * a))
		case okH:
			cand.a = shape.Some(v / (float64(p.n) * h))
		default:
			return needDimension("prism", key)
		}
	case "volume":
		switch {
		case okA && okH:
			if !geom.EqualRel(v, coeff*a*a*h, consistencyTol) {
				return overDetermined("prism", key, v)
			}
		case okA:
			cand.h = shape.Some(v / (coeff * a * a))
		case okH:
			cand.a = shape.Some(math.Sqrt(v / (coeff * h)))
		default:
			return needDimension("prism", key)
		}
	default:
		return shape.ErrUnknownKey
	}

	if err := rebuildPrism(p.n, &cand); err != nil {
		return err
	}
	p.st = cand

	return nil
}

func rebuildPrism(n int, st *prismState) error {
	a, okA := st.a.Get()
	h, okH := st.h.Get()
	st.built = false
	if !okA || !okH {
		return nil
	}
	m, err := NewPrismMetrics(n, a, h)
	if err != nil {
		return fmt.Errorf("solid: prism: %w: %w", err, shape.ErrInfeasible)
	}
	st.m = m
	st.built = true
	return nil
}
