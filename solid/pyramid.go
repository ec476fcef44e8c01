package solid

import (
	"fmt"
	"math"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// PyramidMetrics is the immutable metric set of a right square pyramid
// with base edge a and apex height h.
type PyramidMetrics struct {
	BaseEdge    float64
	Height      float64
	SlantHeight float64 // apex to base-edge midpoint
	LateralEdge float64 // apex to base corner
	BaseArea    float64
	LateralArea float64
	SurfaceArea float64
	Volume      float64
}

// NewPyramidMetrics builds the full metric set from the canonical
// dimensions. Non-positive input is a programmer error at this level.
func NewPyramidMetrics(baseEdge, height float64) (PyramidMetrics, error) {
	if !geom.Positive(baseEdge) || !geom.Positive(height) {
		return PyramidMetrics{}, ErrDimension
	}
	slant := math.Hypot(height, baseEdge/2)
	m := PyramidMetrics{
		BaseEdge:    baseEdge,
		Height:      height,
		SlantHeight: slant,
		LateralEdge: math.Sqrt(height*height + baseEdge*baseEdge/2),
		BaseArea:    baseEdge * baseEdge,
		LateralArea: 2 * baseEdge * slant,
		SurfaceArea: baseEdge*baseEdge + 2*baseEdge*slant,
		Volume:      baseEdge * baseEdge * height / 3,
	}
	return m, nil
}

// pyramidState holds the canonical dimensions plus the last built
// metric set.
type pyramidState struct {
	a, h  shape.Scalar
	m     PyramidMetrics
	built bool
}

// Pyramid is the interactive square-pyramid calculator. Derived keys
// accept inverse entry: the staged metric is algebraically inverted to
// the missing canonical dimension and the whole metric set is rebuilt.
type Pyramid struct {
	st pyramidState
}

// NewPyramid returns a pyramid calculator with both dimensions unset.
func NewPyramid() *Pyramid { return &Pyramid{} }

var pyramidCatalog = []shape.Spec{
	{Key: "base_edge", Name: "Base edge", Unit: "u", Precision: 4},
	{Key: "height", Name: "Height", Unit: "u", Precision: 4},
	{Key: "slant_height", Name: "Slant height", Unit: "u", Precision: 4},
	{Key: "lateral_edge", Name: "Lateral edge", Unit: "u", Precision: 4},
	{Key: "base_area", Name: "Base area", Unit: "u²", Precision: 4},
	{Key: "lateral_area", Name: "Lateral area", Unit: "u²", Precision: 4},
	{Key: "surface_area", Name: "Surface area", Unit: "u²", Precision: 4},
	{Key: "volume", Name: "Volume", Unit: "u³", Precision: 4},
}

func (p *Pyramid) Kind() shape.Kind      { return shape.KindPyramid }
func (p *Pyramid) Catalog() []shape.Spec { return pyramidCatalog }

// Metrics reports the last built metric set.
func (p *Pyramid) Metrics() (PyramidMetrics, bool) { return p.st.m, p.st.built }

func (p *Pyramid) Value(key string) (float64, bool) {
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
	case "slant_height":
		return p.st.m.SlantHeight, true
	case "lateral_edge":
		return p.st.m.LateralEdge, true
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

func (p *Pyramid) Clear() { p.st = pyramidState{} }

func (p *Pyramid) Restore(snap map[string]float64) error {
	if err := checkKeys(pyramidCatalog, snap); err != nil {
		return err
	}
	st := pyramidState{}
	if v, ok := snap["base_edge"]; ok {
		st.a = shape.Some(v)
	}
	if v, ok := snap["height"]; ok {
		st.h = shape.Some(v)
	}
	if err := rebuildPyramid(&st); err != nil {
		return err
	}
	p.st = st
	return nil
}

// Resolve stages key=v — directly for a canonical dimension, through
// its algebraic inverse for a derived metric — then rebuilds the whole
// metric set and commits atomically.
func (p *Pyramid) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}

	cand := p.st
	a, okA := cand.a.Get()
	h, okH := cand.h.Get()

	switch key {
	case "base_edge":
		cand.a = shape.Some(v)
	case "height":
		cand.h = shape.Some(v)
	case "base_area":
		cand.a = shape.Some(math.Sqrt(v))
	case "slant_height":
		switch {
		case okA && okH:
			if !geom.EqualRel(v, math.Hypot(h, a/2), consistencyTol) {
				return overDetermined("pyramid", key, v)
			}
		case okA:
			if v <= a/2 {
				return outOfDomain("pyramid", key, v)
			}
			cand.h = shape.Some(math.Sqrt(v*v - a*a/4))
		case okH:
			if v <= h {
				return outOfDomain("pyramid", key, v)
			}
			cand.a = shape.Some(2 * math.Sqrt(v*v-h*h))
		default:
			return needDimension("pyramid", key)
		}
	case "lateral_edge":
		switch {
		case okA && okH:
			if !geom.EqualRel(v, math.Sqrt(h*h+a*a/2), consistencyTol) {
				return overDetermined("pyramid", key, v)
			}
		case okA:
			if v*v <= a*a/2 {
				return outOfDomain("pyramid", key, v)
			}
			cand.h = shape.Some(math.Sqrt(v*v - a*a/2))
		case okH:
			if v <= h {
				return outOfDomain("pyramid", key, v)
			}
			cand.a = shape.Some(math.Sqrt(2 * (v*v - h*h)))
		default:
			return needDimension("pyramid", key)
		}
	case "lateral_area":
		switch {
		case okA && okH:
			if !geom.EqualRel(v, 2*a*math.Hypot(h, a/2), consistencyTol) {
				return overDetermined("pyramid", key, v)
			}
		case okA:
			slant := v / (2 * a)
			if slant <= a/2 {
				return outOfDomain("pyramid", key, v)
			}
			cand.h = shape.Some(math.Sqrt(slant*slant - a*a/4))
		case okH:
			// 4·a²·(h² + a²/4) = v² is a quadratic in a².
			aSq := math.Sqrt(4*h*h*h*h+v*v) - 2*h*h
			cand.a = shape.Some(math.Sqrt(aSq))
		default:
			return needDimension("pyramid", key)
		}
	case "surface_area":
		switch {
		case okA && okH:
			if !geom.EqualRel(v, a*a+2*a*math.Hypot(h, a/2), consistencyTol) {
				return overDetermined("pyramid", key, v)
			}
		case okA:
			if v <= a*a {
				return outOfDomain("pyramid", key, v)
			}
			slant := (v - a*a) / (2 * a)
			if slant <= a/2 {
				return outOfDomain("pyramid", key, v)
			}
			cand.h = shape.Some(math.Sqrt(slant*slant - a*a/4))
		default:
			return needDimension("pyramid", key)
		}
	case "volume":
		switch {
		case okA && okH:
			if !geom.EqualRel(v, a*a*h/3, consistencyTol) {
				return overDetermined("pyramid", key, v)
			}
		case okA:
			cand.h = shape.Some(3 * v / (a * a))
		case okH:
			cand.a = shape.Some(math.Sqrt(3 * v / h))
		default:
			return needDimension("pyramid", key)
		}
	default:
		return shape.ErrUnknownKey
	}

	if err := rebuildPyramid(&cand); err != nil {
		return err
	}
	p.st = cand

	return nil
}

func rebuildPyramid(st *pyramidState) error {
	a, okA := st.a.Get()
	h, okH := st.h.Get()
	st.built = false
	if !okA || !okH {
		return nil
	}
	m, err := NewPyramidMetrics(a, h)
	if err != nil {
		return fmt.Errorf("solid: pyramid: %w: %w", err, shape.ErrInfeasible)
	}
	st.m = m
	st.built = true
	return nil
}

// Error helpers shared by the calculators.

func overDetermined(family, key string, v float64) error {
	return fmt.Errorf("solid: %s: %s %v disagrees with the solved dimensions: %w", family, key, v, shape.ErrInfeasible)
}

func outOfDomain(family, key string, v float64) error {
	return fmt.Errorf("solid: %s: %s %v has no real inverse: %w", family, key, v, shape.ErrInfeasible)
}

func needDimension(family, key string) error {
	return fmt.Errorf("solid: %s: %s entry needs a canonical dimension: %w", family, key, shape.ErrUnsetParameter)
}
