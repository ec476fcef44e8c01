package solid

import (
	"fmt"
	"math"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// FrustumMetrics is the immutable metric set of a right square frustum
// with base edge a, top edge b < a and height h.
type FrustumMetrics struct {
	BaseEdge    float64
	TopEdge     float64
	Height      float64
	SlantHeight float64
	BaseArea    float64
	TopArea     float64
	LateralArea float64
	SurfaceArea float64
	Volume      float64
}

// NewFrustumMetrics builds the full metric set from the canonical
// dimensions. The top edge must be strictly below the base edge; a
// degenerate frustum is a pyramid or a prism, not a frustum.
func NewFrustumMetrics(baseEdge, topEdge, height float64) (FrustumMetrics, error) {
	if !geom.Positive(baseEdge) || !geom.Positive(topEdge) || !geom.Positive(height) {
		return FrustumMetrics{}, ErrDimension
	}
	if topEdge >= baseEdge {
		return FrustumMetrics{}, fmt.Errorf("solid: frustum: top edge %v not below base edge %v", topEdge, baseEdge)
	}
	slant := math.Hypot(height, (baseEdge-topEdge)/2)
	baseArea := baseEdge * baseEdge
	topArea := topEdge * topEdge
	lateral := 2 * (baseEdge + topEdge) * slant
	m := FrustumMetrics{
		BaseEdge:    baseEdge,
		TopEdge:     topEdge,
		Height:      height,
		SlantHeight: slant,
		BaseArea:    baseArea,
		TopArea:     topArea,
		LateralArea: lateral,
		SurfaceArea: baseArea + topArea + lateral,
		Volume:      height / 3 * (baseArea + topArea + math.Sqrt(baseArea*topArea)),
	}
	return m, nil
}

type frustumState struct {
	a, b, h shape.Scalar
	m       FrustumMetrics
	built   bool
}

// Frustum is the interactive square-frustum calculator. Volume, slant
// height and lateral area invert to the height once both edges are
// known; the area keys invert straight to their edge.
type Frustum struct {
	st frustumState
}

// NewFrustum returns a frustum calculator with all dimensions unset.
func NewFrustum() *Frustum { return &Frustum{} }

var frustumCatalog = []shape.Spec{
	{Key: "base_edge", Name: "Base edge", Unit: "u", Precision: 4},
	{Key: "top_edge", Name: "Top edge", Unit: "u", Precision: 4},
	{Key: "height", Name: "Height", Unit: "u", Precision: 4},
	{Key: "slant_height", Name: "Slant height", Unit: "u", Precision: 4},
	{Key: "base_area", Name: "Base area", Unit: "u²", Precision: 4},
	{Key: "top_area", Name: "Top area", Unit: "u²", Precision: 4},
	{Key: "lateral_area", Name: "Lateral area", Unit: "u²", Precision: 4},
	{Key: "surface_area", Name: "Surface area", Unit: "u²", Precision: 4, Readonly: true},
	{Key: "volume", Name: "Volume", Unit: "u³", Precision: 4},
}

func (f *Frustum) Kind() shape.Kind      { return shape.KindFrustum }
func (f *Frustum) Catalog() []shape.Spec { return frustumCatalog }

// Metrics reports the last built metric set.
func (f *Frustum) Metrics() (FrustumMetrics, bool) { return f.st.m, f.st.built }

func (f *Frustum) Value(key string) (float64, bool) {
	switch key {
	case "base_edge":
		return f.st.a.Get()
	case "top_edge":
		return f.st.b.Get()
	case "height":
		return f.st.h.Get()
	}
	if !f.st.built {
		return 0, false
	}
	switch key {
	case "slant_height":
		return f.st.m.SlantHeight, true
	case "base_area":
		return f.st.m.BaseArea, true
	case "top_area":
		return f.st.m.TopArea, true
	case "lateral_area":
		return f.st.m.LateralArea, true
	case "surface_area":
		return f.st.m.SurfaceArea, true
	case "volume":
		return f.st.m.Volume, true
	default:
		return 0, false
	}
}

func (f *Frustum) Clear() { f.st = frustumState{} }

func (f *Frustum) Restore(snap map[string]float64) error {
	if err := checkKeys(frustumCatalog, snap); err != nil {
		return err
	}
	st := frustumState{}
	if v, ok := snap["base_edge"]; ok {
		st.a = shape.Some(v)
	}
	if v, ok := snap["top_edge"]; ok {
		st.b = shape.Some(v)
	}
	if v, ok := snap["height"]; ok {
		st.h = shape.Some(v)
	}
	if err := rebuildFrustum(&st); err != nil {
		return err
	}
	f.st = st
	return nil
}

// Resolve stages key=v, inverts derived metrics to the height when both
// edges are known, rebuilds the metric set, and commits atomically.
func (f *Frustum) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}

	cand := f.st
	a, okA := cand.a.Get()
	b, okB := cand.b.Get()
	h, okH := cand.h.Get()
	run := (a - b) / 2 // meaningful only when both edges are known

	switch key {
	case "base_edge":
		cand.a = shape.Some(v)
	case "top_edge":
		cand.b = shape.Some(v)
	case "height":
		cand.h = shape.Some(v)
	case "base_area":
		cand.a = shape.Some(math.Sqrt(v))
	case "top_area":
		cand.b = shape.Some(math.Sqrt(v))
	case "slant_height":
		if !okA || !okB {
			return needDimension("frustum", key)
		}
		switch {
		case okH:
			if !geom.EqualRel(v, math.Hypot(h, run), consistencyTol) {
				return overDetermined("frustum", key, v)
			}
		case v <= run:
			return outOfDomain("frustum", key, v)
		default:
			cand.h = shape.Some(math.Sqrt(v*v - run*run))
		}
	case "lateral_area":
		if !okA || !okB {
			return needDimension("frustum", key)
		}
		slant := v / (2 * (a + b))
		switch {
		case okH:
			if !geom.EqualRel(v, 2*(a+b)*math.Hypot(h, run), consistencyTol) {
				return overDetermined("frustum", key, v)
			}
		case slant <= run:
			return outOfDomain("frustum", key, v)
		default:
			cand.h = shape.Some(math.Sqrt(slant*slant - run*run))
		}
	case "volume":
		if !okA || !okB {
			return needDimension("frustum", key)
		}
		denom := (a*a + b*b + a*b) / 3
		switch {
		case okH:
			if !geom.EqualRel(v, h*denom, consistencyTol) {
				return overDetermined("frustum", key, v)
			}
		default:
			cand.h = shape.Some(v / denom)
		}
	default:
		return shape.ErrUnknownKey
	}

	if err := rebuildFrustum(&cand); err != nil {
		return err
	}
	f.st = cand

	return nil
}

func rebuildFrustum(st *frustumState) error {
	a, okA := st.a.Get()
	b, okB := st.b.Get()
	st.built = false
	if okA && okB && b >= a {
		return fmt.Errorf("solid: frustum: top edge %v not below base edge %v: %w", b, a, shape.ErrInfeasible)
	}
	h, okH := st.h.Get()
	if !okA || !okB || !okH {
		return nil
	}
	m, err := NewFrustumMetrics(a, b, h)
	if err != nil {
		return fmt.Errorf("solid: frustum: %w: %w", err, shape.ErrInfeasible)
	}
	st.m = m
	st.built = true
	return nil
}
