package solid

import (
	"fmt"
	"math"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// AntiprismMetrics is the immutable metric set of a uniform n-gonal
// antiprism with edge a: two parallel regular n-gons rotated by π/n,
// joined by a band of 2n equilateral triangles. Unlike the prism, the
// height is bound to the edge, so the edge is the only canonical
// dimension.
type AntiprismMetrics struct {
	Sides       int
	Edge        float64
	Height      float64
	BaseArea    float64
	LateralArea float64
	SurfaceArea float64
	Volume      float64
}

// NewAntiprismMetrics builds the full metric set from the edge. The
// uniform height is a·√(1 − sec²(π/2n)/4); the volume follows the
// classical closed form n·h·a²·(cot(π/2n)+cot(π/n))/12.
func NewAntiprismMetrics(n int, edge float64) (AntiprismMetrics, error) {
	if n < 3 {
		return AntiprismMetrics{}, fmt.Errorf("solid: antiprism: %d sides below 3", n)
	}
	if !geom.Positive(edge) {
		return AntiprismMetrics{}, ErrDimension
	}
	nf := float64(n)
	sec := 1 / math.Cos(math.Pi/(2*nf))
	height := edge * math.Sqrt(1-sec*sec/4)
	baseArea := nf * edge * edge / (4 * math.Tan(math.Pi/nf))
	lateral := 2 * nf * math.Sqrt(3) / 4 * edge * edge
	cotHalf := 1 / math.Tan(math.Pi/(2*nf))
	cotFull := 1 / math.Tan(math.Pi/nf)
	m := AntiprismMetrics{
		Sides:       n,
		Edge:        edge,
		Height:      height,
		BaseArea:    baseArea,
		LateralArea: lateral,
		SurfaceArea: 2*baseArea + lateral,
		Volume:      nf * height * edge * edge * (cotHalf + cotFull) / 12,
	}
	return m, nil
}

type antiprismState struct {
	a     shape.Scalar
	m     AntiprismMetrics
	built bool
}

// Antiprism is the interactive uniform-antiprism calculator: a
// single-DOF solid, every derived metric inverts straight to the edge.
type Antiprism struct {
	n  int
	st antiprismState
}

// NewAntiprism returns an antiprism calculator over a regular n-gon.
func NewAntiprism(n int) (*Antiprism, error) {
	if n < 3 {
		return nil, fmt.Errorf("solid: antiprism: %d sides below 3: %w", n, shape.ErrInfeasible)
	}
	return &Antiprism{n: n}, nil
}

var antiprismCatalog = []shape.Spec{
	{Key: "edge", Name: "Edge", Unit: "u", Precision: 4},
	{Key: "height", Name: "Height", Unit: "u", Precision: 4},
	{Key: "base_area", Name: "Base area", Unit: "u²", Precision: 4},
	{Key: "lateral_area", Name: "Lateral area", Unit: "u²", Precision: 4},
	{Key: "surface_area", Name: "Surface area", Unit: "u²", Precision: 4},
	{Key: "volume", Name: "Volume", Unit: "u³", Precision: 4},
}

func (a *Antiprism) Kind() shape.Kind      { return shape.KindAntiprism }
func (a *Antiprism) Catalog() []shape.Spec { return antiprismCatalog }

// Sides reports the structural side count.
func (a *Antiprism) Sides() int { return a.n }

// Metrics reports the last built metric set.
func (a *Antiprism) Metrics() (AntiprismMetrics, bool) { return a.st.m, a.st.built }

func (a *Antiprism) Value(key string) (float64, bool) {
	if key == "edge" {
		return a.st.a.Get()
	}
	if !a.st.built {
		return 0, false
	}
	switch key {
	case "height":
		return a.st.m.Height, true
	case "base_area":
		return a.st.m.BaseArea, true
	case "lateral_area":
		return a.st.m.LateralArea, true
	case "surface_area":
		return a.st.m.SurfaceArea, true
	case "volume":
		return a.st.m.Volume, true
	default:
		return 0, false
	}
}

func (a *Antiprism) Clear() { a.st = antiprismState{} }

func (a *Antiprism) Restore(snap map[string]float64) error {
	if err := checkKeys(antiprismCatalog, snap); err != nil {
		return err
	}
	st := antiprismState{}
	if v, ok := snap["edge"]; ok {
		st.a = shape.Some(v)
	}
	if err := rebuildAntiprism(a.n, &st); err != nil {
		return err
	}
	a.st = st
	return nil
}

// Resolve converts key=v into the edge via the single-DOF inverse of
// its closed form, rebuilds the metric set, and commits atomically.
func (a *Antiprism) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}

	// Unit-edge reference metrics carry every coefficient.
	unit, err := NewAntiprismMetrics(a.n, 1)
	if err != nil {
		return err
	}

	cand := a.st
	switch key {
	case "edge":
		cand.a = shape.Some(v)
	case "height":
		cand.a = shape.Some(v / unit.Height)
	case "base_area":
		cand.a = shape.Some(math.Sqrt(v / unit.BaseArea))
	case "lateral_area":
		cand.a = shape.Some(math.Sqrt(v / unit.LateralArea))
	case "surface_area":
		cand.a = shape.Some(math.Sqrt(v / unit.SurfaceArea))
	case "volume":
		cand.a = shape.Some(math.Cbrt(v / unit.Volume))
	default:
		return shape.ErrUnknownKey
	}

	if err := rebuildAntiprism(a.n, &cand); err != nil {
		return err
	}
	a.st = cand

	return nil
}

func rebuildAntiprism(n int, st *antiprismState) error {
	edge, ok := st.a.Get()
	st.built = false
	if !ok {
		return nil
	}
	m, err := NewAntiprismMetrics(n, edge)
	if err != nil {
		return fmt.Errorf("solid: antiprism: %w: %w", err, shape.ErrInfeasible)
	}
	st.m = m
	st.built = true
	return nil
}
