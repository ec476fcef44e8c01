package solid

import (
	"fmt"
	"math"
	"sort"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// uniformSpec is one row of the uniform-solid catalog: exact unit-edge
// coefficients and the fixed V/E/F counts of the solid class.
type uniformSpec struct {
	name        string
	vertices    int
	edges       int
	faces       int
	areaCoeff   float64 // surface area = areaCoeff·a²
	volumeCoeff float64 // volume = volumeCoeff·a³
	circumCoeff float64 // circumradius = circumCoeff·a
}

// sqrt5 recurs through the dodecahedral family coefficients.
var sqrt5 = math.Sqrt(5)

// uniformCatalogTable is the single source of truth for the solid
// classes: the Platonic five plus the quasiregular/truncated
// Archimedean subset the calculator exposes. Coefficients are exact
// closed forms evaluated once.
var uniformCatalogTable = map[string]uniformSpec{
	"tetrahedron": {
		name: "tetrahedron", vertices: 4, edges: 6, faces: 4,
		areaCoeff:   math.Sqrt(3),
		volumeCoeff: 1 / (6 * math.Sqrt2),
		circumCoeff: math.Sqrt(6) / 4,
	},
	"cube": {
		name: "cube", vertices: 8, edges: 12, faces: 6,
		areaCoeff:   6,
		volumeCoeff: 1,
		circumCoeff: math.Sqrt(3) / 2,
	},
	"octahedron": {
		name: "octahedron", vertices: 6, edges: 12, faces: 8,
		areaCoeff:   2 * math.Sqrt(3),
		volumeCoeff: math.Sqrt2 / 3,
		circumCoeff: 1 / math.Sqrt2,
	},
	"dodecahedron": {
		name: "dodecahedron", vertices: 20, edges: 30, faces: 12,
		areaCoeff:   3 * math.Sqrt(25+10*sqrt5),
		volumeCoeff: (15 + 7*sqrt5) / 4,
		circumCoeff: math.Sqrt(3) / 4 * (1 + sqrt5),
	},
	"icosahedron": {
		name: "icosahedron", vertices: 12, edges: 30, faces: 20,
		areaCoeff:   5 * math.Sqrt(3),
		volumeCoeff: 5 * (3 + sqrt5) / 12,
		circumCoeff: math.Sqrt(10+2*sqrt5) / 4,
	},
	"cuboctahedron": {
		name: "cuboctahedron", vertices: 12, edges: 24, faces: 14,
		areaCoeff:   6 + 2*math.Sqrt(3),
		volumeCoeff: 5 * math.Sqrt2 / 3,
		circumCoeff: 1,
	},
	"truncated_tetrahedron": {
		name: "truncated_tetrahedron", vertices: 12, edges: 18, faces: 8,
		areaCoeff:   7 * math.Sqrt(3),
		volumeCoeff: 23 * math.Sqrt2 / 12,
		circumCoeff: math.Sqrt(22) / 4,
	},
	"truncated_cube": {
		name: "truncated_cube", vertices: 24, edges: 36, faces: 14,
		areaCoeff:   2 * (6 + 6*math.Sqrt2 + math.Sqrt(3)),
		volumeCoeff: (21 + 14*math.Sqrt2) / 3,
		circumCoeff: math.Sqrt(7+4*math.Sqrt2) / 2,
	},
	"truncated_octahedron": {
		name: "truncated_octahedron", vertices: 24, edges: 36, faces: 14,
		areaCoeff:   6 + 12*math.Sqrt(3),
		volumeCoeff: 8 * math.Sqrt2,
		circumCoeff: math.Sqrt(10) / 2,
	},
	"icosidodecahedron": {
		name: "icosidodecahedron", vertices: 30, edges: 60, faces: 32,
		areaCoeff:   5*math.Sqrt(3) + 3*math.Sqrt(25+10*sqrt5),
		volumeCoeff: (45 + 17*sqrt5) / 6,
		circumCoeff: (1 + sqrt5) / 2,
	},
}

// UniformNames lists the catalog in stable sorted order.
func UniformNames() []string {
	names := make([]string, 0, len(uniformCatalogTable))
	for name := range uniformCatalogTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UniformMetrics is the immutable metric set of a catalog solid at a
// given edge length.
type UniformMetrics struct {
	Name         string
	Edge         float64
	SurfaceArea  float64
	Volume       float64
	Circumradius float64
}

// NewUniformMetrics builds the metric set for a named catalog solid.
func NewUniformMetrics(name string, edge float64) (UniformMetrics, error) {
	spec, ok := uniformCatalogTable[name]
	if !ok {
		return UniformMetrics{}, fmt.Errorf("solid: uniform: no %q in the catalog", name)
	}
	if !geom.Positive(edge) {
		return UniformMetrics{}, ErrDimension
	}
	m := UniformMetrics{
		Name:         name,
		Edge:         edge,
		SurfaceArea:  spec.areaCoeff * edge * edge,
		Volume:       spec.volumeCoeff * edge * edge * edge,
		Circumradius: spec.circumCoeff * edge,
	}
	return m, nil
}

type uniformState struct {
	a     shape.Scalar
	m     UniformMetrics
	built bool
}

// Uniform is the interactive calculator over one catalog solid. It is
// single-DOF: surface area and volume invert uniformly as
// a = √(A/cₐ) and a = ∛(V/cᵥ).
type Uniform struct {
	spec uniformSpec
	st   uniformState
}

// NewUniform returns a calculator for the named catalog solid.
func NewUniform(name string) (*Uniform, error) {
	spec, ok := uniformCatalogTable[name]
	if !ok {
		return nil, fmt.Errorf("solid: uniform: no %q in the catalog: %w", name, shape.ErrUnknownKey)
	}
	return &Uniform{spec: spec}, nil
}

var uniformCatalog = []shape.Spec{
	{Key: "edge", Name: "Edge", Unit: "u", Precision: 4},
	{Key: "surface_area", Name: "Surface area", Unit: "u²", Precision: 4},
	{Key: "volume", Name: "Volume", Unit: "u³", Precision: 4},
	{Key: "circumradius", Name: "Circumradius", Unit: "u", Precision: 4},
}

func (u *Uniform) Kind() shape.Kind      { return shape.KindUniformSolid }
func (u *Uniform) Catalog() []shape.Spec { return uniformCatalog }

// Name reports the catalog solid this calculator is bound to.
func (u *Uniform) Name() string { return u.spec.name }

// Counts reports the fixed vertex/edge/face counts of the solid class.
func (u *Uniform) Counts() (vertices, edges, faces int) {
	return u.spec.vertices, u.spec.edges, u.spec.faces
}

// Metrics reports the last built metric set.
func (u *Uniform) Metrics() (UniformMetrics, bool) { return u.st.m, u.st.built }

func (u *Uniform) Value(key string) (float64, bool) {
	if key == "edge" {
		return u.st.a.Get()
	}
	if !u.st.built {
		return 0, false
	}
	switch key {
	case "surface_area":
		return u.st.m.SurfaceArea, true
	case "volume":
		return u.st.m.Volume, true
	case "circumradius":
		return u.st.m.Circumradius, true
	default:
		return 0, false
	}
}

func (u *Uniform) Clear() { u.st = uniformState{} }

func (u *Uniform) Restore(snap map[string]float64) error {
	if err := checkKeys(uniformCatalog, snap); err != nil {
		return err
	}
	st := uniformState{}
	if v, ok := snap["edge"]; ok {
		st.a = shape.Some(v)
	}
	if err := rebuildUniform(u.spec.name, &st); err != nil {
		return err
	}
	u.st = st
	return nil
}

// Resolve converts key=v into the edge via the uniform inverse,
// rebuilds the metric set, and commits atomically.
func (u *Uniform) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}

	cand := u.st
	switch key {
	case "edge":
		cand.a = shape.Some(v)
	case "surface_area":
		cand.a = shape.Some(math.Sqrt(v / u.spec.areaCoeff))
	case "volume":
		cand.a = shape.Some(math.Cbrt(v / u.spec.volumeCoeff))
	case "circumradius":
		cand.a = shape.Some(v / u.spec.circumCoeff)
	default:
		return shape.ErrUnknownKey
	}

	if err := rebuildUniform(u.spec.name, &cand); err != nil {
		return err
	}
	u.st = cand

	return nil
}

func rebuildUniform(name string, st *uniformState) error {
	edge, ok := st.a.Get()
	st.built = false
	if !ok {
		return nil
	}
	m, err := NewUniformMetrics(name, edge)
	if err != nil {
		return fmt.Errorf("solid: uniform: %w: %w", err, shape.ErrInfeasible)
	}
	st.m = m
	st.built = true
	return nil
}
