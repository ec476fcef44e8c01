package solid

import (
	"fmt"
	"math"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// Tesseract cell/face/edge/vertex counts; fixed for the 4-cube.
const (
	TesseractCells    = 8
	TesseractFaces    = 24
	TesseractEdges    = 32
	TesseractVertices = 16
)

// TesseractMetrics is the immutable metric set of a 4-cube with edge a.
type TesseractMetrics struct {
	Edge          float64
	FaceDiagonal  float64 // a·√2
	CellDiagonal  float64 // a·√3
	HyperDiagonal float64 // 2a, the 4-space diagonal
	FaceArea      float64 // 24 square faces
	SurfaceVolume float64 // 8 cubic cells
	HyperVolume   float64
}

// NewTesseractMetrics builds the full metric set from the edge.
func NewTesseractMetrics(edge float64) (TesseractMetrics, error) {
	if !geom.Positive(edge) {
		return TesseractMetrics{}, ErrDimension
	}
	m := TesseractMetrics{
		Edge:          edge,
		FaceDiagonal:  edge * math.Sqrt2,
		CellDiagonal:  edge * math.Sqrt(3),
		HyperDiagonal: 2 * edge,
		FaceArea:      24 * edge * edge,
		SurfaceVolume: 8 * edge * edge * edge,
		HyperVolume:   edge * edge * edge * edge,
	}
	return m, nil
}

type tesseractState struct {
	a     shape.Scalar
	m     TesseractMetrics
	built bool
}

// Tesseract is the interactive 4-cube calculator: single-DOF, every
// metric inverts straight to the edge.
type Tesseract struct {
	st tesseractState
}

// NewTesseract returns a tesseract calculator with the edge unset.
func NewTesseract() *Tesseract { return &Tesseract{} }

var tesseractCatalog = []shape.Spec{
	{Key: "edge", Name: "Edge", Unit: "u", Precision: 4},
	{Key: "face_diagonal", Name: "Face diagonal", Unit: "u", Precision: 4},
	{Key: "cell_diagonal", Name: "Cell diagonal", Unit: "u", Precision: 4},
	{Key: "hyper_diagonal", Name: "4-space diagonal", Unit: "u", Precision: 4},
	{Key: "face_area", Name: "Total face area", Unit: "u²", Precision: 4},
	{Key: "surface_volume", Name: "Surface volume", Unit: "u³", Precision: 4},
	{Key: "hyper_volume", Name: "Hypervolume", Unit: "u⁴", Precision: 4},
}

func (t *Tesseract) Kind() shape.Kind      { return shape.KindTesseract }
func (t *Tesseract) Catalog() []shape.Spec { return tesseractCatalog }

// Metrics reports the last built metric set.
func (t *Tesseract) Metrics() (TesseractMetrics, bool) { return t.st.m, t.st.built }

func (t *Tesseract) Value(key string) (float64, bool) {
	if key == "edge" {
		return t.st.a.Get()
	}
	if !t.st.built {
		return 0, false
	}
	switch key {
	case "face_diagonal":
		return t.st.m.FaceDiagonal, true
	case "cell_diagonal":
		return t.st.m.CellDiagonal, true
	case "hyper_diagonal":
		return t.st.m.HyperDiagonal, true
	case "face_area":
		return t.st.m.FaceArea, true
	case "surface_volume":
		return t.st.m.SurfaceVolume, true
	case "hyper_volume":
		return t.st.m.HyperVolume, true
	default:
		return 0, false
	}
}

func (t *Tesseract) Clear() { t.st = tesseractState{} }

func (t *Tesseract) Restore(snap map[string]float64) error {
	if err := checkKeys(tesseractCatalog, snap); err != nil {
		return err
	}
	st := tesseractState{}
	if v, ok := snap["edge"]; ok {
		st.a = shape.Some(v)
	}
	if err := rebuildTesseract(&st); err != nil {
		return err
	}
	t.st = st
	return nil
}

// Resolve converts key=v into the edge, rebuilds, commits atomically.
func (t *Tesseract) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}

	cand := t.st
	switch key {
	case "edge":
		cand.a = shape.Some(v)
	case "face_diagonal":
		cand.a = shape.Some(v / math.Sqrt2)
	case "cell_diagonal":
		cand.a = shape.Some(v / math.Sqrt(3))
	case "hyper_diagonal":
		cand.a = shape.Some(v / 2)
	case "face_area":
		cand.a = shape.Some(math.Sqrt(v / 24))
	case "surface_volume":
		cand.a = shape.Some(math.Cbrt(v / 8))
	case "hyper_volume":
		cand.a = shape.Some(math.Sqrt(math.Sqrt(v)))
	default:
		return shape.ErrUnknownKey
	}

	if err := rebuildTesseract(&cand); err != nil {
		return err
	}
	t.st = cand

	return nil
}

func rebuildTesseract(st *tesseractState) error {
	edge, ok := st.a.Get()
	st.built = false
	if !ok {
		return nil
	}
	m, err := NewTesseractMetrics(edge)
	if err != nil {
		return fmt.Errorf("solid: tesseract: %w: %w", err, shape.ErrInfeasible)
	}
	st.m = m
	st.built = true
	return nil
}
