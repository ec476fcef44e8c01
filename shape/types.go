package shape

// Kind enumerates every shape family in the catalogue. The set is
// closed: resolvers are a fixed sum, not an open plugin surface.
type Kind int

// Family identifiers (stable ordering; String names are stable IDs too).
const (
	KindCircle Kind = iota
	KindSquare
	KindRegularPolygon
	KindAnnulus
	KindVesica
	KindRose
	KindEllipse
	KindCrescent
	KindSeedOfLife
	KindFlowerOfLife
	KindEquilateralTriangle
	KindRightTriangle
	KindIsoscelesTriangle
	KindScaleneTriangle
	KindParallelogram
	KindRhombus
	KindTrapezoid
	KindIsoscelesTrapezoid
	KindRectangle
	KindKite
	KindDart
	KindCyclicQuadrilateral
	KindTangentialQuadrilateral
	KindBicentricQuadrilateral
	KindDiagonalQuadrilateral
	KindPyramid
	KindFrustum
	KindPrism
	KindAntiprism
	KindUniformSolid
	KindTesseract
	KindIrregularPolygon
)

// kindNames is the single source of truth for Kind identifiers.
var kindNames = [...]string{
	KindCircle:                  "circle",
	KindSquare:                  "square",
	KindRegularPolygon:          "regular_polygon",
	KindAnnulus:                 "annulus",
	KindVesica:                  "vesica",
	KindRose:                    "rose",
	KindEllipse:                 "ellipse",
	KindCrescent:                "crescent",
	KindSeedOfLife:              "seed_of_life",
	KindFlowerOfLife:            "flower_of_life",
	KindEquilateralTriangle:     "equilateral_triangle",
	KindRightTriangle:           "right_triangle",
	KindIsoscelesTriangle:       "isosceles_triangle",
	KindScaleneTriangle:         "scalene_triangle",
	KindParallelogram:           "parallelogram",
	KindRhombus:                 "rhombus",
	KindTrapezoid:               "trapezoid",
	KindIsoscelesTrapezoid:      "isosceles_trapezoid",
	KindRectangle:               "rectangle",
	KindKite:                    "kite",
	KindDart:                    "dart",
	KindCyclicQuadrilateral:     "cyclic_quadrilateral",
	KindTangentialQuadrilateral: "tangential_quadrilateral",
	KindBicentricQuadrilateral:  "bicentric_quadrilateral",
	KindDiagonalQuadrilateral:   "diagonal_quadrilateral",
	KindPyramid:                 "pyramid",
	KindFrustum:                 "frustum",
	KindPrism:                   "prism",
	KindAntiprism:               "antiprism",
	KindUniformSolid:            "uniform_solid",
	KindTesseract:               "tesseract",
	KindIrregularPolygon:        "irregular_polygon",
}

// String returns the stable identifier of the family (used by the CLI
// and snapshots).
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Spec is one static catalog row of a family: key, display metadata and
// the readonly flag. Precision is display-only and never rounds values
// inside resolvers.
type Spec struct {
	Key       string
	Name      string
	Unit      string
	Precision int
	Readonly  bool

	// Signed marks properties that may legitimately be zero or negative
	// (polygon vertex coordinates); everything else is gated on > 0.
	Signed bool
}

// Property is the populated view of one catalog row, as handed to UI
// bindings: the Spec plus the current value (Set=false means unset).
type Property struct {
	Spec
	Value float64
	Set   bool
}

// Scalar is an optional numeric slot. The zero value is unset.
type Scalar struct {
	v  float64
	ok bool
}

// Some returns a set Scalar holding v.
func Some(v float64) Scalar { return Scalar{v: v, ok: true} }

// Get returns the value and whether it is set.
func (s Scalar) Get() (float64, bool) { return s.v, s.ok }

// Val returns the value, 0 when unset. Use OK to disambiguate.
func (s Scalar) Val() float64 { return s.v }

// OK reports whether the slot holds a value.
func (s Scalar) OK() bool { return s.ok }

// Set stores v into the slot.
func (s *Scalar) Set(v float64) { s.v, s.ok = v, true }

// Unset clears the slot.
func (s *Scalar) Unset() { s.v, s.ok = 0, false }
