package planar

import (
	"math"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// sacredSpec is the canonical dataset of one sacred-geometry composite:
// the number of unit circles in the pattern and the bounding-radius
// factor relative to the circle radius. The datasets are the single
// source of truth for both resolution and rendering.
type sacredSpec struct {
	kind        shape.Kind
	circles     int
	boundFactor float64
}

var (
	seedSpec   = sacredSpec{kind: shape.KindSeedOfLife, circles: 7, boundFactor: 2}
	flowerSpec = sacredSpec{kind: shape.KindFlowerOfLife, circles: 19, boundFactor: 3}
)

// sacredState is the closed slot set of the composite families.
type sacredState struct {
	circleRadius, circleCount, boundingRadius shape.Scalar
	overallDiameter, totalCircumference       shape.Scalar
	circleArea                                shape.Scalar
}

// Sacred resolves a sacred-geometry circle composite (Seed of Life,
// Flower of Life). Unlike the other planar families it starts defaulted:
// construction resolves circle_radius = 1, matching the way these
// patterns are presented before any user edit.
type Sacred struct {
	spec sacredSpec
	st   sacredState
}

// NewSeedOfLife returns the 7-circle composite, defaulted to radius 1.
func NewSeedOfLife() *Sacred { return newSacred(seedSpec) }

// NewFlowerOfLife returns the 19-circle composite, defaulted to radius 1.
func NewFlowerOfLife() *Sacred { return newSacred(flowerSpec) }

func newSacred(spec sacredSpec) *Sacred {
	s := &Sacred{spec: spec}
	// Defaulted canonical parameter; cannot fail for v=1.
	_ = s.Resolve("circle_radius", 1)

	return s
}

var sacredCatalog = []shape.Spec{
	{Key: "circle_radius", Name: "Circle radius", Unit: "u", Precision: 4},
	{Key: "bounding_radius", Name: "Bounding radius", Unit: "u", Precision: 4},
	{Key: "overall_diameter", Name: "Overall diameter", Unit: "u", Precision: 4},
	{Key: "total_circumference", Name: "Total circumference", Unit: "u", Precision: 4},
	{Key: "circle_area", Name: "Single circle area", Unit: "u²", Precision: 4},
	{Key: "circle_count", Name: "Circle count", Unit: "", Precision: 0, Readonly: true},
}

// Circles returns the structural circle count of the pattern.
func (s *Sacred) Circles() int { return s.spec.circles }

// BoundFactor returns the bounding-radius factor of the pattern.
func (s *Sacred) BoundFactor() float64 { return s.spec.boundFactor }

func (s *Sacred) Kind() shape.Kind      { return s.spec.kind }
func (s *Sacred) Catalog() []shape.Spec { return sacredCatalog }

func (s *Sacred) slot(key string) *shape.Scalar {
	switch key {
	case "circle_radius":
		return &s.st.circleRadius
	case "bounding_radius":
		return &s.st.boundingRadius
	case "overall_diameter":
		return &s.st.overallDiameter
	case "total_circumference":
		return &s.st.totalCircumference
	case "circle_area":
		return &s.st.circleArea
	case "circle_count":
		return &s.st.circleCount
	default:
		return nil
	}
}

func (s *Sacred) Value(key string) (float64, bool) { return shape.ValueFunc(s.slot, key) }

// Clear unsets the metric group; the circle count is structural and is
// re-established (patterns keep their shape, not their size).
func (s *Sacred) Clear() {
	shape.ClearSlots(sacredCatalog, s.slot)
	s.st.circleCount.Set(float64(s.spec.circles))
}

func (s *Sacred) Restore(snap map[string]float64) error {
	return shape.RestoreSlots(sacredCatalog, s.slot, snap)
}

// Resolve converts key=v to the canonical circle radius and rebuilds.
// Complexity: O(1).
func (s *Sacred) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}
	var r float64
	switch key {
	case "circle_radius":
		r = v
	case "bounding_radius":
		r = v / s.spec.boundFactor
	case "overall_diameter":
		r = v / (2 * s.spec.boundFactor)
	case "total_circumference":
		r = v / (2 * math.Pi * float64(s.spec.circles))
	case "circle_area":
		r = math.Sqrt(v / math.Pi)
	default:
		return shape.ErrUnknownKey
	}

	s.st = sacredState{
		circleRadius:       shape.Some(r),
		circleCount:        shape.Some(float64(s.spec.circles)),
		boundingRadius:     shape.Some(s.spec.boundFactor * r),
		overallDiameter:    shape.Some(2 * s.spec.boundFactor * r),
		totalCircumference: shape.Some(2 * math.Pi * r * float64(s.spec.circles)),
		circleArea:         shape.Some(math.Pi * r * r),
	}

	return nil
}
