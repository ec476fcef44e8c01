package quadri

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// cyclicState is the closed slot set of the cyclic quadrilateral: four
// sides inscribed in a circle, with the Brahmagupta-derived group.
type cyclicState struct {
	sides [4]shape.Scalar

	area, perimeter shape.Scalar
	semiperimeter   shape.Scalar
	circumradius    shape.Scalar

	verts [4]r2.Vec
	built bool
}

// Cyclic resolves the cyclic quadrilateral family. Once all four sides
// are known it applies Brahmagupta's formula, derives the circumradius,
// and walks the central angles around the circumcircle to place the
// vertices.
type Cyclic struct {
	st cyclicState
}

// NewCyclic returns a cyclic quadrilateral with every property unset.
func NewCyclic() *Cyclic { return &Cyclic{} }

var cyclicCatalog = []shape.Spec{
	{Key: "side_a", Name: "Side a", Unit: "u", Precision: 4},
	{Key: "side_b", Name: "Side b", Unit: "u", Precision: 4},
	{Key: "side_c", Name: "Side c", Unit: "u", Precision: 4},
	{Key: "side_d", Name: "Side d", Unit: "u", Precision: 4},
	{Key: "area", Name: "Area", Unit: "u²", Precision: 4, Readonly: true},
	{Key: "perimeter", Name: "Perimeter", Unit: "u", Precision: 4, Readonly: true},
	{Key: "semiperimeter", Name: "Semiperimeter", Unit: "u", Precision: 4, Readonly: true},
	{Key: "circumradius", Name: "Circumradius", Unit: "u", Precision: 4, Readonly: true},
}

func (c *Cyclic) Kind() shape.Kind      { return shape.KindCyclicQuadrilateral }
func (c *Cyclic) Catalog() []shape.Spec { return cyclicCatalog }

func (c *Cyclic) slot(key string) *shape.Scalar {
	switch key {
	case "side_a":
		return &c.st.sides[0]
	case "side_b":
		return &c.st.sides[1]
	case "side_c":
		return &c.st.sides[2]
	case "side_d":
		return &c.st.sides[3]
	case "area":
		return &c.st.area
	case "perimeter":
		return &c.st.perimeter
	case "semiperimeter":
		return &c.st.semiperimeter
	case "circumradius":
		return &c.st.circumradius
	default:
		return nil
	}
}

func (c *Cyclic) Value(key string) (float64, bool) { return shape.ValueFunc(c.slot, key) }

func (c *Cyclic) Clear() {
	shape.ClearSlots(cyclicCatalog, c.slot)
	c.st.built = false
}

func (c *Cyclic) Restore(snap map[string]float64) error {
	if err := shape.RestoreSlots(cyclicCatalog, c.slot, snap); err != nil {
		return err
	}
	c.st.built = false
	cand := c.st
	if err := closeCyclic(&cand); err != nil {
		return err
	}
	c.st = cand
	return nil
}

// Vertices reports the circumcircle vertex walk once all four sides are
// resolved.
func (c *Cyclic) Vertices() ([4]r2.Vec, bool) { return c.st.verts, c.st.built }

// Resolve stages side key=v, applies Brahmagupta's gate once the side
// multiset is complete, and commits atomically.
func (c *Cyclic) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}

	cand := c.st
	switch key {
	case "side_a":
		cand.sides[0] = shape.Some(v)
	case "side_b":
		cand.sides[1] = shape.Some(v)
	case "side_c":
		cand.sides[2] = shape.Some(v)
	case "side_d":
		cand.sides[3] = shape.Some(v)
	default:
		return shape.ErrUnknownKey
	}

	if err := closeCyclic(&cand); err != nil {
		return err
	}
	c.st = cand

	return nil
}

// closeCyclic runs the Brahmagupta gate and derived group when the four
// sides are known:
//
//	A = √((s−a)(s−b)(s−c)(s−d)),  s = (a+b+c+d)/2
//	R = √((ab+cd)(ac+bd)(ad+bc)) / (4A)
//
// The vertex walk places each side as a chord of the circumcircle via
// its central angle θᵢ = 2·asin(sᵢ/(2R)); the walk closes once R is
// valid.
func closeCyclic(st *cyclicState) error {
	var s [4]float64
	for i, sc := range st.sides {
		v, ok := sc.Get()
		if !ok {
			return nil
		}
		s[i] = v
	}
	a, b, c, d := s[0], s[1], s[2], s[3]

	semi := (a + b + c + d) / 2
	radicand := (semi - a) * (semi - b) * (semi - c) * (semi - d)
	if radicand <= 0 {
		return fmt.Errorf("quadri: cyclic: sides %v,%v,%v,%v admit no convex cyclic quadrilateral: %w",
			a, b, c, d, shape.ErrInfeasible)
	}
	area := math.Sqrt(radicand)
	radius := math.Sqrt((a*b+c*d)*(a*c+b*d)*(a*d+b*c)) / (4 * area)

	// Central-angle walk. The chord bound sᵢ ≤ 2R holds whenever the
	// radicand is positive; the ratio is clamped against float drift on
	// near-degenerate side multisets.
	theta := 0.0
	for i := range s {
		st.verts[i] = geom.PolarDeg(r2.Vec{}, radius, theta/degToRad)
		theta += 2 * math.Asin(math.Min(s[i]/(2*radius), 1))
	}

	st.built = true
	st.area.Set(area)
	st.perimeter.Set(2 * semi)
	st.semiperimeter.Set(semi)
	st.circumradius.Set(radius)

	return nil
}
