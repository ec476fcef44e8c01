package planar

import (
	"math"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// ngonState is the closed slot set of the regular-polygon family.
type ngonState struct {
	side, perimeter, area, apothem, circumradius shape.Scalar
	interiorAngle, centralAngle                  shape.Scalar
}

// RegularPolygon resolves a regular n-gon. The order n is structural: it
// is fixed at construction and is not a resolvable property, exactly like
// the petal count of a rose curve.
type RegularPolygon struct {
	n  int
	st ngonState
}

// NewRegularPolygon returns a regular n-gon (n ≥ 3) with metric
// properties unset. The two angles depend on n alone and are populated
// immediately.
func NewRegularPolygon(n int) (*RegularPolygon, error) {
	if n < 3 {
		return nil, ErrBadOrder
	}
	p := &RegularPolygon{n: n}
	p.st.interiorAngle.Set(180 * float64(n-2) / float64(n))
	p.st.centralAngle.Set(360 / float64(n))

	return p, nil
}

var ngonCatalog = []shape.Spec{
	{Key: "side", Name: "Side", Unit: "u", Precision: 4},
	{Key: "perimeter", Name: "Perimeter", Unit: "u", Precision: 4},
	{Key: "area", Name: "Area", Unit: "u²", Precision: 4},
	{Key: "apothem", Name: "Apothem", Unit: "u", Precision: 4},
	{Key: "circumradius", Name: "Circumradius", Unit: "u", Precision: 4},
	{Key: "interior_angle", Name: "Interior angle", Unit: "°", Precision: 2, Readonly: true},
	{Key: "central_angle", Name: "Central angle", Unit: "°", Precision: 2, Readonly: true},
}

// Sides returns the structural order n.
func (p *RegularPolygon) Sides() int { return p.n }

func (p *RegularPolygon) Kind() shape.Kind      { return shape.KindRegularPolygon }
func (p *RegularPolygon) Catalog() []shape.Spec { return ngonCatalog }

func (p *RegularPolygon) slot(key string) *shape.Scalar {
	switch key {
	case "side":
		return &p.st.side
	case "perimeter":
		return &p.st.perimeter
	case "area":
		return &p.st.area
	case "apothem":
		return &p.st.apothem
	case "circumradius":
		return &p.st.circumradius
	case "interior_angle":
		return &p.st.interiorAngle
	case "central_angle":
		return &p.st.centralAngle
	default:
		return nil
	}
}

func (p *RegularPolygon) Value(key string) (float64, bool) { return shape.ValueFunc(p.slot, key) }

// Clear unsets the metric group; the angle constants are re-established
// since they derive from n alone.
func (p *RegularPolygon) Clear() {
	shape.ClearSlots(ngonCatalog, p.slot)
	p.st.interiorAngle.Set(180 * float64(p.n-2) / float64(p.n))
	p.st.centralAngle.Set(360 / float64(p.n))
}

func (p *RegularPolygon) Restore(snap map[string]float64) error {
	return shape.RestoreSlots(ngonCatalog, p.slot, snap)
}

// Resolve converts key=v to the canonical side length via the classical
// closed forms and rebuilds the metric group.
//
//	area     = n/4 · s² · cot(π/n)
//	apothem  = s / (2·tan(π/n))
//	circum R = s / (2·sin(π/n))
//
// Complexity: O(1).
func (p *RegularPolygon) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}
	n := float64(p.n)
	tan := math.Tan(math.Pi / n)
	sin := math.Sin(math.Pi / n)

	var s float64
	switch key {
	case "side":
		s = v
	case "perimeter":
		s = v / n
	case "area":
		s = math.Sqrt(4 * v * tan / n)
	case "apothem":
		s = 2 * v * tan
	case "circumradius":
		s = 2 * v * sin
	default:
		return shape.ErrUnknownKey
	}

	next := ngonState{
		side:          shape.Some(s),
		perimeter:     shape.Some(n * s),
		area:          shape.Some(n * s * s / (4 * tan)),
		apothem:       shape.Some(s / (2 * tan)),
		circumradius:  shape.Some(s / (2 * sin)),
		interiorAngle: p.st.interiorAngle,
		centralAngle:  p.st.centralAngle,
	}
	p.st = next

	return nil
}
