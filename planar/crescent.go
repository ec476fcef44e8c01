package planar

import (
	"math"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// Crescent construction constants. The family stays single-DOF by fixing
// the construction: the inner circle has the same radius and its center
// is offset by half that radius, so every metric is a pure coefficient
// times a power of r.
var (
	// crescentLensCoeff: lens area of two unit circles at distance 1/2:
	// 2·acos(1/4) − √15/8.
	crescentLensCoeff = 2*math.Acos(0.25) - math.Sqrt(15)/8
	// crescentAreaCoeff: the visible sliver, π minus the lens.
	crescentAreaCoeff = math.Pi - crescentLensCoeff
)

// crescentState is the closed slot set of the crescent family.
type crescentState struct {
	radius, offset, width, area, lensArea shape.Scalar
}

// Crescent resolves the crescent (lune) family: an outer circle of
// radius r minus an equal circle whose center sits r/2 away.
type Crescent struct {
	st crescentState
}

// NewCrescent returns a crescent with every property unset.
func NewCrescent() *Crescent { return &Crescent{} }

var crescentCatalog = []shape.Spec{
	{Key: "radius", Name: "Radius", Unit: "u", Precision: 4},
	{Key: "offset", Name: "Center offset", Unit: "u", Precision: 4, Readonly: true},
	{Key: "width", Name: "Max thickness", Unit: "u", Precision: 4},
	{Key: "area", Name: "Crescent area", Unit: "u²", Precision: 4},
	{Key: "lens_area", Name: "Overlap area", Unit: "u²", Precision: 4, Readonly: true},
}

func (c *Crescent) Kind() shape.Kind      { return shape.KindCrescent }
func (c *Crescent) Catalog() []shape.Spec { return crescentCatalog }

func (c *Crescent) slot(key string) *shape.Scalar {
	switch key {
	case "radius":
		return &c.st.radius
	case "offset":
		return &c.st.offset
	case "width":
		return &c.st.width
	case "area":
		return &c.st.area
	case "lens_area":
		return &c.st.lensArea
	default:
		return nil
	}
}

func (c *Crescent) Value(key string) (float64, bool) { return shape.ValueFunc(c.slot, key) }
func (c *Crescent) Clear()                           { shape.ClearSlots(crescentCatalog, c.slot) }

func (c *Crescent) Restore(snap map[string]float64) error {
	return shape.RestoreSlots(crescentCatalog, c.slot, snap)
}

// Resolve converts key=v to the canonical radius and rebuilds the set.
// The maximum thickness of this construction equals the offset, r/2.
// Complexity: O(1).
func (c *Crescent) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}
	var r float64
	switch key {
	case "radius":
		r = v
	case "width":
		r = 2 * v
	case "area":
		r = math.Sqrt(v / crescentAreaCoeff)
	default:
		return shape.ErrUnknownKey
	}

	c.st = crescentState{
		radius:   shape.Some(r),
		offset:   shape.Some(r / 2),
		width:    shape.Some(r / 2),
		area:     shape.Some(crescentAreaCoeff * r * r),
		lensArea: shape.Some(crescentLensCoeff * r * r),
	}

	return nil
}
