package planar

import (
	"fmt"
	"math"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// circleState is the closed slot set of the circle family. The primary
// group is fully determined by the radius; the arc group additionally
// needs a central angle and stays unset until both are known.
type circleState struct {
	radius        shape.Scalar
	diameter      shape.Scalar
	circumference shape.Scalar
	area          shape.Scalar
	centralAngle  shape.Scalar // degrees, (0, 360)
	chord         shape.Scalar
	sagitta       shape.Scalar
	arcLength     shape.Scalar
}

// Circle resolves the circle family: any primary property recomputes the
// whole set; the chord/sagitta/arc secondary group requires a resolved
// radius first.
type Circle struct {
	st circleState
}

// NewCircle returns a circle with every property unset.
func NewCircle() *Circle { return &Circle{} }

var circleCatalog = []shape.Spec{
	{Key: "radius", Name: "Radius", Unit: "u", Precision: 4},
	{Key: "diameter", Name: "Diameter", Unit: "u", Precision: 4},
	{Key: "circumference", Name: "Circumference", Unit: "u", Precision: 4},
	{Key: "area", Name: "Area", Unit: "u²", Precision: 4},
	{Key: "central_angle", Name: "Central angle", Unit: "°", Precision: 2},
	{Key: "chord", Name: "Chord length", Unit: "u", Precision: 4, Readonly: true},
	{Key: "sagitta", Name: "Sagitta", Unit: "u", Precision: 4, Readonly: true},
	{Key: "arc_length", Name: "Arc length", Unit: "u", Precision: 4, Readonly: true},
}

// Kind identifies the family.
func (c *Circle) Kind() shape.Kind { return shape.KindCircle }

// Catalog returns the static property rows in display order.
func (c *Circle) Catalog() []shape.Spec { return circleCatalog }

func (c *Circle) slot(key string) *shape.Scalar {
	switch key {
	case "radius":
		return &c.st.radius
	case "diameter":
		return &c.st.diameter
	case "circumference":
		return &c.st.circumference
	case "area":
		return &c.st.area
	case "central_angle":
		return &c.st.centralAngle
	case "chord":
		return &c.st.chord
	case "sagitta":
		return &c.st.sagitta
	case "arc_length":
		return &c.st.arcLength
	default:
		return nil
	}
}

// Value returns the current value of key and whether it is set.
func (c *Circle) Value(key string) (float64, bool) { return shape.ValueFunc(c.slot, key) }

// Clear unsets every property.
func (c *Circle) Clear() { shape.ClearSlots(circleCatalog, c.slot) }

// Restore writes a snapshot verbatim.
func (c *Circle) Restore(snap map[string]float64) error {
	return shape.RestoreSlots(circleCatalog, c.slot, snap)
}

// Resolve converts key=v into the canonical radius (or stages the arc
// angle) and recomputes every dependent property in one pass.
// Complexity: O(1).
func (c *Circle) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}

	// Stage 1: recover the canonical radius from the entered property.
	var r float64
	switch key {
	case "radius":
		r = v
	case "diameter":
		r = v / 2
	case "circumference":
		r = v / (2 * math.Pi)
	case "area":
		r = math.Sqrt(v / math.Pi)
	case "central_angle":
		return c.resolveAngle(v)
	default:
		return shape.ErrUnknownKey
	}

	// Stage 2: rebuild the full candidate state from r and commit.
	next := circleState{
		radius:        shape.Some(r),
		diameter:      shape.Some(2 * r),
		circumference: shape.Some(2 * math.Pi * r),
		area:          shape.Some(math.Pi * r * r),
	}
	if deg, ok := c.st.centralAngle.Get(); ok {
		fillArc(&next, r, deg)
	}
	c.st = next

	return nil
}

// resolveAngle stages the secondary arc group. It needs the canonical
// radius and an angle strictly inside (0°, 360°).
func (c *Circle) resolveAngle(deg float64) error {
	r, ok := c.st.radius.Get()
	if !ok {
		return shape.ErrUnsetParameter
	}
	if deg >= fullTurnDeg {
		return fmt.Errorf("planar: circle: central angle %v outside (0,360): %w", deg, shape.ErrInfeasible)
	}
	next := c.st
	fillArc(&next, r, deg)
	c.st = next

	return nil
}

// fillArc populates the chord/sagitta/arc group from radius and angle.
func fillArc(st *circleState, r, deg float64) {
	half := deg * degToRad / 2
	st.centralAngle.Set(deg)
	st.chord.Set(2 * r * math.Sin(half))
	st.sagitta.Set(r * (1 - math.Cos(half)))
	st.arcLength.Set(r * deg * degToRad)
}
