package planar

import (
	"math"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// vesicaAreaCoeff is the lens area coefficient for two unit circles with
// centers one radius apart: 2π/3 − √3/2.
var vesicaAreaCoeff = 2*math.Pi/3 - math.Sqrt(3)/2

// vesicaState is the closed slot set of the vesica piscis family.
type vesicaState struct {
	radius, height, width, area, perimeter shape.Scalar
}

// Vesica resolves the vesica piscis: two circles of equal radius whose
// centers are one radius apart. Everything is linear or quadratic in r:
//
//	height    = r·√3        (long lens axis)
//	width     = r           (short axis, along the center line)
//	area      = (2π/3 − √3/2)·r²
//	perimeter = 4πr/3       (two 120° arcs)
type Vesica struct {
	st vesicaState
}

// NewVesica returns a vesica with every property unset.
func NewVesica() *Vesica { return &Vesica{} }

var vesicaCatalog = []shape.Spec{
	{Key: "radius", Name: "Circle radius", Unit: "u", Precision: 4},
	{Key: "height", Name: "Lens height", Unit: "u", Precision: 4},
	{Key: "width", Name: "Lens width", Unit: "u", Precision: 4},
	{Key: "area", Name: "Lens area", Unit: "u²", Precision: 4},
	{Key: "perimeter", Name: "Lens perimeter", Unit: "u", Precision: 4},
}

func (v *Vesica) Kind() shape.Kind      { return shape.KindVesica }
func (v *Vesica) Catalog() []shape.Spec { return vesicaCatalog }

func (v *Vesica) slot(key string) *shape.Scalar {
	switch key {
	case "radius":
		return &v.st.radius
	case "height":
		return &v.st.height
	case "width":
		return &v.st.width
	case "area":
		return &v.st.area
	case "perimeter":
		return &v.st.perimeter
	default:
		return nil
	}
}

func (v *Vesica) Value(key string) (float64, bool) { return shape.ValueFunc(v.slot, key) }
func (v *Vesica) Clear()                           { shape.ClearSlots(vesicaCatalog, v.slot) }

func (v *Vesica) Restore(snap map[string]float64) error {
	return shape.RestoreSlots(vesicaCatalog, v.slot, snap)
}

// Resolve converts key=val to the canonical radius and rebuilds the set.
// Complexity: O(1).
func (v *Vesica) Resolve(key string, val float64) error {
	if !geom.Positive(val) {
		return shape.ErrNonPositive
	}
	var r float64
	switch key {
	case "radius":
		r = val
	case "height":
		r = val / math.Sqrt(3)
	case "width":
		r = val
	case "area":
		r = math.Sqrt(val / vesicaAreaCoeff)
	case "perimeter":
		r = 3 * val / (4 * math.Pi)
	default:
		return shape.ErrUnknownKey
	}

	v.st = vesicaState{
		radius:    shape.Some(r),
		height:    shape.Some(r * math.Sqrt(3)),
		width:     shape.Some(r),
		area:      shape.Some(vesicaAreaCoeff * r * r),
		perimeter: shape.Some(4 * math.Pi * r / 3),
	}

	return nil
}
