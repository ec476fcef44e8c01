package planar

import (
	"fmt"
	"math"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// ellipseState is the closed slot set of the ellipse family.
type ellipseState struct {
	semiMajor, semiMinor shape.Scalar
	area, perimeter      shape.Scalar
	eccentricity         shape.Scalar
	focalDistance        shape.Scalar
}

// Ellipse resolves the ellipse family. The two semi-axes are the dual
// basis (a ≥ b gated); derived metrics populate once both are known.
// The perimeter uses Ramanujan's second approximation and is therefore
// read-only — it has no clean closed-form inverse.
type Ellipse struct {
	st ellipseState
}

// NewEllipse returns an ellipse with every property unset.
func NewEllipse() *Ellipse { return &Ellipse{} }

var ellipseCatalog = []shape.Spec{
	{Key: "semi_major", Name: "Semi-major axis", Unit: "u", Precision: 4},
	{Key: "semi_minor", Name: "Semi-minor axis", Unit: "u", Precision: 4},
	{Key: "area", Name: "Area", Unit: "u²", Precision: 4},
	{Key: "perimeter", Name: "Perimeter", Unit: "u", Precision: 4, Readonly: true},
	{Key: "eccentricity", Name: "Eccentricity", Unit: "", Precision: 6, Readonly: true},
	{Key: "focal_distance", Name: "Focal distance", Unit: "u", Precision: 4, Readonly: true},
}

func (e *Ellipse) Kind() shape.Kind      { return shape.KindEllipse }
func (e *Ellipse) Catalog() []shape.Spec { return ellipseCatalog }

func (e *Ellipse) slot(key string) *shape.Scalar {
	switch key {
	case "semi_major":
		return &e.st.semiMajor
	case "semi_minor":
		return &e.st.semiMinor
	case "area":
		return &e.st.area
	case "perimeter":
		return &e.st.perimeter
	case "eccentricity":
		return &e.st.eccentricity
	case "focal_distance":
		return &e.st.focalDistance
	default:
		return nil
	}
}

func (e *Ellipse) Value(key string) (float64, bool) { return shape.ValueFunc(e.slot, key) }
func (e *Ellipse) Clear()                           { shape.ClearSlots(ellipseCatalog, e.slot) }

func (e *Ellipse) Restore(snap map[string]float64) error {
	return shape.RestoreSlots(ellipseCatalog, e.slot, snap)
}

// Resolve stages key=v onto the axes basis and rebuilds the derived
// group once both axes are known. Gate: semi_minor ≤ semi_major.
// Complexity: O(1).
func (e *Ellipse) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}

	a, okA := e.st.semiMajor.Get()
	b, okB := e.st.semiMinor.Get()

	switch key {
	case "semi_major":
		a, okA = v, true
	case "semi_minor":
		b, okB = v, true
	case "area":
		// v = πab; solve for the missing axis.
		switch {
		case okA:
			b, okB = v/(math.Pi*a), true
		case okB:
			a, okA = v/(math.Pi*b), true
		default:
			return shape.ErrUnsetParameter
		}
	default:
		return shape.ErrUnknownKey
	}

	if okA && okB && b > a {
		return fmt.Errorf("planar: ellipse: semi-minor %v exceeds semi-major %v: %w", b, a, shape.ErrInfeasible)
	}

	var next ellipseState
	if okA {
		next.semiMajor = shape.Some(a)
	}
	if okB {
		next.semiMinor = shape.Some(b)
	}
	if okA && okB {
		next.area = shape.Some(math.Pi * a * b)
		next.perimeter = shape.Some(ramanujanPerimeter(a, b))
		ecc := math.Sqrt(1 - (b*b)/(a*a))
		next.eccentricity = shape.Some(ecc)
		next.focalDistance = shape.Some(2 * a * ecc)
	}
	e.st = next

	return nil
}

// ramanujanPerimeter is Ramanujan's second ellipse perimeter
// approximation, exact to ~1e-9 relative for modest eccentricities.
func ramanujanPerimeter(a, b float64) float64 {
	h := (a - b) * (a - b) / ((a + b) * (a + b))

	return math.Pi * (a + b) * (1 + 3*h/(10+math.Sqrt(4-3*h)))
}
