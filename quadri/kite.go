package quadri

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// kiteState is the closed slot set shared by the kite and dart
// families: two distinct side lengths and the apex angle between the
// equal pair, plus the constructed derived group.
type kiteState struct {
	sideA, sideB, angle shape.Scalar // angle in degrees at the apex
	area, perimeter     shape.Scalar

	verts [4]r2.Vec
	built bool
}

// adjacentPair is the common resolver of the adjacent-equal-sides
// families. The fourth vertex is not solved algebraically: it is
// constructed as a circle-circle intersection and the variant's branch
// rule picks one of the two candidates.
type adjacentPair struct {
	st     kiteState
	convex bool
}

// Kite is the convex adjacent-equal-sides quadrilateral; its apex angle
// lies in (0°, 180°).
type Kite struct{ adjacentPair }

// Dart is the concave variant; its apex angle is reflex, in (180°, 360°).
type Dart struct{ adjacentPair }

// NewKite returns a kite with every property unset.
func NewKite() *Kite { return &Kite{adjacentPair{convex: true}} }

// NewDart returns a dart with every property unset.
func NewDart() *Dart { return &Dart{adjacentPair{convex: false}} }

func (k *Kite) Kind() shape.Kind { return shape.KindKite }
func (d *Dart) Kind() shape.Kind { return shape.KindDart }

var kiteCatalog = []shape.Spec{
	{Key: "side_a", Name: "Side a", Unit: "u", Precision: 4},
	{Key: "side_b", Name: "Side b", Unit: "u", Precision: 4},
	{Key: "angle", Name: "Apex angle", Unit: "°", Precision: 2},
	{Key: "area", Name: "Area", Unit: "u²", Precision: 4, Readonly: true},
	{Key: "perimeter", Name: "Perimeter", Unit: "u", Precision: 4, Readonly: true},
}

func (a *adjacentPair) Catalog() []shape.Spec { return kiteCatalog }

func (a *adjacentPair) slot(key string) *shape.Scalar {
	switch key {
	case "side_a":
		return &a.st.sideA
	case "side_b":
		return &a.st.sideB
	case "angle":
		return &a.st.angle
	case "area":
		return &a.st.area
	case "perimeter":
		return &a.st.perimeter
	default:
		return nil
	}
}

func (a *adjacentPair) Value(key string) (float64, bool) { return shape.ValueFunc(a.slot, key) }

func (a *adjacentPair) Clear() {
	shape.ClearSlots(kiteCatalog, a.slot)
	a.st.built = false
}

func (a *adjacentPair) Restore(snap map[string]float64) error {
	if err := shape.RestoreSlots(kiteCatalog, a.slot, snap); err != nil {
		return err
	}
	a.st.built = false
	// Rebuild the vertex chain from the restored basis; a partial basis
	// is a no-op inside the construction.
	cand := a.st
	if err := constructAdjacent(&cand, a.convex); err != nil {
		return err
	}
	a.st = cand
	return nil
}

// Vertices reports the constructed vertex chain (apex, equal-pair ends,
// far vertex) once all three basis properties are set.
func (a *adjacentPair) Vertices() ([4]r2.Vec, bool) { return a.st.verts, a.st.built }

// Resolve stages key=v, validates the variant's angle range, runs the
// circle-intersection construction when the basis is complete, and
// commits atomically.
func (a *adjacentPair) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}

	cand := a.st
	switch key {
	case "side_a":
		cand.sideA = shape.Some(v)
	case "side_b":
		cand.sideB = shape.Some(v)
	case "angle":
		if err := gateApexAngle(v, a.convex); err != nil {
			return err
		}
		cand.angle = shape.Some(v)
	default:
		return shape.ErrUnknownKey
	}

	if err := constructAdjacent(&cand, a.convex); err != nil {
		return err
	}
	a.st = cand

	return nil
}

// gateApexAngle checks the convexity-specific open range:
// (0°, 180°) for the kite, (180°, 360°) for the dart.
func gateApexAngle(deg float64, convex bool) error {
	if convex {
		if deg >= halfTurnDeg {
			return fmt.Errorf("quadri: kite: apex angle %v outside (0,180): %w", deg, shape.ErrInfeasible)
		}
		return nil
	}
	if deg <= halfTurnDeg || deg >= fullTurnDeg {
		return fmt.Errorf("quadri: dart: apex angle %v outside (180,360): %w", deg, shape.ErrInfeasible)
	}
	return nil
}

// constructAdjacent builds the vertex chain when the basis is complete.
// The apex sits at the origin with one equal side along the x-axis and
// the other rotated by the apex angle; the far vertex is an
// intersection of two circles of radius side_b centered at the equal
// side's far ends. The convex branch takes the higher candidate, the
// concave branch the candidate nearest the axis.
func constructAdjacent(st *kiteState, convex bool) error {
	sa, okA := st.sideA.Get()
	sb, okB := st.sideB.Get()
	deg, okG := st.angle.Get()
	if !okA || !okB || !okG {
		return nil
	}

	apex := r2.Vec{}
	b := r2.Vec{X: sa}
	d := geom.PolarDeg(apex, sa, deg)

	p, q, err := geom.Intersect(geom.Circle{Center: b, R: sb}, geom.Circle{Center: d, R: sb})
	if err != nil {
		return fmt.Errorf("quadri: adjacent-pair construction: %w: %w", err, shape.ErrInfeasible)
	}

	c := p
	if convex {
		if q.Y > c.Y {
			c = q
		}
	} else if math.Abs(q.Y) < math.Abs(c.Y) {
		c = q
	}

	verts := [4]r2.Vec{apex, b, c, d}
	area, aerr := geom.Area(verts[:])
	if aerr != nil {
		return fmt.Errorf("quadri: adjacent-pair construction: %w: %w", aerr, shape.ErrInfeasible)
	}

	st.verts = verts
	st.built = true
	st.area.Set(area)
	st.perimeter.Set(2 * (sa + sb))

	return nil
}
