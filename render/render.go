package render

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/planar"
	"github.com/quantgeom/figura/polygon"
	"github.com/quantgeom/figura/quadri"
	"github.com/quantgeom/figura/shape"
	"github.com/quantgeom/figura/triangle"
)

// Sample counts for the curved families. The ellipse is smooth enough
// at one vertex per degree; the rose needs the finer step so the petal
// tips stay sharp at high harmonics.
const (
	ellipseSamples = 360
	roseSamples    = 720
)

// labelLeading is the vertical distance between stacked labels, in the
// same (unitless) coordinates as the primitives.
const labelLeading = 0.5

// Primitive is one drawing instruction. The set is closed: a viewport
// that handles the three concrete types can render the full catalogue.
type Primitive interface {
	primitive()
}

// CirclePrim draws a full circle.
type CirclePrim struct {
	Center r2.Vec
	Radius float64
}

// PolygonPrim draws a closed polyline through Points in order.
type PolygonPrim struct {
	Points []r2.Vec
}

// GroupPrim draws its members as one boolean union (the overlapping
// circle composites and the crescent).
type GroupPrim struct {
	Members []Primitive
}

func (CirclePrim) primitive()  {}
func (PolygonPrim) primitive() {}
func (GroupPrim) primitive()   {}

// Label is one annotation line, anchored at (X, Y).
type Label struct {
	Text string
	X, Y float64
}

// Drawing is the full projection of one solved shape.
type Drawing struct {
	Primitives []Primitive
	Labels     []Label
}

// Project converts a solved shape into drawing primitives and one label
// per populated catalog property. It is a pure projection: every
// coordinate derives from already resolved values.
//
// Errors: ErrUnsetParameter when the canonical values needed for the
// embedding are still unset; ErrUnknownKey for kinds with no 2D
// projection (the solid calculators hand off meshes instead).
// Complexity: O(n) in the vertex/sample count of the projection.
func Project(s shape.Shape) (Drawing, error) {
	prims, err := primitives(s)
	if err != nil {
		return Drawing{}, err
	}

	return Drawing{Primitives: prims, Labels: labels(s)}, nil
}

// labels formats every populated property with its catalog precision
// and stacks the lines below the origin.
func labels(s shape.Shape) []Label {
	var out []Label
	for _, sp := range s.Catalog() {
		v, ok := s.Value(sp.Key)
		if !ok {
			continue
		}
		text := sp.Name + ": " + strconv.FormatFloat(v, 'f', sp.Precision, 64)
		if sp.Unit != "" {
			text += " " + sp.Unit
		}
		out = append(out, Label{
			Text: text,
			Y:    -labelLeading * float64(len(out)+1),
		})
	}

	return out
}

func primitives(s shape.Shape) ([]Primitive, error) {
	switch t := s.(type) {
	case *planar.Circle:
		r, err := need(s, "radius")
		if err != nil {
			return nil, err
		}
		return []Primitive{CirclePrim{Radius: r}}, nil

	case *planar.Square:
		a, err := need(s, "side")
		if err != nil {
			return nil, err
		}
		return []Primitive{box(a, a)}, nil

	case *planar.RegularPolygon:
		cr, err := need(s, "circumradius")
		if err != nil {
			return nil, err
		}
		return []Primitive{ring(t.Sides(), cr)}, nil

	case *planar.Annulus:
		outer, err := need(s, "outer_radius")
		if err != nil {
			return nil, err
		}
		inner, err := need(s, "inner_radius")
		if err != nil {
			return nil, err
		}
		return []Primitive{GroupPrim{Members: []Primitive{
			CirclePrim{Radius: outer},
			CirclePrim{Radius: inner},
		}}}, nil

	case *planar.Vesica:
		r, err := need(s, "radius")
		if err != nil {
			return nil, err
		}
		return []Primitive{twinCircles(r, r)}, nil

	case *planar.Crescent:
		r, err := need(s, "radius")
		if err != nil {
			return nil, err
		}
		off, err := need(s, "offset")
		if err != nil {
			return nil, err
		}
		return []Primitive{twinCircles(r, off)}, nil

	case *planar.Sacred:
		r, err := need(s, "circle_radius")
		if err != nil {
			return nil, err
		}
		return []Primitive{hexLattice(r, t.BoundFactor())}, nil

	case *planar.Rose:
		a, err := need(s, "amplitude")
		if err != nil {
			return nil, err
		}
		return []Primitive{roseCurve(a, t.Harmonic())}, nil

	case *planar.Ellipse:
		major, err := need(s, "semi_major")
		if err != nil {
			return nil, err
		}
		minor, err := need(s, "semi_minor")
		if err != nil {
			return nil, err
		}
		return []Primitive{ellipseCurve(major, minor)}, nil

	case *triangle.Equilateral:
		a, err := need(s, "side")
		if err != nil {
			return nil, err
		}
		return poly(
			r2.Vec{},
			r2.Vec{X: a},
			r2.Vec{X: a / 2, Y: a * math.Sqrt(3) / 2},
		), nil

	case *triangle.Right:
		b, err := need(s, "base")
		if err != nil {
			return nil, err
		}
		h, err := need(s, "height")
		if err != nil {
			return nil, err
		}
		return poly(r2.Vec{}, r2.Vec{X: b}, r2.Vec{Y: h}), nil

	case *triangle.Isosceles:
		b, err := need(s, "base")
		if err != nil {
			return nil, err
		}
		h, err := need(s, "height")
		if err != nil {
			return nil, err
		}
		return poly(r2.Vec{}, r2.Vec{X: b}, r2.Vec{X: b / 2, Y: h}), nil

	case *triangle.Scalene:
		return scaleneVerts(s)

	case *quadri.Parallelogram, *quadri.Rhombus:
		return slantVerts(s)

	case *quadri.Rectangle:
		w, err := need(s, "width")
		if err != nil {
			return nil, err
		}
		h, err := need(s, "height")
		if err != nil {
			return nil, err
		}
		return []Primitive{box(w, h)}, nil

	case *quadri.Trapezoid:
		return trapezoidVerts(s)

	case *quadri.IsoTrapezoid:
		return isoTrapezoidVerts(s)

	case *quadri.Kite:
		return builtVerts(t.Vertices())

	case *quadri.Dart:
		return builtVerts(t.Vertices())

	case *quadri.Cyclic:
		return builtVerts(t.Vertices())

	case *quadri.Bicentric:
		return chordWalkVerts(s)

	case *quadri.Tangential:
		return tangentialPrims(s)

	case *quadri.ByDiagonals:
		return diagonalVerts(s)

	case *polygon.Irregular:
		pts, ok := t.Vertices()
		if !ok {
			return nil, unset(s)
		}
		return []Primitive{PolygonPrim{Points: pts}}, nil

	default:
		return nil, fmt.Errorf("render: no 2D projection for %s: %w",
			s.Kind(), shape.ErrUnknownKey)
	}
}

// need reads one resolved value or reports the family's missing basis.
func need(s shape.Shape, key string) (float64, error) {
	v, ok := s.Value(key)
	if !ok {
		return 0, unset(s)
	}

	return v, nil
}

func unset(s shape.Shape) error {
	return fmt.Errorf("render: %s not solved: %w", s.Kind(), shape.ErrUnsetParameter)
}

func poly(pts ...r2.Vec) []Primitive {
	return []Primitive{PolygonPrim{Points: pts}}
}

// box spans (0,0)..(w,h) counterclockwise.
func box(w, h float64) PolygonPrim {
	return PolygonPrim{Points: []r2.Vec{
		{}, {X: w}, {X: w, Y: h}, {Y: h},
	}}
}

// ring places n vertices on the circumcircle, first vertex straight up.
func ring(n int, circumradius float64) PolygonPrim {
	pts := make([]r2.Vec, n)
	for i := range pts {
		pts[i] = geom.PolarDeg(r2.Vec{}, circumradius, 90+float64(i)*360/float64(n))
	}

	return PolygonPrim{Points: pts}
}

// twinCircles is the two-disc union shared by the vesica (separation r)
// and the crescent (separation r/2).
func twinCircles(r, separation float64) GroupPrim {
	return GroupPrim{Members: []Primitive{
		CirclePrim{Radius: r},
		CirclePrim{Center: r2.Vec{X: separation}, Radius: r},
	}}
}

// hexLattice emits every circle of a sacred composite: all hexagonal
// lattice points within (factor-1)·r of the origin, row-major order.
// factor 2 yields the 7-circle seed, factor 3 the 19-circle flower.
func hexLattice(r, factor float64) GroupPrim {
	u := r2.Vec{X: r}
	w := r2.Vec{X: r / 2, Y: r * math.Sqrt(3) / 2}
	reach := (factor-1)*r + geom.Eps

	g := GroupPrim{}
	for j := -3; j <= 3; j++ {
		for i := -3; i <= 3; i++ {
			c := r2.Add(r2.Scale(float64(i), u), r2.Scale(float64(j), w))
			if r2.Norm(c) <= reach {
				g.Members = append(g.Members, CirclePrim{Center: c, Radius: r})
			}
		}
	}

	return g
}

func roseCurve(amplitude float64, k int) PolygonPrim {
	pts := make([]r2.Vec, roseSamples)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / roseSamples
		rho := amplitude * math.Cos(float64(k)*theta)
		pts[i] = r2.Vec{X: rho * math.Cos(theta), Y: rho * math.Sin(theta)}
	}

	return PolygonPrim{Points: pts}
}

func ellipseCurve(semiMajor, semiMinor float64) PolygonPrim {
	pts := make([]r2.Vec, ellipseSamples)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / ellipseSamples
		pts[i] = r2.Vec{X: semiMajor * math.Cos(theta), Y: semiMinor * math.Sin(theta)}
	}

	return PolygonPrim{Points: pts}
}

// scaleneVerts embeds side_c on the x axis and lifts the apex with the
// law of cosines.
func scaleneVerts(s shape.Shape) ([]Primitive, error) {
	sa, err := need(s, "side_a")
	if err != nil {
		return nil, err
	}
	sb, err := need(s, "side_b")
	if err != nil {
		return nil, err
	}
	sc, err := need(s, "side_c")
	if err != nil {
		return nil, err
	}

	x := (sb*sb + sc*sc - sa*sa) / (2 * sc)
	y := math.Sqrt(math.Max(sb*sb-x*x, 0))

	return poly(r2.Vec{}, r2.Vec{X: sc}, r2.Vec{X: x, Y: y}), nil
}

// slantVerts embeds a parallelogram or rhombus with the base on the
// x axis and the side rising at the interior angle.
func slantVerts(s shape.Shape) ([]Primitive, error) {
	baseKey := "base"
	sideKey := "side"
	if s.Kind() == shape.KindRhombus {
		baseKey = "side"
	}

	b, err := need(s, baseKey)
	if err != nil {
		return nil, err
	}
	side, err := need(s, sideKey)
	if err != nil {
		return nil, err
	}
	deg, err := need(s, "angle")
	if err != nil {
		return nil, err
	}

	top := geom.PolarDeg(r2.Vec{}, side, deg)

	return poly(
		r2.Vec{},
		r2.Vec{X: b},
		r2.Add(r2.Vec{X: b}, top),
		top,
	), nil
}

func trapezoidVerts(s shape.Shape) ([]Primitive, error) {
	a, err := need(s, "base_long")
	if err != nil {
		return nil, err
	}
	b, err := need(s, "base_short")
	if err != nil {
		return nil, err
	}
	left, err := need(s, "leg_left")
	if err != nil {
		return nil, err
	}
	h, err := need(s, "height")
	if err != nil {
		return nil, err
	}

	x := math.Sqrt(math.Max(left*left-h*h, 0))

	return poly(
		r2.Vec{},
		r2.Vec{X: a},
		r2.Vec{X: x + b, Y: h},
		r2.Vec{X: x, Y: h},
	), nil
}

func isoTrapezoidVerts(s shape.Shape) ([]Primitive, error) {
	a, err := need(s, "base_long")
	if err != nil {
		return nil, err
	}
	b, err := need(s, "base_short")
	if err != nil {
		return nil, err
	}
	h, err := need(s, "height")
	if err != nil {
		return nil, err
	}

	run := (a - b) / 2

	return poly(
		r2.Vec{},
		r2.Vec{X: a},
		r2.Vec{X: a - run, Y: h},
		r2.Vec{X: run, Y: h},
	), nil
}

func builtVerts(v [4]r2.Vec, built bool) ([]Primitive, error) {
	if !built {
		return nil, fmt.Errorf("render: construction not built: %w", shape.ErrUnsetParameter)
	}

	return poly(v[0], v[1], v[2], v[3]), nil
}

// chordWalkVerts reconstructs a circle-inscribed quadrilateral from its
// circumradius by chaining the central angle of each chord.
func chordWalkVerts(s shape.Shape) ([]Primitive, error) {
	radius, err := need(s, "circumradius")
	if err != nil {
		return nil, err
	}

	theta := 0.0
	verts := make([]r2.Vec, 0, 4)
	for _, key := range []string{"side_a", "side_b", "side_c", "side_d"} {
		verts = append(verts, geom.PolarDeg(r2.Vec{}, radius, theta*180/math.Pi))
		side, err := need(s, key)
		if err != nil {
			return nil, err
		}
		theta += 2 * math.Asin(math.Min(side/(2*radius), 1))
	}

	return []Primitive{PolygonPrim{Points: verts}}, nil
}

// tangentialPrims: the Pitot sides alone do not pin a tangential
// quadrilateral to unique vertices, so the projection is the incircle
// (once the inradius is resolved) plus the property labels.
func tangentialPrims(s shape.Shape) ([]Primitive, error) {
	if _, ok := s.Value("side_a"); !ok {
		return nil, unset(s)
	}
	r, ok := s.Value("inradius")
	if !ok {
		return nil, nil
	}

	return []Primitive{CirclePrim{Radius: r}}, nil
}

// diagonalVerts draws the canonical representative of a diagonal-basis
// quadrilateral: both diagonals bisect each other at the origin, which
// preserves the p·q·sin(θ)/2 area.
func diagonalVerts(s shape.Shape) ([]Primitive, error) {
	p, err := need(s, "diagonal_p")
	if err != nil {
		return nil, err
	}
	q, err := need(s, "diagonal_q")
	if err != nil {
		return nil, err
	}
	deg, err := need(s, "angle")
	if err != nil {
		return nil, err
	}

	half := geom.PolarDeg(r2.Vec{}, q/2, deg)

	return poly(
		r2.Vec{X: -p / 2},
		r2.Scale(-1, half),
		r2.Vec{X: p / 2},
		half,
	), nil
}

// Strings renders the label block as plain lines, one per property.
// Convenience for the CLI table.
func (d Drawing) Strings() []string {
	out := make([]string, len(d.Labels))
	for i, l := range d.Labels {
		out[i] = l.Text
	}

	return out
}
