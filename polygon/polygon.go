package polygon

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// Irregular is the forward-only polygon over a fixed vertex count. The
// count is structural; the coordinates are the editable basis.
type Irregular struct {
	pts     []shape.Scalar // x0,y0,x1,y1,… interleaved
	catalog []shape.Spec
}

// NewIrregular builds an irregular polygon seeded with pts. At least
// three vertices are required.
func NewIrregular(pts []r2.Vec) (*Irregular, error) {
	if len(pts) < 3 {
		return nil, fmt.Errorf("polygon: %d vertices below 3: %w", len(pts), shape.ErrPointCount)
	}

	p := &Irregular{pts: make([]shape.Scalar, 2*len(pts))}
	for i, pt := range pts {
		p.pts[2*i] = shape.Some(pt.X)
		p.pts[2*i+1] = shape.Some(pt.Y)
	}

	p.catalog = make([]shape.Spec, 0, 2*len(pts)+4)
	for i := range pts {
		p.catalog = append(p.catalog,
			shape.Spec{Key: "x" + strconv.Itoa(i), Name: fmt.Sprintf("Vertex %d x", i), Unit: "u", Precision: 4, Signed: true},
			shape.Spec{Key: "y" + strconv.Itoa(i), Name: fmt.Sprintf("Vertex %d y", i), Unit: "u", Precision: 4, Signed: true},
		)
	}
	p.catalog = append(p.catalog,
		shape.Spec{Key: "area", Name: "Area", Unit: "u²", Precision: 4, Readonly: true},
		shape.Spec{Key: "perimeter", Name: "Perimeter", Unit: "u", Precision: 4, Readonly: true},
		shape.Spec{Key: "centroid_x", Name: "Centroid x", Unit: "u", Precision: 4, Readonly: true, Signed: true},
		shape.Spec{Key: "centroid_y", Name: "Centroid y", Unit: "u", Precision: 4, Readonly: true, Signed: true},
	)

	return p, nil
}

func (p *Irregular) Kind() shape.Kind      { return shape.KindIrregularPolygon }
func (p *Irregular) Catalog() []shape.Spec { return p.catalog }

// Sides reports the structural vertex count.
func (p *Irregular) Sides() int { return len(p.pts) / 2 }

// coordIndex maps x3/y3 style keys into the interleaved slot index, or
// -1 for non-coordinate keys.
func (p *Irregular) coordIndex(key string) int {
	if len(key) < 2 {
		return -1
	}
	axis := key[0]
	if axis != 'x' && axis != 'y' {
		return -1
	}
	n, err := strconv.Atoi(key[1:])
	if err != nil || n < 0 || n >= p.Sides() || strings.HasPrefix(key[1:], "+") {
		return -1
	}
	idx := 2 * n
	if axis == 'y' {
		idx++
	}
	return idx
}

// Vertices reports the current vertex chain; ok is false while any
// coordinate is unset.
func (p *Irregular) Vertices() ([]r2.Vec, bool) {
	out := make([]r2.Vec, p.Sides())
	for i := range out {
		x, okX := p.pts[2*i].Get()
		y, okY := p.pts[2*i+1].Get()
		if !okX || !okY {
			return nil, false
		}
		out[i] = r2.Vec{X: x, Y: y}
	}
	return out, true
}

func (p *Irregular) Value(key string) (float64, bool) {
	if idx := p.coordIndex(key); idx >= 0 {
		return p.pts[idx].Get()
	}
	verts, ok := p.Vertices()
	if !ok {
		return 0, false
	}
	switch key {
	case "area":
		a, err := geom.Area(verts)
		return a, err == nil
	case "perimeter":
		per, err := geom.Perimeter(verts)
		return per, err == nil
	case "centroid_x":
		c, err := geom.Centroid(verts)
		return c.X, err == nil
	case "centroid_y":
		c, err := geom.Centroid(verts)
		return c.Y, err == nil
	default:
		return 0, false
	}
}

func (p *Irregular) Clear() {
	for i := range p.pts {
		p.pts[i].Unset()
	}
}

func (p *Irregular) Restore(snap map[string]float64) error {
	for key := range snap {
		if p.coordIndex(key) < 0 {
			if _, err := shape.SpecOf(p, key); err != nil {
				return shape.ErrBadSnapshot
			}
		}
	}
	p.Clear()
	for key, v := range snap {
		if idx := p.coordIndex(key); idx >= 0 {
			p.pts[idx].Set(v)
		}
	}
	return nil
}

// Resolve writes one coordinate. Forward-only: no gate beyond the key
// check, the derived trio is recomputed on read.
func (p *Irregular) Resolve(key string, v float64) error {
	if !geom.Finite(v) {
		return shape.ErrNonPositive
	}
	idx := p.coordIndex(key)
	if idx < 0 {
		if _, err := shape.SpecOf(p, key); err != nil {
			return err
		}
		return shape.ErrReadonlyKey
	}
	p.pts[idx].Set(v)
	return nil
}
