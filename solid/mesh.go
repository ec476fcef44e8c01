package solid

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// Mesh is a renderable vertex/edge/face payload. Topology is a fixed
// template per solid class; only the vertex coordinates scale with the
// solved dimensions. Edges are unordered index pairs with U < V, sorted
// lexicographically so equal inputs always yield byte-equal meshes.
type Mesh struct {
	Vertices []r3.Vec
	Edges    [][2]int
	Faces    [][]int
}

// edgesFromFaces derives the canonical edge list from face cycles:
// every consecutive vertex pair once, normalized U < V, sorted.
func edgesFromFaces(faces [][]int) [][2]int {
	seen := make(map[[2]int]struct{})
	for _, face := range faces {
		for i, u := range face {
			v := face[(i+1)%len(face)]
			if u > v {
				u, v = v, u
			}
			seen[[2]int{u, v}] = struct{}{}
		}
	}
	edges := make([][2]int, 0, len(seen))
	for e := range seen {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	return edges
}

// meshFromFaces assembles a Mesh from template vertices and faces.
func meshFromFaces(verts []r3.Vec, faces [][]int) Mesh {
	return Mesh{Vertices: verts, Edges: edgesFromFaces(faces), Faces: faces}
}

// PyramidMesh scales the 5-vertex square-pyramid template: the base
// square centered on the origin in the z=0 plane, the apex above it.
func PyramidMesh(baseEdge, height float64) (Mesh, error) {
	if !geom.Positive(baseEdge) || !geom.Positive(height) {
		return Mesh{}, ErrDimension
	}
	r := baseEdge / 2
	verts := []r3.Vec{
		{X: -r, Y: -r}, {X: r, Y: -r}, {X: r, Y: r}, {X: -r, Y: r},
		{Z: height},
	}
	faces := [][]int{
		{0, 3, 2, 1},
		{0, 1, 4}, {1, 2, 4}, {2, 3, 4}, {3, 0, 4},
	}
	return meshFromFaces(verts, faces), nil
}

// FrustumMesh scales the 8-vertex square-frustum template: two
// concentric squares at z=0 and z=height.
func FrustumMesh(baseEdge, topEdge, height float64) (Mesh, error) {
	if _, err := NewFrustumMetrics(baseEdge, topEdge, height); err != nil {
		return Mesh{}, err
	}
	rb, rt := baseEdge/2, topEdge/2
	verts := []r3.Vec{
		{X: -rb, Y: -rb}, {X: rb, Y: -rb}, {X: rb, Y: rb}, {X: -rb, Y: rb},
		{X: -rt, Y: -rt, Z: height}, {X: rt, Y: -rt, Z: height},
		{X: rt, Y: rt, Z: height}, {X: -rt, Y: rt, Z: height},
	}
	faces := [][]int{
		{0, 3, 2, 1},
		{4, 5, 6, 7},
		{0, 1, 5, 4}, {1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7},
	}
	return meshFromFaces(verts, faces), nil
}

// PrismMesh scales the regular n-gonal-prism template: two congruent
// rings at z=0 and z=height.
func PrismMesh(n int, baseEdge, height float64) (Mesh, error) {
	if _, err := NewPrismMetrics(n, baseEdge, height); err != nil {
		return Mesh{}, err
	}
	circum := baseEdge / (2 * math.Sin(math.Pi/float64(n)))
	verts := make([]r3.Vec, 0, 2*n)
	for _, z := range []float64{0, height} {
		for k := 0; k < n; k++ {
			ang := 2 * math.Pi * float64(k) / float64(n)
			verts = append(verts, r3.Vec{X: circum * math.Cos(ang), Y: circum * math.Sin(ang), Z: z})
		}
	}
	bottom := make([]int, n)
	top := make([]int, n)
	for k := 0; k < n; k++ {
		bottom[k] = n - 1 - k // outward-facing winding
		top[k] = n + k
	}
	faces := [][]int{bottom, top}
	for k := 0; k < n; k++ {
		next := (k + 1) % n
		faces = append(faces, []int{k, next, n + next, n + k})
	}
	return meshFromFaces(verts, faces), nil
}

// AntiprismMesh scales the uniform n-gonal-antiprism template: the top
// ring twisted by π/n, joined by the 2n-triangle band. The height is
// the uniform one, bound to the edge.
func AntiprismMesh(n int, edge float64) (Mesh, error) {
	m, err := NewAntiprismMetrics(n, edge)
	if err != nil {
		return Mesh{}, err
	}
	circum := edge / (2 * math.Sin(math.Pi/float64(n)))
	twist := math.Pi / float64(n)
	verts := make([]r3.Vec, 0, 2*n)
	for k := 0; k < n; k++ {
		ang := 2 * math.Pi * float64(k) / float64(n)
		verts = append(verts, r3.Vec{X: circum * math.Cos(ang), Y: circum * math.Sin(ang)})
	}
	for k := 0; k < n; k++ {
		ang := 2*math.Pi*float64(k)/float64(n) + twist
		verts = append(verts, r3.Vec{X: circum * math.Cos(ang), Y: circum * math.Sin(ang), Z: m.Height})
	}
	bottom := make([]int, n)
	top := make([]int, n)
	for k := 0; k < n; k++ {
		bottom[k] = n - 1 - k
		top[k] = n + k
	}
	faces := [][]int{bottom, top}
	for k := 0; k < n; k++ {
		next := (k + 1) % n
		faces = append(faces,
			[]int{k, next, n + k},
			[]int{next, n + next, n + k},
		)
	}
	return meshFromFaces(verts, faces), nil
}

// TesseractMesh scales the Schlegel cube-in-cube projection of the
// 4-cube: the outer cube at the solved edge, the inner cell at half
// scale, and the 12 connecting quads standing in for the remaining
// square faces (6 outer + 6 inner + 12 connecting = 24).
func TesseractMesh(edge float64) (Mesh, error) {
	if !geom.Positive(edge) {
		return Mesh{}, ErrDimension
	}
	verts := make([]r3.Vec, 0, TesseractVertices)
	for _, scale := range []float64{edge / 2, edge / 4} {
		for _, z := range []float64{-1, 1} {
			for _, corner := range [][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
				verts = append(verts, r3.Vec{X: scale * corner[0], Y: scale * corner[1], Z: scale * z})
			}
		}
	}
	cube := func(base int) [][]int {
		return [][]int{
			{base, base + 3, base + 2, base + 1},
			{base + 4, base + 5, base + 6, base + 7},
			{base, base + 1, base + 5, base + 4},
			{base + 1, base + 2, base + 6, base + 5},
			{base + 2, base + 3, base + 7, base + 6},
			{base + 3, base, base + 4, base + 7},
		}
	}
	faces := append(cube(0), cube(8)...)
	outer := meshFromFaces(verts[:8], cube(0))
	for _, e := range outer.Edges {
		faces = append(faces, []int{e[0], e[1], e[1] + 8, e[0] + 8})
	}
	return meshFromFaces(verts, faces), nil
}

// MeshFor projects a solved calculator into its scaled mesh. Families
// with an incomplete canonical dimension set report ErrUnsetParameter.
func MeshFor(s shape.Shape) (Mesh, error) {
	switch c := s.(type) {
	case *Pyramid:
		m, ok := c.Metrics()
		if !ok {
			return Mesh{}, fmt.Errorf("solid: mesh: pyramid unsolved: %w", shape.ErrUnsetParameter)
		}
		return PyramidMesh(m.BaseEdge, m.Height)
	case *Frustum:
		m, ok := c.Metrics()
		if !ok {
			return Mesh{}, fmt.Errorf("solid: mesh: frustum unsolved: %w", shape.ErrUnsetParameter)
		}
		return FrustumMesh(m.BaseEdge, m.TopEdge, m.Height)
	case *Prism:
		m, ok := c.Metrics()
		if !ok {
			return Mesh{}, fmt.Errorf("solid: mesh: prism unsolved: %w", shape.ErrUnsetParameter)
		}
		return PrismMesh(m.Sides, m.BaseEdge, m.Height)
	case *Antiprism:
		m, ok := c.Metrics()
		if !ok {
			return Mesh{}, fmt.Errorf("solid: mesh: antiprism unsolved: %w", shape.ErrUnsetParameter)
		}
		return AntiprismMesh(m.Sides, m.Edge)
	case *Uniform:
		m, ok := c.Metrics()
		if !ok {
			return Mesh{}, fmt.Errorf("solid: mesh: uniform solid unsolved: %w", shape.ErrUnsetParameter)
		}
		return PlatonicMesh(m.Name, m.Edge)
	case *Tesseract:
		m, ok := c.Metrics()
		if !ok {
			return Mesh{}, fmt.Errorf("solid: mesh: tesseract unsolved: %w", shape.ErrUnsetParameter)
		}
		return TesseractMesh(m.Edge)
	default:
		return Mesh{}, fmt.Errorf("solid: mesh: no template for %s: %w", s.Kind(), shape.ErrUnknownKey)
	}
}
