package solid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/quantgeom/figura/geom"
)

// Canonical Platonic templates. Tetrahedron, cube, octahedron and
// icosahedron carry exact unit coordinates with hand-checked face
// lists; the dodecahedron is derived once as the icosahedron's dual
// (face centroids, pentagon per vertex), the same construction that
// keeps the two templates consistent by definition.

// goldenRatio scales the icosahedral coordinate family.
var goldenRatio = (1 + math.Sqrt(5)) / 2

type platonicTemplate struct {
	verts []r3.Vec
	faces [][]int
}

var platonicTemplates = map[string]platonicTemplate{
	// Alternating cube corners; edge 2√2.
	"tetrahedron": {
		verts: []r3.Vec{
			{X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: -1},
			{X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1},
		},
		faces: [][]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}},
	},

	// (±1,±1,±1); edge 2. Bottom ring 0–3, top ring 4–7.
	"cube": {
		verts: []r3.Vec{
			{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
		},
		faces: [][]int{
			{0, 3, 2, 1}, {4, 5, 6, 7},
			{0, 1, 5, 4}, {1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7},
		},
	},

	// Axis vertices; edge √2. Poles 4 (up) and 5 (down).
	"octahedron": {
		verts: []r3.Vec{
			{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
		},
		faces: [][]int{
			{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
			{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
		},
	},

	// (0,±1,±φ) family; edge 2. The canonical 20-face list.
	"icosahedron": {
		verts: []r3.Vec{
			{X: -1, Y: goldenRatio}, {X: 1, Y: goldenRatio},
			{X: -1, Y: -goldenRatio}, {X: 1, Y: -goldenRatio},
			{Y: -1, Z: goldenRatio}, {Y: 1, Z: goldenRatio},
			{Y: -1, Z: -goldenRatio}, {Y: 1, Z: -goldenRatio},
			{X: goldenRatio, Z: -1}, {X: goldenRatio, Z: 1},
			{X: -goldenRatio, Z: -1}, {X: -goldenRatio, Z: 1},
		},
		faces: [][]int{
			{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
			{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
			{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
			{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
		},
	},
}

func init() {
	ico := platonicTemplates["icosahedron"]
	verts, faces := dualTemplate(ico.verts, ico.faces)
	platonicTemplates["dodecahedron"] = platonicTemplate{verts: verts, faces: faces}
}

// dualTemplate builds the dual polyhedron: one vertex per face (its
// centroid), one face per original vertex (the incident faces walked in
// shared-edge order).
func dualTemplate(verts []r3.Vec, faces [][]int) ([]r3.Vec, [][]int) {
	centroids := make([]r3.Vec, len(faces))
	for i, face := range faces {
		var c r3.Vec
		for _, v := range face {
			c = r3.Add(c, verts[v])
		}
		centroids[i] = r3.Scale(1/float64(len(face)), c)
	}

	shared := func(a, b []int) int {
		n := 0
		for _, u := range a {
			for _, v := range b {
				if u == v {
					n++
				}
			}
		}
		return n
	}

	dualFaces := make([][]int, len(verts))
	for v := range verts {
		var incident []int
		for fi, face := range faces {
			for _, u := range face {
				if u == v {
					incident = append(incident, fi)
					break
				}
			}
		}
		// Walk the incident faces so consecutive entries share an edge;
		// the lowest-index start keeps the walk deterministic.
		ordered := incident[:1]
		rest := append([]int(nil), incident[1:]...)
		for len(rest) > 0 {
			cur := ordered[len(ordered)-1]
			next := -1
			for i, fi := range rest {
				if shared(faces[cur], faces[fi]) == 2 {
					next = i
					break
				}
			}
			ordered = append(ordered, rest[next])
			rest = append(rest[:next], rest[next+1:]...)
		}
		dualFaces[v] = ordered
	}

	return centroids, dualFaces
}

// PlatonicMesh scales the named Platonic template to the requested edge
// length.
func PlatonicMesh(name string, edge float64) (Mesh, error) {
	tpl, ok := platonicTemplates[name]
	if !ok {
		return Mesh{}, fmt.Errorf("solid: mesh: no platonic template %q", name)
	}
	if !geom.Positive(edge) {
		return Mesh{}, ErrDimension
	}

	mesh := meshFromFaces(tpl.verts, tpl.faces)
	first := mesh.Edges[0]
	current := r3.Norm(r3.Sub(tpl.verts[first[0]], tpl.verts[first[1]]))
	scale := edge / current

	scaled := make([]r3.Vec, len(tpl.verts))
	for i, v := range tpl.verts {
		scaled[i] = r3.Scale(scale, v)
	}
	mesh.Vertices = scaled

	return mesh, nil
}
