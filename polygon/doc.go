// Package polygon implements the irregular polygon: the forward-only
// family whose editable properties are its vertex coordinates.
//
// What:
//
//   - An Irregular polygon is created from an ordered point list (3 or
//     more vertices) and exposes per-vertex coordinate keys x0,y0,…;
//     coordinates are signed, so the positivity gate of the other
//     families does not apply to them.
//   - Area (shoelace), perimeter and the signed-area-weighted centroid
//     are recomputed after every coordinate edit; there is no inverse
//     solving anywhere in this family.
//
// Why:
//
//   - The 5+ point detection path and the irregular-quadrilateral
//     fallback need a shape that carries raw geometry without claiming
//     any canonical structure.
//
// Complexity: O(n) per edit over the vertex count.
//
// Errors: the shape package taxonomy; degenerate vertex chains reduce
// to zero area rather than erroring, matching the shoelace form.
package polygon
