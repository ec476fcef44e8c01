// Package geom provides the 2D primitives shared by every resolver:
// tolerance-aware comparisons, circle–circle intersection, and the
// shoelace family of polygon measures.
//
// What:
//
//   - Vec helpers (Dist, Mid, PolarDeg) over gonum's r2.Vec.
//   - Circle with Intersect: the true geometric construction used by the
//     kite/dart resolver, with an explicit epsilon gate (Eps = 1e-7).
//   - SignedArea / Area / Perimeter / Centroid over ordered vertices.
//   - IsConvex and IsSimple predicates for independent cross-checks.
//
// Why:
//
//   - Resolvers must share one numeric policy: the same epsilon, the same
//     relative-tolerance helper, the same orientation conventions.
//   - Detection and rendering both walk raw vertex lists; the shoelace
//     forms live here so neither reimplements them.
//
// Complexity:
//
//   - Intersect: O(1). Polygon measures: O(n). IsSimple: O(n²).
//
// Errors:
//
//   - ErrNoIntersection: circle centers too far apart or one circle
//     contained in the other (beyond Eps).
//   - ErrConcentric: coincident centers admit zero or infinitely many
//     intersection points; both are rejected.
//   - ErrDegenerate: fewer than three vertices where a polygon is needed.
package geom
