// Package detect classifies a raw point set (3–5+ ordered vertices)
// into the most specific canonical family and seeds a resolver for it.
//
// What:
//
//   - Classify measures the side (and diagonal) lengths of the point
//     set and tests family predicates in a fixed priority order; the
//     first match wins, so a shape satisfying several predicates always
//     resolves to the most specific one.
//   - 3 points: equilateral → isosceles (split right/plain by
//     base ≈ leg·√2) → right → scalene.
//   - 4 points: square → rectangle → rhombus → parallelogram →
//     irregular quadrilateral.
//   - 5 or more: irregular polygon, forward-only.
//   - The returned shape is already seeded through the resolver
//     contract, so its derived properties are populated.
//
// Why:
//
//   - Tolerances are measurement policy, not geometry; they live in
//     Options so boundary behavior is testable instead of hard-coded.
//
// Complexity: O(1) for 3–4 points, O(n) for the polygon path.
//
// Errors: shape.ErrPointCount below three points; seeding failures
// propagate the resolver's own taxonomy.
package detect
