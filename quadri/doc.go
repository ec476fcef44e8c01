// Package quadri implements the multi-DOF quadrilateral resolvers:
// families whose 2–5 basis properties are connected by simultaneous
// algebraic rules rather than a single closed form.
//
// What:
//
//   - Parallelogram, Rhombus, Trapezoid, IsoscelesTrapezoid, Rectangle:
//     staging + a bounded fixed-point loop — each pass applies every
//     "two of three known ⇒ derive the third" rule and the loop stops
//     when a pass derives nothing new (at most one unknown is fixed per
//     successful pass, so passes ≤ basis size).
//   - Kite / Dart: a true geometric construction — the fourth vertex is
//     a circle–circle intersection with a deterministic branch rule.
//   - Cyclic / Tangential / Bicentric quadrilaterals: Brahmagupta's
//     formula and Pitot's theorem as realizability gates.
//   - ByDiagonals: the ½·p·q·sin θ family.
//
// Why:
//
//   - These shapes are under-determined until enough basis values
//     arrive; the resolver must both infer what it can and refuse to
//     commit anything a realizability gate rejects.
//
// Contract:
//
//   - Resolution is all-or-nothing: rules run on a candidate state and
//     the candidate replaces the live state only after every gate
//     passes. A failed edit leaves the map exactly as it was.
//   - Consistency gates use relative tolerance 1e-4; the construction
//     reachability gate uses geom.Eps (1e-7).
//   - Over-determined edits (staging a value whose relation partners are
//     all already known) are accepted only when consistent within 1e-4;
//     otherwise shape.ErrInfeasible. Clear first to re-specify.
//
// Complexity:
//
//   - Every Resolve is O(1) or bounded by the basis size (≤ 5 passes).
//
// Errors: the shape package taxonomy, wrapped with family context.
package quadri
