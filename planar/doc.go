// Package planar implements the single-DOF shape families: one canonical
// parameter fully determines every property, so resolution is a one-pass
// closed-form recomputation with no iteration.
//
// What:
//
//   - Circle (with the chord/sagitta/arc secondary group), Square,
//     RegularPolygon(n), Annulus, Vesica, Rose(k), Ellipse, Crescent,
//     and the sacred-geometry composites SeedOfLife / FlowerOfLife.
//
// Why:
//
//   - These families admit exact inverse formulas: entering any editable
//     property converts it to the canonical parameter and rebuilds the
//     whole set, guaranteeing consistency after any single edit.
//
// Contract:
//
//   - Resolve(key, v) with v ≤ 0 fails with shape.ErrNonPositive and
//     mutates nothing.
//   - Secondary groups that need an already-known canonical parameter
//     (circle arc properties, the second annulus/ellipse axis) fail with
//     shape.ErrUnsetParameter while that parameter is unset.
//   - All failures are atomic: a candidate state is computed, gated,
//     and committed by value only on success.
//
// Complexity:
//
//   - Every Resolve is O(1); Catalog/Value/Snapshot are O(k).
//
// Errors:
//
//   - shape.ErrNonPositive, shape.ErrUnknownKey, shape.ErrUnsetParameter,
//     shape.ErrInfeasible (wrapped with family context), and the
//     constructor-only ErrBadOrder for n-gon/rose orders below minimum.
package planar
