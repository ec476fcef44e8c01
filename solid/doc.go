// Package solid implements the 3D metric calculators: square pyramid,
// square frustum, regular prisms and antiprisms, the table-driven
// uniform-solid catalog (Platonic five plus an Archimedean subset) and
// the tesseract, together with the deterministic mesh generator that
// scales each solid's vertex/edge/face template by its solved
// dimensions.
//
// What:
//
//   - Every solid is split into an immutable Metrics value object built
//     by a low-level constructor (NewPyramidMetrics etc.) and an
//     interactive calculator implementing the shape contract. A resolve
//     never mutates metrics in place: a new Metrics is built from the
//     canonical dimension set and swapped in whole.
//   - Inverse entry is explicit switch dispatch: each derived key names
//     the canonical dimension it needs and the algebraic inverse that
//     recovers the missing one. Out-of-domain input (negative radicand,
//     slant at or below the apothem) is rejected with the prior state
//     intact.
//   - Mesh templates are pure projections: fixed topology per solid
//     class, scaled by the solved dimensions, with no feedback into the
//     solving contract.
//
// Why:
//
//   - Rebuilding the whole metric set from the canonical dimensions
//     after any single-field edit keeps every derived value consistent
//     by construction.
//
// Complexity:
//
//   - Every resolve and metrics build is O(1); mesh generation is
//     O(V + E + F) of the fixed template.
//
// Errors: the shape package taxonomy, wrapped with solid context; the
// low-level Metrics constructors return plain errors on non-positive
// dimensions, which the calculators pre-empt by validating first.
package solid
