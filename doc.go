// Package figura is a constraint-based geometric property resolver:
// for every supported 2D/3D shape family a small set of named numeric
// properties is related by closed-form or simultaneous algebraic
// equations, and entering any one of them derives all the others.
//
// 🚀 What is figura?
//
//	A deterministic, synchronous library that brings together:
//		• Property model: typed slots behind a closed per-family state
//		• Single-DOF resolvers: circle, square, n-gon, annulus, vesica,
//		  rose, ellipse, crescent, sacred-geometry composites
//		• Multi-DOF resolvers: parallelogram, rhombus, trapezoids,
//		  kite/dart, cyclic/tangential/bicentric quadrilaterals
//		• 3D calculators: pyramids, frustums, prisms, antiprisms,
//		  Platonic/Archimedean solids, tesseract — with inverse entry
//		• Shape detection: classify 3–5 raw points into the best family
//		• Render projection: drawing primitives + label positions
//
// ✨ Why choose figura?
//
//   - All-or-nothing edits – every resolve either populates a fully
//     consistent property set or leaves the shape untouched
//   - Explicit failure taxonomy – errors.Is-testable sentinels for
//     unknown keys, non-positive input and geometric infeasibility
//   - Pure Go – bounded iteration only, no I/O, no hidden state
//
// Under the hood, everything is organized in flat subpackages:
//
//	geom/     — 2D primitives: circle intersection, shoelace, tolerances
//	shape/    — property catalog, Shape contract, JSON snapshots
//	planar/   — single-DOF families (closed-form, one pass)
//	triangle/ — triangle families seeded by detection
//	quadri/   — multi-DOF quadrilaterals (fixed-point + gates)
//	solid/    — 3D metric calculators and mesh templates
//	polygon/  — forward-only irregular polygon
//	detect/   — point-set classification service
//	render/   — drawing/label projection for a viewport
//
// Shape instances are independently owned and unshared: concurrent
// resolves on distinct instances need no coordination, while concurrent
// resolves on the same instance are undefined — callers serialize.
//
//	go get github.com/quantgeom/figura
package figura
