// Package render projects solved shapes into drawing instructions and
// label positions for an external viewport.
//
// What:
//
//   - Project(s) walks the family kind and emits primitives (circles,
//     polygons, grouped unions) plus one label per populated property,
//     formatted with the catalog precision.
//   - Strictly a projection: every coordinate derives from already
//     solved property values and introduces no new computation beyond
//     arithmetic placement.
//
// Why:
//
//   - Keeping the drawing handoff outside the resolvers preserves the
//     one-way data flow: raw value → resolver → property map → drawing.
//
// Under-determined families draw what their basis pins down: the
// tangential quadrilateral has no unique vertex embedding, so it
// projects its incircle and labels only.
//
// Errors: families whose canonical values are still unset project to
// ErrUnsetParameter; kinds with no 2D projection (the solid
// calculators, which hand off meshes instead) report ErrUnknownKey.
package render
