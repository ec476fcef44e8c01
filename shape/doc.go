// Package shape defines the property model and the resolver contract
// every figura family implements, plus the generic key/value boundary
// used by UI bindings, persistence and the CLI.
//
// What:
//
//   - Spec / Property: static catalog rows and their populated view.
//     Catalog order is display order and carries no semantics.
//   - Scalar: an optional numeric slot. Family state is a fixed struct
//     of Scalars — a closed, compile-time-checked set of fields — never
//     a string-keyed map. The generic accessor lives only here, at the
//     binding boundary.
//   - Shape: the closed resolver interface (Kind, Catalog, Value,
//     Resolve, Clear, Restore). The set of implementing types is the
//     fixed family catalogue enumerated by Kind.
//   - Boundary helpers: Set, ValidateValue, Properties, Editable,
//     Readonly, Snapshot, MarshalSnapshot, UnmarshalSnapshot.
//
// Why:
//
//   - Every edit must be all-or-nothing: Resolve computes a candidate
//     state, gates it, and commits by value only on success. The helpers
//     here enforce the outer half of that contract (unknown keys,
//     readonly keys, domain checks) before any family code runs.
//
// Concurrency:
//
//   - Shape instances are independently owned and unshared. Concurrent
//     resolves on distinct instances need no coordination; concurrent
//     use of one instance is undefined — callers serialize. No internal
//     locking, matching the synchronous single-owner design.
//
// Complexity:
//
//   - All helpers are O(k) in the catalog size k (k ≤ a dozen or so).
//
// Errors:
//
//   - ErrUnknownKey, ErrReadonlyKey, ErrNonPositive, ErrUnsetParameter,
//     ErrInfeasible, ErrBadSnapshot, ErrPointCount — the full failure
//     taxonomy shared by every family package.
package shape
