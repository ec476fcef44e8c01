package shape

import "github.com/quantgeom/figura/geom"

// Shape is the resolver contract implemented by every family. The
// implementing set is closed (see Kind); callers reach family semantics
// only through this surface or the package-level boundary helpers.
//
// Contract:
//   - Resolve(key, v) either populates a fully self-consistent property
//     set or changes nothing and returns a sentinel error.
//   - Value never mutates. Clear resets every slot, not the catalog.
//   - Restore writes snapshot values verbatim (the persistence handoff),
//     with no validation beyond key membership.
type Shape interface {
	// Kind identifies the family.
	Kind() Kind
	// Catalog returns the static property rows in display order.
	Catalog() []Spec
	// Value returns the current value of key and whether it is set.
	// Unknown keys read as unset.
	Value(key string) (float64, bool)
	// Resolve stages key=v and derives every other property, or fails
	// atomically with ErrUnknownKey / ErrNonPositive /
	// ErrUnsetParameter / ErrInfeasible.
	Resolve(key string, v float64) error
	// Clear unsets every property value.
	Clear()
	// Restore writes a flat snapshot verbatim, replacing current state.
	Restore(snap map[string]float64) error
}

// SpecOf returns the catalog row for key.
// Complexity: O(k) over the catalog.
func SpecOf(s Shape, key string) (Spec, error) {
	for _, sp := range s.Catalog() {
		if sp.Key == key {
			return sp, nil
		}
	}

	return Spec{}, ErrUnknownKey
}

// ValidateValue runs the domain check for key=v without resolving:
// unknown keys and out-of-domain numerics are rejected, everything else
// passes. Realizability is the resolver's business, not this gate's.
// Complexity: O(k).
func ValidateValue(s Shape, key string, v float64) error {
	sp, err := SpecOf(s, key)
	if err != nil {
		return err
	}
	if sp.Signed {
		if !geom.Finite(v) {
			return ErrNonPositive
		}

		return nil
	}
	if !geom.Positive(v) {
		return ErrNonPositive
	}

	return nil
}

// Set is the caller-facing edit: it rejects unknown and readonly keys,
// runs the domain check, then delegates to Resolve. The all-or-nothing
// guarantee is therefore preserved end to end.
// Complexity: O(k) + the family's Resolve.
func Set(s Shape, key string, v float64) error {
	sp, err := SpecOf(s, key)
	if err != nil {
		return err
	}
	if sp.Readonly {
		return ErrReadonlyKey
	}
	if err = ValidateValue(s, key, v); err != nil {
		return err
	}

	return s.Resolve(key, v)
}

// Properties returns the populated catalog view in display order.
// Complexity: O(k²) worst case via Value lookups; k is tiny.
func Properties(s Shape) []Property {
	cat := s.Catalog()
	out := make([]Property, 0, len(cat))
	for _, sp := range cat {
		v, ok := s.Value(sp.Key)
		out = append(out, Property{Spec: sp, Value: v, Set: ok})
	}

	return out
}

// Editable returns the writable subset of Properties(s).
func Editable(s Shape) []Property {
	var out []Property
	for _, p := range Properties(s) {
		if !p.Readonly {
			out = append(out, p)
		}
	}

	return out
}

// Readonly returns the derived subset of Properties(s).
func Readonly(s Shape) []Property {
	var out []Property
	for _, p := range Properties(s) {
		if p.Readonly {
			out = append(out, p)
		}
	}

	return out
}

// ValueFunc adapts a family's slot accessor into the Value method:
// unknown keys and unset slots both read as (0, false).
func ValueFunc(slot func(string) *Scalar, key string) (float64, bool) {
	p := slot(key)
	if p == nil {
		return 0, false
	}

	return p.Get()
}

// ClearSlots unsets every catalog slot. Families implement Clear with it.
func ClearSlots(catalog []Spec, slot func(string) *Scalar) {
	for _, sp := range catalog {
		if p := slot(sp.Key); p != nil {
			p.Unset()
		}
	}
}

// RestoreSlots replaces family state with snap, verbatim. Keys outside
// the catalog fail with ErrBadSnapshot before anything is written, so a
// failed restore leaves prior state intact.
func RestoreSlots(catalog []Spec, slot func(string) *Scalar, snap map[string]float64) error {
	for key := range snap {
		if slot(key) == nil {
			return ErrBadSnapshot
		}
	}
	ClearSlots(catalog, slot)
	for key, v := range snap {
		slot(key).Set(v)
	}

	return nil
}
