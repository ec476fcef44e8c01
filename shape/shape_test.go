package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantgeom/figura/shape"
)

// stub is a minimal two-slot family (edge → area) used to exercise the
// boundary helpers without pulling a real resolver package in.
type stub struct {
	edge, area shape.Scalar
}

var stubCatalog = []shape.Spec{
	{Key: "edge", Name: "Edge", Unit: "u", Precision: 4},
	{Key: "area", Name: "Area", Unit: "u²", Precision: 4, Readonly: true},
}

func (s *stub) Kind() shape.Kind     { return shape.KindSquare }
func (s *stub) Catalog() []shape.Spec { return stubCatalog }

func (s *stub) slot(key string) *shape.Scalar {
	switch key {
	case "edge":
		return &s.edge
	case "area":
		return &s.area
	default:
		return nil
	}
}

func (s *stub) Value(key string) (float64, bool) { return shape.ValueFunc(s.slot, key) }
func (s *stub) Clear()                           { shape.ClearSlots(stubCatalog, s.slot) }

func (s *stub) Restore(snap map[string]float64) error {
	return shape.RestoreSlots(stubCatalog, s.slot, snap)
}

func (s *stub) Resolve(key string, v float64) error {
	if key != "edge" {
		return shape.ErrUnknownKey
	}
	s.edge.Set(v)
	s.area.Set(v * v)

	return nil
}

// TestSet_RejectsUnknownAndReadonly covers the outer gate of every edit.
func TestSet_RejectsUnknownAndReadonly(t *testing.T) {
	s := &stub{}

	err := shape.Set(s, "bogus", 1)
	assert.ErrorIs(t, err, shape.ErrUnknownKey)

	err = shape.Set(s, "area", 16)
	assert.ErrorIs(t, err, shape.ErrReadonlyKey)

	_, ok := s.Value("area")
	assert.False(t, ok, "failed edits must not mutate")
}

// TestSet_RejectsNonPositive covers the InvalidValue class.
func TestSet_RejectsNonPositive(t *testing.T) {
	s := &stub{}
	for _, v := range []float64{0, -3} {
		err := shape.Set(s, "edge", v)
		assert.ErrorIs(t, err, shape.ErrNonPositive, "v=%v", v)
	}
	_, ok := s.Value("edge")
	assert.False(t, ok)
}

// TestValidateValue distinguishes domain checks from resolution.
func TestValidateValue(t *testing.T) {
	s := &stub{}
	assert.NoError(t, shape.ValidateValue(s, "edge", 2))
	assert.ErrorIs(t, shape.ValidateValue(s, "edge", -2), shape.ErrNonPositive)
	assert.ErrorIs(t, shape.ValidateValue(s, "nope", 2), shape.ErrUnknownKey)

	// ValidateValue may pass values Resolve later rejects; it never resolves.
	_, ok := s.Value("edge")
	assert.False(t, ok)
}

// TestProperties_ViewsAndOrder checks display order and the editable /
// readonly split.
func TestProperties_ViewsAndOrder(t *testing.T) {
	s := &stub{}
	require.NoError(t, shape.Set(s, "edge", 4))

	props := shape.Properties(s)
	require.Len(t, props, 2)
	assert.Equal(t, "edge", props[0].Key, "catalog order is display order")
	assert.Equal(t, 16.0, props[1].Value)

	ed := shape.Editable(s)
	require.Len(t, ed, 1)
	assert.Equal(t, "edge", ed[0].Key)

	ro := shape.Readonly(s)
	require.Len(t, ro, 1)
	assert.Equal(t, "area", ro[0].Key)
}

// TestSnapshot_RoundTrip exercises the flat JSON persistence handoff.
func TestSnapshot_RoundTrip(t *testing.T) {
	s := &stub{}
	require.NoError(t, shape.Set(s, "edge", 5))

	data, err := shape.MarshalSnapshot(s)
	require.NoError(t, err)

	fresh := &stub{}
	require.NoError(t, shape.UnmarshalSnapshot(fresh, data))

	v, ok := fresh.Value("area")
	assert.True(t, ok)
	assert.Equal(t, 25.0, v, "snapshot restores verbatim")
}

// TestRestore_UnknownKeyAtomic ensures a bad snapshot changes nothing.
func TestRestore_UnknownKeyAtomic(t *testing.T) {
	s := &stub{}
	require.NoError(t, shape.Set(s, "edge", 3))

	err := s.Restore(map[string]float64{"edge": 1, "bogus": 2})
	assert.ErrorIs(t, err, shape.ErrBadSnapshot)

	v, ok := s.Value("edge")
	assert.True(t, ok)
	assert.Equal(t, 3.0, v, "failed restore must keep prior state")
}

// TestClear_KeepsCatalog checks Clear resets values, not structure.
func TestClear_KeepsCatalog(t *testing.T) {
	s := &stub{}
	require.NoError(t, shape.Set(s, "edge", 2))
	s.Clear()

	_, ok := s.Value("edge")
	assert.False(t, ok)
	assert.Len(t, s.Catalog(), 2)
}

// TestScalar_ZeroValueUnset pins the Scalar contract.
func TestScalar_ZeroValueUnset(t *testing.T) {
	var sc shape.Scalar
	assert.False(t, sc.OK())

	sc.Set(7)
	v, ok := sc.Get()
	assert.True(t, ok)
	assert.Equal(t, 7.0, v)

	sc.Unset()
	assert.False(t, sc.OK())
	assert.Equal(t, 0.0, sc.Val())

	assert.True(t, shape.Some(1).OK())
}

// TestKind_Strings pins a few stable identifiers.
func TestKind_Strings(t *testing.T) {
	assert.Equal(t, "circle", shape.KindCircle.String())
	assert.Equal(t, "cyclic_quadrilateral", shape.KindCyclicQuadrilateral.String())
	assert.Equal(t, "unknown", shape.Kind(-1).String())
}
