package planar

import (
	"math"

	"github.com/quantgeom/figura/geom"
	"github.com/quantgeom/figura/shape"
)

// roseState is the closed slot set of the rose-curve family.
type roseState struct {
	amplitude, petalLength, petalCount, area shape.Scalar
}

// Rose resolves the polar rose r = a·cos(kθ). The harmonic k is
// structural; the amplitude a is the single canonical parameter.
//
// Enclosed area: πa²/2 for even k (2k petals), πa²/4 for odd k (k petals).
type Rose struct {
	k  int
	st roseState
}

// NewRose returns a rose curve of harmonic k ≥ 1 with metric properties
// unset; the petal count derives from k alone and is populated
// immediately.
func NewRose(k int) (*Rose, error) {
	if k < 1 {
		return nil, ErrBadOrder
	}
	r := &Rose{k: k}
	r.st.petalCount.Set(float64(r.petals()))

	return r, nil
}

var roseCatalog = []shape.Spec{
	{Key: "amplitude", Name: "Amplitude", Unit: "u", Precision: 4},
	{Key: "petal_length", Name: "Petal length", Unit: "u", Precision: 4},
	{Key: "area", Name: "Enclosed area", Unit: "u²", Precision: 4},
	{Key: "petal_count", Name: "Petal count", Unit: "", Precision: 0, Readonly: true},
}

// Harmonic returns the structural k.
func (r *Rose) Harmonic() int { return r.k }

func (r *Rose) petals() int {
	if r.k%2 == 0 {
		return 2 * r.k
	}

	return r.k
}

func (r *Rose) areaCoeff() float64 {
	if r.k%2 == 0 {
		return math.Pi / 2
	}

	return math.Pi / 4
}

func (r *Rose) Kind() shape.Kind      { return shape.KindRose }
func (r *Rose) Catalog() []shape.Spec { return roseCatalog }

func (r *Rose) slot(key string) *shape.Scalar {
	switch key {
	case "amplitude":
		return &r.st.amplitude
	case "petal_length":
		return &r.st.petalLength
	case "area":
		return &r.st.area
	case "petal_count":
		return &r.st.petalCount
	default:
		return nil
	}
}

func (r *Rose) Value(key string) (float64, bool) { return shape.ValueFunc(r.slot, key) }

func (r *Rose) Clear() {
	shape.ClearSlots(roseCatalog, r.slot)
	r.st.petalCount.Set(float64(r.petals()))
}

func (r *Rose) Restore(snap map[string]float64) error {
	return shape.RestoreSlots(roseCatalog, r.slot, snap)
}

// Resolve converts key=v to the canonical amplitude and rebuilds the set.
// Complexity: O(1).
func (r *Rose) Resolve(key string, v float64) error {
	if !geom.Positive(v) {
		return shape.ErrNonPositive
	}
	var a float64
	switch key {
	case "amplitude", "petal_length":
		a = v
	case "area":
		a = math.Sqrt(v / r.areaCoeff())
	default:
		return shape.ErrUnknownKey
	}

	next := roseState{
		amplitude:   shape.Some(a),
		petalLength: shape.Some(a),
		area:        shape.Some(r.areaCoeff() * a * a),
		petalCount:  r.st.petalCount,
	}
	r.st = next

	return nil
}
