// Package planar: shared constants and sentinel errors.
package planar

import "errors"

// ErrBadOrder indicates a structural order below the family minimum
// (regular polygon n < 3, rose k < 1). Orders are constructor arguments,
// not resolvable properties, so this never occurs during Resolve.
var ErrBadOrder = errors.New("planar: structural order below family minimum")

// degToRad converts degrees to radians.
const degToRad = 0.017453292519943295 // π/180

// fullTurnDeg is the angular domain bound for circle arc entry.
const fullTurnDeg = 360.0
