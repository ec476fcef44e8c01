// Package quadri: shared numeric policy for the multi-DOF resolvers.
package quadri

// consistencyTol is the relative tolerance of every realizability and
// over-determination gate in this package (leg/base-offset sums, Pitot,
// staged-triple agreement).
const consistencyTol = 1e-4

// degToRad converts degrees to radians.
const degToRad = 0.017453292519943295 // π/180

// halfTurnDeg and fullTurnDeg bound the angle domains of the convex and
// concave families.
const (
	halfTurnDeg = 180.0
	fullTurnDeg = 360.0
)
