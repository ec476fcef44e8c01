// Package triangle implements the triangle families the detection
// service seeds: equilateral (single-DOF), right and isosceles (two
// basis lengths), and scalene (three sides, forward-only derivation).
//
// What:
//
//   - Equilateral: side ↔ perimeter ↔ area ↔ height ↔ inradius ↔
//     circumradius, all exact closed forms.
//   - Right: legs are the basis; the hypotenuse doubles as an inverse
//     entry once one leg is known.
//   - Isosceles: base and leg basis; gate leg > base/2.
//   - Scalene: three sides under the triangle-inequality gate; Heron
//     area and law-of-cosines angles.
//
// Contract: identical to the other resolver packages — v ≤ 0 fails with
// shape.ErrNonPositive, premature secondary entry fails with
// shape.ErrUnsetParameter, gate failures with shape.ErrInfeasible, and
// every failure leaves state untouched.
//
// Complexity: every Resolve is O(1).
package triangle
