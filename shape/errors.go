package shape

import "errors"

// Sentinel errors shared by every family package. The original contract
// communicates failure as a bare boolean; here each failure class is an
// errors.Is-testable sentinel, and family packages add context by
// wrapping (fmt.Errorf("quadri: kite: %w", ErrInfeasible)).
var (
	// ErrUnknownKey indicates a property key absent from the catalog.
	ErrUnknownKey = errors.New("shape: unknown property key")
	// ErrReadonlyKey indicates a direct write to a derived property.
	ErrReadonlyKey = errors.New("shape: property is read-only")
	// ErrNonPositive indicates a non-positive or non-finite input value.
	ErrNonPositive = errors.New("shape: value must be positive and finite")
	// ErrUnsetParameter indicates a secondary entry that requires a
	// canonical parameter which has not been resolved yet.
	ErrUnsetParameter = errors.New("shape: required canonical parameter is unset")
	// ErrInfeasible indicates locally valid input with no realizable
	// solution for the family (failed realizability gate).
	ErrInfeasible = errors.New("shape: no geometrically realizable solution")
	// ErrBadSnapshot indicates a snapshot holding keys outside the catalog.
	ErrBadSnapshot = errors.New("shape: snapshot key not in catalog")
	// ErrPointCount indicates a detection input outside the 3..n range.
	ErrPointCount = errors.New("shape: unsupported number of points")
)
