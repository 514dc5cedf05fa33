package quantity

import "errors"

var (
	// ErrIncompatibleUnits is returned when a conversion is requested between
	// units of different magnitudes.
	ErrIncompatibleUnits = errors.New("incompatible units")
	// ErrMagnitudeMismatch is returned when two dynamic quantities of
	// different magnitudes are combined.
	ErrMagnitudeMismatch = errors.New("magnitude mismatch")
	// ErrUnitMismatch is returned when two dynamic quantities share a
	// magnitude but not a unit. Convert one of them first.
	ErrUnitMismatch = errors.New("unit mismatch")
	// ErrNoRelation is returned when no derived-unit relation is registered
	// for a pair of units. The typed operators panic with it when their
	// relation is missing from Default or contradicts it.
	ErrNoRelation = errors.New("no registered relation")
	// ErrRegistryFrozen is returned by definitions made after Freeze.
	ErrRegistryFrozen = errors.New("registry is frozen")
	// ErrDuplicateName is returned when a magnitude, unit or alias name is
	// already taken.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrInvalidDefinition is returned for malformed magnitude or unit
	// definitions.
	ErrInvalidDefinition = errors.New("invalid definition")
	// ErrUnknownUnit is returned by lookups of unregistered names or
	// suffixes.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrNoUnit is returned when a dynamic quantity was built as a zero
	// value instead of through its constructor.
	ErrNoUnit = errors.New("quantity has no unit")
	// ErrParse is returned when text does not match the quantity format.
	ErrParse = errors.New("malformed quantity")
	// ErrSingularMap is returned when inverting a map with no inverse.
	ErrSingularMap = errors.New("map is not invertible")
)
