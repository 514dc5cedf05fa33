// Package units declares the stock unit catalogue on quantity.Default.
//
// Responsibilities: magnitude marker types, unit marker types and their
// registered descriptors, the derived-unit relations between them, and
// the string-keyed speed helpers used by callers that receive unit names
// from configuration or the command line.
// Key types: Metres, Seconds, Kelvin, Celsius, Degrees, Radians,
// MetresPerSecond, Newtons, Joules and the relation aliases (Work,
// Distance, Moment, ...).
//
// Importing the package populates quantity.Default. It does not freeze the
// registry so that programs can add their own units first; cmd/measures
// freezes it once its catalogue file is applied.
//
// Dependency rule: units depends only on quantity.
package units
