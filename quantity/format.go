package quantity

import (
	"fmt"
	"strings"
)

// Text forms, with the unit suffix written verbatim after the numbers:
//
//	vector1         2.5 m
//	point1          [2.5] m
//	vector2/3       1 2 3 m
//	point2/3        [1 2 3] m
//	signed azimuth  S-90°
//	unsigned        U270°
//	dynamic         D 2.5 m, D [1 2] m, ...
//
// Numbers use the shortest representation that parses back to the same
// value, so every Parse function inverts the matching String method.

func joinValues[N Number](vals ...N) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}

func formatVector[N Number](suffix string, vals ...N) string {
	return joinValues(vals...) + suffix
}

func formatPoint[N Number](suffix string, vals ...N) string {
	return "[" + joinValues(vals...) + "]" + suffix
}

// String returns the text form, e.g. "2.5 m".
func (v Vector1[U, N]) String() string { return formatVector(defOf[U]().suffix, v.v) }

// String returns the text form, e.g. "[2.5] m".
func (p Point1[U, N]) String() string { return formatPoint(defOf[U]().suffix, p.v) }

// String returns the text form, e.g. "1 2 m".
func (v Vector2[U, N]) String() string { return formatVector(defOf[U]().suffix, v.x, v.y) }

// String returns the text form, e.g. "[1 2] m".
func (p Point2[U, N]) String() string { return formatPoint(defOf[U]().suffix, p.x, p.y) }

// String returns the text form, e.g. "1 2 3 m".
func (v Vector3[U, N]) String() string { return formatVector(defOf[U]().suffix, v.x, v.y, v.z) }

// String returns the text form, e.g. "[1 2 3] m".
func (p Point3[U, N]) String() string { return formatPoint(defOf[U]().suffix, p.x, p.y, p.z) }

// String returns the text form, e.g. "S-90°".
func (a SignedAzimuth[A, N]) String() string {
	return "S" + formatVector(defOf[A]().suffix, a.v)
}

// String returns the text form, e.g. "U270°".
func (a UnsignedAzimuth[A, N]) String() string {
	return "U" + formatVector(defOf[A]().suffix, a.v)
}

const dynPrefix = "D "

// suffixOf marks a zero-value dynamic quantity with a suffix no registry
// can define, so its text form never parses back.
func suffixOf(u *UnitDef) string {
	if u == nil {
		return " <no unit>"
	}
	return u.suffix
}

// String returns the text form, e.g. "D 2.5 m".
func (d DynVector1[N]) String() string { return dynPrefix + formatVector(suffixOf(d.unit), d.v) }

// String returns the text form, e.g. "D [2.5] m".
func (p DynPoint1[N]) String() string { return dynPrefix + formatPoint(suffixOf(p.unit), p.v) }

// String returns the text form, e.g. "D 1 2 m".
func (d DynVector2[N]) String() string { return dynPrefix + formatVector(suffixOf(d.unit), d.x, d.y) }

// String returns the text form, e.g. "D [1 2] m".
func (p DynPoint2[N]) String() string { return dynPrefix + formatPoint(suffixOf(p.unit), p.x, p.y) }

// String returns the text form, e.g. "D 1 2 3 m".
func (d DynVector3[N]) String() string {
	return dynPrefix + formatVector(suffixOf(d.unit), d.x, d.y, d.z)
}
// String returns the text form, e.g. "D [1 2 3] m".
func (p DynPoint3[N]) String() string {
	return dynPrefix + formatPoint(suffixOf(p.unit), p.x, p.y, p.z)
}
