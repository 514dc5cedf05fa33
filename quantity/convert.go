package quantity

import "fmt"

// conversion maps values of one unit onto another of the same magnitude.
// Relative values are only rescaled; absolute values are also shifted by
// the difference of the unit origins.
type conversion struct {
	same  bool
	scale float64
	shift float64
}

func conversionBetween(from, to *UnitDef) conversion {
	if from == to {
		return conversion{same: true, scale: 1}
	}
	return conversion{
		scale: from.ratio / to.ratio,
		shift: (from.offset - to.offset) / to.ratio,
	}
}

func convertVector[N Number](c conversion, x N) N {
	if c.same {
		return x
	}
	return fromFloat[N](float64(x) * c.scale)
}

func convertPoint[N Number](c conversion, x N) N {
	if c.same {
		return x
	}
	return fromFloat[N](float64(x)*c.scale + c.shift)
}

// staticConversion panics when a marker's Def belongs to another
// magnitude than the marker it embeds, since the UnitOf constraint only
// sees the marker.
func staticConversion[From, To Unit]() conversion {
	from, to := defOf[From](), defOf[To]()
	if !Compatible(from, to) {
		var f From
		var t To
		panic(fmt.Errorf("quantity: %T (%s) and %T (%s) share a magnitude marker but not a magnitude: %w",
			f, describe(from), t, describe(to), ErrIncompatibleUnits))
	}
	return conversionBetween(from, to)
}

// checkConvertible is the runtime counterpart of the UnitOf constraint.
func checkConvertible(from, to *UnitDef) error {
	if from == nil || to == nil {
		return fmt.Errorf("%s to %s: %w: %w", describe(from), describe(to), ErrNoUnit, ErrIncompatibleUnits)
	}
	if !Compatible(from, to) {
		return fmt.Errorf("%s to %s: %w", describe(from), describe(to), ErrIncompatibleUnits)
	}
	return nil
}

func describe(u *UnitDef) string {
	if u == nil {
		return "<nil unit>"
	}
	return fmt.Sprintf("%s (%s)", u.name, u.magnitude.name)
}

// ConvertVector1 expresses v in To. The magnitude marker M must be given
// explicitly and both units must belong to it:
//
//	m := quantity.ConvertVector1[units.Length, units.Metres](km)
func ConvertVector1[M any, To UnitOf[M], From UnitOf[M], N Number](v Vector1[From, N]) Vector1[To, N] {
	return Vector1[To, N]{v: convertVector(staticConversion[From, To](), v.v)}
}

// ConvertPoint1 expresses p in To, shifting it by the difference of the
// unit origins.
func ConvertPoint1[M any, To UnitOf[M], From UnitOf[M], N Number](p Point1[From, N]) Point1[To, N] {
	return Point1[To, N]{v: convertPoint(staticConversion[From, To](), p.v)}
}

// ConvertVector2 is ConvertVector1 applied to every component.
func ConvertVector2[M any, To UnitOf[M], From UnitOf[M], N Number](v Vector2[From, N]) Vector2[To, N] {
	c := staticConversion[From, To]()
	return Vector2[To, N]{x: convertVector(c, v.x), y: convertVector(c, v.y)}
}

// ConvertPoint2 is ConvertPoint1 applied to every component.
func ConvertPoint2[M any, To UnitOf[M], From UnitOf[M], N Number](p Point2[From, N]) Point2[To, N] {
	c := staticConversion[From, To]()
	return Point2[To, N]{x: convertPoint(c, p.x), y: convertPoint(c, p.y)}
}

// ConvertVector3 is ConvertVector1 applied to every component.
func ConvertVector3[M any, To UnitOf[M], From UnitOf[M], N Number](v Vector3[From, N]) Vector3[To, N] {
	c := staticConversion[From, To]()
	return Vector3[To, N]{x: convertVector(c, v.x), y: convertVector(c, v.y), z: convertVector(c, v.z)}
}

// ConvertPoint3 is ConvertPoint1 applied to every component.
func ConvertPoint3[M any, To UnitOf[M], From UnitOf[M], N Number](p Point3[From, N]) Point3[To, N] {
	c := staticConversion[From, To]()
	return Point3[To, N]{x: convertPoint(c, p.x), y: convertPoint(c, p.y), z: convertPoint(c, p.z)}
}

// ConvertSignedAzimuth expresses a in To and refolds it into one turn of To.
func ConvertSignedAzimuth[To, From AngularUnit, N SignedNumber](a SignedAzimuth[From, N]) SignedAzimuth[To, N] {
	return NewSignedAzimuth[To](convertPoint(staticConversion[From, To](), a.v))
}

// ConvertUnsignedAzimuth expresses a in To and refolds it into one turn of To.
func ConvertUnsignedAzimuth[To, From AngularUnit, N SignedNumber](a UnsignedAzimuth[From, N]) UnsignedAzimuth[To, N] {
	return NewUnsignedAzimuth[To](convertPoint(staticConversion[From, To](), a.v))
}

// CastVector1 changes the numeric representation of v, keeping its unit.
// Conversions follow Go's rules: floats truncate towards zero when cast to
// integers.
func CastVector1[To Number, U Unit, From Number](v Vector1[U, From]) Vector1[U, To] {
	return Vector1[U, To]{v: To(v.v)}
}

// CastPoint1 is CastVector1 for positions.
func CastPoint1[To Number, U Unit, From Number](p Point1[U, From]) Point1[U, To] {
	return Point1[U, To]{v: To(p.v)}
}

// CastVector2 casts every component like CastVector1.
func CastVector2[To Number, U Unit, From Number](v Vector2[U, From]) Vector2[U, To] {
	return Vector2[U, To]{x: To(v.x), y: To(v.y)}
}

// CastPoint2 casts every component like CastVector1.
func CastPoint2[To Number, U Unit, From Number](p Point2[U, From]) Point2[U, To] {
	return Point2[U, To]{x: To(p.x), y: To(p.y)}
}

// CastVector3 casts every component like CastVector1.
func CastVector3[To Number, U Unit, From Number](v Vector3[U, From]) Vector3[U, To] {
	return Vector3[U, To]{x: To(v.x), y: To(v.y), z: To(v.z)}
}

// CastPoint3 casts every component like CastVector1.
func CastPoint3[To Number, U Unit, From Number](p Point3[U, From]) Point3[U, To] {
	return Point3[U, To]{x: To(p.x), y: To(p.y), z: To(p.z)}
}

// CastSignedAzimuth changes the numeric representation of a and refolds
// the result, since truncation can land on the upper bound.
func CastSignedAzimuth[To SignedNumber, A AngularUnit, From SignedNumber](a SignedAzimuth[A, From]) SignedAzimuth[A, To] {
	return NewSignedAzimuth[A](To(a.v))
}

// CastUnsignedAzimuth is CastSignedAzimuth for unsigned azimuths.
func CastUnsignedAzimuth[To SignedNumber, A AngularUnit, From SignedNumber](a UnsignedAzimuth[A, From]) UnsignedAzimuth[A, To] {
	return NewUnsignedAzimuth[A](To(a.v))
}

// NewVector1From builds a Vector1 of U from a value expressed in a unit
// chosen at run time. It fails with ErrIncompatibleUnits when unit does
// not measure U's magnitude.
func NewVector1From[U Unit, N Number](unit *UnitDef, v N) (Vector1[U, N], error) {
	to := defOf[U]()
	if err := checkConvertible(unit, to); err != nil {
		return Vector1[U, N]{}, err
	}
	return Vector1[U, N]{v: convertVector(conversionBetween(unit, to), v)}, nil
}

// NewPoint1From is NewVector1From for positions; the unit offset applies.
func NewPoint1From[U Unit, N Number](unit *UnitDef, v N) (Point1[U, N], error) {
	to := defOf[U]()
	if err := checkConvertible(unit, to); err != nil {
		return Point1[U, N]{}, err
	}
	return Point1[U, N]{v: convertPoint(conversionBetween(unit, to), v)}, nil
}

// NewVector2From is NewVector1From for 2-D vectors.
func NewVector2From[U Unit, N Number](unit *UnitDef, x, y N) (Vector2[U, N], error) {
	to := defOf[U]()
	if err := checkConvertible(unit, to); err != nil {
		return Vector2[U, N]{}, err
	}
	c := conversionBetween(unit, to)
	return Vector2[U, N]{x: convertVector(c, x), y: convertVector(c, y)}, nil
}

// NewPoint2From is NewPoint1From for 2-D positions.
func NewPoint2From[U Unit, N Number](unit *UnitDef, x, y N) (Point2[U, N], error) {
	to := defOf[U]()
	if err := checkConvertible(unit, to); err != nil {
		return Point2[U, N]{}, err
	}
	c := conversionBetween(unit, to)
	return Point2[U, N]{x: convertPoint(c, x), y: convertPoint(c, y)}, nil
}

// NewVector3From is NewVector1From for 3-D vectors.
func NewVector3From[U Unit, N Number](unit *UnitDef, x, y, z N) (Vector3[U, N], error) {
	to := defOf[U]()
	if err := checkConvertible(unit, to); err != nil {
		return Vector3[U, N]{}, err
	}
	c := conversionBetween(unit, to)
	return Vector3[U, N]{x: convertVector(c, x), y: convertVector(c, y), z: convertVector(c, z)}, nil
}

// NewPoint3From is NewPoint1From for 3-D positions.
func NewPoint3From[U Unit, N Number](unit *UnitDef, x, y, z N) (Point3[U, N], error) {
	to := defOf[U]()
	if err := checkConvertible(unit, to); err != nil {
		return Point3[U, N]{}, err
	}
	c := conversionBetween(unit, to)
	return Point3[U, N]{x: convertPoint(c, x), y: convertPoint(c, y), z: convertPoint(c, z)}, nil
}

// NewSignedAzimuthFrom builds an azimuth of A from a direction expressed
// in a runtime angular unit.
func NewSignedAzimuthFrom[A AngularUnit, N SignedNumber](unit *UnitDef, v N) (SignedAzimuth[A, N], error) {
	to := defOf[A]()
	if err := checkConvertible(unit, to); err != nil {
		return SignedAzimuth[A, N]{}, err
	}
	return NewSignedAzimuth[A](convertPoint(conversionBetween(unit, to), v)), nil
}

// NewUnsignedAzimuthFrom is NewSignedAzimuthFrom for unsigned azimuths.
func NewUnsignedAzimuthFrom[A AngularUnit, N SignedNumber](unit *UnitDef, v N) (UnsignedAzimuth[A, N], error) {
	to := defOf[A]()
	if err := checkConvertible(unit, to); err != nil {
		return UnsignedAzimuth[A, N]{}, err
	}
	return NewUnsignedAzimuth[A](convertPoint(conversionBetween(unit, to), v)), nil
}
