package quantity

import "math"

// SignedAzimuth is an absolute direction folded into [-T/2, T/2), where T
// is one turn of the angular unit A. Unlike a Point1 of an angle, it never
// holds a value outside one revolution.
type SignedAzimuth[A AngularUnit, N SignedNumber] struct {
	v N
}

// UnsignedAzimuth is an absolute direction folded into [0, T).
type UnsignedAzimuth[A AngularUnit, N SignedNumber] struct {
	v N
}

func turnAs[A AngularUnit, N SignedNumber]() N {
	return fromFloat[N](turnOf[A]())
}

// normalizeSigned compares doubled values so that an odd integer turn
// keeps its half-open range.
func normalizeSigned[A AngularUnit, N SignedNumber](x N) N {
	return shortestTurn[A](remainder(x, turnAs[A, N]()))
}

func normalizeUnsigned[A AngularUnit, N SignedNumber](x N) N {
	turn := turnAs[A, N]()
	r := remainder(x, turn)
	if r < 0 {
		r += turn
		// A tiny negative float remainder can round up to a full turn.
		if r >= turn {
			r = 0
		}
	}
	return r
}

// shortestTurn wraps a value in (-T, T), such as the difference of two
// folded azimuths, into [-T/2, T/2). Exactly half a turn is reported as
// -T/2.
func shortestTurn[A AngularUnit, N SignedNumber](d N) N {
	turn := turnAs[A, N]()
	if 2*d < -turn {
		d += turn
	} else if 2*d >= turn {
		d -= turn
	}
	return d
}

// NewSignedAzimuth returns the direction v in A, folded into one turn.
func NewSignedAzimuth[A AngularUnit, N SignedNumber](v N) SignedAzimuth[A, N] {
	return SignedAzimuth[A, N]{v: normalizeSigned[A](v)}
}

// SignedAzimuthFromPoint folds an unbounded angle position into one turn.
func SignedAzimuthFromPoint[A AngularUnit, N SignedNumber](p Point1[A, N]) SignedAzimuth[A, N] {
	return NewSignedAzimuth[A](p.v)
}

// SignedAzimuthOf returns the direction of v, measured counter-clockwise
// from the x axis.
func SignedAzimuthOf[A AngularUnit, U Unit, N SignedNumber](v Vector2[U, N]) SignedAzimuth[A, N] {
	return NewSignedAzimuth[A](atan2As[A, N](v))
}

func atan2As[A AngularUnit, N SignedNumber, U Unit](v Vector2[U, N]) N {
	rad := math.Atan2(float64(v.y), float64(v.x))
	return fromFloat[N](rad * turnOf[A]() / (2 * math.Pi))
}

// Value returns the raw number.
func (a SignedAzimuth[A, N]) Value() N { return a.v }

// Unit returns the runtime descriptor of A.
func (a SignedAzimuth[A, N]) Unit() *UnitDef { return defOf[A]() }

// Angle returns the rotation from the zero direction to a.
func (a SignedAzimuth[A, N]) Angle() Vector1[A, N] { return Vector1[A, N]{v: a.v} }

// Point returns a as an unbounded angle position.
func (a SignedAzimuth[A, N]) Point() Point1[A, N] { return Point1[A, N]{v: a.v} }

// Unsigned returns the same direction folded into [0, T).
func (a SignedAzimuth[A, N]) Unsigned() UnsignedAzimuth[A, N] { return NewUnsignedAzimuth[A](a.v) }

// AddAssign turns a by d and refolds it into one turn.
func (a *SignedAzimuth[A, N]) AddAssign(d Vector1[A, N]) { a.v = normalizeSigned[A](a.v + d.v) }

// SubAssign turns a back by d and refolds it into one turn.
func (a *SignedAzimuth[A, N]) SubAssign(d Vector1[A, N]) { a.v = normalizeSigned[A](a.v - d.v) }

// Add returns a turned by d.
func (a SignedAzimuth[A, N]) Add(d Vector1[A, N]) SignedAzimuth[A, N] {
	return NewSignedAzimuth[A](a.v + d.v)
}

// Sub returns a turned by -d.
func (a SignedAzimuth[A, N]) Sub(d Vector1[A, N]) SignedAzimuth[A, N] {
	return NewSignedAzimuth[A](a.v - d.v)
}

// SubAzimuth returns the shortest signed rotation d with b+d == a.
func (a SignedAzimuth[A, N]) SubAzimuth(b SignedAzimuth[A, N]) Vector1[A, N] {
	return Vector1[A, N]{v: shortestTurn[A](a.v - b.v)}
}

// AngleDistance returns the unsigned shortest rotation between a and b,
// at most half a turn.
func (a SignedAzimuth[A, N]) AngleDistance(b SignedAzimuth[A, N]) Vector1[A, N] {
	return a.SubAzimuth(b).Norm()
}

// IsEqual reports whether a and b are within tol of each other, across
// the wrap-around.
func (a SignedAzimuth[A, N]) IsEqual(b SignedAzimuth[A, N], tol Vector1[A, N]) bool {
	return a.AngleDistance(b).v <= tol.v
}

// NewUnsignedAzimuth returns the direction v in A, folded into one turn.
func NewUnsignedAzimuth[A AngularUnit, N SignedNumber](v N) UnsignedAzimuth[A, N] {
	return UnsignedAzimuth[A, N]{v: normalizeUnsigned[A](v)}
}

// UnsignedAzimuthFromPoint folds an unbounded angle position into one turn.
func UnsignedAzimuthFromPoint[A AngularUnit, N SignedNumber](p Point1[A, N]) UnsignedAzimuth[A, N] {
	return NewUnsignedAzimuth[A](p.v)
}

// UnsignedAzimuthOf returns the direction of v, measured counter-clockwise
// from the x axis.
func UnsignedAzimuthOf[A AngularUnit, U Unit, N SignedNumber](v Vector2[U, N]) UnsignedAzimuth[A, N] {
	return NewUnsignedAzimuth[A](atan2As[A, N](v))
}

// Value returns the raw number.
func (a UnsignedAzimuth[A, N]) Value() N { return a.v }

// Unit returns the runtime descriptor of A.
func (a UnsignedAzimuth[A, N]) Unit() *UnitDef { return defOf[A]() }

// Angle returns the rotation from the zero direction to a.
func (a UnsignedAzimuth[A, N]) Angle() Vector1[A, N] { return Vector1[A, N]{v: a.v} }

// Point returns a as an unbounded angle position.
func (a UnsignedAzimuth[A, N]) Point() Point1[A, N] { return Point1[A, N]{v: a.v} }

// Signed returns the same direction folded into [-T/2, T/2).
func (a UnsignedAzimuth[A, N]) Signed() SignedAzimuth[A, N] { return NewSignedAzimuth[A](a.v) }

// AddAssign turns a by d and refolds it into one turn.
func (a *UnsignedAzimuth[A, N]) AddAssign(d Vector1[A, N]) { a.v = normalizeUnsigned[A](a.v + d.v) }

// SubAssign turns a back by d and refolds it into one turn.
func (a *UnsignedAzimuth[A, N]) SubAssign(d Vector1[A, N]) { a.v = normalizeUnsigned[A](a.v - d.v) }

// Add returns a turned by d.
func (a UnsignedAzimuth[A, N]) Add(d Vector1[A, N]) UnsignedAzimuth[A, N] {
	return NewUnsignedAzimuth[A](a.v + d.v)
}

// Sub returns a turned by -d.
func (a UnsignedAzimuth[A, N]) Sub(d Vector1[A, N]) UnsignedAzimuth[A, N] {
	return NewUnsignedAzimuth[A](a.v - d.v)
}

// SubAzimuth returns the shortest signed rotation d with b+d == a.
func (a UnsignedAzimuth[A, N]) SubAzimuth(b UnsignedAzimuth[A, N]) Vector1[A, N] {
	return Vector1[A, N]{v: shortestTurn[A](a.v - b.v)}
}

// AngleDistance returns the unsigned shortest rotation between a and b.
func (a UnsignedAzimuth[A, N]) AngleDistance(b UnsignedAzimuth[A, N]) Vector1[A, N] {
	return a.SubAzimuth(b).Norm()
}

// IsEqual reports whether a and b are within tol of each other.
func (a UnsignedAzimuth[A, N]) IsEqual(b UnsignedAzimuth[A, N], tol Vector1[A, N]) bool {
	return a.AngleDistance(b).v <= tol.v
}
