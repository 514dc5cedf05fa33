package quantity

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// LinearMap2 is a linear transformation of plane vectors: rotation,
// projection, reflection, scaling or a composition of them. The zero
// value is the identity.
type LinearMap2 struct {
	m *mat.Dense
}

func linearMap2(a, b, c, d float64) LinearMap2 {
	return LinearMap2{m: mat.NewDense(2, 2, []float64{a, b, c, d})}
}

func (l LinearMap2) dense() *mat.Dense { return orIdentity(l.m, 2) }

func (l LinearMap2) apply(x, y float64) (float64, float64) { return apply2(l.dense(), x, y) }

// At returns the coefficient at row i, column j.
func (l LinearMap2) At(i, j int) float64 { return l.dense().At(i, j) }

// Then returns the map that applies l and then next.
func (l LinearMap2) Then(next LinearMap2) LinearMap2 {
	return LinearMap2{m: compose(l.dense(), next.dense())}
}

// Inverse returns the inverse map. Projections have none.
func (l LinearMap2) Inverse() (LinearMap2, error) {
	inv, err := invert(l.dense())
	if err != nil {
		return LinearMap2{}, err
	}
	return LinearMap2{m: inv}, nil
}

// NewRotation2 returns the counter-clockwise rotation by angle.
func NewRotation2[A AngularUnit, N Number](angle Vector1[A, N]) LinearMap2 {
	sin, cos := math.Sincos(radians(angle))
	return linearMap2(cos, -sin, sin, cos)
}

// NewRotationFromAzimuth2 returns the rotation that takes the direction
// of the zero azimuth to the direction of az.
func NewRotationFromAzimuth2[A AngularUnit, N SignedNumber](az SignedAzimuth[A, N]) LinearMap2 {
	return NewRotation2(az.Angle())
}

// unit2 normalises a direction vector of any unit.
func unit2[U Unit, N Number](dir Vector2[U, N]) r2.Vec {
	return r2.Unit(r2.Vec{X: float64(dir.x), Y: float64(dir.y)})
}

// NewProjection2 returns the orthogonal projection onto the line through
// the origin with direction dir.
func NewProjection2[U Unit, N Number](dir Vector2[U, N]) LinearMap2 {
	u := unit2(dir)
	return linearMap2(u.X*u.X, u.X*u.Y, u.X*u.Y, u.Y*u.Y)
}

// NewReflection2 returns the reflection over the line through the origin
// with direction dir.
func NewReflection2[U Unit, N Number](dir Vector2[U, N]) LinearMap2 {
	u := unit2(dir)
	return linearMap2(2*u.X*u.X-1, 2*u.X*u.Y, 2*u.X*u.Y, 2*u.Y*u.Y-1)
}

// NewScaling2 scales the x and y components independently.
func NewScaling2(kx, ky float64) LinearMap2 {
	return linearMap2(kx, 0, 0, ky)
}

// AffineMap2 is an affine transformation of plane points whose
// translation is expressed in U. The zero value is the identity.
type AffineMap2[U Unit] struct {
	m *mat.Dense
}

func (a AffineMap2[U]) dense() *mat.Dense { return orIdentity(a.m, 3) }

func (a AffineMap2[U]) apply(x, y float64) (float64, float64) { return apply2(a.dense(), x, y) }

// Affine2 lifts a linear map to an affine map about the origin of U.
func Affine2[U Unit](l LinearMap2) AffineMap2[U] {
	return AffineMap2[U]{m: homogeneous(l.dense(), []float64{0, 0})}
}

// NewTranslation2 returns the map that moves every point by v.
func NewTranslation2[U Unit, N Number](v Vector2[U, N]) AffineMap2[U] {
	return AffineMap2[U]{m: homogeneous(identities[2], []float64{float64(v.x), float64(v.y)})}
}

// Around2 applies l about center instead of the origin, e.g. a rotation
// around a point or a reflection over a line through it.
func Around2[U Unit, N Number](center Point2[U, N], l LinearMap2) AffineMap2[U] {
	cx, cy := float64(center.x), float64(center.y)
	tx, ty := apply2(l.dense(), cx, cy)
	return AffineMap2[U]{m: homogeneous(l.dense(), []float64{cx - tx, cy - ty})}
}

// At returns the homogeneous coefficient at row i, column j.
func (a AffineMap2[U]) At(i, j int) float64 { return a.dense().At(i, j) }

// Linear returns the linear part of a.
func (a AffineMap2[U]) Linear() LinearMap2 { return LinearMap2{m: linearPart(a.dense(), 2)} }

// Then returns the map that applies a and then next.
func (a AffineMap2[U]) Then(next AffineMap2[U]) AffineMap2[U] {
	return AffineMap2[U]{m: compose(a.dense(), next.dense())}
}

// Inverse returns the inverse map.
func (a AffineMap2[U]) Inverse() (AffineMap2[U], error) {
	inv, err := invert(a.dense())
	if err != nil {
		return AffineMap2[U]{}, err
	}
	return AffineMap2[U]{m: inv}, nil
}
