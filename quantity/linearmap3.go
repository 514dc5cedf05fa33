package quantity

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// LinearMap3 is a linear transformation of space vectors. The zero value
// is the identity.
type LinearMap3 struct {
	m *mat.Dense
}

func linearMap3(rows ...float64) LinearMap3 {
	return LinearMap3{m: mat.NewDense(3, 3, rows)}
}

func (l LinearMap3) dense() *mat.Dense { return orIdentity(l.m, 3) }

func (l LinearMap3) apply(x, y, z float64) (float64, float64, float64) {
	return apply3(l.dense(), x, y, z)
}

// At returns the coefficient at row i, column j.
func (l LinearMap3) At(i, j int) float64 { return l.dense().At(i, j) }

// Then returns the map that applies l and then next.
func (l LinearMap3) Then(next LinearMap3) LinearMap3 {
	return LinearMap3{m: compose(l.dense(), next.dense())}
}

// Inverse returns the inverse map. Projections have none.
func (l LinearMap3) Inverse() (LinearMap3, error) {
	inv, err := invert(l.dense())
	if err != nil {
		return LinearMap3{}, err
	}
	return LinearMap3{m: inv}, nil
}

func unit3[U Unit, N Number](v Vector3[U, N]) r3.Vec {
	return r3.Unit(r3.Vec{X: float64(v.x), Y: float64(v.y), Z: float64(v.z)})
}

// NewRotation3 returns the right-handed rotation by angle around axis.
func NewRotation3[D Unit, ND Number, A AngularUnit, N Number](axis Vector3[D, ND], angle Vector1[A, N]) LinearMap3 {
	rot := r3.NewRotation(radians(angle), r3.Vec{X: float64(axis.x), Y: float64(axis.y), Z: float64(axis.z)})
	// The columns of the matrix are the images of the basis vectors.
	ex := rot.Rotate(r3.Vec{X: 1})
	ey := rot.Rotate(r3.Vec{Y: 1})
	ez := rot.Rotate(r3.Vec{Z: 1})
	return linearMap3(
		ex.X, ey.X, ez.X,
		ex.Y, ey.Y, ez.Y,
		ex.Z, ey.Z, ez.Z,
	)
}

// NewRotationX3 rotates around the x axis.
func NewRotationX3[A AngularUnit, N Number](angle Vector1[A, N]) LinearMap3 {
	sin, cos := math.Sincos(radians(angle))
	return linearMap3(
		1, 0, 0,
		0, cos, -sin,
		0, sin, cos,
	)
}

// NewRotationY3 rotates around the y axis.
func NewRotationY3[A AngularUnit, N Number](angle Vector1[A, N]) LinearMap3 {
	sin, cos := math.Sincos(radians(angle))
	return linearMap3(
		cos, 0, sin,
		0, 1, 0,
		-sin, 0, cos,
	)
}

// NewRotationZ3 rotates around the z axis.
func NewRotationZ3[A AngularUnit, N Number](angle Vector1[A, N]) LinearMap3 {
	sin, cos := math.Sincos(radians(angle))
	return linearMap3(
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	)
}

// outer returns k·u·uᵀ + d·I.
func outer(u r3.Vec, k, d float64) LinearMap3 {
	return linearMap3(
		k*u.X*u.X+d, k*u.X*u.Y, k*u.X*u.Z,
		k*u.Y*u.X, k*u.Y*u.Y+d, k*u.Y*u.Z,
		k*u.Z*u.X, k*u.Z*u.Y, k*u.Z*u.Z+d,
	)
}

// NewProjectionOntoLine3 projects onto the line through the origin with
// direction dir.
func NewProjectionOntoLine3[U Unit, N Number](dir Vector3[U, N]) LinearMap3 {
	return outer(unit3(dir), 1, 0)
}

// NewProjectionOntoPlane3 projects onto the plane through the origin with
// the given normal.
func NewProjectionOntoPlane3[U Unit, N Number](normal Vector3[U, N]) LinearMap3 {
	return outer(unit3(normal), -1, 1)
}

// NewReflectionOverLine3 reflects over the line through the origin with
// direction dir.
func NewReflectionOverLine3[U Unit, N Number](dir Vector3[U, N]) LinearMap3 {
	return outer(unit3(dir), 2, -1)
}

// NewReflectionOverPlane3 reflects over the plane through the origin with
// the given normal.
func NewReflectionOverPlane3[U Unit, N Number](normal Vector3[U, N]) LinearMap3 {
	return outer(unit3(normal), -2, 1)
}

// NewScaling3 scales each component independently.
func NewScaling3(kx, ky, kz float64) LinearMap3 {
	return linearMap3(
		kx, 0, 0,
		0, ky, 0,
		0, 0, kz,
	)
}

// AffineMap3 is an affine transformation of space points whose
// translation is expressed in U. The zero value is the identity.
type AffineMap3[U Unit] struct {
	m *mat.Dense
}

func (a AffineMap3[U]) dense() *mat.Dense { return orIdentity(a.m, 4) }

func (a AffineMap3[U]) apply(x, y, z float64) (float64, float64, float64) {
	return apply3(a.dense(), x, y, z)
}

// Affine3 lifts a linear map to an affine map about the origin of U.
func Affine3[U Unit](l LinearMap3) AffineMap3[U] {
	return AffineMap3[U]{m: homogeneous(l.dense(), []float64{0, 0, 0})}
}

// NewTranslation3 returns the map that moves every point by v.
func NewTranslation3[U Unit, N Number](v Vector3[U, N]) AffineMap3[U] {
	return AffineMap3[U]{m: homogeneous(identities[3], []float64{float64(v.x), float64(v.y), float64(v.z)})}
}

// Around3 applies l about center instead of the origin.
func Around3[U Unit, N Number](center Point3[U, N], l LinearMap3) AffineMap3[U] {
	cx, cy, cz := float64(center.x), float64(center.y), float64(center.z)
	tx, ty, tz := apply3(l.dense(), cx, cy, cz)
	return AffineMap3[U]{m: homogeneous(l.dense(), []float64{cx - tx, cy - ty, cz - tz})}
}

// At returns the homogeneous coefficient at row i, column j.
func (a AffineMap3[U]) At(i, j int) float64 { return a.dense().At(i, j) }

// Linear returns the linear part of a.
func (a AffineMap3[U]) Linear() LinearMap3 { return LinearMap3{m: linearPart(a.dense(), 3)} }

// Then returns the map that applies a and then next.
func (a AffineMap3[U]) Then(next AffineMap3[U]) AffineMap3[U] {
	return AffineMap3[U]{m: compose(a.dense(), next.dense())}
}

// Inverse returns the inverse map.
func (a AffineMap3[U]) Inverse() (AffineMap3[U], error) {
	inv, err := invert(a.dense())
	if err != nil {
		return AffineMap3[U]{}, err
	}
	return AffineMap3[U]{m: inv}, nil
}
