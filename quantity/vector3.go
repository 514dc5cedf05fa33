package quantity

// Vector3 is a relative three-dimensional quantity whose components share
// the unit U.
type Vector3[U Unit, N Number] struct {
	x, y, z N
}

// NewVector3 returns the vector (x, y, z) in U.
func NewVector3[U Unit, N Number](x, y, z N) Vector3[U, N] {
	return Vector3[U, N]{x: x, y: y, z: z}
}

// X returns the x component.
func (v Vector3[U, N]) X() Vector1[U, N] { return Vector1[U, N]{v: v.x} }

// Y returns the y component.
func (v Vector3[U, N]) Y() Vector1[U, N] { return Vector1[U, N]{v: v.y} }

// Z returns the z component.
func (v Vector3[U, N]) Z() Vector1[U, N] { return Vector1[U, N]{v: v.z} }

// SetX replaces the x component.
func (v *Vector3[U, N]) SetX(c Vector1[U, N]) { v.x = c.v }

// SetY replaces the y component.
func (v *Vector3[U, N]) SetY(c Vector1[U, N]) { v.y = c.v }

// SetZ replaces the z component.
func (v *Vector3[U, N]) SetZ(c Vector1[U, N]) { v.z = c.v }

// Values returns the raw components.
func (v Vector3[U, N]) Values() (x, y, z N) { return v.x, v.y, v.z }

// Unit returns the runtime descriptor of U.
func (v Vector3[U, N]) Unit() *UnitDef { return defOf[U]() }

// Neg returns the opposite vector.
func (v Vector3[U, N]) Neg() Vector3[U, N] { return Vector3[U, N]{x: -v.x, y: -v.y, z: -v.z} }

// AddAssign adds w to v in place.
func (v *Vector3[U, N]) AddAssign(w Vector3[U, N]) { v.x += w.x; v.y += w.y; v.z += w.z }

// SubAssign subtracts w from v in place.
func (v *Vector3[U, N]) SubAssign(w Vector3[U, N]) { v.x -= w.x; v.y -= w.y; v.z -= w.z }

// ScaleAssign multiplies every component by k in place.
func (v *Vector3[U, N]) ScaleAssign(k N) { v.x *= k; v.y *= k; v.z *= k }

// DivAssign divides every component by k in place.
func (v *Vector3[U, N]) DivAssign(k N) { v.x /= k; v.y /= k; v.z /= k }

// Add returns v+w.
func (v Vector3[U, N]) Add(w Vector3[U, N]) Vector3[U, N] {
	return Vector3[U, N]{x: v.x + w.x, y: v.y + w.y, z: v.z + w.z}
}

// Sub returns v-w.
func (v Vector3[U, N]) Sub(w Vector3[U, N]) Vector3[U, N] {
	return Vector3[U, N]{x: v.x - w.x, y: v.y - w.y, z: v.z - w.z}
}

// Scale multiplies every component by k.
func (v Vector3[U, N]) Scale(k N) Vector3[U, N] {
	return Vector3[U, N]{x: v.x * k, y: v.y * k, z: v.z * k}
}

// Div divides every component by k.
func (v Vector3[U, N]) Div(k N) Vector3[U, N] {
	return Vector3[U, N]{x: v.x / k, y: v.y / k, z: v.z / k}
}

// SquaredNormValue returns x²+y²+z² as a raw number.
func (v Vector3[U, N]) SquaredNormValue() N { return v.x*v.x + v.y*v.y + v.z*v.z }

// Norm returns the Euclidean length of v.
func (v Vector3[U, N]) Norm() Vector1[U, N] { return Vector1[U, N]{v: sqrt(v.SquaredNormValue())} }

// Normalized returns v scaled to unit length.
func (v Vector3[U, N]) Normalized() Vector3[U, N] { return v.Div(sqrt(v.SquaredNormValue())) }

// IsEqual reports whether |v-w| <= tol.
func (v Vector3[U, N]) IsEqual(w Vector3[U, N], tol Vector1[U, N]) bool {
	dx, dy, dz := absDiff(v.x, w.x), absDiff(v.y, w.y), absDiff(v.z, w.z)
	return dx*dx+dy*dy+dz*dz <= tol.v*tol.v
}

// MappedBy applies the linear map m.
func (v Vector3[U, N]) MappedBy(m LinearMap3) Vector3[U, N] {
	x, y, z := m.apply(float64(v.x), float64(v.y), float64(v.z))
	return Vector3[U, N]{x: fromFloat[N](x), y: fromFloat[N](y), z: fromFloat[N](z)}
}
