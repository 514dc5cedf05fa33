package quantity

// Vector2 is a relative two-dimensional quantity whose components share
// the unit U.
type Vector2[U Unit, N Number] struct {
	x, y N
}

// NewVector2 returns the vector (x, y) in U.
func NewVector2[U Unit, N Number](x, y N) Vector2[U, N] {
	return Vector2[U, N]{x: x, y: y}
}

// X returns the x component.
func (v Vector2[U, N]) X() Vector1[U, N] { return Vector1[U, N]{v: v.x} }

// Y returns the y component.
func (v Vector2[U, N]) Y() Vector1[U, N] { return Vector1[U, N]{v: v.y} }

// SetX replaces the x component.
func (v *Vector2[U, N]) SetX(c Vector1[U, N]) { v.x = c.v }

// SetY replaces the y component.
func (v *Vector2[U, N]) SetY(c Vector1[U, N]) { v.y = c.v }

// Values returns the raw components.
func (v Vector2[U, N]) Values() (x, y N) { return v.x, v.y }

// Unit returns the runtime descriptor of U.
func (v Vector2[U, N]) Unit() *UnitDef { return defOf[U]() }

// Neg returns the opposite vector.
func (v Vector2[U, N]) Neg() Vector2[U, N] { return Vector2[U, N]{x: -v.x, y: -v.y} }

// AddAssign adds w to v in place.
func (v *Vector2[U, N]) AddAssign(w Vector2[U, N]) { v.x += w.x; v.y += w.y }

// SubAssign subtracts w from v in place.
func (v *Vector2[U, N]) SubAssign(w Vector2[U, N]) { v.x -= w.x; v.y -= w.y }

// ScaleAssign multiplies every component by k in place.
func (v *Vector2[U, N]) ScaleAssign(k N) { v.x *= k; v.y *= k }

// DivAssign divides every component by k in place.
func (v *Vector2[U, N]) DivAssign(k N) { v.x /= k; v.y /= k }

// Add returns v+w.
func (v Vector2[U, N]) Add(w Vector2[U, N]) Vector2[U, N] {
	return Vector2[U, N]{x: v.x + w.x, y: v.y + w.y}
}

// Sub returns v-w.
func (v Vector2[U, N]) Sub(w Vector2[U, N]) Vector2[U, N] {
	return Vector2[U, N]{x: v.x - w.x, y: v.y - w.y}
}

// Scale multiplies every component by k.
func (v Vector2[U, N]) Scale(k N) Vector2[U, N] { return Vector2[U, N]{x: v.x * k, y: v.y * k} }

// Div divides every component by k.
func (v Vector2[U, N]) Div(k N) Vector2[U, N] { return Vector2[U, N]{x: v.x / k, y: v.y / k} }

// SquaredNormValue returns x²+y² as a raw number.
func (v Vector2[U, N]) SquaredNormValue() N { return v.x*v.x + v.y*v.y }

// Norm returns the Euclidean length of v.
func (v Vector2[U, N]) Norm() Vector1[U, N] { return Vector1[U, N]{v: sqrt(v.SquaredNormValue())} }

// Normalized returns v scaled to unit length.
func (v Vector2[U, N]) Normalized() Vector2[U, N] { return v.Div(sqrt(v.SquaredNormValue())) }

// IsEqual reports whether |v-w| <= tol.
func (v Vector2[U, N]) IsEqual(w Vector2[U, N], tol Vector1[U, N]) bool {
	dx, dy := absDiff(v.x, w.x), absDiff(v.y, w.y)
	return dx*dx+dy*dy <= tol.v*tol.v
}

// MappedBy applies the linear map m. Vectors have no position, so only
// linear maps apply; see Point2.MappedBy for affine maps.
func (v Vector2[U, N]) MappedBy(m LinearMap2) Vector2[U, N] {
	x, y := m.apply(float64(v.x), float64(v.y))
	return Vector2[U, N]{x: fromFloat[N](x), y: fromFloat[N](y)}
}
