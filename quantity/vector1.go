package quantity

// Vector1 is a relative one-dimensional quantity measured in U: a length,
// a duration, a temperature difference. Vector1 values of one (U, N) pair
// form a vector space.
type Vector1[U Unit, N Number] struct {
	v N
}

// NewVector1 returns v units of U.
func NewVector1[U Unit, N Number](v N) Vector1[U, N] {
	return Vector1[U, N]{v: v}
}

// Value returns the raw number.
func (v Vector1[U, N]) Value() N { return v.v }

// SetValue replaces the raw number.
func (v *Vector1[U, N]) SetValue(x N) { v.v = x }

// Unit returns the runtime descriptor of U.
func (v Vector1[U, N]) Unit() *UnitDef { return defOf[U]() }

// Neg returns -v.
func (v Vector1[U, N]) Neg() Vector1[U, N] { return Vector1[U, N]{v: -v.v} }

// AddAssign adds w to v in place.
func (v *Vector1[U, N]) AddAssign(w Vector1[U, N]) { v.v += w.v }

// SubAssign subtracts w from v in place.
func (v *Vector1[U, N]) SubAssign(w Vector1[U, N]) { v.v -= w.v }

// ScaleAssign multiplies v by k in place.
func (v *Vector1[U, N]) ScaleAssign(k N) { v.v *= k }

// DivAssign divides v by k in place.
func (v *Vector1[U, N]) DivAssign(k N) { v.v /= k }

// Add returns v+w.
func (v Vector1[U, N]) Add(w Vector1[U, N]) Vector1[U, N] { return Vector1[U, N]{v: v.v + w.v} }

// Sub returns v-w.
func (v Vector1[U, N]) Sub(w Vector1[U, N]) Vector1[U, N] { return Vector1[U, N]{v: v.v - w.v} }

// Scale returns v*k.
func (v Vector1[U, N]) Scale(k N) Vector1[U, N] { return Vector1[U, N]{v: v.v * k} }

// Div returns v/k.
func (v Vector1[U, N]) Div(k N) Vector1[U, N] { return Vector1[U, N]{v: v.v / k} }

// Ratio returns v/w. Both share a unit so the result is a plain number.
func (v Vector1[U, N]) Ratio(w Vector1[U, N]) N { return v.v / w.v }

// Cmp returns -1, 0 or +1 as v is less than, equal to or greater than w.
func (v Vector1[U, N]) Cmp(w Vector1[U, N]) int { return cmpValue(v.v, w.v) }

// Less reports whether v < w.
func (v Vector1[U, N]) Less(w Vector1[U, N]) bool { return v.v < w.v }

// LessOrEqual reports whether v <= w.
func (v Vector1[U, N]) LessOrEqual(w Vector1[U, N]) bool { return v.v <= w.v }

// Greater reports whether v > w.
func (v Vector1[U, N]) Greater(w Vector1[U, N]) bool { return v.v > w.v }

// GreaterOrEqual reports whether v >= w.
func (v Vector1[U, N]) GreaterOrEqual(w Vector1[U, N]) bool { return v.v >= w.v }

// IsEqual reports whether |v-w| <= tol. It is symmetric in v and w.
func (v Vector1[U, N]) IsEqual(w, tol Vector1[U, N]) bool {
	return absDiff(v.v, w.v) <= tol.v
}

// IsLess reports whether v is below w by more than tol.
func (v Vector1[U, N]) IsLess(w, tol Vector1[U, N]) bool {
	return v.v+tol.v < w.v
}

// IsLessOrEqual reports whether v does not exceed w by more than tol.
func (v Vector1[U, N]) IsLessOrEqual(w, tol Vector1[U, N]) bool {
	return v.v <= w.v+tol.v
}

// SquaredNormValue returns v², as a raw number.
func (v Vector1[U, N]) SquaredNormValue() N { return v.v * v.v }

// Norm returns |v|.
func (v Vector1[U, N]) Norm() Vector1[U, N] { return Vector1[U, N]{v: abs(v.v)} }

// Normalized returns v/|v|: +1 or -1 in U. A zero vector yields NaN for
// float kinds, as with any division by zero.
func (v Vector1[U, N]) Normalized() Vector1[U, N] { return Vector1[U, N]{v: v.v / abs(v.v)} }
