package quantity

import "fmt"

// Point1 is an absolute one-dimensional position measured in U: a
// temperature reading, an instant, a position on a line. Points only
// support affine operations; they cannot be scaled or added together.
type Point1[U Unit, N Number] struct {
	v N
}

// NewPoint1 returns the position v in U.
func NewPoint1[U Unit, N Number](v N) Point1[U, N] {
	return Point1[U, N]{v: v}
}

// Value returns the raw number.
func (p Point1[U, N]) Value() N { return p.v }

// SetValue replaces the raw number.
func (p *Point1[U, N]) SetValue(x N) { p.v = x }

// Unit returns the runtime descriptor of U.
func (p Point1[U, N]) Unit() *UnitDef { return defOf[U]() }

// AddAssign moves p by v in place.
func (p *Point1[U, N]) AddAssign(v Vector1[U, N]) { p.v += v.v }

// SubAssign moves p by -v in place.
func (p *Point1[U, N]) SubAssign(v Vector1[U, N]) { p.v -= v.v }

// Add returns p moved by v.
func (p Point1[U, N]) Add(v Vector1[U, N]) Point1[U, N] { return Point1[U, N]{v: p.v + v.v} }

// Sub returns p moved by -v.
func (p Point1[U, N]) Sub(v Vector1[U, N]) Point1[U, N] { return Point1[U, N]{v: p.v - v.v} }

// SubPoint returns the displacement p-q.
func (p Point1[U, N]) SubPoint(q Point1[U, N]) Vector1[U, N] { return Vector1[U, N]{v: p.v - q.v} }

// Cmp returns -1, 0 or +1 as p is less than, equal to or greater than q.
func (p Point1[U, N]) Cmp(q Point1[U, N]) int {
	return cmpValue(p.v, q.v)
}

// Less reports whether p < q.
func (p Point1[U, N]) Less(q Point1[U, N]) bool { return p.v < q.v }

// LessOrEqual reports whether p <= q.
func (p Point1[U, N]) LessOrEqual(q Point1[U, N]) bool { return p.v <= q.v }

// Greater reports whether p > q.
func (p Point1[U, N]) Greater(q Point1[U, N]) bool { return p.v > q.v }

// GreaterOrEqual reports whether p >= q.
func (p Point1[U, N]) GreaterOrEqual(q Point1[U, N]) bool { return p.v >= q.v }

// IsEqual reports whether p and q are within tol of each other.
func (p Point1[U, N]) IsEqual(q Point1[U, N], tol Vector1[U, N]) bool {
	return absDiff(p.v, q.v) <= tol.v
}

// IsLess reports whether p is below q by more than tol.
func (p Point1[U, N]) IsLess(q Point1[U, N], tol Vector1[U, N]) bool {
	return p.v+tol.v < q.v
}

// IsLessOrEqual reports whether p does not exceed q by more than tol.
func (p Point1[U, N]) IsLessOrEqual(q Point1[U, N], tol Vector1[U, N]) bool {
	return p.v <= q.v+tol.v
}

// Midpoint returns the point halfway between p and q.
func (p Point1[U, N]) Midpoint(q Point1[U, N]) Point1[U, N] {
	return Point1[U, N]{v: midValue(p.v, q.v)}
}

// midValue halves the gap on the correct side so unsigned kinds never wrap.
func midValue[N Number](a, b N) N {
	if b >= a {
		return a + (b-a)/2
	}
	return a - (a-b)/2
}

// MidpointWeighted returns p*(1-w) + q*w: p for w=0, q for w=1.
func (p Point1[U, N]) MidpointWeighted(q Point1[U, N], w N) Point1[U, N] {
	return Point1[U, N]{v: p.v*(1-w) + q.v*w}
}

// BarycentricCombination1 returns Σ weights[i]*points[i]. The weights
// should sum to one; this is not checked. It panics if the slices differ
// in length.
func BarycentricCombination1[U Unit, N Number](points []Point1[U, N], weights []N) Point1[U, N] {
	checkBarycentric(len(points), len(weights))
	var sum N
	for i, p := range points {
		sum += weights[i] * p.v
	}
	return Point1[U, N]{v: sum}
}

func checkBarycentric(points, weights int) {
	if points != weights {
		panic(fmt.Sprintf("quantity: barycentric combination of %d points with %d weights", points, weights))
	}
}
