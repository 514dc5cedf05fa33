package quantity

// Point2 is an absolute position in a plane, both coordinates in U.
type Point2[U Unit, N Number] struct {
	x, y N
}

// NewPoint2 returns the point (x, y) in U.
func NewPoint2[U Unit, N Number](x, y N) Point2[U, N] {
	return Point2[U, N]{x: x, y: y}
}

// X returns the x coordinate.
func (p Point2[U, N]) X() Point1[U, N] { return Point1[U, N]{v: p.x} }

// Y returns the y coordinate.
func (p Point2[U, N]) Y() Point1[U, N] { return Point1[U, N]{v: p.y} }

// SetX replaces the x coordinate.
func (p *Point2[U, N]) SetX(c Point1[U, N]) { p.x = c.v }

// SetY replaces the y coordinate.
func (p *Point2[U, N]) SetY(c Point1[U, N]) { p.y = c.v }

// Values returns the raw coordinates.
func (p Point2[U, N]) Values() (x, y N) { return p.x, p.y }

// Unit returns the runtime descriptor of U.
func (p Point2[U, N]) Unit() *UnitDef { return defOf[U]() }

// AddAssign moves p by v in place.
func (p *Point2[U, N]) AddAssign(v Vector2[U, N]) { p.x += v.x; p.y += v.y }

// SubAssign moves p back by v in place.
func (p *Point2[U, N]) SubAssign(v Vector2[U, N]) { p.x -= v.x; p.y -= v.y }

// Add returns p moved by v.
func (p Point2[U, N]) Add(v Vector2[U, N]) Point2[U, N] {
	return Point2[U, N]{x: p.x + v.x, y: p.y + v.y}
}

// Sub returns p moved back by v.
func (p Point2[U, N]) Sub(v Vector2[U, N]) Point2[U, N] {
	return Point2[U, N]{x: p.x - v.x, y: p.y - v.y}
}

// SubPoint returns the displacement p-q.
func (p Point2[U, N]) SubPoint(q Point2[U, N]) Vector2[U, N] {
	return Vector2[U, N]{x: p.x - q.x, y: p.y - q.y}
}

// IsEqual reports whether p and q are within distance tol.
func (p Point2[U, N]) IsEqual(q Point2[U, N], tol Vector1[U, N]) bool {
	dx, dy := absDiff(p.x, q.x), absDiff(p.y, q.y)
	return dx*dx+dy*dy <= tol.v*tol.v
}

// Midpoint returns the point halfway between p and q.
func (p Point2[U, N]) Midpoint(q Point2[U, N]) Point2[U, N] {
	return Point2[U, N]{x: midValue(p.x, q.x), y: midValue(p.y, q.y)}
}

// MidpointWeighted returns p*(1-w) + q*w.
func (p Point2[U, N]) MidpointWeighted(q Point2[U, N], w N) Point2[U, N] {
	return Point2[U, N]{x: p.x*(1-w) + q.x*w, y: p.y*(1-w) + q.y*w}
}

// BarycentricCombination2 returns Σ weights[i]*points[i]. It panics if
// the slices differ in length.
func BarycentricCombination2[U Unit, N Number](points []Point2[U, N], weights []N) Point2[U, N] {
	checkBarycentric(len(points), len(weights))
	var out Point2[U, N]
	for i, p := range points {
		out.x += weights[i] * p.x
		out.y += weights[i] * p.y
	}
	return out
}

// MappedBy applies the affine map m, which must be expressed in U.
func (p Point2[U, N]) MappedBy(m AffineMap2[U]) Point2[U, N] {
	x, y := m.apply(float64(p.x), float64(p.y))
	return Point2[U, N]{x: fromFloat[N](x), y: fromFloat[N](y)}
}
