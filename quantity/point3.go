package quantity

// Point3 is an absolute position in space, all coordinates in U.
type Point3[U Unit, N Number] struct {
	x, y, z N
}

// NewPoint3 returns the point (x, y, z) in U.
func NewPoint3[U Unit, N Number](x, y, z N) Point3[U, N] {
	return Point3[U, N]{x: x, y: y, z: z}
}

// X returns the x coordinate.
func (p Point3[U, N]) X() Point1[U, N] { return Point1[U, N]{v: p.x} }

// Y returns the y coordinate.
func (p Point3[U, N]) Y() Point1[U, N] { return Point1[U, N]{v: p.y} }

// Z returns the z coordinate.
func (p Point3[U, N]) Z() Point1[U, N] { return Point1[U, N]{v: p.z} }

// SetX replaces the x coordinate.
func (p *Point3[U, N]) SetX(c Point1[U, N]) { p.x = c.v }

// SetY replaces the y coordinate.
func (p *Point3[U, N]) SetY(c Point1[U, N]) { p.y = c.v }

// SetZ replaces the z coordinate.
func (p *Point3[U, N]) SetZ(c Point1[U, N]) { p.z = c.v }

// Values returns the raw coordinates.
func (p Point3[U, N]) Values() (x, y, z N) { return p.x, p.y, p.z }

// Unit returns the runtime descriptor of U.
func (p Point3[U, N]) Unit() *UnitDef { return defOf[U]() }

// AddAssign moves p by v in place.
func (p *Point3[U, N]) AddAssign(v Vector3[U, N]) { p.x += v.x; p.y += v.y; p.z += v.z }

// SubAssign moves p back by v in place.
func (p *Point3[U, N]) SubAssign(v Vector3[U, N]) { p.x -= v.x; p.y -= v.y; p.z -= v.z }

// Add returns p moved by v.
func (p Point3[U, N]) Add(v Vector3[U, N]) Point3[U, N] {
	return Point3[U, N]{x: p.x + v.x, y: p.y + v.y, z: p.z + v.z}
}

// Sub returns p moved back by v.
func (p Point3[U, N]) Sub(v Vector3[U, N]) Point3[U, N] {
	return Point3[U, N]{x: p.x - v.x, y: p.y - v.y, z: p.z - v.z}
}

// SubPoint returns the displacement p-q.
func (p Point3[U, N]) SubPoint(q Point3[U, N]) Vector3[U, N] {
	return Vector3[U, N]{x: p.x - q.x, y: p.y - q.y, z: p.z - q.z}
}

// IsEqual reports whether p and q are within distance tol.
func (p Point3[U, N]) IsEqual(q Point3[U, N], tol Vector1[U, N]) bool {
	dx, dy, dz := absDiff(p.x, q.x), absDiff(p.y, q.y), absDiff(p.z, q.z)
	return dx*dx+dy*dy+dz*dz <= tol.v*tol.v
}

// Midpoint returns the point halfway between p and q.
func (p Point3[U, N]) Midpoint(q Point3[U, N]) Point3[U, N] {
	return Point3[U, N]{x: midValue(p.x, q.x), y: midValue(p.y, q.y), z: midValue(p.z, q.z)}
}

// MidpointWeighted returns p*(1-w) + q*w.
func (p Point3[U, N]) MidpointWeighted(q Point3[U, N], w N) Point3[U, N] {
	return Point3[U, N]{
		x: p.x*(1-w) + q.x*w,
		y: p.y*(1-w) + q.y*w,
		z: p.z*(1-w) + q.z*w,
	}
}

// BarycentricCombination3 returns Σ weights[i]*points[i]. It panics if
// the slices differ in length.
func BarycentricCombination3[U Unit, N Number](points []Point3[U, N], weights []N) Point3[U, N] {
	checkBarycentric(len(points), len(weights))
	var out Point3[U, N]
	for i, p := range points {
		out.x += weights[i] * p.x
		out.y += weights[i] * p.y
		out.z += weights[i] * p.z
	}
	return out
}

// MappedBy applies the affine map m, which must be expressed in U.
func (p Point3[U, N]) MappedBy(m AffineMap3[U]) Point3[U, N] {
	x, y, z := m.apply(float64(p.x), float64(p.y), float64(p.z))
	return Point3[U, N]{x: fromFloat[N](x), y: fromFloat[N](y), z: fromFloat[N](z)}
}
