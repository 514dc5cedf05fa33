package quantity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	q "github.com/banshee-data/measures/quantity"
	"github.com/banshee-data/measures/units"
)

type (
	m1  = q.Vector1[units.Metres, float64]
	p1  = q.Point1[units.Metres, float64]
	m2  = q.Vector2[units.Metres, float64]
	pt2 = q.Point2[units.Metres, float64]
	m3  = q.Vector3[units.Metres, float64]
	pt3 = q.Point3[units.Metres, float64]
)

func TestVector1_Arithmetic(t *testing.T) {
	t.Parallel()

	a := q.NewVector1[units.Metres](3.0)
	b := q.NewVector1[units.Metres](-5.0)

	assert.Equal(t, -3.0, a.Neg().Value())
	assert.Equal(t, -2.0, a.Add(b).Value())
	assert.Equal(t, 8.0, a.Sub(b).Value())
	assert.Equal(t, 7.5, a.Scale(2.5).Value())
	assert.Equal(t, 1.5, a.Div(2).Value())
	assert.Equal(t, -0.6, a.Ratio(b))
	assert.Equal(t, 9.0, a.SquaredNormValue())
	assert.Equal(t, 5.0, b.Norm().Value())
	assert.Equal(t, -1.0, b.Normalized().Value())
	assert.Equal(t, units.Metres{}.Def(), a.Unit())

	c := a
	c.AddAssign(b)
	assert.Equal(t, -2.0, c.Value())
	c.SubAssign(b)
	assert.Equal(t, 3.0, c.Value())
	c.ScaleAssign(4)
	assert.Equal(t, 12.0, c.Value())
	c.DivAssign(3)
	assert.Equal(t, 4.0, c.Value())
	c.SetValue(1)
	assert.Equal(t, 1.0, c.Value())
	// a is a value and was not touched through c.
	assert.Equal(t, 3.0, a.Value())
}

func TestVector1_Ordering(t *testing.T) {
	t.Parallel()

	one := q.NewVector1[units.Metres](1.0)
	two := q.NewVector1[units.Metres](2.0)

	assert.Equal(t, -1, one.Cmp(two))
	assert.Equal(t, 1, two.Cmp(one))
	assert.Equal(t, 0, one.Cmp(one))
	assert.True(t, one.Less(two))
	assert.True(t, one.LessOrEqual(one))
	assert.True(t, two.Greater(one))
	assert.True(t, two.GreaterOrEqual(two))
	assert.False(t, two.Less(one))
}

func TestVector1_Tolerance(t *testing.T) {
	t.Parallel()

	tol := q.NewVector1[units.Metres](0.1)
	tests := []struct {
		name          string
		a, b          float64
		equal         bool
		less, lessOrE bool
	}{
		{"identical", 1, 1, true, false, true},
		{"within tolerance above", 1.05, 1, true, false, true},
		{"within tolerance below", 0.95, 1, true, false, true},
		{"clearly less", 0.5, 1, false, true, true},
		{"clearly greater", 1.5, 1, false, false, false},
		{"negative values", -3, -3.05, true, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := q.NewVector1[units.Metres](tt.a)
			b := q.NewVector1[units.Metres](tt.b)
			assert.Equal(t, tt.equal, a.IsEqual(b, tol))
			assert.Equal(t, a.IsEqual(b, tol), b.IsEqual(a, tol), "IsEqual must be symmetric")
			assert.Equal(t, tt.less, a.IsLess(b, tol))
			assert.Equal(t, tt.lessOrE, a.IsLessOrEqual(b, tol))
		})
	}
}

func TestVector1_UnsignedTolerance(t *testing.T) {
	t.Parallel()

	// |a-b| must not wrap around for unsigned kinds.
	a := q.NewVector1[units.Metres, uint8](3)
	b := q.NewVector1[units.Metres, uint8](250)
	tol := q.NewVector1[units.Metres, uint8](10)
	assert.False(t, a.IsEqual(b, tol))
	assert.False(t, b.IsEqual(a, tol))
	assert.True(t, a.IsEqual(q.NewVector1[units.Metres, uint8](12), tol))
}

func TestVector2_SpaceLaws(t *testing.T) {
	t.Parallel()

	u := q.NewVector2[units.Metres](1.0, 2.0)
	v := q.NewVector2[units.Metres](-3.0, 4.0)
	w := q.NewVector2[units.Metres](0.5, -8.0)
	var zero m2

	assert.Equal(t, u.Add(v), v.Add(u), "commutative")
	assert.Equal(t, u.Add(v).Add(w), u.Add(v.Add(w)), "associative")
	assert.Equal(t, u.Add(v).Scale(2), u.Scale(2).Add(v.Scale(2)), "distributive")
	assert.Equal(t, zero, u.Add(u.Neg()), "inverse")
	assert.Equal(t, u, u.Add(zero), "identity")

	x, y := u.Sub(v).Values()
	assert.Equal(t, 4.0, x)
	assert.Equal(t, -2.0, y)
	assert.Equal(t, 5.0, v.Norm().Value())
	assert.Equal(t, 25.0, v.SquaredNormValue())

	nx, ny := v.Normalized().Values()
	assert.InDelta(t, -0.6, nx, 1e-12)
	assert.InDelta(t, 0.8, ny, 1e-12)
}

func TestVector2_Components(t *testing.T) {
	t.Parallel()

	v := q.NewVector2[units.Metres](1.0, 2.0)
	assert.Equal(t, 1.0, v.X().Value())
	assert.Equal(t, 2.0, v.Y().Value())

	v.SetX(q.NewVector1[units.Metres](7.0))
	v.SetY(q.NewVector1[units.Metres](9.0))
	assert.Equal(t, q.NewVector2[units.Metres](7.0, 9.0), v)

	v.AddAssign(q.NewVector2[units.Metres](1.0, 1.0))
	v.ScaleAssign(2)
	assert.Equal(t, q.NewVector2[units.Metres](16.0, 20.0), v)
	v.DivAssign(4)
	v.SubAssign(q.NewVector2[units.Metres](4.0, 5.0))
	assert.Equal(t, m2{}, v)
}

func TestVector2_IsEqualSymmetric(t *testing.T) {
	t.Parallel()

	tol := q.NewVector1[units.Metres](0.5)
	a := q.NewVector2[units.Metres](1.0, 1.0)
	b := q.NewVector2[units.Metres](1.3, 1.3)
	c := q.NewVector2[units.Metres](1.4, 1.4)

	assert.True(t, a.IsEqual(b, tol))
	assert.True(t, b.IsEqual(a, tol))
	// |c-a| = 0.4·√2 ≈ 0.566 exceeds the tolerance although each
	// component is within it.
	assert.False(t, a.IsEqual(c, tol))
	assert.False(t, c.IsEqual(a, tol))
}

func TestVector3_SpaceLaws(t *testing.T) {
	t.Parallel()

	u := q.NewVector3[units.Metres](1.0, 2.0, 3.0)
	v := q.NewVector3[units.Metres](-4.0, 0.0, 2.0)
	w := q.NewVector3[units.Metres](8.0, -1.0, 0.25)
	var zero m3

	assert.Equal(t, u.Add(v), v.Add(u))
	assert.Equal(t, u.Add(v).Add(w), u.Add(v.Add(w)))
	assert.Equal(t, u.Add(v).Scale(3), u.Scale(3).Add(v.Scale(3)))
	assert.Equal(t, zero, u.Add(u.Neg()))
	assert.Equal(t, q.NewVector3[units.Metres](0.5, 1.0, 1.5), u.Div(2))

	assert.Equal(t, 14.0, u.SquaredNormValue())
	assert.Equal(t, 3.0, q.NewVector3[units.Metres](1.0, 2.0, 2.0).Norm().Value())

	u.SetZ(q.NewVector1[units.Metres](-3.0))
	assert.Equal(t, -3.0, u.Z().Value())
	x, y, z := u.Values()
	assert.Equal(t, []float64{1, 2, -3}, []float64{x, y, z})
}

func TestPoint1_AffineLaws(t *testing.T) {
	t.Parallel()

	p := q.NewPoint1[units.Metres](10.0)
	r := q.NewPoint1[units.Metres](-4.0)
	v := q.NewVector1[units.Metres](2.5)

	assert.Equal(t, p, p.Add(v).Sub(v))
	assert.Equal(t, p, r.Add(p.SubPoint(r)))
	assert.Equal(t, 14.0, p.SubPoint(r).Value())
	assert.Equal(t, p, p.Midpoint(p))
	assert.Equal(t, 3.0, p.Midpoint(r).Value())
	assert.Equal(t, p, p.MidpointWeighted(r, 0))
	assert.Equal(t, r, p.MidpointWeighted(r, 1))
	assert.Equal(t, 6.5, p.MidpointWeighted(r, 0.25).Value())

	assert.Equal(t, 1, p.Cmp(r))
	assert.True(t, r.Less(p))
	assert.True(t, p.GreaterOrEqual(p))
	assert.True(t, p.IsEqual(q.NewPoint1[units.Metres](10.05), q.NewVector1[units.Metres](0.1)))
	assert.True(t, r.IsLess(p, q.NewVector1[units.Metres](0.1)))
	assert.False(t, p.IsLessOrEqual(r, q.NewVector1[units.Metres](0.1)))

	p.AddAssign(v)
	p.SubAssign(v.Scale(2))
	assert.Equal(t, 7.5, p.Value())
}

func TestPoint1_UnsignedMidpoint(t *testing.T) {
	t.Parallel()

	a := q.NewPoint1[units.Metres, uint8](250)
	b := q.NewPoint1[units.Metres, uint8](10)
	assert.Equal(t, uint8(130), a.Midpoint(b).Value())
	assert.Equal(t, uint8(130), b.Midpoint(a).Value())
}

func TestPoint2_Midpoint(t *testing.T) {
	t.Parallel()

	a := q.NewPoint2[units.Metres](0.0, 0.0)
	b := q.NewPoint2[units.Metres](10.0, 20.0)

	assert.Equal(t, q.NewPoint2[units.Metres](5.0, 10.0), a.Midpoint(b))
	assert.Equal(t, a, a.MidpointWeighted(b, 0))
	assert.Equal(t, b, a.MidpointWeighted(b, 1))
	assert.Equal(t, a, a.Midpoint(a))

	v := q.NewVector2[units.Metres](1.5, -2.0)
	assert.Equal(t, b, b.Add(v).Sub(v))
	assert.Equal(t, b, a.Add(b.SubPoint(a)))

	assert.True(t, a.IsEqual(q.NewPoint2[units.Metres](3.0, 4.0), q.NewVector1[units.Metres](5.0)))
	assert.False(t, a.IsEqual(q.NewPoint2[units.Metres](3.0, 4.0), q.NewVector1[units.Metres](4.9)))

	a.SetY(q.NewPoint1[units.Metres](3.0))
	assert.Equal(t, 3.0, a.Y().Value())
	a.AddAssign(v)
	x, y := a.Values()
	assert.Equal(t, 1.5, x)
	assert.Equal(t, 1.0, y)
}

func TestPoint3_AffineLaws(t *testing.T) {
	t.Parallel()

	a := q.NewPoint3[units.Metres](1.0, 2.0, 3.0)
	b := q.NewPoint3[units.Metres](5.0, -2.0, 9.0)
	v := q.NewVector3[units.Metres](0.5, 0.5, -1.0)

	assert.Equal(t, a, a.Add(v).Sub(v))
	assert.Equal(t, b, a.Add(b.SubPoint(a)))
	assert.Equal(t, q.NewPoint3[units.Metres](3.0, 0.0, 6.0), a.Midpoint(b))
	assert.Equal(t, a, a.MidpointWeighted(b, 0))
	assert.Equal(t, b, a.MidpointWeighted(b, 1))

	a.SubAssign(v)
	assert.Equal(t, 4.0, a.Z().Value())
}

func TestBarycentricCombination(t *testing.T) {
	t.Parallel()

	pts := []pt2{
		q.NewPoint2[units.Metres](0.0, 0.0),
		q.NewPoint2[units.Metres](6.0, 0.0),
		q.NewPoint2[units.Metres](0.0, 3.0),
	}
	third := 1.0 / 3.0
	c := q.BarycentricCombination2(pts, []float64{third, third, third})
	x, y := c.Values()
	assert.InDelta(t, 2.0, x, 1e-12)
	assert.InDelta(t, 1.0, y, 1e-12)

	line := []p1{q.NewPoint1[units.Metres](2.0), q.NewPoint1[units.Metres](4.0)}
	assert.Equal(t, 3.5, q.BarycentricCombination1(line, []float64{0.25, 0.75}).Value())

	space := []pt3{q.NewPoint3[units.Metres](2.0, 0.0, 4.0), q.NewPoint3[units.Metres](0.0, 2.0, 0.0)}
	assert.Equal(t, q.NewPoint3[units.Metres](1.0, 1.0, 2.0), q.BarycentricCombination3(space, []float64{0.5, 0.5}))

	assert.Panics(t, func() { q.BarycentricCombination1(line, []float64{1}) })
}

func TestIntegerKinds(t *testing.T) {
	t.Parallel()

	v := q.NewVector2[units.Millimetres, int32](3, 4)
	assert.Equal(t, int32(5), v.Norm().Value())
	assert.Equal(t, q.NewVector2[units.Millimetres, int32](1, 2), v.Div(2))

	var zero m1
	assert.Equal(t, 0.0, zero.Value())
}
