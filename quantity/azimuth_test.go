package quantity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/banshee-data/measures/internal/testutil"
	q "github.com/banshee-data/measures/quantity"
	"github.com/banshee-data/measures/units"
)

func TestSignedAzimuth_Normalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, signed, unsigned float64
	}{
		{370, 10, 10},
		{190, -170, 190},
		{-190, 170, 170},
		{180, -180, 180},
		{-180, -180, 180},
		{360, 0, 0},
		{-360, 0, 0},
		{0, 0, 0},
		{-10, -10, 350},
		{725, 5, 5},
		{-725, -5, 355},
	}
	for _, tt := range tests {
		s := q.NewSignedAzimuth[units.Degrees](tt.in)
		u := q.NewUnsignedAzimuth[units.Degrees](tt.in)
		assert.Equal(t, tt.signed, s.Value(), "signed %g", tt.in)
		assert.Equal(t, tt.unsigned, u.Value(), "unsigned %g", tt.in)
	}
}

func TestAzimuth_RangeAndPeriodicity(t *testing.T) {
	t.Parallel()

	values := []float64{0, 0.5, 37.25, 179.75, 180, 180.5, 359.75, 1e4 + 0.25, -0.25, -179.75, -180.25, -1e4 - 0.5}
	for _, x := range values {
		s := q.NewSignedAzimuth[units.Degrees](x)
		u := q.NewUnsignedAzimuth[units.Degrees](x)
		assert.GreaterOrEqual(t, s.Value(), -180.0)
		assert.Less(t, s.Value(), 180.0)
		assert.GreaterOrEqual(t, u.Value(), 0.0)
		assert.Less(t, u.Value(), 360.0)

		for k := -3; k <= 3; k++ {
			shifted := x + float64(k)*360
			assert.Equal(t, s, q.NewSignedAzimuth[units.Degrees](shifted), "signed %g + %d turns", x, k)
			assert.Equal(t, u, q.NewUnsignedAzimuth[units.Degrees](shifted), "unsigned %g + %d turns", x, k)
		}
	}
}

func TestUnsignedAzimuth_TinyNegative(t *testing.T) {
	t.Parallel()

	// -1e-20 + 360 rounds to 360, which must fold to 0.
	u := q.NewUnsignedAzimuth[units.Degrees](-1e-20)
	assert.Equal(t, 0.0, u.Value())
}

func TestAzimuth_Radians(t *testing.T) {
	t.Parallel()

	s := q.NewSignedAzimuth[units.Radians](3 * math.Pi / 2)
	testutil.AssertClose(t, s.Value(), -math.Pi/2, 1e-12)

	s = q.NewSignedAzimuth[units.Radians](math.Pi)
	assert.Equal(t, -math.Pi, s.Value())

	u := q.NewUnsignedAzimuth[units.Radians](-math.Pi / 2)
	testutil.AssertClose(t, u.Value(), 3*math.Pi/2, 1e-12)
}

func TestAzimuth_Integer(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 170, q.NewSignedAzimuth[units.Degrees](-190).Value())
	assert.Equal(t, -180, q.NewSignedAzimuth[units.Degrees](180).Value())
	assert.Equal(t, int16(359), q.NewUnsignedAzimuth[units.Degrees, int16](-1).Value())
	assert.Equal(t, int64(200), q.NewUnsignedAzimuth[units.Gradians, int64](-200).Value())
}

// sevenths is an angular unit with an odd number of steps per turn.
var sevenths = func() *q.UnitDef {
	m, err := q.NewRegistry().DefineAngleMagnitude("heading", "sevenths", " sv", 7)
	if err != nil {
		panic(err)
	}
	return m.Base()
}()

type Sevenths struct{ q.In[q.Angle] }

func (Sevenths) Def() *q.UnitDef { return sevenths }

func TestAzimuth_OddIntegerTurn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, signed, unsigned int
	}{
		{3, 3, 3},
		{4, -3, 4},
		{10, 3, 3},
		{-3, -3, 4},
		{-4, 3, 3},
		{7, 0, 0},
		{-7, 0, 0},
		{-10, -3, 4},
	}
	for _, tt := range tests {
		s := q.NewSignedAzimuth[Sevenths](tt.in)
		u := q.NewUnsignedAzimuth[Sevenths](tt.in)
		assert.Equal(t, tt.signed, s.Value(), "signed %d", tt.in)
		assert.Equal(t, tt.unsigned, u.Value(), "unsigned %d", tt.in)
	}

	// Every integer folds into [-3.5, 3.5), which for integers is [-3, 3].
	for v := -21; v <= 21; v++ {
		got := q.NewSignedAzimuth[Sevenths](v).Value()
		assert.GreaterOrEqual(t, 2*got, -7, "signed %d", v)
		assert.Less(t, 2*got, 7, "signed %d", v)
	}

	a := q.NewSignedAzimuth[Sevenths](3)
	a.AddAssign(q.NewVector1[Sevenths](1))
	assert.Equal(t, -3, a.Value())

	// Float kinds keep the exact half-turn tie at -T/2.
	assert.Equal(t, -3.5, q.NewSignedAzimuth[Sevenths](3.5).Value())
	assert.Equal(t, 3.0, q.NewSignedAzimuth[Sevenths](10.0).Value())
}

func TestAzimuth_Arithmetic(t *testing.T) {
	t.Parallel()

	deg := func(v float64) q.Vector1[units.Degrees, float64] { return q.NewVector1[units.Degrees](v) }

	s := q.NewSignedAzimuth[units.Degrees](170.0)
	assert.Equal(t, -170.0, s.Add(deg(20)).Value())
	assert.Equal(t, 150.0, s.Sub(deg(20)).Value())
	assert.Equal(t, -10.0, s.Sub(deg(540)).Value())

	s.AddAssign(deg(15))
	assert.Equal(t, -175.0, s.Value())
	s.SubAssign(deg(10))
	assert.Equal(t, 175.0, s.Value())

	u := q.NewUnsignedAzimuth[units.Degrees](350.0)
	assert.Equal(t, 10.0, u.Add(deg(20)).Value())
	assert.Equal(t, 330.0, u.Sub(deg(20)).Value())
	u.AddAssign(deg(-360))
	assert.Equal(t, 350.0, u.Value())
	u.SubAssign(deg(355))
	assert.Equal(t, 355.0, u.Value())
}

func TestAzimuth_ShortestDifference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"across zero", 10, 350, 20},
		{"across zero backwards", 350, 10, -20},
		{"across the back", -170, 170, 20},
		{"plain", 30, 10, 20},
		{"half turn forward", 90, -90, -180},
		{"half turn backward", -90, 90, -180},
		{"identical", 42, 42, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sa, sb := q.NewSignedAzimuth[units.Degrees](tt.a), q.NewSignedAzimuth[units.Degrees](tt.b)
			ua, ub := q.NewUnsignedAzimuth[units.Degrees](tt.a), q.NewUnsignedAzimuth[units.Degrees](tt.b)

			// Signed and unsigned azimuths break the half-turn tie the same way.
			assert.Equal(t, tt.want, sa.SubAzimuth(sb).Value())
			assert.Equal(t, tt.want, ua.SubAzimuth(ub).Value())
			assert.Equal(t, math.Abs(tt.want), sa.AngleDistance(sb).Value())
			assert.Equal(t, math.Abs(tt.want), ua.AngleDistance(ub).Value())

			// b turned by the difference lands on a.
			tol := q.NewVector1[units.Degrees](1e-9)
			assert.True(t, sb.Add(sa.SubAzimuth(sb)).IsEqual(sa, tol))
			assert.True(t, ub.Add(ua.SubAzimuth(ub)).IsEqual(ua, tol))
		})
	}
}

func TestAzimuth_IsEqualAcrossWrap(t *testing.T) {
	t.Parallel()

	tol := q.NewVector1[units.Degrees](1.0)
	a := q.NewUnsignedAzimuth[units.Degrees](359.5)
	b := q.NewUnsignedAzimuth[units.Degrees](0.25)
	assert.True(t, a.IsEqual(b, tol))
	assert.True(t, b.IsEqual(a, tol))

	c := q.NewSignedAzimuth[units.Degrees](179.5)
	d := q.NewSignedAzimuth[units.Degrees](-179.75)
	assert.True(t, c.IsEqual(d, tol))
	assert.True(t, d.IsEqual(c, tol))
	assert.False(t, c.IsEqual(q.NewSignedAzimuth[units.Degrees](0.0), tol))
}

func TestAzimuth_Conversions(t *testing.T) {
	t.Parallel()

	s := q.NewSignedAzimuth[units.Degrees](-90.0)
	assert.Equal(t, 270.0, s.Unsigned().Value())
	assert.Equal(t, -90.0, s.Unsigned().Signed().Value())
	assert.Equal(t, -90.0, s.Angle().Value())
	assert.Equal(t, -90.0, s.Point().Value())
	assert.Equal(t, units.Degrees{}.Def(), s.Unit())

	p := q.NewPoint1[units.Degrees](450.0)
	assert.Equal(t, 90.0, q.SignedAzimuthFromPoint(p).Value())
	assert.Equal(t, 90.0, q.UnsignedAzimuthFromPoint(p).Value())

	turns := q.NewSignedAzimuth[units.Turns](0.75)
	assert.Equal(t, -0.25, turns.Value())
	inDeg := q.ConvertSignedAzimuth[units.Degrees](turns)
	testutil.AssertClose(t, inDeg.Value(), -90, 1e-9)

	ut := q.ConvertUnsignedAzimuth[units.Gradians](q.NewUnsignedAzimuth[units.Degrees](270.0))
	testutil.AssertClose(t, ut.Value(), 300, 1e-9)

	rad, err := q.Default.Unit("rad")
	assert.NoError(t, err)
	fromRad, err := q.NewSignedAzimuthFrom[units.Degrees](rad, math.Pi*2.5)
	assert.NoError(t, err)
	testutil.AssertClose(t, fromRad.Value(), 90, 1e-9)

	metres, err := q.Default.Unit("m")
	assert.NoError(t, err)
	_, err = q.NewUnsignedAzimuthFrom[units.Degrees](metres, 1.0)
	assert.ErrorIs(t, err, q.ErrIncompatibleUnits)
}

func TestAzimuth_Of(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x, y             float64
		signed, unsigned float64
	}{
		{1, 0, 0, 0},
		{0, 1, 90, 90},
		{-1, 0, -180, 180},
		{0, -1, -90, 270},
		{1, 1, 45, 45},
	}
	for _, tt := range tests {
		v := q.NewVector2[units.Metres](tt.x, tt.y)
		testutil.AssertClose(t, q.SignedAzimuthOf[units.Degrees](v).Value(), tt.signed, 1e-9)
		testutil.AssertClose(t, q.UnsignedAzimuthOf[units.Degrees](v).Value(), tt.unsigned, 1e-9)
	}
}

func TestAzimuth_Cast(t *testing.T) {
	t.Parallel()

	s := q.CastSignedAzimuth[int](q.NewSignedAzimuth[units.Degrees](-179.9))
	assert.Equal(t, -179, s.Value())

	u := q.CastUnsignedAzimuth[int32](q.NewUnsignedAzimuth[units.Degrees](-0.5))
	assert.Equal(t, int32(359), u.Value())
}
