package quantity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	q "github.com/banshee-data/measures/quantity"
	"github.com/banshee-data/measures/units"
)

func TestString(t *testing.T) {
	t.Parallel()

	km, err := q.Default.Unit("km")
	require.NoError(t, err)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"vector1", q.NewVector1[units.Metres](2.5).String(), "2.5 m"},
		{"point1", q.NewPoint1[units.Celsius](-3.0).String(), "[-3] °C"},
		{"vector2", q.NewVector2[units.Metres](1.0, 2.0).String(), "1 2 m"},
		{"point2", q.NewPoint2[units.Metres](1.0, 2.0).String(), "[1 2] m"},
		{"vector3", q.NewVector3[units.Newtons, int](1, -2, 3).String(), "1 -2 3 N"},
		{"point3", q.NewPoint3[units.Kilometres](0.5, 0.0, 1e-7).String(), "[0.5 0 1e-07] km"},
		{"signed azimuth", q.NewSignedAzimuth[units.Degrees](270.0).String(), "S-90°"},
		{"unsigned azimuth", q.NewUnsignedAzimuth[units.Degrees](-90.0).String(), "U270°"},
		{"radians", q.NewUnsignedAzimuth[units.Radians](1.5).String(), "U1.5 rad"},
		{"dynamic vector1", q.NewDynVector1(km, 2.5).String(), "D 2.5 km"},
		{"dynamic point1", q.NewDynPoint1(km, 2.5).String(), "D [2.5] km"},
		{"dynamic vector2", q.NewDynVector2(km, 1.0, 2.0).String(), "D 1 2 km"},
		{"dynamic point3", q.NewDynPoint3(km, 1.0, 2.0, 3.0).String(), "D [1 2 3] km"},
		{"shortest float", q.NewVector1[units.Metres](0.1 + 0.2).String(), "0.30000000000000004 m"},
		{"float32", q.NewVector1[units.Metres, float32](0.1).String(), "0.1 m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	v1 := q.NewVector1[units.Metres](0.1 + 0.2)
	got1, err := q.ParseVector1[units.Metres, float64](v1.String())
	require.NoError(t, err)
	assert.Equal(t, v1, got1)

	p1 := q.NewPoint1[units.Fahrenheit](-459.67)
	gotp1, err := q.ParsePoint1[units.Fahrenheit, float64](p1.String())
	require.NoError(t, err)
	assert.Equal(t, p1, gotp1)

	v2 := q.NewVector2[units.MetresPerSecond](1e300, -2.5)
	got2, err := q.ParseVector2[units.MetresPerSecond, float64](v2.String())
	require.NoError(t, err)
	assert.Equal(t, v2, got2)

	p2 := q.NewPoint2[units.Metres, int64](math.MinInt64, math.MaxInt64)
	gotp2, err := q.ParsePoint2[units.Metres, int64](p2.String())
	require.NoError(t, err)
	assert.Equal(t, p2, gotp2)

	v3 := q.NewVector3[units.NewtonMetres, float32](0.1, 0.2, 0.3)
	got3, err := q.ParseVector3[units.NewtonMetres, float32](v3.String())
	require.NoError(t, err)
	assert.Equal(t, v3, got3)

	p3 := q.NewPoint3[units.Metres, uint16](1, 2, 65535)
	gotp3, err := q.ParsePoint3[units.Metres, uint16](p3.String())
	require.NoError(t, err)
	assert.Equal(t, p3, gotp3)

	s := q.NewSignedAzimuth[units.Gradians](-123.456)
	gots, err := q.ParseSignedAzimuth[units.Gradians, float64](s.String())
	require.NoError(t, err)
	assert.Equal(t, s, gots)

	u := q.NewUnsignedAzimuth[units.Degrees, int](359)
	gotu, err := q.ParseUnsignedAzimuth[units.Degrees, int](u.String())
	require.NoError(t, err)
	assert.Equal(t, u, gotu)
}

func TestParseAzimuth_Folds(t *testing.T) {
	t.Parallel()

	s, err := q.ParseSignedAzimuth[units.Degrees, float64]("S370°")
	require.NoError(t, err)
	assert.Equal(t, 10.0, s.Value())

	u, err := q.ParseUnsignedAzimuth[units.Degrees, float64]("U-90°")
	require.NoError(t, err)
	assert.Equal(t, 270.0, u.Value())
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func() error
	}{
		{"missing suffix", func() error {
			_, err := q.ParseVector1[units.Metres, float64]("2.5")
			return err
		}},
		{"wrong unit", func() error {
			_, err := q.ParseVector1[units.Metres, float64]("2.5 km")
			return err
		}},
		{"not a number", func() error {
			_, err := q.ParseVector1[units.Metres, float64]("two m")
			return err
		}},
		{"point without brackets", func() error {
			_, err := q.ParsePoint1[units.Metres, float64]("2.5 m")
			return err
		}},
		{"vector with brackets", func() error {
			_, err := q.ParseVector1[units.Metres, float64]("[2.5] m")
			return err
		}},
		{"too few components", func() error {
			_, err := q.ParseVector2[units.Metres, float64]("1 m")
			return err
		}},
		{"too many components", func() error {
			_, err := q.ParsePoint3[units.Metres, float64]("[1 2 3 4] m")
			return err
		}},
		{"double space", func() error {
			_, err := q.ParseVector2[units.Metres, float64]("1  2 m")
			return err
		}},
		{"fraction for integer", func() error {
			_, err := q.ParseVector1[units.Metres, int]("4.2 m")
			return err
		}},
		{"out of range", func() error {
			_, err := q.ParseVector1[units.Metres, uint8]("300 m")
			return err
		}},
		{"negative unsigned", func() error {
			_, err := q.ParseVector1[units.Metres, uint]("-1 m")
			return err
		}},
		{"azimuth without prefix", func() error {
			_, err := q.ParseSignedAzimuth[units.Degrees, float64]("90°")
			return err
		}},
		{"azimuth wrong prefix", func() error {
			_, err := q.ParseUnsignedAzimuth[units.Degrees, float64]("S90°")
			return err
		}},
		{"dynamic without prefix", func() error {
			_, err := q.ParseDynVector1[float64](q.Default, "2.5 m")
			return err
		}},
		{"dynamic bad number", func() error {
			_, err := q.ParseDynVector1[float64](q.Default, "D x m")
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, tt.fn(), q.ErrParse)
		})
	}
}

func TestParseDynamic(t *testing.T) {
	t.Parallel()

	m, _ := q.Default.Unit("m")
	km, _ := q.Default.Unit("km")
	mps, _ := q.Default.Unit("m/s")
	deg, _ := q.Default.Unit("deg")

	tests := []struct {
		in    string
		unit  *q.UnitDef
		value float64
	}{
		{"D 2.5 km", km, 2.5},
		{"D 2.5 m", m, 2.5},
		{"D -1e3 m/s", mps, -1000},
		{"D 45°", deg, 45},
	}
	for _, tt := range tests {
		v, err := q.ParseDynVector1[float64](q.Default, tt.in)
		require.NoError(t, err, tt.in)
		assert.Same(t, tt.unit, v.Unit(), tt.in)
		assert.Equal(t, tt.value, v.Value(), tt.in)
	}

	p, err := q.ParseDynPoint2[float64](q.Default, "D [1 2] km")
	require.NoError(t, err)
	assert.Equal(t, q.NewDynPoint2(km, 1.0, 2.0), p)

	v3, err := q.ParseDynVector3[int](q.Default, "D 1 2 3 m")
	require.NoError(t, err)
	assert.Equal(t, q.NewDynVector3(m, 1, 2, 3), v3)

	p1, err := q.ParseDynPoint1[float64](q.Default, "D [-40] °F")
	require.NoError(t, err)
	c, err := p1.Convert(unit(t, "°C"))
	require.NoError(t, err)
	assert.InDelta(t, -40.0, c.Value(), 1e-9)

	v2, err := q.ParseDynVector2[float64](q.Default, "D 3 4 N")
	require.NoError(t, err)
	assert.Equal(t, 5.0, v2.Norm().Value())

	p3, err := q.ParseDynPoint3[float64](q.Default, "D [0 0 1] N·m")
	require.NoError(t, err)
	assert.Equal(t, "D [0 0 1] N·m", p3.String())

	_, err = q.ParseDynVector1[float64](q.Default, "D 1 furlong")
	assert.ErrorIs(t, err, q.ErrUnknownUnit)
}

func FuzzParseVector2(f *testing.F) {
	f.Add(1.0, 2.0)
	f.Add(-0.0, math.Inf(1))
	f.Add(1e-300, 0.30000000000000004)
	f.Fuzz(func(t *testing.T, x, y float64) {
		if math.IsNaN(x) || math.IsNaN(y) {
			t.Skip()
		}
		v := q.NewVector2[units.Kilometres](x, y)
		got, err := q.ParseVector2[units.Kilometres, float64](v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	})
}

func FuzzParseDynVector1(f *testing.F) {
	f.Add("D 2.5 km")
	f.Add("D 1 m/s")
	f.Add("D -0 °C")
	f.Add("D 0x1p-2 N·m")
	f.Add("D NaN s")
	f.Add("2.5 m")
	f.Fuzz(func(t *testing.T, s string) {
		v, err := q.ParseDynVector1[float64](q.Default, s)
		if err != nil {
			return
		}
		// Whatever parses must print in a form that parses back the same.
		again, err := q.ParseDynVector1[float64](q.Default, v.String())
		require.NoError(t, err, "%q printed as %q", s, v.String())
		assert.Equal(t, v.String(), again.String())
		assert.Same(t, v.Unit(), again.Unit())
	})
}
