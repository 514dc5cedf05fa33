// Package chart renders conversion curves and azimuth folding as PNG
// (gonum/plot) or HTML (go-echarts).
package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/banshee-data/measures/quantity"
)

// Series is one named curve.
type Series struct {
	Name string
	X, Y []float64
}

// Figure is a renderer-independent description of a chart.
type Figure struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
}

// sampleRange returns n evenly spaced values covering [min, max].
func sampleRange(min, max float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	out := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + step*float64(i)
	}
	out[n-1] = max
	return out
}

// ConversionFigure samples values of from between min and max and
// converts each one to to. Positions (point true) use the affine rule,
// so origin-shifted scales such as celsius and fahrenheit plot correctly.
func ConversionFigure(from, to *quantity.UnitDef, min, max float64, samples int, point bool) (Figure, error) {
	if !quantity.Compatible(from, to) {
		return Figure{}, fmt.Errorf("chart %s to %s: %w", from, to, quantity.ErrIncompatibleUnits)
	}

	xs := sampleRange(min, max, samples)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		if point {
			p, err := quantity.NewDynPoint1(from, x).Convert(to)
			if err != nil {
				return Figure{}, err
			}
			ys[i] = p.Value()
		} else {
			v, err := quantity.NewDynVector1(from, x).Convert(to)
			if err != nil {
				return Figure{}, err
			}
			ys[i] = v.Value()
		}
	}

	kind := "difference"
	if point {
		kind = "position"
	}
	return Figure{
		Title:  fmt.Sprintf("%s to %s (%s)", from.Name(), to.Name(), kind),
		XLabel: from.Name(),
		YLabel: to.Name(),
		Series: []Series{{Name: to.Name(), X: xs, Y: ys}},
	}, nil
}

// AzimuthFigure plots how unbounded angles in A fold into signed and
// unsigned azimuths.
func AzimuthFigure[A quantity.AngularUnit](min, max float64, samples int) Figure {
	xs := sampleRange(min, max, samples)
	signed := make([]float64, len(xs))
	unsigned := make([]float64, len(xs))
	for i, x := range xs {
		signed[i] = quantity.NewSignedAzimuth[A](x).Value()
		unsigned[i] = quantity.NewUnsignedAzimuth[A](x).Value()
	}

	name := quantity.UnitFor[A]().Name()
	return Figure{
		Title:  "Azimuth folding (" + name + ")",
		XLabel: "angle (" + name + ")",
		YLabel: "azimuth (" + name + ")",
		Series: []Series{
			{Name: "signed", X: xs, Y: signed},
			{Name: "unsigned", X: xs, Y: unsigned},
		},
	}
}

// generateColors returns n distinct colours spread around the hue circle.
func generateColors(n int) []color.Color {
	if n <= 0 {
		return nil
	}

	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hslToRGB(hue, 0.7, 0.5)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL to RGB (0-255 range)
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	if s == 0 {
		v := uint8(math.Round(l * 255))
		return v, v, v
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return channel(p, q, h+1.0/3.0), channel(p, q, h), channel(p, q, h-1.0/3.0)
}

func channel(p, q, t float64) uint8 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	var v float64
	switch {
	case t < 1.0/6.0:
		v = p + (q-p)*6*t
	case t < 0.5:
		v = q
	case t < 2.0/3.0:
		v = p + (q-p)*(2.0/3.0-t)*6
	default:
		v = p
	}
	return uint8(math.Round(v * 255))
}

// hexColor formats c as #rrggbb for echarts.
func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
