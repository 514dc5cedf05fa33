package quantity

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of numeric representations a quantity can be stored in.
type Number interface {
	constraints.Integer | constraints.Float
}

// SignedNumber restricts azimuths to kinds that can hold a negative
// displacement.
type SignedNumber interface {
	constraints.Signed | constraints.Float
}

// isFloat reports whether N is a floating point kind.
func isFloat[N Number]() bool {
	var one N = 1
	return one/2 != 0
}

func abs[N Number](x N) N {
	if x < 0 {
		return -x
	}
	return x
}

// absDiff is |a-b| without wrapping for unsigned kinds.
func absDiff[N Number](a, b N) N {
	if a > b {
		return a - b
	}
	return b - a
}

func sqrt[N Number](x N) N {
	return N(math.Sqrt(float64(x)))
}

// remainder has the sign of x, like math.Mod, for every kind.
func remainder[N Number](x, m N) N {
	if isFloat[N]() {
		return N(math.Mod(float64(x), float64(m)))
	}
	return x - (x/m)*m
}

// fromFloat converts a float64 intermediate back to N, rounding to the
// nearest integer for integer kinds.
func fromFloat[N Number](f float64) N {
	if isFloat[N]() {
		return N(f)
	}
	return N(math.Round(f))
}

func cmpValue[N Number](a, b N) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
