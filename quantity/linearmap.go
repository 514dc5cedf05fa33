package quantity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Maps are stored as dense row-major matrices: n×n for linear maps and
// (n+1)×(n+1) homogeneous matrices for affine maps, whose last row is
// [0 … 0 1]. A nil matrix is the identity, so zero-value maps are usable.

func identity(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// identities are shared by every zero-value map and must never be
// written to.
var identities = [...]*mat.Dense{2: identity(2), 3: identity(3), 4: identity(4)}

func orIdentity(m *mat.Dense, n int) *mat.Dense {
	if m == nil {
		return identities[n]
	}
	return m
}

// compose returns the matrix of "apply first, then second".
func compose(first, second *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Mul(second, first)
	return &out
}

func invert(m *mat.Dense) (*mat.Dense, error) {
	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularMap, err)
	}
	return &inv, nil
}

// homogeneous embeds an n×n linear part and a translation into an
// (n+1)×(n+1) matrix.
func homogeneous(linear *mat.Dense, translation []float64) *mat.Dense {
	n := len(translation)
	out := identity(n + 1)
	out.Slice(0, n, 0, n).(*mat.Dense).Copy(linear)
	for i, t := range translation {
		out.Set(i, n, t)
	}
	return out
}

func linearPart(m *mat.Dense, n int) *mat.Dense {
	out := mat.NewDense(n, n, nil)
	out.Copy(m.Slice(0, n, 0, n))
	return out
}

// apply2 multiplies (x, y) by the 2×2 linear block of m and adds the
// translation column when m is a 3×3 homogeneous matrix. It reads the
// backing array directly so that mapping a vector does not allocate.
func apply2(m *mat.Dense, x, y float64) (float64, float64) {
	r := m.RawMatrix()
	d, s := r.Data, r.Stride
	ox := d[0]*x + d[1]*y
	oy := d[s]*x + d[s+1]*y
	if r.Cols == 3 {
		ox += d[2]
		oy += d[s+2]
	}
	return ox, oy
}

// apply3 is apply2 for 3×3 linear and 4×4 homogeneous matrices.
func apply3(m *mat.Dense, x, y, z float64) (float64, float64, float64) {
	r := m.RawMatrix()
	d, s := r.Data, r.Stride
	ox := d[0]*x + d[1]*y + d[2]*z
	oy := d[s]*x + d[s+1]*y + d[s+2]*z
	oz := d[2*s]*x + d[2*s+1]*y + d[2*s+2]*z
	if r.Cols == 4 {
		ox += d[3]
		oy += d[s+3]
		oz += d[2*s+3]
	}
	return ox, oy, oz
}

// radians converts an angle expressed in A to radians.
func radians[A AngularUnit, N Number](angle Vector1[A, N]) float64 {
	return float64(angle.v) * 2 * math.Pi / turnOf[A]()
}
