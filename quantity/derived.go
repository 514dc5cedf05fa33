package quantity

import (
	"fmt"
	"sync"
)

// Derived units are declared with relation types rather than inferred.
// A relation is named once, usually as an alias in the package that
// declares the units:
//
//	type Work = quantity.Product[Newtons, Metres, Joules]
//
// and every operator of its family is then available with the relation
// as the only explicit type argument:
//
//	e := quantity.Mul[Work](force, distance)     // Joules
//	d := quantity.DivFirst[Work](e, force)       // Metres
//
// The relation must also be registered in Default, which the units
// package does for the stock relations in its init. An operator called
// with an unregistered relation, or one that contradicts the table (the
// same operands yielding another unit), panics with ErrNoRelation. A
// confirmed relation is cached, so later calls cost one map read.

// Product declares A × B = R for Vector1 quantities.
type Product[A, B, R Unit] struct{}

// Squared declares A × A = R, with R's square root in A.
type Squared[A, R Unit] struct{}

// Scaled declares that scaling a vector of V by a scalar of S yields a
// vector of R, e.g. a velocity times a duration is a displacement.
type Scaled[S, V, R Unit] struct{}

// VectorProduct declares that the dot product of vectors of A and B is a
// scalar of R, their 2-D cross product is a scalar of R and their 3-D
// cross product a vector of R.
type VectorProduct[A, B, R Unit] struct{}

// Mul returns a×b.
func Mul[Rel interface{ Product[A, B, R] }, A, B, R Unit, N Number](a Vector1[A, N], b Vector1[B, N]) Vector1[R, N] {
	checkProduct[A, B, R]()
	return Vector1[R, N]{v: a.v * b.v}
}

// MulSwapped returns b×a, the same product with the operands reversed.
func MulSwapped[Rel interface{ Product[A, B, R] }, A, B, R Unit, N Number](b Vector1[B, N], a Vector1[A, N]) Vector1[R, N] {
	checkProduct[A, B, R]()
	return Vector1[R, N]{v: b.v * a.v}
}

// DivFirst returns r/a, dividing the first factor out of the product.
func DivFirst[Rel interface{ Product[A, B, R] }, A, B, R Unit, N Number](r Vector1[R, N], a Vector1[A, N]) Vector1[B, N] {
	checkProduct[A, B, R]()
	return Vector1[B, N]{v: r.v / a.v}
}

// DivSecond returns r/b, dividing the second factor out of the product.
func DivSecond[Rel interface{ Product[A, B, R] }, A, B, R Unit, N Number](r Vector1[R, N], b Vector1[B, N]) Vector1[A, N] {
	checkProduct[A, B, R]()
	return Vector1[A, N]{v: r.v / b.v}
}

// Square returns a².
func Square[Rel interface{ Squared[A, R] }, A, R Unit, N Number](a Vector1[A, N]) Vector1[R, N] {
	checkSquared[A, R]()
	return Vector1[R, N]{v: a.v * a.v}
}

// Sqrt returns the square root of r. Negative values yield NaN for float
// kinds.
func Sqrt[Rel interface{ Squared[A, R] }, A, R Unit, N Number](r Vector1[R, N]) Vector1[A, N] {
	checkSquared[A, R]()
	return Vector1[A, N]{v: sqrt(r.v)}
}

// SquareDiv returns r/a.
func SquareDiv[Rel interface{ Squared[A, R] }, A, R Unit, N Number](r Vector1[R, N], a Vector1[A, N]) Vector1[A, N] {
	checkSquared[A, R]()
	return Vector1[A, N]{v: r.v / a.v}
}

// MulSame returns a1×a2 for two values of the squared unit.
func MulSame[Rel interface{ Squared[A, R] }, A, R Unit, N Number](a1, a2 Vector1[A, N]) Vector1[R, N] {
	checkSquared[A, R]()
	return Vector1[R, N]{v: a1.v * a2.v}
}

// Scale2 returns s·v.
func Scale2[Rel interface{ Scaled[S, V, R] }, S, V, R Unit, N Number](s Vector1[S, N], v Vector2[V, N]) Vector2[R, N] {
	checkScaled[S, V, R]()
	return Vector2[R, N]{x: s.v * v.x, y: s.v * v.y}
}

// ScaleSwapped2 returns v·s.
func ScaleSwapped2[Rel interface{ Scaled[S, V, R] }, S, V, R Unit, N Number](v Vector2[V, N], s Vector1[S, N]) Vector2[R, N] {
	checkScaled[S, V, R]()
	return Vector2[R, N]{x: v.x * s.v, y: v.y * s.v}
}

// ScaleDiv2 returns r/s.
func ScaleDiv2[Rel interface{ Scaled[S, V, R] }, S, V, R Unit, N Number](r Vector2[R, N], s Vector1[S, N]) Vector2[V, N] {
	checkScaled[S, V, R]()
	return Vector2[V, N]{x: r.x / s.v, y: r.y / s.v}
}

// Scale3 returns s·v.
func Scale3[Rel interface{ Scaled[S, V, R] }, S, V, R Unit, N Number](s Vector1[S, N], v Vector3[V, N]) Vector3[R, N] {
	checkScaled[S, V, R]()
	return Vector3[R, N]{x: s.v * v.x, y: s.v * v.y, z: s.v * v.z}
}

// ScaleSwapped3 returns v·s.
func ScaleSwapped3[Rel interface{ Scaled[S, V, R] }, S, V, R Unit, N Number](v Vector3[V, N], s Vector1[S, N]) Vector3[R, N] {
	checkScaled[S, V, R]()
	return Vector3[R, N]{x: v.x * s.v, y: v.y * s.v, z: v.z * s.v}
}

// ScaleDiv3 returns r/s.
func ScaleDiv3[Rel interface{ Scaled[S, V, R] }, S, V, R Unit, N Number](r Vector3[R, N], s Vector1[S, N]) Vector3[V, N] {
	checkScaled[S, V, R]()
	return Vector3[V, N]{x: r.x / s.v, y: r.y / s.v, z: r.z / s.v}
}

// Dot2 returns a·b.
func Dot2[Rel interface{ VectorProduct[A, B, R] }, A, B, R Unit, N Number](a Vector2[A, N], b Vector2[B, N]) Vector1[R, N] {
	checkVectorProduct[A, B, R]()
	return Vector1[R, N]{v: a.x*b.x + a.y*b.y}
}

// DotSwapped2 returns b·a.
func DotSwapped2[Rel interface{ VectorProduct[A, B, R] }, A, B, R Unit, N Number](b Vector2[B, N], a Vector2[A, N]) Vector1[R, N] {
	checkVectorProduct[A, B, R]()
	return Vector1[R, N]{v: b.x*a.x + b.y*a.y}
}

// Cross2 returns the signed area a×b = a.x·b.y - a.y·b.x.
func Cross2[Rel interface{ VectorProduct[A, B, R] }, A, B, R Unit, N Number](a Vector2[A, N], b Vector2[B, N]) Vector1[R, N] {
	checkVectorProduct[A, B, R]()
	return Vector1[R, N]{v: a.x*b.y - a.y*b.x}
}

// CrossSwapped2 returns b×a = -(a×b).
func CrossSwapped2[Rel interface{ VectorProduct[A, B, R] }, A, B, R Unit, N Number](b Vector2[B, N], a Vector2[A, N]) Vector1[R, N] {
	checkVectorProduct[A, B, R]()
	return Vector1[R, N]{v: b.x*a.y - b.y*a.x}
}

// Dot3 returns a·b.
func Dot3[Rel interface{ VectorProduct[A, B, R] }, A, B, R Unit, N Number](a Vector3[A, N], b Vector3[B, N]) Vector1[R, N] {
	checkVectorProduct[A, B, R]()
	return Vector1[R, N]{v: a.x*b.x + a.y*b.y + a.z*b.z}
}

// DotSwapped3 returns b·a.
func DotSwapped3[Rel interface{ VectorProduct[A, B, R] }, A, B, R Unit, N Number](b Vector3[B, N], a Vector3[A, N]) Vector1[R, N] {
	checkVectorProduct[A, B, R]()
	return Vector1[R, N]{v: b.x*a.x + b.y*a.y + b.z*a.z}
}

// Cross3 returns the vector product a×b.
func Cross3[Rel interface{ VectorProduct[A, B, R] }, A, B, R Unit, N Number](a Vector3[A, N], b Vector3[B, N]) Vector3[R, N] {
	checkVectorProduct[A, B, R]()
	return Vector3[R, N]{
		x: a.y*b.z - a.z*b.y,
		y: a.z*b.x - a.x*b.z,
		z: a.x*b.y - a.y*b.x,
	}
}

// CrossSwapped3 returns b×a = -(a×b).
func CrossSwapped3[Rel interface{ VectorProduct[A, B, R] }, A, B, R Unit, N Number](b Vector3[B, N], a Vector3[A, N]) Vector3[R, N] {
	checkVectorProduct[A, B, R]()
	return Vector3[R, N]{
		x: b.y*a.z - b.z*a.y,
		y: b.z*a.x - b.x*a.z,
		z: b.x*a.y - b.y*a.x,
	}
}

// RegisterProduct copies the Product relation Rel into reg so that dynamic
// quantities can use it.
func RegisterProduct[Rel interface{ Product[A, B, R] }, A, B, R Unit](reg *Registry) error {
	return reg.DefineProduct(defOf[A](), defOf[B](), defOf[R]())
}

// DefineProduct adds left × right = result, and both inverse divisions,
// to the relation table of r. Units only known at run time, such as those
// read from a catalogue file, are related this way.
func (r *Registry) DefineProduct(left, right, result *UnitDef) error {
	return r.registerAll([]relationRow{
		{relProduct, left, right, result},
		{relProduct, right, left, result},
		{relQuotient, result, left, right},
		{relQuotient, result, right, left},
	})
}

// RegisterSquared copies the Squared relation Rel into reg.
func RegisterSquared[Rel interface{ Squared[A, R] }, A, R Unit](reg *Registry) error {
	return reg.registerAll([]relationRow{
		{relProduct, defOf[A](), defOf[A](), defOf[R]()},
		{relQuotient, defOf[R](), defOf[A](), defOf[A]()},
		{relRoot, defOf[R](), nil, defOf[A]()},
	})
}

// RegisterScaled copies the Scaled relation Rel into reg.
func RegisterScaled[Rel interface{ Scaled[S, V, R] }, S, V, R Unit](reg *Registry) error {
	return reg.registerAll([]relationRow{
		{relScaled, defOf[S](), defOf[V](), defOf[R]()},
		{relScaledQuotient, defOf[R](), defOf[S](), defOf[V]()},
	})
}

// RegisterVectorProduct copies the VectorProduct relation Rel into reg.
func RegisterVectorProduct[Rel interface{ VectorProduct[A, B, R] }, A, B, R Unit](reg *Registry) error {
	return reg.registerAll([]relationRow{
		{relDot, defOf[A](), defOf[B](), defOf[R]()},
		{relDot, defOf[B](), defOf[A](), defOf[R]()},
		{relCross, defOf[A](), defOf[B](), defOf[R]()},
	})
}

// verified holds relation rows already confirmed against Default. Rows
// are never removed or rebound, so a confirmed row stays valid.
var verified sync.Map

func requireRelation(kind relationKind, left, right, result *UnitDef) {
	row := relationRow{kind: kind, left: left, right: right, result: result}
	if _, ok := verified.Load(row); ok {
		return
	}
	got, ok := Default.relation(kind, left, right)
	if !ok {
		panic(fmt.Errorf("quantity: %s relation %s, %s -> %s is not registered: %w",
			kind, left.name, nameOf(right), result.name, ErrNoRelation))
	}
	if got != result {
		panic(fmt.Errorf("quantity: %s relation %s, %s yields %s, not %s: %w",
			kind, left.name, nameOf(right), got.name, result.name, ErrNoRelation))
	}
	verified.Store(row, struct{}{})
}

func checkProduct[A, B, R Unit]() {
	requireRelation(relProduct, defOf[A](), defOf[B](), defOf[R]())
}

func checkSquared[A, R Unit]() {
	requireRelation(relRoot, defOf[R](), nil, defOf[A]())
	requireRelation(relProduct, defOf[A](), defOf[A](), defOf[R]())
}

func checkScaled[S, V, R Unit]() {
	requireRelation(relScaled, defOf[S](), defOf[V](), defOf[R]())
}

// The cross row is only written by RegisterVectorProduct; dot rows may be
// shared with another relation on the same operands.
func checkVectorProduct[A, B, R Unit]() {
	requireRelation(relCross, defOf[A](), defOf[B](), defOf[R]())
}
