package quantity

import (
	"fmt"

	"github.com/banshee-data/measures/internal/logging"
)

// The dynamic layer carries the unit as data. Every binary operation
// checks the units of its operands and returns an error instead of a
// wrong value; nothing is converted implicitly.

// checkSameUnit returns nil when a and b are the same unit, otherwise an
// error wrapping ErrMagnitudeMismatch or ErrUnitMismatch.
func checkSameUnit(op string, a, b *UnitDef) error {
	if a == nil || b == nil {
		err := fmt.Errorf("%s: %s and %s: %w", op, describe(a), describe(b), ErrNoUnit)
		logging.Tracef("rejected %v", err)
		return err
	}
	if a == b {
		return nil
	}
	var err error
	if Compatible(a, b) {
		err = fmt.Errorf("%s: %s and %s: %w", op, a.name, b.name, ErrUnitMismatch)
	} else {
		err = fmt.Errorf("%s: %s and %s: %w", op, describe(a), describe(b), ErrMagnitudeMismatch)
	}
	logging.Tracef("rejected %v", err)
	return err
}

func mustUnit(u *UnitDef) *UnitDef {
	if u == nil {
		panic("quantity: dynamic quantity with nil unit")
	}
	return u
}

// DynVector1 is a Vector1 whose unit is chosen at run time.
type DynVector1[N Number] struct {
	unit *UnitDef
	v    N
}

// NewDynVector1 returns v units of unit. It panics if unit is nil.
func NewDynVector1[N Number](unit *UnitDef, v N) DynVector1[N] {
	return DynVector1[N]{unit: mustUnit(unit), v: v}
}

// Value returns the raw number.
func (d DynVector1[N]) Value() N { return d.v }

// Unit returns the runtime unit, or nil for a zero value.
func (d DynVector1[N]) Unit() *UnitDef { return d.unit }

// Neg returns the opposite vector.
func (d DynVector1[N]) Neg() DynVector1[N] { return DynVector1[N]{unit: d.unit, v: -d.v} }

// Scale multiplies every component by k.
func (d DynVector1[N]) Scale(k N) DynVector1[N] { return DynVector1[N]{unit: d.unit, v: d.v * k} }

// Div divides every component by k.
func (d DynVector1[N]) Div(k N) DynVector1[N] { return DynVector1[N]{unit: d.unit, v: d.v / k} }

// Add returns d+w. Both must have the same unit.
func (d DynVector1[N]) Add(w DynVector1[N]) (DynVector1[N], error) {
	if err := checkSameUnit("add", d.unit, w.unit); err != nil {
		return DynVector1[N]{}, err
	}
	return DynVector1[N]{unit: d.unit, v: d.v + w.v}, nil
}

// Sub returns d-w. Both must have the same unit.
func (d DynVector1[N]) Sub(w DynVector1[N]) (DynVector1[N], error) {
	if err := checkSameUnit("sub", d.unit, w.unit); err != nil {
		return DynVector1[N]{}, err
	}
	return DynVector1[N]{unit: d.unit, v: d.v - w.v}, nil
}

// Ratio returns d/w as a plain number.
func (d DynVector1[N]) Ratio(w DynVector1[N]) (N, error) {
	if err := checkSameUnit("ratio", d.unit, w.unit); err != nil {
		return 0, err
	}
	return d.v / w.v, nil
}

// Cmp compares d and w like Vector1.Cmp.
func (d DynVector1[N]) Cmp(w DynVector1[N]) (int, error) {
	if err := checkSameUnit("compare", d.unit, w.unit); err != nil {
		return 0, err
	}
	return cmpValue(d.v, w.v), nil
}

// IsEqual reports whether |d-w| <= tol. All three must share a unit.
func (d DynVector1[N]) IsEqual(w, tol DynVector1[N]) (bool, error) {
	if err := checkSameUnit("compare", d.unit, w.unit); err != nil {
		return false, err
	}
	if err := checkSameUnit("tolerance", d.unit, tol.unit); err != nil {
		return false, err
	}
	return absDiff(d.v, w.v) <= tol.v, nil
}

// Norm returns |d|.
func (d DynVector1[N]) Norm() DynVector1[N] { return DynVector1[N]{unit: d.unit, v: abs(d.v)} }

// Convert expresses d in to, which must measure the same magnitude.
func (d DynVector1[N]) Convert(to *UnitDef) (DynVector1[N], error) {
	if err := checkConvertible(d.unit, to); err != nil {
		return DynVector1[N]{}, err
	}
	return DynVector1[N]{unit: to, v: convertVector(conversionBetween(d.unit, to), d.v)}, nil
}

// DynPoint1 is a Point1 whose unit is chosen at run time.
type DynPoint1[N Number] struct {
	unit *UnitDef
	v    N
}

// NewDynPoint1 returns the position v in unit. It panics if unit is nil.
func NewDynPoint1[N Number](unit *UnitDef, v N) DynPoint1[N] {
	return DynPoint1[N]{unit: mustUnit(unit), v: v}
}

// Value returns the raw number.
func (p DynPoint1[N]) Value() N { return p.v }

// Unit returns the runtime unit, or nil for a zero value.
func (p DynPoint1[N]) Unit() *UnitDef { return p.unit }

// Add returns p moved by d. Both must have the same unit.
func (p DynPoint1[N]) Add(d DynVector1[N]) (DynPoint1[N], error) {
	if err := checkSameUnit("add", p.unit, d.unit); err != nil {
		return DynPoint1[N]{}, err
	}
	return DynPoint1[N]{unit: p.unit, v: p.v + d.v}, nil
}

// Sub returns p moved back by d. Both must have the same unit.
func (p DynPoint1[N]) Sub(d DynVector1[N]) (DynPoint1[N], error) {
	if err := checkSameUnit("sub", p.unit, d.unit); err != nil {
		return DynPoint1[N]{}, err
	}
	return DynPoint1[N]{unit: p.unit, v: p.v - d.v}, nil
}

// SubPoint returns the displacement p-q.
func (p DynPoint1[N]) SubPoint(q DynPoint1[N]) (DynVector1[N], error) {
	if err := checkSameUnit("sub", p.unit, q.unit); err != nil {
		return DynVector1[N]{}, err
	}
	return DynVector1[N]{unit: p.unit, v: p.v - q.v}, nil
}

// Midpoint returns the position halfway between p and q.
func (p DynPoint1[N]) Midpoint(q DynPoint1[N]) (DynPoint1[N], error) {
	if err := checkSameUnit("midpoint", p.unit, q.unit); err != nil {
		return DynPoint1[N]{}, err
	}
	return DynPoint1[N]{unit: p.unit, v: midValue(p.v, q.v)}, nil
}

// Convert expresses p in to, shifting it by the difference of the unit
// origins.
func (p DynPoint1[N]) Convert(to *UnitDef) (DynPoint1[N], error) {
	if err := checkConvertible(p.unit, to); err != nil {
		return DynPoint1[N]{}, err
	}
	return DynPoint1[N]{unit: to, v: convertPoint(conversionBetween(p.unit, to), p.v)}, nil
}

// DynVector2 is a Vector2 whose unit is chosen at run time.
type DynVector2[N Number] struct {
	unit *UnitDef
	x, y N
}

// NewDynVector2 returns (x, y) in unit. It panics if unit is nil.
func NewDynVector2[N Number](unit *UnitDef, x, y N) DynVector2[N] {
	return DynVector2[N]{unit: mustUnit(unit), x: x, y: y}
}

// Values returns the raw components.
func (d DynVector2[N]) Values() (x, y N) { return d.x, d.y }

// Unit returns the runtime unit, or nil for a zero value.
func (d DynVector2[N]) Unit() *UnitDef { return d.unit }

// X returns the x component.
func (d DynVector2[N]) X() DynVector1[N] { return DynVector1[N]{unit: d.unit, v: d.x} }

// Y returns the y component.
func (d DynVector2[N]) Y() DynVector1[N] { return DynVector1[N]{unit: d.unit, v: d.y} }

// Neg returns the opposite vector.
func (d DynVector2[N]) Neg() DynVector2[N] { return DynVector2[N]{unit: d.unit, x: -d.x, y: -d.y} }

// Scale multiplies every component by k.
func (d DynVector2[N]) Scale(k N) DynVector2[N] {
	return DynVector2[N]{unit: d.unit, x: d.x * k, y: d.y * k}
}

// Add returns d+w. Both must have the same unit.
func (d DynVector2[N]) Add(w DynVector2[N]) (DynVector2[N], error) {
	if err := checkSameUnit("add", d.unit, w.unit); err != nil {
		return DynVector2[N]{}, err
	}
	return DynVector2[N]{unit: d.unit, x: d.x + w.x, y: d.y + w.y}, nil
}

// Sub returns d-w. Both must have the same unit.
func (d DynVector2[N]) Sub(w DynVector2[N]) (DynVector2[N], error) {
	if err := checkSameUnit("sub", d.unit, w.unit); err != nil {
		return DynVector2[N]{}, err
	}
	return DynVector2[N]{unit: d.unit, x: d.x - w.x, y: d.y - w.y}, nil
}

// Norm returns the Euclidean length in the same unit.
func (d DynVector2[N]) Norm() DynVector1[N] {
	return DynVector1[N]{unit: d.unit, v: sqrt(d.x*d.x + d.y*d.y)}
}

// Convert expresses the quantity in to, which must measure the same magnitude.
func (d DynVector2[N]) Convert(to *UnitDef) (DynVector2[N], error) {
	if err := checkConvertible(d.unit, to); err != nil {
		return DynVector2[N]{}, err
	}
	c := conversionBetween(d.unit, to)
	return DynVector2[N]{unit: to, x: convertVector(c, d.x), y: convertVector(c, d.y)}, nil
}

// DynPoint2 is a Point2 whose unit is chosen at run time.
type DynPoint2[N Number] struct {
	unit *UnitDef
	x, y N
}

// NewDynPoint2 returns the position (x, y) in unit. It panics if unit is nil.
func NewDynPoint2[N Number](unit *UnitDef, x, y N) DynPoint2[N] {
	return DynPoint2[N]{unit: mustUnit(unit), x: x, y: y}
}

// Values returns the raw components.
func (p DynPoint2[N]) Values() (x, y N) { return p.x, p.y }

// Unit returns the runtime unit, or nil for a zero value.
func (p DynPoint2[N]) Unit() *UnitDef { return p.unit }

// Add returns p moved by d. Both must have the same unit.
func (p DynPoint2[N]) Add(d DynVector2[N]) (DynPoint2[N], error) {
	if err := checkSameUnit("add", p.unit, d.unit); err != nil {
		return DynPoint2[N]{}, err
	}
	return DynPoint2[N]{unit: p.unit, x: p.x + d.x, y: p.y + d.y}, nil
}

// Sub returns p moved back by d. Both must have the same unit.
func (p DynPoint2[N]) Sub(d DynVector2[N]) (DynPoint2[N], error) {
	if err := checkSameUnit("sub", p.unit, d.unit); err != nil {
		return DynPoint2[N]{}, err
	}
	return DynPoint2[N]{unit: p.unit, x: p.x - d.x, y: p.y - d.y}, nil
}

// SubPoint returns the displacement p-q. Both must have the same unit.
func (p DynPoint2[N]) SubPoint(q DynPoint2[N]) (DynVector2[N], error) {
	if err := checkSameUnit("sub", p.unit, q.unit); err != nil {
		return DynVector2[N]{}, err
	}
	return DynVector2[N]{unit: p.unit, x: p.x - q.x, y: p.y - q.y}, nil
}

// Convert expresses the quantity in to, which must measure the same magnitude.
func (p DynPoint2[N]) Convert(to *UnitDef) (DynPoint2[N], error) {
	if err := checkConvertible(p.unit, to); err != nil {
		return DynPoint2[N]{}, err
	}
	c := conversionBetween(p.unit, to)
	return DynPoint2[N]{unit: to, x: convertPoint(c, p.x), y: convertPoint(c, p.y)}, nil
}

// DynVector3 is a Vector3 whose unit is chosen at run time.
type DynVector3[N Number] struct {
	unit    *UnitDef
	x, y, z N
}

// NewDynVector3 returns (x, y, z) in unit. It panics if unit is nil.
func NewDynVector3[N Number](unit *UnitDef, x, y, z N) DynVector3[N] {
	return DynVector3[N]{unit: mustUnit(unit), x: x, y: y, z: z}
}

// Values returns the raw components.
func (d DynVector3[N]) Values() (x, y, z N) { return d.x, d.y, d.z }

// Unit returns the runtime unit, or nil for a zero value.
func (d DynVector3[N]) Unit() *UnitDef { return d.unit }

// Neg returns the opposite vector.
func (d DynVector3[N]) Neg() DynVector3[N] {
	return DynVector3[N]{unit: d.unit, x: -d.x, y: -d.y, z: -d.z}
}

// Scale multiplies every component by k.
func (d DynVector3[N]) Scale(k N) DynVector3[N] {
	return DynVector3[N]{unit: d.unit, x: d.x * k, y: d.y * k, z: d.z * k}
}

// Add returns d+w. Both must have the same unit.
func (d DynVector3[N]) Add(w DynVector3[N]) (DynVector3[N], error) {
	if err := checkSameUnit("add", d.unit, w.unit); err != nil {
		return DynVector3[N]{}, err
	}
	return DynVector3[N]{unit: d.unit, x: d.x + w.x, y: d.y + w.y, z: d.z + w.z}, nil
}

// Sub returns d-w. Both must have the same unit.
func (d DynVector3[N]) Sub(w DynVector3[N]) (DynVector3[N], error) {
	if err := checkSameUnit("sub", d.unit, w.unit); err != nil {
		return DynVector3[N]{}, err
	}
	return DynVector3[N]{unit: d.unit, x: d.x - w.x, y: d.y - w.y, z: d.z - w.z}, nil
}

// Norm returns the Euclidean length in the same unit.
func (d DynVector3[N]) Norm() DynVector1[N] {
	return DynVector1[N]{unit: d.unit, v: sqrt(d.x*d.x + d.y*d.y + d.z*d.z)}
}

// Convert expresses the quantity in to, which must measure the same magnitude.
func (d DynVector3[N]) Convert(to *UnitDef) (DynVector3[N], error) {
	if err := checkConvertible(d.unit, to); err != nil {
		return DynVector3[N]{}, err
	}
	c := conversionBetween(d.unit, to)
	return DynVector3[N]{unit: to, x: convertVector(c, d.x), y: convertVector(c, d.y), z: convertVector(c, d.z)}, nil
}

// DynPoint3 is a Point3 whose unit is chosen at run time.
type DynPoint3[N Number] struct {
	unit    *UnitDef
	x, y, z N
}

// NewDynPoint3 returns the position (x, y, z) in unit. It panics if unit is nil.
func NewDynPoint3[N Number](unit *UnitDef, x, y, z N) DynPoint3[N] {
	return DynPoint3[N]{unit: mustUnit(unit), x: x, y: y, z: z}
}

// Values returns the raw components.
func (p DynPoint3[N]) Values() (x, y, z N) { return p.x, p.y, p.z }

// Unit returns the runtime unit, or nil for a zero value.
func (p DynPoint3[N]) Unit() *UnitDef { return p.unit }

// Add returns p moved by d. Both must have the same unit.
func (p DynPoint3[N]) Add(d DynVector3[N]) (DynPoint3[N], error) {
	if err := checkSameUnit("add", p.unit, d.unit); err != nil {
		return DynPoint3[N]{}, err
	}
	return DynPoint3[N]{unit: p.unit, x: p.x + d.x, y: p.y + d.y, z: p.z + d.z}, nil
}

// Sub returns p moved back by d. Both must have the same unit.
func (p DynPoint3[N]) Sub(d DynVector3[N]) (DynPoint3[N], error) {
	if err := checkSameUnit("sub", p.unit, d.unit); err != nil {
		return DynPoint3[N]{}, err
	}
	return DynPoint3[N]{unit: p.unit, x: p.x - d.x, y: p.y - d.y, z: p.z - d.z}, nil
}

// SubPoint returns the displacement p-q. Both must have the same unit.
func (p DynPoint3[N]) SubPoint(q DynPoint3[N]) (DynVector3[N], error) {
	if err := checkSameUnit("sub", p.unit, q.unit); err != nil {
		return DynVector3[N]{}, err
	}
	return DynVector3[N]{unit: p.unit, x: p.x - q.x, y: p.y - q.y, z: p.z - q.z}, nil
}

// Convert expresses the quantity in to, which must measure the same magnitude.
func (p DynPoint3[N]) Convert(to *UnitDef) (DynPoint3[N], error) {
	if err := checkConvertible(p.unit, to); err != nil {
		return DynPoint3[N]{}, err
	}
	c := conversionBetween(p.unit, to)
	return DynPoint3[N]{unit: to, x: convertPoint(c, p.x), y: convertPoint(c, p.y), z: convertPoint(c, p.z)}, nil
}

// Static to dynamic.

// Dynamic returns the quantity with its unit carried as data.
func (v Vector1[U, N]) Dynamic() DynVector1[N] { return DynVector1[N]{unit: defOf[U](), v: v.v} }

// Dynamic returns the quantity with its unit carried as data.
func (p Point1[U, N]) Dynamic() DynPoint1[N] { return DynPoint1[N]{unit: defOf[U](), v: p.v} }

// Dynamic returns the quantity with its unit carried as data.
func (v Vector2[U, N]) Dynamic() DynVector2[N] {
	return DynVector2[N]{unit: defOf[U](), x: v.x, y: v.y}
}

// Dynamic returns the quantity with its unit carried as data.
func (p Point2[U, N]) Dynamic() DynPoint2[N] {
	return DynPoint2[N]{unit: defOf[U](), x: p.x, y: p.y}
}

// Dynamic returns the quantity with its unit carried as data.
func (v Vector3[U, N]) Dynamic() DynVector3[N] {
	return DynVector3[N]{unit: defOf[U](), x: v.x, y: v.y, z: v.z}
}

// Dynamic returns the quantity with its unit carried as data.
func (p Point3[U, N]) Dynamic() DynPoint3[N] {
	return DynPoint3[N]{unit: defOf[U](), x: p.x, y: p.y, z: p.z}
}

// Dynamic to static. These convert into U when d's unit measures U's
// magnitude and fail with ErrIncompatibleUnits otherwise.

// Vector1Of converts a dynamic quantity into a Vector1 of U.
func Vector1Of[U Unit, N Number](d DynVector1[N]) (Vector1[U, N], error) {
	return NewVector1From[U](d.unit, d.v)
}

// Point1Of converts a dynamic quantity into a Point1 of U.
func Point1Of[U Unit, N Number](p DynPoint1[N]) (Point1[U, N], error) {
	return NewPoint1From[U](p.unit, p.v)
}

// Vector2Of converts a dynamic quantity into a Vector2 of U.
func Vector2Of[U Unit, N Number](d DynVector2[N]) (Vector2[U, N], error) {
	return NewVector2From[U](d.unit, d.x, d.y)
}

// Point2Of converts a dynamic quantity into a Point2 of U.
func Point2Of[U Unit, N Number](p DynPoint2[N]) (Point2[U, N], error) {
	return NewPoint2From[U](p.unit, p.x, p.y)
}

// Vector3Of converts a dynamic quantity into a Vector3 of U.
func Vector3Of[U Unit, N Number](d DynVector3[N]) (Vector3[U, N], error) {
	return NewVector3From[U](d.unit, d.x, d.y, d.z)
}

// Point3Of converts a dynamic quantity into a Point3 of U.
func Point3Of[U Unit, N Number](p DynPoint3[N]) (Point3[U, N], error) {
	return NewPoint3From[U](p.unit, p.x, p.y, p.z)
}

// Derived-unit algebra at run time. Each operation consults the relation
// table of reg, filled by the Register* functions, and fails with
// ErrNoRelation for unregistered unit pairs.

func (r *Registry) lookup(kind relationKind, left, right *UnitDef) (*UnitDef, error) {
	if left == nil || (right == nil && kind != relRoot) {
		return nil, fmt.Errorf("%s %s %s: %w", describe(left), kind, describe(right), ErrNoUnit)
	}
	res, ok := r.relation(kind, left, right)
	if !ok {
		err := fmt.Errorf("%s %s %s: %w", left.name, kind, nameOf(right), ErrNoRelation)
		logging.Tracef("rejected %v", err)
		return nil, err
	}
	return res, nil
}

// DynMul returns a×b in the unit registered for the pair.
func DynMul[N Number](reg *Registry, a, b DynVector1[N]) (DynVector1[N], error) {
	u, err := reg.lookup(relProduct, a.unit, b.unit)
	if err != nil {
		return DynVector1[N]{}, err
	}
	return DynVector1[N]{unit: u, v: a.v * b.v}, nil
}

// DynDiv returns a/b, where a is a registered product with b as a factor.
// Dividing two values of one unit is Ratio, not DynDiv.
func DynDiv[N Number](reg *Registry, a, b DynVector1[N]) (DynVector1[N], error) {
	u, err := reg.lookup(relQuotient, a.unit, b.unit)
	if err != nil {
		return DynVector1[N]{}, err
	}
	return DynVector1[N]{unit: u, v: a.v / b.v}, nil
}

// DynSqrt returns the square root of a registered square.
func DynSqrt[N Number](reg *Registry, a DynVector1[N]) (DynVector1[N], error) {
	u, err := reg.lookup(relRoot, a.unit, nil)
	if err != nil {
		return DynVector1[N]{}, err
	}
	return DynVector1[N]{unit: u, v: sqrt(a.v)}, nil
}

// DynScale2 returns s·v for a registered Scaled relation.
func DynScale2[N Number](reg *Registry, s DynVector1[N], v DynVector2[N]) (DynVector2[N], error) {
	u, err := reg.lookup(relScaled, s.unit, v.unit)
	if err != nil {
		return DynVector2[N]{}, err
	}
	return DynVector2[N]{unit: u, x: s.v * v.x, y: s.v * v.y}, nil
}

// DynScaleDiv2 returns v/s for a registered Scaled relation.
func DynScaleDiv2[N Number](reg *Registry, v DynVector2[N], s DynVector1[N]) (DynVector2[N], error) {
	u, err := reg.lookup(relScaledQuotient, v.unit, s.unit)
	if err != nil {
		return DynVector2[N]{}, err
	}
	return DynVector2[N]{unit: u, x: v.x / s.v, y: v.y / s.v}, nil
}

// DynScale3 returns s·v for a registered Scaled relation.
func DynScale3[N Number](reg *Registry, s DynVector1[N], v DynVector3[N]) (DynVector3[N], error) {
	u, err := reg.lookup(relScaled, s.unit, v.unit)
	if err != nil {
		return DynVector3[N]{}, err
	}
	return DynVector3[N]{unit: u, x: s.v * v.x, y: s.v * v.y, z: s.v * v.z}, nil
}

// DynScaleDiv3 returns v/s for a registered Scaled relation.
func DynScaleDiv3[N Number](reg *Registry, v DynVector3[N], s DynVector1[N]) (DynVector3[N], error) {
	u, err := reg.lookup(relScaledQuotient, v.unit, s.unit)
	if err != nil {
		return DynVector3[N]{}, err
	}
	return DynVector3[N]{unit: u, x: v.x / s.v, y: v.y / s.v, z: v.z / s.v}, nil
}

// DynDot2 returns a·b for a registered VectorProduct relation.
func DynDot2[N Number](reg *Registry, a, b DynVector2[N]) (DynVector1[N], error) {
	u, err := reg.lookup(relDot, a.unit, b.unit)
	if err != nil {
		return DynVector1[N]{}, err
	}
	return DynVector1[N]{unit: u, v: a.x*b.x + a.y*b.y}, nil
}

// DynDot3 returns a·b for a registered VectorProduct relation.
func DynDot3[N Number](reg *Registry, a, b DynVector3[N]) (DynVector1[N], error) {
	u, err := reg.lookup(relDot, a.unit, b.unit)
	if err != nil {
		return DynVector1[N]{}, err
	}
	return DynVector1[N]{unit: u, v: a.x*b.x + a.y*b.y + a.z*b.z}, nil
}

// crossUnit resolves the result of a×b. Only the declared operand order
// is stored; the swapped order is valid too and gives the same unit.
func (r *Registry) crossUnit(a, b *UnitDef) (*UnitDef, error) {
	if a == nil || b == nil {
		return r.lookup(relCross, a, b)
	}
	if u, ok := r.relation(relCross, a, b); ok {
		return u, nil
	}
	if u, ok := r.relation(relCross, b, a); ok {
		return u, nil
	}
	return r.lookup(relCross, a, b)
}

// DynCross2 returns the signed area a×b.
func DynCross2[N Number](reg *Registry, a, b DynVector2[N]) (DynVector1[N], error) {
	u, err := reg.crossUnit(a.unit, b.unit)
	if err != nil {
		return DynVector1[N]{}, err
	}
	return DynVector1[N]{unit: u, v: a.x*b.y - a.y*b.x}, nil
}

// DynCross3 returns the vector product a×b.
func DynCross3[N Number](reg *Registry, a, b DynVector3[N]) (DynVector3[N], error) {
	u, err := reg.crossUnit(a.unit, b.unit)
	if err != nil {
		return DynVector3[N]{}, err
	}
	return DynVector3[N]{
		unit: u,
		x:    a.y*b.z - a.z*b.y,
		y:    a.z*b.x - a.x*b.z,
		z:    a.x*b.y - a.y*b.x,
	}, nil
}
