package quantity

import "fmt"

// Unit is implemented by the zero-size marker types that name a unit.
// Def returns the registered runtime descriptor of the unit.
type Unit interface {
	Def() *UnitDef
}

// In is embedded in a unit marker type to bind it to the magnitude marker M:
//
//	type Length struct{}
//	type Metres struct{ quantity.In[Length] }
//	func (Metres) Def() *quantity.UnitDef { return metres }
type In[M any] struct{}

// Magnitude returns the magnitude marker the unit belongs to.
func (In[M]) Magnitude() M {
	var m M
	return m
}

// UnitOf constrains a unit to the magnitude marker M. Conversions use it
// so that converting between magnitudes fails to compile.
type UnitOf[M any] interface {
	Unit
	Magnitude() M
}

// Angle is the magnitude marker shared by every angular unit.
type Angle struct{}

// AngularUnit is a unit of the Angle magnitude. Its descriptor must have
// been defined with DefineAngleUnit or DefineAngleMagnitude.
type AngularUnit interface {
	UnitOf[Angle]
}

func defOf[U Unit]() *UnitDef {
	var u U
	d := u.Def()
	if d == nil {
		panic(fmt.Sprintf("quantity: unit %T has no definition", u))
	}
	return d
}

// turnOf returns the number of A increments in one revolution.
func turnOf[A AngularUnit]() float64 {
	d := defOf[A]()
	if d.turn <= 0 {
		panic(fmt.Sprintf("quantity: unit %q is not an angular unit", d.name))
	}
	return d.turn
}

// UnitFor returns the runtime descriptor of the unit marker U.
func UnitFor[U Unit]() *UnitDef {
	return defOf[U]()
}
