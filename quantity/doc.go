// Package quantity owns the dimension-checked quantity model.
//
// Responsibilities: the magnitude/unit registry, 1-, 2- and 3-dimensional
// vectors and points, azimuths, derived-unit relations, unit conversion
// and the dynamic (runtime-unit) layer.
// Key types: Vector1, Point1, Vector2, Point2, Vector3, Point3,
// SignedAzimuth, UnsignedAzimuth, DynVector1, Registry, UnitDef.
//
// Units are zero-size marker types. A quantity is generic over its unit U
// and its numeric representation N, so mixing units, magnitudes, points
// and vectors fails to compile:
//
//	d := quantity.NewVector1[units.Metres](3.0)
//	t := quantity.NewVector1[units.Seconds](1.5)
//	d.Add(t) // does not compile
//
// Cross-magnitude arithmetic is only available through declared relation
// types (see Product, Squared, Scaled and VectorProduct). When a unit is
// only known at run time the Dyn* types carry a *UnitDef and every binary
// operation checks it, returning an error instead of a wrong value.
//
// Dependency rule: the package performs no I/O beyond the optional
// logging streams in internal/logging.
package quantity
