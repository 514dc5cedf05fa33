package units

import q "github.com/banshee-data/measures/quantity"

// Scalar relations.
type (
	// Distance covered at a constant speed: m/s × s = m.
	Distance = q.Product[MetresPerSecond, Seconds, Metres]
	// SpeedGain under constant acceleration: m/s² × s = m/s.
	SpeedGain = q.Product[MetresPerSecondSquared, Seconds, MetresPerSecond]
	// NewtonsLaw is F = m·a.
	NewtonsLaw = q.Product[Kilograms, MetresPerSecondSquared, Newtons]
	// Work done by a force along a distance: N × m = J.
	Work = q.Product[Newtons, Metres, Joules]
	// EnergyOverTime is W × s = J.
	EnergyOverTime = q.Product[Watts, Seconds, Joules]
	// PowerAtSpeed is N × m/s = W.
	PowerAtSpeed = q.Product[Newtons, MetresPerSecond, Watts]
	// SurfaceArea is m² = m × m.
	SurfaceArea = q.Squared[Metres, SquareMetres]
)

// Vector relations.
type (
	// Displacement is a velocity vector scaled by a duration.
	Displacement = q.Scaled[Seconds, MetresPerSecond, Metres]
	// VelocityChange is an acceleration vector scaled by a duration.
	VelocityChange = q.Scaled[Seconds, MetresPerSecondSquared, MetresPerSecond]
	// ForceVector is an acceleration vector scaled by a mass.
	ForceVector = q.Scaled[Kilograms, MetresPerSecondSquared, Newtons]
	// Moment is the lever arm crossed with a force, r × F.
	Moment = q.VectorProduct[Metres, Newtons, NewtonMetres]
	// Span is the signed area spanned by two displacements.
	Span = q.VectorProduct[Metres, Metres, SquareMetres]
)

// The dynamic layer sees the same relations as the typed operators.
func init() {
	must(q.RegisterProduct[Distance](q.Default))
	must(q.RegisterProduct[SpeedGain](q.Default))
	must(q.RegisterProduct[NewtonsLaw](q.Default))
	must(q.RegisterProduct[Work](q.Default))
	must(q.RegisterProduct[EnergyOverTime](q.Default))
	must(q.RegisterProduct[PowerAtSpeed](q.Default))
	must(q.RegisterSquared[SurfaceArea](q.Default))
	must(q.RegisterScaled[Displacement](q.Default))
	must(q.RegisterScaled[VelocityChange](q.Default))
	must(q.RegisterScaled[ForceVector](q.Default))
	must(q.RegisterVectorProduct[Moment](q.Default))
	must(q.RegisterVectorProduct[Span](q.Default))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
