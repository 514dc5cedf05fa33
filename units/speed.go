package units

import (
	"strings"

	q "github.com/banshee-data/measures/quantity"
)

// Speed unit names accepted by ConvertSpeed and ConvertToMPS. They are
// registered as aliases, so quantity.Default.Unit resolves them too.
const (
	MPS  = "mps"
	MPH  = "mph"
	KMPH = "kmph"
	KPH  = "kph"
	KN   = "kn"
)

var (
	metresPerSecond   = q.MustAlias(speed.Base(), MPS, "m/s")
	kilometresPerHour = q.MustAlias(q.MustDefineUnit(speed, "kilometres per hour", " km/h", 1/3.6, 0), KMPH, KPH, "km/h")
	milesPerHour      = q.MustAlias(q.MustDefineUnit(speed, "miles per hour", " mph", 0.44704, 0), MPH)
	knots             = q.MustAlias(q.MustDefineUnit(speed, "knots", " kn", 1852.0/3600.0, 0), KN, "knot")
)

type (
	MetresPerSecond   struct{ q.In[Speed] }
	KilometresPerHour struct{ q.In[Speed] }
	MilesPerHour      struct{ q.In[Speed] }
	Knots             struct{ q.In[Speed] }
)

// Def binds each marker above to its registered descriptor.
func (MetresPerSecond) Def() *q.UnitDef   { return metresPerSecond }
func (KilometresPerHour) Def() *q.UnitDef { return kilometresPerHour }
func (MilesPerHour) Def() *q.UnitDef      { return milesPerHour }
func (Knots) Def() *q.UnitDef             { return knots }

// ValidUnits contains all valid speed unit names
var ValidUnits = []string{MPS, MPH, KMPH, KPH, KN}

// IsValid checks if the given name is a valid speed unit. Names are
// case-sensitive.
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return strings.Join(ValidUnits, ", ")
}

// SpeedUnit resolves a speed unit name, falling back to metres per second
// for unknown names.
func SpeedUnit(name string) *q.UnitDef {
	if !IsValid(name) {
		return metresPerSecond
	}
	u, err := q.Default.Unit(name)
	if err != nil {
		return metresPerSecond
	}
	return u
}

// ConvertSpeed converts a speed from metres per second to the target units.
// Unknown units leave the value unchanged.
func ConvertSpeed(speedMPS float64, targetUnits string) float64 {
	d, err := q.NewDynVector1(metresPerSecond, speedMPS).Convert(SpeedUnit(targetUnits))
	if err != nil {
		return speedMPS
	}
	return d.Value()
}

// ConvertToMPS converts a speed in fromUnits to metres per second.
// Unknown units leave the value unchanged.
func ConvertToMPS(speed float64, fromUnits string) float64 {
	d, err := q.NewDynVector1(SpeedUnit(fromUnits), speed).Convert(metresPerSecond)
	if err != nil {
		return speed
	}
	return d.Value()
}
