package units

import q "github.com/banshee-data/measures/quantity"

// Magnitude markers. A unit marker embeds q.In[M] for exactly one of
// these; angular units use q.Angle.
type (
	Length       struct{}
	Time         struct{}
	Mass         struct{}
	Temperature  struct{}
	Speed        struct{}
	Acceleration struct{}
	Force        struct{}
	Energy       struct{}
	Power        struct{}
	Area         struct{}
	Torque       struct{}
	Frequency    struct{}
)

var (
	length       = q.MustDefineMagnitude("length", "metres", " m")
	timeMag      = q.MustDefineMagnitude("time", "seconds", " s")
	mass         = q.MustDefineMagnitude("mass", "kilograms", " kg")
	speed        = q.MustDefineMagnitude("speed", "metres per second", " m/s")
	acceleration = q.MustDefineMagnitude("acceleration", "metres per second squared", " m/s²")
	force        = q.MustDefineMagnitude("force", "newtons", " N")
	energy       = q.MustDefineMagnitude("energy", "joules", " J")
	power        = q.MustDefineMagnitude("power", "watts", " W")
	area         = q.MustDefineMagnitude("area", "square metres", " m²")
	torque       = q.MustDefineMagnitude("torque", "newton metres", " N·m")
	frequency    = q.MustDefineMagnitude("frequency", "hertz", " Hz")
)

// Length.
var (
	metres        = q.MustAlias(length.Base(), "m", "metre", "meters", "meter")
	kilometres    = q.MustAlias(q.MustDefineUnit(length, "kilometres", " km", 1000, 0), "km")
	centimetres   = q.MustAlias(q.MustDefineUnit(length, "centimetres", " cm", 0.01, 0), "cm")
	millimetres   = q.MustAlias(q.MustDefineUnit(length, "millimetres", " mm", 0.001, 0), "mm")
	miles         = q.MustAlias(q.MustDefineUnit(length, "miles", " mi", 1609.344, 0), "mi")
	feet          = q.MustAlias(q.MustDefineUnit(length, "feet", " ft", 0.3048, 0), "ft")
	inches        = q.MustAlias(q.MustDefineUnit(length, "inches", " in", 0.0254, 0), "in")
	nauticalMiles = q.MustAlias(q.MustDefineUnit(length, "nautical miles", " nmi", 1852, 0), "nmi")
)

type (
	Metres        struct{ q.In[Length] }
	Kilometres    struct{ q.In[Length] }
	Centimetres   struct{ q.In[Length] }
	Millimetres   struct{ q.In[Length] }
	Miles         struct{ q.In[Length] }
	Feet          struct{ q.In[Length] }
	Inches        struct{ q.In[Length] }
	NauticalMiles struct{ q.In[Length] }
)

// Def binds each marker above to its registered descriptor.
func (Metres) Def() *q.UnitDef        { return metres }
func (Kilometres) Def() *q.UnitDef    { return kilometres }
func (Centimetres) Def() *q.UnitDef   { return centimetres }
func (Millimetres) Def() *q.UnitDef   { return millimetres }
func (Miles) Def() *q.UnitDef         { return miles }
func (Feet) Def() *q.UnitDef          { return feet }
func (Inches) Def() *q.UnitDef        { return inches }
func (NauticalMiles) Def() *q.UnitDef { return nauticalMiles }

// Time.
var (
	seconds      = q.MustAlias(timeMag.Base(), "s", "second", "sec")
	milliseconds = q.MustAlias(q.MustDefineUnit(timeMag, "milliseconds", " ms", 0.001, 0), "ms")
	minutes      = q.MustAlias(q.MustDefineUnit(timeMag, "minutes", " min", 60, 0), "min")
	hours        = q.MustAlias(q.MustDefineUnit(timeMag, "hours", " h", 3600, 0), "h", "hr")
)

type (
	Seconds      struct{ q.In[Time] }
	Milliseconds struct{ q.In[Time] }
	Minutes      struct{ q.In[Time] }
	Hours        struct{ q.In[Time] }
)

// Def binds each marker above to its registered descriptor.
func (Seconds) Def() *q.UnitDef      { return seconds }
func (Milliseconds) Def() *q.UnitDef { return milliseconds }
func (Minutes) Def() *q.UnitDef      { return minutes }
func (Hours) Def() *q.UnitDef        { return hours }

// Mass.
var (
	kilograms = q.MustAlias(mass.Base(), "kg")
	grams     = q.MustAlias(q.MustDefineUnit(mass, "grams", " g", 0.001, 0), "g")
	pounds    = q.MustAlias(q.MustDefineUnit(mass, "pounds", " lb", 0.45359237, 0), "lb")
)

type (
	Kilograms struct{ q.In[Mass] }
	Grams     struct{ q.In[Mass] }
	Pounds    struct{ q.In[Mass] }
)

// Def binds each marker above to its registered descriptor.
func (Kilograms) Def() *q.UnitDef { return kilograms }
func (Grams) Def() *q.UnitDef     { return grams }
func (Pounds) Def() *q.UnitDef    { return pounds }

// Mechanics.
var (
	metresPerSecondSquared = acceleration.Base()
	newtons                = q.MustAlias(force.Base(), "N")
	joules                 = q.MustAlias(energy.Base(), "J")
	kilojoules             = q.MustAlias(q.MustDefineUnit(energy, "kilojoules", " kJ", 1000, 0), "kJ")
	kilowattHours          = q.MustAlias(q.MustDefineUnit(energy, "kilowatt hours", " kWh", 3.6e6, 0), "kWh")
	watts                  = q.MustAlias(power.Base(), "W")
	kilowatts              = q.MustAlias(q.MustDefineUnit(power, "kilowatts", " kW", 1000, 0), "kW")
	squareMetres           = q.MustAlias(area.Base(), "m2")
	hectares               = q.MustAlias(q.MustDefineUnit(area, "hectares", " ha", 1e4, 0), "ha")
	newtonMetres           = q.MustAlias(torque.Base(), "Nm")
	hertz                  = q.MustAlias(frequency.Base(), "Hz")
)

type (
	MetresPerSecondSquared struct{ q.In[Acceleration] }
	Newtons                struct{ q.In[Force] }
	Joules                 struct{ q.In[Energy] }
	Kilojoules             struct{ q.In[Energy] }
	KilowattHours          struct{ q.In[Energy] }
	Watts                  struct{ q.In[Power] }
	Kilowatts              struct{ q.In[Power] }
	SquareMetres           struct{ q.In[Area] }
	Hectares               struct{ q.In[Area] }
	NewtonMetres           struct{ q.In[Torque] }
	Hertz                  struct{ q.In[Frequency] }
)

// Def binds each marker above to its registered descriptor.
func (MetresPerSecondSquared) Def() *q.UnitDef { return metresPerSecondSquared }
func (Newtons) Def() *q.UnitDef                { return newtons }
func (Joules) Def() *q.UnitDef                 { return joules }
func (Kilojoules) Def() *q.UnitDef             { return kilojoules }
func (KilowattHours) Def() *q.UnitDef          { return kilowattHours }
func (Watts) Def() *q.UnitDef                  { return watts }
func (Kilowatts) Def() *q.UnitDef              { return kilowatts }
func (SquareMetres) Def() *q.UnitDef           { return squareMetres }
func (Hectares) Def() *q.UnitDef               { return hectares }
func (NewtonMetres) Def() *q.UnitDef           { return newtonMetres }
func (Hertz) Def() *q.UnitDef                  { return hertz }
