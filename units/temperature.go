package units

import q "github.com/banshee-data/measures/quantity"

// Temperature scales differ in origin as well as step, so a Point1 of
// Celsius converts to Kelvin with an offset while a Vector1 (a
// temperature difference) only rescales.
var (
	temperature = q.MustDefineMagnitude("temperature", "kelvin", " K")
	kelvin      = q.MustAlias(temperature.Base(), "K")
	celsius     = q.MustAlias(q.MustDefineUnit(temperature, "celsius", " °C", 1, 273.15), "°C", "C")
	fahrenheit  = q.MustAlias(q.MustDefineUnit(temperature, "fahrenheit", " °F", 5.0/9.0, 273.15-32*5.0/9.0), "°F", "F")
)

type (
	Kelvin     struct{ q.In[Temperature] }
	Celsius    struct{ q.In[Temperature] }
	Fahrenheit struct{ q.In[Temperature] }
)

// Def binds each marker above to its registered descriptor.
func (Kelvin) Def() *q.UnitDef     { return kelvin }
func (Celsius) Def() *q.UnitDef    { return celsius }
func (Fahrenheit) Def() *q.UnitDef { return fahrenheit }
