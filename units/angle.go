package units

import (
	"math"

	q "github.com/banshee-data/measures/quantity"
)

var (
	angle    = q.MustDefineAngleMagnitude("angle", "radians", " rad", 2*math.Pi)
	radians  = q.MustAlias(angle.Base(), "rad")
	degrees  = q.MustAlias(q.MustDefineAngleUnit(angle, "degrees", "°", 360), "deg", "°")
	turns    = q.MustAlias(q.MustDefineAngleUnit(angle, "turns", " turn", 1), "turn", "rev")
	gradians = q.MustAlias(q.MustDefineAngleUnit(angle, "gradians", " gon", 400), "gon", "grad")
)

// Angular units. Each carries its turn fraction, so azimuths in any of
// them fold correctly: 360 degrees, 2π radians, 1 turn, 400 gradians.
type (
	Radians  struct{ q.In[q.Angle] }
	Degrees  struct{ q.In[q.Angle] }
	Turns    struct{ q.In[q.Angle] }
	Gradians struct{ q.In[q.Angle] }
)

// Def binds each marker above to its registered descriptor.
func (Radians) Def() *q.UnitDef  { return radians }
func (Degrees) Def() *q.UnitDef  { return degrees }
func (Turns) Def() *q.UnitDef    { return turns }
func (Gradians) Def() *q.UnitDef { return gradians }
