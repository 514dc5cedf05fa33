package quantity

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/banshee-data/measures/internal/logging"
)

// Magnitude identifies a physical dimension. It has exactly one base unit
// with ratio 1 and offset 0.
type Magnitude struct {
	name  string
	base  *UnitDef
	units []*UnitDef
}

// Name returns the magnitude name, e.g. "length".
func (m *Magnitude) Name() string { return m.name }

// Base returns the base unit.
func (m *Magnitude) Base() *UnitDef { return m.base }

// Units returns every unit of the magnitude in definition order.
func (m *Magnitude) Units() []*UnitDef {
	out := make([]*UnitDef, len(m.units))
	copy(out, m.units)
	return out
}

// IsAngular reports whether the magnitude measures angles.
func (m *Magnitude) IsAngular() bool { return m.base.turn > 0 }

// String returns the magnitude name.
func (m *Magnitude) String() string { return m.name }

// UnitDef is the runtime descriptor of a unit. A value in the unit maps to
// the base unit as value*Ratio + Offset.
type UnitDef struct {
	name      string
	suffix    string
	ratio     float64
	offset    float64
	turn      float64
	magnitude *Magnitude
}

// Name returns the unit name.
func (u *UnitDef) Name() string { return u.name }

// Suffix returns the display suffix appended to formatted values.
func (u *UnitDef) Suffix() string { return u.suffix }

// Ratio returns the multiplier to the base unit.
func (u *UnitDef) Ratio() float64 { return u.ratio }

// Offset returns the shift of the unit origin, in base units.
func (u *UnitDef) Offset() float64 { return u.offset }

// TurnFraction returns how many unit increments make one revolution, or 0
// for non-angular units.
func (u *UnitDef) TurnFraction() float64 { return u.turn }

// Magnitude returns the magnitude the unit measures.
func (u *UnitDef) Magnitude() *Magnitude { return u.magnitude }

// String returns the unit name.
func (u *UnitDef) String() string { return u.name }

// Compatible reports whether a and b measure the same magnitude.
func Compatible(a, b *UnitDef) bool {
	return a != nil && b != nil && a.magnitude == b.magnitude
}

// MagnitudeOf returns the magnitude carried by a runtime descriptor.
func MagnitudeOf(u *UnitDef) *Magnitude {
	if u == nil {
		return nil
	}
	return u.magnitude
}

type relationKind int

const (
	relProduct relationKind = iota
	relQuotient
	relRoot
	relScaled
	relScaledQuotient
	relDot
	relCross
)

func (k relationKind) String() string {
	switch k {
	case relProduct:
		return "*"
	case relQuotient:
		return "/"
	case relRoot:
		return "sqrt"
	case relScaled:
		return "scale"
	case relScaledQuotient:
		return "scale/"
	case relDot:
		return "dot"
	case relCross:
		return "cross"
	default:
		return "unknown"
	}
}

type relationKey struct {
	kind        relationKind
	left, right *UnitDef
}

// Relation is one row of a registry's derived-unit table.
type Relation struct {
	Op     string
	Left   *UnitDef
	Right  *UnitDef
	Result *UnitDef
}

// Registry holds magnitudes, units, aliases and derived-unit relations.
// Definitions are made during initialisation; after Freeze the registry
// is read-only. All methods are safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	frozen     bool
	magnitudes map[string]*Magnitude
	order      []*Magnitude
	units      map[string]*UnitDef
	suffixes   map[string]*UnitDef
	relations  map[relationKey]*UnitDef
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		magnitudes: make(map[string]*Magnitude),
		units:      make(map[string]*UnitDef),
		suffixes:   make(map[string]*UnitDef),
		relations:  make(map[relationKey]*UnitDef),
	}
}

// Default is the process-wide registry populated by package units.
var Default = NewRegistry()

// DefineMagnitude declares a magnitude together with its base unit.
func (r *Registry) DefineMagnitude(name, baseName, baseSuffix string) (*Magnitude, error) {
	return r.defineMagnitude(name, baseName, baseSuffix, 0)
}

// DefineAngleMagnitude declares an angular magnitude whose base unit has
// turn increments per revolution (2π for radians).
func (r *Registry) DefineAngleMagnitude(name, baseName, baseSuffix string, turn float64) (*Magnitude, error) {
	if !(turn > 0) {
		return nil, fmt.Errorf("magnitude %q: turn fraction must be positive, got %g: %w", name, turn, ErrInvalidDefinition)
	}
	return r.defineMagnitude(name, baseName, baseSuffix, turn)
}

func (r *Registry) defineMagnitude(name, baseName, baseSuffix string, turn float64) (*Magnitude, error) {
	if name == "" {
		return nil, fmt.Errorf("magnitude name is empty: %w", ErrInvalidDefinition)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return nil, fmt.Errorf("define magnitude %q: %w", name, ErrRegistryFrozen)
	}
	if _, ok := r.magnitudes[name]; ok {
		return nil, fmt.Errorf("magnitude %q: %w", name, ErrDuplicateName)
	}

	m := &Magnitude{name: name}
	base := &UnitDef{name: baseName, suffix: baseSuffix, ratio: 1, turn: turn, magnitude: m}
	if err := r.checkUnitLocked(base); err != nil {
		return nil, err
	}
	m.base = base
	r.magnitudes[name] = m
	r.order = append(r.order, m)
	r.addUnitLocked(base)

	logging.Diagf("defined magnitude %s with base unit %s (%q)", name, baseName, baseSuffix)
	return m, nil
}

// DefineUnit declares a unit of m. A value x in the unit equals
// x*ratio + offset base units.
func (r *Registry) DefineUnit(m *Magnitude, name, suffix string, ratio, offset float64) (*UnitDef, error) {
	if m == nil {
		return nil, fmt.Errorf("unit %q: nil magnitude: %w", name, ErrInvalidDefinition)
	}
	if m.IsAngular() {
		return nil, fmt.Errorf("unit %q: use DefineAngleUnit for magnitude %q: %w", name, m.name, ErrInvalidDefinition)
	}
	if !(ratio > 0) {
		return nil, fmt.Errorf("unit %q: ratio must be positive, got %g: %w", name, ratio, ErrInvalidDefinition)
	}
	return r.defineUnit(&UnitDef{name: name, suffix: suffix, ratio: ratio, offset: offset, magnitude: m})
}

// DefineAngleUnit declares an angular unit of m with turn increments per
// revolution: 360 for degrees, 1 for turns.
func (r *Registry) DefineAngleUnit(m *Magnitude, name, suffix string, turn float64) (*UnitDef, error) {
	if m == nil {
		return nil, fmt.Errorf("unit %q: nil magnitude: %w", name, ErrInvalidDefinition)
	}
	if !m.IsAngular() {
		return nil, fmt.Errorf("unit %q: magnitude %q is not angular: %w", name, m.name, ErrInvalidDefinition)
	}
	if !(turn > 0) {
		return nil, fmt.Errorf("unit %q: turn fraction must be positive, got %g: %w", name, turn, ErrInvalidDefinition)
	}
	return r.defineUnit(&UnitDef{name: name, suffix: suffix, ratio: m.base.turn / turn, turn: turn, magnitude: m})
}

func (r *Registry) defineUnit(u *UnitDef) (*UnitDef, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return nil, fmt.Errorf("define unit %q: %w", u.name, ErrRegistryFrozen)
	}
	if r.magnitudes[u.magnitude.name] != u.magnitude {
		return nil, fmt.Errorf("unit %q: magnitude %q belongs to another registry: %w", u.name, u.magnitude.name, ErrInvalidDefinition)
	}
	if err := r.checkUnitLocked(u); err != nil {
		return nil, err
	}
	r.addUnitLocked(u)

	logging.Diagf("defined unit %s of %s: ratio=%g offset=%g", u.name, u.magnitude.name, u.ratio, u.offset)
	return u, nil
}

func (r *Registry) checkUnitLocked(u *UnitDef) error {
	if u.name == "" {
		return fmt.Errorf("unit name is empty: %w", ErrInvalidDefinition)
	}
	if _, ok := r.units[u.name]; ok {
		return fmt.Errorf("unit %q: %w", u.name, ErrDuplicateName)
	}
	if _, ok := r.suffixes[u.suffix]; ok {
		return fmt.Errorf("unit %q: suffix %q: %w", u.name, u.suffix, ErrDuplicateName)
	}
	return nil
}

func (r *Registry) addUnitLocked(u *UnitDef) {
	r.units[u.name] = u
	r.suffixes[u.suffix] = u
	u.magnitude.units = append(u.magnitude.units, u)
}

// Alias registers an additional lookup name for u.
func (r *Registry) Alias(u *UnitDef, name string) error {
	if u == nil || name == "" {
		return fmt.Errorf("alias %q: %w", name, ErrInvalidDefinition)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return fmt.Errorf("alias %q: %w", name, ErrRegistryFrozen)
	}
	if existing, ok := r.units[name]; ok {
		if existing == u {
			return nil
		}
		return fmt.Errorf("alias %q: %w", name, ErrDuplicateName)
	}
	r.units[name] = u
	return nil
}

// Freeze makes the registry read-only.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Unit looks a unit up by name or alias.
func (r *Registry) Unit(name string) (*UnitDef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.units[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownUnit)
	}
	return u, nil
}

// UnitBySuffix looks a unit up by its display suffix.
func (r *Registry) UnitBySuffix(suffix string) (*UnitDef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.suffixes[suffix]
	if !ok {
		return nil, fmt.Errorf("suffix %q: %w", suffix, ErrUnknownUnit)
	}
	return u, nil
}

// Magnitude looks a magnitude up by name.
func (r *Registry) Magnitude(name string) (*Magnitude, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.magnitudes[name]
	if !ok {
		return nil, fmt.Errorf("magnitude %q: %w", name, ErrUnknownUnit)
	}
	return m, nil
}

// Magnitudes returns every magnitude in definition order.
func (r *Registry) Magnitudes() []*Magnitude {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Magnitude, len(r.order))
	copy(out, r.order)
	return out
}

// suffixesLongestFirst is used by the parser so that " km" wins over " m".
func (r *Registry) suffixesLongestFirst() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.suffixes))
	for s := range r.suffixes {
		out = append(out, s)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

type relationRow struct {
	kind                relationKind
	left, right, result *UnitDef
}

// registerAll adds rows to the relation table. Either every row is added
// or none is. Re-registering an identical row is a no-op.
func (r *Registry) registerAll(rows []relationRow) error {
	for _, row := range rows {
		if row.left == nil || row.result == nil || (row.right == nil && row.kind != relRoot) {
			return fmt.Errorf("%s relation: nil unit: %w", row.kind, ErrInvalidDefinition)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return fmt.Errorf("%s relation %s: %w", rows[0].kind, rows[0].left.name, ErrRegistryFrozen)
	}
	for _, row := range rows {
		key := relationKey{kind: row.kind, left: row.left, right: row.right}
		if existing, ok := r.relations[key]; ok && existing != row.result {
			return fmt.Errorf("%s relation %s, %s already yields %s: %w",
				row.kind, row.left.name, nameOf(row.right), existing.name, ErrDuplicateName)
		}
	}
	for _, row := range rows {
		r.relations[relationKey{kind: row.kind, left: row.left, right: row.right}] = row.result
		logging.Diagf("registered relation %s %s %s -> %s", row.left.name, row.kind, nameOf(row.right), row.result.name)
	}
	return nil
}

func nameOf(u *UnitDef) string {
	if u == nil {
		return "-"
	}
	return u.name
}

func (r *Registry) relation(kind relationKind, left, right *UnitDef) (*UnitDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.relations[relationKey{kind: kind, left: left, right: right}]
	return u, ok
}

// Relations returns the derived-unit table sorted by operator and unit
// names. Right is nil for square roots.
func (r *Registry) Relations() []Relation {
	r.mu.RLock()
	out := make([]Relation, 0, len(r.relations))
	for k, v := range r.relations {
		out = append(out, Relation{Op: k.kind.String(), Left: k.left, Right: k.right, Result: v})
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Op != b.Op {
			return a.Op < b.Op
		}
		if a.Left.name != b.Left.name {
			return a.Left.name < b.Left.name
		}
		return strings.Compare(nameOf(a.Right), nameOf(b.Right)) < 0
	})
	return out
}

// MustDefineMagnitude defines a magnitude in Default and panics on error.
// It is intended for package-level variable initialisation.
func MustDefineMagnitude(name, baseName, baseSuffix string) *Magnitude {
	m, err := Default.DefineMagnitude(name, baseName, baseSuffix)
	if err != nil {
		panic(err)
	}
	return m
}

// MustDefineAngleMagnitude is the DefineAngleMagnitude counterpart of
// MustDefineMagnitude.
func MustDefineAngleMagnitude(name, baseName, baseSuffix string, turn float64) *Magnitude {
	m, err := Default.DefineAngleMagnitude(name, baseName, baseSuffix, turn)
	if err != nil {
		panic(err)
	}
	return m
}

// MustDefineUnit defines a unit in Default and panics on error.
func MustDefineUnit(m *Magnitude, name, suffix string, ratio, offset float64) *UnitDef {
	u, err := Default.DefineUnit(m, name, suffix, ratio, offset)
	if err != nil {
		panic(err)
	}
	return u
}

// MustDefineAngleUnit defines an angular unit in Default and panics on error.
func MustDefineAngleUnit(m *Magnitude, name, suffix string, turn float64) *UnitDef {
	u, err := Default.DefineAngleUnit(m, name, suffix, turn)
	if err != nil {
		panic(err)
	}
	return u
}

// MustAlias adds an alias in Default and panics on error.
func MustAlias(u *UnitDef, names ...string) *UnitDef {
	for _, name := range names {
		if err := Default.Alias(u, name); err != nil {
			panic(err)
		}
	}
	return u
}
