// Package config loads JSON unit catalogues: extra magnitudes, units,
// aliases and product relations applied to a quantity.Registry, plus the
// output settings and named charts of the measures command.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/measures/internal/logging"
	"github.com/banshee-data/measures/quantity"
)

// DefaultCataloguePath is the path to the catalogue applied by cmd/measures
// on top of the stock units.
const DefaultCataloguePath = "config/catalogue.defaults.json"

// Catalogue describes magnitudes, units and aliases to add to a registry,
// together with output settings of the measures command. Fields omitted
// from the JSON file keep their defaults, so partial catalogues are safe.
type Catalogue struct {
	Magnitudes []MagnitudeSpec      `json:"magnitudes,omitempty"`
	Units      []UnitSpec           `json:"units,omitempty"`
	Aliases    map[string][]string  `json:"aliases,omitempty"`
	Relations  []RelationSpec       `json:"relations,omitempty"`
	Freeze     *bool                `json:"freeze,omitempty"`
	Precision  *int                 `json:"precision,omitempty"`
	Samples    *int                 `json:"samples,omitempty"`
	Charts     map[string]ChartSpec `json:"charts,omitempty"`
}

// MagnitudeSpec declares a magnitude and its base unit. A positive Turn
// declares an angular magnitude.
type MagnitudeSpec struct {
	Name       string     `json:"name"`
	BaseUnit   string     `json:"base_unit"`
	BaseSuffix string     `json:"base_suffix"`
	Turn       *float64   `json:"turn,omitempty"`
	Aliases    []string   `json:"aliases,omitempty"`
	Units      []UnitSpec `json:"units,omitempty"`
}

// UnitSpec declares a unit. Inside a MagnitudeSpec the Magnitude field may
// be left empty. Angular units set Turn instead of Ratio.
type UnitSpec struct {
	Magnitude string   `json:"magnitude,omitempty"`
	Name      string   `json:"name"`
	Suffix    string   `json:"suffix"`
	Ratio     *float64 `json:"ratio,omitempty"`
	Offset    *float64 `json:"offset,omitempty"`
	Turn      *float64 `json:"turn,omitempty"`
	Aliases   []string `json:"aliases,omitempty"`
}

// RelationSpec declares a product relation between three registered
// units, for use by the dynamic layer: Left × Right = Result.
type RelationSpec struct {
	Left   string `json:"left"`
	Right  string `json:"right"`
	Result string `json:"result"`
}

// ChartSpec selects the unit pair drawn by `measures plot`.
type ChartSpec struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
	Point *bool    `json:"point,omitempty"`
}

// EmptyCatalogue returns a Catalogue with every field unset.
func EmptyCatalogue() *Catalogue {
	return &Catalogue{}
}

// LoadCatalogue loads a Catalogue from a JSON file.
// The file is validated to ensure it has a .json extension and is under the max file size.
func LoadCatalogue(path string) (*Catalogue, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("catalogue file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat catalogue file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("catalogue file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue file: %w", err)
	}

	cat := EmptyCatalogue()
	if err := json.Unmarshal(data, cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalogue JSON: %w", err)
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalogue: %w", err)
	}

	logging.Diagf("loaded catalogue %s: %d magnitudes, %d units", cleanPath, len(cat.Magnitudes), len(cat.Units))
	return cat, nil
}

// MustLoadDefaultCatalogue loads the catalogue at DefaultCataloguePath.
// It searches for the file in the current directory and common parent directories.
// Panics if the file cannot be loaded, intended for test setup.
func MustLoadDefaultCatalogue() *Catalogue {
	candidates := []string{
		DefaultCataloguePath,
		"../" + DefaultCataloguePath,       // from cmd/measures or units/
		"../../" + DefaultCataloguePath,    // from internal/config/
		"../../../" + DefaultCataloguePath, // deeper packages
	}
	for _, path := range candidates {
		if cat, err := LoadCatalogue(path); err == nil {
			return cat
		}
	}
	panic("cannot find " + DefaultCataloguePath + " - run tests from repository root")
}

// Validate checks the catalogue without touching any registry. Name
// clashes with already registered units are only detected by Apply.
func (c *Catalogue) Validate() error {
	for _, m := range c.Magnitudes {
		if m.Name == "" || m.BaseUnit == "" {
			return fmt.Errorf("magnitude needs name and base_unit, got %q/%q", m.Name, m.BaseUnit)
		}
		if m.Turn != nil && *m.Turn <= 0 {
			return fmt.Errorf("magnitude %q: turn must be positive, got %f", m.Name, *m.Turn)
		}
		for _, u := range m.Units {
			if u.Magnitude != "" && u.Magnitude != m.Name {
				return fmt.Errorf("unit %q is nested in magnitude %q but names %q", u.Name, m.Name, u.Magnitude)
			}
			if err := u.validate(m.Turn != nil); err != nil {
				return err
			}
		}
	}
	for _, u := range c.Units {
		if u.Magnitude == "" {
			return fmt.Errorf("unit %q: magnitude is required", u.Name)
		}
		if err := u.validate(u.Turn != nil); err != nil {
			return err
		}
	}
	for _, r := range c.Relations {
		if r.Left == "" || r.Right == "" || r.Result == "" {
			return fmt.Errorf("relation needs left, right and result, got %+v", r)
		}
	}
	if c.Precision != nil && (*c.Precision < 0 || *c.Precision > 17) {
		return fmt.Errorf("precision must be between 0 and 17, got %d", *c.Precision)
	}
	if c.Samples != nil && *c.Samples < 2 {
		return fmt.Errorf("samples must be at least 2, got %d", *c.Samples)
	}
	for name, ch := range c.Charts {
		if ch.From == "" || ch.To == "" {
			return fmt.Errorf("chart %q needs from and to units", name)
		}
		if ch.Min != nil && ch.Max != nil && *ch.Min >= *ch.Max {
			return fmt.Errorf("chart %q: min %f must be below max %f", name, *ch.Min, *ch.Max)
		}
	}
	return nil
}

func (u UnitSpec) validate(angular bool) error {
	if u.Name == "" {
		return fmt.Errorf("unit name is empty")
	}
	if angular {
		if u.Turn == nil || *u.Turn <= 0 {
			return fmt.Errorf("angular unit %q: turn must be positive", u.Name)
		}
		if u.Ratio != nil || u.Offset != nil {
			return fmt.Errorf("angular unit %q: ratio and offset are derived from turn", u.Name)
		}
		return nil
	}
	if u.Ratio == nil || *u.Ratio <= 0 {
		return fmt.Errorf("unit %q: ratio must be positive", u.Name)
	}
	return nil
}

// Apply defines the catalogue's magnitudes, units, aliases and relations
// in reg, then freezes reg if Freeze is set. It stops at the first error.
func (c *Catalogue) Apply(reg *quantity.Registry) error {
	for _, ms := range c.Magnitudes {
		var (
			m   *quantity.Magnitude
			err error
		)
		if ms.Turn != nil {
			m, err = reg.DefineAngleMagnitude(ms.Name, ms.BaseUnit, ms.BaseSuffix, *ms.Turn)
		} else {
			m, err = reg.DefineMagnitude(ms.Name, ms.BaseUnit, ms.BaseSuffix)
		}
		if err != nil {
			return fmt.Errorf("magnitude %q: %w", ms.Name, err)
		}
		if err := aliasAll(reg, m.Base(), ms.Aliases); err != nil {
			return err
		}
		for _, us := range ms.Units {
			if err := us.define(reg, m); err != nil {
				return err
			}
		}
	}

	for _, us := range c.Units {
		m, err := reg.Magnitude(us.Magnitude)
		if err != nil {
			return fmt.Errorf("unit %q: %w", us.Name, err)
		}
		if err := us.define(reg, m); err != nil {
			return err
		}
	}

	for name, aliases := range c.Aliases {
		u, err := reg.Unit(name)
		if err != nil {
			return fmt.Errorf("aliases: %w", err)
		}
		if err := aliasAll(reg, u, aliases); err != nil {
			return err
		}
	}

	for _, rs := range c.Relations {
		if err := rs.define(reg); err != nil {
			return err
		}
	}

	if c.GetFreeze() {
		reg.Freeze()
	}
	return nil
}

func (u UnitSpec) define(reg *quantity.Registry, m *quantity.Magnitude) error {
	var (
		def *quantity.UnitDef
		err error
	)
	if m.IsAngular() {
		turn := 0.0
		if u.Turn != nil {
			turn = *u.Turn
		}
		def, err = reg.DefineAngleUnit(m, u.Name, u.Suffix, turn)
	} else {
		ratio, offset := 0.0, 0.0
		if u.Ratio != nil {
			ratio = *u.Ratio
		}
		if u.Offset != nil {
			offset = *u.Offset
		}
		def, err = reg.DefineUnit(m, u.Name, u.Suffix, ratio, offset)
	}
	if err != nil {
		return fmt.Errorf("unit %q: %w", u.Name, err)
	}
	return aliasAll(reg, def, u.Aliases)
}

func (r RelationSpec) define(reg *quantity.Registry) error {
	units := make([]*quantity.UnitDef, 3)
	for i, name := range []string{r.Left, r.Right, r.Result} {
		u, err := reg.Unit(name)
		if err != nil {
			return fmt.Errorf("relation %s × %s: %w", r.Left, r.Right, err)
		}
		units[i] = u
	}
	if err := reg.DefineProduct(units[0], units[1], units[2]); err != nil {
		return fmt.Errorf("relation %s × %s: %w", r.Left, r.Right, err)
	}
	return nil
}

func aliasAll(reg *quantity.Registry, u *quantity.UnitDef, aliases []string) error {
	for _, a := range aliases {
		if err := reg.Alias(u, a); err != nil {
			return fmt.Errorf("unit %q: %w", u.Name(), err)
		}
	}
	return nil
}

// GetFreeze returns the freeze value or the default.
func (c *Catalogue) GetFreeze() bool {
	if c.Freeze == nil {
		return true // default: read-only after start-up
	}
	return *c.Freeze
}

// GetPrecision returns the number of significant digits printed by the
// measures command.
func (c *Catalogue) GetPrecision() int {
	if c.Precision == nil {
		return 6
	}
	return *c.Precision
}

// GetSamples returns the number of samples per chart or table.
func (c *Catalogue) GetSamples() int {
	if c.Samples == nil {
		return 11
	}
	return *c.Samples
}
