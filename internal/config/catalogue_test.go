package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/banshee-data/measures/quantity"
)

// stockRegistry defines the subset of the stock catalogue that the default
// catalogue file builds on.
func stockRegistry(t *testing.T) *quantity.Registry {
	t.Helper()
	reg := quantity.NewRegistry()
	define := func(name, base, suffix string) *quantity.Magnitude {
		m, err := reg.DefineMagnitude(name, base, suffix)
		if err != nil {
			t.Fatalf("DefineMagnitude(%q): %v", name, err)
		}
		return m
	}
	length := define("length", "metres", " m")
	define("temperature", "kelvin", " K")
	define("speed", "metres per second", " m/s")
	define("area", "square metres", " m²")
	define("force", "newtons", " N")
	if _, err := reg.DefineAngleMagnitude("angle", "radians", " rad", 2*math.Pi); err != nil {
		t.Fatalf("DefineAngleMagnitude: %v", err)
	}
	if _, err := reg.DefineUnit(length, "kilometres", " km", 1000, 0); err != nil {
		t.Fatalf("DefineUnit: %v", err)
	}
	return reg
}

func writeCatalogue(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalogue.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test catalogue: %v", err)
	}
	return path
}

func TestEmptyCatalogueDefaults(t *testing.T) {
	cat := EmptyCatalogue()

	if cat.GetFreeze() != true {
		t.Errorf("GetFreeze() = %v, want true", cat.GetFreeze())
	}
	if cat.GetPrecision() != 6 {
		t.Errorf("GetPrecision() = %d, want 6", cat.GetPrecision())
	}
	if cat.GetSamples() != 11 {
		t.Errorf("GetSamples() = %d, want 11", cat.GetSamples())
	}
	if err := cat.Validate(); err != nil {
		t.Errorf("empty catalogue should validate: %v", err)
	}
}

func TestLoadDefaultCatalogue(t *testing.T) {
	cat := MustLoadDefaultCatalogue()

	if len(cat.Magnitudes) != 2 {
		t.Errorf("expected 2 magnitudes, got %d", len(cat.Magnitudes))
	}
	if _, ok := cat.Charts["temperature"]; !ok {
		t.Error("expected a temperature chart")
	}

	reg := stockRegistry(t)
	if err := cat.Apply(reg); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !reg.Frozen() {
		t.Error("default catalogue should freeze the registry")
	}

	litres, err := reg.Unit("L")
	if err != nil {
		t.Fatalf("Unit(L): %v", err)
	}
	if litres.Magnitude().Name() != "volume" || litres.Ratio() != 0.001 {
		t.Errorf("litres = %s of %s, ratio %g", litres, litres.Magnitude(), litres.Ratio())
	}

	arcmin, err := reg.Unit("arcmin")
	if err != nil {
		t.Fatalf("Unit(arcmin): %v", err)
	}
	if arcmin.TurnFraction() != 21600 {
		t.Errorf("arcmin turn = %g, want 21600", arcmin.TurnFraction())
	}

	if u, err := reg.Unit("kilometers"); err != nil || u.Name() != "kilometres" {
		t.Errorf("alias kilometers = %v, %v", u, err)
	}

	// 2 m² × 3 m = 6 m³ through the catalogue relation.
	m2, _ := reg.Unit("square metres")
	m, _ := reg.Unit("metres")
	vol, err := quantity.DynMul(reg, quantity.NewDynVector1(m2, 2.0), quantity.NewDynVector1(m, 3.0))
	if err != nil {
		t.Fatalf("DynMul: %v", err)
	}
	if vol.Unit().Name() != "cubic metres" || vol.Value() != 6 {
		t.Errorf("2 m² × 3 m = %v", vol)
	}
	litresOut, err := vol.Convert(litres)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if math.Abs(litresOut.Value()-6000) > 1e-9 {
		t.Errorf("6 m³ = %v, want 6000 L", litresOut)
	}
}

func TestLoadCatalogue(t *testing.T) {
	path := writeCatalogue(t, `{
  "units": [
    { "magnitude": "length", "name": "furlongs", "suffix": " fur", "ratio": 201.168, "aliases": ["fur"] }
  ],
  "freeze": false,
  "precision": 3,
  "samples": 5
}`)

	cat, err := LoadCatalogue(path)
	if err != nil {
		t.Fatalf("Failed to load catalogue: %v", err)
	}
	if cat.GetFreeze() != false {
		t.Errorf("GetFreeze() = %v, want false", cat.GetFreeze())
	}
	if cat.GetPrecision() != 3 {
		t.Errorf("GetPrecision() = %d, want 3", cat.GetPrecision())
	}
	if cat.GetSamples() != 5 {
		t.Errorf("GetSamples() = %d, want 5", cat.GetSamples())
	}

	reg := stockRegistry(t)
	if err := cat.Apply(reg); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if reg.Frozen() {
		t.Error("freeze: false should leave the registry open")
	}
	fur, err := reg.Unit("fur")
	if err != nil {
		t.Fatalf("Unit(fur): %v", err)
	}
	if fur.Ratio() != 201.168 {
		t.Errorf("furlong ratio = %g", fur.Ratio())
	}
}

func TestLoadCatalogueErrors(t *testing.T) {
	t.Run("wrong extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalogue.yaml")
		if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadCatalogue(path)
		if err == nil || !strings.Contains(err.Error(), ".json extension") {
			t.Errorf("expected extension error, got %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalogue(filepath.Join(t.TempDir(), "missing.json"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected ErrNotExist, got %v", err)
		}
	})

	t.Run("too large", func(t *testing.T) {
		path := writeCatalogue(t, `{"aliases": {}}`+strings.Repeat(" ", 1024*1024))
		_, err := LoadCatalogue(path)
		if err == nil || !strings.Contains(err.Error(), "too large") {
			t.Errorf("expected size error, got %v", err)
		}
	})

	t.Run("bad JSON", func(t *testing.T) {
		_, err := LoadCatalogue(writeCatalogue(t, `{"units": [`))
		if err == nil || !strings.Contains(err.Error(), "parse") {
			t.Errorf("expected parse error, got %v", err)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := LoadCatalogue(writeCatalogue(t, `{"precision": 40}`))
		if err == nil || !strings.Contains(err.Error(), "invalid catalogue") {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}

func TestValidate(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	i := func(v int) *int { return &v }

	tests := []struct {
		name    string
		cat     Catalogue
		wantErr string
	}{
		{"magnitude without base", Catalogue{Magnitudes: []MagnitudeSpec{{Name: "volume"}}}, "base_unit"},
		{"negative turn", Catalogue{Magnitudes: []MagnitudeSpec{{Name: "a", BaseUnit: "b", Turn: f(-1)}}}, "turn must be positive"},
		{"nested unit names another magnitude", Catalogue{Magnitudes: []MagnitudeSpec{{
			Name: "volume", BaseUnit: "cubic metres",
			Units: []UnitSpec{{Magnitude: "length", Name: "litres", Ratio: f(0.001)}},
		}}}, "nested"},
		{"angular unit without turn", Catalogue{Magnitudes: []MagnitudeSpec{{
			Name: "bearing", BaseUnit: "points", Turn: f(32),
			Units: []UnitSpec{{Name: "degrees"}},
		}}}, "turn must be positive"},
		{"angular unit with ratio", Catalogue{Units: []UnitSpec{{Magnitude: "angle", Name: "mils", Turn: f(6400), Ratio: f(1)}}}, "derived from turn"},
		{"unit without magnitude", Catalogue{Units: []UnitSpec{{Name: "yards", Ratio: f(0.9144)}}}, "magnitude is required"},
		{"unit without ratio", Catalogue{Units: []UnitSpec{{Magnitude: "length", Name: "yards"}}}, "ratio must be positive"},
		{"unit without name", Catalogue{Units: []UnitSpec{{Magnitude: "length", Ratio: f(1)}}}, "name is empty"},
		{"incomplete relation", Catalogue{Relations: []RelationSpec{{Left: "a", Right: "b"}}}, "relation needs"},
		{"negative precision", Catalogue{Precision: i(-1)}, "precision"},
		{"one sample", Catalogue{Samples: i(1)}, "samples"},
		{"chart without units", Catalogue{Charts: map[string]ChartSpec{"c": {From: "m"}}}, "needs from and to"},
		{"chart with empty range", Catalogue{Charts: map[string]ChartSpec{"c": {From: "m", To: "km", Min: f(5), Max: f(5)}}}, "must be below"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cat.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestApplyErrors(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	tests := []struct {
		name string
		cat  Catalogue
		want error
	}{
		{"duplicate magnitude", Catalogue{Magnitudes: []MagnitudeSpec{{Name: "length", BaseUnit: "yards", BaseSuffix: " yd"}}}, quantity.ErrDuplicateName},
		{"unknown magnitude", Catalogue{Units: []UnitSpec{{Magnitude: "volume", Name: "litres", Suffix: " L", Ratio: f(0.001)}}}, quantity.ErrUnknownUnit},
		{"duplicate suffix", Catalogue{Units: []UnitSpec{{Magnitude: "length", Name: "meters", Suffix: " m", Ratio: f(1)}}}, quantity.ErrDuplicateName},
		{"alias of unknown unit", Catalogue{Aliases: map[string][]string{"furlongs": {"fur"}}}, quantity.ErrUnknownUnit},
		{"alias taken", Catalogue{Aliases: map[string][]string{"kilometres": {"metres"}}}, quantity.ErrDuplicateName},
		{"relation with unknown unit", Catalogue{Relations: []RelationSpec{{Left: "metres", Right: "metres", Result: "hectares"}}}, quantity.ErrUnknownUnit},
		{"linear unit of an angle", Catalogue{Units: []UnitSpec{{Magnitude: "angle", Name: "mils", Suffix: " mil", Ratio: f(1)}}}, quantity.ErrInvalidDefinition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cat.Apply(stockRegistry(t))
			if !errors.Is(err, tt.want) {
				t.Errorf("Apply() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestApplyFrozenRegistry(t *testing.T) {
	reg := stockRegistry(t)
	reg.Freeze()

	cat := Catalogue{Units: []UnitSpec{{Magnitude: "length", Name: "yards", Suffix: " yd", Ratio: func() *float64 { v := 0.9144; return &v }()}}}
	if err := cat.Apply(reg); !errors.Is(err, quantity.ErrRegistryFrozen) {
		t.Errorf("Apply() on frozen registry = %v, want ErrRegistryFrozen", err)
	}
}
