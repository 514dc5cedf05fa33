package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/banshee-data/measures/internal/chart"
	"github.com/banshee-data/measures/internal/config"
	"github.com/banshee-data/measures/internal/logging"
	"github.com/banshee-data/measures/internal/security"
	"github.com/banshee-data/measures/quantity"
	"github.com/banshee-data/measures/units"
)

// Catalogues are applied to quantity.Default at most once per path.
var catalogues = struct {
	sync.Mutex
	loaded map[string]*config.Catalogue
}{loaded: make(map[string]*config.Catalogue)}

func catalogueFlag(fs *flag.FlagSet) *string {
	return fs.String("catalogue", config.DefaultCataloguePath, "Unit catalogue file (\"\" to skip)")
}

// loadCatalogue applies the catalogue at path to quantity.Default. A
// missing default catalogue is not an error, so the tool also works
// outside the repository.
func loadCatalogue(path string) (*config.Catalogue, error) {
	if path == "" {
		return config.EmptyCatalogue(), nil
	}

	catalogues.Lock()
	defer catalogues.Unlock()
	if cat, ok := catalogues.loaded[path]; ok {
		return cat, nil
	}

	cat, err := config.LoadCatalogue(path)
	if err != nil {
		if path == config.DefaultCataloguePath && errors.Is(err, fs.ErrNotExist) {
			logging.Diagf("no catalogue at %s, using stock units only", path)
			cat = config.EmptyCatalogue()
			catalogues.loaded[path] = cat
			return cat, nil
		}
		return nil, err
	}
	if err := cat.Apply(quantity.Default); err != nil {
		return nil, fmt.Errorf("apply %s: %w", path, err)
	}
	catalogues.loaded[path] = cat
	return cat, nil
}

// lookupUnit resolves a unit by name, alias or display suffix.
func lookupUnit(name string) (*quantity.UnitDef, error) {
	if u, err := quantity.Default.Unit(name); err == nil {
		return u, nil
	}
	if u, err := quantity.Default.UnitBySuffix(name); err == nil {
		return u, nil
	}
	if u, err := quantity.Default.UnitBySuffix(" " + name); err == nil {
		return u, nil
	}
	return nil, fmt.Errorf("%q: %w", name, quantity.ErrUnknownUnit)
}

func formatNumber(x float64, precision int) string {
	return strconv.FormatFloat(x, 'g', precision, 64)
}

func handleConvert(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cataloguePath := catalogueFlag(fs)
	point := fs.Bool("point", false, "Treat the value as a position (applies unit offsets)")
	dynamic := fs.String("dynamic", "", "Value in dynamic text form, e.g. \"D 2 km\" or \"D [20] °C\"")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cat, err := loadCatalogue(*cataloguePath)
	if err != nil {
		return err
	}
	prec := cat.GetPrecision()

	var (
		from   *quantity.UnitDef
		value  float64
		toName string
	)
	isPoint := *point
	if *dynamic != "" {
		if fs.NArg() != 1 {
			return fmt.Errorf("usage: measures convert --dynamic <quantity> <to>")
		}
		toName = fs.Arg(0)
		if strings.HasPrefix(*dynamic, "D [") {
			p, err := quantity.ParseDynPoint1[float64](quantity.Default, *dynamic)
			if err != nil {
				return err
			}
			from, value, isPoint = p.Unit(), p.Value(), true
		} else {
			v, err := quantity.ParseDynVector1[float64](quantity.Default, *dynamic)
			if err != nil {
				return err
			}
			from, value = v.Unit(), v.Value()
		}
	} else {
		if fs.NArg() != 3 {
			return fmt.Errorf("usage: measures convert [--point] <value> <from> <to>")
		}
		value, err = strconv.ParseFloat(fs.Arg(0), 64)
		if err != nil {
			return fmt.Errorf("value %q: %w", fs.Arg(0), quantity.ErrParse)
		}
		if from, err = lookupUnit(fs.Arg(1)); err != nil {
			return err
		}
		toName = fs.Arg(2)
	}

	to, err := lookupUnit(toName)
	if err != nil {
		return err
	}

	var result float64
	if isPoint {
		p, err := quantity.NewDynPoint1(from, value).Convert(to)
		if err != nil {
			return err
		}
		result = p.Value()
	} else {
		v, err := quantity.NewDynVector1(from, value).Convert(to)
		if err != nil {
			return err
		}
		result = v.Value()
	}

	fmt.Fprintf(stdout, "%s%s = %s%s\n", formatNumber(value, prec), from.Suffix(), formatNumber(result, prec), to.Suffix())
	return nil
}

// curveFlags are shared by table and plot.
type curveFlags struct {
	chart    *string
	from, to *string
	min, max *float64
	samples  *int
	point    *bool
}

func addCurveFlags(fs *flag.FlagSet, defaultSamples int) curveFlags {
	return curveFlags{
		chart:   fs.String("chart", "", "Named chart from the catalogue (sets from/to/min/max/point)"),
		from:    fs.String("from", "", "Source unit"),
		to:      fs.String("to", "", "Target unit"),
		min:     fs.Float64("min", 0, "First sampled value"),
		max:     fs.Float64("max", 100, "Last sampled value"),
		samples: fs.Int("samples", defaultSamples, "Number of samples (0 uses the catalogue setting)"),
		point:   fs.Bool("point", false, "Treat values as positions (applies unit offsets)"),
	}
}

// resolve merges a named catalogue chart with explicit flags. Explicit
// flags win.
func (c curveFlags) resolve(fs *flag.FlagSet, cat *config.Catalogue) (from, to *quantity.UnitDef, min, max float64, samples int, point bool, err error) {
	fromName, toName := *c.from, *c.to
	min, max, point = *c.min, *c.max, *c.point
	samples = *c.samples
	if samples == 0 {
		samples = cat.GetSamples()
	}

	if *c.chart != "" {
		spec, ok := cat.Charts[*c.chart]
		if !ok {
			return nil, nil, 0, 0, 0, false, fmt.Errorf("no chart %q in catalogue", *c.chart)
		}
		set := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if !set["from"] {
			fromName = spec.From
		}
		if !set["to"] {
			toName = spec.To
		}
		if !set["min"] && spec.Min != nil {
			min = *spec.Min
		}
		if !set["max"] && spec.Max != nil {
			max = *spec.Max
		}
		if !set["point"] && spec.Point != nil {
			point = *spec.Point
		}
	}

	if fromName == "" || toName == "" {
		return nil, nil, 0, 0, 0, false, fmt.Errorf("both --from and --to are required")
	}
	if from, err = lookupUnit(fromName); err != nil {
		return nil, nil, 0, 0, 0, false, err
	}
	if to, err = lookupUnit(toName); err != nil {
		return nil, nil, 0, 0, 0, false, err
	}
	return from, to, min, max, samples, point, nil
}

func handleTable(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("table", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cataloguePath := catalogueFlag(fs)
	curve := addCurveFlags(fs, 0)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cat, err := loadCatalogue(*cataloguePath)
	if err != nil {
		return err
	}
	from, to, min, max, samples, point, err := curve.resolve(fs, cat)
	if err != nil {
		return err
	}

	fig, err := chart.ConversionFigure(from, to, min, max, samples, point)
	if err != nil {
		return err
	}

	prec := cat.GetPrecision()
	fmt.Fprintf(stdout, "%-16s %-16s\n", from.Name(), to.Name())
	s := fig.Series[0]
	for i := range s.X {
		fmt.Fprintf(stdout, "%-16s %-16s\n", formatNumber(s.X[i], prec), formatNumber(s.Y[i], prec))
	}
	return nil
}

func handleUnits(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("units", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cataloguePath := catalogueFlag(fs)
	magnitude := fs.String("magnitude", "", "Only list units of this magnitude")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if _, err := loadCatalogue(*cataloguePath); err != nil {
		return err
	}

	mags := quantity.Default.Magnitudes()
	if *magnitude != "" {
		m, err := quantity.Default.Magnitude(*magnitude)
		if err != nil {
			return err
		}
		mags = []*quantity.Magnitude{m}
	}

	for _, m := range mags {
		fmt.Fprintf(stdout, "%s (base %s)\n", m.Name(), m.Base().Name())
		for _, u := range m.Units() {
			if m.IsAngular() {
				fmt.Fprintf(stdout, "  %-28s %-8q turn=%g\n", u.Name(), u.Suffix(), u.TurnFraction())
				continue
			}
			fmt.Fprintf(stdout, "  %-28s %-8q ratio=%g offset=%g\n", u.Name(), u.Suffix(), u.Ratio(), u.Offset())
		}
	}
	return nil
}

func handleRelations(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("relations", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cataloguePath := catalogueFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if _, err := loadCatalogue(*cataloguePath); err != nil {
		return err
	}

	for _, r := range quantity.Default.Relations() {
		right := "-"
		if r.Right != nil {
			right = r.Right.Name()
		}
		fmt.Fprintf(stdout, "%-28s %-6s %-28s -> %s\n", r.Left.Name(), r.Op, right, r.Result.Name())
	}
	return nil
}

// azimuthFigure picks the static angular unit matching u.
func azimuthFigure(u *quantity.UnitDef, min, max float64, samples int) (chart.Figure, error) {
	switch u {
	case units.Degrees{}.Def():
		return chart.AzimuthFigure[units.Degrees](min, max, samples), nil
	case units.Radians{}.Def():
		return chart.AzimuthFigure[units.Radians](min, max, samples), nil
	case units.Turns{}.Def():
		return chart.AzimuthFigure[units.Turns](min, max, samples), nil
	case units.Gradians{}.Def():
		return chart.AzimuthFigure[units.Gradians](min, max, samples), nil
	default:
		return chart.Figure{}, fmt.Errorf("azimuth charts support degrees, radians, turns and gradians, not %s", u.Name())
	}
}

func handlePlot(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("plot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cataloguePath := catalogueFlag(fs)
	curve := addCurveFlags(fs, 200)
	azimuth := fs.String("azimuth", "", "Plot azimuth folding in this angular unit instead of a conversion")
	output := fs.String("o", "", "Output file (.png, .svg, .pdf or .html); defaults to <title>.png in the working directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cat, err := loadCatalogue(*cataloguePath)
	if err != nil {
		return err
	}

	var fig chart.Figure
	if *azimuth != "" {
		u, err := lookupUnit(*azimuth)
		if err != nil {
			return err
		}
		samples := *curve.samples
		if samples == 0 {
			samples = cat.GetSamples()
		}
		if fig, err = azimuthFigure(u, *curve.min, *curve.max, samples); err != nil {
			return err
		}
	} else {
		from, to, min, max, samples, point, err := curve.resolve(fs, cat)
		if err != nil {
			return err
		}
		if fig, err = chart.ConversionFigure(from, to, min, max, samples, point); err != nil {
			return err
		}
	}

	if *output == "" {
		*output = security.SanitizeFilename(fig.Title) + ".png"
	}
	if err := security.ValidateExportPath(*output); err != nil {
		logging.Opsf("rejected chart path %s: %v", *output, err)
		return fmt.Errorf("invalid output path: %w", err)
	}

	switch strings.ToLower(filepath.Ext(*output)) {
	case ".png", ".svg", ".pdf":
		if err := chart.SavePNG(fig, *output); err != nil {
			return err
		}
	case ".html":
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("create %s: %w", *output, err)
		}
		if err := chart.RenderHTML(fig, f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", *output, err)
		}
	default:
		return fmt.Errorf("unsupported output format %q (want .png, .svg, .pdf or .html)", filepath.Ext(*output))
	}

	fmt.Fprintf(stdout, "wrote %s\n", *output)
	return nil
}
