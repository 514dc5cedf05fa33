package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/banshee-data/measures/internal/logging"
	"github.com/banshee-data/measures/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches one sub-command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	top := flag.NewFlagSet("measures", flag.ContinueOnError)
	top.SetOutput(stderr)
	verbose := top.Bool("v", false, "Log registry definitions to stderr")
	trace := top.Bool("trace", false, "Log rejected dynamic operations to stderr")
	top.Usage = func() { printUsage(stderr) }
	if err := top.Parse(args); err != nil {
		return 2
	}

	w := logging.LogWriters{Ops: stderr}
	if *verbose {
		w.Diag = stderr
	}
	if *trace {
		w.Trace = stderr
	}
	logging.SetLogWriters(w)

	if top.NArg() < 1 {
		printUsage(stderr)
		return 1
	}

	command := top.Arg(0)
	rest := top.Args()[1:]

	var err error
	switch command {
	case "convert":
		err = handleConvert(rest, stdout, stderr)
	case "table":
		err = handleTable(rest, stdout, stderr)
	case "units":
		err = handleUnits(rest, stdout, stderr)
	case "relations":
		err = handleRelations(rest, stdout, stderr)
	case "plot":
		err = handlePlot(rest, stdout, stderr)
	case "version":
		fmt.Fprintf(stdout, "measures version %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
	case "help":
		printUsage(stdout)
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", command)
		printUsage(stderr)
		return 1
	}

	if err != nil {
		logging.Opsf("%s: %v", command, err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `measures - dimension-checked unit conversion

Usage: measures [-v] [-trace] <command> [options]

Commands:
  convert    Convert a value between two units of one magnitude
  table      Print a conversion table between two units
  units      List magnitudes and their units
  relations  List registered derived-unit relations
  plot       Draw a conversion curve or azimuth folding chart (.png or .html)
  version    Show measures version
  help       Show this help message

Common Flags:
  --catalogue <file>   Unit catalogue applied on top of the stock units
                       (default: config/catalogue.defaults.json, "" to skip)

Examples:
  measures convert 2 km m
  measures convert --point 0 celsius fahrenheit
  measures convert --dynamic "D 2.5 km" mi
  measures table --from kmph --to mph --min 0 --max 120 --samples 7
  measures plot --chart temperature -o temperature.png
  measures plot --azimuth deg --min -720 --max 720 -o folding.html`)
}
