// Command funnel compares a test time series against a reference time
// series within user-specified tolerances, writing the reference, test,
// lower/upper envelope bounds, and any violations as CSV files.
//
// Usage:
//
//	funnel --reference ref.csv --test sim.csv --atolx 0.002 --atoly 0.002 --output results/
//
// At least one tolerance must be given for x and one for y (absolute or
// relative).
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lbl-srg/funnel-go/internal/curveio"
	"github.com/lbl-srg/funnel-go/tube"
	"github.com/lbl-srg/funnel-go/tube/engine"
	"github.com/lbl-srg/funnel-go/tube/validate"
)

func main() {
	reference := flag.String("reference", "", "path to the reference CSV file")
	test := flag.String("test", "", "path to the test CSV file")
	output := flag.String("output", ".", "directory to write result CSV files to")
	atolx := flag.Float64("atolx", 0, "absolute tolerance in x")
	atoly := flag.Float64("atoly", 0, "absolute tolerance in y")
	rtolx := flag.Float64("rtolx", 0, "relative tolerance in x")
	rtoly := flag.Float64("rtoly", 0, "relative tolerance in y")
	scale := flag.Float64("scale", 1, "scale applied to the test curve's y column before comparison (e.g. a unit-calibration factor)")
	offset := flag.Float64("offset", 0, "offset added to the test curve's y column after scaling")
	verbose := flag.Bool("verbose", false, "print a summary of the comparison")
	brief := flag.Bool("brief", false, "suppress the summary (overrides -verbose)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: funnel [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Compares time series within user-specified tolerances.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nAt least one tolerance must be specified for x and for y.\n\n")
		fmt.Fprintf(os.Stderr, "Typical use:\n")
		fmt.Fprintf(os.Stderr, "  funnel --reference trended.csv --test simulated.csv --atolx 0.002 --atoly 0.002 --output results/\n")
	}
	flag.Parse()

	if *reference == "" || *test == "" {
		fmt.Fprintln(os.Stderr, "funnel: --reference and --test are required")
		flag.Usage()
		os.Exit(1)
	}

	opts := engine.ApplyOptions(
		engine.WithTolerances(tube.Tolerances{AtolX: *atolx, AtolY: *atoly, RtolX: *rtolx, RtolY: *rtoly}),
		engine.WithVerbose(*verbose && !*brief),
	)

	if err := run(*reference, *test, *output, *scale, *offset, opts); err != nil {
		fmt.Fprintf(os.Stderr, "funnel: %v\n", err)
		os.Exit(1)
	}
}

func run(referencePath, testPath, outputDir string, scale, offset float64, opts engine.Options) error {
	ref, err := curveio.ReadCSV(referencePath, 1)
	if err != nil {
		return err
	}
	test, err := curveio.ReadCSV(testPath, 1)
	if err != nil {
		return err
	}
	curveio.ApplyAffine(test, scale, offset)

	result, err := engine.CompareWithOptions(ref, test, engine.WithTolerances(opts.Tolerances))
	if err != nil {
		return err
	}

	files := []struct {
		name  string
		curve tube.Curve
	}{
		{"reference.csv", result.Reference},
		{"test.csv", result.Test},
		{"lowerBound.csv", result.Lower},
		{"upperBound.csv", result.Upper},
		{"errors.csv", result.Errors.Diff},
	}
	for _, f := range files {
		if err := curveio.WriteCSV(outputDir, f.name, f.curve); err != nil {
			return err
		}
	}

	if opts.Verbose {
		printSummary(result)
	}
	return nil
}

func printSummary(result engine.Result) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Reference points\t%d\n", result.Reference.Len())
	fmt.Fprintf(tw, "Test points\t%d\n", result.Test.Len())
	fmt.Fprintf(tw, "Violations\t%d\n", result.Errors.Original.Len())
	fmt.Fprintf(tw, "RMS deviation\t%g\n", validate.RMS(result.Errors))
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "funnel: failed to flush summary: %v\n", err)
	}
}
