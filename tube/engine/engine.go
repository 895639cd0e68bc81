package engine

import (
	"fmt"

	"github.com/lbl-srg/funnel-go/tube"
	"github.com/lbl-srg/funnel-go/tube/envelope"
	"github.com/lbl-srg/funnel-go/tube/interp"
	"github.com/lbl-srg/funnel-go/tube/tolerance"
	"github.com/lbl-srg/funnel-go/tube/validate"
)

// Result holds every curve Compare produces, keyed the way the command-line
// front end writes them out.
type Result struct {
	Reference tube.Curve
	Test      tube.Curve
	Lower     tube.Curve
	Upper     tube.Curve
	Errors    tube.ErrorReport
}

// Compare builds the tolerance envelope around ref, cleans it of
// self-intersections, resamples it onto test's x-grid, and validates test
// against the resulting bounds.
//
// It is the synchronous entry point the original tool exposes as
// compareAndReport, minus the file I/O: callers that need CSV output should
// write Result's curves with internal/curveio, typically from cmd/funnel.
func Compare(ref, test tube.Curve, tol tube.Tolerances) (Result, error) {
	rect, err := tolerance.Resolve(ref, tol)
	if err != nil {
		return Result{}, err
	}

	lower, err := buildSide(ref, rect, tube.Lower)
	if err != nil {
		return Result{}, err
	}
	upper, err := buildSide(ref, rect, tube.Upper)
	if err != nil {
		return Result{}, err
	}

	lowerOnTest := interp.OntoGrid(lower, test)
	upperOnTest := interp.OntoGrid(upper, test)

	report, err := validate.Validate(lowerOnTest, upperOnTest, test)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Reference: ref.Clone(),
		Test:      test.Clone(),
		Lower:     lower,
		Upper:     upper,
		Errors:    report,
	}, nil
}

// CompareWithOptions is [Compare] configured through the functional-options
// pattern used across this module, for callers that already assemble an
// [Options] value (the CLI front end, or a future batch-comparison runner).
func CompareWithOptions(ref, test tube.Curve, opts ...Option) (Result, error) {
	cfg := ApplyOptions(opts...)
	return Compare(ref, test, cfg.Tolerances)
}

func buildSide(ref tube.Curve, rect tube.Rectangle, side tube.Side) (tube.Curve, error) {
	raw, err := envelope.BuildRaw(ref, rect, side)
	if err != nil {
		return tube.Curve{}, fmt.Errorf("engine: compare: %w", err)
	}
	cleaned, err := envelope.RemoveLoops(raw, side)
	if err != nil {
		return tube.Curve{}, fmt.Errorf("engine: compare: %w", err)
	}
	if cleaned.Len() == 0 {
		return tube.Curve{}, fmt.Errorf("engine: compare %s envelope: %w", side, tube.ErrEmptyEnvelope)
	}
	return cleaned, nil
}
