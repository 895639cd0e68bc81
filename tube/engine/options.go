package engine

import "github.com/lbl-srg/funnel-go/tube"

// Options configures a [CompareWithOptions] run.
type Options struct {
	Tolerances tube.Tolerances
	Verbose    bool
}

// Option mutates an Options value.
type Option func(*Options)

// DefaultOptions returns the zero-tolerance, non-verbose default. Callers
// must supply tolerances via [WithTolerances] ([tolerance.Resolve] rejects
// an all-zero set with [tube.ErrBadTolerance]).
func DefaultOptions() Options {
	return Options{}
}

// WithTolerances sets the four tolerance knobs.
func WithTolerances(t tube.Tolerances) Option {
	return func(o *Options) {
		o.Tolerances = t
	}
}

// WithVerbose enables the per-stage summary used by the CLI's --verbose flag.
func WithVerbose(v bool) Option {
	return func(o *Options) {
		o.Verbose = v
	}
}

// ApplyOptions applies zero or more options to [DefaultOptions].
func ApplyOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
