package enumerate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// Sentinel errors for enumeration setup and execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("enumerate: invalid option supplied")

	// ErrOutput wraps failures to open or write a per-T-count data file.
	ErrOutput = errors.New("enumerate: output failure")
)

// Option configures Run via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when Run starts.
type Option func(*Options)

// Options holds the explicit configuration record of one enumeration
// run. No ambient state: everything the driver needs arrives here.
type Options struct {
	// Ctx allows cancellation; a cancelled context aborts the level in
	// flight.
	Ctx context.Context

	// Target is the final T-count to enumerate (inclusive).
	Target int

	// StoredDepth is the number of leading T-counts whose full frontier
	// is held in memory. Levels beyond it run in free-multiplication
	// mode over retained generating sets.
	StoredDepth int

	// Threads sizes the worker pool. Defaults to GOMAXPROCS.
	Threads int

	// DataDir receives the per-T-count output files <k>.dat.
	DataDir string

	// Checklist is the set of target patterns; may be nil for a pure
	// counting run.
	Checklist *Checklist

	// Logger receives progress reporting. Defaults to slog.Default().
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the baseline configuration: background
// context, target T-count 3 fully stored, one worker per CPU, output
// under ./data.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Target:      3,
		StoredDepth: 3,
		Threads:     runtime.GOMAXPROCS(0),
		DataDir:     "data",
		Logger:      slog.Default(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTarget sets the final T-count. Values below 1 are invalid.
func WithTarget(t int) Option {
	return func(o *Options) {
		if t < 1 {
			o.err = fmt.Errorf("%w: target T-count must be positive (%d)", ErrOptionViolation, t)
			return
		}
		o.Target = t
	}
}

// WithStoredDepth bounds the number of fully stored levels. Values
// below 1 are invalid; values above the target are clamped when Run
// starts.
func WithStoredDepth(d int) Option {
	return func(o *Options) {
		if d < 1 {
			o.err = fmt.Errorf("%w: stored depth must be positive (%d)", ErrOptionViolation, d)
			return
		}
		o.StoredDepth = d
	}
}

// WithThreads sizes the worker pool.
func WithThreads(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: thread count must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Threads = n
	}
}

// WithDataDir redirects the per-T-count output files.
func WithDataDir(dir string) Option {
	return func(o *Options) {
		if dir != "" {
			o.DataDir = dir
		}
	}
}

// WithChecklist installs the pattern checklist consumed by the run.
func WithChecklist(c *Checklist) Option {
	return func(o *Options) { o.Checklist = c }
}

// WithLogger routes progress reporting.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// LevelStats summarises one completed T-count.
type LevelStats struct {
	TCount       int    `yaml:"tcount"`
	Found        uint64 `yaml:"found"`    // new canonical matrices (stored levels only)
	Products     uint64 `yaml:"products"` // products formed at this level
	Hits         uint64 `yaml:"hits"`     // checklist hits recorded
	PatternsLeft int    `yaml:"patterns_left"`

	// Cases counts the frontier's patterns by case number (stored
	// levels only). The low-T-count counts form the regression vector a
	// deployment records on first run.
	Cases map[int]uint64 `yaml:"cases,omitempty"`
}

// Result aggregates the per-level statistics of a run.
type Result struct {
	Levels []LevelStats `yaml:"levels"`
}
