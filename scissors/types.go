// Package scissors defines the options and sentinel errors for the
// graph-search selection model of github.com/katalvlaran/livewire.
package scissors

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/livewire/pixelgraph"
)

// Sentinel errors for scissors configuration.
var (
	// ErrBadSliceBudget indicates a non-positive slice budget.
	ErrBadSliceBudget = errors.New("scissors: slice budget must be positive")
	// ErrBadProgressInterval indicates a negative progress interval.
	ErrBadProgressInterval = errors.New("scissors: progress interval must be non-negative")
	// ErrNilContext indicates a nil context passed to WithContext.
	ErrNilContext = errors.New("scissors: context must be non-nil")
	// ErrNilLogger indicates a nil logger passed to WithLogger.
	ErrNilLogger = errors.New("scissors: logger must be non-nil")
)

// DefaultSliceBudget is the number of vertices a background search settles
// per slice. Cancellation latency is bounded by one slice's work, so the
// budget trades snapshot overhead against responsiveness.
const DefaultSliceBudget = 10_000

// Options contains tunable parameters for model construction.
type Options struct {
	// SliceBudget is the per-slice settlement cap handed to the solver.
	SliceBudget int
	// ProgressInterval throttles progress reports: zero reports every slice,
	// otherwise the first slice reports and then at most one report lands
	// per interval.
	ProgressInterval time.Duration
	// Ctx is the parent context of every search the model starts.
	Ctx context.Context
	// Logger receives structured debug logging; defaults to a discard sink.
	Logger *slog.Logger
	// Pixel is forwarded to pixelgraph.New on every SetImage.
	Pixel pixelgraph.Options
}

// DefaultOptions returns an Options with default settings:
// SliceBudget=DefaultSliceBudget, ProgressInterval=0, background context,
// discarding logger, default pixelgraph options.
func DefaultOptions() Options {
	return Options{
		SliceBudget: DefaultSliceBudget,
		Ctx:         context.Background(),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Pixel:       pixelgraph.DefaultOptions(),
	}
}

// Option adjusts Options in the functional-options style.
type Option func(*Options)

// WithSliceBudget sets the per-slice settlement cap.
// Panics with ErrBadSliceBudget if n is not positive.
func WithSliceBudget(n int) Option {
	if n <= 0 {
		panic(ErrBadSliceBudget)
	}

	return func(o *Options) {
		o.SliceBudget = n
	}
}

// WithProgressInterval throttles progress reports to at most one per d.
// Zero restores per-slice reporting. Panics with ErrBadProgressInterval if
// d is negative.
func WithProgressInterval(d time.Duration) Option {
	if d < 0 {
		panic(ErrBadProgressInterval)
	}

	return func(o *Options) {
		o.ProgressInterval = d
	}
}

// WithContext sets the parent context of every search the model starts;
// cancelling it cancels any active search.
// Panics with ErrNilContext if ctx is nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(ErrNilContext)
	}

	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithLogger routes the model's structured logging to l.
// Panics with ErrNilLogger if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(ErrNilLogger)
	}

	return func(o *Options) {
		o.Logger = l
	}
}

// WithPixelOptions forwards po to every graph build.
func WithPixelOptions(po pixelgraph.Options) Option {
	return func(o *Options) {
		o.Pixel = po
	}
}
