package stress

import (
	"fmt"
	"runtime"

	"github.com/hupe1980/bitvec"
)

type options struct {
	bits        int
	density     float64
	maxRun      int
	rounds      int
	parallelism int
	seed        int64
	memoryLimit int64
	logger      *bitvec.Logger
	metrics     MetricsCollector
}

func defaultOptions() options {
	return options{
		bits:        10000,
		density:     0.5,
		rounds:      1,
		parallelism: runtime.GOMAXPROCS(0),
		seed:        1,
		logger:      bitvec.NoopLogger(),
		metrics:     NoopMetricsCollector{},
	}
}

func (o options) validate() error {
	if o.bits < 0 {
		return fmt.Errorf("%w: bits must not be negative, got %d", ErrInvalidConfig, o.bits)
	}
	if o.density < 0 || o.density > 1 {
		return fmt.Errorf("%w: density must be in [0, 1], got %g", ErrInvalidConfig, o.density)
	}
	if o.maxRun < 0 {
		return fmt.Errorf("%w: max run must not be negative, got %d", ErrInvalidConfig, o.maxRun)
	}
	if o.rounds < 1 {
		return fmt.Errorf("%w: rounds must be positive, got %d", ErrInvalidConfig, o.rounds)
	}
	if o.parallelism < 1 {
		return fmt.Errorf("%w: parallelism must be positive, got %d", ErrInvalidConfig, o.parallelism)
	}
	if o.memoryLimit < 0 {
		return fmt.Errorf("%w: memory limit must not be negative, got %d", ErrInvalidConfig, o.memoryLimit)
	}
	if need := roundBytes(o.bits); o.memoryLimit > 0 && need > o.memoryLimit {
		return fmt.Errorf("%w: one round needs %d bytes, memory limit is %d", ErrInvalidConfig, need, o.memoryLimit)
	}
	return nil
}

// Option configures a Runner.
type Option func(*options)

// WithBits sets the number of bits pushed per round. Default 10000.
func WithBits(n int) Option {
	return func(o *options) {
		o.bits = n
	}
}

// WithDensity sets the probability that a generated bit is true. Default 0.5.
func WithDensity(d float64) Option {
	return func(o *options) {
		o.density = d
	}
}

// WithMaxRun switches generation from independent bits to alternating runs
// of equal bits with lengths in [1, n]. Zero restores independent bits.
func WithMaxRun(n int) Option {
	return func(o *options) {
		o.maxRun = n
	}
}

// WithRounds sets the number of rounds. Default 1.
func WithRounds(n int) Option {
	return func(o *options) {
		o.rounds = n
	}
}

// WithParallelism bounds the number of rounds in flight. Default GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithSeed sets the seed of round 0; round i uses seed+i.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithMemoryLimit bounds the bytes held by in-flight rounds. Zero means no limit.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(logger *bitvec.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = bitvec.NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetrics configures a metrics collector. Pass nil to disable metrics.
func WithMetrics(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}
