package stress

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/internal/conv"
	"github.com/hupe1980/bitvec/testutil"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Result summarizes a Run.
type Result struct {
	Rounds   int
	Bits     int
	Duration time.Duration
}

// Runner executes verification rounds.
type Runner struct {
	opts     options
	mem      *semaphore.Weighted // nil if unlimited
	progress rate.Sometimes

	// afterPush runs between building and verifying a round's vector.
	afterPush func(*bitvec.BitVector)
}

// New creates a Runner.
func New(optFns ...Option) (*Runner, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	r := &Runner{
		opts:     opts,
		progress: rate.Sometimes{First: 1, Interval: time.Second},
	}
	if opts.memoryLimit > 0 {
		r.mem = semaphore.NewWeighted(opts.memoryLimit)
	}
	return r, nil
}

// roundBytes estimates the memory one round holds: the expected sequence
// plus the packed words.
func roundBytes(bits int) int64 {
	words, err := conv.WordsFor(uint64(max(bits, 0)))
	if err != nil {
		return int64(bits)
	}
	return int64(bits) + int64(words)*8
}

// Run executes all rounds and returns the first error, if any. Remaining
// rounds are skipped once a round fails or ctx is canceled.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	log := r.opts.logger.WithSeed(r.opts.seed)
	log.InfoContext(ctx, "stress run started",
		"rounds", r.opts.rounds,
		"bits", r.opts.bits,
		"density", r.opts.density,
		"max_run", r.opts.maxRun,
		"parallelism", r.opts.parallelism,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.parallelism)

	var completed atomic.Int64
	for round := range r.opts.rounds {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := r.runRound(gctx, round); err != nil {
				return err
			}
			n := completed.Add(1)
			r.progress.Do(func() {
				log.InfoContext(gctx, "stress progress",
					"completed", n,
					"rounds", r.opts.rounds,
				)
			})
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	res := Result{
		Rounds:   int(completed.Load()),
		Bits:     r.opts.bits,
		Duration: time.Since(start),
	}
	if err != nil {
		log.ErrorContext(ctx, "stress run failed", "completed", res.Rounds, "error", err)
		return res, err
	}
	log.InfoContext(ctx, "stress run completed",
		"rounds", res.Rounds,
		"duration", res.Duration,
	)
	return res, nil
}

func (r *Runner) runRound(ctx context.Context, round int) (err error) {
	need := roundBytes(r.opts.bits)
	if r.mem != nil {
		if err := r.mem.Acquire(ctx, need); err != nil {
			return err
		}
		defer r.mem.Release(need)
	}

	seed := r.opts.seed + int64(round)
	start := time.Now()
	defer func() {
		r.opts.metrics.RecordRound(r.opts.bits, time.Since(start), err)
		r.opts.logger.LogRound(ctx, round, uint64(r.opts.bits), err)
	}()

	want := r.generate(seed)

	bv := bitvec.New()
	for _, b := range want {
		bv.PushBack(b)
	}
	if r.afterPush != nil {
		r.afterPush(bv)
	}

	return verify(bv, want, round, seed)
}

func (r *Runner) generate(seed int64) []bool {
	rng := testutil.NewRNG(seed)
	if r.opts.maxRun > 0 {
		return rng.Runs(r.opts.bits, r.opts.maxRun)
	}
	return rng.Bools(r.opts.bits, r.opts.density)
}

// verify reads want back through every access path.
func verify(bv *bitvec.BitVector, want []bool, round int, seed int64) error {
	mismatch := func(check string, pos uint64, got bool) error {
		return &MismatchError{Round: round, Seed: seed, Check: check, Pos: pos, Want: want[pos], Got: got}
	}

	if bv.Len() != uint64(len(want)) {
		return fmt.Errorf("round %d (seed %d): length %d, want %d", round, seed, bv.Len(), len(want))
	}

	for i := range bv.Len() {
		if got := bv.Test(i); got != want[i] {
			return mismatch("test", i, got)
		}
		got, err := bv.Get(i)
		if err != nil {
			return fmt.Errorf("round %d (seed %d): %w", round, seed, err)
		}
		if got != want[i] {
			return mismatch("get", i, got)
		}
	}

	for it := bv.ConstIter(); it.Valid(); it.Next() {
		if got := it.Value(); got != want[it.Pos()] {
			return mismatch("iterator", it.Pos(), got)
		}
	}

	var pos uint64
	for got := range bv.Values() {
		if got != want[pos] {
			return mismatch("values", pos, got)
		}
		pos++
	}

	clone := bv.Clone()
	if !clone.Equal(bv) {
		return fmt.Errorf("round %d (seed %d): clone differs from original", round, seed)
	}
	return nil
}
