package stress

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives per-round measurements.
type MetricsCollector interface {
	// RecordRound is called after each round.
	// bits is the vector length, duration the time taken,
	// err is nil if the round verified cleanly.
	RecordRound(bits int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRound(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe for concurrent use.
type BasicMetricsCollector struct {
	RoundCount   atomic.Int64
	RoundErrors  atomic.Int64
	BitsVerified atomic.Int64
	TotalNanos   atomic.Int64
}

// RecordRound implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRound(bits int, duration time.Duration, err error) {
	b.RoundCount.Add(1)
	b.TotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RoundErrors.Add(1)
		return
	}
	b.BitsVerified.Add(int64(bits))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RoundCount:    b.RoundCount.Load(),
		RoundErrors:   b.RoundErrors.Load(),
		BitsVerified:  b.BitsVerified.Load(),
		AvgRoundNanos: b.getAvgRoundNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgRoundNanos() int64 {
	count := b.RoundCount.Load()
	if count == 0 {
		return 0
	}
	return b.TotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RoundCount    int64
	RoundErrors   int64
	BitsVerified  int64
	AvgRoundNanos int64
}
