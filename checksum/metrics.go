package checksum

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives per-source and per-batch measurements.
// Implement this interface to integrate with monitoring systems.
type MetricsCollector interface {
	// RecordSum is called after each source. bytes is the number of bytes
	// fed to the hasher, after decompression.
	RecordSum(bytes int64, duration time.Duration, err error)

	// RecordBatch is called after each Run.
	RecordBatch(count, failed, duplicates int, duration time.Duration)
}

// NoopMetricsCollector discards all measurements.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSum(int64, time.Duration, error)    {}
func (NoopMetricsCollector) RecordBatch(int, int, int, time.Duration) {}

// BasicMetricsCollector keeps in-memory counters.
type BasicMetricsCollector struct {
	SumCount        atomic.Int64
	SumErrors       atomic.Int64
	SumBytes        atomic.Int64
	SumTotalNanos   atomic.Int64
	BatchCount      atomic.Int64
	BatchSources    atomic.Int64
	BatchFailed     atomic.Int64
	BatchDuplicates atomic.Int64
}

// RecordSum implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSum(bytes int64, duration time.Duration, err error) {
	b.SumCount.Add(1)
	b.SumTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SumErrors.Add(1)
		return
	}
	b.SumBytes.Add(bytes)
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count, failed, duplicates int, _ time.Duration) {
	b.BatchCount.Add(1)
	b.BatchSources.Add(int64(count))
	b.BatchFailed.Add(int64(failed))
	b.BatchDuplicates.Add(int64(duplicates))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SumCount:        b.SumCount.Load(),
		SumErrors:       b.SumErrors.Load(),
		SumBytes:        b.SumBytes.Load(),
		SumAvgNanos:     b.getAvgSumNanos(),
		BatchCount:      b.BatchCount.Load(),
		BatchSources:    b.BatchSources.Load(),
		BatchFailed:     b.BatchFailed.Load(),
		BatchDuplicates: b.BatchDuplicates.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSumNanos() int64 {
	count := b.SumCount.Load()
	if count == 0 {
		return 0
	}
	return b.SumTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SumCount        int64
	SumErrors       int64
	SumBytes        int64
	SumAvgNanos     int64
	BatchCount      int64
	BatchSources    int64
	BatchFailed     int64
	BatchDuplicates int64
}
