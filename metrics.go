package growbuf

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordGrow is called after each growth attempt. bytesCopied is the
	// number of bytes moved into the new storage; err is nil on success.
	RecordGrow(oldCap, newCap, bytesCopied int, err error)

	// RecordShrink is called after each shrink attempt.
	RecordShrink(oldCap, newCap int, err error)

	// RecordRelease is called when the vector's storage is released.
	// byteCap is the capacity returned to the system.
	RecordRelease(byteCap int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, int, int, error) {}
func (NoopMetricsCollector) RecordShrink(int, int, error)    {}
func (NoopMetricsCollector) RecordRelease(int)               {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GrowCount        atomic.Int64
	GrowErrors       atomic.Int64
	GrowBytesCopied  atomic.Int64
	ShrinkCount      atomic.Int64
	ShrinkErrors     atomic.Int64
	ReleaseCount     atomic.Int64
	BytesReleasedSum atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(oldCap, newCap, bytesCopied int, err error) {
	b.GrowCount.Add(1)
	b.GrowBytesCopied.Add(int64(bytesCopied))
	if err != nil {
		b.GrowErrors.Add(1)
	}
}

// RecordShrink implements MetricsCollector.
func (b *BasicMetricsCollector) RecordShrink(oldCap, newCap int, err error) {
	b.ShrinkCount.Add(1)
	if err != nil {
		b.ShrinkErrors.Add(1)
	}
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(byteCap int) {
	b.ReleaseCount.Add(1)
	b.BytesReleasedSum.Add(int64(byteCap))
}
