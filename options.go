package growbuf

import (
	"github.com/hupe1980/growbuf/block"
)

type options[T any] struct {
	policy    GrowthPolicy
	destroy   func(*T)
	blockOpts []block.Option
	logger    *Logger
	metrics   MetricsCollector
}

// Option configures a Vector at construction time.
type Option[T any] func(*options[T])

// WithGrowthPolicy replaces the default doubling policy.
//
// The policy must honor the GrowthPolicy contract; a result below the
// requested minimum is clamped so a misbehaving policy cannot stall growth.
func WithGrowthPolicy[T any](p GrowthPolicy) Option[T] {
	return func(o *options[T]) {
		if p != nil {
			o.policy = p
		}
	}
}

// WithGrowthFactor keeps the doubling-style policy but with a custom
// geometric factor. Factors below 2 are treated as 2.
func WithGrowthFactor[T any](factor int) Option[T] {
	return func(o *options[T]) {
		o.policy = Doubling(factor)
	}
}

// WithDestructor registers a per-element destructor, invoked in index order
// on Clear and Release for every live element. Use this when elements own
// external resources (files, mappings, child vectors).
func WithDestructor[T any](fn func(*T)) Option[T] {
	return func(o *options[T]) {
		o.destroy = fn
	}
}

// WithBlockOptions passes storage options through to the underlying block:
// memory budget, off-heap placement, poison-on-release.
func WithBlockOptions[T any](opts ...block.Option) Option[T] {
	return func(o *options[T]) {
		o.blockOpts = append(o.blockOpts, opts...)
	}
}

// WithLogger sets the logger for growth and release events.
// The default discards everything.
func WithLogger[T any](l *Logger) Option[T] {
	return func(o *options[T]) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricsCollector sets the metrics collector for grow/shrink/release
// events. The default is a no-op.
func WithMetricsCollector[T any](m MetricsCollector) Option[T] {
	return func(o *options[T]) {
		if m != nil {
			o.metrics = m
		}
	}
}
