package block

import (
	"errors"
	"fmt"
	"sync/atomic"
	"unsafe"
)

var (
	// ErrAllocationFailed is returned when storage cannot be obtained,
	// either because the memory budget denied the reservation or the
	// operating system refused the mapping. The failed operation leaves
	// prior state intact.
	ErrAllocationFailed = errors.New("block: allocation failed")
	// ErrReleased is returned when an operation is attempted on a block
	// whose storage has already been released.
	ErrReleased = errors.New("block: block already released")
	// ErrInvalidCount is returned for a negative element count.
	ErrInvalidCount = errors.New("block: invalid element count")
	// ErrPointerElem is returned when off-heap storage is requested for an
	// element type the garbage collector must scan.
	ErrPointerElem = errors.New("block: element type contains pointers, off-heap storage unavailable")
)

// Budget reserves and returns memory against a configured limit.
// resource.Controller satisfies this; a nil Budget means unlimited.
type Budget interface {
	TryAcquireMemory(bytes int64) bool
	ReleaseMemory(bytes int64)
}

type config struct {
	budget   Budget
	offHeap  bool
	poison   byte
	poisonOn bool
}

// Option configures block storage.
type Option func(*config)

// WithBudget charges the block's storage against the given memory budget.
// Reservations denied by the budget surface as ErrAllocationFailed.
func WithBudget(b Budget) Option {
	return func(c *config) {
		c.budget = b
	}
}

// WithOffHeap places storage in an anonymous memory mapping outside the
// garbage-collected heap. Only valid for pointer-free element types.
func WithOffHeap() Option {
	return func(c *config) {
		c.offHeap = true
	}
}

// WithPoison overwrites outgoing storage with pattern before it is freed,
// so reads through a stale borrow return the marker instead of old data.
func WithPoison(pattern byte) Option {
	return func(c *config) {
		c.poison = pattern
		c.poisonOn = true
	}
}

// Block owns storage for a fixed number of elements of type T.
type Block[T any] struct {
	s        storage[T]
	cfg      config
	released atomic.Bool
}

// Acquire obtains a block with zeroed storage for exactly n elements.
// n == 0 produces an empty block with no storage; growth happens through
// Resize. Acquire never panics on budget exhaustion — it returns
// ErrAllocationFailed and the caller decides.
func Acquire[T any](n int, opts ...Option) (*Block[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &Block[T]{cfg: cfg}

	byteCount := int64(n) * int64(b.ElemSize())
	if cfg.budget != nil && !cfg.budget.TryAcquireMemory(byteCount) {
		return nil, fmt.Errorf("%w: budget denied %d bytes", ErrAllocationFailed, byteCount)
	}

	s, err := allocStorage[T](cfg, n)
	if err != nil {
		if cfg.budget != nil {
			cfg.budget.ReleaseMemory(byteCount)
		}
		return nil, err
	}

	b.s = s
	return b, nil
}

// Cap returns the block's capacity in elements.
func (b *Block[T]) Cap() int {
	if b == nil {
		return 0
	}
	return len(b.s.items)
}

// ElemSize returns the size of one element in bytes.
func (b *Block[T]) ElemSize() int {
	return int(unsafe.Sizeof(*new(T)))
}

// ByteCap returns the block's capacity in bytes. Always an exact multiple
// of ElemSize.
func (b *Block[T]) ByteCap() int {
	return b.Cap() * b.ElemSize()
}

// Items returns the typed view of the block's storage.
//
// The returned slice is a borrow: it is valid only until the next Resize or
// Release. Holding it across either is a use-after-release bug.
func (b *Block[T]) Items() []T {
	if b == nil {
		return nil
	}
	return b.s.items
}

// Released reports whether the block's storage has been released.
func (b *Block[T]) Released() bool {
	return b != nil && b.released.Load()
}

// Resize replaces the block's storage with zeroed storage for exactly n
// elements, copying the first min(n, Cap()) elements over.
//
// On failure the block is unchanged and its current storage remains valid.
// On success prior Items borrows are invalid. While the copy runs both the
// old and the new storage are reserved against the budget, mirroring the
// peak usage of a moving reallocation.
func (b *Block[T]) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	if b.released.Load() {
		return ErrReleased
	}
	if n == b.Cap() {
		return nil
	}

	newBytes := int64(n) * int64(b.ElemSize())
	if b.cfg.budget != nil && !b.cfg.budget.TryAcquireMemory(newBytes) {
		return fmt.Errorf("%w: budget denied %d bytes", ErrAllocationFailed, newBytes)
	}

	s, err := allocStorage[T](b.cfg, n)
	if err != nil {
		if b.cfg.budget != nil {
			b.cfg.budget.ReleaseMemory(newBytes)
		}
		return err
	}

	copy(s.items, b.s.items)

	oldBytes := int64(b.ByteCap())
	old := b.s
	b.s = s

	freeErr := old.free(b.cfg)
	if b.cfg.budget != nil {
		b.cfg.budget.ReleaseMemory(oldBytes)
	}
	return freeErr
}

// Release returns the block's storage exactly once. Further calls are
// no-ops. A nil block is also a no-op.
func (b *Block[T]) Release() {
	if b == nil {
		return
	}
	if !b.released.CompareAndSwap(false, true) {
		return
	}

	byteCount := int64(b.ByteCap())
	_ = b.s.free(b.cfg)
	if b.cfg.budget != nil {
		b.cfg.budget.ReleaseMemory(byteCount)
	}
}
