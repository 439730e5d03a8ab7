package growbuf

import (
	"unsafe"

	"github.com/hupe1980/growbuf/block"
)

// Stats tracks a vector's storage activity. The copy-cost counters exist so
// the amortized growth bound is observable: across N pushes with a geometric
// policy, BytesCopied stays O(N).
type Stats struct {
	Grows       int64 // Successful capacity growths
	Shrinks     int64 // Successful shrink-to-fit resizes
	FailedGrows int64 // Growth attempts denied by the allocator/budget
	BytesCopied int64 // Total bytes moved between storage blocks
}

// Vector is a growable sequence of T backed by a single owned storage block.
//
// Elements [0, Len()) are live; storage beyond that is zeroed spare
// capacity. The zero value is not usable — construct with New.
type Vector[T any] struct {
	block    *block.Block[T] // nil until the first growth (lazy allocation)
	length   int
	opts     options[T]
	stats    Stats
	released bool
}

// New creates an empty vector with capacity 0. No storage is allocated
// until the first push or reserve.
func New[T any](opts ...Option[T]) *Vector[T] {
	o := options[T]{
		policy:  DefaultGrowthPolicy,
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Vector[T]{opts: o}
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.length
}

// Cap returns the current capacity in elements. Always >= Len.
func (v *Vector[T]) Cap() int {
	return v.block.Cap()
}

// Stats returns a snapshot of the vector's storage activity.
func (v *Vector[T]) Stats() Stats {
	return v.stats
}

// Push appends value at the back, growing storage through the growth policy
// when full. On allocation failure the vector is unchanged — the value is
// not inserted and the length is untouched — and the error is returned for
// the caller to handle.
func (v *Vector[T]) Push(value T) error {
	if v.released {
		return block.ErrReleased
	}

	if v.length == v.Cap() {
		if err := v.grow(v.length + 1); err != nil {
			return err
		}
	}

	v.block.Items()[v.length] = value
	v.length++
	return nil
}

// Pop removes and returns the last element. The second result is false when
// the vector is empty. Capacity is never reduced by Pop.
func (v *Vector[T]) Pop() (T, bool) {
	if v.length == 0 {
		var zero T
		return zero, false
	}

	items := v.block.Items()
	v.length--
	value := items[v.length]
	var zero T
	items[v.length] = zero // Moved out; do not keep element references alive
	return value, true
}

// Get returns the element at index. Indexes outside [0, Len()) fail with
// *ErrIndexOutOfBounds.
func (v *Vector[T]) Get(index int) (T, error) {
	if index < 0 || index >= v.length {
		var zero T
		return zero, &ErrIndexOutOfBounds{Index: index, Length: v.length}
	}
	return v.block.Items()[index], nil
}

// Set replaces the element at index. Indexes outside [0, Len()) fail with
// *ErrIndexOutOfBounds.
//
// The previous element is overwritten without invoking the destructor; Set
// transfers ownership of value into the vector and ownership of the old
// element back to the caller's discretion.
func (v *Vector[T]) Set(index int, value T) error {
	if index < 0 || index >= v.length {
		return &ErrIndexOutOfBounds{Index: index, Length: v.length}
	}
	v.block.Items()[index] = value
	return nil
}

// Slice returns the live elements as a borrow of the vector's storage.
// The slice is valid only until the next mutating call (Push, Reserve,
// ShrinkToFit, Clear, Release); holding it across one reads stale storage.
func (v *Vector[T]) Slice() []T {
	if v.length == 0 {
		return nil
	}
	return v.block.Items()[:v.length]
}

// Reserve grows capacity eagerly so at least minCapacity elements fit
// without further allocation. A no-op when capacity is already sufficient.
// On failure the vector is unchanged.
func (v *Vector[T]) Reserve(minCapacity int) error {
	if v.released {
		return block.ErrReleased
	}
	if minCapacity <= v.Cap() {
		return nil
	}
	return v.grow(minCapacity)
}

// ShrinkToFit resizes storage down to exactly Len() elements. A no-op when
// the storage is already tight. If the shrinking reallocation fails the
// larger buffer is kept and the error reported; the vector stays valid
// either way.
func (v *Vector[T]) ShrinkToFit() error {
	if v.released {
		return block.ErrReleased
	}
	oldCap := v.Cap()
	if v.block == nil || oldCap == v.length {
		return nil
	}

	if v.length == 0 {
		// Back to the lazy empty state: no storage at all.
		v.block.Release()
		v.block = nil
		v.stats.Shrinks++
		v.opts.metrics.RecordShrink(oldCap, 0, nil)
		v.opts.logger.LogShrink(oldCap, 0)
		return nil
	}

	err := v.block.Resize(v.length)
	v.opts.metrics.RecordShrink(oldCap, v.length, err)
	if err != nil {
		return err
	}

	v.stats.Shrinks++
	v.stats.BytesCopied += int64(v.length) * int64(v.block.ElemSize())
	v.opts.logger.LogShrink(oldCap, v.length)
	return nil
}

// Clear destroys all live elements and resets the length to zero. Capacity
// is retained. If a destructor is configured it runs over elements in index
// order 0..Len() before the slots are zeroed.
func (v *Vector[T]) Clear() {
	if v.length == 0 {
		return
	}

	items := v.block.Items()
	if v.opts.destroy != nil {
		for i := 0; i < v.length; i++ {
			v.opts.destroy(&items[i])
		}
	}
	clear(items[:v.length])
	v.length = 0
}

// Release destroys all live elements and returns the storage. Safe to call
// any number of times; only the first call has an effect. Prefer
// handle.Release(&v) at call sites so the owning variable is nilled too.
func (v *Vector[T]) Release() {
	if v == nil || v.released {
		return
	}

	v.Clear()
	byteCap := v.block.ByteCap()
	v.block.Release()
	v.block = nil
	v.released = true

	v.opts.metrics.RecordRelease(byteCap)
	v.opts.logger.LogRelease(byteCap)
}

// Close releases the vector and reports no error. It exists so a Vector
// satisfies io.Closer and composes with handle.Close.
func (v *Vector[T]) Close() error {
	v.Release()
	return nil
}

// grow resizes storage so at least minimum elements fit, consulting the
// growth policy for the target capacity. Strong error safety: on failure
// nothing about the vector changes.
func (v *Vector[T]) grow(minimum int) error {
	oldCap := v.Cap()
	newCap := v.opts.policy(oldCap, minimum)
	if newCap < minimum {
		newCap = minimum
	}

	copiedBytes := v.length * int(unsafe.Sizeof(*new(T)))

	var err error
	if v.block == nil {
		var b *block.Block[T]
		b, err = block.Acquire[T](newCap, v.opts.blockOpts...)
		if err == nil {
			v.block = b
		}
		copiedBytes = 0
	} else {
		err = v.block.Resize(newCap)
	}

	if err != nil {
		v.stats.FailedGrows++
		v.opts.metrics.RecordGrow(oldCap, newCap, 0, err)
		v.opts.logger.LogAllocationFailure(newCap*int(unsafe.Sizeof(*new(T))), err)
		return err
	}
	v.opts.metrics.RecordGrow(oldCap, newCap, copiedBytes, nil)

	v.stats.Grows++
	v.stats.BytesCopied += int64(copiedBytes)
	v.opts.logger.LogGrow(oldCap, newCap, v.length)
	return nil
}
