// Package growbuf provides a growable typed buffer with safe acquire,
// resize, and release semantics.
//
// The core type is Vector[T], a generic sequence backed by a single owned
// storage block with amortized growth:
//
//   - Lazy allocation: a new Vector holds no storage until the first push
//   - Amortized O(1) push via a pluggable growth policy (doubling by default)
//   - Strong error safety: a failed push, reserve, or shrink leaves the
//     vector exactly as it was
//   - Bounds-checked access: out-of-range Get/Set return a typed error,
//     never read adjacent memory
//   - Idempotent release: releasing twice is a defined no-op, and the
//     handle package nils the caller's pointer so stale use is structural
//
// # Quick Start
//
//	v := growbuf.New[int]()
//	defer handle.Release(&v)
//
//	for i := 1; i <= 5; i++ {
//	    if err := v.Push(i); err != nil {
//	        return err
//	    }
//	}
//
//	third, _ := v.Get(2)     // 3
//	last, _ := v.Pop()       // 5
//
// # Memory Budget
//
// Allocation failure is recoverable by contract. Attach a
// resource.Controller to make the budget real:
//
//	ctrl := resource.NewController(resource.Config{MemoryLimitBytes: 64 << 20})
//	v := growbuf.New[float32](growbuf.WithBlockOptions[float32](block.WithBudget(ctrl)))
//
// A push denied by the budget returns block.ErrAllocationFailed and the
// vector is untouched, so the caller can retry, spill, or degrade.
//
// # Element Cleanup
//
// Elements owning external resources register a destructor, invoked in
// index order by Clear and Release:
//
//	v := growbuf.New[*os.File](growbuf.WithDestructor(func(f **os.File) {
//	    (*f).Close()
//	}))
//
// Runtime-selected per-element behavior (destroy, clone, compare) goes
// through an optable.Table instead of raw function-pointer juggling.
//
// # Concurrency
//
// A Vector has a single logical owner. Nothing here locks; wrap access in
// your own mutex or confine the vector to one goroutine.
package growbuf
