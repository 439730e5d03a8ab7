package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of raw buffers returned by AllocAligned (64 bytes,
// one cache line).
const Alignment = 64

// AllocAligned allocates a zeroed byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure
// alignment. The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Allocate size + alignment so an aligned start offset always exists.
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// Poison overwrites b with the given pattern byte. Used on release paths so
// use-after-release reads return an obvious marker instead of stale data.
func Poison(b []byte, pattern byte) {
	for i := range b {
		b[i] = pattern
	}
}

// Zero clears b. Equivalent to Poison(b, 0) but kept separate because the
// zeroing loop is recognized and vectorized by the compiler.
func Zero(b []byte) {
	clear(b)
}
