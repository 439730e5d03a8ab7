// Package mem provides memory allocation utilities for block storage.
//
// # Aligned Allocation
//
// Provides 64-byte aligned allocation so raw element storage starts on a
// cache-line boundary regardless of the Go allocator's placement.
//
// # Wiping
//
// Poison fills a buffer with a recognizable pattern before it is released,
// so stale borrows read garbage loudly instead of quietly reusing old data.
package mem
