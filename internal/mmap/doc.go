// Package mmap provides anonymous memory mappings for off-heap block storage.
//
// # Overview
//
// Anonymous mappings obtain read-write memory directly from the operating
// system, outside the Go garbage collector's managed heap. Block storage
// placed here is never scanned or moved by the GC, which keeps large,
// long-lived buffers out of GC pause budgets.
//
// # Usage
//
//	m, err := mmap.MapAnon(size)
//	if err != nil { ... }
//	defer m.Close()
//
//	buf := m.Bytes()
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT
//
// # Safety
//
// Close() is idempotent and protected by an atomic flag. Callers must not
// touch Bytes() after Close() returns; the mapping is gone and the kernel
// will fault the access.
package mmap
