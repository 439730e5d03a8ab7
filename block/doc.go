// Package block implements a single tracked storage block with explicit
// acquire, resize, and release semantics.
//
// # Ownership
//
// A Block owns exactly one piece of storage. Resize replaces that storage;
// on failure the block is unchanged and still valid, on success any borrow
// of the previous storage is invalid. Release frees the storage exactly
// once — further calls are no-ops, guarded by an atomic flag.
//
// # Backends
//
// Storage lives on the Go heap by default: a 64-byte-aligned raw buffer for
// element types the garbage collector does not need to scan, a plain typed
// slice otherwise. WithOffHeap places storage in an anonymous memory mapping
// outside the managed heap; this is only permitted for pointer-free element
// types, enforced at acquire time.
//
// # Budget
//
// An optional memory budget (resource.Controller or anything satisfying
// Budget) is consulted before storage is obtained. A denied reservation
// surfaces as ErrAllocationFailed and leaves the block untouched, which is
// how recoverable allocator failure is modeled on a runtime that otherwise
// aborts on out-of-memory.
//
// # Concurrency
//
// A Block has a single logical owner. Only the release flag is atomic; all
// other access requires external synchronization.
package block
