package block

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/hupe1980/growbuf/internal/mem"
	"github.com/hupe1980/growbuf/internal/mmap"
)

// storage is one backing buffer for a block: a typed view plus whatever
// raw memory it sits on.
type storage[T any] struct {
	items   []T
	raw     []byte        // non-nil when backed by raw bytes (aligned heap or mapping)
	mapping *mmap.Mapping // non-nil when off-heap
}

// allocStorage obtains zeroed storage for n elements according to cfg.
// The budget reservation for the storage has already been made by the caller.
func allocStorage[T any](cfg config, n int) (storage[T], error) {
	var s storage[T]
	if n == 0 {
		return s, nil
	}

	elemSize := int(unsafe.Sizeof(*new(T)))
	byteCount := n * elemSize
	scanned := typeHasPointers(reflect.TypeFor[T]())

	switch {
	case cfg.offHeap:
		if scanned {
			return s, fmt.Errorf("%w: %s", ErrPointerElem, reflect.TypeFor[T]())
		}
		if byteCount == 0 {
			// Zero-size element types occupy no memory; a plain slice
			// carries the length.
			s.items = make([]T, n)
			return s, nil
		}
		m, err := mmap.MapAnon(byteCount)
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
		}
		s.mapping = m
		s.raw = m.Bytes()
		s.items = unsafe.Slice((*T)(unsafe.Pointer(&s.raw[0])), n) //nolint:gosec // raw-backed typed view
	case !scanned && byteCount > 0:
		s.raw = mem.AllocAligned(byteCount)
		s.items = unsafe.Slice((*T)(unsafe.Pointer(&s.raw[0])), n) //nolint:gosec // raw-backed typed view
	default:
		s.items = make([]T, n)
	}

	return s, nil
}

// free returns the storage to its origin. Raw-backed buffers are optionally
// poisoned first; GC-managed buffers are cleared so stale element references
// do not keep their targets alive.
func (s *storage[T]) free(cfg config) error {
	if s.items == nil {
		return nil
	}

	if s.raw != nil {
		if cfg.poisonOn {
			mem.Poison(s.raw, cfg.poison)
		} else {
			mem.Zero(s.raw)
		}
	} else {
		clear(s.items)
	}

	var err error
	if s.mapping != nil {
		err = s.mapping.Close()
	}

	s.items = nil
	s.raw = nil
	s.mapping = nil
	return err
}

// typeHasPointers reports whether the garbage collector must scan values of
// type t. Pointer-free types may live in raw or off-heap storage.
func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Ptr, UnsafePointer, Map, Chan, Func, Interface, Slice, String.
		return true
	}
}
