// Package optable implements a registry mapping operation tags to callbacks.
//
// The table replaces ad hoc conditional dispatch and raw function-pointer
// arrays: behavior is selected at runtime by tag, lookups on unregistered
// tags report absence instead of invoking through nothing, and Dispatch
// turns an unknown tag into a typed error rather than masking it as a no-op.
//
// A Table has a single logical owner; it is not safe for concurrent use.
package optable

import "fmt"

// Callback is an operation invocable through the table.
type Callback[A, R any] func(A) (R, error)

// ErrUnknownTag is returned by Dispatch when no callback is registered for
// the requested tag.
type ErrUnknownTag struct {
	Tag any
}

func (e *ErrUnknownTag) Error() string {
	return fmt.Sprintf("optable: unknown tag: %v", e.Tag)
}

// Table maps operation tags to callbacks. At most one callback is held per
// tag; Register overwrites.
type Table[K comparable, A, R any] struct {
	callbacks map[K]Callback[A, R]
}

// New creates an empty operation table.
func New[K comparable, A, R any]() *Table[K, A, R] {
	return &Table[K, A, R]{
		callbacks: make(map[K]Callback[A, R]),
	}
}

// Register inserts or overwrites the callback for tag. A nil callback
// removes the registration, so a later Dispatch fails loudly instead of
// invoking through nil.
func (t *Table[K, A, R]) Register(tag K, cb Callback[A, R]) {
	if cb == nil {
		delete(t.callbacks, tag)
		return
	}
	t.callbacks[tag] = cb
}

// Lookup returns the callback registered for tag. Absence is not an error;
// the caller decides between fallback and rejection.
func (t *Table[K, A, R]) Lookup(tag K) (Callback[A, R], bool) {
	cb, ok := t.callbacks[tag]
	return cb, ok
}

// Dispatch looks up and invokes the callback for tag. An unregistered tag
// yields *ErrUnknownTag and no side effect; otherwise the callback's own
// result and error are returned unchanged.
func (t *Table[K, A, R]) Dispatch(tag K, arg A) (R, error) {
	cb, ok := t.callbacks[tag]
	if !ok {
		var zero R
		return zero, &ErrUnknownTag{Tag: tag}
	}
	return cb(arg)
}

// Len returns the number of registered tags.
func (t *Table[K, A, R]) Len() int {
	return len(t.callbacks)
}
