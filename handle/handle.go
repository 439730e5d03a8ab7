// Package handle provides the sanctioned release path for resources owned
// through a pointer variable.
//
// Release and Close take the address of the caller's own pointer slot and
// store nil into it after releasing, so the variable cannot be used to reach
// freed storage afterwards. A slot that is already nil is a guaranteed
// no-op, which makes double release safe by construction — the Go rendition
// of "free it, then null the pointer" done in one step that cannot be
// forgotten.
package handle

import "io"

// Releaser is a resource with an idempotent Release method.
type Releaser interface {
	Release()
}

// Release releases the resource referenced by slot and stores nil into the
// caller's slot. Safe to call any number of times: a nil slot or a nil
// pointer in the slot is a no-op.
//
//	v := growbuf.New[int]()
//	defer handle.Release(&v)
func Release[T any, P interface {
	*T
	Releaser
}](slot *P) {
	if slot == nil || *slot == nil {
		return
	}
	(*slot).Release()
	*slot = nil
}

// Close closes the resource referenced by slot and stores nil into the
// caller's slot. Like Release, but for io.Closer resources; the error of the
// first effective close is returned, later calls return nil.
func Close[T any, P interface {
	*T
	io.Closer
}](slot *P) error {
	if slot == nil || *slot == nil {
		return nil
	}
	err := (*slot).Close()
	*slot = nil
	return err
}
