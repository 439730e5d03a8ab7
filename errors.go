package growbuf

import (
	"fmt"
)

// ErrIndexOutOfBounds indicates an access outside the vector's live range.
//
// The access is rejected, never clamped or wrapped to an adjacent element.
type ErrIndexOutOfBounds struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfBounds) Error() string {
	return fmt.Sprintf("index out of bounds: index %d, length %d", e.Index, e.Length)
}
