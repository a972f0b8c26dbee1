// Package arena provides page-aligned anonymous memory regions to back a
// page pool. On unix the region is mmap'd; elsewhere it falls back to a
// heap-allocated slice.
package arena

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates a slice request outside the arena.
var ErrOutOfRange = errors.New("arena: range outside arena")

// Arena is one contiguous backing region.
type Arena struct {
	data []byte
}

// Bytes returns the arena's full backing region.
func (a *Arena) Bytes() []byte {
	return a.data
}

// Size returns the arena size in bytes.
func (a *Arena) Size() int64 {
	return int64(len(a.data))
}

// Slice returns the n bytes starting at byte offset off.
func (a *Arena) Slice(off, n int64) ([]byte, error) {
	if off < 0 || n < 0 || off+n > int64(len(a.data)) {
		return nil, fmt.Errorf("%w: [%v, %v) in arena of %v bytes", ErrOutOfRange, off, off+n, len(a.data))
	}
	return a.data[off : off+n : off+n], nil
}
