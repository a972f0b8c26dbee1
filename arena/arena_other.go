//go:build !unix

package arena

import "fmt"

// New allocates a backing region of the given size on the Go heap.
func New(size int64) (*Arena, error) {
	if size <= 0 {
		return nil, fmt.Errorf("arena: size must be positive; got %v", size)
	}
	return &Arena{data: make([]byte, size)}, nil
}

// Close releases the backing region. Closing an already-closed arena is a
// no-op.
func (a *Arena) Close() error {
	a.data = nil
	return nil
}
