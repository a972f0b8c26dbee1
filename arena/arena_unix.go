//go:build unix

package arena

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// New maps an anonymous, page-aligned region of the given size.
func New(size int64) (*Arena, error) {
	if size <= 0 {
		return nil, fmt.Errorf("arena: size must be positive; got %v", size)
	}
	if size > int64(^uint(0)>>1) {
		return nil, fmt.Errorf("arena: size too large to map (%v bytes)", size)
	}

	data, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("arena: mmap failed: %v", err)
	}
	return &Arena{data: data}, nil
}

// Close unmaps the arena. Closing an already-closed arena is a no-op.
func (a *Arena) Close() error {
	if a.data == nil {
		return nil
	}
	data := a.data
	a.data = nil
	err := unix.Munmap(data)
	if errors.Is(err, unix.EINVAL) {
		// treat double-unmap as no-op for callers
		return nil
	}
	return err
}
