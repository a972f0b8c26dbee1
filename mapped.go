package pagepool

import "github.com/pagebuddy/pagepool/arena"

// Mapped is a Pool bound to a real backing region, so allocations hand out
// writable memory rather than bare offsets.
type Mapped struct {
	pool *Pool
	ar   *arena.Arena
}

// NewMapped creates a pool over pageCount pages backed by an anonymous
// memory arena of the same size.
func NewMapped(pageCount int) (*Mapped, error) {
	p, err := New(pageCount)
	if err != nil {
		return nil, err
	}
	ar, err := arena.New(int64(pageCount) * PageSize)
	if err != nil {
		return nil, err
	}
	return &Mapped{pool: p, ar: ar}, nil
}

// Pool returns the underlying pool.
func (m *Mapped) Pool() *Pool {
	return m.pool
}

// AllocSlice allocates a block of 2^(rank-1) pages and returns its backing
// bytes along with its offset. The offset is the handle to pass to Release.
func (m *Mapped) AllocSlice(rank int) ([]byte, int64, error) {
	off, err := m.pool.AllocPages(rank)
	if err != nil {
		return nil, 0, err
	}
	buf, err := m.ar.Slice(off, int64(rankPages(rank))*PageSize)
	if err != nil {
		return nil, 0, err
	}
	return buf, off, nil
}

// Release returns a block obtained from AllocSlice. The block's bytes must
// not be used after Release.
func (m *Mapped) Release(off int64) error {
	return m.pool.ReturnPages(off)
}

// Close unmaps the backing arena. The pool must not be used afterwards.
func (m *Mapped) Close() error {
	return m.ar.Close()
}
