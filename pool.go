// Implementation of a fixed-capacity buddy page allocator.
//
// The Pool type manages a contiguous run of uniformly sized pages (4KB each).
// A Pool is created with New(), page blocks are allocated with AllocPages()
// and released with ReturnPages().
//
// Internally, allocations are done in units of "ranks". A block of rank r
// covers exactly 2^(r-1) contiguous pages and is aligned so that its starting
// page index is a multiple of 2^(r-1). The alignment guarantees that every
// block has a deterministic buddy (the other half of the rank r+1 block it
// combines into) computable as start ^ 2^(r-1).
//
// The pool keeps one free list per rank plus a one-byte metadata entry per
// page. Allocation searches free lists from the requested rank upward and
// splits the smallest sufficient block down. Freeing merges the block with
// its buddy transitively while the buddy is free at the same rank.
//
// Allocation and freeing run in O(MaxRank); initialization is O(pool size).
//
// A Pool is not thread-safe: callers sharing one pool across goroutines must
// serialize access externally.

package pagepool

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Pool limits
const (
	PageSize = 4096  // bytes per page
	MaxRank  = 16    // largest block is 2^(MaxRank-1) pages
	MaxPages = 65536 // metadata table capacity
)

// Per-page metadata encoding: bit 7 marks the first page of an allocated
// block; the low 7 bits hold the rank of the block containing the page.
const (
	allocatedBit = 0x80
	rankMask     = 0x7f
)

// Pool represents one buddy allocator instance over [0, TotalPages()) pages.
// Block addresses are byte offsets from the pool base (page index * PageSize).
type Pool struct {
	id         string
	totalPages int
	meta       []byte                // one entry per page
	free       [MaxRank + 1]freeList // free[r] holds free blocks of rank r
	nodes      []listNode            // free-list linkage, indexed by page
}

// New creates a pool over the given number of pages.
func New(pageCount int) (*Pool, error) {
	p := &Pool{id: uuid.New().String()[:8]}
	if err := p.Init(pageCount); err != nil {
		return nil, err
	}
	return p, nil
}

// Init resets the pool to cover pageCount pages, discarding all prior state.
// The page range is partitioned into the minimum number of maximal aligned
// power-of-two blocks (pageCount need not be a power of two).
func (p *Pool) Init(pageCount int) error {
	if pageCount <= 0 || pageCount > MaxPages {
		return fmt.Errorf("%w: page count must be between (1, %v); got %v", ErrCapacity, MaxPages, pageCount)
	}

	p.totalPages = pageCount
	p.meta = make([]byte, pageCount)
	p.nodes = make([]listNode, pageCount)
	for r := range p.free {
		p.free[r].head = nilPage
	}

	cur := 0
	for cur < pageCount {
		r := maxFitRank(cur, pageCount)
		if r == 0 {
			// can't happen: a rank-1 block is always aligned and fits
			cur++
			continue
		}
		p.insertFree(cur, r)
		cur += rankPages(r)
	}

	logrus.Debugf("pool %s: initialized with %d pages", p.id, pageCount)
	return nil
}

// TotalPages returns the number of pages the pool manages.
func (p *Pool) TotalPages() int {
	return p.totalPages
}

// ID returns the pool's identifier (used in log messages).
func (p *Pool) ID() string {
	return p.id
}

// pageIndex resolves a byte offset to a page index, validating bounds and
// page alignment.
func (p *Pool) pageIndex(off int64) (int, error) {
	if off < 0 || off >= int64(p.totalPages)*PageSize {
		return 0, fmt.Errorf("%w: offset %#x is outside the pool", ErrBadAddress, off)
	}
	if off%PageSize != 0 {
		return 0, fmt.Errorf("%w: offset %#x is not page-aligned", ErrBadAddress, off)
	}
	return int(off / PageSize), nil
}
