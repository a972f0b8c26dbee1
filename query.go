package pagepool

import "fmt"

// Rank returns the rank of the block containing the page at the given byte
// offset, whether the block is allocated or free. Since block ranks are
// stamped on every page, the query is O(1) at any page-aligned in-pool
// offset. Fails with ErrBadAddress on a misaligned or out-of-pool offset.
func (p *Pool) Rank(off int64) (int, error) {
	idx, err := p.pageIndex(off)
	if err != nil {
		return 0, err
	}
	rank := int(p.meta[idx] & rankMask)
	if !validRank(rank) {
		return 0, fmt.Errorf("%w: corrupt rank %v at page %v", ErrBadAddress, rank, idx)
	}
	return rank, nil
}

// FreeBlockCount returns the number of currently free blocks of the given
// rank by walking that rank's free list. Fails with ErrBadRank if rank is
// outside [1, MaxRank].
func (p *Pool) FreeBlockCount(rank int) (int, error) {
	if !validRank(rank) {
		return 0, fmt.Errorf("%w: rank must be between (1, %v); got %v", ErrBadRank, MaxRank, rank)
	}
	count := 0
	for idx := p.free[rank].head; idx != nilPage; idx = p.nodes[idx].next {
		count++
	}
	return count, nil
}
