package pagepool

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// AllocPages allocates a block of exactly 2^(rank-1) contiguous, rank-aligned
// pages and returns its byte offset from the pool base. The block is owned
// exclusively by the caller until passed back to ReturnPages.
//
// Possible errors are ErrBadRank (rank outside [1, MaxRank]) and ErrNoSpace
// (no free block of sufficient rank exists).
func (p *Pool) AllocPages(rank int) (int64, error) {
	if !validRank(rank) {
		return 0, fmt.Errorf("%w: rank must be between (1, %v); got %v", ErrBadRank, MaxRank, rank)
	}

	// search free lists from the requested rank upward; the first non-empty
	// list holds the smallest sufficient block
	found := 0
	for r := rank; r <= MaxRank; r++ {
		if p.free[r].head != nilPage {
			found = r
			break
		}
	}
	if found == 0 {
		return 0, fmt.Errorf("%w: no free block of rank >= %v", ErrNoSpace, rank)
	}

	idx := p.popFree(found)

	// split down to the requested rank, pushing each upper half onto the
	// next smaller free list; the lower half stays the candidate
	for found > rank {
		found--
		p.insertFree(idx+rankPages(found), found)
	}

	// mark every page of the block allocated at this rank; the allocated bit
	// goes only on the first page, so freeing an interior page is rejected
	for i := 0; i < rankPages(rank); i++ {
		p.meta[idx+i] = byte(rank)
	}
	p.meta[idx] |= allocatedBit

	logrus.Debugf("pool %s: alloc rank %v -> page %v", p.id, rank, idx)
	return int64(idx) * PageSize, nil
}
