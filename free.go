package pagepool

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ReturnPages releases a block previously returned by AllocPages, merging it
// with its buddy transitively while the buddy is free at the same rank.
//
// The offset must be the block's own starting address; a misaligned,
// out-of-pool, interior-page or already-freed offset fails with
// ErrBadAddress and leaves the pool unchanged.
func (p *Pool) ReturnPages(off int64) error {
	idx, err := p.pageIndex(off)
	if err != nil {
		return err
	}

	m := p.meta[idx]
	if m&allocatedBit == 0 {
		return fmt.Errorf("%w: page %v is not the start of an allocated block", ErrBadAddress, idx)
	}
	rank := int(m & rankMask)
	if !validRank(rank) {
		return fmt.Errorf("%w: corrupt rank %v at page %v", ErrBadAddress, rank, idx)
	}

	start := idx
	for rank < MaxRank {
		buddy := idx ^ rankPages(rank)
		if buddy+rankPages(rank) > p.totalPages {
			// buddy lies past the end of the pool
			break
		}

		// the buddy merges only if its first page reads as a free block of
		// exactly this rank; buddies at rank r are themselves rank-aligned,
		// so the entry at buddy is authoritative
		bm := p.meta[buddy]
		if bm&allocatedBit != 0 || int(bm&rankMask) != rank {
			break
		}

		p.removeFree(buddy, rank)
		if buddy < idx {
			idx = buddy
		}
		rank++
	}

	p.insertFree(idx, rank)

	logrus.Debugf("pool %s: free page %v -> merged to rank %v at page %v", p.id, start, rank, idx)
	return nil
}
