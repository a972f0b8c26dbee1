package pagepool

import (
	"fmt"

	mapset "github.com/deckarep/golang-set"
)

// Verify checks the pool's structural invariants and returns an error
// describing the first violation found:
//
//   - every free-list entry is a rank-aligned, in-bounds block whose pages
//     are all stamped free at the list's rank
//   - every allocated block starts at a rank-aligned page and its pages are
//     all stamped with the allocation rank
//   - free and allocated blocks together cover [0, TotalPages()) exactly,
//     with no overlap and no gap
//   - no two free blocks of the same rank are buddies of each other
//
// Verify is O(pool size); it is meant for tests and debugging, not for the
// allocation fast path.
func (p *Pool) Verify() error {
	covered := mapset.NewSet()
	freeRank := make(map[int]int) // free block start -> rank

	for r := 1; r <= MaxRank; r++ {
		for idx := p.free[r].head; idx != nilPage; idx = p.nodes[idx].next {
			n := rankPages(r)
			if idx%n != 0 {
				return fmt.Errorf("free rank-%v block at page %v is misaligned", r, idx)
			}
			if idx+n > p.totalPages {
				return fmt.Errorf("free rank-%v block at page %v exceeds the pool", r, idx)
			}
			if _, dup := freeRank[idx]; dup {
				return fmt.Errorf("page %v starts two free blocks", idx)
			}
			freeRank[idx] = r
			for i := idx; i < idx+n; i++ {
				if p.meta[i] != byte(r) {
					return fmt.Errorf("page %v of free rank-%v block at %v has metadata %#x", i, r, idx, p.meta[i])
				}
				if !covered.Add(i) {
					return fmt.Errorf("page %v is covered by two blocks", i)
				}
			}
		}
	}

	for idx := 0; idx < p.totalPages; idx++ {
		m := p.meta[idx]
		if m&allocatedBit == 0 {
			continue
		}
		r := int(m & rankMask)
		if !validRank(r) {
			return fmt.Errorf("allocated block at page %v has corrupt rank %v", idx, r)
		}
		n := rankPages(r)
		if idx%n != 0 {
			return fmt.Errorf("allocated rank-%v block at page %v is misaligned", r, idx)
		}
		if idx+n > p.totalPages {
			return fmt.Errorf("allocated rank-%v block at page %v exceeds the pool", r, idx)
		}
		for i := idx; i < idx+n; i++ {
			if i > idx && p.meta[i] != byte(r) {
				return fmt.Errorf("page %v of allocated rank-%v block at %v has metadata %#x", i, r, idx, p.meta[i])
			}
			if !covered.Add(i) {
				return fmt.Errorf("page %v is covered by two blocks", i)
			}
		}
	}

	if covered.Cardinality() != p.totalPages {
		return fmt.Errorf("blocks cover %v of %v pages", covered.Cardinality(), p.totalPages)
	}

	// a free block whose buddy is also free at the same rank should have
	// been merged
	for idx, r := range freeRank {
		if r == MaxRank {
			continue
		}
		buddy := idx ^ rankPages(r)
		if buddy+rankPages(r) > p.totalPages {
			continue
		}
		if br, ok := freeRank[buddy]; ok && br == r {
			return fmt.Errorf("free rank-%v blocks at pages %v and %v are unmerged buddies", r, idx, buddy)
		}
	}

	return nil
}
