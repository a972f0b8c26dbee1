//
// pagepool interfaces
//

package intf

// The PageAllocator interface defines the interface exposed by the entity
// that performs page block allocations
type PageAllocator interface {

	// AllocPages allocates a block of 2^(rank-1) pages and returns its byte
	// offset from the pool base; possible errors are nil, "invalid rank", or
	// "out of space"
	AllocPages(rank int) (int64, error)

	// ReturnPages releases a previously allocated block; the given offset
	// must be obtained from a prior successful call to AllocPages(); possible
	// errors are nil or "invalid block address"
	ReturnPages(off int64) error

	// Rank returns the rank of the block containing the page at the given
	// offset; possible errors are nil or "invalid block address"
	Rank(off int64) (int, error)

	// FreeBlockCount returns the number of free blocks of the given rank;
	// possible errors are nil or "invalid rank"
	FreeBlockCount(rank int) (int, error)
}
