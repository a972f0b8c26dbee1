package pagepool

import "errors"

var (
	// ErrBadRank indicates a rank outside [1, MaxRank].
	ErrBadRank = errors.New("pagepool: invalid rank")

	// ErrBadAddress indicates a misaligned or out-of-pool offset, or an
	// offset that is not the start of an allocated block.
	ErrBadAddress = errors.New("pagepool: invalid block address")

	// ErrNoSpace indicates that no free block of sufficient rank exists.
	ErrNoSpace = errors.New("pagepool: out of space")

	// ErrCapacity indicates a page count exceeding the metadata table capacity.
	ErrCapacity = errors.New("pagepool: page count exceeds pool capacity")
)
