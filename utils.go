//
// Copyright: (C) 2025 Pagebuddy Labs.  All rights reserved.
//

package pagepool

// rankPages returns the number of pages in a block of the given rank.
func rankPages(rank int) int {
	return 1 << (rank - 1)
}

// maxFitRank returns the largest rank whose block is aligned at page idx and
// fits within total pages, or 0 if none fits.
func maxFitRank(idx, total int) int {
	for r := MaxRank; r >= 1; r-- {
		n := rankPages(r)
		if idx%n == 0 && idx+n <= total {
			return r
		}
	}
	return 0
}

// validRank reports whether rank is within [1, MaxRank].
func validRank(rank int) bool {
	return rank >= 1 && rank <= MaxRank
}
