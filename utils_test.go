//
// Copyright: (C) 2025 Pagebuddy Labs.  All rights reserved.
//

package pagepool

import "testing"

func TestRankPages(t *testing.T) {

	var tests = []struct {
		rank int
		want int
	}{
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 8},
		{16, 32768},
	}

	for _, test := range tests {
		if got := rankPages(test.rank); got != test.want {
			t.Errorf("rankPages(%v): got %v, want %v", test.rank, got, test.want)
		}
	}
}

func TestMaxFitRank(t *testing.T) {

	var tests = []struct {
		idx   int
		total int
		want  int
	}{
		// idx, total, rank
		{0, 1, 1},
		{0, 2, 2},
		{0, 8, 4},
		{0, 10, 4},    // rank 5 needs 16 pages, doesn't fit
		{8, 10, 2},    // aligned for any rank, but only 2 pages remain
		{1, 10, 1},    // odd index only aligns for rank 1
		{4, 10, 3},    // aligned to 4, 6 pages remain, block of 4 fits
		{0, 65536, 16},
		{32768, 65536, 16},
	}

	for _, test := range tests {
		if got := maxFitRank(test.idx, test.total); got != test.want {
			t.Errorf("maxFitRank(%v, %v): got %v, want %v", test.idx, test.total, got, test.want)
		}
	}
}

func TestValidRank(t *testing.T) {

	for _, rank := range []int{1, 8, MaxRank} {
		if !validRank(rank) {
			t.Errorf("validRank(%v): got false, want true", rank)
		}
	}
	for _, rank := range []int{0, -1, MaxRank + 1} {
		if validRank(rank) {
			t.Errorf("validRank(%v): got true, want false", rank)
		}
	}
}
