//
// Copyright: (C) 2025 Pagebuddy Labs.  All rights reserved.
//

package pagepool

import (
	"errors"
	"testing"
)

func TestRankAfterAlloc(t *testing.T) {

	p, err := New(16)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	for rank := 1; rank <= 4; rank++ {
		off, err := p.AllocPages(rank)
		if err != nil {
			t.Fatalf("AllocPages(%v) failed: %v", rank, err)
		}

		// the rank is stamped on every page of the block, so the query
		// answers at interior pages too
		for i := 0; i < rankPages(rank); i++ {
			got, err := p.Rank(off + int64(i)*PageSize)
			if err != nil {
				t.Fatalf("Rank(page %v of rank-%v block) failed: %v", i, rank, err)
			}
			if got != rank {
				t.Errorf("Rank(page %v of rank-%v block): got %v", i, rank, got)
			}
		}

		if err := p.ReturnPages(off); err != nil {
			t.Fatalf("ReturnPages() failed: %v", err)
		}
	}
}

func TestRankOnFreeBlock(t *testing.T) {

	// a fresh 10-page pool holds free blocks of rank 4 (page 0) and rank 2
	// (page 8); the query reports them without any allocation
	p, err := New(10)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	var tests = []struct {
		page int
		want int
	}{
		{0, 4},
		{5, 4},
		{7, 4},
		{8, 2},
		{9, 2},
	}

	for _, test := range tests {
		got, err := p.Rank(int64(test.page) * PageSize)
		if err != nil {
			t.Fatalf("Rank(page %v) failed: %v", test.page, err)
		}
		if got != test.want {
			t.Errorf("Rank(page %v): got %v, want %v", test.page, got, test.want)
		}
	}
}

func TestRankInvalid(t *testing.T) {

	p, err := New(8)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	var tests = []int64{-PageSize, 8 * PageSize, 123, PageSize + 1}

	for _, off := range tests {
		if _, err := p.Rank(off); !errors.Is(err, ErrBadAddress) {
			t.Errorf("Rank(%v): got err = %v; want %v", off, err, ErrBadAddress)
		}
	}
}

func TestFreeBlockCountBadRank(t *testing.T) {

	p, err := New(8)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	for _, rank := range []int{0, -3, MaxRank + 1} {
		if _, err := p.FreeBlockCount(rank); !errors.Is(err, ErrBadRank) {
			t.Errorf("FreeBlockCount(%v): got err = %v; want %v", rank, err, ErrBadRank)
		}
	}
}
