//
// Copyright: (C) 2025 Pagebuddy Labs.  All rights reserved.
//

package pagepool

// nilPage is the free-list end marker.
const nilPage = -1

// listNode is the free-list linkage for the block starting at a given page.
// Nodes live in Pool.nodes, indexed by page, so a block can be unlinked in
// O(1) given only its starting page index.
type listNode struct {
	prev, next int
}

// freeList is the head of one rank's list of free blocks.
type freeList struct {
	head int
}

// insertFree links the block starting at page idx into rank's free list and
// stamps every page of the block as free at that rank.
func (p *Pool) insertFree(idx, rank int) {
	for i := 0; i < rankPages(rank); i++ {
		p.meta[idx+i] = byte(rank)
	}

	l := &p.free[rank]
	p.nodes[idx] = listNode{prev: nilPage, next: l.head}
	if l.head != nilPage {
		p.nodes[l.head].prev = idx
	}
	l.head = idx
}

// popFree unlinks and returns the first block of rank's free list. The list
// must be non-empty.
func (p *Pool) popFree(rank int) int {
	l := &p.free[rank]
	idx := l.head
	l.head = p.nodes[idx].next
	if l.head != nilPage {
		p.nodes[l.head].prev = nilPage
	}
	return idx
}

// removeFree unlinks the block starting at page idx from rank's free list.
func (p *Pool) removeFree(idx, rank int) {
	n := p.nodes[idx]
	if n.prev != nilPage {
		p.nodes[n.prev].next = n.next
	} else {
		p.free[rank].head = n.next
	}
	if n.next != nilPage {
		p.nodes[n.next].prev = n.prev
	}
}
