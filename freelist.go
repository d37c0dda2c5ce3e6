package memarena

// insertFree places free block nb into the address-sorted free list,
// coalescing it with up to two adjacent neighbors. nb.size must already be
// set; insertFree sets nb.next (and may fold nb entirely into its left
// neighbor, leaving nb's own header dead).
//
// Three independent adjacency tests — left-merge, right-merge, and the
// "no merge at all" fallthrough — compose, because after a left-merge the
// merged block (now aliased by nb) is re-tested against the right
// neighbor. A right-merge never absorbs the list's current tail sentinel:
// doing so would delete the one node whose next == nil that terminates the
// list (invariant 3), so when the right neighbor is the tail sentinel, nb
// simply adopts it as its own next instead of absorbing it.
func (a *Arena) insertFree(nb *blockHeader) {
	curr := &a.start
	for curr.next != nil && addr(curr.next) < addr(nb) {
		curr = curr.next
	}

	if addr(curr)+curr.size == addr(nb) {
		curr.size += nb.size
		nb = curr
	}

	if addr(nb)+nb.size == addr(curr.next) {
		if curr.next == a.end {
			nb.next = a.end
		} else {
			nb.size += curr.next.size
			nb.next = curr.next.next
		}
	} else {
		nb.next = curr.next
	}

	if curr != nb {
		curr.next = nb
	}
}
