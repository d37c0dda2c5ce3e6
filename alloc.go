package memarena

import (
	"fmt"
	"os"
	"unsafe"
)

// Malloc allocates size bytes from a first-fit walk of the free list and
// returns a payload slice of exactly that length (its cap may run larger;
// see UsableSize). It returns ErrNotInitialized if Init has not yet
// succeeded, ErrInvalidSize for a size that carries the allocated-bit,
// ErrSizeTooLarge when size plus header overhead would carry it, and
// ErrOutOfMemory if no free block is large enough.
//
// Malloc(0) returns (nil, nil): zero-size requests are not an error, they
// simply allocate nothing.
func (a *Arena) Malloc(size uintptr) (r []byte, err error) {
	if trace {
		defer func() {
			var p unsafe.Pointer
			if len(r) != 0 {
				p = unsafe.Pointer(&r[0])
			}
			fmt.Fprintf(os.Stderr, "Malloc(%#x) %p, %v\n", size, p, err)
		}()
	}
	if a.end == nil {
		return nil, ErrNotInitialized
	}
	if size == 0 {
		return nil, nil
	}
	if size&allocBit != 0 {
		return nil, ErrInvalidSize
	}

	need := alignUp(size, Alignment) + headerSize
	if need&allocBit != 0 {
		return nil, ErrSizeTooLarge
	}

	prev := &a.start
	curr := prev.next
	for curr.size < need {
		if curr.next == nil || curr == a.end {
			return nil, ErrOutOfMemory
		}
		prev = curr
		curr = curr.next
	}

	prev.next = curr.next

	// Split only if the leftover exceeds two headers' worth: any smaller
	// and the remainder would offer at most one header's worth of payload,
	// so it is left folded into the allocation (reachable through the
	// returned slice's cap) rather than becoming a tiny free sliver.
	if curr.size-need > 2*headerSize {
		next := (*blockHeader)(unsafe.Add(unsafe.Pointer(curr), need))
		next.size = curr.size - need
		curr.size = need
		a.insertFree(next)
	}

	// curr.size at this point is exactly the extent leaving the free
	// list: need, if a remainder was split off and reinserted, or the
	// whole original block, if a sub-threshold leftover was folded into
	// the allocation instead. Either way it is the right amount to
	// subtract for available to keep tracking the sum of free extents.
	// It must also be the value stamped back with allocBit set: tagging
	// it with need unconditionally would truncate a folded-in leftover
	// out of the block's recorded extent, stranding it past Free's
	// eventual block.size&^allocBit and never returning it to available.
	consumed := curr.size
	curr.size |= allocBit
	curr.next = nil
	a.available -= consumed

	return sliceFromBlock(curr, size), nil
}

// Calloc allocates space for n items of sz bytes each, zero-fills it, and
// returns the resulting slice. Unlike Malloc, Calloc rejects a request
// whose n*sz product would overflow rather than silently wrapping and
// under-allocating — a deliberate tightening of the reference behavior
// flagged as acceptable by spec §9.
func (a *Arena) Calloc(n, sz uintptr) (r []byte, err error) {
	if trace {
		defer func() {
			var p unsafe.Pointer
			if len(r) != 0 {
				p = unsafe.Pointer(&r[0])
			}
			fmt.Fprintf(os.Stderr, "Calloc(%#x, %#x) %p, %v\n", n, sz, p, err)
		}()
	}
	total := n * sz
	if sz != 0 && total/sz != n {
		return nil, ErrSizeOverflow
	}

	b, err := a.Malloc(total)
	if err != nil {
		return nil, err
	}
	for i := range b {
		b[i] = 0
	}
	return b, nil
}
