package memarena

import (
	"fmt"
	"os"
	"unsafe"
)

// Free returns b's backing block to the free list, coalescing it with
// adjacent free neighbors. A nil or empty b is a no-op.
//
// Free validates the header in front of b before touching anything: it
// must carry the allocated-bit and have a nil next, exactly the shape
// Malloc leaves behind and nothing else does. A double-free or a stray
// slice that doesn't point at a block Malloc handed out fails that check
// and is silently ignored, as spec'd — this is a heuristic, not a
// guarantee, since any byte pattern that happens to match is accepted.
func (a *Arena) Free(b []byte) (err error) {
	if trace {
		defer func() {
			var p unsafe.Pointer
			if len(b) != 0 {
				p = unsafe.Pointer(&b[0])
			}
			fmt.Fprintf(os.Stderr, "Free(%p) %v\n", p, err)
		}()
	}
	if len(b) == 0 {
		return nil
	}

	block := headerOf(unsafe.Pointer(&b[0]))
	if block.size&allocBit == 0 || block.next != nil {
		return nil
	}

	block.size &^= allocBit
	a.available += block.size
	a.insertFree(block)
	return nil
}

// Realloc resizes an existing allocation. It never grows or shrinks a
// block in place, even when adjacent free space would allow it: a new
// block is always allocated, the overlapping prefix is copied, and the old
// block is freed.
//
//   - Realloc(nil, 0) returns (nil, nil).
//   - Realloc(nil, size) behaves like Malloc(size).
//   - Realloc(b, 0) behaves like Free(b) and returns (nil, nil).
//   - Realloc(b, size) allocates size bytes, copies min(len(b), size)
//     bytes from the old block, frees the old block, and returns the new
//     one. If the new allocation fails, the old block is left untouched
//     and Realloc returns (nil, err).
func (a *Arena) Realloc(b []byte, size uintptr) (r []byte, err error) {
	if trace {
		defer func() {
			var p, q unsafe.Pointer
			if len(b) != 0 {
				p = unsafe.Pointer(&b[0])
			}
			if len(r) != 0 {
				q = unsafe.Pointer(&r[0])
			}
			fmt.Fprintf(os.Stderr, "Realloc(%p, %#x) %p, %v\n", p, size, q, err)
		}()
	}
	switch {
	case b == nil && size == 0:
		return nil, nil
	case b == nil:
		return a.Malloc(size)
	case size == 0:
		return nil, a.Free(b)
	}

	next, err := a.Malloc(size)
	if err != nil {
		return nil, err
	}

	copy(next, b)
	if err := a.Free(b); err != nil {
		return nil, err
	}
	return next, nil
}
