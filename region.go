package memarena

import (
	"fmt"
	"os"
	"unsafe"
)

// Region describes one caller-supplied, contiguous byte range the Arena may
// draw allocations from. Regions passed to Init must be listed in
// increasing address order and must not overlap.
type Region struct {
	Base unsafe.Pointer
	Size uintptr
}

// RegionOf builds a Region over an existing byte slice — typically a
// make([]byte, n) the caller dedicates to the arena, or a slice over memory
// obtained elsewhere (mmap, a reserved static buffer, shared memory). The
// slice must outlive the Arena; RegionOf does not retain b itself, only the
// address and length it describes.
func RegionOf(b []byte) Region {
	if len(b) == 0 {
		return Region{}
	}
	return Region{Base: unsafe.Pointer(&b[0]), Size: uintptr(len(b))}
}

// Init accepts the given regions and stitches them into a single,
// address-sorted free list. It may be called at most once per Arena; a
// second call returns ErrAlreadyInitialized. Regions must be given in
// non-decreasing, non-overlapping address order or ErrRegionsOverlap is
// returned and nothing is accepted.
//
// Regions too small to hold one header plus one alignment unit are
// silently dropped. Init returns the number of regions actually
// incorporated, which may be less than len(regions).
func (a *Arena) Init(regions []Region) (n int, err error) {
	if trace {
		defer func() {
			fmt.Fprintf(os.Stderr, "Init(%d regions) accepted=%d err=%v\n", len(regions), n, err)
		}()
	}
	if a.end != nil {
		return 0, ErrAlreadyInitialized
	}

	var prevStart, prevSize uintptr
	for i, r := range regions {
		start := uintptr(r.Base)
		if i > 0 && start < prevStart+prevSize {
			return 0, ErrRegionsOverlap
		}
		prevStart, prevSize = start, r.Size
	}

	for _, r := range regions {
		a.acceptRegion(r)
	}
	return a.regions, nil
}

// AssignMem is an alias for Init, kept for naming parity with the C
// implementation this allocator's algorithm was distilled from (which
// exposes both mem_init and mem_assignmem as the same operation).
func (a *Arena) AssignMem(regions []Region) (int, error) { return a.Init(regions) }

// acceptRegion validates and normalizes a single region, then either drops
// it (too small, even after alignment waste is accounted for) or bridges it
// onto the tail of the free list built so far.
func (a *Arena) acceptRegion(r Region) {
	size := r.Size
	if size < headerSize+Alignment {
		return
	}

	base := r.Base
	start := uintptr(base)
	if waste := alignUp(start, Alignment) - start; waste != 0 {
		if waste > size {
			return
		}
		base = unsafe.Add(base, waste)
		size -= waste
	}

	size &^= Alignment - 1
	if size < headerSize+Alignment {
		return
	}

	prevTail := a.end
	end := (*blockHeader)(unsafe.Add(base, size-headerSize))
	end.next = nil
	end.size = 0

	first := (*blockHeader)(base)
	first.next = end
	first.size = size - headerSize

	if prevTail == nil {
		a.start.next = first
		a.start.size = 0
	} else {
		prevTail.next = first
	}

	a.end = end
	a.available += first.size
	a.regions++
}
