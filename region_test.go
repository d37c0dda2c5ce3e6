package memarena

import "testing"

func TestInitRejectsSecondCall(t *testing.T) {
	var a Arena
	buf := make([]byte, 1024)
	if n, err := a.Init([]Region{RegionOf(buf)}); err != nil || n != 1 {
		t.Fatalf("first Init: n=%d err=%v", n, err)
	}
	if n, err := a.Init([]Region{RegionOf(buf)}); err != ErrAlreadyInitialized || n != 0 {
		t.Fatalf("second Init: n=%d err=%v, want 0, ErrAlreadyInitialized", n, err)
	}
}

func TestInitRejectsOverlappingRegions(t *testing.T) {
	buf := make([]byte, 2048)
	r1 := Region{Base: RegionOf(buf).Base, Size: 1024}
	r2 := Region{Base: RegionOf(buf[512:]).Base, Size: 1024} // overlaps r1

	var a Arena
	n, err := a.Init([]Region{r1, r2})
	if err != ErrRegionsOverlap || n != 0 {
		t.Fatalf("Init(overlapping): n=%d err=%v, want 0, ErrRegionsOverlap", n, err)
	}
	if a.end != nil {
		t.Fatalf("Arena must remain uninitialized after a rejected Init")
	}
}

func TestInitDropsUndersizedRegions(t *testing.T) {
	tiny := make([]byte, headerSize) // no room for payload past the header
	big := make([]byte, 1024)

	var a Arena
	n, err := a.Init([]Region{
		RegionOf(tiny),
		RegionOf(big),
	})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if n != 1 {
		t.Fatalf("accepted regions = %d, want 1 (tiny region should be dropped)", n)
	}
}

// TestInitFreshAccounting mirrors spec scenario 1: after a fresh init of one
// region, available bytes equal the region's size minus one header's worth
// (the trailing tail sentinel), and the whole remainder is one free block.
func TestInitFreshAccounting(t *testing.T) {
	var a Arena
	buf := make([]byte, 1024)
	region := RegionOf(buf)
	n, err := a.Init([]Region{region})
	if err != nil || n != 1 {
		t.Fatalf("Init: n=%d err=%v", n, err)
	}

	// Mirror acceptRegion's own normalization to predict the expected
	// accounting regardless of how the runtime happened to align buf.
	start := uintptr(region.Base)
	waste := alignUp(start, Alignment) - start
	size := region.Size - waste
	size &^= Alignment - 1
	want := size - headerSize

	if a.available != want {
		t.Fatalf("available = %d, want %d", a.available, want)
	}
	if a.start.next == nil || a.start.next.size != want {
		t.Fatalf("expected a single free block of size %d at the region start", want)
	}
	if a.start.next.next != a.end {
		t.Fatalf("the lone free block must point directly at the tail sentinel")
	}
}

// TestInitBridgesTwoRegions mirrors spec scenario 5: two disjoint regions
// are stitched into one free list, but a free from one region never
// coalesces with free space in the other.
func TestInitBridgesTwoRegions(t *testing.T) {
	// A single backing buffer sliced in two, with a gap left unused in
	// between, guarantees the regions land in increasing address order
	// the way two independently allocated slices never could.
	buf := make([]byte, 2048)
	low := RegionOf(buf[:512])
	high := RegionOf(buf[1024:1536])

	var a Arena
	n, err := a.Init([]Region{low, high})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if n != 2 || a.regions != 2 {
		t.Fatalf("regions accepted = %d, want 2", n)
	}

	// The list runs first block -> first region's tail sentinel -> second
	// region's first block -> final tail sentinel.
	first := a.start.next
	if first == nil || first.next == nil || first.next.next == nil {
		t.Fatalf("expected two bridged free blocks")
	}
	second := first.next.next
	if second.next != a.end {
		t.Fatalf("second region's first block must link directly to the final tail sentinel")
	}

	// The bridging pointer crosses a gap a coalesce must never fold over:
	// first's end (its own tail sentinel) sits strictly below second's
	// start, by more than first's own header+payload extent.
	if addr(first)+first.size == addr(second) {
		t.Fatalf("regions separated by a gap must not appear contiguous")
	}
}
