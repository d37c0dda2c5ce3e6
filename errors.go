package memarena

import "errors"

// Error values returned by Arena operations. Like spec.md's own taxonomy,
// this set is flat and out-of-band: every failure is reported through one
// of these sentinels (or a nil slice with no error, for Malloc(0) and the
// no-op Free(nil) case) rather than a richer wrapped-error chain.
var (
	// ErrAlreadyInitialized is returned by a second call to Init/AssignMem
	// on the same Arena.
	ErrAlreadyInitialized = errors.New("memarena: already initialized")

	// ErrRegionsOverlap is returned when the regions passed to Init are
	// not in strictly non-decreasing, non-overlapping address order.
	ErrRegionsOverlap = errors.New("memarena: regions overlap or are out of address order")

	// ErrNotInitialized is returned by Malloc, Calloc and Realloc before
	// Init has succeeded.
	ErrNotInitialized = errors.New("memarena: arena not initialized")

	// ErrInvalidSize is returned for a malloc-shaped request whose size
	// already carries the allocated-bit.
	ErrInvalidSize = errors.New("memarena: invalid allocation size")

	// ErrSizeTooLarge is returned when size plus header overhead would
	// itself carry the allocated-bit, i.e. the request exceeds the
	// largest representable block extent.
	ErrSizeTooLarge = errors.New("memarena: allocation size exceeds addressable limit")

	// ErrOutOfMemory is returned when the first-fit walk reaches the tail
	// of the free list without finding a block large enough.
	ErrOutOfMemory = errors.New("memarena: no free block large enough")

	// ErrSizeOverflow is returned by Calloc when n*sz would overflow a
	// uintptr.
	ErrSizeOverflow = errors.New("memarena: calloc item count times item size overflows")
)
