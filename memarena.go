// Copyright 2026 The Memarena Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memarena implements a first-fit, coalescing allocator over one or
// more caller-supplied, fixed, non-overlapping memory regions.
//
// It is meant for freestanding or embedded use: there is no OS heap behind
// it, and the caller is responsible for choosing the backing memory (a
// plain make([]byte, n), a slice over an mmap'd or shared region, a
// reserved static array — anything addressable). Once Init has accepted a
// region, the Arena owns every byte of it until the process ends; the
// caller owns only the payload bytes of outstanding allocations.
//
// The free list is a single, address-sorted singly-linked list threaded
// through the managed memory itself: each free block's header doubles as
// its own list node. Init may stitch together several disjoint regions into
// one logical list; a zero-size sentinel header written at the tail of each
// region prevents coalescing across a region boundary even when two
// regions happen to be adjacent in the free list.
//
// An Arena's zero value is ready for use.
//
// Concurrency: none is provided. Callers must externally serialize every
// call to Init, Malloc, Calloc, Realloc and Free on a given Arena; even
// read-only inspection can race with an in-progress split or merge.
package memarena

import (
	"math/bits"
	"unsafe"
)

// Alignment is the single build-time alignment constant every header
// address and every stored block size is a multiple of. Unlike the
// original C implementation this module was distilled from — which treats
// alignment as an arbitrary power-of-two build knob defaulting to 4 — a Go
// header embeds a *blockHeader pointer, and a pointer field must sit at its
// own natural alignment or the runtime's pointer loads are undefined on
// strict-alignment architectures. Alignment is therefore pinned to the
// natural alignment of blockHeader itself: the strongest the platform
// requires, computed once, never overridden per call.
const Alignment = unsafe.Alignof(blockHeader{})

// allocBit is the highest bit of a uintptr-width size field: set on an
// allocated block's size, clear on a free block's. It bounds the largest
// single allocation to 2^(word_bits-1) - 1 bytes.
const allocBit = uintptr(1) << (bits.UintSize - 1)

// headerSize is the aligned size of a blockHeader: the offset H at which a
// block's payload begins, relative to its header's address.
var headerSize = alignUp(unsafe.Sizeof(blockHeader{}), Alignment)

// blockHeader prefixes every block — free or allocated — managed by an
// Arena. For a free block, next links to the next free block in address
// order and size holds the block's total extent (header + payload). For an
// allocated block, next is always nil and size carries the same total
// extent with allocBit set.
type blockHeader struct {
	next *blockHeader
	size uintptr
}

// Arena allocates and frees memory drawn from regions supplied to Init. An
// Arena may only be initialized once; it does not support re-initialization
// or adding further regions afterward.
type Arena struct {
	start     blockHeader // sentinel: lives outside any region, heads the free list
	end       *blockHeader // tail sentinel of the last accepted region; nil until Init succeeds
	available uintptr      // sum of free blocks' total extents currently on the list
	regions   int          // number of regions accepted by Init
}

// alignUp rounds n up to the next multiple of m. m must be a power of two.
func alignUp(n, m uintptr) uintptr { return (n + m - 1) &^ (m - 1) }

// addr returns h's address as a uintptr for ordering comparisons. It is
// safe to call with a nil h (yields 0, which never equals a real block
// address).
func addr(h *blockHeader) uintptr { return uintptr(unsafe.Pointer(h)) }

// payloadOf returns the address immediately following h's header, where
// h's payload begins.
func payloadOf(h *blockHeader) unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(h), headerSize)
}

// headerOf recovers the block header in front of a payload pointer
// previously handed out by Malloc, Calloc or Realloc.
func headerOf(payload unsafe.Pointer) *blockHeader {
	return (*blockHeader)(unsafe.Add(payload, -int(headerSize)))
}

// sliceFromBlock builds the []byte view of block's payload that Malloc
// hands back to the caller: len is the originally requested size, cap
// extends to the block's full usable capacity (which may be larger, since
// a source free block is only split when the leftover exceeds the sliver
// threshold). Callers may reslice up to cap, but anything reached by
// appending past the original backing array must not be passed to Free or
// Realloc.
func sliceFromBlock(block *blockHeader, size uintptr) []byte {
	usable := (block.size &^ allocBit) - headerSize
	full := unsafe.Slice((*byte)(payloadOf(block)), usable)
	return full[:size]
}

// UsableSize reports the capacity of the block backing b, which must be a
// slice previously returned by Malloc, Calloc or Realloc on some Arena. It
// can be larger than len(b) whenever the source free block was not split
// down to the exact requested size.
func UsableSize(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	block := headerOf(unsafe.Pointer(&b[0]))
	return (block.size &^ allocBit) - headerSize
}
