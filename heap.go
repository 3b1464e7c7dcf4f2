// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

// Package radixheap provides a monotone priority queue over uint32 keys.
//
// Elements are partitioned into 33 buckets by the position of the highest
// bit in which their key differs from the key of the last popped element.
// Push and Pop are O(1) amortized, independent of key magnitude, as long as
// keys are never pushed below the last popped key. This is the classic
// queue for Dijkstra-style workloads with bounded non-negative weights.
//
// The heap is not safe for concurrent use.
package radixheap

import (
	"errors"
	"math/bits"

	"github.com/negrel/assert"
)

// bucketCount is bits(uint32)+1. One bucket per possible position of the
// highest differing bit, plus bucket 0 for keys equal to the lower bound.
const bucketCount = 33

var (
	// ErrKeyTooSmall is returned by Push when the key is below the key of
	// the last popped element.
	ErrKeyTooSmall = errors.New("radixheap: key smaller than last popped key")

	// ErrEmpty is returned by Pop, Peek and PeekKey on an empty heap.
	ErrEmpty = errors.New("radixheap: heap is empty")
)

type entry[T any] struct {
	value T
	key   uint32
}

// Heap is a radix heap storing values of type T keyed by uint32.
// The zero value is not usable, use [New].
type Heap[T any] struct {
	buckets [bucketCount][]entry[T]
	last    uint32
	size    int

	// total elements relocated by redistribution, for cost accounting
	moved int
}

// New returns an empty heap.
func New[T any]() *Heap[T] {
	return &Heap[T]{}
}

// NewWithCapacity returns an empty heap with each bucket pre-sized to
// hold n elements without reallocation.
func NewWithCapacity[T any](n int) *Heap[T] {
	h := &Heap[T]{}
	for i := range h.buckets {
		h.buckets[i] = make([]entry[T], 0, n)
	}
	return h
}

// bucketIndex places key relative to the lower bound: 0 when equal,
// otherwise the 1-based position of the highest bit of key^last.
// As last advances a key's index only ever decreases.
func bucketIndex(key, last uint32) int {
	return bits.Len32(key ^ last)
}

// Push inserts value under key. It fails with [ErrKeyTooSmall] if key is
// below the key of the last popped element; the heap is unchanged on
// failure.
func (h *Heap[T]) Push(key uint32, value T) error {
	if key < h.last {
		return ErrKeyTooSmall
	}

	i := bucketIndex(key, h.last)
	h.buckets[i] = append(h.buckets[i], entry[T]{key: key, value: value})
	h.size++

	return nil
}

// Pop removes and returns the element with the smallest key. Equal keys
// pop in insertion order. It fails with [ErrEmpty] on an empty heap.
//
// Popping advances the lower bound, so every later Push must use a key at
// least as large as the returned one.
func (h *Heap[T]) Pop() (uint32, T, error) {
	if h.size == 0 {
		var zero T
		return 0, zero, ErrEmpty
	}

	if len(h.buckets[0]) == 0 {
		h.redistribute(h.lowestOccupied())
	}

	e := h.buckets[0][0]
	h.buckets[0] = h.buckets[0][1:]
	h.size--

	return e.key, e.value, nil
}

// redistribute advances the lower bound to the minimum key of bucket i and
// moves every element of bucket i into a lower bucket. The minimum lands
// in bucket 0.
func (h *Heap[T]) redistribute(i int) {
	b := h.buckets[i]

	min := b[0].key
	for _, e := range b[1:] {
		if e.key < min {
			min = e.key
		}
	}

	h.last = min

	for _, e := range b {
		j := bucketIndex(e.key, h.last)
		assert.True(j < i, "redistribution must strictly lower the bucket index")
		h.buckets[j] = append(h.buckets[j], e)
	}
	h.moved += len(b)

	h.buckets[i] = b[:0]

	assert.True(len(h.buckets[0]) > 0, "bucket 0 must hold the minimum after redistribution")
}

// lowestOccupied returns the smallest index of a non-empty bucket.
// Callers must ensure the heap is not empty.
func (h *Heap[T]) lowestOccupied() int {
	for i := range h.buckets {
		if len(h.buckets[i]) != 0 {
			return i
		}
	}

	panic("radixheap: inconsistent size, no occupied bucket")
}

// Peek returns the key and value Pop would return next, without mutating
// the heap. It fails with [ErrEmpty] on an empty heap.
//
// Unlike Pop this never redistributes, so on a heap whose minimum sits in
// a high bucket Peek costs a scan of that bucket every call.
func (h *Heap[T]) Peek() (uint32, T, error) {
	if h.size == 0 {
		var zero T
		return 0, zero, ErrEmpty
	}

	b := h.buckets[h.lowestOccupied()]

	best := 0
	for j, e := range b[1:] {
		if e.key < b[best].key {
			best = j + 1
		}
	}

	return b[best].key, b[best].value, nil
}

// PeekKey returns the key Pop would return next. It fails with [ErrEmpty]
// on an empty heap.
func (h *Heap[T]) PeekKey() (uint32, error) {
	k, _, err := h.Peek()
	return k, err
}

// Len returns the number of stored elements.
func (h *Heap[T]) Len() int {
	return h.size
}

// Empty reports whether the heap holds no elements.
func (h *Heap[T]) Empty() bool {
	return h.size == 0
}

// Last returns the monotone lower bound: the key of the most recently
// popped element, or 0 if nothing has been popped. Push rejects any key
// below it.
func (h *Heap[T]) Last() uint32 {
	return h.last
}

// Clear drops all stored elements, keeping bucket capacity. The lower
// bound is retained, so a cleared heap still rejects keys below the last
// popped key.
func (h *Heap[T]) Clear() {
	for i := range h.buckets {
		h.buckets[i] = h.buckets[i][:0]
	}
	h.size = 0
}
