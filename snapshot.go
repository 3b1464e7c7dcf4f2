// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package radixheap

import (
	"cmp"
	"slices"
)

// Tuple is a stored key/value pair.
type Tuple[T any] struct {
	Value T
	Key   uint32
}

// Tuples returns a snapshot of all stored pairs in pop order. The heap is
// not mutated.
func (h *Heap[T]) Tuples() []Tuple[T] {
	all := make([]Tuple[T], 0, h.size)

	for i := range h.buckets {
		for _, e := range h.buckets[i] {
			all = append(all, Tuple[T]{Key: e.key, Value: e.value})
		}
	}

	// equal keys always share a bucket, so a stable sort reproduces
	// insertion order among them
	slices.SortStableFunc(all, func(a, b Tuple[T]) int {
		return cmp.Compare(a.Key, b.Key)
	})

	return all
}

// Keys returns all stored keys in ascending order.
func (h *Heap[T]) Keys() []uint32 {
	tuples := h.Tuples()

	keys := make([]uint32, len(tuples))
	for i, t := range tuples {
		keys[i] = t.Key
	}

	return keys
}

// Values returns all stored values, ordered by ascending key.
func (h *Heap[T]) Values() []T {
	tuples := h.Tuples()

	values := make([]T, len(tuples))
	for i, t := range tuples {
		values[i] = t.Value
	}

	return values
}
