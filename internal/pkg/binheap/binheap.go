// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

// Package binheap provides a binary min-heap keyed by uint32.
// Unlike the radix heap it accepts keys in any order, which makes it the
// reference queue for cross-checking results in tests and benchmarks.
package binheap

type Item[T any] struct {
	Value T
	Key   uint32
}

// Heap implements a binary min-heap ordered by Item.Key.
type Heap[T any] struct {
	data []Item[T]
}

func New[T any]() *Heap[T] {
	return &Heap[T]{
		data: make([]Item[T], 0),
	}
}

// FromSlice heapifies the given items in place and uses them as the
// backing array.
func FromSlice[T any](items []Item[T]) *Heap[T] {
	n := len(items)
	for i := n/2 - 1; i >= 0; i-- {
		down(items, i)
	}

	return &Heap[T]{
		data: items,
	}
}

// Push pushes the given pair onto the heap.
func (h *Heap[T]) Push(key uint32, value T) {
	h.data = append(h.data, Item[T]{Key: key, Value: value})
	up(h.data, len(h.data)-1)
}

// Pop removes and returns the item with the minimum key.
// panic if the heap is empty.
func (h *Heap[T]) Pop() Item[T] {
	x := h.data[0]

	h.data[0] = h.data[len(h.data)-1]
	h.data = h.data[:len(h.data)-1]

	down(h.data, 0)

	return x
}

// Peek returns the item with the minimum key without removing it.
func (h *Heap[T]) Peek() Item[T] {
	return h.data[0]
}

// Len returns the number of items in the heap.
func (h *Heap[T]) Len() int {
	return len(h.data)
}

func down[T any](h []Item[T], i int) {
	for {
		left, right := 2*i+1, 2*i+2
		if left >= len(h) || left < 0 { // `left < 0` in case of overflow
			break
		}

		// find the smallest child
		j := left
		if right < len(h) && h[right].Key < h[left].Key {
			j = right
		}

		if h[j].Key >= h[i].Key {
			break
		}

		h[i], h[j] = h[j], h[i]
		i = j
	}
}

func up[T any](h []Item[T], i int) {
	for {
		parent := (i - 1) / 2
		if i == 0 || h[i].Key >= h[parent].Key {
			break
		}

		h[i], h[parent] = h[parent], h[i]
		i = parent
	}
}
