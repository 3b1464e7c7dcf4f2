// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package radixheap_test

import (
	"math/rand"
	"slices"
	"testing"

	"radixheap"
	"radixheap/internal/pkg/binheap"
)

func monotoneKeys(n int) []uint32 {
	keys := make([]uint32, n)
	for i := range keys {
		keys[i] = rand.Uint32()
	}
	slices.Sort(keys)
	return keys
}

func BenchmarkRadixHeapDrain(b *testing.B) {
	keys := monotoneKeys(10_000)
	b.ResetTimer()

	for bi := 0; bi < b.N; bi++ {
		h := radixheap.NewWithCapacity[int](len(keys) / 8)
		for i, k := range keys {
			_ = h.Push(k, i)
		}
		for !h.Empty() {
			_, _, _ = h.Pop()
		}
	}
}

func BenchmarkBinHeapDrain(b *testing.B) {
	keys := monotoneKeys(10_000)
	b.ResetTimer()

	for bi := 0; bi < b.N; bi++ {
		h := binheap.New[int]()
		for i, k := range keys {
			h.Push(k, i)
		}
		for h.Len() > 0 {
			_ = h.Pop()
		}
	}
}

func BenchmarkRadixHeapInterleaved(b *testing.B) {
	h := radixheap.New[int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if h.Last() > 1<<31 {
			// restart before the key domain runs out
			h = radixheap.New[int]()
		}

		_ = h.Push(h.Last()+rand.Uint32()%128, i)
		if h.Len() > 64 {
			_, _, _ = h.Pop()
		}
	}
}
