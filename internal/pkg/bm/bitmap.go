// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

// Package bm provides a fixed-size membership bitmap over uint32 IDs.
package bm

import (
	"github.com/kelindar/bitmap"
)

// Bitmap tracks membership for IDs in [0, size). It is not safe for
// concurrent use.
type Bitmap struct {
	bm   bitmap.Bitmap
	size uint32
}

func New(size uint32) *Bitmap {
	return &Bitmap{
		size: size,
		bm:   make(bitmap.Bitmap, (size+63)/64),
	}
}

func (b *Bitmap) Set(i uint32) {
	b.bm.Set(i)
}

// SetX sets i and reports whether it was newly set.
func (b *Bitmap) SetX(i uint32) bool {
	if b.bm.Contains(i) {
		return false
	}

	b.bm.Set(i)
	return true
}

func (b *Bitmap) Unset(i uint32) {
	b.bm.Remove(i)
}

func (b *Bitmap) Contains(i uint32) bool {
	return b.bm.Contains(i)
}

func (b *Bitmap) Count() uint32 {
	return uint32(b.bm.CountTo(b.size))
}

func (b *Bitmap) Clear() {
	b.bm.Clear()
}

func (b *Bitmap) Range(fn func(uint32)) {
	b.bm.Range(fn)
}
