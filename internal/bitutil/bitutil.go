// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bitutil contains helpers for fixed-width binary formatting and sign handling.
package bitutil

import (
	"math/bits"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

var (
	// 64 zeros, enough to pad any uint64.
	manyZeros = "00000000000000000000000000000000" +
		"00000000000000000000000000000000"
)

// BinaryDigits returns the number of significant binary digits in 'value'.
func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// FormatBinary returns the lowest 'width' bits of 'value' as a string of '0' and '1',
// most significant bit first. Values shorter than width are padded with leading zeros.
func FormatBinary[T constraints.Unsigned](value T, width int) string {
	if width <= 0 {
		return ""
	}
	if width > len(manyZeros) {
		width = len(manyZeros)
	}
	s := strconv.FormatUint(uint64(value), 2)
	if len(s) >= width {
		return s[len(s)-width:]
	}
	return manyZeros[:width-len(s)] + s
}

// SignMultiplier returns -1 for a set sign bit and 1 otherwise.
func SignMultiplier(sign uint8) int {
	return [...]int{1, -1}[sign&1]
}
