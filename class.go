// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import "strconv"

// Class tells which kind of number a pattern encodes.
type Class uint8

const (
	// Normal is a finite number with an implicit leading 1.
	Normal Class = iota
	// Zero is +0 or -0.
	Zero
	// Denormalized is a tiny number with an implicit leading 0 and exponent -126.
	Denormalized
	// Infinity is +Inf or -Inf.
	Infinity
	// NaN is not-a-number.
	NaN
)

var classNames = [...]string{
	Normal:       "Normal",
	Zero:         "Zero",
	Denormalized: "Denormalized",
	Infinity:     "Infinity",
	NaN:          "NaN",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "Class(" + strconv.Itoa(int(c)) + ")"
}

// IsSpecial returns true for every class except Normal.
func (c Class) IsSpecial() bool {
	return c != Normal
}

// Classify returns the class of the pattern with the given fields.
func Classify(f Fields) Class {
	switch f.Exponent {
	case MaxExponent:
		if f.Mantissa == 0 {
			return Infinity
		}
		return NaN
	case 0:
		if f.Mantissa == 0 {
			return Zero
		}
		return Denormalized
	}
	return Normal
}
