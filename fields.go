// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"github.com/avdva/ieee754/internal/bitutil"
)

// Fields is a read-only view of the three fields of a pattern.
// Sign<<31 | Exponent<<23 | Mantissa always equals the pattern it came from.
type Fields struct {
	// Sign is 0 or 1.
	Sign uint8
	// Exponent is the biased exponent.
	Exponent uint8
	// Mantissa is the fraction in [0, 2^23-1].
	Mantissa uint32
}

// Bits reassembles the pattern.
func (f Fields) Bits() Bits {
	return fromFields(f.Sign, f.Exponent, f.Mantissa)
}

// Class is a shortcut for Classify(f).
func (f Fields) Class() Class {
	return Classify(f)
}

// SignString returns the sign bit as a 1-char string.
func (f Fields) SignString() string {
	return bitutil.FormatBinary(f.Sign, SignBits)
}

// ExponentString returns the exponent as 8 binary digits.
func (f Fields) ExponentString() string {
	return bitutil.FormatBinary(f.Exponent, ExponentBits)
}

// MantissaString returns the mantissa as 23 binary digits.
func (f Fields) MantissaString() string {
	return bitutil.FormatBinary(f.Mantissa, MantissaBits)
}
