// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package ieee754 decomposes IEEE 754 single-precision (binary32) numbers
// into their sign, exponent and mantissa fields, rebuilds numbers from
// raw bit patterns, and classifies special encodings.
package ieee754

import (
	"errors"
	"fmt"
	"math"

	"github.com/avdva/ieee754/internal/bitutil"
)

const (
	// Width is the number of bits in a single-precision pattern.
	Width = SignBits + ExponentBits + MantissaBits
	// SignBits is the width of the sign field.
	SignBits = 1
	// ExponentBits is the width of the biased exponent field.
	ExponentBits = 8
	// MantissaBits is the width of the fraction field.
	MantissaBits = 23

	// Bias is subtracted from the stored exponent to get the true one.
	Bias = 1<<(ExponentBits-1) - 1
	// MaxExponent is the stored exponent of infinities and NaNs.
	MaxExponent = 1<<ExponentBits - 1
	// DenormalExponent is the true exponent of denormalized numbers.
	DenormalExponent = 1 - Bias

	expShift  = MantissaBits
	signShift = MantissaBits + ExponentBits

	expMask  = 1<<ExponentBits - 1
	mantMask = 1<<MantissaBits - 1
	signMask = 1 << signShift
)

const (
	// PositiveZero is +0.0.
	PositiveZero Bits = 0
	// NegativeZero is -0.0.
	NegativeZero Bits = signMask
	// PositiveInf is +Inf.
	PositiveInf Bits = MaxExponent << expShift
	// NegativeInf is -Inf.
	NegativeInf Bits = signMask | PositiveInf
	// QuietNaN is the canonical quiet NaN with the top fraction bit set.
	QuietNaN Bits = PositiveInf | 1<<(MantissaBits-1)
	// One is 1.0.
	One Bits = Bias << expShift
)

var (
	errRange = errors.New("field out of range")
)

type number = uint32

// Bits is the exact 32-bit encoding of a single-precision number.
//   31 30    23 22                    0
//   _|_______|______________________
//   seeeeeeeemmmmmmmmmmmmmmmmmmmmmmm
//
// The zero Bits is +0.0.
type Bits number

func sign(b Bits) uint8 {
	return uint8(b >> signShift)
}

func exp(b Bits) uint8 {
	return uint8(b >> expShift & expMask)
}

func mant(b Bits) uint32 {
	return uint32(b & mantMask)
}

func split(b Bits) (s, e uint8, m uint32) {
	return sign(b), exp(b), mant(b)
}

func fromFields(s, e uint8, m uint32) Bits {
	return Bits(number(s&1)<<signShift | number(e)<<expShift | m&mantMask)
}

// FromFloat32 returns the encoding of f.
func FromFloat32(f float32) Bits {
	return Bits(math.Float32bits(f))
}

// FromFloat64 rounds f to single precision and returns its encoding.
func FromFloat64(f float64) Bits {
	return FromFloat32(float32(f))
}

// FromUint32 returns a pattern holding exactly u.
func FromUint32(u uint32) Bits {
	return Bits(u)
}

// FromFields assembles a pattern from its fields.
// Returns an error if sign is not 0 or 1, or the mantissa does not fit 23 bits.
func FromFields(sign, exponent uint8, mantissa uint32) (Bits, error) {
	if sign > 1 || bitutil.BinaryDigits(uint64(mantissa)) > MantissaBits {
		return 0, errRange
	}
	return fromFields(sign, exponent, mantissa), nil
}

// Uint32 returns the pattern as an unsigned integer.
func (b Bits) Uint32() uint32 {
	return uint32(b)
}

// Float32 returns the number encoded by b. It is the bit-exact inverse of FromFloat32.
func (b Bits) Float32() float32 {
	return math.Float32frombits(uint32(b))
}

// Float64 returns the number encoded by b widened to float64.
func (b Bits) Float64() float64 {
	return float64(b.Float32())
}

// Sign returns the sign bit, 1 for negative numbers.
func (b Bits) Sign() uint8 {
	return sign(b)
}

// Exponent returns the raw biased exponent in [0, 255].
func (b Bits) Exponent() uint8 {
	return exp(b)
}

// Mantissa returns the 23-bit fraction field.
func (b Bits) Mantissa() uint32 {
	return mant(b)
}

// Fields splits b into its sign, exponent and mantissa.
func (b Bits) Fields() Fields {
	s, e, m := split(b)
	return Fields{Sign: s, Exponent: e, Mantissa: m}
}

// Class returns the classification of b.
func (b Bits) Class() Class {
	return Classify(b.Fields())
}

// String returns b as 32 binary digits, most significant bit first.
func (b Bits) String() string {
	return bitutil.FormatBinary(uint32(b), Width)
}

// Hex returns b as 0x followed by 8 upper-case hex digits.
func (b Bits) Hex() string {
	return fmt.Sprintf("0x%08X", uint32(b))
}

// GoString returns debug string representation.
func (b Bits) GoString() string {
	s, e, m := split(b)
	return b.Hex() + fmt.Sprintf(" {%v, %v, %v}", s, e, m)
}
