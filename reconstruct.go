// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"math"

	"github.com/avdva/ieee754/internal/bitutil"
)

// MantissaValue returns 1 + sum(bit_i * 2^-i) for the 23 mantissa bits,
// i.e. the significand with an implicit leading 1.
// It always assumes the leading 1, so it describes normal numbers only.
// Use Significand for a class-aware value.
func MantissaValue(f Fields) float64 {
	return 1 + Fraction(f)
}

// Fraction returns 0.mantissa, the significand without the implicit bit.
func Fraction(f Fields) float64 {
	return math.Ldexp(float64(f.Mantissa&mantMask), -MantissaBits)
}

// Significand returns the significand as it takes part in the value:
// 1.mantissa for normal numbers, 0.mantissa for zeros and denormals.
// For infinities and NaNs it returns MantissaValue.
func Significand(f Fields) float64 {
	switch Classify(f) {
	case Zero, Denormalized:
		return Fraction(f)
	default:
		return MantissaValue(f)
	}
}

// UnbiasedExponent returns the raw exponent minus 127.
func UnbiasedExponent(f Fields) int {
	return int(f.Exponent) - Bias
}

// EffectiveExponent returns the power of two the significand is scaled by:
// -126 for zeros and denormals, the unbiased exponent otherwise.
func EffectiveExponent(f Fields) int {
	if f.Exponent == 0 {
		return DenormalExponent
	}
	return UnbiasedExponent(f)
}

// Reconstruct computes the number described by f from its fields:
//	normal:       (-1)^sign * 2^(exponent-127) * 1.mantissa
//	denormalized: (-1)^sign * 2^-126 * 0.mantissa
// Zeros, infinities and NaNs are fully described by their class and sign,
// so they are not computed and ok is false.
// The result is exact and equals float64(f.Bits().Float32()).
func Reconstruct(f Fields) (value float64, ok bool) {
	switch Classify(f) {
	case Normal:
		value = math.Ldexp(MantissaValue(f), UnbiasedExponent(f))
	case Denormalized:
		value = math.Ldexp(Fraction(f), DenormalExponent)
	default:
		return 0, false
	}
	return float64(bitutil.SignMultiplier(f.Sign)) * value, true
}

// Value returns the number described by f for every class:
// signed zeros, signed infinities, NaN, or the reconstruction.
func Value(f Fields) float64 {
	switch Classify(f) {
	case Zero:
		if f.Sign&1 == 1 {
			return math.Copysign(0, -1)
		}
		return 0
	case Infinity:
		return math.Inf(bitutil.SignMultiplier(f.Sign))
	case NaN:
		return math.NaN()
	}
	v, _ := Reconstruct(f)
	return v
}
