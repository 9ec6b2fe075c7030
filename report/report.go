// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package report renders human-readable breakdowns of single-precision patterns.
//
// It consumes only the structured outputs of package ieee754:
// fields, classification and reconstructed values.
package report

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avdva/ieee754"
	"github.com/avdva/ieee754/internal/bitutil"
)

const (
	ruleWidth = 70
)

var (
	// rule frames titles and breakdowns.
	rule     = strings.Repeat("=", ruleWidth)
	thinRule = strings.Repeat("-", ruleWidth)
)

// Breakdown is everything a reader needs to follow the encoding of a pattern.
type Breakdown struct {
	Bits ieee754.Bits `json:"bits"`
	// Decimal is the shortest decimal that rounds to the same float32.
	// Zeros, infinities and NaNs are written as signed zero, inf or nan.
	Decimal      string `json:"decimal"`
	Binary       string `json:"binary"`
	SignBit      string `json:"signBit"`
	ExponentBits string `json:"exponentBits"`
	MantissaBits string `json:"mantissaBits"`

	Class     ieee754.Class `json:"-"`
	ClassName string        `json:"class"`
	// Sign is "Positive (+)" or "Negative (-)".
	Sign string `json:"sign"`

	RawExponent       int `json:"rawExponent"`
	UnbiasedExponent  int `json:"unbiasedExponent"`
	EffectiveExponent int `json:"effectiveExponent"`
	// PowerOfTwo is 2^EffectiveExponent as text.
	PowerOfTwo string `json:"powerOfTwo"`

	// LeadingBit is the implicit bit in front of the mantissa, "1" or "0".
	LeadingBit  string  `json:"leadingBit"`
	Significand float64 `json:"significand"`

	// Value is the reconstructed number, or a description of a special one.
	Value         string `json:"value"`
	Reconstructed bool   `json:"reconstructed"`

	Hex string `json:"hex"`
}

// Analyze collects the breakdown of b.
func Analyze(b ieee754.Bits) Breakdown {
	f := b.Fields()
	class := f.Class()
	bd := Breakdown{
		Bits:              b,
		Decimal:           FormatFloat(ieee754.Value(f), 32),
		Binary:            b.String(),
		SignBit:           f.SignString(),
		ExponentBits:      f.ExponentString(),
		MantissaBits:      f.MantissaString(),
		Class:             class,
		ClassName:         class.String(),
		Sign:              signLabel(f.Sign),
		RawExponent:       int(f.Exponent),
		UnbiasedExponent:  ieee754.UnbiasedExponent(f),
		EffectiveExponent: ieee754.EffectiveExponent(f),
		LeadingBit:        "1",
		Significand:       ieee754.Significand(f),
		Hex:               b.Hex(),
	}
	bd.PowerOfTwo = PowerOfTwo(bd.EffectiveExponent)
	if class == ieee754.Zero || class == ieee754.Denormalized {
		bd.LeadingBit = "0"
	}
	if v, ok := ieee754.Reconstruct(f); ok {
		bd.Value, bd.Reconstructed = FormatFloat(v, 64), true
	} else {
		bd.Value = describeSpecial(class, f.Sign)
	}
	return bd
}

func signLabel(sign uint8) string {
	if sign == 1 {
		return "Negative (-)"
	}
	return "Positive (+)"
}

func describeSpecial(class ieee754.Class, sign uint8) string {
	switch class {
	case ieee754.Zero:
		return [...]string{"+0.0", "-0.0"}[sign&1]
	case ieee754.Infinity:
		return [...]string{"Positive Infinity", "Negative Infinity"}[sign&1]
	case ieee754.NaN:
		return fmt.Sprintf("NaN (sign bit %d)", sign&1)
	}
	return class.String()
}

// PowerOfTwo returns the exact decimal text of 2^exp.
// Negative powers are written out in full: 2^-n = 5^n * 10^-n.
func PowerOfTwo(exp int) string {
	if exp >= 0 {
		return decimal.NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), uint(exp)), 0).String()
	}
	n := int64(-exp)
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(n), nil)
	return decimal.NewFromBigInt(five, int32(exp)).String()
}

// FormatFloat formats f with the shortest representation that round-trips at bitSize.
// Integral values keep a trailing ".0", and the exponent form is used
// for magnitudes below 1e-4 or from 1e16 on.
func FormatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, bitSize)
	}
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// Write renders the full breakdown.
// Zeros, infinities and NaNs stop after the special value line.
// Denormalized patterns are rendered with their implicit 0 and the fixed -126 exponent.
func Write(w io.Writer, bd Breakdown) error {
	var b strings.Builder
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "IEEE 754 Single Precision Analysis")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Decimal Value: %s\n\n", bd.Decimal)

	writeBinary(&b, bd)

	if bd.Class.IsSpecial() {
		fmt.Fprintf(&b, "Special Value: %s\n", bd.ClassName)
		if bd.Class != ieee754.Denormalized {
			fmt.Fprintf(&b, "   %s\n", bd.Value)
			fmt.Fprintln(&b, rule)
			_, err := io.WriteString(w, b.String())
			return err
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprintf(&b, "Sign Bit: %s\n", bd.SignBit)
	fmt.Fprintf(&b, "  → %s\n\n", bd.Sign)

	writeExponent(&b, bd)
	writeMantissa(&b, bd)
	writeCalculation(&b, bd)

	fmt.Fprintf(&b, "Hexadecimal: %s\n", bd.Hex)
	fmt.Fprintln(&b, rule)
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteTitle writes title between two rules, preceded by an empty line.
func WriteTitle(w io.Writer, title string) error {
	_, err := fmt.Fprintf(w, "\n%s\n%s\n%s\n", rule, title, rule)
	return err
}

// WriteQuick renders the breakdown of b under a "Quick Example" title.
func WriteQuick(w io.Writer, b ieee754.Bits) error {
	if _, err := fmt.Fprintf(w, "Quick Example: Analyzing %s\n%s\n", FormatFloat(b.Float64(), 32), thinRule); err != nil {
		return err
	}
	return Write(w, Analyze(b))
}

func writeBinary(b *strings.Builder, bd Breakdown) {
	fmt.Fprintln(b, "Binary Representation (32 bits):")
	fmt.Fprintf(b, "  %s | %s | %s\n", bd.SignBit, bd.ExponentBits, bd.MantissaBits)
	fmt.Fprintf(b, "  ↑   ↑%s↑   ↑%s↑\n", strings.Repeat("─", ieee754.ExponentBits), strings.Repeat("─", ieee754.MantissaBits))
	fmt.Fprintf(b, "  │   Exponent(%d)   Mantissa(%d)\n", ieee754.ExponentBits, ieee754.MantissaBits)
	fmt.Fprintln(b, "  Sign")
	fmt.Fprintln(b)
}

func writeExponent(b *strings.Builder, bd Breakdown) {
	fmt.Fprintf(b, "Exponent (%d bits): %s\n", ieee754.ExponentBits, bd.ExponentBits)
	fmt.Fprintf(b, "  → Raw value: %d\n", bd.RawExponent)
	if bd.Class == ieee754.Denormalized {
		fmt.Fprintf(b, "  → Denormalized, fixed exponent: 1 - %d = %d\n", ieee754.Bias, bd.EffectiveExponent)
	} else {
		fmt.Fprintf(b, "  → Unbiased (subtract %d): %d - %d = %d\n", ieee754.Bias, bd.RawExponent, ieee754.Bias, bd.UnbiasedExponent)
	}
	fmt.Fprintf(b, "  → Power of 2: 2^%d = %s\n\n", bd.EffectiveExponent, bd.PowerOfTwo)
}

func writeMantissa(b *strings.Builder, bd Breakdown) {
	fmt.Fprintf(b, "Mantissa (%d bits): %s\n", ieee754.MantissaBits, bd.MantissaBits)
	fmt.Fprintf(b, "  → Implicit leading %s: %s.%s\n", bd.LeadingBit, bd.LeadingBit, bd.MantissaBits)
	fmt.Fprintf(b, "  → Decimal value: %.10f\n\n", bd.Significand)
}

func writeCalculation(b *strings.Builder, bd Breakdown) {
	sign := bitutil.SignMultiplier(bd.Bits.Sign())
	fmt.Fprintln(b, "Final Calculation:")
	fmt.Fprintln(b, "  Value = (-1)^sign x 2^exponent x mantissa")
	fmt.Fprintf(b, "  Value = (-1)^%s x 2^%d x %.10f\n", bd.SignBit, bd.EffectiveExponent, bd.Significand)
	fmt.Fprintf(b, "  Value = %d x %s x %.10f\n", sign, bd.PowerOfTwo, bd.Significand)
	fmt.Fprintf(b, "  Value = %s\n\n", bd.Value)
}
