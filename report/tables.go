// Copyright 2020 Aleksandr Demakin. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/avdva/ieee754"
)

// Example is a named pattern.
type Example struct {
	Name string
	Bits ieee754.Bits
}

// SpecialValues returns the signed zeros, signed infinities and the quiet NaN.
func SpecialValues() []Example {
	return []Example{
		{"Zero", ieee754.PositiveZero},
		{"Negative Zero", ieee754.NegativeZero},
		{"Positive Infinity", ieee754.PositiveInf},
		{"Negative Infinity", ieee754.NegativeInf},
		{"NaN", ieee754.QuietNaN},
	}
}

// CommonExamples returns a few everyday numbers, named by their decimal form.
func CommonExamples() []Example {
	values := []float32{1.0, -1.0, 2.0, 0.5, 3.14159, -273.15, 123.456}
	result := make([]Example, 0, len(values))
	for _, v := range values {
		b := ieee754.FromFloat32(v)
		result = append(result, Example{Name: FormatFloat(b.Float64(), 32), Bits: b})
	}
	return result
}

// WriteSpecialValues renders the binary form and the fields of every special value.
func WriteSpecialValues(w io.Writer) error {
	var b strings.Builder
	WriteTitle(&b, "Special IEEE 754 Values")
	for _, ex := range SpecialValues() {
		f := ex.Bits.Fields()
		fmt.Fprintf(&b, "\n%s:\n", ex.Name)
		fmt.Fprintf(&b, "  Binary: %s\n", ex.Bits)
		fmt.Fprintf(&b, "  Parts: %s | %s | %s\n", f.SignString(), f.ExponentString(), f.MantissaString())
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteCommonExamples renders the binary and hex forms of the common examples.
func WriteCommonExamples(w io.Writer) error {
	var b strings.Builder
	WriteTitle(&b, "Common Examples")
	for _, ex := range CommonExamples() {
		fmt.Fprintf(&b, "\n%s:\n", ex.Name)
		fmt.Fprintf(&b, "  Binary: %s\n", ex.Bits)
		fmt.Fprintf(&b, "  Hex: %s\n", ex.Bits.Hex())
	}
	_, err := io.WriteString(w, b.String())
	return err
}
