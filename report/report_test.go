// Copyright 2020 Aleksandr Demakin. All rights reserved.

package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avdva/ieee754"
)

func TestAnalyze(t *testing.T) {
	a := assert.New(t)
	bd := Analyze(ieee754.FromFloat32(-2.5))
	a.Equal("-2.5", bd.Decimal)
	a.Equal("11000000001000000000000000000000", bd.Binary)
	a.Equal("1", bd.SignBit)
	a.Equal("10000000", bd.ExponentBits)
	a.Equal("01000000000000000000000", bd.MantissaBits)
	a.Equal(ieee754.Normal, bd.Class)
	a.Equal("Normal", bd.ClassName)
	a.Equal("Negative (-)", bd.Sign)
	a.Equal(128, bd.RawExponent)
	a.Equal(1, bd.UnbiasedExponent)
	a.Equal(1, bd.EffectiveExponent)
	a.Equal("2", bd.PowerOfTwo)
	a.Equal("1", bd.LeadingBit)
	a.Equal(1.25, bd.Significand)
	a.Equal("-2.5", bd.Value)
	a.True(bd.Reconstructed)
	a.Equal("0xC0200000", bd.Hex)
}

func TestAnalyzeSpecial(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		b       ieee754.Bits
		decimal string
		value   string
		leading string
		rec     bool
	}{
		{ieee754.PositiveZero, "0.0", "+0.0", "0", false},
		{ieee754.NegativeZero, "-0.0", "-0.0", "0", false},
		{ieee754.PositiveInf, "inf", "Positive Infinity", "1", false},
		{ieee754.NegativeInf, "-inf", "Negative Infinity", "1", false},
		{ieee754.QuietNaN, "nan", "NaN (sign bit 0)", "1", false},
		{ieee754.QuietNaN | ieee754.NegativeZero, "nan", "NaN (sign bit 1)", "1", false},
		{3, "4e-45", "4.203895392974451e-45", "0", true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			bd := Analyze(test.b)
			a.Equal(test.decimal, bd.Decimal)
			a.Equal(test.value, bd.Value)
			a.Equal(test.leading, bd.LeadingBit)
			a.Equal(test.rec, bd.Reconstructed)
		})
	}
}

const pow2m126 = "0.000000000000000000000000000000000000011754943508222875079687365372222456778186655567720875215087517062784172594547271728515625"

func TestAnalyzeDecimalFollowsValue(t *testing.T) {
	a := assert.New(t)
	for _, b := range []ieee754.Bits{ieee754.One, ieee754.NegativeZero, ieee754.NegativeInf, ieee754.QuietNaN, 1, 0x00800000, 0xC0200000} {
		f := b.Fields()
		a.Equal(FormatFloat(ieee754.Value(f), 32), Analyze(b).Decimal, b.Hex())
		if b.Class() != ieee754.NaN {
			a.Equal(FormatFloat(float64(b.Float32()), 32), Analyze(b).Decimal, b.Hex())
		}
	}
}

func TestPowerOfTwo(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		exp int
		res string
	}{
		{0, "1"},
		{10, "1024"},
		{127, "170141183460469231731687303715884105728"},
		{-1, "0.5"},
		{-3, "0.125"},
		{-10, "0.0009765625"},
		{-126, pow2m126},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%d", test.exp), func(t *testing.T) {
			a.Equal(test.res, PowerOfTwo(test.exp))
		})
	}
}

func TestPowerOfTwoExact(t *testing.T) {
	a := assert.New(t)
	for exp := -149; exp <= 127; exp++ {
		r, ok := new(big.Rat).SetString(PowerOfTwo(exp))
		if !a.True(ok, exp) {
			continue
		}
		var want *big.Rat
		if exp >= 0 {
			want = new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(exp)))
		} else {
			want = new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), uint(-exp)))
		}
		a.Equal(0, want.Cmp(r), exp)
	}
}

func TestFormatFloat(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f       float64
		bitSize int
		res     string
	}{
		{1, 64, "1.0"},
		{-273.15, 64, "-273.15"},
		{float64(float32(-273.15)), 32, "-273.15"},
		{float64(float32(-273.15)), 64, "-273.1499938964844"},
		{0.0009765625, 64, "0.0009765625"},
		{1e-5, 64, "1e-05"},
		{1e16, 64, "1e+16"},
		{123456792, 64, "123456792.0"},
		{math.Copysign(0, -1), 64, "-0.0"},
		{math.Inf(1), 32, "inf"},
		{math.Inf(-1), 32, "-inf"},
		{math.NaN(), 32, "nan"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, FormatFloat(test.f, test.bitSize))
		})
	}
}

func TestWriteDenormalized(t *testing.T) {
	a := assert.New(t)
	var buf bytes.Buffer
	a.NoError(Write(&buf, Analyze(3)))
	out := buf.String()
	for _, line := range []string{
		"Decimal Value: 4e-45",
		"Special Value: Denormalized",
		"  → Denormalized, fixed exponent: 1 - 127 = -126",
		"  → Power of 2: 2^-126 = " + pow2m126,
		"  → Implicit leading 0: 0.00000000000000000000011",
		"  → Decimal value: 0.0000003576",
		"  Value = (-1)^0 x 2^-126 x 0.0000003576",
		"  Value = 1 x " + pow2m126 + " x 0.0000003576",
		"  Value = 4.203895392974451e-45",
		"Hexadecimal: 0x00000003",
	} {
		a.Contains(out, line+"\n")
	}
	a.NotContains(out, "Unbiased")
}

func TestWriteSpecial(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		b     ieee754.Bits
		lines []string
	}{
		{ieee754.PositiveInf, []string{"Special Value: Infinity\n   Positive Infinity\n"}},
		{ieee754.NegativeInf, []string{"Special Value: Infinity\n   Negative Infinity\n"}},
		{ieee754.NegativeZero, []string{"Decimal Value: -0.0\n", "Special Value: Zero\n   -0.0\n"}},
		{ieee754.QuietNaN, []string{"Decimal Value: nan\n", "Special Value: NaN\n   NaN (sign bit 0)\n"}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var buf bytes.Buffer
			a.NoError(Write(&buf, Analyze(test.b)))
			out := buf.String()
			for _, line := range test.lines {
				a.Contains(out, line)
			}
			a.NotContains(out, "Final Calculation")
			a.NotContains(out, "Hexadecimal")
			a.True(strings.HasSuffix(out, rule+"\n"))
		})
	}
}

func TestWriteLargeExponent(t *testing.T) {
	a := assert.New(t)
	var buf bytes.Buffer
	a.NoError(Write(&buf, Analyze(ieee754.FromFloat32(math.MaxFloat32))))
	out := buf.String()
	a.Contains(out, "  → Unbiased (subtract 127): 254 - 127 = 127\n")
	a.Contains(out, "  → Power of 2: 2^127 = 170141183460469231731687303715884105728\n")
	a.Contains(out, "  → Decimal value: 1.9999998808\n")
	a.Contains(out, "  Value = 3.4028234663852886e+38\n")
}

func TestWriteQuick(t *testing.T) {
	a := assert.New(t)
	var buf bytes.Buffer
	a.NoError(WriteQuick(&buf, ieee754.FromFloat32(3.14159)))
	out := buf.String()
	a.True(strings.HasPrefix(out, "Quick Example: Analyzing 3.14159\n"+thinRule+"\n"))
	a.Contains(out, "Decimal Value: 3.14159\n")
	a.Contains(out, "  Value = 3.141590118408203\n")
}

func TestBreakdownJSON(t *testing.T) {
	a := assert.New(t)
	data, err := json.Marshal(Analyze(ieee754.One))
	if !a.NoError(err) {
		return
	}
	var m map[string]interface{}
	if a.NoError(json.Unmarshal(data, &m)) {
		a.Equal("0x3F800000", m["bits"])
		a.Equal("Normal", m["class"])
		a.Equal(127.0, m["rawExponent"])
		a.Equal(0.0, m["unbiasedExponent"])
		a.Equal(1.0, m["significand"])
		a.Equal("1.0", m["value"])
		a.NotContains(m, "Class")
	}
	var back Breakdown
	if a.NoError(json.Unmarshal(data, &back)) {
		a.Equal(ieee754.One, back.Bits)
	}
}

func TestCommonExamples(t *testing.T) {
	a := assert.New(t)
	examples := CommonExamples()
	a.Len(examples, 7)
	for _, ex := range examples {
		a.Equal(ex.Name, FormatFloat(ex.Bits.Float64(), 32))
		a.Equal(ieee754.Normal, ex.Bits.Class())
	}
	a.Equal("1.0", examples[0].Name)
	a.Equal(ieee754.One, examples[0].Bits)
	a.Equal("-273.15", examples[5].Name)
	a.Equal(ieee754.FromFloat64(-273.15), examples[5].Bits)
}

func TestWriteCommonExamples(t *testing.T) {
	a := assert.New(t)
	var buf bytes.Buffer
	a.NoError(WriteCommonExamples(&buf))
	out := buf.String()
	a.True(strings.HasPrefix(out, "\n"+rule+"\nCommon Examples\n"+rule+"\n"))
	a.Contains(out, "\n1.0:\n  Binary: 00111111100000000000000000000000\n  Hex: 0x3F800000\n")
	a.Contains(out, "\n-1.0:\n  Binary: 10111111100000000000000000000000\n  Hex: 0xBF800000\n")
	a.Contains(out, "\n0.5:\n  Binary: 00111111000000000000000000000000\n  Hex: 0x3F000000\n")
	a.Contains(out, "\n123.456:\n")
}
