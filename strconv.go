// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	hexDigits = Width / 4
)

// ErrorKind is the constraint a textual pattern violated.
type ErrorKind uint8

const (
	// WrongLength means the input has the wrong number of digits.
	WrongLength ErrorKind = iota + 1
	// InvalidDigit means a character is not a digit of the expected base.
	InvalidDigit
	// Overflow means the value does not fit 32 bits.
	Overflow
)

var (
	// ErrWrongLength is matched by errors.Is for FormatErrors of kind WrongLength.
	ErrWrongLength = errors.New("wrong length")
	// ErrInvalidDigit is matched by errors.Is for FormatErrors of kind InvalidDigit.
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrOverflow is matched by errors.Is for FormatErrors of kind Overflow.
	ErrOverflow = errors.New("value out of range")
)

func (k ErrorKind) err() error {
	switch k {
	case WrongLength:
		return ErrWrongLength
	case InvalidDigit:
		return ErrInvalidDigit
	case Overflow:
		return ErrOverflow
	}
	return nil
}

func (k ErrorKind) String() string {
	if err := k.err(); err != nil {
		return err.Error()
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// FormatError is returned when a binary or hex string does not describe a 32-bit pattern.
type FormatError struct {
	// Kind is the violated constraint.
	Kind ErrorKind
	// Input is the text as it was passed to the parser.
	Input string
	// Pos is the 1-based position of the offending character, or 0.
	Pos int
	// Detail describes the violation.
	Detail string
}

func newFormatError(kind ErrorKind, input string, pos int, detail string) *FormatError {
	return &FormatError{Kind: kind, Input: input, Pos: pos, Detail: detail}
}

func (fe *FormatError) Error() string {
	msg := "parsing " + strconv.Quote(fe.Input) + ": " + fe.Kind.String()
	if len(fe.Detail) > 0 {
		msg += ": " + fe.Detail
	}
	if fe.Pos > 0 {
		msg += fmt.Sprintf(" at pos %d", fe.Pos)
	}
	return msg
}

// Unwrap returns one of ErrWrongLength, ErrInvalidDigit, ErrOverflow.
func (fe *FormatError) Unwrap() error {
	return fe.Kind.err()
}

// ParseBinary parses exactly 32 characters of '0' and '1', most significant bit first.
func ParseBinary(s string) (Bits, error) {
	if l := utf8.RuneCountInString(s); l != Width {
		return 0, newFormatError(WrongLength, s, 0, fmt.Sprintf("want %d binary digits, got %d", Width, l))
	}
	var result number
	pos := 0
	for _, r := range s {
		pos++
		switch r {
		case '0':
			result <<= 1
		case '1':
			result = result<<1 | 1
		default:
			return 0, newFormatError(InvalidDigit, s, pos, fmt.Sprintf("unexpected symbol %q", r))
		}
	}
	return Bits(result), nil
}

// ParseHex parses a base-16 pattern with an optional 0x or 0X prefix.
// Digits are case-insensitive and leading zeros are allowed,
// but the value must fit 32 bits.
func ParseHex(s string) (Bits, error) {
	digits, offset := s, 0
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits, offset = s[2:], 2
	}
	if len(digits) == 0 {
		return 0, newFormatError(WrongLength, s, 0, "no hex digits")
	}
	pos := offset
	for _, r := range digits {
		pos++
		if _, ok := hexValue(r); !ok {
			return 0, newFormatError(InvalidDigit, s, pos, fmt.Sprintf("unexpected symbol %q", r))
		}
	}
	significant := strings.TrimLeft(digits, "0")
	if len(significant) > hexDigits {
		return 0, newFormatError(Overflow, s, 0, fmt.Sprintf("%d significant hex digits, at most %d allowed", len(significant), hexDigits))
	}
	var result number
	for _, r := range significant {
		d, _ := hexValue(r)
		result = result<<4 | d
	}
	return Bits(result), nil
}

func hexValue(r rune) (number, bool) {
	switch {
	case '0' <= r && r <= '9':
		return number(r - '0'), true
	case 'a' <= r && r <= 'f':
		return number(r-'a') + 10, true
	case 'A' <= r && r <= 'F':
		return number(r-'A') + 10, true
	}
	return 0, false
}
