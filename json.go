// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

var (
	// JSONMode defines the way all patterns are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeHex
)

const (
	// JSONModeHex produces patterns as hex strings, like `"0x3F800000"`.
	JSONModeHex = iota
	// JSONModeBinary produces patterns as 32 binary digits, like `"00111111100000000000000000000000"`.
	JSONModeBinary
	// JSONModeFields marshals patterns as fields, like `{"s":0,"e":127,"m":0}`.
	JSONModeFields
)

var (
	jsonParts = []string{`{"s":`, `,"e":`, `,"m":`, `}`}
)

// MarshalJSON marshals b according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (b Bits) MarshalJSON() ([]byte, error) {
	return b.toJSON(JSONMode), nil
}

func (b Bits) toJSON(mode int) []byte {
	switch mode {
	case JSONModeBinary:
		return []byte(`"` + b.String() + `"`)
	case JSONModeFields:
		var builder strings.Builder
		s, e, m := split(b)
		builder.WriteString(jsonParts[0])
		builder.WriteString(strconv.FormatUint(uint64(s), 10))
		builder.WriteString(jsonParts[1])
		builder.WriteString(strconv.FormatUint(uint64(e), 10))
		builder.WriteString(jsonParts[2])
		builder.WriteString(strconv.FormatUint(uint64(m), 10))
		builder.WriteString(jsonParts[3])
		return []byte(builder.String())
	default:
		return []byte(`"` + b.Hex() + `"`)
	}
}

// UnmarshalJSON unmarshals a string, a number, or an object of fields into a pattern.
// Strings are parsed with UnmarshalText, numbers are taken as the raw uint32.
func (b *Bits) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	if string(data) == "null" {
		return nil
	}
	switch data[0] {
	case '{':
		d := struct {
			S uint8
			E uint8
			M uint32
		}{}
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		value, err := FromFields(d.S, d.E, d.M)
		if err != nil {
			return err
		}
		*b = value
	case '"':
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		return b.UnmarshalText([]byte(s))
	default:
		u, err := strconv.ParseUint(string(data), 10, Width)
		if err != nil {
			return err
		}
		*b = Bits(u)
	}
	return nil
}

// MarshalText returns the hex form of b.
func (b Bits) MarshalText() ([]byte, error) {
	return []byte(b.Hex()), nil
}

// UnmarshalText parses 32 binary digits, or a hex pattern otherwise.
func (b *Bits) UnmarshalText(text []byte) error {
	s := string(text)
	parse := ParseHex
	if len(s) == Width && len(strings.Trim(s, "01")) == 0 {
		parse = ParseBinary
	}
	value, err := parse(s)
	if err != nil {
		return err
	}
	*b = value
	return nil
}
