package query

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindString Kind = iota
	KindInt
	KindBool
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindFloat:
		return "float"
	default:
		return "string"
	}
}

// Value is a decoded query value. Without coercion it is always KindString;
// with coercion exactly one of int64, bool, float64 or string is set.
// Raw always holds the decoded text the value was built from.
type Value struct {
	raw  string
	i    int64
	f    float64
	kind Kind
	b    bool
}

// StringValue returns a KindString value.
func StringValue(s string) Value {
	return Value{kind: KindString, raw: s}
}

// IntValue returns a KindInt value.
func IntValue(n int64) Value {
	return Value{kind: KindInt, raw: strconv.FormatInt(n, 10), i: n}
}

// BoolValue returns a KindBool value.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, raw: strconv.FormatBool(b), b: b}
}

// FloatValue returns a KindFloat value.
func FloatValue(f float64) Value {
	return Value{kind: KindFloat, raw: strconv.FormatFloat(f, 'g', -1, 64), f: f}
}

// Coerce converts raw by trying, in order, a base-10 64-bit integer, a
// case-insensitive "true"/"false", and an invariant float with optional ','
// thousands separators. The first success wins; otherwise raw stays a string.
func Coerce(raw string) Value {
	if n, ok := parseInt(raw); ok {
		return Value{kind: KindInt, raw: raw, i: n}
	}
	if b, ok := parseBool(raw); ok {
		return Value{kind: KindBool, raw: raw, b: b}
	}
	if f, ok := parseFloat(raw); ok {
		return Value{kind: KindFloat, raw: raw, f: f}
	}
	return StringValue(raw)
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Raw returns the decoded text v was built from.
func (v Value) Raw() string { return v.raw }

// Int returns the integer and true for KindInt values.
func (v Value) Int() (int64, bool) { return v.i, v.kind == KindInt }

// Bool returns the boolean and true for KindBool values.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Float returns the float and true for KindFloat values.
func (v Value) Float() (float64, bool) { return v.f, v.kind == KindFloat }

// Str returns the text and true for KindString values.
func (v Value) Str() (string, bool) { return v.raw, v.kind == KindString }

// String returns Raw.
func (v Value) String() string { return v.raw }

// Any returns the payload as int64, bool, float64 or string.
func (v Value) Any() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindBool:
		return v.b
	case KindFloat:
		return v.f
	default:
		return v.raw
	}
}

// MarshalJSON encodes the typed payload. Non-finite floats fall back to their raw text.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindFloat && (math.IsInf(v.f, 0) || math.IsNaN(v.f)) {
		return json.Marshal(v.raw)
	}
	return json.Marshal(v.Any())
}

// asciiSpace matches the whitespace allowed around numbers and booleans.
const asciiSpace = " \t\n\v\f\r"

func parseInt(raw string) (int64, bool) {
	s := strings.Trim(raw, asciiSpace)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseBool(raw string) (bool, bool) {
	s := strings.Trim(raw, asciiSpace)
	switch {
	case strings.EqualFold(s, "true"):
		return true, true
	case strings.EqualFold(s, "false"):
		return false, true
	default:
		return false, false
	}
}

// parseFloat accepts [sign] digits-with-commas [. digits] [e [sign] digits],
// plus "Infinity" and "NaN". Commas are only valid after the first integer digit.
func parseFloat(raw string) (float64, bool) {
	s := strings.Trim(raw, asciiSpace)
	if s == "" {
		return 0, false
	}

	sign, body := "", s
	if body[0] == '+' || body[0] == '-' {
		sign, body = body[:1], body[1:]
	}

	switch {
	case strings.EqualFold(body, "Infinity"):
		if sign == "-" {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	case strings.EqualFold(body, "NaN"):
		return math.NaN(), true
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(sign)

	i, digits := 0, 0
	for ; i < len(body); i++ {
		c := body[i]
		if isDigit(c) {
			b.WriteByte(c)
			digits++
			continue
		}
		if c == ',' && digits > 0 {
			continue
		}
		break
	}

	if i < len(body) && body[i] == '.' {
		b.WriteByte('.')
		for i++; i < len(body) && isDigit(body[i]); i++ {
			b.WriteByte(body[i])
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}

	if i < len(body) && (body[i] == 'e' || body[i] == 'E') {
		b.WriteByte('e')
		i++
		if i < len(body) && (body[i] == '+' || body[i] == '-') {
			b.WriteByte(body[i])
			i++
		}
		exp := 0
		for ; i < len(body) && isDigit(body[i]); i++ {
			b.WriteByte(body[i])
			exp++
		}
		if exp == 0 {
			return 0, false
		}
	}

	if i != len(body) {
		return 0, false
	}

	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
