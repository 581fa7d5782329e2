package query

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// decode applies application/x-www-form-urlencoded rules without ever failing:
// '+' becomes a space, %XX and %uXXXX escapes are decoded, malformed escapes are
// kept literally and invalid UTF-8 is replaced with U+FFFD.
func decode(s string) string {
	if s == "" {
		return ""
	}
	if !strings.ContainsAny(s, "+%") {
		return strings.ToValidUTF8(s, string(utf8.RuneError))
	}

	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '+':
			out = append(out, ' ')
		case c == '%' && i+5 < len(s) && (s[i+1] == 'u' || s[i+1] == 'U') && isHex4(s[i+2:i+6]):
			r := rune(unhex4(s[i+2 : i+6]))
			i += 5
			if utf16.IsSurrogate(r) {
				// A high surrogate pairs with an immediately following %uXXXX low surrogate.
				if j := i + 1; j+5 < len(s) && s[j] == '%' && (s[j+1] == 'u' || s[j+1] == 'U') && isHex4(s[j+2:j+6]) {
					if pair := utf16.DecodeRune(r, rune(unhex4(s[j+2:j+6]))); pair != utf8.RuneError {
						r = pair
						i += 6
					}
				}
			}
			out = utf8.AppendRune(out, r)
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			out = append(out, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
		default:
			out = append(out, c)
		}
	}
	return strings.ToValidUTF8(string(out), string(utf8.RuneError))
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isHex4(s string) bool {
	return isHex(s[0]) && isHex(s[1]) && isHex(s[2]) && isHex(s[3])
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

func unhex4(s string) uint16 {
	return uint16(unhex(s[0]))<<12 | uint16(unhex(s[1]))<<8 | uint16(unhex(s[2]))<<4 | uint16(unhex(s[3]))
}
