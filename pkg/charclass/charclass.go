package charclass

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Predicate decides whether a character is kept. Bytes that are not valid UTF-8
// are passed as utf8.RuneError.
type Predicate func(r rune) bool

var (
	// Letters matches Unicode letters (category L).
	Letters Predicate = unicode.IsLetter
	// Digits matches Unicode decimal digits (category Nd).
	Digits Predicate = unicode.IsDigit
	// LettersOrDigits matches letters and decimal digits.
	LettersOrDigits Predicate = func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }
	// Special matches everything that is neither a letter nor a decimal digit.
	Special Predicate = func(r rune) bool { return !LettersOrDigits(r) }
)

// Filter returns the characters of s accepted by keep, in order.
// Kept characters, including invalid bytes, are copied unchanged.
func Filter(s string, keep Predicate) string {
	if s == "" || keep == nil {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if keep(r) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// OnlyLetters keeps letters: "1a2b3c" -> "abc".
func OnlyLetters(s string) string { return Filter(s, Letters) }

// OnlyNumbers keeps decimal digits: "1a2b3c" -> "123".
func OnlyNumbers(s string) string { return Filter(s, Digits) }

// OnlyCharactersAndNumbers keeps letters and decimal digits.
func OnlyCharactersAndNumbers(s string) string { return Filter(s, LettersOrDigits) }

// OnlySpecialCharacters keeps everything except letters and decimal digits.
func OnlySpecialCharacters(s string) string { return Filter(s, Special) }
