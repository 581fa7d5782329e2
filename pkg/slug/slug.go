package slug

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/strext/pkg/sanitizer"
)

var (
	// Runs of 2+ whitespace and single non-word characters both become one space.
	// Character classes are spelled out to keep \s and \w ASCII-only.
	nonWord = regexp.MustCompile(`[\t\n\v\f\r ]{2,}|[^0-9A-Za-z_]`)
	spaces  = regexp.MustCompile(`[\t\n\v\f\r ]+`)
)

// Make converts text into a slug using a fresh DefaultTimeout budget.
func Make(text string, opts ...Option) (string, error) {
	return MakeContext(context.Background(), text, opts...)
}

// MakeContext is like Make but also stops when ctx is done.
// A budget overrun returns a *TimeoutError matching ErrPatternTimeout; a done
// parent context returns ctx.Err().
func MakeContext(ctx context.Context, text string, opts ...Option) (string, error) {
	if text == "" {
		return "", nil
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	s, err := build(callCtx, prepare(text, o), o)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if errors.Is(err, context.DeadlineExceeded) {
			o.logger.WarnContext(ctx, "slug pattern timeout",
				slog.Duration("timeout", o.timeout),
				slog.Int("input_len", len(text)),
			)
			return "", &TimeoutError{Timeout: o.timeout, InputLen: len(text)}
		}
		return "", err
	}
	return s, nil
}

// Must is like Make but panics on error.
func Must(text string, opts ...Option) string {
	s, err := Make(text, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// prepare runs the optional rewrites and the ASCII pass.
func prepare(text string, o *options) string {
	if o.stripHTML {
		text = sanitizer.StripHTML(text)
	}
	if len(o.replacements) > 0 {
		text = replaceAll(text, o.replacements)
	}
	if o.stripChars != "" {
		text = strings.Map(func(r rune) rune {
			if strings.ContainsRune(o.stripChars, r) {
				return -1
			}
			return r
		}, text)
	}
	if o.transliterate {
		t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		if out, _, err := transform.String(t, text); err == nil {
			text = out
		}
	}
	return toASCII(text)
}

// build runs the budgeted pattern passes and the final casing/truncation.
func build(ctx context.Context, text string, o *options) (string, error) {
	s, err := replace(ctx, nonWord, text, " ")
	if err != nil {
		return "", err
	}
	s = strings.Trim(s, " ")

	s, err = replace(ctx, spaces, s, o.separator)
	if err != nil {
		return "", err
	}

	if o.lowercase {
		s = cases.Lower(language.Und).String(s)
	}
	if o.maxLength > 0 {
		s = truncate(s, o.maxLength, o.separator)
	}
	return s, nil
}

// chunkSize bounds the work done between two budget checks.
const chunkSize = 64 << 10

// replace runs one pattern pass over s in chunks, checking ctx before each one,
// so an expired call stops within one chunk and leaves nothing running.
//
// Both patterns turn a whole whitespace run into a single repl. A cut between two
// whitespace bytes makes each side emit its own repl, so the second one is dropped.
func replace(ctx context.Context, re *regexp.Regexp, s, repl string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))

	splitRun := false
	for len(s) > 0 {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		n := min(chunkSize, len(s))
		for n < len(s) && !utf8.RuneStart(s[n]) {
			n++
		}

		out := re.ReplaceAllLiteralString(s[:n], repl)
		if splitRun {
			out = strings.TrimPrefix(out, repl)
		}
		b.WriteString(out)

		splitRun = n < len(s) && isSpace(s[n-1]) && isSpace(s[n])
		s = s[n:]
	}
	return b.String(), nil
}

// isSpace matches the whitespace class used by both patterns.
func isSpace(c byte) bool {
	switch c {
	case '\t', '\n', '\v', '\f', '\r', ' ':
		return true
	}
	return false
}

// toASCII re-reads the UTF-8 bytes of s as ASCII: every byte outside the
// 7-bit range becomes '?', which the non-word pass turns into a separator.
func toASCII(s string) string {
	i := 0
	for i < len(s) && s[i] < utf8.RuneSelf {
		i++
	}
	if i == len(s) {
		return s
	}

	b := []byte(s)
	for ; i < len(b); i++ {
		if b[i] >= utf8.RuneSelf {
			b[i] = '?'
		}
	}
	return string(b)
}

func replaceAll(s string, replacements map[string]string) string {
	keys := make([]string, 0, len(replacements))
	for k := range replacements {
		if k != "" {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, replacements[k])
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

func truncate(s string, n int, sep string) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	s = string([]rune(s)[:n])
	if sep == "" {
		return s
	}
	for strings.HasSuffix(s, sep) {
		s = strings.TrimSuffix(s, sep)
	}
	return s
}
