package enum

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Member is an enum-like value that knows its own name.
type Member interface {
	comparable
	String() string
}

// Option configures name matching.
type Option func(*options)

type options struct {
	ignoreCase   bool
	allowNumeric bool
}

// IgnoreCase matches names using Unicode case folding.
func IgnoreCase() Option {
	return func(o *options) {
		o.ignoreCase = true
	}
}

// AllowNumeric also accepts a decimal index into members, so "1" selects members[1].
func AllowNumeric() Option {
	return func(o *options) {
		o.allowNumeric = true
	}
}

// Lookup finds the member whose String() equals value after trimming surrounding
// whitespace. The first matching member wins. It returns the zero value and false
// when nothing matches.
func Lookup[T Member](value string, members []T, opts ...Option) (T, bool) {
	var zero T

	value = strings.TrimSpace(value)
	if value == "" || len(members) == 0 {
		return zero, false
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.ignoreCase {
		fold := cases.Fold()
		want := fold.String(value)
		for _, m := range members {
			if fold.String(m.String()) == want {
				return m, true
			}
		}
	} else {
		for _, m := range members {
			if m.String() == value {
				return m, true
			}
		}
	}

	if o.allowNumeric {
		if i, err := strconv.Atoi(value); err == nil && i >= 0 && i < len(members) {
			return members[i], true
		}
	}

	return zero, false
}

// Parse is like Lookup but returns def when nothing matches.
func Parse[T Member](value string, members []T, def T, opts ...Option) T {
	if m, ok := Lookup(value, members, opts...); ok {
		return m
	}
	return def
}
