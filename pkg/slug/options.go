package slug

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/strext/pkg/logger"
)

// DefaultTimeout is the matching-time budget of a single Make call.
const DefaultTimeout = 100 * time.Millisecond

// DefaultSeparator joins the words of a slug.
const DefaultSeparator = "_"

// Option configures slug generation.
type Option func(*options)

type options struct {
	logger        *slog.Logger
	replacements  map[string]string
	separator     string
	stripChars    string
	timeout       time.Duration
	maxLength     int
	lowercase     bool
	transliterate bool
	stripHTML     bool
}

func defaultOptions() *options {
	return &options{
		logger:    logger.NewNope(),
		separator: DefaultSeparator,
		timeout:   DefaultTimeout,
		lowercase: true,
	}
}

// Separator sets the string placed between words.
// Default: "_".
func Separator(sep string) Option {
	return func(o *options) {
		o.separator = sep
	}
}

// Lowercase controls invariant lowercasing of the result.
// Default: true.
func Lowercase(enabled bool) Option {
	return func(o *options) {
		o.lowercase = enabled
	}
}

// MaxLength limits the slug to n runes, trimming a dangling separator.
// Zero or negative means unlimited.
// Default: 0.
func MaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
	}
}

// StripChars removes every rune in chars before slugification.
func StripChars(chars string) Option {
	return func(o *options) {
		o.stripChars = chars
	}
}

// CustomReplace applies literal replacements before slugification.
// Longer keys are applied first.
func CustomReplace(replacements map[string]string) Option {
	return func(o *options) {
		o.replacements = replacements
	}
}

// Transliterate removes diacritics (NFD + drop non-spacing marks) before the
// ASCII pass, so "Crème" becomes "creme" rather than "cr_me".
// Default: false.
func Transliterate(enabled bool) Option {
	return func(o *options) {
		o.transliterate = enabled
	}
}

// StripHTML removes markup and unescapes entities before slugification.
// Default: false.
func StripHTML(enabled bool) Option {
	return func(o *options) {
		o.stripHTML = enabled
	}
}

// WithTimeout sets the matching-time budget of one call.
// Non-positive values are ignored.
// Default: 100ms.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithLogger sets the logger used to report budget overruns.
// If not set, or nil, a noop logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger.OrNope(l)
	}
}
