package query

import (
	"log/slog"

	"github.com/dmitrymomot/strext/pkg/logger"
)

// Option configures Parse.
type Option func(*options)

type options struct {
	logger          *slog.Logger
	autoConvert     bool
	keepExtraEquals bool
}

func defaultOptions() *options {
	return &options{
		logger: logger.NewNope(),
	}
}

// AutoConvertType enables type coercion of values: int, then bool, then float,
// falling back to the decoded string.
// Default: false.
func AutoConvertType(enabled bool) Option {
	return func(o *options) {
		o.autoConvert = enabled
	}
}

// KeepExtraEquals keeps everything after the first '=' of a segment as its value,
// so "a=b=c" yields "b=c". By default only the text between the first and
// second '=' is kept ("b").
// Default: false.
func KeepExtraEquals(enabled bool) Option {
	return func(o *options) {
		o.keepExtraEquals = enabled
	}
}

// WithLogger sets the logger used for parse diagnostics (duplicate keys at DEBUG).
// If not set, or nil, a noop logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger.OrNope(l)
	}
}
