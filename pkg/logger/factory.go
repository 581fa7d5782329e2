package logger

import (
	"io"
	"log/slog"
	"os"
)

// Format selects the slog handler used by New.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Option configures the logger created by New.
type Option func(*options)

type options struct {
	writer     io.Writer
	format     Format
	level      slog.Leveler
	extractors []ContextExtractor
}

// WithWriter sets the log destination.
// Default: os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.writer = w
		}
	}
}

// WithFormat sets the output format (FormatJSON or FormatText).
// Default: FormatJSON.
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithLevel sets the minimum enabled level.
// Default: slog.LevelInfo.
func WithLevel(l slog.Leveler) Option {
	return func(o *options) {
		if l != nil {
			o.level = l
		}
	}
}

// WithExtractors adds context extractors applied on every log call.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		o.extractors = append(o.extractors, extractors...)
	}
}

// New creates a structured logger. JSON to stdout at INFO unless configured otherwise.
func New(opts ...Option) *slog.Logger {
	o := &options{
		writer: os.Stdout,
		format: FormatJSON,
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(o)
	}

	hopts := &slog.HandlerOptions{Level: o.level}

	var h slog.Handler
	if o.format == FormatText {
		h = slog.NewTextHandler(o.writer, hopts)
	} else {
		h = slog.NewJSONHandler(o.writer, hopts)
	}

	return slog.New(NewLogHandlerDecorator(h, o.extractors...))
}
