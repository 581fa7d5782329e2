// Package logger builds log/slog loggers for the strext packages.
//
// Library packages never log on their own: each accepts a *slog.Logger through a
// WithLogger option and falls back to NewNope. Applications that want diagnostics
// (slug budget overruns, duplicate query keys) pass a logger built here or their own.
//
// Basic usage:
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithExtractors(logger.OperationExtractor()),
//	)
//
//	ctx := logger.WithOperation(context.Background(), "import-titles")
//	s, err := slug.MakeContext(ctx, title, slug.WithLogger(log))
//
// # Context Extractors
//
// A ContextExtractor pulls one attribute out of a context on every log call.
// NewLogHandlerDecorator wraps any slog.Handler with a set of extractors, so
// request-scoped values reach records emitted through *Context methods.
package logger
