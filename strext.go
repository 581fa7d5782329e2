package strext

import (
	"context"

	"github.com/dmitrymomot/strext/pkg/charclass"
	"github.com/dmitrymomot/strext/pkg/coalesce"
	"github.com/dmitrymomot/strext/pkg/enum"
	"github.com/dmitrymomot/strext/pkg/query"
	"github.com/dmitrymomot/strext/pkg/slug"
)

// Type aliases - public API
type (
	// QueryParams is the ordered result of ParseQueryString.
	QueryParams = query.Params

	// QueryValue is one decoded, optionally coerced, query value.
	QueryValue = query.Value

	// QueryKind identifies the variant held by a QueryValue.
	QueryKind = query.Kind

	// EnumMember is an enum-like value that knows its own name.
	EnumMember = enum.Member

	// SlugTimeoutError describes a slug budget overrun.
	SlugTimeoutError = slug.TimeoutError
)

// Query value kinds.
const (
	KindString = query.KindString
	KindInt    = query.KindInt
	KindBool   = query.KindBool
	KindFloat  = query.KindFloat
)

// ErrPatternTimeout is returned by ToSlug when slug generation exceeds its budget.
var ErrPatternTimeout = slug.ErrPatternTimeout

// OrDefault returns value, or def when value is empty.
func OrDefault(value, def string) string {
	return coalesce.OrDefault(value, def)
}

// OrDefaultAsync returns value, or the result received from def when value is empty.
func OrDefaultAsync(ctx context.Context, value string, def <-chan string) (string, error) {
	return coalesce.OrDefaultAsync(ctx, value, def)
}

// WhenNullOrEmpty returns value, or the result of fn when value is empty.
func WhenNullOrEmpty(value string, fn func() string) string {
	return coalesce.WhenEmpty(value, fn)
}

// WhenNullOrEmptyAsync returns value, or the result of fn when value is empty.
func WhenNullOrEmptyAsync(ctx context.Context, value string, fn func(context.Context) (string, error)) (string, error) {
	return coalesce.WhenEmptyAsync(ctx, value, fn)
}

// OnNullOrEmpty calls fn when value is empty.
func OnNullOrEmpty(value string, fn func()) {
	coalesce.OnEmpty(value, fn)
}

// OnNullOrEmptyAsync calls fn when value is empty.
func OnNullOrEmptyAsync(ctx context.Context, value string, fn func(context.Context) error) error {
	return coalesce.OnEmptyAsync(ctx, value, fn)
}

// ToSlug turns value into a lowercase, underscore-joined ASCII slug.
// See slug.Make for options.
func ToSlug(value string) (string, error) {
	return slug.Make(value)
}

// ToSlugContext is like ToSlug but also stops when ctx is done.
func ToSlugContext(ctx context.Context, value string) (string, error) {
	return slug.MakeContext(ctx, value)
}

// ToEnum returns the member named value, or def when none matches.
// Pass the zero value of T as def when there is no meaningful default.
func ToEnum[T EnumMember](value string, members []T, def T) T {
	return enum.Parse(value, members, def)
}

// LookupEnum returns the member named value and true, or the zero value of T
// and false when none matches.
func LookupEnum[T EnumMember](value string, members []T) (T, bool) {
	return enum.Lookup(value, members)
}

// OnlyLetters keeps the letters of value.
func OnlyLetters(value string) string {
	return charclass.OnlyLetters(value)
}

// OnlyNumbers keeps the decimal digits of value.
func OnlyNumbers(value string) string {
	return charclass.OnlyNumbers(value)
}

// OnlyCharactersAndNumbers keeps the letters and decimal digits of value.
func OnlyCharactersAndNumbers(value string) string {
	return charclass.OnlyCharactersAndNumbers(value)
}

// OnlySpecialCharacters keeps everything except letters and decimal digits.
func OnlySpecialCharacters(value string) string {
	return charclass.OnlySpecialCharacters(value)
}

// ParseQueryString parses the query portion of value. With autoConvertType each
// value becomes an int, bool, float or string, in that order of preference.
func ParseQueryString(value string, autoConvertType bool) *QueryParams {
	return query.Parse(value, query.AutoConvertType(autoConvertType))
}
