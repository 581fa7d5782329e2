// Package strext is a collection of small string helpers: empty-string
// fallbacks, slugs, enum-name parsing, character-class filters and a
// query-string parser with optional type coercion.
//
// This package is a facade. Each helper lives in its own package under pkg/
// with the full set of options:
//
//   - pkg/coalesce: OrDefault, WhenEmpty, OnEmpty and their context-aware variants
//   - pkg/slug: slug generation with a per-call matching-time budget
//   - pkg/enum: name lookup over declared members
//   - pkg/charclass: letter / digit / special-character filters
//   - pkg/query: ordered, optionally typed query-string parsing
//   - pkg/sanitizer: markup stripping used by slug.StripHTML
//   - pkg/logger: slog construction for the WithLogger options
//
// # Quick Start
//
//	strext.OrDefault(user.Nickname, "anonymous")
//
//	s, err := strext.ToSlug("I'm a cute string")
//	// s == "i_m_a_cute_string"
//
//	p := strext.ParseQueryString("?page=2&draft=true&ratio=0.5", true)
//	v, _ := p.Get("page")
//	n, _ := v.Int() // 2
//
// # Errors
//
// Only slug generation can fail. ToSlug returns an error matching
// ErrPatternTimeout when its pattern passes exceed the 100ms budget. Everything
// else is total: empty or malformed input yields empty results.
package strext
