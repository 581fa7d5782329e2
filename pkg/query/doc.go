// Package query parses URL-like strings into ordered parameter maps with optional
// type coercion.
//
// It is not a general URL parser: only the text after the first '?' is read,
// fragments get no special treatment, and malformed input never produces an
// error. Broken segments degrade to empty keys or values and bad percent-escapes
// are kept literally.
//
// Basic usage:
//
//	p := query.Parse("https://example.com/list?page=2&sort=name")
//	p.String("page") // "2"
//
// # Type Coercion
//
// With AutoConvertType(true) each value is converted by the first rule that
// accepts it:
//
//  1. base-10 integer (int64)
//  2. "true" / "false", case-insensitive
//  3. invariant float: '.' decimal point, ',' thousands separators, exponent
//  4. the decoded string, unchanged
//
//	p := query.Parse("?limit=10&draft=TRUE&ratio=0.77&q=go", query.AutoConvertType(true))
//	v, _ := p.Get("limit")
//	n, _ := v.Int() // 10
//
// Digits without a decimal point always become integers, never floats.
//
// # Ordering and Duplicates
//
// Params remembers the order in which keys first appeared. When a key repeats,
// the later value wins and the key keeps its first position. Encode,
// MarshalJSON and MarshalYAML all follow that order, and
//
//	query.Parse("?" + p.Encode())
//
// reproduces p for maps parsed without coercion.
//
// # Segments With Several '='
//
// "a=b=c" yields a="b": the text after the second '=' is dropped. Pass
// KeepExtraEquals(true) to get a="b=c" instead.
package query
