// Package slug generates lowercase, separator-joined ASCII slugs from arbitrary strings.
//
// The input is first re-read as ASCII (every byte outside the 7-bit range becomes a
// non-word character), then runs of whitespace and non-word characters collapse into
// a single separator. Words are ASCII letters, digits and underscores.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/strext/pkg/slug"
//
//	s, err := slug.Make("I'm a cute string")
//	// Output: "i_m_a_cute_string"
//
//	s, err = slug.Make("CRÈME BRÛLÉE")
//	// Output: "cr_me_br_l_e"
//
// # Matching-Time Budget
//
// The pattern passes of every call run under their own deadline (DefaultTimeout,
// 100ms, or WithTimeout). There is no state shared between calls, so a slow call
// never delays another one. An overrun returns a *TimeoutError that matches
// ErrPatternTimeout:
//
//	s, err := slug.Make(hugeInput)
//	if errors.Is(err, slug.ErrPatternTimeout) {
//		// input too large for the budget
//	}
//
// MakeContext additionally stops when the caller's context is done and returns
// ctx.Err() in that case.
//
// # Configuration Options
//
// Separator sets the string used between words:
//
//	slug.Make("Product Name", slug.Separator("-"))
//	// Output: "product-name"
//
// Lowercase controls case conversion:
//
//	slug.Make("Product Name", slug.Lowercase(false))
//	// Output: "Product_Name"
//
// MaxLength limits the slug length (rune-based):
//
//	slug.Make("Cut off cleanly", slug.MaxLength(7))
//	// Output: "cut_off"
//
// StripChars and CustomReplace rewrite the input before slugification:
//
//	slug.Make("Fish & Chips @ Home", slug.CustomReplace(map[string]string{"&": "and", "@": "at"}))
//	// Output: "fish_and_chips_at_home"
//
// Transliterate strips diacritics instead of turning accented letters into separators:
//
//	slug.Make("Crème Brûlée", slug.Transliterate(true))
//	// Output: "creme_brulee"
//
// StripHTML drops markup and entities first:
//
//	slug.Make("<h1>Fish &amp; Chips</h1>", slug.StripHTML(true))
//	// Output: "fish_chips"
package slug
