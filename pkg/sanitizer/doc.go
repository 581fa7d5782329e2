// Package sanitizer turns markup into plain text.
//
// It backs the slug.StripHTML option: titles copied from rich-text editors often
// carry tags and entities that would otherwise leak into slugs as words like
// "amp" or "strong".
//
//	sanitizer.StripHTML(`<p>Fish &amp; <b>Chips</b></p>`)
//	// Output: "Fish & Chips"
package sanitizer
