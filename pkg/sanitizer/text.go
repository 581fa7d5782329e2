package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicy *bluemonday.Policy
	initOnce   sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// Strict policy keeps no elements. A space replaces every stripped tag so
		// "<p>a</p><p>b</p>" does not collapse into "ab".
		textPolicy = bluemonday.StrictPolicy()
		textPolicy.AddSpaceWhenStrippingTag(true)
	})
}

// StripHTML removes all markup and returns the visible text.
// Script and style bodies are dropped, entities are unescaped and runs of
// whitespace are collapsed to single spaces.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	initPolicies()
	return normalize(textPolicy.Sanitize(s))
}

// StripHTMLCustom applies a custom bluemonday policy, then unescapes entities and
// collapses whitespace like StripHTML.
// Returns input unchanged if policy is nil.
func StripHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return normalize(policy.Sanitize(s))
}

func normalize(s string) string {
	return strings.Join(strings.Fields(html.UnescapeString(s)), " ")
}
