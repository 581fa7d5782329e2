package query

import (
	"log/slog"
	"strings"
)

// Parse extracts the query portion of input and returns its parameters.
//
// The query portion is everything after the first '?'; when input starts with
// '?' all leading '?' are dropped instead. Input without '?' yields an empty
// Params. Segments are split on '&' (empty ones skipped) and then on '=';
// a segment without '=' has an empty value. Keys and values are percent-decoded
// leniently. Parse never fails: malformed input degrades to empty keys or values.
func Parse(input string, opts ...Option) *Params {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	p := newParams()

	q, ok := extract(input)
	if !ok {
		return p
	}

	for segment := range strings.SplitSeq(q, "&") {
		if segment == "" {
			continue
		}

		rawKey, rawValue := splitSegment(segment, o.keepExtraEquals)
		key, val := decode(rawKey), decode(rawValue)

		v := StringValue(val)
		if o.autoConvert {
			v = Coerce(val)
		}

		if p.set(key, v) {
			o.logger.Debug("query: duplicate key overwritten", slog.String("key", key))
		}
	}

	return p
}

// extract returns the text after the query marker.
func extract(input string) (string, bool) {
	idx := strings.IndexByte(input, '?')
	if idx < 0 {
		return "", false
	}

	var q string
	if idx == 0 {
		q = strings.TrimLeft(input, "?")
	} else {
		q = input[idx+1:]
	}
	return q, q != ""
}

// splitSegment returns the key and value of one segment. By default the value is
// the text between the first and second '='; anything after a second '=' is dropped.
func splitSegment(segment string, keepExtra bool) (string, string) {
	if keepExtra {
		key, value, _ := strings.Cut(segment, "=")
		return key, value
	}

	parts := strings.SplitN(segment, "=", 3)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
