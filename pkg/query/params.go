package query

import (
	"bytes"
	"encoding/json"
	"iter"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Params is an ordered map of query parameters. Keys keep the position of their
// first occurrence; a repeated key overwrites the value. Params returned by Parse
// are never modified afterwards and are safe for concurrent reads.
type Params struct {
	values map[string]Value
	keys   []string
}

func newParams() *Params {
	return &Params{values: make(map[string]Value)}
}

// set stores v under key and reports whether an earlier value was replaced.
func (p *Params) set(key string, v Value) bool {
	_, exists := p.values[key]
	if !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = v
	return exists
}

// Len returns the number of distinct keys.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Get returns the value stored under key.
func (p *Params) Get(key string) (Value, bool) {
	if p == nil {
		return Value{}, false
	}
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key is present.
func (p *Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// String returns the raw decoded text under key, or "" when absent.
func (p *Params) String(key string) string {
	v, _ := p.Get(key)
	return v.Raw()
}

// Keys returns the keys in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	return slices.Clone(p.keys)
}

// All iterates over key/value pairs in insertion order.
func (p *Params) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if p == nil {
			return
		}
		for _, k := range p.keys {
			if !yield(k, p.values[k]) {
				return
			}
		}
	}
}

// Map returns an unordered copy with payloads as int64, bool, float64 or string.
func (p *Params) Map() map[string]any {
	m := make(map[string]any, p.Len())
	for k, v := range p.All() {
		m[k] = v.Any()
	}
	return m
}

// Encode serializes the parameters as "k=v&k2=v2" in insertion order, escaping
// keys and raw values with url.QueryEscape. Parsing "?" + Encode() without
// coercion yields the same keys and raw values.
func (p *Params) Encode() string {
	var b strings.Builder
	for k, v := range p.All() {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(v.Raw()))
	}
	return b.String()
}

// MarshalJSON encodes the parameters as a JSON object in insertion order.
func (p *Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for k, v := range p.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := v.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the parameters as a YAML mapping in insertion order with
// typed scalars.
func (p *Params) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range p.All() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			yamlScalar(v),
		)
	}
	return node, nil
}

func yamlScalar(v Value) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode}
	switch v.Kind() {
	case KindInt:
		n.Tag, n.Value = "!!int", strconv.FormatInt(v.i, 10)
	case KindBool:
		n.Tag, n.Value = "!!bool", strconv.FormatBool(v.b)
	case KindFloat:
		n.Tag = "!!float"
		switch {
		case math.IsNaN(v.f):
			n.Value = ".nan"
		case math.IsInf(v.f, 1):
			n.Value = ".inf"
		case math.IsInf(v.f, -1):
			n.Value = "-.inf"
		default:
			n.Value = strconv.FormatFloat(v.f, 'g', -1, 64)
		}
	default:
		n.Tag, n.Value = "!!str", v.Raw()
	}
	return n
}
