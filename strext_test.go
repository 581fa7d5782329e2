package strext_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strext"
)

type fakeEnum int

const (
	value1 fakeEnum = iota
	value2
)

func (f fakeEnum) String() string {
	if f == value2 {
		return "Value2"
	}
	return "Value1"
}

func TestCoalescing(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", strext.OrDefault("", "abc"))
	assert.Equal(t, "x", strext.OrDefault("x", "abc"))
	assert.Equal(t, "abc", strext.WhenNullOrEmpty("", func() string { return "abc" }))

	def := make(chan string, 1)
	def <- "abc"
	v, err := strext.OrDefaultAsync(context.Background(), "", def)
	require.NoError(t, err)
	assert.Equal(t, "abc", v)

	v, err = strext.WhenNullOrEmptyAsync(context.Background(), "", func(context.Context) (string, error) {
		return "abc", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", v)

	calls := 0
	strext.OnNullOrEmpty("", func() { calls++ })
	require.NoError(t, strext.OnNullOrEmptyAsync(context.Background(), "", func(context.Context) error {
		calls++
		return nil
	}))
	assert.Equal(t, 2, calls)
}

func TestToSlug(t *testing.T) {
	t.Parallel()

	s, err := strext.ToSlug("")
	require.NoError(t, err)
	assert.Empty(t, s)

	s, err = strext.ToSlug(`I'm a cute string/""\/`)
	require.NoError(t, err)
	assert.Equal(t, "i_m_a_cute_string", s)

	s, err = strext.ToSlugContext(context.Background(), "ICH MUß EINIGE CRÈME BRÛLÉE HABEN")
	require.NoError(t, err)
	assert.Equal(t, "ich_mu_einige_cr_me_br_l_e_haben", s)

	_, err = strext.ToSlug(strings.Repeat("a", 10_000_000))
	require.ErrorIs(t, err, strext.ErrPatternTimeout)

	var te *strext.SlugTimeoutError
	require.ErrorAs(t, err, &te)
}

func TestToEnum(t *testing.T) {
	t.Parallel()

	members := []fakeEnum{value1, value2}

	assert.Equal(t, value1, strext.ToEnum("Value1", members, value2))
	assert.Equal(t, value2, strext.ToEnum("Invalid", members, value2))

	var zero fakeEnum
	assert.Equal(t, value1, strext.ToEnum("Invalid", members, zero))

	got, ok := strext.LookupEnum("Value2", members)
	require.True(t, ok)
	assert.Equal(t, value2, got)

	got, ok = strext.LookupEnum("Invalid", members)
	assert.False(t, ok)
	assert.Equal(t, zero, got)
}

func TestCharacterFilters(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abcde", strext.OnlyLetters("1a2b3c4d5e"))
	assert.Equal(t, "12345", strext.OnlyNumbers("1a2b3c4d5e"))
	assert.Equal(t, "1280a129abc", strext.OnlyCharactersAndNumbers("12.8/0';@#!%^&*()a12,9abc"))
	assert.Equal(t, "./';@#!%^&*(),", strext.OnlySpecialCharacters("12.8/0';@#!%^&*()a12,9abc"))
	assert.Empty(t, strext.OnlyLetters(""))
}

func TestParseQueryString(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "not a valid url", "?", " "} {
		assert.Equal(t, 0, strext.ParseQueryString(in, false).Len(), in)
	}

	p := strext.ParseQueryString("?variable1=true", true)
	v, ok := p.Get("variable1")
	require.True(t, ok)
	assert.Equal(t, strext.KindBool, v.Kind())

	p = strext.ParseQueryString("?variable1=1", true)
	v, _ = p.Get("variable1")
	assert.Equal(t, strext.KindInt, v.Kind())

	p = strext.ParseQueryString("?variable1=0.77", true)
	v, _ = p.Get("variable1")
	assert.Equal(t, strext.KindFloat, v.Kind())

	p = strext.ParseQueryString("?variable1=test", true)
	v, _ = p.Get("variable1")
	assert.Equal(t, strext.KindString, v.Kind())
	assert.Equal(t, "test", v.Raw())

	p = strext.ParseQueryString("?not a valid url&&&&&=value", false)
	assert.Equal(t, map[string]any{"not a valid url": "", "": "value"}, p.Map())
}
