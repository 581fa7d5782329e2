package coalesce_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/strext/pkg/coalesce"
)

type label string

func TestOrDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", coalesce.OrDefault("", "abc"))
	assert.Equal(t, "test value", coalesce.OrDefault("test value", "abc"))
	assert.Equal(t, label("fallback"), coalesce.OrDefault(label(""), "fallback"))
	assert.True(t, coalesce.IsEmpty(label("")))
	assert.False(t, coalesce.IsEmpty(" "))
}

func TestOrDefaultAsync(t *testing.T) {
	t.Parallel()

	t.Run("returns default when empty", func(t *testing.T) {
		t.Parallel()

		def := make(chan string, 1)
		def <- "abc"

		v, err := coalesce.OrDefaultAsync(context.Background(), "", def)
		require.NoError(t, err)
		assert.Equal(t, "abc", v)
	})

	t.Run("does not read default when value present", func(t *testing.T) {
		t.Parallel()

		def := make(chan string, 1)
		def <- "abc"

		v, err := coalesce.OrDefaultAsync(context.Background(), "test value", def)
		require.NoError(t, err)
		assert.Equal(t, "test value", v)
		assert.Len(t, def, 1)
	})

	t.Run("waits for a producer", func(t *testing.T) {
		t.Parallel()

		def := make(chan string)
		go func() {
			time.Sleep(5 * time.Millisecond)
			def <- "late"
		}()

		v, err := coalesce.OrDefaultAsync(context.Background(), "", def)
		require.NoError(t, err)
		assert.Equal(t, "late", v)
	})

	t.Run("closed channel yields empty", func(t *testing.T) {
		t.Parallel()

		def := make(chan string)
		close(def)

		v, err := coalesce.OrDefaultAsync(context.Background(), "", def)
		require.NoError(t, err)
		assert.Empty(t, v)
	})

	t.Run("context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := coalesce.OrDefaultAsync(ctx, "", make(chan string))
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestWhenEmpty(t *testing.T) {
	t.Parallel()

	calls := 0
	fn := func() string {
		calls++
		return "abc"
	}

	assert.Equal(t, "abc", coalesce.WhenEmpty("", fn))
	assert.Equal(t, "test value", coalesce.WhenEmpty("test value", fn))
	assert.Equal(t, 1, calls)
	assert.Empty(t, coalesce.WhenEmpty[string]("", nil))
}

func TestWhenEmptyAsync(t *testing.T) {
	t.Parallel()

	fn := func(context.Context) (string, error) { return "abc", nil }

	t.Run("calls producer when empty", func(t *testing.T) {
		t.Parallel()

		v, err := coalesce.WhenEmptyAsync(context.Background(), "", fn)
		require.NoError(t, err)
		assert.Equal(t, "abc", v)
	})

	t.Run("skips producer when value present", func(t *testing.T) {
		t.Parallel()

		v, err := coalesce.WhenEmptyAsync(context.Background(), "test value",
			func(context.Context) (string, error) {
				t.Fatal("producer must not run")
				return "", nil
			})
		require.NoError(t, err)
		assert.Equal(t, "test value", v)
	})

	t.Run("propagates producer error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		_, err := coalesce.WhenEmptyAsync(context.Background(), "",
			func(context.Context) (string, error) { return "", boom })
		require.ErrorIs(t, err, boom)
	})

	t.Run("done context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := coalesce.WhenEmptyAsync(ctx, "", fn)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestOnEmpty(t *testing.T) {
	t.Parallel()

	calls := 0
	act := func() { calls++ }

	coalesce.OnEmpty("", act)
	coalesce.OnEmpty("value", act)
	coalesce.OnEmpty[string]("", nil)

	assert.Equal(t, 1, calls)
}

func TestOnEmptyAsync(t *testing.T) {
	t.Parallel()

	t.Run("runs action when empty", func(t *testing.T) {
		t.Parallel()

		calls := 0
		err := coalesce.OnEmptyAsync(context.Background(), "", func(context.Context) error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("skips action when value present", func(t *testing.T) {
		t.Parallel()

		err := coalesce.OnEmptyAsync(context.Background(), "value", func(context.Context) error {
			return errors.New("must not run")
		})
		require.NoError(t, err)
	})

	t.Run("done context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := coalesce.OnEmptyAsync(ctx, "", func(context.Context) error { return nil })
		require.ErrorIs(t, err, context.Canceled)
	})
}
