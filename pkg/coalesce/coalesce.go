package coalesce

import "context"

// IsEmpty reports whether v is the empty string.
func IsEmpty[S ~string](v S) bool {
	return v == ""
}

// OrDefault returns v, or def when v is empty.
func OrDefault[S ~string](v, def S) S {
	if v == "" {
		return def
	}
	return v
}

// OrDefaultAsync returns v, or the first value received from def when v is empty.
// def is only read in the empty case, which makes it suitable for a result that
// is already being computed elsewhere. A closed def yields "".
func OrDefaultAsync[S ~string](ctx context.Context, v S, def <-chan S) (S, error) {
	if v != "" {
		return v, nil
	}

	select {
	case d := <-def:
		return d, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// WhenEmpty returns v, or the result of fn when v is empty.
// fn is not called when v has content. A nil fn leaves v unchanged.
func WhenEmpty[S ~string](v S, fn func() S) S {
	if v != "" || fn == nil {
		return v
	}
	return fn()
}

// WhenEmptyAsync returns v, or the result of fn when v is empty.
// fn receives ctx and is not called when v has content or ctx is already done.
func WhenEmptyAsync[S ~string](ctx context.Context, v S, fn func(context.Context) (S, error)) (S, error) {
	if v != "" || fn == nil {
		return v, nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fn(ctx)
}

// OnEmpty calls fn when v is empty.
func OnEmpty[S ~string](v S, fn func()) {
	if v == "" && fn != nil {
		fn()
	}
}

// OnEmptyAsync calls fn when v is empty and returns its error.
// Nothing runs when v has content or ctx is already done.
func OnEmptyAsync[S ~string](ctx context.Context, v S, fn func(context.Context) error) error {
	if v != "" || fn == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}
