package modeladapter

import (
	"context"
	"errors"
)

// ErrNoResult is returned when a result channel closes without delivering a
// Result.
var ErrNoResult = errors.New("modeladapter: result channel closed without a result")

// Result is the outcome of an asynchronous generation.
type Result struct {
	Text string
	Err  error
}

// Go runs fn on a new goroutine and delivers exactly one Result on the
// returned channel. The channel is buffered so the goroutine never leaks when
// the caller stops listening.
func Go(ctx context.Context, fn func(ctx context.Context) (string, error)) <-chan Result {
	ch := make(chan Result, 1)

	go func() {
		defer close(ch)

		text, err := fn(ctx)
		ch <- Result{Text: text, Err: err}
	}()

	return ch
}

// Await blocks until ch delivers a Result or ctx is done.
func Await(ctx context.Context, ch <-chan Result) (string, error) {
	select {
	case res, ok := <-ch:
		if !ok {
			return "", ErrNoResult
		}
		return res.Text, res.Err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
