package payload

import (
	"context"
	"fmt"
)

// Source is one alternative strategy in a fallback cascade.
type Source[T any] struct {
	// Name labels the source in error messages.
	Name string
	// Fetch produces the source's result. An error here is a source failure,
	// not a structural miss: the cascade records it and tries the next source.
	Fetch func(ctx context.Context) (T, error)
}

// TotalFailureError is returned when every source in a cascade failed. It
// carries the last underlying cause; all earlier failures were absorbed as
// "try next".
type TotalFailureError struct {
	Attempts int
	last     error
}

func (e *TotalFailureError) Error() string {
	return fmt.Sprintf("all %d sources failed: %v", e.Attempts, e.last)
}

func (e *TotalFailureError) Unwrap() error {
	return e.last
}

// Cascade invokes each source in order and returns the first non-empty
// result, as judged by the nonEmpty predicate. A source that errors is
// skipped; a source that cleanly returns an empty result also moves the
// cascade along but counts as a miss, not a failure. When no source yields a
// non-empty result the outcome is an empty success, unless every source
// failed, in which case a TotalFailureError wrapping the last cause is
// returned.
func Cascade[T any](ctx context.Context, nonEmpty func(T) bool, sources ...Source[T]) (T, error) {
	var zero T
	var lastErr error
	failures := 0

	for _, src := range sources {
		out, err := src.Fetch(ctx)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", src.Name, err)
			failures++
			continue
		}
		if nonEmpty(out) {
			return out, nil
		}
	}

	if failures > 0 && failures == len(sources) {
		return zero, &TotalFailureError{Attempts: failures, last: lastErr}
	}
	return zero, nil
}
