package helper

import (
	"errors"
	"fmt"
)

// GetTypedValueOf2 asserts the result of a lookup function to the expected type T.
// ok is false when the lookup misses or the value is not a T.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}

var ErrMaxAttempts = errors.New("max attempts reached")

// Retry calls fn until it succeeds or maxAttempts calls have failed.
func Retry(maxAttempts int, fn func() error) error {
	return RetryIf(maxAttempts, func(error) bool { return true }, fn)
}

// RetryIf is Retry that gives up early on errors retryable rejects,
// returning them unwrapped.
func RetryIf(maxAttempts int, retryable func(error) bool, fn func() error) error {
	numAttempts := 0
	for {
		err := fn()
		if err == nil {
			return nil
		}
		numAttempts++
		if !retryable(err) {
			return err
		}
		if numAttempts >= maxAttempts {
			return fmt.Errorf("%w: %d, %w", ErrMaxAttempts, numAttempts, err)
		}
	}
}
