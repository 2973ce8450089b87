package db

import (
	"context"
	"errors"
)

// DefaultWriteAttempts bounds how often a read-modify-write is replayed after
// losing an optimistic version check.
const DefaultWriteAttempts = 3

// RetryOnStale runs fn until it returns something other than stale, the
// attempts are used up, or ctx is done. fn must reload the record itself.
func RetryOnStale(ctx context.Context, attempts int, stale error, fn func(ctx context.Context) error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		err = fn(ctx)
		if err == nil || !errors.Is(err, stale) {
			return err
		}
	}
	return err
}
