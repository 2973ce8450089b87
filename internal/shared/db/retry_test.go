package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errStale = errors.New("stale")

func TestRetryOnStale(t *testing.T) {
	other := errors.New("boom")

	tests := []struct {
		name      string
		results   []error
		wantErr   error
		wantCalls int
	}{
		{"first try succeeds", []error{nil}, nil, 1},
		{"succeeds after a conflict", []error{errStale, nil}, nil, 2},
		{"gives up after attempts", []error{errStale, errStale, errStale}, errStale, 3},
		{"other errors are not retried", []error{other}, other, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := RetryOnStale(context.Background(), DefaultWriteAttempts, errStale, func(context.Context) error {
				err := tt.results[calls]
				calls++
				return err
			})
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}

func TestRetryOnStale_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := RetryOnStale(ctx, 3, errStale, func(context.Context) error {
		calls++
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}
