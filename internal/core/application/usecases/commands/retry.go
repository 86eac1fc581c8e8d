package commands

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

// DefaultMaxRetries bounds how often a transaction that lost a race is re-run.
const DefaultMaxRetries = 3

const (
	retryInitialInterval = 10 * time.Millisecond
	retryMaxInterval     = 200 * time.Millisecond
)

// withRetry runs op, re-running it with exponential backoff while it fails
// with errs.ErrConcurrentUpdate. Every other error stops immediately. When the
// retries are used up the last concurrent update error is returned, which
// callers see as a conflict.
//
// op must open its own unit of work so each attempt starts from fresh state.
func withRetry(ctx context.Context, op func() error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = retryInitialInterval
	policy.MaxInterval = retryMaxInterval
	policy.MaxElapsedTime = 0

	return backoff.Retry(func() error {
		err := op()
		if err == nil || errors.Is(err, errs.ErrConcurrentUpdate) {
			return err
		}
		return backoff.Permanent(err)
	}, backoff.WithContext(backoff.WithMaxRetries(policy, DefaultMaxRetries), ctx))
}
