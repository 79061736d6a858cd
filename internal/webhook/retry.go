package webhook

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/quotienthq/quotient-api/internal/services"
)

// RetryPolicy wraps handler invocation in exponential backoff with a fixed
// attempt cap. It is decoupled from the handlers themselves; the router owns
// the single policy applied to every dispatch.
type RetryPolicy struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

// DefaultRetryPolicy returns the standard three-attempt policy.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     3,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     2 * time.Second,
		Multiplier:      2.0,
	}
}

// Execute runs op with exponential backoff until it succeeds, the attempt cap
// is reached, or the context is canceled. Errors classified as non-retryable
// abort immediately. notify is invoked after each failed attempt before the
// backoff wait; it may be nil.
func (p RetryPolicy) Execute(ctx context.Context, op func(context.Context) error, notify func(error, time.Duration)) error {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = p.InitialInterval
	expBackoff.MaxInterval = p.MaxInterval
	expBackoff.Multiplier = p.Multiplier

	operation := func() error {
		err := op(ctx)
		if err != nil && !services.IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(expBackoff, uint64(p.MaxAttempts-1)), ctx)

	if notify == nil {
		return backoff.Retry(operation, policy)
	}
	return backoff.RetryNotify(operation, policy, notify)
}
