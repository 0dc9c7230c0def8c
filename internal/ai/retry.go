package ai

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
	"github.com/shinyyama/astro-edit-backend/internal/reqctx"
)

const (
	DefaultMaxRetries = 3
	DefaultBaseDelay  = 2 * time.Second
)

// Backoff retries an operation only while it fails with a rate-limit error.
// Delays start at BaseDelay and double on every retry.
type Backoff struct {
	MaxRetries int
	BaseDelay  time.Duration
	// Timer overrides the sleep implementation; nil uses real time.
	Timer retry.Timer
}

func DefaultBackoff() Backoff {
	return Backoff{MaxRetries: DefaultMaxRetries, BaseDelay: DefaultBaseDelay}
}

// WithRateLimitRetry runs op, retrying rate-limited failures according to b.
// Any other failure, or the last failure once retries are exhausted, is
// returned unchanged.
func WithRateLimitRetry[T any](ctx context.Context, b Backoff, op func() (T, error)) (T, error) {
	retries := b.MaxRetries
	if retries < 0 {
		retries = 0
	}
	opts := []retry.Option{
		retry.Context(ctx),
		retry.Attempts(uint(retries) + 1),
		retry.Delay(b.BaseDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(IsRateLimit),
		retry.LastErrorOnly(true),
		// retry-go also calls OnRetry after the final failed attempt; that one
		// is not followed by a retry.
		retry.OnRetry(func(n uint, err error) {
			if n >= uint(retries) {
				return
			}
			log.Warn().
				Str("rid", reqctx.RID(ctx)).
				Str("object", reqctx.Object(ctx)).
				Str("stage", "retry").
				Uint("attempt", n+1).
				Int("max_retries", retries).
				Err(err).
				Msg("rate limited")
		}),
	}
	if b.Timer != nil {
		opts = append(opts, retry.WithTimer(b.Timer))
	}
	return retry.DoWithData(op, opts...)
}
