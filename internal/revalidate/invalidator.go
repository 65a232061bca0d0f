package revalidate

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Invalidator marks cached views as stale. Marking a key twice has the same
// effect as marking it once.
type Invalidator interface {
	MarkStale(ctx context.Context, keys ...Key) error
}

// Multi fans keys out to every invalidator concurrently. All targets are
// attempted; the first error is returned.
type Multi []Invalidator

func (m Multi) MarkStale(ctx context.Context, keys ...Key) error {
	var eg errgroup.Group
	for _, inv := range m {
		target := inv
		eg.Go(func() error {
			return target.MarkStale(ctx, keys...)
		})
	}
	return eg.Wait()
}

// DefaultNotifyTimeout bounds a Notify call when no timeout is given.
const DefaultNotifyTimeout = 5 * time.Second

// Notify delivers keys after a successful write. A failure is logged and
// counted but never reported to the caller: the write has already happened.
// Delivery ignores cancellation of ctx but gives up after timeout, or
// DefaultNotifyTimeout when timeout is not positive.
func Notify(ctx context.Context, inv Invalidator, timeout time.Duration, logger *slog.Logger, op string, keys []Key) {
	if inv == nil || len(keys) == 0 {
		return
	}
	if timeout <= 0 {
		timeout = DefaultNotifyTimeout
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	keys = Dedupe(keys)
	start := time.Now()
	err := inv.MarkStale(ctx, keys...)
	recordRevalidation(op, len(keys), time.Since(start), err)
	if err != nil {
		logger.Error("revalidation failed",
			slog.String("op", op),
			slog.String("keys", Strings(keys)),
			slog.Any("error", err))
		return
	}
	logger.Debug("revalidated",
		slog.String("op", op),
		slog.String("keys", Strings(keys)))
}
