package app

import (
	"context"
	"time"

	"github.com/nairobell/feed/internal/command"
	"github.com/nairobell/feed/internal/domain"
)

// FeedWarmer runs the warm feeds command on a fixed interval until its
// context is cancelled. A failed run is logged and retried on the next tick.
type FeedWarmer struct {
	Command  command.Command[command.WarmFeedsRequest, command.WarmFeedsResponse]
	Interval time.Duration
}

func (w *FeedWarmer) Run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx).With("component", "feed_warmer")
	ctx = domain.ContextWithLogger(ctx, logger)

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		if ctx.Err() != nil {
			return nil
		}

		resp, err := w.Command.Execute(ctx, command.WarmFeedsRequest{})
		if err != nil {
			logger.ErrorContext(ctx, "feed warming run failed", "error", err)
			continue
		}
		logger.DebugContext(ctx, "feed warming run finished",
			"users", resp.Users, "warmed", resp.Warmed, "failed", resp.Failed)
	}
}
