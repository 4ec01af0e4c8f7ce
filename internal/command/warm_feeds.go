package command

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/nairobell/feed/internal/datasources"
	"github.com/nairobell/feed/internal/domain"
	"github.com/nairobell/feed/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// WarmFeedsRequest is the request for the WarmFeeds command.
// This command takes no parameters beyond context.
type WarmFeedsRequest struct{}

type WarmFeedsResponse struct {
	Users  int `json:"users"`
	Warmed int `json:"warmed"`
	Failed int `json:"failed"`
}

// WarmFeedsConfig holds configuration for background feed warming.
type WarmFeedsConfig struct {
	// ActiveWithin selects users who read anything this recently.
	ActiveWithin time.Duration

	// Limit is the feed size to precompute per user.
	Limit int

	// Concurrency bounds how many feeds are built at once.
	Concurrency int
}

// WarmFeeds builds the feed of every recently active reader so their hints
// are cached before they next open the app.
type WarmFeeds struct {
	Users   datasources.ActiveUserLister
	FeedCmd Command[PersonalizedFeedRequest, PersonalizedFeedResponse]
	Config  WarmFeedsConfig
	Clock   Clock
}

// NewWarmFeeds creates a properly initialized WarmFeeds command.
func NewWarmFeeds(
	users datasources.ActiveUserLister,
	feedCmd Command[PersonalizedFeedRequest, PersonalizedFeedResponse],
	config WarmFeedsConfig,
) *WarmFeeds {
	return &WarmFeeds{
		Users:   users,
		FeedCmd: feedCmd,
		Config:  config,
	}
}

// Execute warms feeds for all recently active users. Failures for single
// users are logged and counted, and do not stop the run.
func (c *WarmFeeds) Execute(ctx context.Context, _ WarmFeedsRequest) (WarmFeedsResponse, error) {
	logger := domain.LoggerFromContext(ctx)

	userIDs, err := c.Users.ListActiveUserIDs(ctx, c.Clock.Now().Add(-c.Config.ActiveWithin))
	if err != nil {
		return WarmFeedsResponse{}, fmt.Errorf("listing active users: %w", err)
	}

	if len(userIDs) == 0 {
		logger.InfoContext(ctx, "no active users to warm feeds for")
		return WarmFeedsResponse{}, nil
	}

	logger.InfoContext(ctx, "starting feed warming", "user_count", len(userIDs))

	var warmed, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, c.Config.Concurrency))
	for _, userID := range userIDs {
		g.Go(func() error {
			_, err := c.FeedCmd.Execute(gctx, PersonalizedFeedRequest{
				UserID: userID,
				Limit:  c.Config.Limit,
			})
			if err != nil {
				logger.ErrorContext(gctx, "failed to warm feed for user", "user_id", userID, "error", err)
				failed.Add(1)
				metrics.RecordWarmedFeed(false)
				return nil
			}
			warmed.Add(1)
			metrics.RecordWarmedFeed(true)
			return nil
		})
	}
	_ = g.Wait()

	resp := WarmFeedsResponse{
		Users:  len(userIDs),
		Warmed: int(warmed.Load()),
		Failed: int(failed.Load()),
	}

	logger.InfoContext(ctx, "feed warming complete",
		"success_count", resp.Warmed, "fail_count", resp.Failed)

	if err := ctx.Err(); err != nil {
		return resp, fmt.Errorf("warming feeds: %w", err)
	}

	return resp, nil
}
