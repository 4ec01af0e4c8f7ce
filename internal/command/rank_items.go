package command

import (
	"context"

	"github.com/nairobell/feed/internal/domain"
	"github.com/nairobell/feed/internal/metrics"
)

// RankItemsRequest carries everything needed to rank without touching
// storage. When Profile is set Events is ignored.
type RankItemsRequest struct {
	Items           []domain.Item
	Events          []domain.ReadEvent
	Profile         *domain.UserProfile
	Hint            []string
	Diversity       domain.DiversityLevel
	MinimumCount    int
	Limit           int
	InteractionRate *float64
}

// RankItems runs the ranking pipeline over caller supplied data.
type RankItems struct {
	Clock Clock
}

func NewRankItems() *RankItems {
	return &RankItems{}
}

func (c *RankItems) Execute(_ context.Context, req RankItemsRequest) (domain.PersonalizedFeed, error) {
	now := c.Clock.Now()
	opts := domain.PersonalizeOptions{
		Now:             now,
		Diversity:       req.Diversity,
		MinimumCount:    req.MinimumCount,
		Limit:           req.Limit,
		InteractionRate: req.InteractionRate,
	}

	var feed domain.PersonalizedFeed
	if req.Profile != nil {
		feed = domain.PersonalizeWithProfile(req.Items, *req.Profile, req.Hint, opts, now)
	} else {
		feed = domain.Personalize(req.Items, req.Events, req.Hint, opts)
	}

	metrics.RecordDiscardedItems(feed.Dropped, feed.Duplicates)
	if feed.Backfilled {
		metrics.RecordBackfill()
	}

	return feed, nil
}
