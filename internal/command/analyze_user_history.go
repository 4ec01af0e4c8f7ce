package command

import (
	"context"
	"fmt"
	"time"

	"github.com/nairobell/feed/internal/datasources"
	"github.com/nairobell/feed/internal/domain"
)

type AnalyzeUserHistoryRequest struct {
	UserID string
}

// AnalyzeUserHistory derives a reader's profile from their recent reads.
type AnalyzeUserHistory struct {
	History       datasources.ReadEventLister
	HistoryWindow time.Duration
	Clock         Clock
}

func NewAnalyzeUserHistory(history datasources.ReadEventLister, historyWindow time.Duration) *AnalyzeUserHistory {
	return &AnalyzeUserHistory{
		History:       history,
		HistoryWindow: historyWindow,
	}
}

func (c *AnalyzeUserHistory) Execute(ctx context.Context, req AnalyzeUserHistoryRequest) (domain.UserProfile, error) {
	now := c.Clock.Now()

	events, err := c.History.ListReadEvents(ctx, req.UserID, now.Add(-c.HistoryWindow))
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("listing read events: %w", err)
	}

	return domain.AnalyzeHistory(events, domain.HistoryOptions{Now: now}), nil
}
