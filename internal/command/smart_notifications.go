package command

import (
	"context"
	"fmt"

	"github.com/nairobell/feed/internal/datasources"
	"github.com/nairobell/feed/internal/domain"
)

// notificationFeedLimit is the size of the feed notifications are picked from.
const notificationFeedLimit = 5

type SmartNotificationsRequest struct {
	UserID string
}

// SmartNotifications picks the standout items of a reader's feed and
// schedules them for the hour they usually read.
type SmartNotifications struct {
	Preferences datasources.PreferencesGetter
	FeedCmd     Command[PersonalizedFeedRequest, PersonalizedFeedResponse]
	Clock       Clock
}

func NewSmartNotifications(
	preferences datasources.PreferencesGetter,
	feedCmd Command[PersonalizedFeedRequest, PersonalizedFeedResponse],
) *SmartNotifications {
	return &SmartNotifications{
		Preferences: preferences,
		FeedCmd:     feedCmd,
	}
}

func (c *SmartNotifications) Execute(ctx context.Context, req SmartNotificationsRequest) ([]domain.Notification, error) {
	prefs, err := c.Preferences.GetUserPreferences(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("getting preferences: %w", err)
	}

	if prefs.NotificationFrequency == domain.NotificationFrequencyNone {
		return []domain.Notification{}, nil
	}

	feed, err := c.FeedCmd.Execute(ctx, PersonalizedFeedRequest{
		UserID: req.UserID,
		Limit:  notificationFeedLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("building feed: %w", err)
	}

	return domain.SelectNotifications(feed.Items, feed.Profile, c.Clock.Now()), nil
}
