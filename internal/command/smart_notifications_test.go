package command

import (
	"errors"
	"testing"
	"time"

	cmdmocks "github.com/nairobell/feed/internal/command/mocks"
	"github.com/nairobell/feed/internal/datasources/mocks"
	"github.com/nairobell/feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSmartNotifications_Execute(t *testing.T) {
	feed := PersonalizedFeedResponse{
		PersonalizedFeed: domain.PersonalizedFeed{
			Profile: domain.UserProfile{PeakHour: 18},
			Items: []domain.RankedItem{
				{Item: domain.Item{ID: "a", Title: " Floods in Accra ", Category: "general"}, FinalScore: 8.4},
				{Item: domain.Item{ID: "b", Category: "sports"}, FinalScore: 7.5},
				{Item: domain.Item{ID: "c", Category: "business"}, FinalScore: 7.9},
				{Item: domain.Item{ID: "d", Category: "health"}, FinalScore: 9.1},
				{Item: domain.Item{ID: "e", Category: "politics"}, FinalScore: 8.0},
			},
		},
	}

	cases := []struct {
		name      string
		frequency domain.NotificationFrequency
		prefsErr  error
		feedErr   error
		wantIDs   []string
		wantErr   bool
		skipFeed  bool
	}{
		{
			name:      "daily_picks_top_three_over_threshold",
			frequency: domain.NotificationFrequencyDaily,
			wantIDs:   []string{"a", "c", "d"},
		},
		{
			name:      "frequency_none",
			frequency: domain.NotificationFrequencyNone,
			wantIDs:   []string{},
			skipFeed:  true,
		},
		{
			name:     "preferences_error",
			prefsErr: errors.New("database error"),
			wantErr:  true,
			skipFeed: true,
		},
		{
			name:      "feed_error",
			frequency: domain.NotificationFrequencyRealtime,
			feedErr:   errors.New("database error"),
			wantErr:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prefs := mocks.NewMockPreferencesGetter(t)
			feedCmd := cmdmocks.NewMockCommand[PersonalizedFeedRequest, PersonalizedFeedResponse](t)

			prefs.EXPECT().
				GetUserPreferences(mock.Anything, "user-1").
				Return(domain.UserPreferences{NotificationFrequency: tc.frequency}, tc.prefsErr)

			if !tc.skipFeed {
				feedCmd.EXPECT().
					Execute(mock.Anything, PersonalizedFeedRequest{UserID: "user-1", Limit: notificationFeedLimit}).
					Return(feed, tc.feedErr)
			}

			cmd := NewSmartNotifications(prefs, feedCmd)
			cmd.Clock = fixedClock()

			got, err := cmd.Execute(testContext(), SmartNotificationsRequest{UserID: "user-1"})
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			ids := make([]string, 0, len(got))
			for _, n := range got {
				ids = append(ids, n.ItemID)
				assert.Equal(t, time.Date(2024, 6, 15, 18, 0, 0, 0, time.UTC), n.ScheduledAt)
			}
			assert.Equal(t, tc.wantIDs, ids)

			if len(got) > 0 {
				assert.Equal(t, "Floods in Accra", got[0].Title)
			}
		})
	}
}
