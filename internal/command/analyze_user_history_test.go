package command

import (
	"errors"
	"testing"
	"time"

	"github.com/nairobell/feed/internal/datasources/mocks"
	"github.com/nairobell/feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeUserHistory_Execute(t *testing.T) {
	t.Run("builds_profile_from_window", func(t *testing.T) {
		history := mocks.NewMockReadEventLister(t)
		history.EXPECT().
			ListReadEvents(mock.Anything, "user-1", testNow.Add(-7*24*time.Hour)).
			Return([]domain.ReadEvent{
				{ItemCategory: "sports", ItemCountries: []string{"nigeria"}, ReadAt: testNow.Add(-time.Hour)},
				{ItemCategory: "sports", ReadAt: testNow.Add(-25 * time.Hour)},
				{ItemCategory: "business", ReadAt: testNow.Add(-26 * time.Hour)},
			}, nil)

		cmd := NewAnalyzeUserHistory(history, 7*24*time.Hour)
		cmd.Clock = fixedClock()

		profile, err := cmd.Execute(testContext(), AnalyzeUserHistoryRequest{UserID: "user-1"})
		require.NoError(t, err)

		assert.Equal(t, []string{"sports", "business"}, profile.TopCategoryKeys(3))
		assert.Equal(t, []string{"nigeria"}, profile.TopCountryKeys(3))
		assert.Equal(t, 2, profile.ReadingStreakDays)
	})

	t.Run("no_history_is_default_profile", func(t *testing.T) {
		history := mocks.NewMockReadEventLister(t)
		history.EXPECT().ListReadEvents(mock.Anything, "user-1", mock.Anything).Return(nil, nil)

		cmd := NewAnalyzeUserHistory(history, 7*24*time.Hour)
		cmd.Clock = fixedClock()

		profile, err := cmd.Execute(testContext(), AnalyzeUserHistoryRequest{UserID: "user-1"})
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultUserProfile(), profile)
	})

	t.Run("storage_error", func(t *testing.T) {
		history := mocks.NewMockReadEventLister(t)
		history.EXPECT().ListReadEvents(mock.Anything, "user-1", mock.Anything).Return(nil, errors.New("database error"))

		_, err := NewAnalyzeUserHistory(history, time.Hour).Execute(testContext(), AnalyzeUserHistoryRequest{UserID: "user-1"})
		require.Error(t, err)
	})
}
