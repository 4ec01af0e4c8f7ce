package command

import (
	"context"
	"errors"
	"testing"
	"time"

	cmdmocks "github.com/nairobell/feed/internal/command/mocks"
	"github.com/nairobell/feed/internal/datasources/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWarmFeeds_Execute(t *testing.T) {
	config := WarmFeedsConfig{ActiveWithin: 48 * time.Hour, Limit: 20, Concurrency: 2}
	since := testNow.Add(-48 * time.Hour)

	t.Run("counts_warmed_and_failed", func(t *testing.T) {
		users := mocks.NewMockActiveUserLister(t)
		feedCmd := cmdmocks.NewMockCommand[PersonalizedFeedRequest, PersonalizedFeedResponse](t)

		users.EXPECT().ListActiveUserIDs(mock.Anything, since).Return([]string{"u1", "u2", "u3"}, nil)
		feedCmd.EXPECT().Execute(mock.Anything, PersonalizedFeedRequest{UserID: "u1", Limit: 20}).Return(PersonalizedFeedResponse{}, nil)
		feedCmd.EXPECT().Execute(mock.Anything, PersonalizedFeedRequest{UserID: "u2", Limit: 20}).Return(PersonalizedFeedResponse{}, errors.New("database error"))
		feedCmd.EXPECT().Execute(mock.Anything, PersonalizedFeedRequest{UserID: "u3", Limit: 20}).Return(PersonalizedFeedResponse{}, nil)

		cmd := NewWarmFeeds(users, feedCmd, config)
		cmd.Clock = fixedClock()

		resp, err := cmd.Execute(testContext(), WarmFeedsRequest{})
		require.NoError(t, err)
		assert.Equal(t, WarmFeedsResponse{Users: 3, Warmed: 2, Failed: 1}, resp)
	})

	t.Run("no_active_users", func(t *testing.T) {
		users := mocks.NewMockActiveUserLister(t)
		feedCmd := cmdmocks.NewMockCommand[PersonalizedFeedRequest, PersonalizedFeedResponse](t)

		users.EXPECT().ListActiveUserIDs(mock.Anything, since).Return(nil, nil)

		cmd := NewWarmFeeds(users, feedCmd, config)
		cmd.Clock = fixedClock()

		resp, err := cmd.Execute(testContext(), WarmFeedsRequest{})
		require.NoError(t, err)
		assert.Equal(t, WarmFeedsResponse{}, resp)
	})

	t.Run("list_error", func(t *testing.T) {
		users := mocks.NewMockActiveUserLister(t)
		feedCmd := cmdmocks.NewMockCommand[PersonalizedFeedRequest, PersonalizedFeedResponse](t)

		users.EXPECT().ListActiveUserIDs(mock.Anything, since).Return(nil, errors.New("database error"))

		cmd := NewWarmFeeds(users, feedCmd, config)
		cmd.Clock = fixedClock()

		_, err := cmd.Execute(testContext(), WarmFeedsRequest{})
		require.Error(t, err)
	})

	t.Run("cancelled_context", func(t *testing.T) {
		users := mocks.NewMockActiveUserLister(t)
		feedCmd := cmdmocks.NewMockCommand[PersonalizedFeedRequest, PersonalizedFeedResponse](t)

		users.EXPECT().ListActiveUserIDs(mock.Anything, since).Return([]string{"u1"}, nil)
		feedCmd.EXPECT().Execute(mock.Anything, mock.Anything).Return(PersonalizedFeedResponse{}, context.Canceled).Maybe()

		cmd := NewWarmFeeds(users, feedCmd, config)
		cmd.Clock = fixedClock()

		ctx, cancel := context.WithCancel(testContext())
		cancel()

		_, err := cmd.Execute(ctx, WarmFeedsRequest{})
		require.ErrorIs(t, err, context.Canceled)
	})
}
