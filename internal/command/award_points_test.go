package command

import (
	"errors"
	"testing"

	"github.com/nairobell/feed/internal/datasources/mocks"
	"github.com/nairobell/feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAwardPoints_Execute(t *testing.T) {
	type ledgerCall struct {
		delta int64
		total int64
		err   error
	}

	cases := []struct {
		name     string
		activity domain.Activity
		calls    []ledgerCall
		want     domain.PointsAward
		wantErr  error
		anyErr   bool
	}{
		{
			name:     "no_level_up",
			activity: domain.ActivityArticleRead,
			calls:    []ledgerCall{{delta: 2, total: 50}},
			want: domain.PointsAward{
				Activity:    domain.ActivityArticleRead,
				Points:      2,
				TotalPoints: 50,
				Level:       domain.LevelFor(50),
			},
		},
		{
			name:     "crossing_into_level_two_grants_bonus",
			activity: domain.ActivityQuizCompleted,
			calls: []ledgerCall{
				{delta: 10, total: 105},
				{delta: 100, total: 205},
			},
			want: domain.PointsAward{
				Activity:    domain.ActivityQuizCompleted,
				Points:      10,
				Bonus:       100,
				TotalPoints: 205,
				LeveledUp:   true,
				Level:       domain.LevelFor(205),
			},
		},
		{
			name:     "landing_exactly_on_threshold",
			activity: domain.ActivityCitizenReportVerified,
			calls: []ledgerCall{
				{delta: 100, total: 250},
				{delta: 150, total: 400},
			},
			want: domain.PointsAward{
				Activity:    domain.ActivityCitizenReportVerified,
				Points:      100,
				Bonus:       150,
				TotalPoints: 400,
				LeveledUp:   true,
				Level:       domain.LevelFor(400),
			},
		},
		{
			name:     "unknown_activity",
			activity: "sleeping",
			wantErr:  domain.ErrUnknownActivity,
		},
		{
			name:     "ledger_error",
			activity: domain.ActivityArticleShared,
			calls:    []ledgerCall{{delta: 5, err: errors.New("database error")}},
			anyErr:   true,
		},
		{
			name:     "bonus_error",
			activity: domain.ActivityArticleShared,
			calls: []ledgerCall{
				{delta: 5, total: 101},
				{delta: 100, err: errors.New("database error")},
			},
			anyErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ledger := mocks.NewMockPointsLedger(t)
			for _, call := range tc.calls {
				ledger.EXPECT().AddPoints(mock.Anything, "user-1", call.delta).Return(call.total, call.err).Once()
			}

			cmd := NewAwardPoints(ledger)
			got, err := cmd.Execute(testContext(), AwardPointsRequest{UserID: "user-1", Activity: tc.activity})

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			if tc.anyErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
