package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nairobell/feed/internal/command"
	cmdmocks "github.com/nairobell/feed/internal/command/mocks"
	"github.com/nairobell/feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRankItemsBody_ToRequest(t *testing.T) {
	published := time.Date(2024, 6, 15, 11, 30, 0, 0, time.UTC)
	engagement := 8.0

	body := RankItemsBody{
		Items: []RankItemBody{
			{ID: "a", Category: "Politics", Source: "nation", PublishedAt: "2024-06-15T11:30:00Z", EngagementScore: &engagement},
			{ID: "b", Category: "sports", Source: "punch", PublishedAt: "last tuesday"},
		},
		Events: []RankEventBody{
			{ItemCategory: "politics", ItemCountries: []string{"kenya"}, ReadAt: "2024-06-14T08:00:00Z", Completed: true},
		},
		Hint:         []string{"b", "a"},
		Diversity:    "low",
		MinimumCount: 2,
		Limit:        10,
	}

	req, err := body.toRequest()
	require.NoError(t, err)

	require.Len(t, req.Items, 2)
	assert.Equal(t, published, req.Items[0].PublishedAt)
	assert.Equal(t, &engagement, req.Items[0].EngagementScore)
	assert.True(t, req.Items[1].PublishedAt.IsZero())
	require.Len(t, req.Events, 1)
	assert.Equal(t, time.Date(2024, 6, 14, 8, 0, 0, 0, time.UTC), req.Events[0].ReadAt)
	assert.Equal(t, domain.DiversityLow, req.Diversity)
	assert.Equal(t, []string{"b", "a"}, req.Hint)
	assert.Equal(t, 2, req.MinimumCount)
	assert.Equal(t, 10, req.Limit)
	assert.Nil(t, req.Profile)
}

func TestRankItems_ServeHTTP(t *testing.T) {
	tooMany := make([]string, 0, maxRankItems+1)
	for i := 0; i <= maxRankItems; i++ {
		tooMany = append(tooMany, fmt.Sprintf(`{"id":"%d"}`, i))
	}

	result := domain.PersonalizedFeed{
		Profile: domain.DefaultUserProfile(),
		Items: []domain.RankedItem{
			{Item: domain.Item{ID: "a", Category: "politics"}, FinalScore: 5.2, Reasons: []string{}},
		},
		Dropped: 1,
	}

	cases := []struct {
		name        string
		body        string
		result      domain.PersonalizedFeed
		cmdErr      error
		wantStatus  int
		skipCommand bool
	}{
		{
			name:       "successful_rank",
			body:       `{"items":[{"id":"a","category":"politics","source":"nation","published_at":"2024-06-15T11:30:00Z"},{"id":""}],"diversity":"medium"}`,
			result:     result,
			wantStatus: http.StatusOK,
		},
		{
			name:        "malformed_body",
			body:        `{"items":`,
			wantStatus:  http.StatusBadRequest,
			skipCommand: true,
		},
		{
			name:        "unknown_diversity",
			body:        `{"items":[],"diversity":"maximum"}`,
			wantStatus:  http.StatusBadRequest,
			skipCommand: true,
		},
		{
			name:        "negative_limit",
			body:        `{"items":[],"limit":-1}`,
			wantStatus:  http.StatusBadRequest,
			skipCommand: true,
		},
		{
			name:        "too_many_items",
			body:        `{"items":[` + strings.Join(tooMany, ",") + `]}`,
			wantStatus:  http.StatusBadRequest,
			skipCommand: true,
		},
		{
			name:       "command_error",
			body:       `{"items":[]}`,
			cmdErr:     errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := cmdmocks.NewMockCommand[command.RankItemsRequest, domain.PersonalizedFeed](t)
			if !tc.skipCommand {
				cmd.EXPECT().Execute(mock.Anything, mock.Anything).Return(tc.result, tc.cmdErr)
			}

			controller := RankItems{Command: cmd}

			req := httptest.NewRequest(http.MethodPost, "/v1/rank", strings.NewReader(tc.body))
			req = testContext()(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				var response RankItemsResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				require.Len(t, response.Data, 1)
				assert.Equal(t, "a", response.Data[0].ID)
				assert.InDelta(t, 5.2, response.Data[0].FinalScore, 0.0001)
				assert.Equal(t, 1, response.Metadata.Dropped)
				assert.Equal(t, domain.DefaultUserProfile().PeakHour, response.Metadata.Profile.PeakHour)
			}
		})
	}
}
