package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nairobell/feed/internal/command"
	cmdmocks "github.com/nairobell/feed/internal/command/mocks"
	"github.com/nairobell/feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFeedGet_ServeHTTP(t *testing.T) {
	testTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	feed := command.PersonalizedFeedResponse{
		PersonalizedFeed: domain.PersonalizedFeed{
			Profile: domain.UserProfile{
				TopCategories:     []domain.CountEntry{{Key: "politics", Count: 3}, {Key: "sports", Count: 1}},
				ReadingStreakDays: 4,
				EngagementScore:   6.5,
			},
			Items: []domain.RankedItem{
				{Item: domain.Item{ID: "a", Category: "politics", PublishedAt: testTime}, FinalScore: 7.1, Reasons: []string{domain.ReasonBreaking}},
			},
			Duplicates: 1,
			Backfilled: true,
		},
		DiversityLevel: domain.DiversityHigh,
		Candidates:     12,
		HintApplied:    true,
	}

	cases := []struct {
		name         string
		queryString  string
		setupContext func(r *http.Request) *http.Request
		wantRequest  command.PersonalizedFeedRequest
		response     command.PersonalizedFeedResponse
		cmdErr       error
		wantStatus   int
		skipCommand  bool
	}{
		{
			name:         "defaults",
			setupContext: testContextWithUserID("user-1"),
			wantRequest:  command.PersonalizedFeedRequest{UserID: "user-1"},
			response:     feed,
			wantStatus:   http.StatusOK,
		},
		{
			name:         "all_parameters",
			queryString:  "limit=5&diversity=HIGH&hint=false&category=sports&country=Nigeria",
			setupContext: testContextWithUserID("user-1"),
			wantRequest: command.PersonalizedFeedRequest{
				UserID:    "user-1",
				Limit:     5,
				Diversity: domain.DiversityHigh,
				SkipHint:  true,
				Filters: domain.ItemFilters{
					Categories: []string{"sports"},
					Countries:  []string{"nigeria"},
				},
			},
			response:   feed,
			wantStatus: http.StatusOK,
		},
		{
			name:         "unauthenticated",
			setupContext: testContext(),
			wantStatus:   http.StatusUnauthorized,
			skipCommand:  true,
		},
		{
			name:         "limit_too_large",
			queryString:  "limit=101",
			setupContext: testContextWithUserID("user-1"),
			wantStatus:   http.StatusBadRequest,
			skipCommand:  true,
		},
		{
			name:         "unknown_diversity",
			queryString:  "diversity=extreme",
			setupContext: testContextWithUserID("user-1"),
			wantStatus:   http.StatusBadRequest,
			skipCommand:  true,
		},
		{
			name:         "invalid_hint_flag",
			queryString:  "hint=maybe",
			setupContext: testContextWithUserID("user-1"),
			wantStatus:   http.StatusBadRequest,
			skipCommand:  true,
		},
		{
			name:         "command_error",
			setupContext: testContextWithUserID("user-1"),
			wantRequest:  command.PersonalizedFeedRequest{UserID: "user-1"},
			cmdErr:       errors.New("database error"),
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := cmdmocks.NewMockCommand[command.PersonalizedFeedRequest, command.PersonalizedFeedResponse](t)
			if !tc.skipCommand {
				cmd.EXPECT().Execute(mock.Anything, tc.wantRequest).Return(tc.response, tc.cmdErr)
			}

			controller := FeedGet{Command: cmd}

			req := httptest.NewRequest(http.MethodGet, "/v1/me/feed?"+tc.queryString, nil)
			req = tc.setupContext(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

				var response FeedResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.Equal(t, tc.response.Items, response.Data)
				assert.Equal(t, FeedMetadata{
					DiversityLevel: domain.DiversityHigh,
					Candidates:     12,
					Duplicates:     1,
					Backfilled:     true,
					HintApplied:    true,
					Profile: FeedProfileSummary{
						ReadingStreakDays: 4,
						TopCategories:     []string{"politics", "sports"},
						EngagementScore:   6.5,
					},
				}, response.Metadata)
			}
		})
	}
}
