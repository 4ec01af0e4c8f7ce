package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nairobell/feed/internal/command"
	cmdmocks "github.com/nairobell/feed/internal/command/mocks"
	"github.com/nairobell/feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileGet_ServeHTTP(t *testing.T) {
	profile := domain.UserProfile{
		TopCategories:     []domain.CountEntry{{Key: "health", Count: 4}},
		TopCountries:      []domain.CountEntry{{Key: "zambia", Count: 2}},
		ReadingStreakDays: 3,
		EngagementScore:   7.2,
		PeakHour:          20,
		PreferredPeriod:   domain.ReadingPeriodEvening,
	}

	cases := []struct {
		name         string
		setupContext func(r *http.Request) *http.Request
		cmdErr       error
		wantStatus   int
		skipCommand  bool
	}{
		{name: "profile", setupContext: testContextWithUserID("user-1"), wantStatus: http.StatusOK},
		{name: "unauthenticated", setupContext: testContext(), wantStatus: http.StatusUnauthorized, skipCommand: true},
		{name: "command_error", setupContext: testContextWithUserID("user-1"), cmdErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := cmdmocks.NewMockCommand[command.AnalyzeUserHistoryRequest, domain.UserProfile](t)
			if !tc.skipCommand {
				cmd.EXPECT().
					Execute(mock.Anything, command.AnalyzeUserHistoryRequest{UserID: "user-1"}).
					Return(profile, tc.cmdErr)
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/me/profile", nil)
			req = tc.setupContext(req)
			rec := httptest.NewRecorder()

			ProfileGet{Command: cmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				var response domain.UserProfile
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.Equal(t, profile, response)
			}
		})
	}
}
