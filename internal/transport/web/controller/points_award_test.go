package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nairobell/feed/internal/command"
	cmdmocks "github.com/nairobell/feed/internal/command/mocks"
	"github.com/nairobell/feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPointsAward_ServeHTTP(t *testing.T) {
	award := domain.PointsAward{
		Activity:    domain.ActivityQuizCompleted,
		Points:      10,
		Bonus:       100,
		TotalPoints: 205,
		LeveledUp:   true,
		Level:       domain.LevelFor(205),
	}

	cases := []struct {
		name         string
		body         string
		setupContext func(r *http.Request) *http.Request
		wantActivity domain.Activity
		award        domain.PointsAward
		cmdErr       error
		wantStatus   int
		skipCommand  bool
	}{
		{
			name:         "successful_award",
			body:         `{"activity":"quiz_completed"}`,
			setupContext: testContextWithUserID("user-1"),
			wantActivity: domain.ActivityQuizCompleted,
			award:        award,
			wantStatus:   http.StatusOK,
		},
		{
			name:         "unknown_activity",
			body:         `{"activity":"napping"}`,
			setupContext: testContextWithUserID("user-1"),
			wantActivity: "napping",
			cmdErr:       fmt.Errorf("%w: %q", domain.ErrUnknownActivity, "napping"),
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "unauthenticated",
			body:         `{"activity":"quiz_completed"}`,
			setupContext: testContext(),
			wantStatus:   http.StatusUnauthorized,
			skipCommand:  true,
		},
		{
			name:         "malformed_body",
			body:         `activity`,
			setupContext: testContextWithUserID("user-1"),
			wantStatus:   http.StatusBadRequest,
			skipCommand:  true,
		},
		{
			name:         "ledger_error",
			body:         `{"activity":"article_read"}`,
			setupContext: testContextWithUserID("user-1"),
			wantActivity: domain.ActivityArticleRead,
			cmdErr:       errors.New("database error"),
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := cmdmocks.NewMockCommand[command.AwardPointsRequest, domain.PointsAward](t)
			if !tc.skipCommand {
				cmd.EXPECT().
					Execute(mock.Anything, command.AwardPointsRequest{UserID: "user-1", Activity: tc.wantActivity}).
					Return(tc.award, tc.cmdErr)
			}

			controller := PointsAward{Command: cmd}

			req := httptest.NewRequest(http.MethodPost, "/v1/me/points", strings.NewReader(tc.body))
			req = tc.setupContext(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				var response domain.PointsAward
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.Equal(t, tc.award, response)
			}
		})
	}
}
