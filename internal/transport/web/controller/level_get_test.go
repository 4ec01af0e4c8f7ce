package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/nairobell/feed/internal/command"
	cmdmocks "github.com/nairobell/feed/internal/command/mocks"
	"github.com/nairobell/feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserLevelGet_ServeHTTP(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		cmd := cmdmocks.NewMockCommand[command.GetUserLevelRequest, command.GetUserLevelResponse](t)
		cmd.EXPECT().
			Execute(mock.Anything, command.GetUserLevelRequest{UserID: "user-1"}).
			Return(command.GetUserLevelResponse{TotalPoints: 250, Level: domain.LevelFor(250)}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/me/level", nil)
		req = testContextWithUserID("user-1")(req)
		rec := httptest.NewRecorder()

		UserLevelGet{Command: cmd}.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var response command.GetUserLevelResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, int64(250), response.TotalPoints)
		assert.Equal(t, 3, response.Level.Level)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		cmd := cmdmocks.NewMockCommand[command.GetUserLevelRequest, command.GetUserLevelResponse](t)

		req := httptest.NewRequest(http.MethodGet, "/v1/me/level", nil)
		req = testContext()(req)
		rec := httptest.NewRecorder()

		UserLevelGet{Command: cmd}.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("command_error", func(t *testing.T) {
		cmd := cmdmocks.NewMockCommand[command.GetUserLevelRequest, command.GetUserLevelResponse](t)
		cmd.EXPECT().Execute(mock.Anything, mock.Anything).Return(command.GetUserLevelResponse{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/v1/me/level", nil)
		req = testContextWithUserID("user-1")(req)
		rec := httptest.NewRecorder()

		UserLevelGet{Command: cmd}.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestLevelLookup_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		points     string
		wantStatus int
		wantLevel  domain.Level
	}{
		{
			name:       "zero",
			points:     "0",
			wantStatus: http.StatusOK,
			wantLevel:  domain.Level{Level: 1, PointsIntoLevel: 0, PointsToNext: 100, ProgressPercent: 0, LevelRequirement: 100},
		},
		{
			name:       "second_level",
			points:     "150",
			wantStatus: http.StatusOK,
			wantLevel:  domain.Level{Level: 2, PointsIntoLevel: 50, PointsToNext: 100, ProgressPercent: 33, LevelRequirement: 150},
		},
		{
			name:       "fractional_floored",
			points:     "99.9",
			wantStatus: http.StatusOK,
			wantLevel:  domain.Level{Level: 1, PointsIntoLevel: 99, PointsToNext: 1, ProgressPercent: 99, LevelRequirement: 100},
		},
		{
			name:       "negative_is_zero",
			points:     "-40",
			wantStatus: http.StatusOK,
			wantLevel:  domain.Level{Level: 1, PointsIntoLevel: 0, PointsToNext: 100, ProgressPercent: 0, LevelRequirement: 100},
		},
		{
			name:       "not_a_number",
			points:     "lots",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/levels/"+tc.points, nil)
			req = mux.SetURLVars(req, map[string]string{"points": tc.points})
			req = testContext()(req)
			rec := httptest.NewRecorder()

			LevelLookup{CacheMaxAge: 24 * time.Hour}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, "max-age=86400", rec.Header().Get("Cache-Control"))
				var response domain.Level
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.Equal(t, tc.wantLevel, response)
			}
		})
	}
}
