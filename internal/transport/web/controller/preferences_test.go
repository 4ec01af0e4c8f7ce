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
	"github.com/nairobell/feed/internal/datasources/mocks"
	"github.com/nairobell/feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPreferencesGet_ServeHTTP(t *testing.T) {
	stored := domain.UserPreferences{
		DiversityLevel:        domain.DiversityLow,
		PreferredCategories:   []string{"sports"},
		PreferredCountries:    []string{"ghana"},
		NotificationFrequency: domain.NotificationFrequencyRealtime,
	}

	cases := []struct {
		name         string
		setupContext func(r *http.Request) *http.Request
		prefs        domain.UserPreferences
		getErr       error
		wantStatus   int
		skipGet      bool
	}{
		{
			name:         "stored_preferences",
			setupContext: testContextWithUserID("user-1"),
			prefs:        stored,
			wantStatus:   http.StatusOK,
		},
		{
			name:         "unauthenticated",
			setupContext: testContext(),
			wantStatus:   http.StatusUnauthorized,
			skipGet:      true,
		},
		{
			name:         "database_error",
			setupContext: testContextWithUserID("user-1"),
			getErr:       errors.New("database error"),
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			getter := mocks.NewMockPreferencesGetter(t)
			if !tc.skipGet {
				getter.EXPECT().GetUserPreferences(mock.Anything, "user-1").Return(tc.prefs, tc.getErr)
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/me/preferences", nil)
			req = tc.setupContext(req)
			rec := httptest.NewRecorder()

			PreferencesGet{Getter: getter}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				var response domain.UserPreferences
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.Equal(t, tc.prefs, response)
			}
		})
	}
}

func TestPreferencesUpdate_ServeHTTP(t *testing.T) {
	updated := domain.UserPreferences{
		DiversityLevel:        domain.DiversityHigh,
		PreferredCategories:   []string{"technology"},
		PreferredCountries:    []string{"rwanda"},
		NotificationFrequency: domain.NotificationFrequencyDaily,
	}

	cases := []struct {
		name         string
		body         string
		setupContext func(r *http.Request) *http.Request
		result       domain.UserPreferences
		cmdErr       error
		wantStatus   int
		skipCommand  bool
	}{
		{
			name:         "successful_update",
			body:         `{"diversity_level":"high","preferred_categories":["Tech"],"preferred_countries":["Rwanda"]}`,
			setupContext: testContextWithUserID("user-1"),
			result:       updated,
			wantStatus:   http.StatusOK,
		},
		{
			name:         "invalid_preferences",
			body:         `{"diversity_level":"extreme"}`,
			setupContext: testContextWithUserID("user-1"),
			cmdErr:       fmt.Errorf("%w: unknown diversity level", command.ErrInvalidPreferences),
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "malformed_body",
			body:         `[`,
			setupContext: testContextWithUserID("user-1"),
			wantStatus:   http.StatusBadRequest,
			skipCommand:  true,
		},
		{
			name:         "unauthenticated",
			body:         `{}`,
			setupContext: testContext(),
			wantStatus:   http.StatusUnauthorized,
			skipCommand:  true,
		},
		{
			name:         "storage_error",
			body:         `{}`,
			setupContext: testContextWithUserID("user-1"),
			cmdErr:       errors.New("database error"),
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := cmdmocks.NewMockCommand[command.UpdatePreferencesRequest, domain.UserPreferences](t)
			if !tc.skipCommand {
				cmd.EXPECT().
					Execute(mock.Anything, mock.MatchedBy(func(req command.UpdatePreferencesRequest) bool {
						return req.UserID == "user-1"
					})).
					Return(tc.result, tc.cmdErr)
			}

			req := httptest.NewRequest(http.MethodPut, "/v1/me/preferences", strings.NewReader(tc.body))
			req = tc.setupContext(req)
			rec := httptest.NewRecorder()

			PreferencesUpdate{Command: cmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				var response domain.UserPreferences
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.Equal(t, tc.result, response)
			}
		})
	}
}
