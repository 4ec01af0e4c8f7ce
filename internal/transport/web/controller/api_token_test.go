package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/nairobell/feed/internal/command"
	cmdmocks "github.com/nairobell/feed/internal/command/mocks"
	"github.com/nairobell/feed/internal/datasources"
	"github.com/nairobell/feed/internal/datasources/mocks"
	"github.com/nairobell/feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAPITokenCreate_ServeHTTP(t *testing.T) {
	name := "cli"
	expires := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name         string
		body         string
		setupContext func(r *http.Request) *http.Request
		wantRequest  command.CreateAPITokenRequest
		result       command.CreateAPITokenResponse
		cmdErr       error
		wantStatus   int
		skipCommand  bool
	}{
		{
			name:         "named_with_expiry",
			body:         `{"name":" cli ","expires_in_days":30}`,
			setupContext: testContextWithUserID("user-1"),
			wantRequest: command.CreateAPITokenRequest{
				UserID:    "user-1",
				Name:      &name,
				ExpiresIn: 30 * 24 * time.Hour,
			},
			result: command.CreateAPITokenResponse{
				TokenID:   "token-1",
				FullToken: "nbl_abc",
				Prefix:    "nbl_abc",
				ExpiresAt: &expires,
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:         "no_body",
			setupContext: testContextWithUserID("user-1"),
			wantRequest:  command.CreateAPITokenRequest{UserID: "user-1"},
			result:       command.CreateAPITokenResponse{TokenID: "token-2", FullToken: "nbl_def", Prefix: "nbl_def"},
			wantStatus:   http.StatusCreated,
		},
		{
			name:         "expiry_out_of_range",
			body:         `{"expires_in_days":400}`,
			setupContext: testContextWithUserID("user-1"),
			wantStatus:   http.StatusBadRequest,
			skipCommand:  true,
		},
		{
			name:         "limit_exceeded",
			body:         `{}`,
			setupContext: testContextWithUserID("user-1"),
			wantRequest:  command.CreateAPITokenRequest{UserID: "user-1"},
			cmdErr:       command.ErrTokenLimitExceeded,
			wantStatus:   http.StatusConflict,
		},
		{
			name:         "unauthenticated",
			setupContext: testContext(),
			wantStatus:   http.StatusUnauthorized,
			skipCommand:  true,
		},
		{
			name:         "command_error",
			setupContext: testContextWithUserID("user-1"),
			wantRequest:  command.CreateAPITokenRequest{UserID: "user-1"},
			cmdErr:       errors.New("database error"),
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := cmdmocks.NewMockCommand[command.CreateAPITokenRequest, command.CreateAPITokenResponse](t)
			if !tc.skipCommand {
				cmd.EXPECT().Execute(mock.Anything, tc.wantRequest).Return(tc.result, tc.cmdErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/tokens", strings.NewReader(tc.body))
			req = tc.setupContext(req)
			rec := httptest.NewRecorder()

			APITokenCreate{CreateCmd: cmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusCreated {
				var response command.CreateAPITokenResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.Equal(t, tc.result, response)
			}
		})
	}
}

func TestAPITokenList_ServeHTTP(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	past := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	revoked := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	lister := mocks.NewMockUserAPITokenLister(t)
	lister.EXPECT().ListUserAPITokens(mock.Anything, "user-1").Return([]domain.APIToken{
		{ID: "live", UserID: "user-1", Prefix: "nbl_live", CreatedAt: created},
		{ID: "expired", UserID: "user-1", Prefix: "nbl_old", CreatedAt: created, ExpiresAt: &past},
		{ID: "revoked", UserID: "user-1", Prefix: "nbl_rev", CreatedAt: created, RevokedAt: &revoked},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/tokens", nil)
	req = testContextWithUserID("user-1")(req)
	rec := httptest.NewRecorder()

	APITokenList{TokenLister: lister}.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response APITokenListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	require.Len(t, response.Data, 3)
	assert.True(t, response.Data[0].Active)
	assert.False(t, response.Data[1].Active)
	assert.False(t, response.Data[2].Active)
}

func TestAPITokenRevoke_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		tokenID    string
		revokeErr  error
		wantStatus int
	}{
		{name: "revoked", tokenID: "token-1", wantStatus: http.StatusNoContent},
		{name: "not_found", tokenID: "token-2", revokeErr: datasources.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "database_error", tokenID: "token-3", revokeErr: errors.New("database error"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			revoker := mocks.NewMockAPITokenRevoker(t)
			revoker.EXPECT().RevokeAPIToken(mock.Anything, tc.tokenID, "user-1").Return(tc.revokeErr)

			req := httptest.NewRequest(http.MethodDelete, "/v1/tokens/"+tc.tokenID, nil)
			req = mux.SetURLVars(req, map[string]string{"token_id": tc.tokenID})
			req = testContextWithUserID("user-1")(req)
			rec := httptest.NewRecorder()

			APITokenRevoke{TokenRevoker: revoker}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
