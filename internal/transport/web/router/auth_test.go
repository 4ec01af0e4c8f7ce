package router

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nairobell/feed/internal/command"
	"github.com/nairobell/feed/internal/datasources"
	"github.com/nairobell/feed/internal/datasources/mocks"
	"github.com/nairobell/feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	jose "gopkg.in/go-jose/go-jose.v2"
	"gopkg.in/go-jose/go-jose.v2/jwt"
)

const (
	testProjectURL = "https://abc.supabase.co"
	testJWTSecret  = "super-secret-jwt-token-with-at-least-32-characters"
	testAudience   = "authenticated"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func signTestJWT(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()

	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.HS256, Key: []byte(secret)},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	require.NoError(t, err)

	token, err := jwt.Signed(signer).Claims(claims).CompactSerialize()
	require.NoError(t, err)
	return token
}

func validClaims(subject string) jwt.Claims {
	now := time.Now()
	return jwt.Claims{
		Subject:  subject,
		Issuer:   testProjectURL + "/auth/v1",
		Audience: jwt.Audience{testAudience},
		IssuedAt: jwt.NewNumericDate(now),
		Expiry:   jwt.NewNumericDate(now.Add(time.Hour)),
	}
}

func TestSupabaseValidator(t *testing.T) {
	validate, err := NewSupabaseValidator(testProjectURL+"/", testJWTSecret, testAudience)
	require.NoError(t, err)

	expired := validClaims("user-1")
	expired.Expiry = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	wrongIssuer := validClaims("user-1")
	wrongIssuer.Issuer = "https://evil.example.com/auth/v1"

	cases := []struct {
		name       string
		header     string
		wantUserID string
		wantSkip   bool
		wantErr    bool
	}{
		{
			name:       "valid_token",
			header:     "Bearer " + signTestJWT(t, testJWTSecret, validClaims("user-1")),
			wantUserID: "user-1",
		},
		{
			name:     "no_header",
			wantSkip: true,
		},
		{
			name:     "api_token_is_skipped",
			header:   "Bearer " + command.APITokenPrefix + "abcdef",
			wantSkip: true,
		},
		{
			name:    "wrong_secret",
			header:  "Bearer " + signTestJWT(t, "another-secret-another-secret-another", validClaims("user-1")),
			wantErr: true,
		},
		{
			name:    "expired",
			header:  "Bearer " + signTestJWT(t, testJWTSecret, expired),
			wantErr: true,
		},
		{
			name:    "wrong_issuer",
			header:  "Bearer " + signTestJWT(t, testJWTSecret, wrongIssuer),
			wantErr: true,
		},
		{
			name:    "missing_subject",
			header:  "Bearer " + signTestJWT(t, testJWTSecret, validClaims("")),
			wantErr: true,
		},
		{
			name:    "malformed_header",
			header:  "Token abc",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/me/feed", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			result, err := validate(req)

			switch {
			case tc.wantSkip:
				assert.NoError(t, err)
				assert.Nil(t, result)
			case tc.wantErr:
				assert.Error(t, err)
				assert.Nil(t, result)
			default:
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, tc.wantUserID, result.UserID)
				assert.Equal(t, domain.AuthMethodSupabase, result.Method)
			}
		})
	}
}

func TestNewSupabaseValidator_EmptySecret(t *testing.T) {
	_, err := NewSupabaseValidator(testProjectURL, "", testAudience)
	assert.Error(t, err)
}

func TestAPITokenValidator(t *testing.T) {
	fullToken := command.APITokenPrefix + "0123456789abcdef"
	past := time.Now().Add(-time.Hour)

	cases := []struct {
		name       string
		header     string
		token      domain.APIToken
		getErr     error
		wantUserID string
		wantSkip   bool
		wantErr    bool
		wantUpdate bool
	}{
		{
			name:       "valid_token",
			header:     "Bearer " + fullToken,
			token:      domain.APIToken{ID: "token-1", UserID: "user-1"},
			wantUserID: "user-1",
			wantUpdate: true,
		},
		{
			name:     "jwt_is_skipped",
			header:   "Bearer eyJhbGciOiJIUzI1NiJ9.e30.sig",
			wantSkip: true,
		},
		{
			name:    "unknown_token",
			header:  "Bearer " + fullToken,
			getErr:  datasources.ErrNotFound,
			wantErr: true,
		},
		{
			name:    "expired_token",
			header:  "Bearer " + fullToken,
			token:   domain.APIToken{ID: "token-1", UserID: "user-1", ExpiresAt: &past},
			wantErr: true,
		},
		{
			name:    "revoked_token",
			header:  "Bearer " + fullToken,
			token:   domain.APIToken{ID: "token-1", UserID: "user-1", RevokedAt: &past},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			getter := mocks.NewMockAPITokenByHashGetter(t)
			updater := mocks.NewMockAPITokenLastUsedUpdater(t)

			if !tc.wantSkip {
				getter.EXPECT().
					GetAPITokenByHash(mock.Anything, command.HashAPIToken(fullToken)).
					Return(tc.token, tc.getErr)
			}

			updated := make(chan struct{})
			if tc.wantUpdate {
				updater.EXPECT().
					UpdateAPITokenLastUsed(mock.Anything, tc.token.ID).
					Run(func(context.Context, string) { close(updated) }).
					Return(nil)
			}

			ctx, cancel := context.WithCancel(testContext())
			defer cancel()
			validate := NewAPITokenValidator(ctx, getter, updater)

			req := httptest.NewRequest(http.MethodGet, "/v1/me/feed", nil)
			req.Header.Set("Authorization", tc.header)

			result, err := validate(req)

			switch {
			case tc.wantSkip:
				assert.NoError(t, err)
				assert.Nil(t, result)
			case tc.wantErr:
				assert.Error(t, err)
				assert.Nil(t, result)
			default:
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, tc.wantUserID, result.UserID)
				assert.Equal(t, domain.AuthMethodAPIToken, result.Method)
			}

			if tc.wantUpdate {
				select {
				case <-updated:
				case <-time.After(time.Second):
					t.Fatal("last used time was not updated")
				}
			}
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	var gotUserID string
	var gotMethod domain.AuthMethod
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = domain.UserIDFromContext(r.Context())
		gotMethod = domain.AuthMethodFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	skip := func(*http.Request) (*AuthResult, error) { return nil, nil }
	accept := func(*http.Request) (*AuthResult, error) {
		return &AuthResult{UserID: "user-1", Method: domain.AuthMethodAPIToken}, nil
	}
	reject := func(*http.Request) (*AuthResult, error) { return nil, errors.New("invalid API token") }

	cases := []struct {
		name       string
		validators []AuthValidator
		wantStatus int
		wantUserID string
	}{
		{name: "anonymous", validators: []AuthValidator{skip}, wantStatus: http.StatusNoContent},
		{name: "second_validator_accepts", validators: []AuthValidator{skip, accept}, wantStatus: http.StatusNoContent, wantUserID: "user-1"},
		{name: "rejected", validators: []AuthValidator{reject, accept}, wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotUserID, gotMethod = "", ""

			req := httptest.NewRequest(http.MethodGet, "/v1/me/feed", nil).WithContext(testContext())
			rec := httptest.NewRecorder()

			NewAuthMiddleware(tc.validators)(next).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantUserID, gotUserID)
			if tc.wantUserID != "" {
				assert.Equal(t, domain.AuthMethodAPIToken, gotMethod)
			}
		})
	}
}

func TestRequireAuthMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("rejects_anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/me/feed", nil).WithContext(testContext())
		rec := httptest.NewRecorder()

		requireAuthMiddleware(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"authentication required"}`, rec.Body.String())
	})

	t.Run("allows_preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/me/feed", nil).WithContext(testContext())
		rec := httptest.NewRecorder()

		requireAuthMiddleware(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("allows_authenticated", func(t *testing.T) {
		ctx := domain.ContextWithUserID(testContext(), "user-1")
		req := httptest.NewRequest(http.MethodGet, "/v1/me/feed", nil).WithContext(ctx)
		rec := httptest.NewRecorder()

		requireAuthMiddleware(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
