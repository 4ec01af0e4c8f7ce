package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/nairobell/feed/internal/command"
	"github.com/nairobell/feed/internal/datasources"
	"github.com/nairobell/feed/internal/domain"
)

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	UserID string
	Method domain.AuthMethod
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					writeJSONMessage(w, http.StatusUnauthorized, err.Error())
					return
				}

				ctx := domain.ContextWithUserID(r.Context(), result.UserID)
				ctx = domain.ContextWithAuthMethod(ctx, result.Method)
				ctx = domain.ContextWithLogger(ctx, domain.LoggerFromContext(ctx).With("user_id", result.UserID))
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// Public endpoints accept anonymous requests; requireAuthMiddleware
			// guards the rest.
			next.ServeHTTP(w, r)
		})
	}
}

// NewSupabaseValidator validates Supabase session JWTs, which are signed
// with the project's HS256 secret.
func NewSupabaseValidator(projectURL, jwtSecret, audience string) (AuthValidator, error) {
	if jwtSecret == "" {
		return nil, errors.New("supabase JWT secret is empty")
	}
	issuer := strings.TrimSuffix(projectURL, "/") + "/auth/v1"

	keyFunc := func(context.Context) (interface{}, error) {
		return []byte(jwtSecret), nil
	}

	jwtValidator, err := validator.New(
		keyFunc,
		validator.HS256,
		issuer,
		[]string{audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return func(r *http.Request) (*AuthResult, error) {
		if r.Header.Get("Authorization") == "" {
			return nil, nil
		}

		token, err := jwtmiddleware.AuthHeaderTokenExtractor(r)
		if err != nil {
			return nil, errors.New("malformed Authorization header")
		}
		if token == "" || strings.HasPrefix(token, command.APITokenPrefix) {
			return nil, nil
		}

		validated, err := jwtValidator.ValidateToken(r.Context(), token)
		if err != nil {
			return nil, errors.New("invalid JWT token")
		}

		claims, ok := validated.(*validator.ValidatedClaims)
		if !ok || claims.RegisteredClaims.Subject == "" {
			return nil, errors.New("JWT token has no subject")
		}

		return &AuthResult{
			UserID: claims.RegisteredClaims.Subject,
			Method: domain.AuthMethodSupabase,
		}, nil
	}, nil
}

// NewAPITokenValidator creates a validator for API tokens.
// It asynchronously updates the token's last_used_at timestamp on successful validation.
func NewAPITokenValidator(
	ctx context.Context,
	tokenGetter datasources.APITokenByHashGetter,
	lastUsedUpdater datasources.APITokenLastUsedUpdater,
) AuthValidator {
	// Best-effort: updates still buffered when the process exits are lost,
	// and updates are dropped while the buffer is full.
	updateChan := make(chan string, 100)
	go func() {
		for tokenID := range updateChan {
			updateErr := lastUsedUpdater.UpdateAPITokenLastUsed(context.WithoutCancel(ctx), tokenID)
			if updateErr != nil {
				logger := domain.LoggerFromContext(ctx).With("token", tokenID)
				logger.WarnContext(context.WithoutCancel(ctx),
					"failed to update last used time for token",
					"error", updateErr)
			}
		}
	}()

	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer "+command.APITokenPrefix) {
			return nil, nil
		}

		fullToken := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := tokenGetter.GetAPITokenByHash(r.Context(), command.HashAPIToken(fullToken))
		if err != nil {
			return nil, errors.New("invalid API token")
		}

		if !token.IsActive(time.Now()) {
			return nil, errors.New("API token is revoked or expired")
		}

		select {
		case updateChan <- token.ID:
		default:
		}

		return &AuthResult{
			UserID: token.UserID,
			Method: domain.AuthMethodAPIToken,
		}, nil
	}
}
