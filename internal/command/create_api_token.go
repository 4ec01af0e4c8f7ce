package command

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nairobell/feed/internal/datasources"
)

// MaxAPITokensPerUser caps how many unrevoked, unexpired tokens a reader may hold.
const MaxAPITokensPerUser = 10

var ErrTokenLimitExceeded = errors.New("user has reached maximum number of active tokens")

// APITokenPrefix marks a bearer credential as an API token rather than a
// session JWT.
const APITokenPrefix = "nbl_"

const (
	apiTokenRandomBytes = 32
	apiTokenPrefixLen   = 8
)

type CreateAPITokenRequest struct {
	UserID string
	Name   *string

	// ExpiresIn is the token lifetime. Zero means the token never expires.
	ExpiresIn time.Duration
}

type CreateAPITokenResponse struct {
	TokenID   string     `json:"id"`
	FullToken string     `json:"token"`
	Prefix    string     `json:"prefix"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// CreateAPIToken issues a new API token. Only its SHA-256 hash is stored, so
// the full token is returned exactly once.
type CreateAPIToken struct {
	TokenCounter datasources.UserAPITokenCounter
	TokenCreator datasources.APITokenCreator
	Clock        Clock
}

// NewCreateAPIToken creates a properly initialized CreateAPIToken command.
func NewCreateAPIToken(
	tokenCounter datasources.UserAPITokenCounter,
	tokenCreator datasources.APITokenCreator,
) *CreateAPIToken {
	return &CreateAPIToken{
		TokenCounter: tokenCounter,
		TokenCreator: tokenCreator,
	}
}

func (c *CreateAPIToken) Execute(ctx context.Context, req CreateAPITokenRequest) (CreateAPITokenResponse, error) {
	count, err := c.TokenCounter.CountUserActiveAPITokens(ctx, req.UserID)
	if err != nil {
		return CreateAPITokenResponse{}, fmt.Errorf("counting user tokens: %w", err)
	}
	if count >= MaxAPITokensPerUser {
		return CreateAPITokenResponse{}, ErrTokenLimitExceeded
	}

	secret := make([]byte, apiTokenRandomBytes)
	if _, err := rand.Read(secret); err != nil {
		return CreateAPITokenResponse{}, fmt.Errorf("generating random token: %w", err)
	}
	secretHex := hex.EncodeToString(secret)
	fullToken := APITokenPrefix + secretHex

	var expiresAt *time.Time
	if req.ExpiresIn > 0 {
		t := c.Clock.Now().Add(req.ExpiresIn)
		expiresAt = &t
	}

	tokenID := uuid.New().String()
	prefix := secretHex[:apiTokenPrefixLen]

	if err := c.TokenCreator.CreateAPIToken(
		ctx, tokenID, req.UserID, HashAPIToken(fullToken), prefix, req.Name, expiresAt,
	); err != nil {
		return CreateAPITokenResponse{}, fmt.Errorf("creating token: %w", err)
	}

	return CreateAPITokenResponse{
		TokenID:   tokenID,
		FullToken: fullToken,
		Prefix:    prefix,
		ExpiresAt: expiresAt,
	}, nil
}

// HashAPIToken returns the hex SHA-256 of a full token, as stored.
func HashAPIToken(fullToken string) string {
	sum := sha256.Sum256([]byte(fullToken))
	return hex.EncodeToString(sum[:])
}
