package datasources

import (
	"context"
	"time"

	"github.com/nairobell/feed/internal/domain"
)

// APITokenCreator stores a newly issued nbl_ token for a reader. Only the
// SHA-256 of the full token reaches storage.
type APITokenCreator interface {
	CreateAPIToken(
		ctx context.Context,
		id, userID, tokenHash, tokenPrefix string,
		name *string,
		expiresAt *time.Time,
	) error
}

// APITokenByHashGetter resolves a bearer token presented by a script or MCP
// agent. Returns ErrNotFound for unknown hashes.
type APITokenByHashGetter interface {
	GetAPITokenByHash(ctx context.Context, tokenHash string) (domain.APIToken, error)
}

type APITokenLastUsedUpdater interface {
	UpdateAPITokenLastUsed(ctx context.Context, tokenID string) error
}

// UserAPITokenLister lists every token a reader has issued, newest first.
type UserAPITokenLister interface {
	ListUserAPITokens(ctx context.Context, userID string) ([]domain.APIToken, error)
}

// UserAPITokenCounter counts tokens that are neither revoked nor expired,
// for enforcing the per-reader cap.
type UserAPITokenCounter interface {
	CountUserActiveAPITokens(ctx context.Context, userID string) (int64, error)
}

// APITokenRevoker revokes a token owned by userID. Tokens of other readers
// are reported as ErrNotFound.
type APITokenRevoker interface {
	RevokeAPIToken(ctx context.Context, tokenID, userID string) error
}

type APITokenRepository interface {
	APITokenCreator
	APITokenByHashGetter
	APITokenLastUsedUpdater
	UserAPITokenLister
	UserAPITokenCounter
	APITokenRevoker
}
