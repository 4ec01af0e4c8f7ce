package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/nairobell/feed/internal/datasources"
	"github.com/nairobell/feed/internal/domain"
)

var _ datasources.APITokenRepository = (*Repository)(nil)

var apiTokenColumns = []string{
	"id",
	"user_id",
	"token_hash",
	"token_prefix",
	"name",
	"created_at",
	"last_used_at",
	"expires_at",
	"revoked_at",
}

func (r *Repository) CreateAPIToken(
	ctx context.Context,
	id, userID, tokenHash, tokenPrefix string,
	name *string,
	expiresAt *time.Time,
) error {
	ib := sqlbuilder.InsertInto("api_tokens")
	ib.Cols("id", "user_id", "token_hash", "token_prefix", "name", "created_at", "expires_at")
	ib.Values(id, userID, tokenHash, tokenPrefix, name, r.now(), expiresAt)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting API token: %w", err)
	}
	return nil
}

func (r *Repository) GetAPITokenByHash(ctx context.Context, tokenHash string) (domain.APIToken, error) {
	sb := sqlbuilder.Select(apiTokenColumns...)
	sb.From("api_tokens")
	sb.Where(sb.Equal("token_hash", tokenHash))

	tokens, err := r.queryAPITokens(ctx, sb)
	if err != nil {
		return domain.APIToken{}, err
	}
	if len(tokens) == 0 {
		return domain.APIToken{}, fmt.Errorf("API token: %w", datasources.ErrNotFound)
	}
	return tokens[0], nil
}

func (r *Repository) UpdateAPITokenLastUsed(ctx context.Context, tokenID string) error {
	ub := sqlbuilder.Update("api_tokens")
	ub.Set(ub.Assign("last_used_at", r.now()))
	ub.Where(ub.Equal("id", tokenID))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating API token last used: %w", err)
	}
	return nil
}

// ListUserAPITokens lists all of a user's tokens, revoked ones included,
// newest first.
func (r *Repository) ListUserAPITokens(ctx context.Context, userID string) ([]domain.APIToken, error) {
	sb := sqlbuilder.Select(apiTokenColumns...)
	sb.From("api_tokens")
	sb.Where(sb.Equal("user_id", userID))
	sb.OrderBy("created_at DESC", "id")

	return r.queryAPITokens(ctx, sb)
}

func (r *Repository) CountUserActiveAPITokens(ctx context.Context, userID string) (int64, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("api_tokens")
	sb.Where(
		sb.Equal("user_id", userID),
		sb.IsNull("revoked_at"),
		sb.Or(sb.IsNull("expires_at"), sb.GreaterThan("expires_at", r.now())),
	)

	query, args := sb.Build()

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting active API tokens: %w", err)
	}
	return count, nil
}

// RevokeAPIToken revokes one of the user's tokens. Revoking a token that does
// not exist, belongs to someone else or is already revoked returns
// ErrNotFound.
func (r *Repository) RevokeAPIToken(ctx context.Context, tokenID, userID string) error {
	ub := sqlbuilder.Update("api_tokens")
	ub.Set(ub.Assign("revoked_at", r.now()))
	ub.Where(
		ub.Equal("id", tokenID),
		ub.Equal("user_id", userID),
		ub.IsNull("revoked_at"),
	)

	query, args := ub.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("revoking API token: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking revoked API token: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("API token [%s]: %w", tokenID, datasources.ErrNotFound)
	}
	return nil
}

func (r *Repository) queryAPITokens(ctx context.Context, sb *sqlbuilder.SelectBuilder) ([]domain.APIToken, error) {
	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running API tokens query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tokens := []domain.APIToken{}
	for rows.Next() {
		var (
			token      domain.APIToken
			name       sql.NullString
			lastUsedAt sql.NullTime
			expiresAt  sql.NullTime
			revokedAt  sql.NullTime
		)
		if err := rows.Scan(
			&token.ID,
			&token.UserID,
			&token.TokenHash,
			&token.Prefix,
			&name,
			&token.CreatedAt,
			&lastUsedAt,
			&expiresAt,
			&revokedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning API tokens: %w", err)
		}
		if name.Valid {
			token.Name = &name.String
		}
		token.LastUsedAt = nullTimePtr(lastUsedAt)
		token.ExpiresAt = nullTimePtr(expiresAt)
		token.RevokedAt = nullTimePtr(revokedAt)
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return tokens, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}
