package domain

import "time"

// APIToken lets a reader call the feed API from scripts and agents.
type APIToken struct {
	ID         string     `json:"id"`
	UserID     string     `json:"-"`
	TokenHash  string     `json:"-"`
	Prefix     string     `json:"prefix"`
	Name       *string    `json:"name,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	RevokedAt  *time.Time `json:"-"`
}

// IsActive reports whether the token is neither revoked nor expired at now.
func (t APIToken) IsActive(now time.Time) bool {
	if t.RevokedAt != nil {
		return false
	}
	if t.ExpiresAt != nil && now.After(*t.ExpiresAt) {
		return false
	}
	return true
}
