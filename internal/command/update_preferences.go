package command

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/nairobell/feed/internal/datasources"
	"github.com/nairobell/feed/internal/domain"
)

var ErrInvalidPreferences = errors.New("invalid preferences")

type UpdatePreferencesRequest struct {
	UserID      string
	Preferences domain.UserPreferences
}

// UpdatePreferences validates and stores a reader's explicit settings.
type UpdatePreferences struct {
	Setter      datasources.PreferencesSetter
	Invalidator datasources.CacheInvalidator
}

func NewUpdatePreferences(setter datasources.PreferencesSetter, invalidator datasources.CacheInvalidator) *UpdatePreferences {
	return &UpdatePreferences{
		Setter:      setter,
		Invalidator: invalidator,
	}
}

func (c *UpdatePreferences) Execute(ctx context.Context, req UpdatePreferencesRequest) (domain.UserPreferences, error) {
	prefs, err := normalizePreferences(req.Preferences)
	if err != nil {
		return domain.UserPreferences{}, err
	}

	if err := c.Setter.SetUserPreferences(ctx, req.UserID, prefs); err != nil {
		return domain.UserPreferences{}, fmt.Errorf("saving preferences: %w", err)
	}

	// Preferred categories and countries change the candidate pool.
	if _, err := c.Invalidator.DeletePrefix(ctx, HintCacheKeyPrefix(req.UserID)); err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "invalidating cached hints failed",
			"user_id", req.UserID, "error", err)
	}

	return prefs, nil
}

func normalizePreferences(in domain.UserPreferences) (domain.UserPreferences, error) {
	level, err := domain.ParseDiversityLevel(string(in.DiversityLevel))
	if err != nil {
		return domain.UserPreferences{}, fmt.Errorf("%w: %w", ErrInvalidPreferences, err)
	}

	out := domain.DefaultUserPreferences()
	out.DiversityLevel = level

	switch f := domain.NotificationFrequency(strings.ToLower(string(in.NotificationFrequency))); f {
	case "":
	case domain.NotificationFrequencyNone, domain.NotificationFrequencyDaily, domain.NotificationFrequencyRealtime:
		out.NotificationFrequency = f
	default:
		return domain.UserPreferences{}, fmt.Errorf("%w: unknown notification frequency %q", ErrInvalidPreferences, in.NotificationFrequency)
	}

	for _, c := range in.PreferredCategories {
		if strings.TrimSpace(c) == "" {
			continue
		}
		category := string(domain.NormalizeCategory(c))
		if !slices.Contains(out.PreferredCategories, category) {
			out.PreferredCategories = append(out.PreferredCategories, category)
		}
	}
	for _, c := range in.PreferredCountries {
		country := strings.ToLower(strings.TrimSpace(c))
		if country == "" || strings.Contains(country, ",") {
			continue
		}
		if !slices.Contains(out.PreferredCountries, country) {
			out.PreferredCountries = append(out.PreferredCountries, country)
		}
	}

	return out, nil
}

