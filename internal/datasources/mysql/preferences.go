package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/nairobell/feed/internal/datasources"
	"github.com/nairobell/feed/internal/domain"
)

var (
	_ datasources.PreferencesGetter = (*Repository)(nil)
	_ datasources.PreferencesSetter = (*Repository)(nil)
)

func (r *Repository) GetUserPreferences(ctx context.Context, userID string) (domain.UserPreferences, error) {
	sb := sqlbuilder.Select(
		"diversity_level",
		"preferred_categories",
		"preferred_countries",
		"notification_frequency",
	)
	sb.From("user_preferences")
	sb.Where(sb.Equal("user_id", userID))

	query, args := sb.Build()

	var diversity, categories, countries, frequency sql.NullString
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&diversity, &categories, &countries, &frequency)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultUserPreferences(), nil
	}
	if err != nil {
		return domain.UserPreferences{}, fmt.Errorf("reading user preferences: %w", err)
	}

	prefs := domain.DefaultUserPreferences()
	if level, err := domain.ParseDiversityLevel(diversity.String); err == nil {
		prefs.DiversityLevel = level
	}
	if c := splitList(categories.String); c != nil {
		prefs.PreferredCategories = c
	}
	if c := splitList(countries.String); c != nil {
		prefs.PreferredCountries = c
	}
	if frequency.Valid && frequency.String != "" {
		prefs.NotificationFrequency = domain.NotificationFrequency(frequency.String)
	}
	return prefs, nil
}

func (r *Repository) SetUserPreferences(ctx context.Context, userID string, prefs domain.UserPreferences) error {
	ib := sqlbuilder.InsertInto("user_preferences")
	ib.Cols("user_id", "diversity_level", "preferred_categories", "preferred_countries", "notification_frequency")
	ib.Values(
		userID,
		string(prefs.DiversityLevel),
		joinList(prefs.PreferredCategories),
		joinList(prefs.PreferredCountries),
		string(prefs.NotificationFrequency),
	)
	ib.SQL("ON DUPLICATE KEY UPDATE " +
		"diversity_level = VALUES(diversity_level), " +
		"preferred_categories = VALUES(preferred_categories), " +
		"preferred_countries = VALUES(preferred_countries), " +
		"notification_frequency = VALUES(notification_frequency)")

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("saving user preferences: %w", err)
	}
	return nil
}
