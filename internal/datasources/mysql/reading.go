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

var (
	_ datasources.ReadEventLister   = (*Repository)(nil)
	_ datasources.ReadEventRecorder = (*Repository)(nil)
	_ datasources.ActiveUserLister  = (*Repository)(nil)
)

// maxReadEvents bounds how much history a single profile is built from.
const maxReadEvents = 5000

func (r *Repository) RecordReadEvent(ctx context.Context, userID string, event domain.ReadEvent) error {
	readAt := event.ReadAt
	if readAt.IsZero() {
		readAt = r.now()
	}

	ib := sqlbuilder.InsertInto("read_events")
	ib.Cols("user_id", "item_id", "read_at", "completed", "time_spent_seconds", "interacted")
	ib.Values(userID, event.ItemID, readAt, event.Completed, max(0, event.TimeSpentSeconds), event.Interacted)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("recording read event: %w", err)
	}
	return nil
}

// ListReadEvents returns the user's reads since the given time, newest first,
// joined with the category, countries and source of each item. Reads of items
// that no longer exist are reported with an empty category.
func (r *Repository) ListReadEvents(ctx context.Context, userID string, since time.Time) ([]domain.ReadEvent, error) {
	sb := sqlbuilder.Select(
		"r.item_id",
		"i.category",
		"i.country_focus",
		"i.source",
		"r.read_at",
		"r.completed",
		"r.time_spent_seconds",
		"r.interacted",
	)
	sb.From("read_events r")
	sb.JoinWithOption(sqlbuilder.LeftJoin, "items i", "i.id = r.item_id")
	sb.Where(
		sb.Equal("r.user_id", userID),
		sb.GreaterEqualThan("r.read_at", since),
	)
	sb.OrderBy("r.read_at DESC")
	sb.Limit(maxReadEvents)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running read events query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	events := []domain.ReadEvent{}
	for rows.Next() {
		var (
			event     domain.ReadEvent
			category  sql.NullString
			countries sql.NullString
			source    sql.NullString
		)
		if err := rows.Scan(
			&event.ItemID,
			&category,
			&countries,
			&source,
			&event.ReadAt,
			&event.Completed,
			&event.TimeSpentSeconds,
			&event.Interacted,
		); err != nil {
			return nil, fmt.Errorf("scanning read events: %w", err)
		}
		event.ItemCategory = category.String
		event.ItemCountries = splitList(countries.String)
		event.ItemSource = source.String
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return events, nil
}

func (r *Repository) ListActiveUserIDs(ctx context.Context, since time.Time) ([]string, error) {
	sb := sqlbuilder.Select("user_id")
	sb.Distinct()
	sb.From("read_events")
	sb.Where(sb.GreaterEqualThan("read_at", since))
	sb.OrderBy("user_id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running active users query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	userIDs := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning active users: %w", err)
		}
		userIDs = append(userIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return userIDs, nil
}
