package datasources

import (
	"context"
	"time"

	"github.com/nairobell/feed/internal/domain"
)

// ReadEventLister returns a user's read events since the given time, most
// recent first. Each event carries the category, countries and source of the
// item that was read.
type ReadEventLister interface {
	ListReadEvents(ctx context.Context, userID string, since time.Time) ([]domain.ReadEvent, error)
}

type ReadEventRecorder interface {
	RecordReadEvent(ctx context.Context, userID string, event domain.ReadEvent) error
}

// ActiveUserLister lists users with at least one read since the given time.
type ActiveUserLister interface {
	ListActiveUserIDs(ctx context.Context, since time.Time) ([]string, error)
}

// PointsLedger adds delta to the user's running total and returns the new
// total. The update is atomic per user.
type PointsLedger interface {
	AddPoints(ctx context.Context, userID string, delta int64) (int64, error)
}

// PointsGetter returns 0 for users who have never earned points.
type PointsGetter interface {
	GetPoints(ctx context.Context, userID string) (int64, error)
}

// PreferencesGetter returns the default preferences for users who have not
// saved any.
type PreferencesGetter interface {
	GetUserPreferences(ctx context.Context, userID string) (domain.UserPreferences, error)
}

type PreferencesSetter interface {
	SetUserPreferences(ctx context.Context, userID string, prefs domain.UserPreferences) error
}
