package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectNotifications(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	scored := func(id string, score float64) RankedItem {
		return RankedItem{Item: Item{ID: id, Title: " " + id + " ", Category: "Politics"}, FinalScore: score}
	}
	ranked := []RankedItem{
		scored("a", 9),
		scored("b", 7.5),
		scored("c", 8),
		scored("d", 7.6),
		scored("e", 8.5),
	}

	got := SelectNotifications(ranked, UserProfile{PeakHour: 18}, now)

	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ItemID)
	assert.Equal(t, "c", got[1].ItemID)
	assert.Equal(t, "d", got[2].ItemID)
	assert.Equal(t, "a", got[0].Title)
	assert.Equal(t, CategoryPolitics, got[0].Category)
	for _, n := range got {
		assert.Equal(t, time.Date(2024, 6, 15, 18, 0, 0, 0, time.UTC), n.ScheduledAt)
	}
}

func TestSelectNotifications_NothingAboveThreshold(t *testing.T) {
	ranked := []RankedItem{{Item: Item{ID: "a"}, FinalScore: 7.5}}
	assert.Empty(t, SelectNotifications(ranked, DefaultUserProfile(), time.Now()))
}

func TestNextPeakTime(t *testing.T) {
	now := time.Date(2024, 6, 30, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		name     string
		peakHour int
		want     time.Time
	}{
		{name: "later_today", peakHour: 18, want: time.Date(2024, 6, 30, 18, 0, 0, 0, time.UTC)},
		{name: "current_hour_rolls_to_tomorrow", peakHour: 10, want: time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)},
		{name: "earlier_hour_tomorrow", peakHour: 9, want: time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)},
		{name: "invalid_hour_uses_default", peakHour: 31, want: time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextPeakTime(tc.peakHour, now))
		})
	}
}
