package domain

import (
	"strings"
	"time"
)

const (
	notificationScoreMin = 7.5
	maxNotifications     = 3
)

type Notification struct {
	ItemID      string    `json:"item_id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Category    Category  `json:"category"`
	FinalScore  float64   `json:"final_score"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// SelectNotifications picks up to three items scoring above 7.5 from a ranked
// feed and schedules them for the reader's next peak hour.
func SelectNotifications(ranked []RankedItem, profile UserProfile, now time.Time) []Notification {
	at := NextPeakTime(profile.PeakHour, now)

	notifications := make([]Notification, 0, maxNotifications)
	for _, item := range ranked {
		if len(notifications) == maxNotifications {
			break
		}
		if !(item.FinalScore > notificationScoreMin) {
			continue
		}
		notifications = append(notifications, Notification{
			ItemID:      item.ID,
			Title:       strings.TrimSpace(item.Title),
			Body:        item.Description,
			Category:    item.NormalizedCategory(),
			FinalScore:  item.FinalScore,
			ScheduledAt: at,
		})
	}
	return notifications
}

// NextPeakTime returns the start of peakHour later today, or tomorrow when
// that hour has already begun.
func NextPeakTime(peakHour int, now time.Time) time.Time {
	if peakHour < 0 || peakHour > 23 {
		peakHour = defaultPeakHour
	}
	y, m, d := now.Date()
	if now.Hour() >= peakHour {
		d++
	}
	return time.Date(y, m, d, peakHour, 0, 0, 0, now.Location())
}
