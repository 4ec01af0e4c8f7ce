package domain

import (
	"cmp"
	"math"
	"slices"
	"time"
)

const (
	profileTopN            = 5
	defaultPeakHour        = 9
	neutralEngagementScore = 5.0
	maxCountedMinutes      = 5.0
	velocityWindow         = 7 * 24 * time.Hour
)

// ReadEvent is one historical interaction between a user and an item.
type ReadEvent struct {
	ItemID           string    `json:"item_id,omitempty"`
	ItemCategory     string    `json:"item_category"`
	ItemCountries    []string  `json:"item_countries,omitempty"`
	ItemSource       string    `json:"item_source,omitempty"`
	ReadAt           time.Time `json:"read_at"`
	Completed        bool      `json:"completed"`
	TimeSpentSeconds float64   `json:"time_spent_seconds"`
	// Interacted is set by the caller when the read was accompanied by a
	// like, share or comment.
	Interacted bool `json:"interacted"`
}

// CountEntry is one bucket of a ranked histogram.
type CountEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type ReadingPeriod string

const (
	ReadingPeriodMorning   ReadingPeriod = "morning"
	ReadingPeriodAfternoon ReadingPeriod = "afternoon"
	ReadingPeriodEvening   ReadingPeriod = "evening"
)

// UserProfile summarises a user's reading history. It is derived on demand
// and never persisted.
type UserProfile struct {
	TopCategories     []CountEntry   `json:"top_categories"`
	TopCountries      []CountEntry   `json:"top_countries"`
	CategoryCounts    map[string]int `json:"category_counts,omitempty"`
	CountryCounts     map[string]int `json:"country_counts,omitempty"`
	ReadingStreakDays int            `json:"reading_streak_days"`
	EngagementScore   float64        `json:"engagement_score"`
	PeakHour          int            `json:"peak_hour"`
	ReadingVelocity   float64        `json:"reading_velocity"`
	DiversityIndex    float64        `json:"diversity_index"`
	PreferredPeriod   ReadingPeriod  `json:"preferred_period"`
}

// DefaultUserProfile is the profile of a user with no reading history.
func DefaultUserProfile() UserProfile {
	return UserProfile{
		TopCategories:   []CountEntry{},
		TopCountries:    []CountEntry{},
		EngagementScore: neutralEngagementScore,
		PeakHour:        defaultPeakHour,
		PreferredPeriod: ReadingPeriodMorning,
	}
}

// CategoryHistogram returns the category counts used as affinity weights,
// falling back to the top list when the full histogram is unavailable
// (e.g. a profile supplied by an API caller).
func (p UserProfile) CategoryHistogram() map[string]int {
	if p.CategoryCounts != nil {
		return p.CategoryCounts
	}
	return histogramFromEntries(p.TopCategories)
}

// CountryHistogram is the country equivalent of CategoryHistogram.
func (p UserProfile) CountryHistogram() map[string]int {
	if p.CountryCounts != nil {
		return p.CountryCounts
	}
	return histogramFromEntries(p.TopCountries)
}

// TopCategoryKeys returns up to n of the profile's most read categories.
func (p UserProfile) TopCategoryKeys(n int) []string {
	keys := make([]string, 0, n)
	for i, e := range p.TopCategories {
		if i >= n {
			break
		}
		keys = append(keys, e.Key)
	}
	return keys
}

// TopCountryKeys returns up to n of the profile's most read countries.
func (p UserProfile) TopCountryKeys(n int) []string {
	keys := make([]string, 0, n)
	for i, e := range p.TopCountries {
		if i >= n {
			break
		}
		keys = append(keys, e.Key)
	}
	return keys
}

// HistoryOptions tunes AnalyzeHistory.
type HistoryOptions struct {
	// Now anchors the streak and velocity calculations and supplies the
	// location used for calendar dates and hours. Zero means time.Now().
	Now time.Time

	// InteractionRate overrides the rate derived from ReadEvent.Interacted.
	InteractionRate *float64
}

// AnalyzeHistory derives a UserProfile from a window of read events. The
// caller is responsible for choosing the window.
func AnalyzeHistory(events []ReadEvent, opts HistoryOptions) UserProfile {
	if len(events) == 0 {
		return DefaultUserProfile()
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	loc := now.Location()

	categoryCounts := make(map[string]int)
	countryCounts := make(map[string]int)
	sources := make(map[string]struct{})
	days := make(map[civilDate]struct{})
	var hours [24]int
	var completed, interacted, recent int
	var timeSpent float64

	for _, e := range events {
		categoryCounts[string(NormalizeCategory(e.ItemCategory))]++

		seen := make(map[string]struct{}, len(e.ItemCountries))
		for _, country := range e.ItemCountries {
			if country == "" {
				continue
			}
			if _, dup := seen[country]; dup {
				continue
			}
			seen[country] = struct{}{}
			countryCounts[country]++
		}

		if e.ItemSource != "" {
			sources[e.ItemSource] = struct{}{}
		}
		if e.Completed {
			completed++
		}
		if e.Interacted {
			interacted++
		}
		timeSpent += math.Max(0, e.TimeSpentSeconds)

		if e.ReadAt.IsZero() {
			continue
		}
		local := e.ReadAt.In(loc)
		days[dateOf(local)] = struct{}{}
		hours[local.Hour()]++
		if now.Sub(e.ReadAt) < velocityWindow {
			recent++
		}
	}

	n := float64(len(events))
	interactionRate := float64(interacted) / n
	if opts.InteractionRate != nil {
		interactionRate = *opts.InteractionRate
	}

	return UserProfile{
		TopCategories:     topEntries(categoryCounts, profileTopN),
		TopCountries:      topEntries(countryCounts, profileTopN),
		CategoryCounts:    categoryCounts,
		CountryCounts:     countryCounts,
		ReadingStreakDays: readingStreak(days, dateOf(now)),
		EngagementScore:   engagementScore(float64(completed)/n, timeSpent/n/60, interactionRate),
		PeakHour:          peakHour(hours),
		ReadingVelocity:   float64(recent) / 7,
		DiversityIndex:    math.Min(10, (float64(len(categoryCounts))*1.5+float64(len(sources)))/2),
		PreferredPeriod:   preferredPeriod(hours),
	}
}

func engagementScore(completionRate, avgMinutes, interactionRate float64) float64 {
	score := completionRate*4 + math.Min(avgMinutes, maxCountedMinutes) + interactionRate*3
	return math.Max(0, math.Min(10, score))
}

// topEntries sorts a histogram by count descending, key ascending, and keeps n.
func topEntries(counts map[string]int, n int) []CountEntry {
	entries := make([]CountEntry, 0, len(counts))
	for k, c := range counts {
		entries = append(entries, CountEntry{Key: k, Count: c})
	}
	slices.SortFunc(entries, func(a, b CountEntry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

func histogramFromEntries(entries []CountEntry) map[string]int {
	counts := make(map[string]int, len(entries))
	for _, e := range entries {
		counts[e.Key] += e.Count
	}
	return counts
}

// readingStreak counts consecutive days with reads ending today, or ending
// yesterday when nothing has been read yet today.
func readingStreak(days map[civilDate]struct{}, today civilDate) int {
	cur := today
	if _, ok := days[cur]; !ok {
		cur = cur.addDays(-1)
	}

	streak := 0
	for {
		if _, ok := days[cur]; !ok {
			return streak
		}
		streak++
		cur = cur.addDays(-1)
	}
}

func peakHour(hours [24]int) int {
	best := -1
	for h, c := range hours {
		if c == 0 {
			continue
		}
		if best == -1 || c > hours[best] {
			best = h
		}
	}
	if best == -1 {
		return defaultPeakHour
	}
	return best
}

func preferredPeriod(hours [24]int) ReadingPeriod {
	var morning, afternoon, evening int
	for h, c := range hours {
		switch {
		case h >= 6 && h < 12:
			morning += c
		case h >= 12 && h < 18:
			afternoon += c
		default:
			evening += c
		}
	}

	if morning >= afternoon && morning >= evening {
		return ReadingPeriodMorning
	}
	if afternoon >= evening {
		return ReadingPeriodAfternoon
	}
	return ReadingPeriodEvening
}

type civilDate struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time) civilDate {
	y, m, d := t.Date()
	return civilDate{year: y, month: m, day: d}
}

func (d civilDate) addDays(n int) civilDate {
	return dateOf(time.Date(d.year, d.month, d.day+n, 12, 0, 0, 0, time.UTC))
}
