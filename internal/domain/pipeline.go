package domain

import "time"

type PersonalizeOptions struct {
	// Now anchors freshness and history calculations. Zero means time.Now().
	Now time.Time

	Diversity DiversityLevel

	// MinimumCount is the floor passed to the diversity filter.
	MinimumCount int

	// Limit truncates the output. Zero means no limit.
	Limit int

	InteractionRate *float64
}

// PersonalizedFeed is the result of running the full ranking pipeline.
type PersonalizedFeed struct {
	Profile    UserProfile  `json:"profile"`
	Items      []RankedItem `json:"items"`
	Dropped    int          `json:"dropped"`
	Duplicates int          `json:"duplicates"`
	Backfilled bool         `json:"backfilled"`
}

// Personalize analyses the reader's history, ranks the candidates, applies the
// diversity caps and truncates to the limit.
func Personalize(items []Item, events []ReadEvent, hint []string, opts PersonalizeOptions) PersonalizedFeed {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	profile := AnalyzeHistory(events, HistoryOptions{Now: now, InteractionRate: opts.InteractionRate})
	return PersonalizeWithProfile(items, profile, hint, opts, now)
}

// PersonalizeWithProfile is Personalize for callers that already hold a
// profile.
func PersonalizeWithProfile(items []Item, profile UserProfile, hint []string, opts PersonalizeOptions, now time.Time) PersonalizedFeed {
	ranked := Rank(items, profile, hint, now)
	diverse := ApplyDiversity(ranked.Items, opts.Diversity, opts.MinimumCount)

	out := diverse.Items
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}

	return PersonalizedFeed{
		Profile:    profile,
		Items:      out,
		Dropped:    ranked.Dropped,
		Duplicates: ranked.Duplicates,
		Backfilled: diverse.Backfilled,
	}
}
