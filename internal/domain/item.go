package domain

import (
	"strings"
	"time"
)

// Category is the coarse topic an item is filed under.
type Category string

const (
	CategoryPolitics      Category = "politics"
	CategoryBusiness      Category = "business"
	CategoryTechnology    Category = "technology"
	CategorySports        Category = "sports"
	CategoryHealth        Category = "health"
	CategoryEntertainment Category = "entertainment"
	CategoryGeneral       Category = "general"
)

var KnownCategories = []Category{
	CategoryPolitics,
	CategoryBusiness,
	CategoryTechnology,
	CategorySports,
	CategoryHealth,
	CategoryEntertainment,
	CategoryGeneral,
}

// NormalizeCategory maps free-form category strings onto the known set.
// Anything unrecognised is filed under general.
func NormalizeCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range KnownCategories {
		if c == known {
			return c
		}
	}
	return CategoryGeneral
}

const (
	DefaultEngagementScore  = 0.0
	DefaultCredibilityScore = 5.0
)

// Item is a single news article or other content unit that can be ranked.
type Item struct {
	ID           string    `json:"id"`
	Title        string    `json:"title,omitempty"`
	Link         string    `json:"link,omitempty"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category"`
	CountryFocus []string  `json:"country_focus,omitempty"`
	Source       string    `json:"source"`
	PublishedAt  time.Time `json:"published_at"`

	EngagementScore  *float64 `json:"engagement_score,omitempty"`
	CredibilityScore *float64 `json:"credibility_score,omitempty"`
}

// NormalizedCategory returns the item's category mapped onto the known set.
func (i Item) NormalizedCategory() Category {
	return NormalizeCategory(i.Category)
}

// Engagement returns the engagement score, or the default when absent.
func (i Item) Engagement() float64 {
	if i.EngagementScore == nil {
		return DefaultEngagementScore
	}
	return *i.EngagementScore
}

// Credibility returns the credibility score, or the default when absent.
func (i Item) Credibility() float64 {
	if i.CredibilityScore == nil {
		return DefaultCredibilityScore
	}
	return *i.CredibilityScore
}

// RankedItem is an Item annotated with its final personalised score.
type RankedItem struct {
	Item
	FinalScore float64  `json:"final_score"`
	Reasons    []string `json:"reasons"`
}

type ItemFilters struct {
	Categories    []string
	Countries     []string
	OnlySources   []string
	ExceptSources []string
	PublishedFrom time.Time
}

// ParseTimestamp parses an RFC 3339 timestamp, returning the zero time when
// the value is empty or malformed. Zero timestamps score as maximally stale.
func ParseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
