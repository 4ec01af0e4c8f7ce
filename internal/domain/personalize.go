package domain

import (
	"cmp"
	"slices"
	"time"
)

const (
	neutralHintScore   = 5.0
	reasonAffinityMin  = 0.3
	reasonHintTopRank  = 3
	reasonEngagingMin  = 7.0
	reasonBreakingMin  = 8.0
	diversityTopWindow = 3
)

const (
	ReasonFrequentCategory  = "matches your frequent category"
	ReasonFollowedCountries = "covers countries you follow"
	ReasonRecommended       = "highly recommended"
	ReasonEngaging          = "highly engaging content"
	ReasonBreaking          = "breaking news"
)

// RankResult is the output of Rank. Dropped counts items without an ID and
// Duplicates counts repeated IDs after the first occurrence.
type RankResult struct {
	Items      []RankedItem
	Dropped    int
	Duplicates int
}

// Rank scores items against the profile and an optional external hint, and
// sorts them by final score. The hint is an ordered list of item IDs; IDs it
// names that are not among the items have no effect.
func Rank(items []Item, profile UserProfile, hint []string, now time.Time) RankResult {
	result := RankResult{Items: make([]RankedItem, 0, len(items))}

	hintRanks := make(map[string]int, len(hint))
	for i, id := range hint {
		if _, ok := hintRanks[id]; !ok {
			hintRanks[id] = i
		}
	}

	categories := profile.CategoryHistogram()
	countries := profile.CountryHistogram()
	topCategories := profile.TopCategoryKeys(diversityTopWindow)

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.ID == "" {
			result.Dropped++
			continue
		}
		if _, dup := seen[item.ID]; dup {
			result.Duplicates++
			continue
		}
		seen[item.ID] = struct{}{}

		category := string(item.NormalizedCategory())
		catAff := CategoryAffinity(category, categories)
		ctryAff := CountryAffinity(item.CountryFocus, countries)
		fresh := FreshnessScore(item.PublishedAt, now)

		personality := catAff*4 + ctryAff*3 + (fresh/10)*2 + diversityBonus(category, topCategories)

		hintScore := neutralHintScore
		rank, hinted := hintRanks[item.ID]
		if hinted {
			hintScore = 10 * (1 - float64(rank)/float64(len(hint)))
		}

		final := personality*0.4 +
			BlendedQuality(item.Engagement(), item.Credibility())*0.2 +
			fresh*0.2 +
			hintScore*0.2

		reasons := make([]string, 0, 2)
		if catAff > reasonAffinityMin {
			reasons = append(reasons, ReasonFrequentCategory)
		}
		if ctryAff > reasonAffinityMin {
			reasons = append(reasons, ReasonFollowedCountries)
		}
		if hinted && rank < reasonHintTopRank {
			reasons = append(reasons, ReasonRecommended)
		}
		if item.Engagement() > reasonEngagingMin {
			reasons = append(reasons, ReasonEngaging)
		}
		if fresh >= reasonBreakingMin {
			reasons = append(reasons, ReasonBreaking)
		}

		result.Items = append(result.Items, RankedItem{
			Item:       item,
			FinalScore: final,
			Reasons:    reasons,
		})
	}

	slices.SortFunc(result.Items, compareRanked)
	return result
}

// compareRanked orders by final score descending, then publication time
// descending, then ID ascending.
func compareRanked(a, b RankedItem) int {
	if c := cmp.Compare(b.FinalScore, a.FinalScore); c != 0 {
		return c
	}
	if c := b.PublishedAt.Compare(a.PublishedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// diversityBonus rewards categories that are not over-represented in the
// reader's top categories.
func diversityBonus(category string, topCategories []string) float64 {
	occurrences := 0
	for _, c := range topCategories {
		if c == category {
			occurrences++
		}
	}
	if occurrences <= 1 {
		return 1
	}
	return 0
}
