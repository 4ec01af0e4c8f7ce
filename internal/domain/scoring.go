package domain

import "time"

// FreshnessScore scores an item's age on a 0-10 step scale:
//
//	< 1h   -> 10
//	< 6h   -> 8
//	< 24h  -> 6
//	< 72h  -> 4
//	older  -> 2
//
// Timestamps in the future score 10. A zero timestamp is treated as
// infinitely old and scores 0.
func FreshnessScore(publishedAt, now time.Time) float64 {
	if publishedAt.IsZero() {
		return 0
	}

	age := now.Sub(publishedAt)
	switch {
	case age < time.Hour:
		return 10
	case age < 6*time.Hour:
		return 8
	case age < 24*time.Hour:
		return 6
	case age < 72*time.Hour:
		return 4
	default:
		return 2
	}
}

// CategoryAffinity returns the share of the histogram taken by category.
func CategoryAffinity(category string, counts map[string]int) float64 {
	total := histogramTotal(counts)
	if total == 0 {
		return 0
	}
	return float64(counts[category]) / float64(total)
}

// CountryAffinity sums the per-country affinity of every country the item
// covers. The sum is not capped at 1, so multi-country items matching several
// followed countries score higher.
func CountryAffinity(countries []string, counts map[string]int) float64 {
	total := histogramTotal(counts)
	if total == 0 {
		return 0
	}

	var affinity float64
	seen := make(map[string]struct{}, len(countries))
	for _, country := range countries {
		if _, dup := seen[country]; dup {
			continue
		}
		seen[country] = struct{}{}
		affinity += float64(counts[country]) / float64(total)
	}
	return affinity
}

// BlendedQuality averages engagement and credibility.
func BlendedQuality(engagementScore, credibilityScore float64) float64 {
	return engagementScore*0.5 + credibilityScore*0.5
}

func histogramTotal(counts map[string]int) int {
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}
