package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDiversityLevel = errors.New("unknown diversity level")

type DiversityLevel string

const (
	DiversityLow    DiversityLevel = "low"
	DiversityMedium DiversityLevel = "medium"
	DiversityHigh   DiversityLevel = "high"
)

// ParseDiversityLevel parses a level name. The empty string means medium.
func ParseDiversityLevel(s string) (DiversityLevel, error) {
	switch l := DiversityLevel(strings.ToLower(strings.TrimSpace(s))); l {
	case "":
		return DiversityMedium, nil
	case DiversityLow, DiversityMedium, DiversityHigh:
		return l, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDiversityLevel, s)
	}
}

// Limits returns the per-category and per-source caps for the level.
// Unrecognised levels get the medium caps.
func (l DiversityLevel) Limits() (categoryLimit, sourceLimit int) {
	switch l {
	case DiversityLow:
		return 2, 1
	case DiversityHigh:
		return 6, 5
	default:
		return 4, 3
	}
}

// DiversityResult is the output of ApplyDiversity.
type DiversityResult struct {
	Items []RankedItem

	// Capped is the number of items that passed the caps before any backfill.
	Capped int

	// Backfilled reports whether skipped items were re-admitted to reach the
	// minimum count.
	Backfilled bool
}

// FilterDiversity caps how many items of one category or source appear in an
// already sorted list. It never reorders: items over a cap are skipped. If
// fewer than minimumCount items survive, skipped items are re-admitted in
// their original position until the minimum is reached.
func FilterDiversity(ranked []RankedItem, level DiversityLevel, minimumCount int) []RankedItem {
	return ApplyDiversity(ranked, level, minimumCount).Items
}

// ApplyDiversity is FilterDiversity with details about the backfill.
func ApplyDiversity(ranked []RankedItem, level DiversityLevel, minimumCount int) DiversityResult {
	categoryLimit, sourceLimit := level.Limits()

	admitted := make([]bool, len(ranked))
	categoryCounts := make(map[Category]int)
	sourceCounts := make(map[string]int)
	capped := 0

	for i, item := range ranked {
		category := item.NormalizedCategory()
		if categoryCounts[category] >= categoryLimit || sourceCounts[item.Source] >= sourceLimit {
			continue
		}
		categoryCounts[category]++
		sourceCounts[item.Source]++
		admitted[i] = true
		capped++
	}

	total := capped
	backfilled := false
	for i := range ranked {
		if total >= minimumCount {
			break
		}
		if admitted[i] {
			continue
		}
		admitted[i] = true
		backfilled = true
		total++
	}

	items := make([]RankedItem, 0, total)
	for i, item := range ranked {
		if admitted[i] {
			items = append(items, item)
		}
	}

	return DiversityResult{
		Items:      items,
		Capped:     capped,
		Backfilled: backfilled,
	}
}
