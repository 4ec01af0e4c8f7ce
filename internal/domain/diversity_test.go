package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedItem(id, category, source string) RankedItem {
	return RankedItem{Item: Item{ID: id, Category: category, Source: source}}
}

func TestParseDiversityLevel(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    DiversityLevel
		wantErr bool
	}{
		{name: "empty_defaults_to_medium", input: "", want: DiversityMedium},
		{name: "low", input: "low", want: DiversityLow},
		{name: "case_insensitive", input: " HIGH ", want: DiversityHigh},
		{name: "unknown", input: "extreme", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDiversityLevel(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrUnknownDiversityLevel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDiversityLevel_Limits(t *testing.T) {
	cases := []struct {
		level        DiversityLevel
		wantCategory int
		wantSource   int
	}{
		{level: DiversityLow, wantCategory: 2, wantSource: 1},
		{level: DiversityMedium, wantCategory: 4, wantSource: 3},
		{level: DiversityHigh, wantCategory: 6, wantSource: 5},
		{level: "", wantCategory: 4, wantSource: 3},
	}

	for _, tc := range cases {
		t.Run(string(tc.level), func(t *testing.T) {
			category, source := tc.level.Limits()
			assert.Equal(t, tc.wantCategory, category)
			assert.Equal(t, tc.wantSource, source)
		})
	}
}

func TestFilterDiversity_ThreeBusinessItems(t *testing.T) {
	ranked := []RankedItem{
		rankedItem("b1", "business", "nation"),
		rankedItem("b2", "business", "punch"),
		rankedItem("b3", "business", "standard"),
	}

	cases := []struct {
		name         string
		minimumCount int
		want         []string
	}{
		{name: "third_dropped", minimumCount: 0, want: []string{"b1", "b2"}},
		{name: "floor_met_without_backfill", minimumCount: 2, want: []string{"b1", "b2"}},
		{name: "floor_forces_backfill", minimumCount: 3, want: []string{"b1", "b2", "b3"}},
		{name: "floor_above_input_size", minimumCount: 10, want: []string{"b1", "b2", "b3"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterDiversity(ranked, DiversityLow, tc.minimumCount)
			assert.Equal(t, tc.want, rankedIDs(got))
		})
	}
}

func TestApplyDiversity_BackfillKeepsOrder(t *testing.T) {
	ranked := []RankedItem{
		rankedItem("b1", "business", "nation"),
		rankedItem("b2", "business", "nation"),
		rankedItem("p1", "politics", "punch"),
		rankedItem("b3", "business", "standard"),
		rankedItem("p2", "politics", "punch"),
	}

	result := ApplyDiversity(ranked, DiversityLow, 4)

	assert.Equal(t, 3, result.Capped)
	assert.True(t, result.Backfilled)
	assert.Equal(t, []string{"b1", "b2", "p1", "b3"}, rankedIDs(result.Items))
}

func TestApplyDiversity_CategoryNormalised(t *testing.T) {
	ranked := []RankedItem{
		rankedItem("a", "Weather", "s1"),
		rankedItem("b", "general", "s2"),
		rankedItem("c", "", "s3"),
	}

	result := ApplyDiversity(ranked, DiversityLow, 0)

	assert.Equal(t, []string{"a", "b"}, rankedIDs(result.Items))
	assert.False(t, result.Backfilled)
}

func TestApplyDiversity_CapsRespected(t *testing.T) {
	categories := []string{"politics", "business", "sports", "health"}
	sources := []string{"nation", "punch", "standard", "citizen", "guardian", "daily"}

	ranked := make([]RankedItem, 0, 50)
	for i := 0; i < 50; i++ {
		ranked = append(ranked, rankedItem(
			fmt.Sprintf("item-%02d", i),
			categories[(i*7)%len(categories)],
			sources[(i*5)%len(sources)],
		))
	}

	for _, level := range []DiversityLevel{DiversityLow, DiversityMedium, DiversityHigh} {
		for _, minimum := range []int{0, 3, 8, 20, 60} {
			t.Run(fmt.Sprintf("%s_min_%d", level, minimum), func(t *testing.T) {
				result := ApplyDiversity(ranked, level, minimum)
				categoryLimit, sourceLimit := level.Limits()

				assert.Equal(t, result.Capped < minimum && result.Capped < len(ranked), result.Backfilled)
				if !result.Backfilled {
					perCategory := map[Category]int{}
					perSource := map[string]int{}
					for _, item := range result.Items {
						perCategory[item.NormalizedCategory()]++
						perSource[item.Source]++
					}
					for _, c := range perCategory {
						assert.LessOrEqual(t, c, categoryLimit)
					}
					for _, c := range perSource {
						assert.LessOrEqual(t, c, sourceLimit)
					}
				} else {
					assert.Equal(t, min(minimum, len(ranked)), len(result.Items))
				}

				// Output is always a subsequence of the input.
				next := 0
				for _, item := range result.Items {
					for next < len(ranked) && ranked[next].ID != item.ID {
						next++
					}
					require.Less(t, next, len(ranked), "item %s out of order", item.ID)
					next++
				}
			})
		}
	}
}

func TestFilterDiversity_Empty(t *testing.T) {
	assert.Empty(t, FilterDiversity(nil, DiversityHigh, 5))
}
