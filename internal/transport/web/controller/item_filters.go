package controller

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/nairobell/feed/internal/domain"
)

func itemFiltersFromQuery(q url.Values) (domain.ItemFilters, error) {
	var filters domain.ItemFilters

	for _, category := range queryList(q, "category") {
		normalized := domain.NormalizeCategory(category)
		if !strings.EqualFold(string(normalized), category) {
			return domain.ItemFilters{}, fmt.Errorf("unrecognised category [%s]", category)
		}
		filters.Categories = append(filters.Categories, string(normalized))
	}

	for _, country := range queryList(q, "country") {
		filters.Countries = append(filters.Countries, strings.ToLower(country))
	}

	filters.OnlySources = queryList(q, "only_sources")
	filters.ExceptSources = queryList(q, "except_sources")

	if q.Has("since") {
		since := domain.ParseTimestamp(q.Get("since"))
		if since.IsZero() {
			return domain.ItemFilters{}, fmt.Errorf("unable to parse since [%s] from query", q.Get("since"))
		}
		filters.PublishedFrom = since
	}

	return filters, nil
}

// queryList collects comma separated values across repeated parameters.
func queryList(q url.Values, key string) []string {
	var out []string
	for _, raw := range q[key] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}
