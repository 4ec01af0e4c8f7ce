package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nairobell/feed/internal/command"
	"github.com/nairobell/feed/internal/domain"
)

const (
	maxRankItems      = 1000
	maxRankEvents     = 5000
	maxRankBodyLength = 8 << 20
)

// RankItemsBody is the JSON body of a stateless ranking request.
// Timestamps are strings so malformed values rank as stale rather than
// failing the request.
type RankItemsBody struct {
	Items           []RankItemBody      `json:"items"`
	Events          []RankEventBody     `json:"events,omitempty"`
	Profile         *domain.UserProfile `json:"profile,omitempty"`
	Hint            []string            `json:"hint,omitempty"`
	Diversity       string              `json:"diversity,omitempty"`
	MinimumCount    int                 `json:"minimum_count,omitempty"`
	Limit           int                 `json:"limit,omitempty"`
	InteractionRate *float64            `json:"interaction_rate,omitempty"`
}

type RankItemBody struct {
	ID               string   `json:"id"`
	Title            string   `json:"title,omitempty"`
	Link             string   `json:"link,omitempty"`
	Description      string   `json:"description,omitempty"`
	Category         string   `json:"category"`
	CountryFocus     []string `json:"country_focus,omitempty"`
	Source           string   `json:"source"`
	PublishedAt      string   `json:"published_at"`
	EngagementScore  *float64 `json:"engagement_score,omitempty"`
	CredibilityScore *float64 `json:"credibility_score,omitempty"`
}

type RankEventBody struct {
	ItemCategory     string   `json:"item_category"`
	ItemCountries    []string `json:"item_countries,omitempty"`
	ReadAt           string   `json:"read_at"`
	Completed        bool     `json:"completed"`
	TimeSpentSeconds float64  `json:"time_spent_seconds"`
	Interacted       bool     `json:"interacted"`
}

type RankItemsResponse struct {
	Data     []domain.RankedItem `json:"data"`
	Metadata RankItemsMetadata   `json:"metadata"`
}

type RankItemsMetadata struct {
	Profile    domain.UserProfile `json:"profile"`
	Dropped    int                `json:"dropped"`
	Duplicates int                `json:"duplicates"`
	Backfilled bool               `json:"backfilled"`
}

type RankItems struct {
	Command command.Command[command.RankItemsRequest, domain.PersonalizedFeed]
}

func (c RankItems) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body RankItemsBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRankBodyLength)).Decode(&body); err != nil {
		logger.WarnContext(ctx, "unable to parse request body", "error", err)
		writeError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := body.toRequest()
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	feed, err := c.Command.Execute(ctx, req)
	if err != nil {
		logger.ErrorContext(ctx, "unable to rank items", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	items := feed.Items
	if items == nil {
		items = []domain.RankedItem{}
	}

	writeJSON(ctx, w, http.StatusOK, RankItemsResponse{
		Data: items,
		Metadata: RankItemsMetadata{
			Profile:    feed.Profile,
			Dropped:    feed.Dropped,
			Duplicates: feed.Duplicates,
			Backfilled: feed.Backfilled,
		},
	})
}

func (b RankItemsBody) toRequest() (command.RankItemsRequest, error) {
	if len(b.Items) > maxRankItems {
		return command.RankItemsRequest{}, fmt.Errorf("too many items [%d], maximum is [%d]", len(b.Items), maxRankItems)
	}
	if len(b.Events) > maxRankEvents {
		return command.RankItemsRequest{}, fmt.Errorf("too many events [%d], maximum is [%d]", len(b.Events), maxRankEvents)
	}
	if b.Limit < 0 || b.MinimumCount < 0 {
		return command.RankItemsRequest{}, fmt.Errorf("limit and minimum_count must not be negative")
	}

	level, err := domain.ParseDiversityLevel(b.Diversity)
	if err != nil {
		return command.RankItemsRequest{}, err
	}

	items := make([]domain.Item, 0, len(b.Items))
	for _, item := range b.Items {
		items = append(items, domain.Item{
			ID:               item.ID,
			Title:            item.Title,
			Link:             item.Link,
			Description:      item.Description,
			Category:         item.Category,
			CountryFocus:     item.CountryFocus,
			Source:           item.Source,
			PublishedAt:      domain.ParseTimestamp(item.PublishedAt),
			EngagementScore:  item.EngagementScore,
			CredibilityScore: item.CredibilityScore,
		})
	}

	events := make([]domain.ReadEvent, 0, len(b.Events))
	for _, event := range b.Events {
		events = append(events, domain.ReadEvent{
			ItemCategory:     event.ItemCategory,
			ItemCountries:    event.ItemCountries,
			ReadAt:           domain.ParseTimestamp(event.ReadAt),
			Completed:        event.Completed,
			TimeSpentSeconds: event.TimeSpentSeconds,
			Interacted:       event.Interacted,
		})
	}

	return command.RankItemsRequest{
		Items:           items,
		Events:          events,
		Profile:         b.Profile,
		Hint:            b.Hint,
		Diversity:       level,
		MinimumCount:    b.MinimumCount,
		Limit:           b.Limit,
		InteractionRate: b.InteractionRate,
	}, nil
}
