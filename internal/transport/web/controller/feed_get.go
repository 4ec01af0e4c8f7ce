package controller

import (
	"net/http"
	"strconv"

	"github.com/nairobell/feed/internal/command"
	"github.com/nairobell/feed/internal/domain"
)

const maxFeedLimit = 100

type FeedGet struct {
	Command command.Command[command.PersonalizedFeedRequest, command.PersonalizedFeedResponse]
}

type FeedResponse struct {
	Data     []domain.RankedItem `json:"data"`
	Metadata FeedMetadata        `json:"metadata"`
}

type FeedMetadata struct {
	DiversityLevel domain.DiversityLevel `json:"diversity_level"`
	Candidates     int                   `json:"candidates"`
	Dropped        int                   `json:"dropped"`
	Duplicates     int                   `json:"duplicates"`
	Backfilled     bool                  `json:"backfilled"`
	HintApplied    bool                  `json:"hint_applied"`
	Profile        FeedProfileSummary    `json:"profile"`
}

type FeedProfileSummary struct {
	ReadingStreakDays int      `json:"reading_streak_days"`
	TopCategories     []string `json:"top_categories"`
	EngagementScore   float64  `json:"engagement_score"`
}

func (c FeedGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	q := r.URL.Query()

	limit, err := parseLimit(q, maxFeedLimit)
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	filters, err := itemFiltersFromQuery(q)
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	req := command.PersonalizedFeedRequest{
		UserID:  userID,
		Limit:   limit,
		Filters: filters,
	}

	if q.Has("diversity") {
		level, err := domain.ParseDiversityLevel(q.Get("diversity"))
		if err != nil {
			writeError(ctx, w, http.StatusBadRequest, err.Error())
			return
		}
		req.Diversity = level
	}

	if q.Has("hint") {
		useHint, err := strconv.ParseBool(q.Get("hint"))
		if err != nil {
			writeError(ctx, w, http.StatusBadRequest, "unable to parse hint from query")
			return
		}
		req.SkipHint = !useHint
	}

	feed, err := c.Command.Execute(ctx, req)
	if err != nil {
		logger.ErrorContext(ctx, "unable to build personalized feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	items := feed.Items
	if items == nil {
		items = []domain.RankedItem{}
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(ctx, w, http.StatusOK, FeedResponse{
		Data: items,
		Metadata: FeedMetadata{
			DiversityLevel: feed.DiversityLevel,
			Candidates:     feed.Candidates,
			Dropped:        feed.Dropped,
			Duplicates:     feed.Duplicates,
			Backfilled:     feed.Backfilled,
			HintApplied:    feed.HintApplied,
			Profile: FeedProfileSummary{
				ReadingStreakDays: feed.Profile.ReadingStreakDays,
				TopCategories:     feed.Profile.TopCategoryKeys(3),
				EngagementScore:   feed.Profile.EngagementScore,
			},
		},
	})
}
